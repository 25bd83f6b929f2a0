package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"oasref/internal/app"
)

type searchOptions struct {
	Spec   string
	Query  string
	Output string
}

func newSearchCommand() *cobra.Command {
	opts := searchOptions{}
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search schemas by name or description",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSearch(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Spec, "spec", "", "Spec file path")
	cmd.Flags().StringVar(&opts.Query, "query", "", "Search query")
	cmd.Flags().StringVar(&opts.Output, "output", "json", "Output format: json or yaml")

	_ = viper.BindPFlag("spec", cmd.Flags().Lookup("spec"))
	_ = viper.BindPFlag("query", cmd.Flags().Lookup("query"))
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))

	return cmd
}

func runSearch(ctx context.Context, cmd *cobra.Command, opts searchOptions) error {
	service := newAppService()
	result, err := service.SearchSchemas(ctx, app.SearchRequest{
		SpecPath: resolveString(cmd, opts.Spec, "spec", "spec"),
		Query:    resolveString(cmd, opts.Query, "query", "query"),
	})
	if err != nil {
		return err
	}
	if len(result.Matches) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no matches")
		return nil
	}
	return writeOutput(cmd, resolveString(cmd, opts.Output, "output", "output"), result.Matches)
}
