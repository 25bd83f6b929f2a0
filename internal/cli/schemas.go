package cli

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"oasref/internal/app"
)

type schemasOptions struct {
	Spec string
}

func newSchemasCommand() *cobra.Command {
	opts := schemasOptions{}
	cmd := &cobra.Command{
		Use:   "schemas",
		Short: "List every named schema and its pointer",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSchemas(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Spec, "spec", "", "Spec file path")
	_ = viper.BindPFlag("spec", cmd.Flags().Lookup("spec"))

	return cmd
}

func runSchemas(ctx context.Context, cmd *cobra.Command, opts schemasOptions) error {
	service := newAppService()
	result, err := service.Schemas(ctx, app.SchemasRequest{
		SpecPath: resolveString(cmd, opts.Spec, "spec", "spec"),
	})
	if err != nil {
		return err
	}

	names := make([]string, 0, len(result.Index))
	for name := range result.Index {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", name, result.Index[name])
	}
	return nil
}
