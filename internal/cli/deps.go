package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"oasref/internal/app"
)

type depsOptions struct {
	Spec string
	Name string
}

func newDepsCommand() *cobra.Command {
	opts := depsOptions{}
	cmd := &cobra.Command{
		Use:   "deps",
		Short: "List the transitive schema dependencies of a schema",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDeps(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Spec, "spec", "", "Spec file path")
	cmd.Flags().StringVar(&opts.Name, "name", "", "Schema name")

	_ = viper.BindPFlag("spec", cmd.Flags().Lookup("spec"))
	_ = viper.BindPFlag("name", cmd.Flags().Lookup("name"))

	return cmd
}

func runDeps(ctx context.Context, cmd *cobra.Command, opts depsOptions) error {
	service := newAppService()
	result, err := service.Dependencies(ctx, app.DependenciesRequest{
		SpecPath: resolveString(cmd, opts.Spec, "spec", "spec"),
		Name:     resolveString(cmd, opts.Name, "name", "name"),
	})
	if err != nil {
		return err
	}
	if len(result.Dependencies) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "%s has no dependencies\n", result.Name)
		return nil
	}
	for _, dep := range result.Dependencies {
		fmt.Fprintln(cmd.OutOrStdout(), dep)
	}
	return nil
}
