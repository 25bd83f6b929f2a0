package cli

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"oasref/internal/app"
)

type statsOptions struct {
	Spec   string
	Output string
}

func newStatsCommand() *cobra.Command {
	opts := statsOptions{}
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print document statistics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStats(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Spec, "spec", "", "Spec file path")
	cmd.Flags().StringVar(&opts.Output, "output", "json", "Output format: json or yaml")

	_ = viper.BindPFlag("spec", cmd.Flags().Lookup("spec"))
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))

	return cmd
}

func runStats(ctx context.Context, cmd *cobra.Command, opts statsOptions) error {
	service := newAppService()
	result, err := service.DocumentStats(ctx, app.StatsRequest{
		SpecPath: resolveString(cmd, opts.Spec, "spec", "spec"),
	})
	if err != nil {
		return err
	}
	return writeOutput(cmd, resolveString(cmd, opts.Output, "output", "output"), result.Stats)
}
