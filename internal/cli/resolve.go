package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"oasref/internal/app"
	"oasref/internal/types"
)

type resolveOptions struct {
	Spec            string
	Name            string
	Pointer         string
	MaxDepth        int
	IncludeCircular bool
	Output          string
}

func newResolveCommand() *cobra.Command {
	opts := resolveOptions{}
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Expand a named schema with all references inlined",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runResolve(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Spec, "spec", "", "Spec file path")
	cmd.Flags().StringVar(&opts.Name, "name", "", "Schema name to resolve")
	cmd.Flags().StringVar(&opts.Pointer, "pointer", "", "Schema pointer to resolve instead of a name")
	cmd.Flags().IntVar(&opts.MaxDepth, "max-depth", types.DefaultMaxDepth, "Maximum reference depth to expand")
	cmd.Flags().BoolVar(&opts.IncludeCircular, "include-circular", true, "Report circular reference chains")
	cmd.Flags().StringVar(&opts.Output, "output", "json", "Output format: json or yaml")

	_ = viper.BindPFlag("spec", cmd.Flags().Lookup("spec"))
	_ = viper.BindPFlag("name", cmd.Flags().Lookup("name"))
	_ = viper.BindPFlag("pointer", cmd.Flags().Lookup("pointer"))
	_ = viper.BindPFlag("max_depth", cmd.Flags().Lookup("max-depth"))
	_ = viper.BindPFlag("include_circular", cmd.Flags().Lookup("include-circular"))
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))

	return cmd
}

func runResolve(ctx context.Context, cmd *cobra.Command, opts resolveOptions) error {
	service := newAppService()
	maxDepth := resolveInt(cmd, opts.MaxDepth, "max_depth", "max-depth")
	includeCircular := resolveBool(cmd, opts.IncludeCircular, "include_circular", "include-circular")
	result, err := service.Resolve(ctx, app.ResolveRequest{
		SpecPath:        resolveString(cmd, opts.Spec, "spec", "spec"),
		Name:            resolveString(cmd, opts.Name, "name", "name"),
		Pointer:         resolveString(cmd, opts.Pointer, "pointer", "pointer"),
		MaxDepth:        &maxDepth,
		IncludeCircular: &includeCircular,
	})
	if err != nil {
		return err
	}
	return writeOutput(cmd, resolveString(cmd, opts.Output, "output", "output"), result.Result)
}

func resolveString(cmd *cobra.Command, value string, key string, flagName string) string {
	if cmd == nil {
		if value != "" {
			return value
		}
		return viper.GetString(key)
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetString(key)
}

func resolveInt(cmd *cobra.Command, value int, key string, flagName string) int {
	if cmd == nil {
		return value
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetInt(key)
}

func resolveBool(cmd *cobra.Command, value bool, key string, flagName string) bool {
	if cmd == nil {
		return value
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetBool(key)
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil || strings.TrimSpace(name) == "" {
		return false
	}
	if flag := cmd.Flags().Lookup(name); flag != nil {
		return flag.Changed
	}
	return false
}
