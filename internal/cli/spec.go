package cli

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"reqspec/internal/app"
)

// sourceOptions are the inputs shared by spec and validate.
type sourceOptions struct {
	Requirements []string
	Constraints  []string
	Overrides    []string
	Extras       []string
	AllExtras    bool
}

type specOptions struct {
	sourceOptions
	Format string
	Output string
}

func newSpecCommand() *cobra.Command {
	opts := specOptions{}
	cmd := &cobra.Command{
		Use:   "spec [PACKAGE...]",
		Short: "Merge requirement sources and write the resulting spec",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSpec(cmd.Context(), cmd, args, opts)
		},
	}
	bindSourceFlags(cmd, &opts.sourceOptions)
	cmd.Flags().StringVar(&opts.Format, "format", "yaml", "Output format (yaml, json, txt)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "-", "Output path, - for stdout")
	_ = viper.BindPFlag("format", cmd.Flags().Lookup("format"))
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))
	return cmd
}

func bindSourceFlags(cmd *cobra.Command, opts *sourceOptions) {
	cmd.Flags().StringSliceVarP(&opts.Requirements, "requirement", "r", nil, "Requirements file or pyproject.toml")
	cmd.Flags().StringSliceVarP(&opts.Constraints, "constraint", "c", nil, "Constraints file")
	cmd.Flags().StringSliceVar(&opts.Overrides, "override", nil, "Overrides file")
	cmd.Flags().StringSliceVar(&opts.Extras, "extra", nil, "Optional-dependency group to include")
	cmd.Flags().BoolVar(&opts.AllExtras, "all-extras", false, "Include every optional-dependency group")
	_ = viper.BindPFlag("requirements", cmd.Flags().Lookup("requirement"))
	_ = viper.BindPFlag("constraints", cmd.Flags().Lookup("constraint"))
	_ = viper.BindPFlag("overrides", cmd.Flags().Lookup("override"))
	_ = viper.BindPFlag("extras", cmd.Flags().Lookup("extra"))
	_ = viper.BindPFlag("all_extras", cmd.Flags().Lookup("all-extras"))
}

func resolveSourceOptions(cmd *cobra.Command, opts sourceOptions) sourceOptions {
	return sourceOptions{
		Requirements: resolveStrings(cmd, opts.Requirements, "requirements", "requirement"),
		Constraints:  resolveStrings(cmd, opts.Constraints, "constraints", "constraint"),
		Overrides:    resolveStrings(cmd, opts.Overrides, "overrides", "override"),
		Extras:       resolveStrings(cmd, opts.Extras, "extras", "extra"),
		AllExtras:    resolveBool(cmd, opts.AllExtras, "all_extras", "all-extras"),
	}
}

func runSpec(ctx context.Context, cmd *cobra.Command, packages []string, opts specOptions) error {
	service, err := newAppService()
	if err != nil {
		return err
	}
	sources := resolveSourceOptions(cmd, opts.sourceOptions)
	result, err := service.Spec(ctx, app.SpecRequest{
		Packages:     packages,
		Requirements: sources.Requirements,
		Constraints:  sources.Constraints,
		Overrides:    sources.Overrides,
		Extras:       sources.Extras,
		AllExtras:    sources.AllExtras,
		Format:       resolveString(cmd, opts.Format, "format", "format"),
		OutputPath:   resolveString(cmd, opts.Output, "output", "output"),
	})
	if err != nil {
		return err
	}
	log.Ctx(ctx).Debug().
		Str("project", result.Summary.Project).
		Str("format", result.Format).
		Str("output", result.Output).
		Msg("spec written")
	return nil
}

func newAppService() (app.Service, error) {
	return app.NewService()
}
