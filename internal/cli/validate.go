package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"reqspec/internal/app"
)

type validateOptions struct {
	sourceOptions
}

func newValidateCommand() *cobra.Command {
	opts := validateOptions{}
	cmd := &cobra.Command{
		Use:   "validate [PACKAGE...]",
		Short: "Check that requirement sources merge cleanly",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd.Context(), cmd, args, opts)
		},
	}
	bindSourceFlags(cmd, &opts.sourceOptions)
	return cmd
}

func runValidate(ctx context.Context, cmd *cobra.Command, packages []string, opts validateOptions) error {
	service, err := newAppService()
	if err != nil {
		return err
	}
	sources := resolveSourceOptions(cmd, opts.sourceOptions)
	result, err := service.Validate(ctx, app.ValidateRequest{
		Packages:     packages,
		Requirements: sources.Requirements,
		Constraints:  sources.Constraints,
		Overrides:    sources.Overrides,
		Extras:       sources.Extras,
		AllExtras:    sources.AllExtras,
	})
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	summary := result.Summary
	if summary.Project != "" {
		fmt.Fprintf(out, "project: %s\n", summary.Project)
	}
	fmt.Fprintf(out, "requirements: %d\n", summary.Requirements)
	fmt.Fprintf(out, "constraints: %d\n", summary.Constraints)
	fmt.Fprintf(out, "overrides: %d\n", summary.Overrides)
	if len(summary.Extras) > 0 {
		fmt.Fprintf(out, "extras: %s\n", strings.Join(summary.Extras, ", "))
	}
	return nil
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
	if configured := viper.GetString(key); configured != "" {
		return configured
	}
	return value
}

func resolveStrings(cmd *cobra.Command, values []string, key string, flagName string) []string {
	if cmd == nil {
		if len(values) > 0 {
			return values
		}
		return viper.GetStringSlice(key)
	}
	if flagChanged(cmd, flagName) {
		return values
	}
	return viper.GetStringSlice(key)
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
	if flag := cmd.PersistentFlags().Lookup(name); flag != nil {
		return flag.Changed
	}
	return false
}
