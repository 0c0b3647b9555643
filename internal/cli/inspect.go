package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"reqspec/internal/app"
)

type inspectOptions struct {
	Input string
}

func newInspectCommand() *cobra.Command {
	opts := inspectOptions{}
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Summarise a previously written spec document",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInspect(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Input, "input", "", "Spec document path")
	_ = viper.BindPFlag("input", cmd.Flags().Lookup("input"))
	return cmd
}

func runInspect(cmd *cobra.Command, opts inspectOptions) error {
	service, err := newAppService()
	if err != nil {
		return err
	}
	result, err := service.Inspect(app.InspectRequest{
		Input: resolveString(cmd, opts.Input, "input", "input"),
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if result.Project != "" {
		fmt.Fprintf(out, "project: %s\n", result.Project)
	}
	fmt.Fprintf(out, "requirements: %d\n", len(result.Requirements))
	fmt.Fprintf(out, "constraints: %d\n", len(result.Constraints))
	fmt.Fprintf(out, "overrides: %d\n", len(result.Overrides))
	if len(result.Extras) > 0 {
		fmt.Fprintf(out, "extras: %s\n", strings.Join(result.Extras, ", "))
	}
	fmt.Fprintln(out, "packages:")
	for _, pkg := range result.Packages {
		var flags []string
		if pkg.Constrained {
			flags = append(flags, "constrained")
		}
		if pkg.Overridden {
			flags = append(flags, "overridden")
		}
		line := fmt.Sprintf("- %s: %d requirements", pkg.Name, pkg.Requirements)
		if len(flags) > 0 {
			line += " (" + strings.Join(flags, ", ") + ")"
		}
		fmt.Fprintln(out, line)
	}
	return nil
}
