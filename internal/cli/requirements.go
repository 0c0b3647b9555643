package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"reqspec/internal/app"
)

type requirementsOptions struct {
	Requirements []string
}

func newRequirementsCommand() *cobra.Command {
	opts := requirementsOptions{}
	cmd := &cobra.Command{
		Use:   "requirements [PACKAGE...]",
		Short: "Print the merged requirements, one per line",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRequirements(cmd.Context(), cmd, args, opts)
		},
	}
	cmd.Flags().StringSliceVarP(&opts.Requirements, "requirement", "r", nil, "Requirements file or pyproject.toml")
	return cmd
}

func runRequirements(ctx context.Context, cmd *cobra.Command, packages []string, opts requirementsOptions) error {
	service, err := newAppService()
	if err != nil {
		return err
	}
	result, err := service.Requirements(ctx, app.RequirementsRequest{
		Packages:     packages,
		Requirements: resolveStrings(cmd, opts.Requirements, "requirements", "requirement"),
	})
	if err != nil {
		return err
	}
	for _, line := range result.Requirements {
		fmt.Fprintln(cmd.OutOrStdout(), line)
	}
	return nil
}
