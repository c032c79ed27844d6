package cmd

import (
	"context"
	"fmt"

	"github.com/railcat/railcat/pkg/report"
	"github.com/railcat/railcat/pkg/repository"
	"github.com/spf13/cobra"
)

// getStatusCmd returns the status command.
func getStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show store location and number of stored rows",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withRepository(cmd, true,
				func(ctx context.Context, repo *repository.Repository) error {
					c, err := repo.Counts(ctx)
					if err != nil {
						return err
					}
					out := cmd.OutOrStdout()
					fmt.Fprintf(out, "Store:       %s\n", cfg.StorePath())
					fmt.Fprint(out, report.Counts(c))
					return nil
				})
		},
	}
}
