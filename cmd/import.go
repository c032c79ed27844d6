package cmd

import (
	"context"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/railcat/railcat/internal/iosnapshot"
	"github.com/railcat/railcat/pkg/repository"
	"github.com/spf13/cobra"
)

// getImportCmd returns the import command.
func getImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Load a YAML snapshot into the catalogue",
		Long: `Load stations, trains, routes and assignments from a YAML snapshot
written by 'railcat export'. Entities go through the same checks as
single additions: stations and routes that already exist are skipped,
trains with the same ID are replaced.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := iosnapshot.ReadFile(args[0])
			if err != nil {
				gn.PrintErrorMessage(err)
				return err
			}

			return withRepository(cmd, false,
				func(ctx context.Context, repo *repository.Repository) error {
					stats, err := iosnapshot.Import(ctx, repo, snap, cmd.ErrOrStderr())
					if err != nil {
						return err
					}
					gn.Info("Imported <em>%s</em> entities, skipped <em>%s</em>",
						humanize.Comma(int64(stats.Added)),
						humanize.Comma(int64(stats.Skipped)))
					return nil
				})
		},
	}
}
