package cmd

import (
	"context"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/railcat/railcat/internal/iosnapshot"
	"github.com/railcat/railcat/pkg/repository"
	"github.com/spf13/cobra"
)

// getExportCmd returns the export command.
func getExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export [file]",
		Short: "Write the whole catalogue as YAML",
		Long: `Write stations, trains, routes and assignments as a YAML snapshot.
Without a file the snapshot goes to standard output. The snapshot can be
loaded into another store with 'railcat import'.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRepository(cmd, false,
				func(ctx context.Context, repo *repository.Repository) error {
					snap, err := repo.Export(ctx)
					if err != nil {
						return err
					}

					if len(args) == 0 {
						return iosnapshot.Write(cmd.OutOrStdout(), "stdout", snap)
					}

					if err = iosnapshot.WriteFile(args[0], snap); err != nil {
						return err
					}
					gn.Info("Exported <em>%s</em> entities to <em>%s</em>",
						humanize.Comma(int64(snap.Size())), args[0])
					return nil
				})
		},
	}
}
