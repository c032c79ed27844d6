package cmd

import (
	"context"
	"fmt"

	"github.com/gnames/gn"
	"github.com/railcat/railcat/pkg/report"
	"github.com/railcat/railcat/pkg/repository"
	"github.com/spf13/cobra"
)

// getStationCmd returns the station command with its subcommands.
func getStationCmd() *cobra.Command {
	stationCmd := &cobra.Command{
		Use:   "station",
		Short: "Add, remove and show stations",
	}
	stationCmd.AddCommand(
		getStationAddCmd(),
		getStationRemoveCmd(),
		getStationShowCmd(),
		getStationListCmd(),
	)
	return stationCmd
}

func getStationAddCmd() *cobra.Command {
	var platforms int

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a new station",
		Long: `Add a new station. Names are compared ignoring case and extra
spaces, so "warsaw  central" is the same station as "Warsaw Central".
A platform count below one is stored as one.

Examples:
  railcat station add "Warsaw Central" --platforms 5`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRepository(cmd, true,
				func(ctx context.Context, repo *repository.Repository) error {
					s, err := repo.AddStation(ctx, args[0], platforms)
					if err != nil {
						return err
					}
					gn.Info("Station <em>%s</em> with %d platform(s) saved",
						s.Name, s.PlatformCount)
					return nil
				})
		},
	}

	cmd.Flags().IntVarP(&platforms, "platforms", "p", 1, "number of platforms")
	return cmd
}

func getStationRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove a station (routes keep their stops)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRepository(cmd, true,
				func(ctx context.Context, repo *repository.Repository) error {
					if err := repo.RemoveStation(ctx, args[0]); err != nil {
						return err
					}
					gn.Info("Station <em>%s</em> removed", args[0])
					return nil
				})
		},
	}
}

func getStationShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Show a station and the routes stopping there",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRepository(cmd, true,
				func(ctx context.Context, repo *repository.Repository) error {
					info, err := repo.StationInfo(ctx, args[0])
					if err != nil {
						return err
					}
					fmt.Fprint(cmd.OutOrStdout(), report.Station(info))
					return nil
				})
		},
	}
}

func getStationListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all stations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withRepository(cmd, true,
				func(_ context.Context, repo *repository.Repository) error {
					fmt.Fprint(cmd.OutOrStdout(),
						report.Stations(repo.CachedStations()))
					return nil
				})
		},
	}
}
