package cmd

import (
	"context"
	"fmt"

	"github.com/gnames/gn"
	"github.com/railcat/railcat/pkg/catalogue"
	"github.com/railcat/railcat/pkg/report"
	"github.com/railcat/railcat/pkg/repository"
	"github.com/spf13/cobra"
)

// getTrainCmd returns the train command with its subcommands.
func getTrainCmd() *cobra.Command {
	trainCmd := &cobra.Command{
		Use:   "train",
		Short: "Add, delete and show trains",
	}
	trainCmd.AddCommand(
		getTrainAddCmd(),
		getTrainDeleteCmd(),
		getTrainShowCmd(),
		getTrainListCmd(),
	)
	return trainCmd
}

func getTrainAddCmd() *cobra.Command {
	var in catalogue.TrainInput

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a train or replace the train with the same ID",
		Long: `Add a train to the catalogue. A train with the same ID is replaced.

Start and end stations that do not exist yet are created with one
platform, unless catalogue.auto_create_stations is false.

Examples:
  railcat train add --id 1001 --name Express_101 --speed 160 \
    --capacity 400 --wagons 8 --from "Warsaw Central" --to "Krakow Main"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withRepository(cmd, true,
				func(ctx context.Context, repo *repository.Repository) error {
					t, err := repo.AddTrain(ctx, in)
					if err != nil {
						return err
					}
					gn.Info("Train <em>%d</em> (%s) saved", t.ID, t.Name)
					return nil
				})
		},
	}

	f := cmd.Flags()
	f.IntVar(&in.ID, "id", 0, "train ID (positive, unique)")
	f.StringVarP(&in.Name, "name", "n", "", "train name")
	f.IntVar(&in.Speed, "speed", 0, "speed in km/h")
	f.IntVar(&in.Capacity, "capacity", 0, "number of passengers")
	f.IntVar(&in.WagonCount, "wagons", 0, "number of wagons")
	f.StringVar(&in.StartStation, "from", "", "start station")
	f.StringVar(&in.EndStation, "to", "", "end station")
	cmd.MarkFlagRequired("id")

	return cmd
}

func getTrainDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a train and its route assignments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRepository(cmd, true,
				func(ctx context.Context, repo *repository.Repository) error {
					id, err := parseID(args[0])
					if err != nil {
						return err
					}
					if err = repo.DeleteTrain(ctx, id); err != nil {
						return err
					}
					gn.Info("Train <em>%d</em> deleted", id)
					return nil
				})
		},
	}
}

func getTrainShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a train and the routes it serves",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRepository(cmd, true,
				func(ctx context.Context, repo *repository.Repository) error {
					id, err := parseID(args[0])
					if err != nil {
						return err
					}
					info, err := repo.TrainInfo(ctx, id)
					if err != nil {
						return err
					}
					fmt.Fprint(cmd.OutOrStdout(), report.Train(info))
					return nil
				})
		},
	}
}

func getTrainListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all trains",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withRepository(cmd, true,
				func(_ context.Context, repo *repository.Repository) error {
					fmt.Fprint(cmd.OutOrStdout(), report.Trains(repo.CachedTrains()))
					return nil
				})
		},
	}
}
