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

// getRouteCmd returns the route command with its subcommands.
func getRouteCmd() *cobra.Command {
	routeCmd := &cobra.Command{
		Use:   "route",
		Short: "Add routes and assign trains to them",
	}
	routeCmd.AddCommand(
		getRouteAddCmd(),
		getRouteListCmd(),
		getRouteAssignCmd(),
		getRouteTrainsCmd(),
	)
	return routeCmd
}

func getRouteAddCmd() *cobra.Command {
	var trainID int
	var dep, arr string

	cmd := &cobra.Command{
		Use:   "add <stop> <stop>...",
		Short: "Add a route served by a train",
		Long: `Add a route with at least two stops. The route is identified by its
first and last stop, so two routes between the same end stations cannot
coexist. The train must exist and is assigned to the new route.

Examples:
  railcat route add --train 1001 --dep 08:30 --arr 11:45 \
    "Warsaw Central" "Lodz Widzew" "Czestochowa" "Krakow Main"`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRepository(cmd, true,
				func(ctx context.Context, repo *repository.Repository) error {
					in := catalogue.RouteInput{TrainID: trainID, Stops: args}
					var err error
					if in.Departure, err = parseClock("departure", dep); err != nil {
						return err
					}
					if in.Arrival, err = parseClock("arrival", arr); err != nil {
						return err
					}

					r, err := repo.AddRoute(ctx, in)
					if err != nil {
						return err
					}
					gn.Info("Route <em>%s</em> (%s) saved",
						r.Chain(), report.Duration(r.Duration))
					return nil
				})
		},
	}

	f := cmd.Flags()
	f.IntVarP(&trainID, "train", "t", 0, "ID of the train serving the route")
	f.StringVar(&dep, "dep", "", "departure time, HH:MM")
	f.StringVar(&arr, "arr", "", "arrival time, HH:MM")
	cmd.MarkFlagRequired("train")
	cmd.MarkFlagRequired("dep")
	cmd.MarkFlagRequired("arr")

	return cmd
}

func getRouteListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all routes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withRepository(cmd, true,
				func(ctx context.Context, repo *repository.Repository) error {
					routes, err := repo.AllRoutes(ctx)
					if err != nil {
						return err
					}
					fmt.Fprint(cmd.OutOrStdout(), report.Routes(routes))
					return nil
				})
		},
	}
}

func getRouteAssignCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "assign <train-id> <first-stop> <last-stop>",
		Short: "Assign a train to an existing route",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRepository(cmd, true,
				func(ctx context.Context, repo *repository.Repository) error {
					id, err := parseID(args[0])
					if err != nil {
						return err
					}
					stops := args[1:]
					if err = repo.AssignTrainToRoute(ctx, id, stops); err != nil {
						return err
					}
					gn.Info("Train <em>%d</em> assigned to <em>%s</em>",
						id, catalogue.RouteIdentifier(stops))
					return nil
				})
		},
	}
}

func getRouteTrainsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "trains <first-stop> <last-stop>",
		Short: "List trains assigned to a route",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRepository(cmd, true,
				func(ctx context.Context, repo *repository.Repository) error {
					ids, err := repo.TrainsForRoute(ctx, args)
					if err != nil {
						return err
					}
					out := cmd.OutOrStdout()
					if len(ids) == 0 {
						fmt.Fprintln(out, "No trains.")
						return nil
					}
					for _, id := range ids {
						fmt.Fprintln(out, id)
					}
					return nil
				})
		},
	}
}
