package repository

import (
	"context"
	"log/slog"

	"github.com/railcat/railcat/pkg/catalogue"
)

// AddRoute validates the input, derives identifier and duration, and
// stores the route with its stops and the assignment of the train in one
// transaction. The train must exist. The cache gets the route only after
// the transaction commits.
func (r *Repository) AddRoute(
	ctx context.Context,
	in catalogue.RouteInput,
) (catalogue.Route, error) {
	if err := in.Validate(); err != nil {
		return catalogue.Route{}, err
	}
	route := in.Route()

	if err := r.addRoute(ctx, route, in.TrainID); err != nil {
		return catalogue.Route{}, err
	}
	return route, nil
}

// addRoute stores a valid route, assigning trainID when it is not 0.
func (r *Repository) addRoute(
	ctx context.Context,
	route catalogue.Route,
	trainID int,
) error {
	var err error
	if trainID == 0 {
		err = r.gw.SaveRoute(ctx, route)
	} else {
		err = r.gw.SaveAssignedRoute(ctx, route, trainID)
	}
	if err != nil {
		return err
	}

	r.cache.AddRoute(route)
	slog.Info("Added route",
		"route", route.Identifier,
		"stops", len(route.Stops),
		"train_id", trainID,
	)
	return nil
}

// LoadRoutes reads all routes from the store.
func (r *Repository) LoadRoutes(ctx context.Context) ([]catalogue.Route, error) {
	return r.gw.LoadRoutes(ctx)
}

// AllRoutes returns the durable list of routes for display.
func (r *Repository) AllRoutes(ctx context.Context) ([]catalogue.Route, error) {
	return r.LoadRoutes(ctx)
}

// AssignTrainToRoute links the train to the route identified by the first
// and last of the stops.
func (r *Repository) AssignTrainToRoute(
	ctx context.Context,
	trainID int,
	stops []string,
) error {
	if err := checkStops(stops); err != nil {
		return err
	}
	if err := r.gw.AssignTrainToRoute(ctx, trainID, stops); err != nil {
		return err
	}
	slog.Info("Assigned train to route",
		"train_id", trainID,
		"route", catalogue.RouteIdentifier(stops),
	)
	return nil
}

// TrainsForRoute returns IDs of trains serving the route.
func (r *Repository) TrainsForRoute(
	ctx context.Context,
	stops []string,
) ([]int, error) {
	if err := checkStops(stops); err != nil {
		return nil, err
	}
	return r.gw.GetTrainsForRoute(ctx, stops)
}

// RoutesForTrain returns stop lists of routes the train serves.
func (r *Repository) RoutesForTrain(
	ctx context.Context,
	trainID int,
) ([][]string, error) {
	return r.gw.GetRoutesForTrain(ctx, trainID)
}

func checkStops(stops []string) error {
	if len(stops) < 2 {
		return catalogue.InvalidFieldError(
			"Stops", len(stops), "must have at least 2 items",
		)
	}
	return nil
}
