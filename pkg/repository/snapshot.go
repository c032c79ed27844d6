package repository

import (
	"context"
	"log/slog"

	"github.com/railcat/railcat/pkg/catalogue"
	"github.com/railcat/railcat/pkg/errcode"
)

// ImportStats reports the outcome of Import.
type ImportStats struct {
	// Added is the number of entities written to the store.
	Added int
	// Skipped is the number of stations and routes that already existed
	// and of assignments that refer to absent trains or routes.
	Skipped int
}

// Export returns the complete durable state of the catalogue.
func (r *Repository) Export(ctx context.Context) (catalogue.Snapshot, error) {
	var res catalogue.Snapshot
	var err error

	if res.Stations, err = r.gw.LoadStations(ctx); err != nil {
		return res, err
	}
	if res.Trains, err = r.gw.LoadTrains(ctx); err != nil {
		return res, err
	}
	if res.Routes, err = r.gw.LoadRoutes(ctx); err != nil {
		return res, err
	}
	if res.Assignments, err = r.gw.LoadAssignments(ctx); err != nil {
		return res, err
	}
	return res, nil
}

// Import writes a snapshot through the same operations as single
// additions, in the order stations, trains, routes, assignments. Existing
// stations and routes are skipped, trains are replaced. The progress
// function, when given, is called once per processed entity.
//
// Import stops at the first validation or persistence error. Entities
// written before that stay in the store and the cache.
func (r *Repository) Import(
	ctx context.Context,
	snap catalogue.Snapshot,
	progress func(),
) (ImportStats, error) {
	var stats ImportStats
	tick := func(err error) error {
		if progress != nil {
			progress()
		}
		switch {
		case err == nil:
			stats.Added++
		case skippable(err):
			stats.Skipped++
			slog.Warn("Skipped snapshot entry", "error", err)
		default:
			return err
		}
		return nil
	}

	for _, v := range snap.Stations {
		_, err := r.AddStation(ctx, v.Name, v.PlatformCount)
		if err = tick(err); err != nil {
			return stats, err
		}
	}

	for _, v := range snap.Trains {
		in := catalogue.TrainInput{
			ID:           v.ID,
			Name:         v.Name,
			Speed:        v.Speed,
			Capacity:     v.Capacity,
			WagonCount:   v.WagonCount,
			StartStation: v.StartStation,
			EndStation:   v.EndStation,
		}
		_, err := r.AddTrain(ctx, in)
		if err = tick(err); err != nil {
			return stats, err
		}
	}

	for _, v := range snap.Routes {
		err := v.Validate()
		if err == nil {
			err = r.addRoute(ctx, v.Normalized(), 0)
		}
		if err = tick(err); err != nil {
			return stats, err
		}
	}

	for _, v := range snap.Assignments {
		stops, ok := catalogue.RouteEndpoints(v.RouteID)
		if !ok {
			return stats, catalogue.InvalidFieldError(
				"RouteID", v.RouteID, "is not a route identifier",
			)
		}
		err := r.AssignTrainToRoute(ctx, v.TrainID, stops)
		if err = tick(err); err != nil {
			return stats, err
		}
	}

	slog.Info("Imported snapshot",
		"added", stats.Added, "skipped", stats.Skipped)
	return stats, nil
}

func skippable(err error) bool {
	switch catalogue.Kind(err) {
	case errcode.DuplicateError, errcode.NotFoundError:
		return true
	default:
		return false
	}
}
