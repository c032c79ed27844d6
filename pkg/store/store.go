// Package store defines the contract of the durable catalogue storage.
// The implementation lives in internal/iostore.
package store

import (
	"context"

	"github.com/railcat/railcat/pkg/catalogue"
	"github.com/railcat/railcat/pkg/config"
)

// Gateway defines the durable storage of the catalogue. It owns the
// single store handle and the schema.
//
// Save policies differ per entity:
//   - trains are upserted by ID (last write wins)
//   - stations are rejected when a station with the same normalized name
//     exists
//   - routes are rejected when their derived identifier exists, and are
//     written together with their stops in one transaction
//
// Every write fails closed: when an error is returned nothing has been
// committed.
type Gateway interface {
	// Connect opens the store handle. Calling Connect on a connected
	// gateway is a no-op.
	Connect(context.Context, *config.StoreConfig) error

	// Close releases the store handle. It is safe to call more than once.
	Close() error

	// PrepareSchema creates the relations if they do not exist.
	PrepareSchema(context.Context) error

	// SaveTrain inserts the train or replaces the row with the same ID.
	SaveTrain(context.Context, catalogue.Train) error

	// SaveTrainWithStations inserts the given stations and upserts the
	// train in one transaction.
	SaveTrainWithStations(
		context.Context,
		catalogue.Train,
		[]catalogue.Station,
	) error

	// LoadTrains returns all trains ordered by ID.
	LoadTrains(context.Context) ([]catalogue.Train, error)

	// GetTrainByID returns a train or a NotFound error.
	GetTrainByID(context.Context, int) (catalogue.Train, error)

	// DeleteTrain removes the train and its assignments. Returns NotFound
	// error when there is no such train.
	DeleteTrain(context.Context, int) error

	// SaveStation inserts a station or returns Duplicate error.
	SaveStation(context.Context, catalogue.Station) error

	// LoadStations returns all stations ordered by name.
	LoadStations(context.Context) ([]catalogue.Station, error)

	// GetStationByName finds a station by normalized name.
	GetStationByName(context.Context, string) (catalogue.Station, error)

	// DeleteStation removes a station found by normalized name. Routes
	// stopping at the station are left untouched.
	DeleteStation(context.Context, string) error

	// SaveRoute writes a route and its ordered stops, or returns
	// Duplicate error when the derived identifier is taken.
	SaveRoute(context.Context, catalogue.Route) error

	// SaveAssignedRoute is SaveRoute that also assigns the train to the
	// route inside the same transaction.
	SaveAssignedRoute(context.Context, catalogue.Route, int) error

	// LoadRoutes returns all routes with stops in their stored order.
	LoadRoutes(context.Context) ([]catalogue.Route, error)

	// GetRoute returns the route identified by the given stops.
	GetRoute(context.Context, []string) (catalogue.Route, error)

	// AssignTrainToRoute links a train with the route identified by the
	// stops. Assigning twice is a no-op.
	AssignTrainToRoute(context.Context, int, []string) error

	// GetTrainsForRoute returns IDs of trains assigned to the route.
	GetTrainsForRoute(context.Context, []string) ([]int, error)

	// GetRoutesForTrain returns stop lists of routes the train serves.
	GetRoutesForTrain(context.Context, int) ([][]string, error)

	// LoadAssignments returns all train-route links.
	LoadAssignments(context.Context) ([]catalogue.Assignment, error)

	// Counts returns the number of rows in each relation.
	Counts(context.Context) (catalogue.Counts, error)
}
