// Package repository coordinates the durable store and the in-memory cache
// of the catalogue. It is the only way to change either of them.
//
// Every mutation follows the same order: validate the input, write it to
// the store, and only when the store accepted the change update the
// cache. A rejected or failed write leaves the cache untouched, so the
// two representations never diverge.
//
// Repository is not safe for concurrent use.
package repository

import (
	"context"
	"log/slog"

	"github.com/railcat/railcat/pkg/cache"
	"github.com/railcat/railcat/pkg/catalogue"
	"github.com/railcat/railcat/pkg/store"
)

// Repository is the consistency coordinator of the catalogue.
type Repository struct {
	gw    store.Gateway
	cache *cache.Cache

	autoCreateStations bool
}

// Option configures a Repository.
type Option func(*Repository)

// OptAutoCreateStations sets whether AddTrain creates stations the train
// refers to when they are absent. When false such trains are rejected.
func OptAutoCreateStations(b bool) Option {
	return func(r *Repository) {
		r.autoCreateStations = b
	}
}

// New creates a Repository over a connected gateway with prepared schema
// and fills the cache from the store.
func New(
	ctx context.Context,
	gw store.Gateway,
	opts ...Option,
) (*Repository, error) {
	res := &Repository{
		gw:                 gw,
		cache:              cache.New(),
		autoCreateStations: true,
	}
	for _, opt := range opts {
		opt(res)
	}

	if err := res.Reload(ctx); err != nil {
		return nil, err
	}
	return res, nil
}

// Reload replaces the cache content with the durable state.
func (r *Repository) Reload(ctx context.Context) error {
	trains, err := r.gw.LoadTrains(ctx)
	if err != nil {
		return err
	}
	stations, err := r.gw.LoadStations(ctx)
	if err != nil {
		return err
	}
	routes, err := r.gw.LoadRoutes(ctx)
	if err != nil {
		return err
	}

	r.cache.Load(trains, stations, routes)
	slog.Debug("Loaded catalogue cache",
		"trains", len(trains),
		"stations", len(stations),
		"routes", len(routes),
	)
	return nil
}

// CachedTrains returns trains held in memory.
func (r *Repository) CachedTrains() []catalogue.Train {
	return r.cache.Trains()
}

// CachedStations returns stations held in memory.
func (r *Repository) CachedStations() []catalogue.Station {
	return r.cache.Stations()
}

// CachedRoutes returns routes held in memory.
func (r *Repository) CachedRoutes() []catalogue.Route {
	return r.cache.Routes()
}

// Counts returns the number of stored rows per relation.
func (r *Repository) Counts(ctx context.Context) (catalogue.Counts, error) {
	return r.gw.Counts(ctx)
}
