package repository

import (
	"context"
	"log/slog"

	"github.com/railcat/railcat/pkg/catalogue"
)

// AddStation stores a new station. The name is trimmed, a blank name is
// a ValidationError, and a platform count below one becomes one. A
// station with the same normalized name is a DuplicateError.
func (r *Repository) AddStation(
	ctx context.Context,
	name string,
	platforms int,
) (catalogue.Station, error) {
	in := catalogue.StationInput{Name: name, PlatformCount: platforms}
	if err := in.Validate(); err != nil {
		return catalogue.Station{}, err
	}
	s := in.Station()

	if err := r.gw.SaveStation(ctx, s); err != nil {
		return catalogue.Station{}, err
	}
	r.cache.AddStation(s)
	slog.Info("Added station", "station", s.Name, "platforms", s.PlatformCount)
	return s, nil
}

// RemoveStation removes the station from the store and then from the
// cache. Routes and trains referring to it are not changed.
func (r *Repository) RemoveStation(ctx context.Context, name string) error {
	if err := r.gw.DeleteStation(ctx, name); err != nil {
		return err
	}
	r.cache.RemoveStation(name)
	slog.Info("Removed station", "station", name)
	return nil
}

// GetStationByName reads the station from the store.
func (r *Repository) GetStationByName(
	ctx context.Context,
	name string,
) (catalogue.Station, error) {
	return r.gw.GetStationByName(ctx, name)
}

// StationInfo is a station with the routes that stop there.
type StationInfo struct {
	Station catalogue.Station
	Routes  []catalogue.Route
}

// StationInfo collects the durable state of a station. Routes are read
// from the store.
func (r *Repository) StationInfo(
	ctx context.Context,
	name string,
) (StationInfo, error) {
	var res StationInfo
	s, err := r.gw.GetStationByName(ctx, name)
	if err != nil {
		return res, err
	}
	routes, err := r.gw.LoadRoutes(ctx)
	if err != nil {
		return res, err
	}

	res.Station = s
	for _, v := range routes {
		if v.Passes(s.Name) {
			res.Routes = append(res.Routes, v)
		}
	}
	return res, nil
}
