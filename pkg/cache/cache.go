// Package cache keeps the in-memory view of the catalogue. It is a plain
// collection of values with linear lookups and knows nothing about the
// store. The repository is its only writer and updates it after the store
// has accepted a change.
//
// Cache is not safe for concurrent use.
package cache

import (
	"slices"

	"github.com/railcat/railcat/pkg/catalogue"
)

// Cache holds trains, stations and routes in insertion order.
type Cache struct {
	trains   []catalogue.Train
	stations []catalogue.Station
	routes   []catalogue.Route
}

// New creates an empty cache.
func New() *Cache {
	return &Cache{}
}

// Load replaces the cache content.
func (c *Cache) Load(
	trains []catalogue.Train,
	stations []catalogue.Station,
	routes []catalogue.Route,
) {
	c.trains = slices.Clone(trains)
	c.stations = slices.Clone(stations)
	c.routes = slices.Clone(routes)
}

// UpsertTrain replaces the train with the same ID or appends a new one.
func (c *Cache) UpsertTrain(t catalogue.Train) {
	if i := c.trainIndex(t.ID); i >= 0 {
		c.trains[i] = t
		return
	}
	c.trains = append(c.trains, t)
}

// RemoveTrain evicts the train and reports whether it was cached.
func (c *Cache) RemoveTrain(id int) bool {
	i := c.trainIndex(id)
	if i < 0 {
		return false
	}
	c.trains = slices.Delete(c.trains, i, i+1)
	return true
}

// Train returns the cached train with the ID.
func (c *Cache) Train(id int) (catalogue.Train, bool) {
	if i := c.trainIndex(id); i >= 0 {
		return c.trains[i], true
	}
	return catalogue.Train{}, false
}

// Trains returns a copy of cached trains.
func (c *Cache) Trains() []catalogue.Train {
	return slices.Clone(c.trains)
}

// AddStation appends a station. A cached station with the same
// normalized name is replaced instead.
func (c *Cache) AddStation(s catalogue.Station) {
	if i := c.stationIndex(s.Name); i >= 0 {
		c.stations[i] = s
		return
	}
	c.stations = append(c.stations, s)
}

// RemoveStation evicts the station by normalized name.
func (c *Cache) RemoveStation(name string) bool {
	i := c.stationIndex(name)
	if i < 0 {
		return false
	}
	c.stations = slices.Delete(c.stations, i, i+1)
	return true
}

// Station returns the cached station matching the normalized name.
func (c *Cache) Station(name string) (catalogue.Station, bool) {
	if i := c.stationIndex(name); i >= 0 {
		return c.stations[i], true
	}
	return catalogue.Station{}, false
}

// Stations returns a copy of cached stations.
func (c *Cache) Stations() []catalogue.Station {
	return slices.Clone(c.stations)
}

// AddRoute appends a route.
func (c *Cache) AddRoute(r catalogue.Route) {
	r.Stops = slices.Clone(r.Stops)
	c.routes = append(c.routes, r)
}

// Route returns the cached route with the identifier.
func (c *Cache) Route(identifier string) (catalogue.Route, bool) {
	for _, v := range c.routes {
		if v.Identifier == identifier {
			return v, true
		}
	}
	return catalogue.Route{}, false
}

// Routes returns a copy of cached routes.
func (c *Cache) Routes() []catalogue.Route {
	res := make([]catalogue.Route, len(c.routes))
	for i, v := range c.routes {
		v.Stops = slices.Clone(v.Stops)
		res[i] = v
	}
	return res
}

func (c *Cache) trainIndex(id int) int {
	return slices.IndexFunc(c.trains, func(t catalogue.Train) bool {
		return t.ID == id
	})
}

func (c *Cache) stationIndex(name string) int {
	key := catalogue.NormalizeName(name)
	return slices.IndexFunc(c.stations, func(s catalogue.Station) bool {
		return s.Key() == key
	})
}
