// Package catalogue defines the entities of the transit catalogue (trains,
// stations, routes and train-to-route assignments) together with the pure
// rules that govern their identity: station name normalization, derived
// route identifiers and input validation.
//
// Entities are plain values. Relations between them are kept as keys
// (train ID, station name, route identifier) and resolved through the
// repository, never through pointers.
package catalogue

import (
	"fmt"
	"strings"
)

// Train is a rolling stock unit. ID is the unique key.
type Train struct {
	ID           int    `yaml:"id"`
	Name         string `yaml:"name"`
	Speed        int    `yaml:"speed"`
	Capacity     int    `yaml:"capacity"`
	WagonCount   int    `yaml:"wagon_count"`
	StartStation string `yaml:"start_station,omitempty"`
	EndStation   string `yaml:"end_station,omitempty"`
}

// Station is a stop of the network. Its identity is the normalized Name,
// while Name itself keeps the spelling of the first insert.
type Station struct {
	Name          string `yaml:"name"`
	PlatformCount int    `yaml:"platform_count"`
}

// Key returns the identity of the station.
func (s Station) Key() string {
	return NormalizeName(s.Name)
}

// Clock is a time of day with minute precision.
type Clock struct {
	Hour   int `yaml:"hour"   validate:"min=0,max=23"`
	Minute int `yaml:"minute" validate:"min=0,max=59"`
}

// Minutes returns minutes elapsed since midnight.
func (c Clock) Minutes() int {
	return c.Hour*60 + c.Minute
}

// String formats the clock as zero padded HH:MM.
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// Route is a timetabled journey through an ordered list of stops.
// Identifier is derived from the first and last stop.
type Route struct {
	Identifier string   `yaml:"identifier"`
	Departure  Clock    `yaml:"departure"`
	Arrival    Clock    `yaml:"arrival"`
	Duration   int      `yaml:"duration"`
	Stops      []string `yaml:"stops"      validate:"min=2,dive,required,station"`
}

// Start returns the first stop or an empty string.
func (r Route) Start() string {
	if len(r.Stops) == 0 {
		return ""
	}
	return r.Stops[0]
}

// End returns the last stop or an empty string.
func (r Route) End() string {
	if len(r.Stops) == 0 {
		return ""
	}
	return r.Stops[len(r.Stops)-1]
}

// Passes reports whether the route stops at the given station.
func (r Route) Passes(station string) bool {
	for _, v := range r.Stops {
		if SameStation(v, station) {
			return true
		}
	}
	return false
}

// Chain joins stops with arrows: "A -> B -> C".
func (r Route) Chain() string {
	return strings.Join(r.Stops, " -> ")
}

// Assignment links a train to a route.
type Assignment struct {
	TrainID int    `yaml:"train_id"`
	RouteID string `yaml:"route_id"`
}

// Snapshot is the complete durable state of a catalogue.
type Snapshot struct {
	Stations    []Station    `yaml:"stations"`
	Trains      []Train      `yaml:"trains"`
	Routes      []Route      `yaml:"routes"`
	Assignments []Assignment `yaml:"assignments"`
}

// Size returns the number of entities in the snapshot.
func (s Snapshot) Size() int {
	return len(s.Stations) + len(s.Trains) +
		len(s.Routes) + len(s.Assignments)
}

// Counts holds number of rows per relation of the store.
type Counts struct {
	Trains      int
	Stations    int
	Routes      int
	RouteStops  int
	Assignments int
}

// Empty is true when the store holds no trains and no stations.
func (c Counts) Empty() bool {
	return c.Trains == 0 && c.Stations == 0
}
