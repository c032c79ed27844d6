package repository

import (
	"context"
	"log/slog"

	"github.com/railcat/railcat/pkg/catalogue"
)

var seedStations = []catalogue.StationInput{
	{Name: "Warsaw Central", PlatformCount: 5},
	{Name: "Krakow Main", PlatformCount: 4},
	{Name: "Gdansk Central", PlatformCount: 3},
}

// Stations missing from seedStations are created by AddTrain.
var seedTrains = []catalogue.TrainInput{
	{
		ID: 1001, Name: "Express_101", Speed: 160, Capacity: 400,
		WagonCount: 8, StartStation: "Warsaw Central",
		EndStation: "Krakow Main",
	},
	{
		ID: 1002, Name: "InterCity_202", Speed: 140, Capacity: 350,
		WagonCount: 6, StartStation: "Gdansk Central",
		EndStation: "Wroclaw Main",
	},
	{
		ID: 1003, Name: "Regional_303", Speed: 120, Capacity: 250,
		WagonCount: 4, StartStation: "Poznan", EndStation: "Lodz Widzew",
	},
}

var seedRoutes = []catalogue.RouteInput{
	{
		Departure: catalogue.Clock{Hour: 8, Minute: 30},
		Arrival:   catalogue.Clock{Hour: 11, Minute: 45},
		TrainID:   1001,
		Stops: []string{
			"Warsaw Central", "Lodz Widzew", "Czestochowa", "Krakow Main",
		},
	},
	{
		Departure: catalogue.Clock{Hour: 9, Minute: 15},
		Arrival:   catalogue.Clock{Hour: 13, Minute: 30},
		TrainID:   1002,
		Stops: []string{
			"Gdansk Central", "Bydgoszcz", "Poznan", "Wroclaw Main",
		},
	},
}

// Seed fills an empty catalogue with predefined stations, trains and
// routes. It does nothing and returns false when the store already has
// trains or stations.
func (r *Repository) Seed(ctx context.Context) (bool, error) {
	counts, err := r.gw.Counts(ctx)
	if err != nil {
		return false, err
	}
	if !counts.Empty() {
		return false, nil
	}

	autoCreate := r.autoCreateStations
	r.autoCreateStations = true
	defer func() { r.autoCreateStations = autoCreate }()

	for _, v := range seedStations {
		if _, err = r.AddStation(ctx, v.Name, v.PlatformCount); err != nil {
			return false, err
		}
	}
	for _, v := range seedTrains {
		if _, err = r.AddTrain(ctx, v); err != nil {
			return false, err
		}
	}
	for _, v := range seedRoutes {
		if _, err = r.AddRoute(ctx, v); err != nil {
			return false, err
		}
	}

	slog.Info("Seeded empty catalogue",
		"stations", len(r.cache.Stations()),
		"trains", len(seedTrains),
		"routes", len(seedRoutes),
	)
	return true, nil
}
