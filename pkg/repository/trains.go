package repository

import (
	"context"
	"log/slog"

	"github.com/railcat/railcat/pkg/catalogue"
	"github.com/railcat/railcat/pkg/errcode"
)

// AddTrain validates the input and stores the train, replacing a train
// with the same ID. Absent start or end stations are created with one
// platform, or the train is rejected with ReferentialError when automatic
// creation is off.
func (r *Repository) AddTrain(
	ctx context.Context,
	in catalogue.TrainInput,
) (catalogue.Train, error) {
	if err := in.Validate(); err != nil {
		return catalogue.Train{}, err
	}
	t := in.Train()

	var missing []catalogue.Station
	refs := []*string{&t.StartStation, &t.EndStation}
	for _, ref := range refs {
		if *ref == "" {
			continue
		}

		s, err := r.gw.GetStationByName(ctx, *ref)
		if err == nil {
			// keep the stored spelling
			*ref = s.Name
			continue
		}
		if catalogue.Kind(err) != errcode.NotFoundError {
			return catalogue.Train{}, err
		}
		if !r.autoCreateStations {
			return catalogue.Train{}, catalogue.MissingStationError(*ref)
		}
		if !containsStation(missing, *ref) {
			missing = append(missing,
				catalogue.Station{Name: *ref, PlatformCount: 1})
		}
	}

	if err := r.gw.SaveTrainWithStations(ctx, t, missing); err != nil {
		return catalogue.Train{}, err
	}

	for _, s := range missing {
		r.cache.AddStation(s)
	}
	r.cache.UpsertTrain(t)
	slog.Info("Added train", "train_id", t.ID, "name", t.Name)
	return t, nil
}

// DeleteTrain removes the train from the store and then from the cache.
func (r *Repository) DeleteTrain(ctx context.Context, id int) error {
	if err := r.gw.DeleteTrain(ctx, id); err != nil {
		return err
	}
	r.cache.RemoveTrain(id)
	slog.Info("Deleted train", "train_id", id)
	return nil
}

// GetTrainByID reads the train from the store.
func (r *Repository) GetTrainByID(
	ctx context.Context,
	id int,
) (catalogue.Train, error) {
	return r.gw.GetTrainByID(ctx, id)
}

// TrainInfo is a train together with the stops of routes it serves.
type TrainInfo struct {
	Train  catalogue.Train
	Routes [][]string
}

// TrainInfo collects the durable state of a train.
func (r *Repository) TrainInfo(ctx context.Context, id int) (TrainInfo, error) {
	var res TrainInfo
	t, err := r.gw.GetTrainByID(ctx, id)
	if err != nil {
		return res, err
	}
	routes, err := r.gw.GetRoutesForTrain(ctx, id)
	if err != nil {
		return res, err
	}
	res.Train = t
	res.Routes = routes
	return res, nil
}

func containsStation(ss []catalogue.Station, name string) bool {
	for _, v := range ss {
		if catalogue.SameStation(v.Name, name) {
			return true
		}
	}
	return false
}
