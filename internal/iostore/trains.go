package iostore

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/railcat/railcat/pkg/catalogue"
)

const upsertTrainQ = `
INSERT INTO trains
    (id, name, speed, capacity, wagon_count, start_station, end_station)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
    name = excluded.name,
    speed = excluded.speed,
    capacity = excluded.capacity,
    wagon_count = excluded.wagon_count,
    start_station = excluded.start_station,
    end_station = excluded.end_station`

const selectTrainsQ = `
SELECT id, name, speed, capacity, wagon_count, start_station, end_station
  FROM trains`

// SaveTrain inserts the train or replaces the stored row with the same ID.
func (g *sqliteGateway) SaveTrain(
	ctx context.Context,
	t catalogue.Train,
) error {
	if g.db == nil {
		return NotConnectedError()
	}
	if err := upsertTrain(ctx, g.db, t); err != nil {
		return err
	}
	slog.Debug("Saved train", "train_id", t.ID, "name", t.Name)
	return nil
}

// SaveTrainWithStations stores stations that are not there yet and
// upserts the train in one transaction.
func (g *sqliteGateway) SaveTrainWithStations(
	ctx context.Context,
	t catalogue.Train,
	stations []catalogue.Station,
) error {
	err := g.withTx(ctx, "save train", func(tx *sql.Tx) error {
		for _, s := range stations {
			_, found, err := findStation(ctx, tx, s.Name)
			if err != nil {
				return err
			}
			if found {
				continue
			}
			if err = insertStation(ctx, tx, s); err != nil {
				return err
			}
			slog.Info("Created station for train",
				"station", s.Name, "train_id", t.ID)
		}
		return upsertTrain(ctx, tx, t)
	})
	if err != nil {
		return err
	}
	slog.Debug("Saved train", "train_id", t.ID, "name", t.Name)
	return nil
}

// LoadTrains returns all trains ordered by ID.
func (g *sqliteGateway) LoadTrains(
	ctx context.Context,
) ([]catalogue.Train, error) {
	if g.db == nil {
		return nil, NotConnectedError()
	}

	rows, err := g.db.QueryContext(ctx, selectTrainsQ+" ORDER BY id")
	if err != nil {
		return nil, PersistenceError("load trains", err)
	}
	defer rows.Close()

	var res []catalogue.Train
	for rows.Next() {
		t, err := scanTrain(rows)
		if err != nil {
			return nil, PersistenceError("load trains", err)
		}
		res = append(res, t)
	}
	if err = rows.Err(); err != nil {
		return nil, PersistenceError("load trains", err)
	}
	return res, nil
}

// GetTrainByID returns the train with the given ID. Numeric columns that
// are not positive are reported as 1.
func (g *sqliteGateway) GetTrainByID(
	ctx context.Context,
	id int,
) (catalogue.Train, error) {
	if g.db == nil {
		return catalogue.Train{}, NotConnectedError()
	}

	row := g.db.QueryRowContext(ctx, selectTrainsQ+" WHERE id = ?", id)
	t, err := scanTrain(row)
	if errors.Is(err, sql.ErrNoRows) {
		return t, TrainNotFoundError(id)
	}
	if err != nil {
		return t, PersistenceError("get train", err)
	}

	t.Speed = max(1, t.Speed)
	t.Capacity = max(1, t.Capacity)
	t.WagonCount = max(1, t.WagonCount)
	return t, nil
}

// DeleteTrain removes the train and its route assignments.
func (g *sqliteGateway) DeleteTrain(ctx context.Context, id int) error {
	err := g.withTx(ctx, "delete train", func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, "DELETE FROM trains WHERE id = ?", id)
		if err != nil {
			return PersistenceError("delete train", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return PersistenceError("delete train", err)
		}
		if n == 0 {
			return TrainNotFoundError(id)
		}

		_, err = tx.ExecContext(ctx,
			"DELETE FROM train_routes WHERE train_id = ?", id)
		if err != nil {
			return PersistenceError("delete train assignments", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	slog.Debug("Deleted train", "train_id", id)
	return nil
}

func upsertTrain(ctx context.Context, q queryer, t catalogue.Train) error {
	_, err := q.ExecContext(ctx, upsertTrainQ,
		t.ID, t.Name, t.Speed, t.Capacity, t.WagonCount,
		stringToNull(t.StartStation), stringToNull(t.EndStation),
	)
	if err != nil {
		return PersistenceError("save train", err)
	}
	return nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanTrain(s scanner) (catalogue.Train, error) {
	var t catalogue.Train
	var start, end sql.NullString
	err := s.Scan(
		&t.ID, &t.Name, &t.Speed, &t.Capacity, &t.WagonCount, &start, &end,
	)
	if err != nil {
		return catalogue.Train{}, err
	}
	t.StartStation = nullToString(start)
	t.EndStation = nullToString(end)
	return t, nil
}
