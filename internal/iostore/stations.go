package iostore

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/railcat/railcat/pkg/catalogue"
)

// SaveStation inserts a station. A station whose normalized name matches
// a stored one is rejected with DuplicateError.
func (g *sqliteGateway) SaveStation(
	ctx context.Context,
	s catalogue.Station,
) error {
	err := g.withTx(ctx, "save station", func(tx *sql.Tx) error {
		existing, found, err := findStation(ctx, tx, s.Name)
		if err != nil {
			return err
		}
		if found {
			return DuplicateStationError(s.Name, existing.Name)
		}
		return insertStation(ctx, tx, s)
	})
	if err != nil {
		return err
	}
	slog.Debug("Saved station",
		"station", s.Name, "platforms", s.PlatformCount)
	return nil
}

// LoadStations returns all stations ordered by name.
func (g *sqliteGateway) LoadStations(
	ctx context.Context,
) ([]catalogue.Station, error) {
	if g.db == nil {
		return nil, NotConnectedError()
	}
	res, err := loadStations(ctx, g.db)
	if err != nil {
		return nil, PersistenceError("load stations", err)
	}
	return res, nil
}

// GetStationByName finds a station by normalized name.
func (g *sqliteGateway) GetStationByName(
	ctx context.Context,
	name string,
) (catalogue.Station, error) {
	if g.db == nil {
		return catalogue.Station{}, NotConnectedError()
	}

	s, found, err := findStation(ctx, g.db, name)
	if err != nil {
		return s, err
	}
	if !found {
		return s, StationNotFoundError(name)
	}
	return s, nil
}

// DeleteStation removes the station matching the normalized name. Routes
// and trains that mention it are left as they are.
func (g *sqliteGateway) DeleteStation(
	ctx context.Context,
	name string,
) error {
	err := g.withTx(ctx, "delete station", func(tx *sql.Tx) error {
		s, found, err := findStation(ctx, tx, name)
		if err != nil {
			return err
		}
		if !found {
			return StationNotFoundError(name)
		}

		_, err = tx.ExecContext(ctx,
			"DELETE FROM stations WHERE name = ?", s.Name)
		if err != nil {
			return PersistenceError("delete station", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	slog.Debug("Deleted station", "station", name)
	return nil
}

func insertStation(
	ctx context.Context,
	q queryer,
	s catalogue.Station,
) error {
	_, err := q.ExecContext(ctx,
		"INSERT INTO stations (name, platform_count) VALUES (?, ?)",
		s.Name, s.PlatformCount,
	)
	if err != nil {
		return PersistenceError("save station", err)
	}
	return nil
}

func loadStations(ctx context.Context, q queryer) ([]catalogue.Station, error) {
	rows, err := q.QueryContext(ctx,
		"SELECT name, platform_count FROM stations ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []catalogue.Station
	for rows.Next() {
		var s catalogue.Station
		if err = rows.Scan(&s.Name, &s.PlatformCount); err != nil {
			return nil, err
		}
		res = append(res, s)
	}
	return res, rows.Err()
}

// findStation scans stored stations for one with the same normalized
// name. SQLite NOCASE folds ASCII only, so the comparison is done here.
func findStation(
	ctx context.Context,
	q queryer,
	name string,
) (catalogue.Station, bool, error) {
	stations, err := loadStations(ctx, q)
	if err != nil {
		return catalogue.Station{}, false, PersistenceError("find station", err)
	}

	key := catalogue.NormalizeName(name)
	for _, s := range stations {
		if s.Key() == key {
			return s, true, nil
		}
	}
	return catalogue.Station{}, false, nil
}
