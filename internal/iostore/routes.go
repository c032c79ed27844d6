package iostore

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/railcat/railcat/pkg/catalogue"
)

const selectRoutesQ = `
SELECT identifier, dep_hour, dep_minute, arr_hour, arr_minute, duration
  FROM routes`

// SaveRoute writes the route and its ordered stops in one transaction.
func (g *sqliteGateway) SaveRoute(
	ctx context.Context,
	r catalogue.Route,
) error {
	return g.saveRoute(ctx, r, 0)
}

// SaveAssignedRoute writes the route, its stops and the assignment of the
// train to it in one transaction. The train must exist.
func (g *sqliteGateway) SaveAssignedRoute(
	ctx context.Context,
	r catalogue.Route,
	trainID int,
) error {
	return g.saveRoute(ctx, r, trainID)
}

// saveRoute skips the assignment when trainID is 0.
func (g *sqliteGateway) saveRoute(
	ctx context.Context,
	r catalogue.Route,
	trainID int,
) error {
	if len(r.Stops) < 2 {
		return catalogue.InvalidFieldError(
			"Stops", len(r.Stops), "must have at least 2 items",
		)
	}
	r.Identifier = catalogue.RouteIdentifier(r.Stops)

	err := g.withTx(ctx, "save route", func(tx *sql.Tx) error {
		found, err := routeExists(ctx, tx, r.Identifier)
		if err != nil {
			return err
		}
		if found {
			return DuplicateRouteError(r.Identifier, r.Start(), r.End())
		}

		if trainID != 0 {
			if err = checkTrain(ctx, tx, trainID); err != nil {
				return err
			}
		}

		_, err = tx.ExecContext(ctx, `
INSERT INTO routes
    (identifier, dep_hour, dep_minute, arr_hour, arr_minute, duration)
VALUES (?, ?, ?, ?, ?, ?)`,
			r.Identifier,
			r.Departure.Hour, r.Departure.Minute,
			r.Arrival.Hour, r.Arrival.Minute,
			r.Duration,
		)
		if err != nil {
			return PersistenceError("save route", err)
		}

		for i, stop := range r.Stops {
			_, err = tx.ExecContext(ctx, `
INSERT INTO route_stops (route_id, stop_name, stop_order)
VALUES (?, ?, ?)`,
				r.Identifier, stop, i,
			)
			if err != nil {
				return PersistenceError("save route stop", err)
			}
		}

		if trainID != 0 {
			return insertAssignment(ctx, tx, trainID, r.Identifier)
		}
		return nil
	})
	if err != nil {
		return err
	}

	slog.Debug("Saved route",
		"route", r.Identifier, "stops", len(r.Stops), "train_id", trainID)
	return nil
}

// LoadRoutes returns all routes in insertion order with stops ordered by
// their position.
func (g *sqliteGateway) LoadRoutes(
	ctx context.Context,
) ([]catalogue.Route, error) {
	if g.db == nil {
		return nil, NotConnectedError()
	}

	rows, err := g.db.QueryContext(ctx, selectRoutesQ+" ORDER BY rowid")
	if err != nil {
		return nil, PersistenceError("load routes", err)
	}

	var res []catalogue.Route
	for rows.Next() {
		r, err := scanRoute(rows)
		if err != nil {
			rows.Close()
			return nil, PersistenceError("load routes", err)
		}
		res = append(res, r)
	}
	err = rows.Err()
	rows.Close()
	if err != nil {
		return nil, PersistenceError("load routes", err)
	}

	// The single connection must be released before the next query.
	stops, err := loadStops(ctx, g.db, "", nil)
	if err != nil {
		return nil, PersistenceError("load route stops", err)
	}
	for i := range res {
		res[i].Stops = stops[res[i].Identifier]
	}
	return res, nil
}

// GetRoute finds the route identified by the first and last of the given
// stops.
func (g *sqliteGateway) GetRoute(
	ctx context.Context,
	stops []string,
) (catalogue.Route, error) {
	if g.db == nil {
		return catalogue.Route{}, NotConnectedError()
	}

	id := catalogue.RouteIdentifier(stops)
	row := g.db.QueryRowContext(ctx,
		selectRoutesQ+" WHERE identifier = ? COLLATE NOCASE", id)
	r, err := scanRoute(row)
	if errors.Is(err, sql.ErrNoRows) {
		return r, RouteNotFoundError(id)
	}
	if err != nil {
		return r, PersistenceError("get route", err)
	}

	res, err := loadStops(ctx, g.db,
		" WHERE route_id = ?", []any{r.Identifier})
	if err != nil {
		return r, PersistenceError("get route stops", err)
	}
	r.Stops = res[r.Identifier]
	return r, nil
}

func routeExists(ctx context.Context, q queryer, id string) (bool, error) {
	var n int
	err := q.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM routes WHERE identifier = ? COLLATE NOCASE", id,
	).Scan(&n)
	if err != nil {
		return false, PersistenceError("check route", err)
	}
	return n > 0, nil
}

func scanRoute(s scanner) (catalogue.Route, error) {
	var r catalogue.Route
	err := s.Scan(
		&r.Identifier,
		&r.Departure.Hour, &r.Departure.Minute,
		&r.Arrival.Hour, &r.Arrival.Minute,
		&r.Duration,
	)
	if err != nil {
		return catalogue.Route{}, err
	}
	return r, nil
}

// loadStops returns stop names per route ID, ordered by stop_order.
// The where clause is a fixed fragment, values go through args.
func loadStops(
	ctx context.Context,
	q queryer,
	where string,
	args []any,
) (map[string][]string, error) {
	query := "SELECT route_id, stop_name FROM route_stops" + where +
		" ORDER BY route_id, stop_order"
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := make(map[string][]string)
	for rows.Next() {
		var id, stop string
		if err = rows.Scan(&id, &stop); err != nil {
			return nil, err
		}
		res[id] = append(res[id], stop)
	}
	return res, rows.Err()
}
