package iostore

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/railcat/railcat/pkg/catalogue"
)

// AssignTrainToRoute links an existing train to an existing route.
// Repeating an assignment is not an error.
func (g *sqliteGateway) AssignTrainToRoute(
	ctx context.Context,
	trainID int,
	stops []string,
) error {
	id := catalogue.RouteIdentifier(stops)
	err := g.withTx(ctx, "assign train", func(tx *sql.Tx) error {
		if err := checkTrain(ctx, tx, trainID); err != nil {
			return err
		}

		var stored string
		err := tx.QueryRowContext(ctx,
			"SELECT identifier FROM routes WHERE identifier = ? COLLATE NOCASE",
			id,
		).Scan(&stored)
		if errors.Is(err, sql.ErrNoRows) {
			return RouteNotFoundError(id)
		}
		if err != nil {
			return PersistenceError("check route", err)
		}

		return insertAssignment(ctx, tx, trainID, stored)
	})
	if err != nil {
		return err
	}
	slog.Debug("Assigned train to route", "train_id", trainID, "route", id)
	return nil
}

// GetTrainsForRoute returns IDs of trains assigned to the route
// identified by the stops. An unknown route has no trains.
func (g *sqliteGateway) GetTrainsForRoute(
	ctx context.Context,
	stops []string,
) ([]int, error) {
	if g.db == nil {
		return nil, NotConnectedError()
	}

	id := catalogue.RouteIdentifier(stops)
	rows, err := g.db.QueryContext(ctx, `
SELECT train_id FROM train_routes
  WHERE route_id = ? COLLATE NOCASE
  ORDER BY train_id`, id)
	if err != nil {
		return nil, PersistenceError("get trains for route", err)
	}
	defer rows.Close()

	var res []int
	for rows.Next() {
		var trainID int
		if err = rows.Scan(&trainID); err != nil {
			return nil, PersistenceError("get trains for route", err)
		}
		res = append(res, trainID)
	}
	if err = rows.Err(); err != nil {
		return nil, PersistenceError("get trains for route", err)
	}
	return res, nil
}

// GetRoutesForTrain returns stop lists of every route the train is
// assigned to, ordered by route identifier.
func (g *sqliteGateway) GetRoutesForTrain(
	ctx context.Context,
	trainID int,
) ([][]string, error) {
	if g.db == nil {
		return nil, NotConnectedError()
	}

	rows, err := g.db.QueryContext(ctx, `
SELECT rs.route_id, rs.stop_name
  FROM route_stops rs
    JOIN train_routes tr ON tr.route_id = rs.route_id
  WHERE tr.train_id = ?
  ORDER BY rs.route_id, rs.stop_order`, trainID)
	if err != nil {
		return nil, PersistenceError("get routes for train", err)
	}
	defer rows.Close()

	var res [][]string
	var current string
	for rows.Next() {
		var id, stop string
		if err = rows.Scan(&id, &stop); err != nil {
			return nil, PersistenceError("get routes for train", err)
		}
		if len(res) == 0 || id != current {
			res = append(res, nil)
			current = id
		}
		res[len(res)-1] = append(res[len(res)-1], stop)
	}
	if err = rows.Err(); err != nil {
		return nil, PersistenceError("get routes for train", err)
	}
	return res, nil
}

// LoadAssignments returns all train to route links.
func (g *sqliteGateway) LoadAssignments(
	ctx context.Context,
) ([]catalogue.Assignment, error) {
	if g.db == nil {
		return nil, NotConnectedError()
	}

	rows, err := g.db.QueryContext(ctx, `
SELECT train_id, route_id FROM train_routes
  ORDER BY train_id, route_id`)
	if err != nil {
		return nil, PersistenceError("load assignments", err)
	}
	defer rows.Close()

	var res []catalogue.Assignment
	for rows.Next() {
		var a catalogue.Assignment
		if err = rows.Scan(&a.TrainID, &a.RouteID); err != nil {
			return nil, PersistenceError("load assignments", err)
		}
		res = append(res, a)
	}
	if err = rows.Err(); err != nil {
		return nil, PersistenceError("load assignments", err)
	}
	return res, nil
}

func checkTrain(ctx context.Context, q queryer, id int) error {
	var n int
	err := q.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM trains WHERE id = ?", id,
	).Scan(&n)
	if err != nil {
		return PersistenceError("check train", err)
	}
	if n == 0 {
		return TrainNotFoundError(id)
	}
	return nil
}

func insertAssignment(
	ctx context.Context,
	q queryer,
	trainID int,
	routeID string,
) error {
	_, err := q.ExecContext(ctx,
		"INSERT OR IGNORE INTO train_routes (train_id, route_id) VALUES (?, ?)",
		trainID, routeID,
	)
	if err != nil {
		return PersistenceError("assign train", err)
	}
	return nil
}
