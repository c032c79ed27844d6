package iostore

import (
	"context"
	"log/slog"

	"github.com/railcat/railcat/pkg/catalogue"
)

// table pairs a relation name with its DDL.
type table struct {
	name string
	ddl  string
}

// tables are created in this order so that referenced relations exist
// before the relations that refer to them. Foreign keys are declared but
// not enforced (SQLite default), stations can be removed while routes
// still mention them.
var tables = []table{
	{
		name: "trains",
		ddl: `CREATE TABLE IF NOT EXISTS trains (
    id INTEGER PRIMARY KEY,
    name TEXT NOT NULL,
    speed INTEGER NOT NULL,
    capacity INTEGER NOT NULL,
    wagon_count INTEGER NOT NULL,
    start_station TEXT,
    end_station TEXT
)`,
	},
	{
		name: "stations",
		ddl: `CREATE TABLE IF NOT EXISTS stations (
    name TEXT PRIMARY KEY,
    platform_count INTEGER NOT NULL
)`,
	},
	{
		name: "routes",
		ddl: `CREATE TABLE IF NOT EXISTS routes (
    identifier TEXT PRIMARY KEY,
    dep_hour INTEGER NOT NULL,
    dep_minute INTEGER NOT NULL,
    arr_hour INTEGER NOT NULL,
    arr_minute INTEGER NOT NULL,
    duration INTEGER NOT NULL
)`,
	},
	{
		name: "route_stops",
		ddl: `CREATE TABLE IF NOT EXISTS route_stops (
    route_id TEXT NOT NULL,
    stop_name TEXT NOT NULL,
    stop_order INTEGER NOT NULL,
    PRIMARY KEY (route_id, stop_order),
    FOREIGN KEY (route_id) REFERENCES routes(identifier),
    FOREIGN KEY (stop_name) REFERENCES stations(name)
)`,
	},
	{
		name: "train_routes",
		ddl: `CREATE TABLE IF NOT EXISTS train_routes (
    train_id INTEGER NOT NULL,
    route_id TEXT NOT NULL,
    PRIMARY KEY (train_id, route_id),
    FOREIGN KEY (train_id) REFERENCES trains(id),
    FOREIGN KEY (route_id) REFERENCES routes(identifier)
)`,
	},
}

// PrepareSchema creates the catalogue relations if they do not exist.
func (g *sqliteGateway) PrepareSchema(ctx context.Context) error {
	if g.db == nil {
		return NotConnectedError()
	}

	for _, t := range tables {
		if _, err := g.db.ExecContext(ctx, t.ddl); err != nil {
			return SchemaError(t.name, err)
		}
	}

	slog.Debug("Catalogue schema is ready", "tables", len(tables))
	return nil
}

// Counts returns the number of rows in every relation.
func (g *sqliteGateway) Counts(ctx context.Context) (catalogue.Counts, error) {
	var res catalogue.Counts
	if g.db == nil {
		return res, NotConnectedError()
	}

	targets := []struct {
		table string
		dest  *int
	}{
		{"trains", &res.Trains},
		{"stations", &res.Stations},
		{"routes", &res.Routes},
		{"route_stops", &res.RouteStops},
		{"train_routes", &res.Assignments},
	}

	for _, v := range targets {
		// table names come from the list above, not from input
		q := "SELECT COUNT(*) FROM " + v.table
		if err := g.db.QueryRowContext(ctx, q).Scan(v.dest); err != nil {
			return res, PersistenceError("count "+v.table, err)
		}
	}
	return res, nil
}
