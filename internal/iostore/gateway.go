// Package iostore implements store.Gateway on top of a SQLite file using
// the pure Go modernc.org/sqlite driver. This is an impure I/O package
// that implements contracts defined in pkg/.
package iostore

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/railcat/railcat/pkg/config"
	"github.com/railcat/railcat/pkg/store"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGo)
)

// sqliteGateway implements store.Gateway. All access goes through one
// connection.
type sqliteGateway struct {
	db   *sql.DB
	path string
}

// queryer is satisfied by both *sql.DB and *sql.Tx.
type queryer interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
	QueryContext(context.Context, string, ...any) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...any) *sql.Row
}

// NewGateway creates a new store gateway (without connecting).
func NewGateway() store.Gateway {
	return &sqliteGateway{}
}

// Connect opens the SQLite file and verifies the connection.
func (g *sqliteGateway) Connect(
	ctx context.Context,
	cfg *config.StoreConfig,
) error {
	if g.db != nil {
		return nil
	}

	path := cfg.Path
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return ConnectionError(path, err)
	}

	// One owner of the file, one connection. This also keeps ":memory:"
	// databases alive between calls.
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)

	if err = db.PingContext(ctx); err != nil {
		db.Close()
		return ConnectionError(path, err)
	}

	if cfg.BusyTimeout > 0 {
		q := fmt.Sprintf("PRAGMA busy_timeout = %d", cfg.BusyTimeout)
		if _, err = db.ExecContext(ctx, q); err != nil {
			db.Close()
			return ConnectionError(path, err)
		}
	}

	g.db = db
	g.path = path
	slog.Info("Connected to catalogue store", "path", path)
	return nil
}

// Close releases the connection.
func (g *sqliteGateway) Close() error {
	if g.db == nil {
		return nil
	}
	err := g.db.Close()
	g.db = nil
	if err != nil {
		return PersistenceError("close store", err)
	}
	slog.Info("Disconnected from catalogue store", "path", g.path)
	return nil
}

// withTx runs fn inside a transaction. The transaction is committed when
// fn returns nil and rolled back otherwise. Errors returned by fn are
// passed through unchanged.
func (g *sqliteGateway) withTx(
	ctx context.Context,
	op string,
	fn func(*sql.Tx) error,
) error {
	if g.db == nil {
		return NotConnectedError()
	}

	tx, err := g.db.BeginTx(ctx, nil)
	if err != nil {
		return PersistenceError(op, err)
	}

	if err = fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			slog.Error("Cannot roll back transaction",
				"operation", op, "error", rbErr)
		}
		return err
	}

	if err = tx.Commit(); err != nil {
		return PersistenceError(op, err)
	}
	return nil
}
