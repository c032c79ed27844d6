package iostore

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/railcat/railcat/pkg/errcode"
)

// ConnectionError is returned when the SQLite file cannot be opened.
func ConnectionError(path string, err error) error {
	msg := `Cannot open catalogue store <em>%s</em>

<em>Possible causes:</em>
  - Directory does not exist or is not writable
  - File is not a SQLite database
  - File is locked by another process

<em>How to fix:</em>
  1. Check <em>store.path</em> in config.yaml
  2. Make sure no other railcat process uses the file`
	vars := []any{path}
	return &gn.Error{
		Code: errcode.StoreConnectionError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to open %s: %w", path, err),
	}
}

// NotConnectedError is returned when an operation runs before Connect or
// after Close.
func NotConnectedError() error {
	msg := "Store operation attempted without connection"

	return &gn.Error{
		Code: errcode.StoreNotConnectedError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("not connected to store"),
	}
}

// SchemaError is returned when a relation cannot be created.
func SchemaError(table string, err error) error {
	msg := "Cannot create table <em>%s</em>"
	vars := []any{table}
	return &gn.Error{
		Code: errcode.StoreSchemaError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to create table %s: %w", table, err),
	}
}

// PersistenceError wraps any failure of the underlying store.
func PersistenceError(op string, err error) error {
	msg := "Store failed to <em>%s</em>"
	vars := []any{op}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.PersistenceError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot %s: %w", fn.Name(), op, err),
	}
}

// DuplicateStationError is returned when a station with the same
// normalized name is already stored.
func DuplicateStationError(name, existing string) error {
	msg := "Station <em>%s</em> already exists as <em>%s</em>"
	vars := []any{name, existing}
	return &gn.Error{
		Code: errcode.DuplicateError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("station %q already exists", name),
	}
}

// DuplicateRouteError is returned when a route with the same first and
// last stop is already stored.
func DuplicateRouteError(identifier, first, last string) error {
	msg := `Route from <em>%s</em> to <em>%s</em> already exists

Routes are identified by their first and last stop (<em>%s</em>).`
	vars := []any{first, last, identifier}
	return &gn.Error{
		Code: errcode.DuplicateError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("route %q already exists", identifier),
	}
}

// TrainNotFoundError is returned when no train has the given ID.
func TrainNotFoundError(id int) error {
	msg := "Train with ID <em>%d</em> not found"
	vars := []any{id}
	return &gn.Error{
		Code: errcode.NotFoundError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("train %d not found", id),
	}
}

// StationNotFoundError is returned when no station matches the name.
func StationNotFoundError(name string) error {
	msg := "Station <em>%s</em> not found"
	vars := []any{name}
	return &gn.Error{
		Code: errcode.NotFoundError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("station %q not found", name),
	}
}

// RouteNotFoundError is returned when no route has the identifier.
func RouteNotFoundError(identifier string) error {
	msg := "Route <em>%s</em> not found"
	vars := []any{identifier}
	return &gn.Error{
		Code: errcode.NotFoundError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("route %q not found", identifier),
	}
}
