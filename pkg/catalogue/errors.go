package catalogue

import (
	"errors"
	"fmt"

	"github.com/gnames/gn"
	"github.com/railcat/railcat/pkg/errcode"
)

// Kind returns the error code of the first *gn.Error in the chain of
// err, or errcode.UnknownError.
func Kind(err error) gn.ErrorCode {
	var gnErr *gn.Error
	if errors.As(err, &gnErr) {
		return gnErr.Code
	}
	return errcode.UnknownError
}

// InvalidFieldError is returned when an input field breaks a
// validation rule.
func InvalidFieldError(field string, value any, rule string) error {
	msg := "Invalid value <em>%v</em> for %s: %s"
	vars := []any{value, field, rule}
	return &gn.Error{
		Code: errcode.ValidationError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("invalid %s (%v): %s", field, value, rule),
	}
}

// DurationError is returned when a route does not arrive strictly
// after it departs.
func DurationError(dep, arr Clock) error {
	msg := "Arrival <em>%s</em> must be later than departure <em>%s</em>"
	vars := []any{arr, dep}
	return &gn.Error{
		Code: errcode.ValidationError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("non-positive duration %d minutes",
			arr.Minutes()-dep.Minutes()),
	}
}

// MissingStationError is returned when a train references a station that
// does not exist and automatic creation is disabled.
func MissingStationError(name string) error {
	msg := `Station <em>%s</em> does not exist

<em>How to fix:</em>
  1. Add the station first: <em>railcat station add "%s"</em>
  2. Or enable <em>catalogue.auto_create_stations</em> in config.yaml`
	vars := []any{name, name}
	return &gn.Error{
		Code: errcode.ReferentialError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("referenced station %q is absent", name),
	}
}
