package catalogue

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is safe for concurrent use and caches struct metadata.
var validate = newValidator()

// newValidator adds the "station" rule: a station name must not contain
// the route identifier separator in any letter case.
func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("station", func(fl validator.FieldLevel) bool {
		name := strings.ToLower(fl.Field().String())
		return !strings.Contains(name, routeIDSeparator)
	})
	return v
}

// TrainInput carries the fields of a train to add or replace.
type TrainInput struct {
	ID           int    `validate:"gt=0"`
	Name         string `validate:"required"`
	Speed        int    `validate:"gt=0"`
	Capacity     int    `validate:"gt=0"`
	WagonCount   int    `validate:"gt=0"`
	StartStation string `validate:"omitempty,station"`
	EndStation   string `validate:"omitempty,station"`
}

// Validate checks the name, numeric fields and station references of the
// train.
func (in TrainInput) Validate() error {
	in.Name = strings.TrimSpace(in.Name)
	in.StartStation = CleanName(in.StartStation)
	in.EndStation = CleanName(in.EndStation)
	return validateStruct(in)
}

// Train converts the input to a Train with cleaned station references.
func (in TrainInput) Train() Train {
	return Train{
		ID:           in.ID,
		Name:         strings.TrimSpace(in.Name),
		Speed:        in.Speed,
		Capacity:     in.Capacity,
		WagonCount:   in.WagonCount,
		StartStation: CleanName(in.StartStation),
		EndStation:   CleanName(in.EndStation),
	}
}

// StationInput carries the fields of a new station.
type StationInput struct {
	Name          string `validate:"required,station"`
	PlatformCount int
}

// Validate checks that the station has a non-blank name.
func (in StationInput) Validate() error {
	in.Name = CleanName(in.Name)
	return validateStruct(in)
}

// Station converts the input to a Station. The name is cleaned and
// PlatformCount below one is clamped to one.
func (in StationInput) Station() Station {
	return Station{
		Name:          CleanName(in.Name),
		PlatformCount: max(1, in.PlatformCount),
	}
}

// RouteInput carries the fields of a new route and the train that
// serves it.
type RouteInput struct {
	Departure Clock
	Arrival   Clock
	TrainID   int      `validate:"gt=0"`
	Stops     []string `validate:"min=2,dive,required,station"`
}

// Validate checks clock ranges, stops and that arrival is strictly after
// departure.
func (in RouteInput) Validate() error {
	in.Stops = cleanStops(in.Stops)
	if err := validateStruct(in); err != nil {
		return err
	}
	if in.Arrival.Minutes() <= in.Departure.Minutes() {
		return DurationError(in.Departure, in.Arrival)
	}
	return nil
}

// Route converts the input to a Route with derived identifier and
// duration.
func (in RouteInput) Route() Route {
	r := Route{
		Departure: in.Departure,
		Arrival:   in.Arrival,
		Stops:     in.Stops,
	}
	return r.Normalized()
}

// Validate checks a complete route, for example one read from a
// snapshot. Duration is not trusted and is not checked.
func (r Route) Validate() error {
	r.Stops = cleanStops(r.Stops)
	if err := validateStruct(r); err != nil {
		return err
	}
	if r.Arrival.Minutes() <= r.Departure.Minutes() {
		return DurationError(r.Departure, r.Arrival)
	}
	return nil
}

// Normalized returns a copy of the route with cleaned stops and
// identifier and duration derived from them.
func (r Route) Normalized() Route {
	r.Stops = cleanStops(r.Stops)
	r.Identifier = RouteIdentifier(r.Stops)
	r.Duration = r.Arrival.Minutes() - r.Departure.Minutes()
	return r
}

func cleanStops(stops []string) []string {
	res := make([]string, len(stops))
	for i, v := range stops {
		res[i] = CleanName(v)
	}
	return res
}

func validateStruct(input any) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return InvalidFieldError(fieldName(fe), fe.Value(), ruleText(fe))
	}
	return InvalidFieldError("input", input, err.Error())
}

// fieldName drops the struct type from the namespace:
// "RouteInput.Departure.Hour" becomes "Departure.Hour".
func fieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

func ruleText(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("must have at least %s items", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "station":
		return fmt.Sprintf("must not contain '%s'", routeIDSeparator)
	default:
		return fmt.Sprintf("fails '%s' rule", fe.Tag())
	}
}
