package cmd

import (
	"strconv"
	"strings"

	"github.com/railcat/railcat/pkg/catalogue"
)

// parseID reads a train ID from a command argument.
func parseID(s string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, catalogue.InvalidFieldError("train ID", s, "must be a number")
	}
	return id, nil
}

// parseClock reads time of day in HH:MM form. Range checks are left to
// route validation.
func parseClock(field, s string) (catalogue.Clock, error) {
	bad := catalogue.InvalidFieldError(field, s, "must be in HH:MM form")

	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return catalogue.Clock{}, bad
	}
	hour, err := strconv.Atoi(hh)
	if err != nil {
		return catalogue.Clock{}, bad
	}
	minute, err := strconv.Atoi(mm)
	if err != nil {
		return catalogue.Clock{}, bad
	}
	return catalogue.Clock{Hour: hour, Minute: minute}, nil
}
