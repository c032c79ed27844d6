package catalogue_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gnames/gn"
	"github.com/railcat/railcat/pkg/catalogue"
	"github.com/railcat/railcat/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		msg, inp, res string
	}{
		{"already normal", "Warsaw Central", "Warsaw Central"},
		{"lower case", "warsaw central", "Warsaw Central"},
		{"upper case", "KRAKOW MAIN", "Krakow Main"},
		{"extra spaces", "  gdansk   central ", "Gdansk Central"},
		{"tabs", "lodz\twidzew", "Lodz Widzew"},
		{"non ascii", "łódź FABRYCZNA", "Łódź Fabryczna"},
		{"empty", "   ", ""},
	}

	for _, v := range tests {
		assert.Equal(t, v.res, catalogue.NormalizeName(v.inp), v.msg)
	}
}

func TestCleanName(t *testing.T) {
	assert.Equal(t, "warsaw Central", catalogue.CleanName("  warsaw   Central "))
	assert.Equal(t, "", catalogue.CleanName(" \t "))
}

func TestSameStation(t *testing.T) {
	assert.True(t, catalogue.SameStation("Warsaw Central", "warsaw central"))
	assert.True(t, catalogue.SameStation(" WARSAW  central", "Warsaw Central"))
	assert.False(t, catalogue.SameStation("Warsaw Central", "Warsaw East"))
}

func TestRouteIdentifier(t *testing.T) {
	tests := []struct {
		msg   string
		stops []string
		res   string
	}{
		{
			msg:   "first and last stop",
			stops: []string{"Warsaw Central", "Lodz Widzew", "Krakow Main"},
			res:   "Warsaw Central_to_Krakow Main",
		},
		{
			msg:   "intermediate stops are ignored",
			stops: []string{"Warsaw Central", "Radom", "Kielce", "Krakow Main"},
			res:   "Warsaw Central_to_Krakow Main",
		},
		{
			msg:   "case insensitive",
			stops: []string{"warsaw central", "KRAKOW MAIN"},
			res:   "Warsaw Central_to_Krakow Main",
		},
		{
			msg:   "empty",
			stops: nil,
			res:   "",
		},
	}

	for _, v := range tests {
		assert.Equal(t, v.res, catalogue.RouteIdentifier(v.stops), v.msg)
	}
}

func TestRouteEndpoints(t *testing.T) {
	id := catalogue.RouteIdentifier([]string{"gdansk central", "X", "wroclaw main"})
	stops, ok := catalogue.RouteEndpoints(id)
	require.True(t, ok)
	assert.Equal(t, []string{"Gdansk Central", "Wroclaw Main"}, stops)
	assert.Equal(t, id, catalogue.RouteIdentifier(stops))

	for _, v := range []string{"", "Gdansk Central", "_to_Wroclaw"} {
		_, ok = catalogue.RouteEndpoints(v)
		assert.False(t, ok, v)
	}

	in := catalogue.RouteInput{
		Departure: catalogue.Clock{Hour: 8},
		Arrival:   catalogue.Clock{Hour: 9},
		TrainID:   1,
		Stops:     []string{"Gdansk", "Port_to_Sea"},
	}
	err := in.Validate()
	assert.Equal(t, errcode.ValidationError, catalogue.Kind(err))
}

func TestClock(t *testing.T) {
	c := catalogue.Clock{Hour: 8, Minute: 5}
	assert.Equal(t, 485, c.Minutes())
	assert.Equal(t, "08:05", c.String())
}

func TestRouteInput(t *testing.T) {
	in := catalogue.RouteInput{
		Departure: catalogue.Clock{Hour: 8, Minute: 30},
		Arrival:   catalogue.Clock{Hour: 11, Minute: 45},
		TrainID:   1001,
		Stops: []string{" Warsaw Central", "Lodz  Widzew",
			"Czestochowa", "Krakow Main "},
	}
	require.NoError(t, in.Validate())

	r := in.Route()
	assert.Equal(t, 195, r.Duration)
	assert.Equal(t, "Warsaw Central_to_Krakow Main", r.Identifier)
	assert.Equal(t, []string{"Warsaw Central", "Lodz Widzew",
		"Czestochowa", "Krakow Main"}, r.Stops)
	assert.Equal(t, "Warsaw Central", r.Start())
	assert.Equal(t, "Krakow Main", r.End())
	assert.True(t, r.Passes("lodz widzew"))
	assert.False(t, r.Passes("Radom"))
}

func TestRouteInputValidation(t *testing.T) {
	valid := func() catalogue.RouteInput {
		return catalogue.RouteInput{
			Departure: catalogue.Clock{Hour: 10},
			Arrival:   catalogue.Clock{Hour: 12},
			TrainID:   1,
			Stops:     []string{"A", "B"},
		}
	}

	tests := []struct {
		msg    string
		modify func(*catalogue.RouteInput)
		field  string
	}{
		{"arrival before departure", func(in *catalogue.RouteInput) {
			in.Arrival = catalogue.Clock{Hour: 9}
		}, "departure"},
		{"equal times", func(in *catalogue.RouteInput) {
			in.Arrival = in.Departure
		}, "departure"},
		{"hour too big", func(in *catalogue.RouteInput) {
			in.Departure.Hour = 24
		}, "Departure.Hour"},
		{"negative minute", func(in *catalogue.RouteInput) {
			in.Arrival.Minute = -1
		}, "Arrival.Minute"},
		{"minute too big", func(in *catalogue.RouteInput) {
			in.Arrival.Minute = 60
		}, "Arrival.Minute"},
		{"one stop", func(in *catalogue.RouteInput) {
			in.Stops = []string{"A"}
		}, "Stops"},
		{"blank stop", func(in *catalogue.RouteInput) {
			in.Stops = []string{"A", "  ", "B"}
		}, "Stops[1]"},
		{"no train", func(in *catalogue.RouteInput) {
			in.TrainID = 0
		}, "TrainID"},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			in := valid()
			v.modify(&in)
			err := in.Validate()
			require.Error(t, err)
			assert.Equal(t, errcode.ValidationError, catalogue.Kind(err))

			gnErr, ok := err.(*gn.Error)
			require.True(t, ok, "Error should be of type *gn.Error")
			assert.Contains(t, fmt.Sprintf(gnErr.Msg, gnErr.Vars...), v.field)
		})
	}
}

func TestRouteValidate(t *testing.T) {
	r := catalogue.Route{
		Identifier: "stale",
		Departure:  catalogue.Clock{Hour: 9, Minute: 15},
		Arrival:    catalogue.Clock{Hour: 13, Minute: 30},
		Duration:   1,
		Stops:      []string{"Gdansk  Central", "Bydgoszcz", "Wroclaw Main"},
	}
	require.NoError(t, r.Validate())

	n := r.Normalized()
	assert.Equal(t, 255, n.Duration)
	assert.Equal(t, "Gdansk Central_to_Wroclaw Main", n.Identifier)
	assert.Equal(t, "Gdansk Central", n.Start())
	assert.Equal(t, "stale", r.Identifier, "receiver is not modified")

	r.Stops = r.Stops[:1]
	assert.Equal(t, errcode.ValidationError, catalogue.Kind(r.Validate()))

	r.Stops = []string{"A", "B"}
	r.Arrival = r.Departure
	assert.Equal(t, errcode.ValidationError, catalogue.Kind(r.Validate()))
}

func TestTrainInputValidation(t *testing.T) {
	valid := catalogue.TrainInput{
		ID: 5, Name: "Express", Speed: 160, Capacity: 400, WagonCount: 8,
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		msg    string
		modify func(*catalogue.TrainInput)
	}{
		{"zero id", func(in *catalogue.TrainInput) { in.ID = 0 }},
		{"negative speed", func(in *catalogue.TrainInput) { in.Speed = -1 }},
		{"zero capacity", func(in *catalogue.TrainInput) { in.Capacity = 0 }},
		{"zero wagons", func(in *catalogue.TrainInput) { in.WagonCount = 0 }},
		{"blank name", func(in *catalogue.TrainInput) { in.Name = "  " }},
		{"separator in start", func(in *catalogue.TrainInput) {
			in.StartStation = "Port_to_Sea"
		}},
	}

	for _, v := range tests {
		in := valid
		v.modify(&in)
		err := in.Validate()
		assert.Equal(t, errcode.ValidationError, catalogue.Kind(err), v.msg)
	}
}

func TestStationInput(t *testing.T) {
	in := catalogue.StationInput{Name: "  Krakow   Main ", PlatformCount: -3}
	require.NoError(t, in.Validate())
	st := in.Station()
	assert.Equal(t, "Krakow Main", st.Name)
	assert.Equal(t, 1, st.PlatformCount)
	assert.Equal(t, "Krakow Main", st.Key())

	for _, v := range []string{"   ", "Port_to_Sea", "port_TO_sea"} {
		in := catalogue.StationInput{Name: v, PlatformCount: 2}
		err := in.Validate()
		assert.Equal(t, errcode.ValidationError, catalogue.Kind(err), v)
	}
}

func TestKind(t *testing.T) {
	err := catalogue.MissingStationError("Radom")
	assert.Equal(t, errcode.ReferentialError, catalogue.Kind(err))

	wrapped := fmt.Errorf("adding train: %w", err)
	assert.Equal(t, errcode.ReferentialError, catalogue.Kind(wrapped))

	assert.Equal(t, errcode.UnknownError, catalogue.Kind(errors.New("plain")))
	assert.Equal(t, errcode.UnknownError, catalogue.Kind(nil))
}
