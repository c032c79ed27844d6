// Package report renders catalogue entities as plain text for the
// command line.
package report

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/railcat/railcat/pkg/catalogue"
	"github.com/railcat/railcat/pkg/repository"
)

// Train renders a train with the routes it serves.
func Train(info repository.TrainInfo) string {
	t := info.Train
	var sb strings.Builder
	sb.WriteString("Train Information:\n")
	fmt.Fprintf(&sb, "Name: %s\n", t.Name)
	fmt.Fprintf(&sb, "ID: %d\n", t.ID)
	fmt.Fprintf(&sb, "Speed: %d km/h\n", t.Speed)
	fmt.Fprintf(&sb, "Capacity: %s passengers\n",
		humanize.Comma(int64(t.Capacity)))
	fmt.Fprintf(&sb, "Start Station: %s\n", orNone(t.StartStation))
	fmt.Fprintf(&sb, "End Station: %s\n", orNone(t.EndStation))
	fmt.Fprintf(&sb, "Wagon Count: %d\n", t.WagonCount)

	if len(info.Routes) > 0 {
		sb.WriteString("Associated Routes:\n")
		for _, stops := range info.Routes {
			fmt.Fprintf(&sb, "- Route: %s\n", strings.Join(stops, " -> "))
		}
	}
	return sb.String()
}

// Station renders a station with the routes stopping there.
func Station(info repository.StationInfo) string {
	s := info.Station
	var sb strings.Builder
	sb.WriteString("Station Information:\n")
	fmt.Fprintf(&sb, "Name: %s\n", s.Name)
	fmt.Fprintf(&sb, "Platform Count: %d\n", s.PlatformCount)

	if len(info.Routes) == 0 {
		sb.WriteString("No routes currently pass through this station.\n")
		return sb.String()
	}
	sb.WriteString("Routes passing through this station:\n")
	for _, r := range info.Routes {
		fmt.Fprintf(&sb, "- %s departs %s\n", r.Chain(), r.Departure)
	}
	return sb.String()
}

// Routes renders a list of routes, one block per route.
func Routes(routes []catalogue.Route) string {
	if len(routes) == 0 {
		return "No routes.\n"
	}

	var sb strings.Builder
	for i, r := range routes {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "Route %d: %s\n", i+1, r.Identifier)
		fmt.Fprintf(&sb, "Departure: %s\n", r.Departure)
		fmt.Fprintf(&sb, "Arrival: %s\n", r.Arrival)
		fmt.Fprintf(&sb, "Duration: %s\n", Duration(r.Duration))
		fmt.Fprintf(&sb, "Stops: %s\n", r.Chain())
	}
	return sb.String()
}

// Trains renders one line per train.
func Trains(trains []catalogue.Train) string {
	if len(trains) == 0 {
		return "No trains.\n"
	}

	var sb strings.Builder
	for _, t := range trains {
		fmt.Fprintf(&sb, "%d\t%s\t%d km/h\t%s seats\t%d wagons\n",
			t.ID, t.Name, t.Speed,
			humanize.Comma(int64(t.Capacity)), t.WagonCount)
	}
	return sb.String()
}

// Stations renders one line per station.
func Stations(stations []catalogue.Station) string {
	if len(stations) == 0 {
		return "No stations.\n"
	}

	var sb strings.Builder
	for _, s := range stations {
		fmt.Fprintf(&sb, "%s\t%d platforms\n", s.Name, s.PlatformCount)
	}
	return sb.String()
}

// Counts renders the number of stored rows per relation.
func Counts(c catalogue.Counts) string {
	rows := []struct {
		name string
		n    int
	}{
		{"Trains", c.Trains},
		{"Stations", c.Stations},
		{"Routes", c.Routes},
		{"Route stops", c.RouteStops},
		{"Assignments", c.Assignments},
	}

	var sb strings.Builder
	for _, v := range rows {
		fmt.Fprintf(&sb, "%-12s %s\n", v.name+":", humanize.Comma(int64(v.n)))
	}
	return sb.String()
}

// Duration formats minutes as "3h 15m".
func Duration(minutes int) string {
	h, m := minutes/60, minutes%60
	switch {
	case h == 0:
		return fmt.Sprintf("%dm", m)
	case m == 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dh %dm", h, m)
	}
}

func orNone(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
