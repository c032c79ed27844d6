package catalogue

import "strings"

// routeIDSeparator joins first and last stop in a route identifier.
const routeIDSeparator = "_to_"

// RouteIdentifier derives the key of a route from its stops: normalized
// first stop, "_to_", normalized last stop. Routes sharing both endpoints
// get the same identifier regardless of their intermediate stops.
// Returns an empty string for an empty stop list.
func RouteIdentifier(stops []string) string {
	if len(stops) == 0 {
		return ""
	}
	first := NormalizeName(stops[0])
	last := NormalizeName(stops[len(stops)-1])
	return first + routeIDSeparator + last
}

// RouteEndpoints splits an identifier into its first and last stop.
// The returned stops derive the same identifier. Station names never
// contain the separator, so the split is exact.
func RouteEndpoints(identifier string) ([]string, bool) {
	first, last, ok := strings.Cut(identifier, routeIDSeparator)
	if !ok || first == "" || last == "" {
		return nil, false
	}
	return []string{first, last}, true
}
