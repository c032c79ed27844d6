// Package railcat keeps the transit catalogue of trains, stations and
// routes in a SQLite file. Subpackages hold the domain (catalogue), the
// store contract (store), the in-memory cache (cache) and the
// coordinator that keeps them consistent (repository).
package railcat

var (
	// Version of railcat, set during build.
	Version = "v0.1.0"

	// Build timestamp, set during build.
	Build = "n/a"
)
