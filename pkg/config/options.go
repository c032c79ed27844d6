package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptStorePath sets the location of the SQLite file.
func OptStorePath(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Store Path", s) {
			c.Store.Path = s
		}
	}
}

// OptStoreBusyTimeout sets the SQLite busy timeout in milliseconds.
func OptStoreBusyTimeout(i int) Option {
	return func(c *Config) {
		if isValidInt("Store Busy Timeout", i) {
			c.Store.BusyTimeout = i
		}
	}
}

// OptCatalogueAutoCreateStations sets whether AddTrain creates missing
// stations. Uses pointer to distinguish between unset (nil) and false.
func OptCatalogueAutoCreateStations(b *bool) Option {
	return func(c *Config) {
		if b != nil {
			c.Catalogue.AutoCreateStations = b
		}
	}
}

// OptCatalogueSeed sets whether an empty store is seeded on start.
func OptCatalogueSeed(b *bool) Option {
	return func(c *Config) {
		if b != nil {
			c.Catalogue.Seed = b
		}
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stderr", "stdout".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptHomeDir sets the home directory for config, data, and log locations.
// Set once at startup from os.UserHomeDir().
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}
