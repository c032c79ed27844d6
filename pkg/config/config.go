// Package config provides configuration management for railcat.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Store: path, busy_timeout
//   - Catalogue: auto_create_stations, seed
//   - Log: level, format, destination
//
// Runtime-only fields:
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use RAILCAT_ prefix with underscores for nesting:
//
//	RAILCAT_STORE_PATH=/tmp/railcat.db
//	RAILCAT_CATALOGUE_SEED=false
//	RAILCAT_LOG_LEVEL=debug
package config

// Config represents the complete railcat configuration.
type Config struct {
	// Store contains settings of the on-disk SQLite store.
	Store StoreConfig `mapstructure:"store" yaml:"store"`

	// Catalogue contains policies of the consistency layer.
	Catalogue CatalogueConfig `mapstructure:"catalogue" yaml:"catalogue"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// HomeDir determines where config, data and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// StoreConfig contains SQLite connection parameters.
type StoreConfig struct {
	// Path is the location of the SQLite file. Empty means the default
	// file inside DataDir. ":memory:" keeps the store in memory.
	Path string `mapstructure:"path" yaml:"path"`

	// BusyTimeout is how long (in milliseconds) SQLite waits on a locked
	// file before giving up.
	BusyTimeout int `mapstructure:"busy_timeout" yaml:"busy_timeout"`
}

// CatalogueConfig contains policies applied by the repository.
type CatalogueConfig struct {
	// AutoCreateStations makes AddTrain create missing start/end stations
	// with one platform. When false a missing station is a referential
	// error.
	AutoCreateStations *bool `mapstructure:"auto_create_stations" yaml:"auto_create_stations"`

	// Seed loads the predefined routes, trains and stations when the
	// store is empty.
	Seed *bool `mapstructure:"seed" yaml:"seed"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json' or 'text'.
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	autoCreate, seed := true, true
	res := &Config{
		Store: StoreConfig{
			BusyTimeout: 5000,
		},
		Catalogue: CatalogueConfig{
			AutoCreateStations: &autoCreate,
			Seed:               &seed,
		},
		Log: LogConfig{
			Format:      "json",
			Level:       "info",
			Destination: "file",
		},
	}

	return res
}

// StorePath returns the SQLite file to open. Falls back to the default
// file in DataDir when Store.Path is empty.
func (c *Config) StorePath() string {
	if c.Store.Path != "" {
		return c.Store.Path
	}
	return StoreFilePath(c.HomeDir)
}

// AutoCreateStations reports whether missing train stations are created
// on the fly.
func (c *Config) AutoCreateStations() bool {
	return c.Catalogue.AutoCreateStations == nil ||
		*c.Catalogue.AutoCreateStations
}

// SeedEmpty reports whether an empty store receives the predefined data.
func (c *Config) SeedEmpty() bool {
	return c.Catalogue.Seed == nil || *c.Catalogue.Seed
}
