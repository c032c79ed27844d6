package config

import (
	"path/filepath"
)

var (
	// AppName is used in generating file system paths.
	AppName = "railcat"
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/railcat by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// DataDir returns the directory path for the SQLite store.
// Returns ~/.local/share/railcat by default.
func DataDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/railcat/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(DataDir(homeDir), "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/railcat/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// StoreFilePath returns the default location of the SQLite store.
func StoreFilePath(homeDir string) string {
	return filepath.Join(DataDir(homeDir), AppName+".db")
}
