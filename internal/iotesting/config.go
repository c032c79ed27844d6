// Package iotesting provides shared test utilities for integration tests.
// This is an internal package for test infrastructure only.
package iotesting

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/railcat/railcat/internal/iostore"
	"github.com/railcat/railcat/pkg/config"
	"github.com/railcat/railcat/pkg/store"
)

const (
	// TestStoreName is the file name of the store used by integration tests.
	// Tests never touch the store under the real home directory.
	TestStoreName = "railcat_test.db"
)

// GetTestConfig returns a configuration suitable for integration tests.
// Home directory and store file live in a temporary directory that is
// removed when the test finishes.
//
// Usage in integration tests:
//
//	func TestSomething(t *testing.T) {
//	    if testing.Short() {
//	        t.Skip("Skipping integration test")
//	    }
//	    cfg := iotesting.GetTestConfig(t)
//	    // ... use cfg for store operations
//	}
func GetTestConfig(t *testing.T) *config.Config {
	t.Helper()

	home := SetupTempHome(t)
	opts := []config.Option{
		config.OptHomeDir(home),
		config.OptStorePath(filepath.Join(home, TestStoreName)),
		config.OptLogDestination("stderr"),
	}
	cfg := config.New()
	cfg.Update(opts)
	return cfg
}

// GetTestStoreConfig returns only the store configuration for tests.
func GetTestStoreConfig(t *testing.T) *config.StoreConfig {
	t.Helper()
	cfg := GetTestConfig(t)
	return &cfg.Store
}

// OpenTestGateway connects a gateway to a fresh store file and prepares
// its schema. The gateway is closed when the test finishes.
func OpenTestGateway(t *testing.T) store.Gateway {
	t.Helper()

	gw := iostore.NewGateway()
	ctx := context.Background()
	if err := gw.Connect(ctx, GetTestStoreConfig(t)); err != nil {
		t.Fatalf("Failed to connect to test store: %v", err)
	}
	t.Cleanup(func() { gw.Close() })

	if err := gw.PrepareSchema(ctx); err != nil {
		t.Fatalf("Failed to prepare test schema: %v", err)
	}
	return gw
}

// OpenMemoryGateway connects a gateway to an in-memory store with the
// schema in place. It does not touch the file system.
func OpenMemoryGateway(t *testing.T) store.Gateway {
	t.Helper()

	gw := iostore.NewGateway()
	ctx := context.Background()
	cfg := &config.StoreConfig{Path: ":memory:"}
	if err := gw.Connect(ctx, cfg); err != nil {
		t.Fatalf("Failed to open in-memory store: %v", err)
	}
	t.Cleanup(func() { gw.Close() })

	if err := gw.PrepareSchema(ctx); err != nil {
		t.Fatalf("Failed to prepare test schema: %v", err)
	}
	return gw
}

// SetupTempHome creates a temporary home directory for a test. The
// directory is automatically cleaned up when the test finishes.
//
// This prevents tests from accidentally modifying production config and
// data in ~/.config/railcat and ~/.local/share/railcat.
//
// Returns the absolute path to the temporary home directory.
func SetupTempHome(t *testing.T) string {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "railcat-test-home-*")
	if err != nil {
		t.Fatalf("Failed to create temp home dir: %v", err)
	}

	t.Cleanup(func() {
		os.RemoveAll(tempDir)
	})

	return tempDir
}

// WriteTempFile writes content to a file in dir and returns its path.
//
// Usage:
//
//	dir := iotesting.SetupTempHome(t)
//	path := iotesting.WriteTempFile(t, dir, "snapshot.yaml", `
//	stations:
//	  - name: Warsaw Central
//	    platform_count: 5
//	`)
func WriteTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	err := os.WriteFile(path, []byte(content), 0644)
	if err != nil {
		t.Fatalf("Failed to write temp file %s: %v", name, err)
	}
	return path
}
