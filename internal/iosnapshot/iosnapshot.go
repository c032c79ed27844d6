// Package iosnapshot reads and writes catalogue snapshots as YAML and
// replays them into a repository with a progress bar.
package iosnapshot

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/cheggaaa/pb/v3"
	"github.com/railcat/railcat/pkg/catalogue"
	"github.com/railcat/railcat/pkg/repository"
	"gopkg.in/yaml.v3"
)

// Write encodes the snapshot as YAML. The name is used in error messages.
func Write(w io.Writer, name string, snap catalogue.Snapshot) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(snap); err != nil {
		return WriteError(name, err)
	}
	if err := enc.Close(); err != nil {
		return WriteError(name, err)
	}
	return nil
}

// WriteFile writes the snapshot to path, replacing an existing file.
func WriteFile(path string, snap catalogue.Snapshot) error {
	f, err := os.Create(path)
	if err != nil {
		return WriteError(path, err)
	}

	err = Write(f, path, snap)
	if closeErr := f.Close(); err == nil && closeErr != nil {
		err = WriteError(path, closeErr)
	}
	return err
}

// Read decodes a YAML snapshot. Unknown keys are an error. An empty
// input gives an empty snapshot.
func Read(r io.Reader, name string) (catalogue.Snapshot, error) {
	var res catalogue.Snapshot
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	err := dec.Decode(&res)
	if err != nil && !errors.Is(err, io.EOF) {
		return catalogue.Snapshot{}, ReadError(name, err)
	}
	return res, nil
}

// ReadFile decodes the YAML snapshot stored at path.
func ReadFile(path string) (catalogue.Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return catalogue.Snapshot{}, ReadError(path, err)
	}
	defer f.Close()

	return Read(f, path)
}

// Import replays the snapshot into the repository and shows progress on
// out. A nil out hides the bar.
func Import(
	ctx context.Context,
	repo *repository.Repository,
	snap catalogue.Snapshot,
	out io.Writer,
) (repository.ImportStats, error) {
	if out == nil {
		out = io.Discard
	}

	bar := pb.Full.New(snap.Size())
	bar.SetWriter(out)
	bar.Set("prefix", "Importing catalogue: ")
	bar.Set(pb.CleanOnFinish, true)
	bar.Start()
	defer bar.Finish()

	return repo.Import(ctx, snap, func() { bar.Increment() })
}
