package iosnapshot

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/railcat/railcat/pkg/errcode"
)

// ReadError is returned when a snapshot cannot be read or decoded.
func ReadError(source string, err error) error {
	msg := `Cannot read catalogue snapshot from <em>%s</em>

The file must be YAML with <em>stations</em>, <em>trains</em>,
<em>routes</em> and <em>assignments</em> lists, as written by
<em>railcat export</em>.`
	vars := []any{source}
	return &gn.Error{
		Code: errcode.SnapshotReadError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot read snapshot %s: %w", source, err),
	}
}

// WriteError is returned when a snapshot cannot be encoded or written.
func WriteError(dest string, err error) error {
	msg := "Cannot write catalogue snapshot to <em>%s</em>"
	vars := []any{dest}
	return &gn.Error{
		Code: errcode.SnapshotWriteError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot write snapshot %s: %w", dest, err),
	}
}
