package iofs

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/railcat/railcat/pkg/errcode"
)

// CreateDirError is returned when a directory cannot be created.
func CreateDirError(dir string, err error) error {
	msg := "Cannot create directory <em>%s</em>"
	vars := []any{dir}
	return &gn.Error{
		Code: errcode.CreateDirError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot create directory: %w", caller(), err),
	}
}

// CopyFileError is returned when the default config cannot be written.
func CopyFileError(file string, err error) error {
	msg := "Cannot write default configuration to <em>%s</em>"
	vars := []any{file}
	return &gn.Error{
		Code: errcode.CopyFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot copy file: %w", caller(), err),
	}
}

// ReadFileError is returned when a file exists but cannot be read or
// parsed.
func ReadFileError(path string, err error) error {
	msg := `Cannot read <em>%s</em>

Fix the file or remove it to get the default configuration back.`
	vars := []any{path}
	return &gn.Error{
		Code: errcode.ReadFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot read %s: %w", caller(), path, err),
	}
}

// caller names the function that called the error constructor.
func caller() string {
	pc, _, _, ok := runtime.Caller(2)
	if !ok {
		return "unknown"
	}
	return runtime.FuncForPC(pc).Name()
}
