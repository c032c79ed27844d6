package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError

	// Logging errors
	CreateLogFileError

	// Store errors
	StoreConnectionError
	StoreNotConnectedError
	StoreSchemaError

	// Catalogue errors
	ValidationError
	DuplicateError
	NotFoundError
	PersistenceError
	ReferentialError

	// Snapshot errors
	SnapshotReadError
	SnapshotWriteError
)
