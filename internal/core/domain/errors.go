package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")

	// ErrUnsupportedType indicates a file type no normaliser can handle.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrStorageUnavailable indicates the persistence backend could not
	// be opened. Facts and todos are disabled without it.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrTranscriptClosed indicates a write to a finished transcript session.
	ErrTranscriptClosed = errors.New("transcript closed")
)
