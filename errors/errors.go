// Package errors defines all exported error sentinels for the ouigen library.
//
// This is the single source of truth for error values. Both the top-level
// ouigen package and the command-line tools import from here, ensuring
// errors.Is checks work across package boundaries.
package errors

import "errors"

// Build errors
var (
	ErrBuilderClosed    = errors.New("ouigen: builder is closed")
	ErrChunkSizeInvalid = errors.New("ouigen: chunk size must be positive")
	ErrWorkersInvalid   = errors.New("ouigen: worker count must not be negative")
)

// Record errors
var (
	ErrInvalidPrefix = errors.New("ouigen: prefix does not reduce to exactly 6 hex digits")
)

// Vendor table errors (maintenance-time invariant, fatal for generation)
var (
	ErrVendorTableMismatch = errors.New("ouigen: vendor enumeration and display-name table are out of sync")
)

// Artifact errors
var (
	ErrUnknownFormat = errors.New("ouigen: unknown artifact format")
	ErrStaleArtifact = errors.New("ouigen: artifact on disk does not match the registry")
)
