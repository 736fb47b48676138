// Package common defines sentinel errors shared by the stockkeeper layers.
// Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Lookup errors.
	ErrNotFound = errors.New("record not found")

	// Input errors.
	ErrValidation   = errors.New("validation error")
	ErrUnknownField = errors.New("unknown field")

	// Persistence errors.
	ErrCorruptStore = errors.New("store file is corrupt")

	// Export errors.
	ErrExportUnavailable = errors.New("export unavailable")
)
