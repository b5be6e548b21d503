package model

import "errors"

var (
	// ErrInvalidJSON marks input that failed to parse at all, as opposed to
	// parseable input with the wrong shape or version.
	ErrInvalidJSON = errors.New("invalid JSON")

	// ErrInvalidBackup marks a parseable payload that is not a backup
	// envelope (not an object, or missing its data object).
	ErrInvalidBackup = errors.New("invalid backup format")

	// ErrVersionMismatch marks a backup whose version does not equal
	// DataExportVersion. No cross-version migration is attempted.
	ErrVersionMismatch = errors.New("unsupported backup version")

	// ErrConfirmationRequired is returned by destructive operations invoked
	// without an explicit confirmation.
	ErrConfirmationRequired = errors.New("confirmation required")

	// ErrUnknownCollection is returned for collection names outside the
	// fixed set.
	ErrUnknownCollection = errors.New("unknown collection")

	// ErrNotObjectCollection is returned when a nested merge targets an
	// array or scalar collection.
	ErrNotObjectCollection = errors.New("collection does not hold an object")
)
