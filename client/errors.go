package client

import (
	"errors"

	"github.com/aura-workspace/aura/internal/model"
)

// ErrConflict is returned when the service refuses a request in its current
// state: a destructive call without confirm=true, or a focus command that
// does not fit the timer's phase.
var ErrConflict = errors.New("conflict")

// IsConflict reports whether err is a conflict error.
func IsConflict(err error) bool { return errors.Is(err, ErrConflict) }

// Re-export shared errors so callers compare against a single symbol.
var ErrUnknownCollection = model.ErrUnknownCollection
