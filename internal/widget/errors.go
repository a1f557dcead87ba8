package widget

import (
	"errors"
	"fmt"
)

var (
	// ErrNotStarted means SendMessage was called before a successful login.
	ErrNotStarted = errors.New("chat has not been started")
	// ErrAlreadyStarted means StartChat was called after a successful login.
	ErrAlreadyStarted = errors.New("chat already started")
)

// ValidationError reports empty login fields. Recoverable: the user fixes
// the fields and resubmits.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("widget: %s must not be empty", e.Field)
}
