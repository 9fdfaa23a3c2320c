package shaft

import (
	"errors"
	"fmt"
)

// ErrSequence is returned when a result is requested before the step that
// produces it has run.
var ErrSequence = errors.New("shaft: calculation out of sequence")

// ValidationError reports malformed shaft input.
type ValidationError struct {
	Field string
	msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.msg)
}

func invalid(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, msg: fmt.Sprintf(format, args...)}
}
