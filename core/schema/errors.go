package schema

import (
	"errors"
	"fmt"
)

// ErrSchema is the sentinel matched by every SchemaError.
var ErrSchema = errors.New("schema error")

// SchemaError reports a violated structural precondition.
type SchemaError struct {
	// Side is "before", "after", "keys" or empty when the problem spans both sides.
	Side string
	// Column is the offending column or key name, if any.
	Column string
	// Reason is a short description of the violation.
	Reason string
}

func (e *SchemaError) Error() string {
	msg := "schema error"
	if e.Side != "" {
		msg += " (" + e.Side + ")"
	}
	msg += ": " + e.Reason
	if e.Column != "" {
		msg += fmt.Sprintf(": %q", e.Column)
	}
	return msg
}

// Is makes errors.Is(err, ErrSchema) match any SchemaError.
func (e *SchemaError) Is(target error) bool {
	return target == ErrSchema
}
