package diffsql

import "errors"

// ErrRender is the sentinel matched by every RenderError.
var ErrRender = errors.New("render error")

// RenderError reports an input the synthesizer cannot express as SQL.
type RenderError struct {
	Dialect string
	Column  string
	Reason  string
}

func (e *RenderError) Error() string {
	msg := "render error"
	if e.Dialect != "" {
		msg += " (" + e.Dialect + ")"
	}
	msg += ": " + e.Reason
	if e.Column != "" {
		msg += ": " + e.Column
	}
	return msg
}

// Is makes errors.Is(err, ErrRender) match any RenderError.
func (e *RenderError) Is(target error) bool {
	return target == ErrRender
}
