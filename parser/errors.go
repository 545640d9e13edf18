package parser

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedScriptlet = errors.New("malformed scriptlet")
	ErrUnexpectedToken    = errors.New("unexpected token")
)

// MalformedError is returned when a scriptlet does not follow the grammar. It
// matches ErrMalformedScriptlet and unwraps to the underlying cause.
type MalformedError struct {
	Scriptlet string
	Err       error
}

func (e *MalformedError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%v %q", ErrMalformedScriptlet, e.Scriptlet)
	}
	return fmt.Sprintf("%v %q: %v", ErrMalformedScriptlet, e.Scriptlet, e.Err)
}

func (e *MalformedError) Is(target error) bool {
	return target == ErrMalformedScriptlet
}

func (e *MalformedError) Unwrap() error {
	return e.Err
}
