package sedlet

import (
	"errors"
	"fmt"
)

var (
	ErrPatternCompile = errors.New("invalid pattern")
	ErrIO             = errors.New("i/o error")
	ErrUnimplemented  = errors.New("not implemented")
	ErrNilCommand     = errors.New("nil command")
)

// PatternError reports a needle that does not compile as a regular
// expression. It matches ErrPatternCompile.
type PatternError struct {
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("%v %q: %v", ErrPatternCompile, e.Pattern, e.Err)
}

func (e *PatternError) Is(target error) bool {
	return target == ErrPatternCompile
}

func (e *PatternError) Unwrap() error {
	return e.Err
}

// SourceError reports a source that could not be read, or an output that
// could not be written. It matches ErrIO.
type SourceError struct {
	Name string
	Err  error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("%v on %s: %v", ErrIO, e.Name, e.Err)
}

func (e *SourceError) Is(target error) bool {
	return target == ErrIO
}

func (e *SourceError) Unwrap() error {
	return e.Err
}
