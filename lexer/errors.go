package lexer

import (
	"errors"
)

var (
	ErrUnexpectedEOF  = errors.New("unexpected end of scriptlet")
	ErrUnexpectedRune = errors.New("unexpected character")
)
