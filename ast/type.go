package ast

import (
	"strings"
	"unicode"
)

// Operation represents the kind of edit a command performs
type Operation uint8

// Operations
const (
	OperationInvalid Operation = iota
	OperationSubstitute
	OperationDelete
)

func (op Operation) String() string {
	s, ok := operationName[op]
	if ok {
		return s
	}
	return operationName[OperationInvalid]
}

// Letter returns the canonical command letter of the operation, or zero for
// an invalid operation.
func (op Operation) Letter() rune {
	return operationLetter[op]
}

var operationName = map[Operation]string{
	OperationInvalid:    "invalid",
	OperationSubstitute: "substitute",
	OperationDelete:     "delete",
}

var operationLetter = map[Operation]rune{
	OperationSubstitute: 's',
	OperationDelete:     'd',
}

// OperationFromLetter maps a command letter to its operation. The letter is
// case folded.
func OperationFromLetter(r rune) (Operation, bool) {
	r = unicode.ToLower(r)
	for op, letter := range operationLetter {
		if letter == r {
			return op, true
		}
	}
	return OperationInvalid, false
}

// Flags is a set of command modifiers
type Flags uint8

// Modifiers
const (
	FlagMultiLine  Flags = 1 << iota // m
	FlagGlobal                       // g
	FlagIgnoreCase                   // i
)

// canonical order used when encoding
var flagLetters = []struct {
	f Flags
	r rune
}{
	{FlagMultiLine, 'm'},
	{FlagGlobal, 'g'},
	{FlagIgnoreCase, 'i'},
}

// ParseFlag maps a modifier letter to its flag.
func ParseFlag(r rune) (Flags, bool) {
	for _, fl := range flagLetters {
		if fl.r == r {
			return fl.f, true
		}
	}
	return 0, false
}

// Has returns true when every flag in f is set
func (fs Flags) Has(f Flags) bool {
	return fs&f == f
}

func (fs Flags) String() string {
	var b strings.Builder
	for _, fl := range flagLetters {
		if fs.Has(fl.f) {
			b.WriteRune(fl.r)
		}
	}
	return b.String()
}
