package ast

// Command is the parsed form of a scriptlet. Values are built once by
// NewCommand and never modified afterwards.
type Command struct {
	op    Operation
	delim rune

	pattern     string
	replacement string

	flags Flags
}

// NewCommand creates a command
func NewCommand(op Operation, delim rune, pattern string, replacement string, flags Flags) *Command {
	return &Command{
		op:          op,
		delim:       delim,
		pattern:     pattern,
		replacement: replacement,
		flags:       flags,
	}
}

// Operation returns the kind of edit
func (c Command) Operation() Operation {
	return c.op
}

// Delimiter returns the rune that separated the segments of the scriptlet
func (c Command) Delimiter() rune {
	return c.delim
}

// Pattern returns the search text (needle)
func (c Command) Pattern() string {
	return c.pattern
}

// Replacement returns the replacement text. It is only meaningful for
// substitutions.
func (c Command) Replacement() string {
	return c.replacement
}

// Flags returns the modifiers
func (c Command) Flags() Flags {
	return c.flags
}

func (c Command) String() string {
	return string(Encode(&c))
}
