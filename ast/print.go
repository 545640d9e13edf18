package ast

import (
	"fmt"
	"io"
	"strings"
)

// Print writes a human-readable representation of a command
func Print(w io.Writer, c *Command) {
	if c == nil {
		fmt.Fprintf(w, ":nil\n")
		return
	}
	fmt.Fprintf(w, "(%s)\n", c.Operation())
	fmt.Fprintf(w, "    delimiter:   %q\n", c.Delimiter())
	fmt.Fprintf(w, "    pattern:     %q\n", c.Pattern())
	fmt.Fprintf(w, "    replacement: %q\n", c.Replacement())
	fmt.Fprintf(w, "    flags:       %q\n", c.Flags().String())
}

// Encode transforms a command back into scriptlet form. Delimiters inside
// the pattern and replacement are escaped with a backslash.
func Encode(c *Command) []byte {
	if c == nil {
		return []byte{}
	}

	delim := string(c.Delimiter())
	escape := func(s string) string {
		return strings.ReplaceAll(s, delim, `\`+delim)
	}

	return []byte(fmt.Sprintf("%c%s%s%s%s%s%s",
		c.Operation().Letter(),
		delim, escape(c.Pattern()),
		delim, escape(c.Replacement()),
		delim, c.Flags(),
	))
}
