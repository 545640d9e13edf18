package sedlet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandTemplate(t *testing.T) {
	testCases := []struct {
		In  string
		Out string
	}{
		{``, ``},
		{`plain`, `plain`},
		{`\1`, `${1}`},
		{`\1-\9`, `${1}-${9}`},
		{`\12`, `${12}`},
		{`\1a`, `${1}a`},
		{`\123`, `S`},
		{`\189`, `${18}9`},
		{`\0`, "\x00"},
		{`\07x`, "\ax"},
		{`\0101`, "\x081"},
		{`\044`, `$$`},
		{`\g<0>`, `${0}`},
		{`\g<name>`, `${name}`},
		{`\g<12>x`, `${12}x`},
		{`\g<>`, `\g<>`},
		{`\g<open`, `\g<open`},
		{`\\1`, `\1`},
		{`a\nb\tc\r`, "a\nb\tc\r"},
		{`\f\v\a\b`, "\f\v\a\b"},
		{`$1 $$`, `$$1 $$$$`},
		{`\q`, `\q`},
		{`trailing\`, `trailing\`},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.Out, expandTemplate(tc.In), tc.In)
	}
}
