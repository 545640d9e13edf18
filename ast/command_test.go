package ast

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperationFromLetter(t *testing.T) {
	testCases := []struct {
		In rune
		Op Operation
		Ok bool
	}{
		{'s', OperationSubstitute, true},
		{'S', OperationSubstitute, true},
		{'d', OperationDelete, true},
		{'D', OperationDelete, true},
		{'x', OperationInvalid, false},
		{'/', OperationInvalid, false},
	}

	for _, tc := range testCases {
		op, ok := OperationFromLetter(tc.In)
		assert.Equal(t, tc.Op, op, string(tc.In))
		assert.Equal(t, tc.Ok, ok, string(tc.In))
	}

	assert.Equal(t, "substitute", OperationSubstitute.String())
	assert.Equal(t, "delete", OperationDelete.String())
	assert.Equal(t, "invalid", Operation(42).String())
}

func TestFlags(t *testing.T) {
	var fs Flags
	for _, r := range "igmgg" {
		f, ok := ParseFlag(r)
		assert.True(t, ok)
		fs |= f
	}

	assert.True(t, fs.Has(FlagGlobal))
	assert.True(t, fs.Has(FlagIgnoreCase|FlagMultiLine))
	assert.Equal(t, "mgi", fs.String())

	assert.Equal(t, "g", FlagGlobal.String())
	assert.Equal(t, "", Flags(0).String())
	assert.False(t, Flags(0).Has(FlagGlobal))

	_, ok := ParseFlag('x')
	assert.False(t, ok)
}

func TestEncode(t *testing.T) {
	testCases := []struct {
		Cmd *Command
		Out string
	}{
		{
			NewCommand(OperationSubstitute, '/', "a", "b", FlagGlobal),
			`s/a/b/g`,
		},
		{
			NewCommand(OperationDelete, '#', "/tmp/x", "", FlagIgnoreCase|FlagMultiLine),
			`d#/tmp/x##mi`,
		},
		{
			NewCommand(OperationSubstitute, '/', "a/b", "c/d", 0),
			`s/a\/b/c\/d/`,
		},
		{
			nil,
			``,
		},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.Out, string(Encode(tc.Cmd)))
	}

	assert.Equal(t, `s~x~y~`, NewCommand(OperationSubstitute, '~', "x", "y", 0).String())
}

func TestPrint(t *testing.T) {
	var buf bytes.Buffer
	Print(&buf, NewCommand(OperationSubstitute, '_', "a", "b", FlagGlobal))

	expected := "(substitute)\n" +
		"    delimiter:   '_'\n" +
		"    pattern:     \"a\"\n" +
		"    replacement: \"b\"\n" +
		"    flags:       \"g\"\n"
	assert.Equal(t, expected, buf.String())

	buf.Reset()
	Print(&buf, nil)
	assert.Equal(t, ":nil\n", buf.String())
}
