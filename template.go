package sedlet

import (
	"strings"
)

// expandTemplate converts a replacement written with backslash group
// references into the template syntax understood by regexp.Expand.
//
//	\1 .. \99       numbered group, at most two digits
//	\g<name>        named or numbered group, \g<0> is the whole match
//	\0, \0oo, \ooo  octal character code (three digits when not led by 0)
//	\\ \n \t \r     backslash, newline, tab, carriage return
//	\f \v \a \b     form feed, vertical tab, bell, backspace
//	$               literal dollar sign
//
// Any other backslash sequence is kept as written.
func expandTemplate(repl string) string {
	var b strings.Builder
	b.Grow(len(repl))

	writeLiteral := func(r rune) {
		if r == '$' {
			b.WriteString("$$")
			return
		}
		b.WriteRune(r)
	}

	in := []rune(repl)
	for i := 0; i < len(in); i++ {
		r := in[i]

		if r != '\\' || i+1 >= len(in) {
			writeLiteral(r)
			continue
		}

		next := in[i+1]
		if esc, ok := simpleEscapes[next]; ok {
			b.WriteRune(esc)
			i++
			continue
		}

		switch {
		case next == '0':
			code, n := octal(in[i+1:], 3)
			writeLiteral(rune(code))
			i += n
		case isDigit(next):
			if code, n := octal(in[i+1:], 3); n == 3 && code <= 0377 {
				writeLiteral(rune(code))
				i += n
				continue
			}
			n := 1
			if i+2 < len(in) && isDigit(in[i+2]) {
				n = 2
			}
			b.WriteString("${" + string(in[i+1:i+1+n]) + "}")
			i += n
		case next == 'g':
			name, n := groupName(in[i+2:])
			if n == 0 {
				b.WriteRune(r)
				continue
			}
			b.WriteString("${" + name + "}")
			i += 1 + n
		default:
			b.WriteRune(r)
		}
	}

	return b.String()
}

var simpleEscapes = map[rune]rune{
	'\\': '\\',
	'n':  '\n',
	't':  '\t',
	'r':  '\r',
	'f':  '\f',
	'v':  '\v',
	'a':  '\a',
	'b':  '\b',
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// octal reads up to max octal digits from the start of in.
func octal(in []rune, max int) (int, int) {
	code, n := 0, 0
	for n < max && n < len(in) && in[n] >= '0' && in[n] <= '7' {
		code = code*8 + int(in[n]-'0')
		n++
	}
	return code, n
}

// groupName reads "<name>" from the start of in and returns the name along
// with the number of runes consumed. Zero means no group reference.
func groupName(in []rune) (string, int) {
	if len(in) < 3 || in[0] != '<' {
		return "", 0
	}
	for j := 1; j < len(in); j++ {
		if in[j] == '>' {
			if j == 1 {
				return "", 0
			}
			return string(in[1:j]), j + 1
		}
	}
	return "", 0
}
