package lexer

// TokenType represents all the possible types of a lexical unit
type TokenType uint8

// List of types of lexical units
const (
	TokenInvalid   TokenType = iota
	TokenCommand             // Command letter: "s", "S", "d" or "D"
	TokenDelimiter           // Segment delimiter: "/", "#", "~" or "_"
	TokenText                // Needle or replacement text
	TokenFlags               // Modifiers: any of "m", "g" and "i"
	TokenEOF                 // End of input
)

var tokenValues = map[TokenType][]rune{
	TokenCommand:   []rune("sSdD"),
	TokenDelimiter: []rune("/#~_"),
	TokenFlags:     []rune("mgi"),
}

var tokenNames = map[TokenType]string{
	TokenInvalid:   "invalid",
	TokenCommand:   "command",
	TokenDelimiter: "delimiter",
	TokenText:      "text",
	TokenFlags:     "flags",
	TokenEOF:       "EOF",
}

func (tt TokenType) String() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenInvalid]
}

func isTokenType(tt TokenType) func(r rune) bool {
	return func(r rune) bool {
		for _, v := range tokenValues[tt] {
			if v == r {
				return true
			}
		}
		return false
	}
}

const escapeRune = '\\'
