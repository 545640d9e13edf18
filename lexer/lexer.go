package lexer

import (
	"github.com/pkg/errors"
)

type lexState func(*Lexer) lexState

var (
	isCommand   = isTokenType(TokenCommand)
	isDelimiter = isTokenType(TokenDelimiter)
	isFlag      = isTokenType(TokenFlags)
)

// number of delimiters that follow the command letter
const delimiterCount = 3

// New initializes a Lexer object
func New(in string) *Lexer {
	return &Lexer{
		in:     []rune(in),
		tokens: []Token{},
		buf:    []rune{},
	}
}

// Lexer represents a lexical analyzer for a single scriptlet
type Lexer struct {
	in []rune

	tokens  []Token
	lastErr error

	buf []rune

	// delim is chosen by the rune right after the command letter
	delim      rune
	delimiters int

	start  int
	offset int
}

// Delimiter returns the delimiter detected so far, or zero if none was
// scanned yet.
func (lx *Lexer) Delimiter() rune {
	return lx.delim
}

// Scan reads the whole scriptlet and returns its tokens.
func (lx *Lexer) Scan() ([]Token, error) {
	for state := lexCommandState; state != nil; {
		state = state(lx)
	}

	if lx.lastErr != nil {
		return nil, lx.lastErr
	}

	return lx.tokens, nil
}

func (lx *Lexer) emit(tt TokenType) {
	lx.tokens = append(lx.tokens, Token{
		tt:     tt,
		lexeme: string(lx.buf),
		col:    lx.start + 1,
	})

	lx.start = lx.offset
	lx.buf = lx.buf[0:0]
}

func (lx *Lexer) peekAt(n int) (rune, bool) {
	if lx.offset+n >= len(lx.in) {
		return rune(0), false
	}
	return lx.in[lx.offset+n], true
}

func (lx *Lexer) peek() (rune, bool) {
	return lx.peekAt(0)
}

func (lx *Lexer) skip() {
	lx.offset++
}

func (lx *Lexer) next() (rune, bool) {
	r, ok := lx.peek()
	if !ok {
		return r, false
	}
	lx.offset++
	lx.buf = append(lx.buf, r)
	return r, true
}

func lexCommandState(lx *Lexer) lexState {
	r, ok := lx.next()
	if !ok {
		return lexStateError(ErrUnexpectedEOF)
	}
	if !isCommand(r) {
		return lexUnexpected(r, lx.offset)
	}
	lx.emit(TokenCommand)
	return lexOpenDelimiterState
}

func lexOpenDelimiterState(lx *Lexer) lexState {
	r, ok := lx.next()
	if !ok {
		return lexStateError(ErrUnexpectedEOF)
	}
	if !isDelimiter(r) {
		return lexUnexpected(r, lx.offset)
	}
	lx.delim = r
	lx.delimiters++
	lx.emit(TokenDelimiter)
	return lexSegmentState
}

func lexSegmentState(lx *Lexer) lexState {
	for {
		r, ok := lx.peek()
		if !ok {
			return lexStateError(ErrUnexpectedEOF)
		}

		if r == escapeRune {
			if p, _ := lx.peekAt(1); p == lx.delim {
				// escaped delimiter, keep the delimiter only
				lx.skip()
				lx.next()
				continue
			}
			// any other escape belongs to the segment
			lx.next()
			if _, ok := lx.next(); !ok {
				return lexStateError(ErrUnexpectedEOF)
			}
			continue
		}

		if r == lx.delim {
			break
		}

		lx.next()
	}

	lx.emit(TokenText)

	lx.next()
	lx.delimiters++
	lx.emit(TokenDelimiter)

	if lx.delimiters < delimiterCount {
		return lexSegmentState
	}
	return lexFlagsState
}

func lexFlagsState(lx *Lexer) lexState {
	for {
		r, ok := lx.peek()
		if !ok {
			break
		}
		if !isFlag(r) {
			return lexUnexpected(r, lx.offset+1)
		}
		lx.next()
	}

	lx.emit(TokenFlags)
	lx.emit(TokenEOF)
	return nil
}

func lexUnexpected(r rune, col int) lexState {
	return lexStateError(errors.Wrapf(ErrUnexpectedRune, "%q at column %d", r, col))
}

func lexStateError(err error) lexState {
	return func(lx *Lexer) lexState {
		lx.lastErr = err
		return nil
	}
}

// Tokenize takes a scriptlet and returns all the tokens within it, or an
// error if the scriptlet does not follow the grammar.
func Tokenize(in string) ([]Token, error) {
	return New(in).Scan()
}
