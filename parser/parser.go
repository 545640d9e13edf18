package parser

import (
	"github.com/pkg/errors"

	"github.com/xiam/sedlet/ast"
	"github.com/xiam/sedlet/lexer"
)

var TokenEOF = lexer.NewToken(lexer.TokenEOF, "", 0)

type parserState func(p *Parser) parserState

// Parser turns the tokens of one scriptlet into a command
type Parser struct {
	in string

	tokens []lexer.Token
	offset int

	op          ast.Operation
	delim       rune
	pattern     string
	replacement string
	flags       ast.Flags

	lastErr error
}

// New creates a parser for the given scriptlet
func New(in string) *Parser {
	return &Parser{in: in}
}

// Parse reads the scriptlet and builds the command.
func (p *Parser) Parse() (*ast.Command, error) {
	lx := lexer.New(p.in)

	tokens, err := lx.Scan()
	if err != nil {
		return nil, p.malformed(err)
	}
	p.tokens = tokens

	for state := parserCommandState; state != nil; {
		state = state(p)
	}

	if p.lastErr != nil {
		return nil, p.malformed(p.lastErr)
	}

	return ast.NewCommand(p.op, p.delim, p.pattern, p.replacement, p.flags), nil
}

func (p *Parser) malformed(err error) error {
	return &MalformedError{Scriptlet: p.in, Err: err}
}

func (p *Parser) next() lexer.Token {
	if p.offset >= len(p.tokens) {
		return TokenEOF
	}
	tok := p.tokens[p.offset]
	p.offset++
	return tok
}

func expectTokens(p *Parser, tt ...lexer.TokenType) ([]lexer.Token, error) {
	tokens := []lexer.Token{}
	for i := range tt {
		tok := p.next()
		if tok.Type() != tt[i] {
			return nil, errors.Wrapf(ErrUnexpectedToken, "expecting %v, got %v", tt[i], tok)
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

func parserCommandState(p *Parser) parserState {
	tokens, err := expectTokens(p, lexer.TokenCommand, lexer.TokenDelimiter)
	if err != nil {
		return parserErrorState(err)
	}

	letter := []rune(tokens[0].Text())
	if len(letter) != 1 {
		return parserErrorState(errors.Wrapf(ErrUnexpectedToken, "command %v", tokens[0]))
	}
	op, ok := ast.OperationFromLetter(letter[0])
	if !ok {
		return parserErrorState(errors.Wrapf(ErrUnexpectedToken, "command %v", tokens[0]))
	}
	p.op = op
	p.delim = []rune(tokens[1].Text())[0]

	return parserSegmentsState
}

func parserSegmentsState(p *Parser) parserState {
	tokens, err := expectTokens(p,
		lexer.TokenText, lexer.TokenDelimiter,
		lexer.TokenText, lexer.TokenDelimiter,
	)
	if err != nil {
		return parserErrorState(err)
	}

	p.pattern = tokens[0].Text()
	p.replacement = tokens[2].Text()

	return parserFlagsState
}

func parserFlagsState(p *Parser) parserState {
	tokens, err := expectTokens(p, lexer.TokenFlags, lexer.TokenEOF)
	if err != nil {
		return parserErrorState(err)
	}

	for _, r := range tokens[0].Text() {
		f, ok := ast.ParseFlag(r)
		if !ok {
			return parserErrorState(errors.Wrapf(ErrUnexpectedToken, "flag %q", r))
		}
		p.flags |= f
	}

	return nil
}

func parserErrorState(err error) parserState {
	return func(p *Parser) parserState {
		p.lastErr = err
		return nil
	}
}

// Parse compiles a scriptlet into a command. Any input that does not match
// the grammar in full fails with an error matching ErrMalformedScriptlet.
// The pattern is not validated as a regular expression.
func Parse(scriptlet string) (*ast.Command, error) {
	return New(scriptlet).Parse()
}
