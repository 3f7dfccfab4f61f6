package parser

import (
	"fmt"

	"github.com/akaoio/zen/lexer"
)

// ErrorKind classifies a parse error.
type ErrorKind string

const (
	UnexpectedToken    ErrorKind = "UnexpectedToken"
	MissingIndent      ErrorKind = "MissingIndent"
	UnmatchedDelimiter ErrorKind = "UnmatchedDelimiter"
	BadObjectLiteral   ErrorKind = "BadObjectLiteral"
)

// Error is a parse diagnostic carrying the offending token's position.
// The CLI prefixes the file path to produce PATH:LINE:COL: KIND: MESSAGE.
type Error struct {
	Kind    ErrorKind
	Message string
	Line    int
	Column  int
}

// Error implements the error interface, formatting LINE:COL: KIND: MESSAGE.
func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: %s: %s", e.Line, e.Column, e.Kind, e.Message)
}

// newError builds an Error anchored at the given token.
func newError(tok lexer.Token, kind ErrorKind, format string, a ...interface{}) *Error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, a...),
		Line:    tok.Line,
		Column:  tok.Column,
	}
}

// describe renders a token for error messages: layout tokens by name,
// everything else by its literal text.
func describe(tok lexer.Token) string {
	switch tok.Type {
	case lexer.NEWLINE_TYPE:
		return "newline"
	case lexer.INDENT_TYPE:
		return "indent"
	case lexer.DEDENT_TYPE:
		return "dedent"
	case lexer.EOF_TYPE:
		return "end of input"
	default:
		return fmt.Sprintf("%q", tok.Literal)
	}
}
