package lexer

import "fmt"

// ErrorKind classifies a lexical error.
type ErrorKind string

const (
	UnterminatedString ErrorKind = "UnterminatedString"
	BadEscape          ErrorKind = "BadEscape"
	BadNumber          ErrorKind = "BadNumber"
	UnknownChar        ErrorKind = "UnknownChar"
	IndentMismatch     ErrorKind = "IndentMismatch"
)

// Error is a lexical diagnostic with a kind tag and source position.
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

// newError creates an Error pinned to the lexer's current position.
func (lex *Lexer) newError(kind ErrorKind, format string, a ...interface{}) *Error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, a...),
		Line:    lex.Line,
		Column:  lex.Column,
	}
}
