// Package std provides the host-function table of the ZEN interpreter. The
// evaluator consults this table by name before looking up user functions. A
// host function receives the evaluated argument values and returns a single
// value; it reports failures as Error values, never panics.
package std

import (
	"bufio"
	"io"

	"github.com/akaoio/zen/values"
)

// Runtime is the evaluator interface builtins may call back into, e.g. to
// invoke a user function passed as an argument, or to read interactive
// input.
type Runtime interface {
	CallFunction(fn values.Value, args ...values.Value) values.Value
	GetInputReader() *bufio.Reader
}

// CallbackFunc is the signature of a builtin implementation. The writer is
// the interpreter's output sink (print writes there), injected so tests and
// the REPL can capture output.
type CallbackFunc func(rt Runtime, writer io.Writer, args ...values.Value) values.Value

// Builtin pairs a name with its implementation.
type Builtin struct {
	Name     string
	Callback CallbackFunc
}

// Builtins is the global builtin table. Each std file appends its functions
// during package initialization.
var Builtins = make([]*Builtin, 0)
