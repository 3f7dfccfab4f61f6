// Package eval implements the tree-walking evaluator of the ZEN
// interpreter. Evaluation is a recursive visit over the AST that produces
// runtime values; the current scope is threaded through every call as an
// explicit parameter, so the AST itself stays immutable and shareable
// across reentrant calls.
//
// Control flow (return/break/continue) travels as a discriminated signal
// alongside the ordinary result value, never as a sentinel value, so a
// program string can never be confused with a control-flow marker.
// Runtime errors are ordinary Error values: they short-circuit evaluation
// and terminate the program when they reach the top-level compound.
package eval

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/akaoio/zen/function"
	"github.com/akaoio/zen/lexer"
	"github.com/akaoio/zen/parser"
	"github.com/akaoio/zen/scope"
	"github.com/akaoio/zen/std"
	"github.com/akaoio/zen/values"
)

// signalKind discriminates the control-flow outcomes of evaluating a node.
type signalKind int

const (
	sigReturn signalKind = iota
	sigBreak
	sigContinue
)

// signal is a control-flow outcome other than an ordinary value. A nil
// *signal means normal completion. Compounds propagate signals upward;
// loops consume break/continue and function calls unwrap return.
type signal struct {
	kind  signalKind
	value values.Value // the return value, for sigReturn
}

// Limits bounds runaway programs. There is no cancellation facility: the
// iteration ceiling and the call-stack ceiling are the only brakes.
type Limits struct {
	MaxCallDepth      int
	MaxLoopIterations int
}

// DefaultLimits returns the standard ceilings.
func DefaultLimits() Limits {
	return Limits{MaxCallDepth: 10000, MaxLoopIterations: 10000000}
}

// Evaluator is the execution engine. It owns the global scope, the builtin
// table, and the output/input plumbing. A single Evaluator is not safe for
// concurrent use; the interpreter is single-threaded by design.
type Evaluator struct {
	Globals  *scope.Scope
	Builtins map[string]*std.Builtin
	Writer   io.Writer
	Reader   *bufio.Reader
	Limits   Limits

	depth      int               // current user-function call depth
	classStack []*function.Class // home class of each executing method, for super
}

// NewEvaluator creates an evaluator with a fresh global scope, the full
// builtin table, and stdout/stdin plumbing.
func NewEvaluator() *Evaluator {
	e := &Evaluator{
		Globals:  scope.NewScope(nil),
		Builtins: make(map[string]*std.Builtin),
		Writer:   os.Stdout,
		Reader:   bufio.NewReader(os.Stdin),
		Limits:   DefaultLimits(),
	}
	for _, builtin := range std.Builtins {
		e.Builtins[builtin.Name] = builtin
	}
	return e
}

// SetWriter redirects the output of print and the other writing builtins.
// Tests use this to capture program output.
func (e *Evaluator) SetWriter(w io.Writer) {
	e.Writer = w
}

// SetReader redirects the input of the reading builtins.
func (e *Evaluator) SetReader(r io.Reader) {
	e.Reader = bufio.NewReader(r)
}

// GetInputReader returns the buffered input reader. Part of the
// std.Runtime interface.
func (e *Evaluator) GetInputReader() *bufio.Reader {
	return e.Reader
}

// Eval evaluates a program in the global scope and returns its final
// value. A return signal at the top level unwraps to its value; a stray
// break/continue at the top level yields Null.
func (e *Evaluator) Eval(root *parser.CompoundNode) values.Value {
	v, sig := e.eval(root, e.Globals)
	if sig != nil && sig.kind == sigReturn {
		return sig.value
	}
	if sig != nil {
		return &values.Null{}
	}
	return v
}

// eval is the recursive dispatch at the heart of the evaluator. It returns
// the node's value and an optional control-flow signal; runtime errors are
// Error values with a nil signal.
func (e *Evaluator) eval(n parser.Node, scp *scope.Scope) (values.Value, *signal) {
	switch n := n.(type) {
	case *parser.CompoundNode:
		return e.evalCompound(n, scp)
	case *parser.VariableDefinitionNode:
		return e.evalVariableDefinition(n, scp)
	case *parser.PropertyAssignmentNode:
		return e.evalPropertyAssignment(n, scp)
	case *parser.FunctionDefinitionNode:
		return e.evalFunctionDefinition(n, scp)
	case *parser.ClassDefinitionNode:
		return e.evalClassDefinition(n, scp)
	case *parser.VariableNode:
		return e.evalVariable(n, scp)
	case *parser.FunctionCallNode:
		return e.evalFunctionCall(n, scp)
	case *parser.NewExpressionNode:
		return e.evalNewExpression(n, scp)
	case *parser.PropertyAccessNode:
		return e.evalPropertyAccess(n, scp)
	case *parser.SuperNode:
		return e.errorAt(n.Pos(), values.BadPropertyAccess, "`super` is only valid in a property access"), nil
	case *parser.ArrayLiteralNode:
		return e.evalArrayLiteral(n, scp)
	case *parser.ObjectLiteralNode:
		return e.evalObjectLiteral(n, scp)
	case *parser.StringLiteralNode:
		return &values.String{Value: n.Value}, nil
	case *parser.NumberLiteralNode:
		return &values.Number{Value: n.Value}, nil
	case *parser.BooleanLiteralNode:
		return &values.Boolean{Value: n.Value}, nil
	case *parser.NullLiteralNode:
		return &values.Null{}, nil
	case *parser.UndecidableLiteralNode:
		return &values.Undecidable{}, nil
	case *parser.BinaryOpNode:
		return e.evalBinaryOp(n, scp)
	case *parser.UnaryOpNode:
		return e.evalUnaryOp(n, scp)
	case *parser.IfNode:
		return e.evalIf(n, scp)
	case *parser.WhileNode:
		return e.evalWhile(n, scp)
	case *parser.ForInNode:
		return e.evalForIn(n, scp)
	case *parser.ReturnNode:
		return e.evalReturn(n, scp)
	case *parser.BreakNode:
		return &values.Null{}, &signal{kind: sigBreak}
	case *parser.ContinueNode:
		return &values.Null{}, &signal{kind: sigContinue}
	case *parser.NoopNode:
		return &values.Null{}, nil
	default:
		return &values.Null{}, nil
	}
}

// errorAt builds a runtime error anchored at a token's source position.
func (e *Evaluator) errorAt(tok lexer.Token, kind values.ErrorKind, format string, a ...interface{}) *values.Error {
	return &values.Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, a...),
		Line:    tok.Line,
		Column:  tok.Column,
	}
}
