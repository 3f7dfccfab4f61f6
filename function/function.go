// Package function defines the runtime values that reference syntax: user
// functions, classes, instances, and bound methods. They live apart from
// package values because they hold (non-owning) references into the AST and
// the scope chain, which plain data values never do.
package function

import (
	"fmt"
	"strings"

	"github.com/akaoio/zen/parser"
	"github.com/akaoio/zen/scope"
	"github.com/akaoio/zen/values"
)

// Function is a user-defined function value. It references its defining AST
// node's pieces (owned by the root tree) and captures the scope that was
// current when the definition was evaluated. Each invocation creates a
// fresh scope parented on that capture scope.
type Function struct {
	Name    string
	Params  []string
	Body    *parser.CompoundNode
	Scope   *scope.Scope // captured definition scope
	Private bool         // visibility flag, meaningful for class members
}

func (f *Function) GetType() values.Type { return values.FunctionType }

func (f *Function) ToString() string {
	return fmt.Sprintf("function(%s %s)", f.Name, strings.Join(f.Params, " "))
}

func (f *Function) Inspect() string { return f.ToString() }
