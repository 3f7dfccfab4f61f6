package parser

import (
	"strings"

	"github.com/akaoio/zen/lexer"
)

// Node is the base interface for all AST nodes. Nodes are immutable once
// parsed: they carry no evaluated values and no scope attachment, so the
// same tree can be evaluated any number of times, reentrantly. Each node
// records the token that introduced it for error reporting.
//
// Literal() returns a canonical one-line rendering of the node. It is used
// by tests (structural equality of two parses) and debugging output.
type Node interface {
	Literal() string
	Pos() lexer.Token
}

// StatementNode is the base interface for statements.
type StatementNode interface {
	Node
	Statement()
}

// ExpressionNode is the base interface for expressions. Every expression is
// also a statement (expression-statements).
type ExpressionNode interface {
	StatementNode
	Expression()
}

// CompoundNode holds an ordered sequence of statements: the whole program,
// and the body of every block-introducing construct. Statement order is
// source order.
type CompoundNode struct {
	Token      lexer.Token
	Statements []StatementNode
}

func (node *CompoundNode) Literal() string {
	var sb strings.Builder
	for i, stmt := range node.Statements {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(stmt.Literal())
	}
	return sb.String()
}
func (node *CompoundNode) Pos() lexer.Token { return node.Token }
func (node *CompoundNode) Statement()       {}

// VariableDefinitionNode represents `set NAME expr`.
type VariableDefinitionNode struct {
	Token lexer.Token // The `set` keyword token
	Name  string
	Expr  ExpressionNode
}

func (node *VariableDefinitionNode) Literal() string {
	return "set " + node.Name + " " + node.Expr.Literal()
}
func (node *VariableDefinitionNode) Pos() lexer.Token { return node.Token }
func (node *VariableDefinitionNode) Statement()       {}

// PropertyAssignmentNode represents the dotted form of `set`:
// `set this.x v`, `set o.key v`, `set xs.0 v`. The target splits into an
// object expression and the final property name.
type PropertyAssignmentNode struct {
	Token    lexer.Token // The `set` keyword token
	Object   ExpressionNode
	Property string
	Expr     ExpressionNode
}

func (node *PropertyAssignmentNode) Literal() string {
	return "set " + node.Object.Literal() + "." + node.Property + " " + node.Expr.Literal()
}
func (node *PropertyAssignmentNode) Pos() lexer.Token { return node.Token }
func (node *PropertyAssignmentNode) Statement()       {}

// FunctionDefinitionNode represents `function NAME PARAM...` with an
// indented body, and class members introduced by `method`. Private records
// the `private` visibility flag on class members.
type FunctionDefinitionNode struct {
	Token   lexer.Token // The `function` (or contextual `method`) token
	Name    string
	Params  []string
	Body    *CompoundNode
	Private bool
}

func (node *FunctionDefinitionNode) Literal() string {
	var sb strings.Builder
	sb.WriteString("function ")
	sb.WriteString(node.Name)
	for _, p := range node.Params {
		sb.WriteByte(' ')
		sb.WriteString(p)
	}
	sb.WriteString(" {")
	sb.WriteString(node.Body.Literal())
	sb.WriteString("}")
	return sb.String()
}
func (node *FunctionDefinitionNode) Pos() lexer.Token { return node.Token }
func (node *FunctionDefinitionNode) Statement()       {}

// ClassDefinitionNode represents `class NAME [extends PARENT]` with an
// indented body of member functions. The parent is recorded by name;
// resolution is lazy, at instantiation time.
type ClassDefinitionNode struct {
	Token   lexer.Token
	Name    string
	Parent  string // empty when the class has no parent
	Methods []*FunctionDefinitionNode
}

func (node *ClassDefinitionNode) Literal() string {
	var sb strings.Builder
	sb.WriteString("class ")
	sb.WriteString(node.Name)
	if node.Parent != "" {
		sb.WriteString(" extends ")
		sb.WriteString(node.Parent)
	}
	sb.WriteString(" {")
	for i, m := range node.Methods {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(m.Literal())
	}
	sb.WriteString("}")
	return sb.String()
}
func (node *ClassDefinitionNode) Pos() lexer.Token { return node.Token }
func (node *ClassDefinitionNode) Statement()       {}

// NewExpressionNode represents `new ClassName args...`.
type NewExpressionNode struct {
	Token     lexer.Token
	ClassName string
	Args      []ExpressionNode
}

func (node *NewExpressionNode) Literal() string {
	var sb strings.Builder
	sb.WriteString("new ")
	sb.WriteString(node.ClassName)
	for _, a := range node.Args {
		sb.WriteByte(' ')
		sb.WriteString(a.Literal())
	}
	return sb.String()
}
func (node *NewExpressionNode) Pos() lexer.Token { return node.Token }
func (node *NewExpressionNode) Statement()       {}
func (node *NewExpressionNode) Expression()      {}

// VariableNode is a bare identifier in value position.
type VariableNode struct {
	Token lexer.Token
	Name  string
}

func (node *VariableNode) Literal() string  { return node.Name }
func (node *VariableNode) Pos() lexer.Token { return node.Token }
func (node *VariableNode) Statement()       {}
func (node *VariableNode) Expression()      {}

// FunctionCallNode represents a call by name with space-separated
// arguments: `add 2 3`, `print (add 2 3)`. Calls are always introduced by
// an identifier; at evaluation time a call whose name resolves only as a
// variable degrades to a variable reference when no arguments were given.
type FunctionCallNode struct {
	Token lexer.Token
	Name  string
	Args  []ExpressionNode
}

func (node *FunctionCallNode) Literal() string {
	var sb strings.Builder
	sb.WriteString(node.Name)
	sb.WriteByte('(')
	for i, a := range node.Args {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(a.Literal())
	}
	sb.WriteByte(')')
	return sb.String()
}
func (node *FunctionCallNode) Pos() lexer.Token { return node.Token }
func (node *FunctionCallNode) Statement()       {}
func (node *FunctionCallNode) Expression()      {}

// PropertyAccessNode represents `object.property`. The property name is a
// string: identifiers, `length`, and nonnegative integer indexes (`xs.0`)
// all arrive here.
type PropertyAccessNode struct {
	Token    lexer.Token // The `.` token
	Object   ExpressionNode
	Property string
}

func (node *PropertyAccessNode) Literal() string {
	return node.Object.Literal() + "." + node.Property
}
func (node *PropertyAccessNode) Pos() lexer.Token { return node.Token }
func (node *PropertyAccessNode) Statement()       {}
func (node *PropertyAccessNode) Expression()      {}

// SuperNode represents the `super` keyword. It is only meaningful as the
// object of a property access inside a method body, where it dispatches to
// the parent class's method table with `this` preserved.
type SuperNode struct {
	Token lexer.Token
}

func (node *SuperNode) Literal() string  { return "super" }
func (node *SuperNode) Pos() lexer.Token { return node.Token }
func (node *SuperNode) Statement()       {}
func (node *SuperNode) Expression()      {}

// ArrayLiteralNode represents `[e1, e2, ...]` and the bare comma form in
// `set` value position. Element order is source order.
type ArrayLiteralNode struct {
	Token    lexer.Token
	Elements []ExpressionNode
}

func (node *ArrayLiteralNode) Literal() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, e := range node.Elements {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(e.Literal())
	}
	sb.WriteByte(']')
	return sb.String()
}
func (node *ArrayLiteralNode) Pos() lexer.Token { return node.Token }
func (node *ArrayLiteralNode) Statement()       {}
func (node *ArrayLiteralNode) Expression()      {}

// ObjectLiteralNode represents the key/value shorthand `name "Alice", age
// 30`. Pairs preserve insertion order; a duplicate key overwrites the
// earlier entry at evaluation time without moving it.
type ObjectLiteralNode struct {
	Token  lexer.Token
	Keys   []string
	Values []ExpressionNode // parallel to Keys
}

func (node *ObjectLiteralNode) Literal() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, k := range node.Keys {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(k)
		sb.WriteString(": ")
		sb.WriteString(node.Values[i].Literal())
	}
	sb.WriteByte('}')
	return sb.String()
}
func (node *ObjectLiteralNode) Pos() lexer.Token { return node.Token }
func (node *ObjectLiteralNode) Statement()       {}
func (node *ObjectLiteralNode) Expression()      {}

// StringLiteralNode holds a string literal with escapes already resolved.
type StringLiteralNode struct {
	Token lexer.Token
	Value string
}

func (node *StringLiteralNode) Literal() string  { return "\"" + node.Value + "\"" }
func (node *StringLiteralNode) Pos() lexer.Token { return node.Token }
func (node *StringLiteralNode) Statement()       {}
func (node *StringLiteralNode) Expression()      {}

// NumberLiteralNode holds a numeric literal already converted to a double.
type NumberLiteralNode struct {
	Token lexer.Token
	Value float64
}

func (node *NumberLiteralNode) Literal() string  { return node.Token.Literal }
func (node *NumberLiteralNode) Pos() lexer.Token { return node.Token }
func (node *NumberLiteralNode) Statement()       {}
func (node *NumberLiteralNode) Expression()      {}

// BooleanLiteralNode holds `true` or `false`.
type BooleanLiteralNode struct {
	Token lexer.Token
	Value bool
}

func (node *BooleanLiteralNode) Literal() string  { return node.Token.Literal }
func (node *BooleanLiteralNode) Pos() lexer.Token { return node.Token }
func (node *BooleanLiteralNode) Statement()       {}
func (node *BooleanLiteralNode) Expression()      {}

// NullLiteralNode holds `null`.
type NullLiteralNode struct {
	Token lexer.Token
}

func (node *NullLiteralNode) Literal() string  { return "null" }
func (node *NullLiteralNode) Pos() lexer.Token { return node.Token }
func (node *NullLiteralNode) Statement()       {}
func (node *NullLiteralNode) Expression()      {}

// UndecidableLiteralNode holds `undecidable`.
type UndecidableLiteralNode struct {
	Token lexer.Token
}

func (node *UndecidableLiteralNode) Literal() string  { return "undecidable" }
func (node *UndecidableLiteralNode) Pos() lexer.Token { return node.Token }
func (node *UndecidableLiteralNode) Statement()       {}
func (node *UndecidableLiteralNode) Expression()      {}

// BinaryOpNode represents a binary operation. The operator token doubles as
// the operator tag.
type BinaryOpNode struct {
	Operation lexer.Token
	Left      ExpressionNode
	Right     ExpressionNode
}

func (node *BinaryOpNode) Literal() string {
	return "(" + node.Left.Literal() + " " + node.Operation.Literal + " " + node.Right.Literal() + ")"
}
func (node *BinaryOpNode) Pos() lexer.Token { return node.Operation }
func (node *BinaryOpNode) Statement()       {}
func (node *BinaryOpNode) Expression()      {}

// UnaryOpNode represents `!operand` and `-operand`.
type UnaryOpNode struct {
	Operation lexer.Token
	Operand   ExpressionNode
}

func (node *UnaryOpNode) Literal() string {
	return "(" + node.Operation.Literal + node.Operand.Literal() + ")"
}
func (node *UnaryOpNode) Pos() lexer.Token { return node.Operation }
func (node *UnaryOpNode) Statement()       {}
func (node *UnaryOpNode) Expression()      {}

// IfNode represents `if`/`elif`/`else`. An elif chain parses as a nested
// IfNode in the Else slot; Else is nil when absent.
type IfNode struct {
	Token     lexer.Token
	Condition ExpressionNode
	Then      *CompoundNode
	Else      StatementNode // nil, *CompoundNode, or *IfNode for elif
}

func (node *IfNode) Literal() string {
	res := "if " + node.Condition.Literal() + " {" + node.Then.Literal() + "}"
	if node.Else != nil {
		res += " else {" + node.Else.Literal() + "}"
	}
	return res
}
func (node *IfNode) Pos() lexer.Token { return node.Token }
func (node *IfNode) Statement()       {}

// WhileNode represents a while loop.
type WhileNode struct {
	Token     lexer.Token
	Condition ExpressionNode
	Body      *CompoundNode
}

func (node *WhileNode) Literal() string {
	return "while " + node.Condition.Literal() + " {" + node.Body.Literal() + "}"
}
func (node *WhileNode) Pos() lexer.Token { return node.Token }
func (node *WhileNode) Statement()       {}

// ForInNode represents `for NAME in iterable`.
type ForInNode struct {
	Token    lexer.Token
	Iterator string
	Iterable ExpressionNode
	Body     *CompoundNode
}

func (node *ForInNode) Literal() string {
	return "for " + node.Iterator + " in " + node.Iterable.Literal() + " {" + node.Body.Literal() + "}"
}
func (node *ForInNode) Pos() lexer.Token { return node.Token }
func (node *ForInNode) Statement()       {}

// ReturnNode represents `return [expr]`. Expr is nil for a bare return.
type ReturnNode struct {
	Token lexer.Token
	Expr  ExpressionNode
}

func (node *ReturnNode) Literal() string {
	if node.Expr == nil {
		return "return"
	}
	return "return " + node.Expr.Literal()
}
func (node *ReturnNode) Pos() lexer.Token { return node.Token }
func (node *ReturnNode) Statement()       {}

// BreakNode represents `break`.
type BreakNode struct {
	Token lexer.Token
}

func (node *BreakNode) Literal() string  { return "break" }
func (node *BreakNode) Pos() lexer.Token { return node.Token }
func (node *BreakNode) Statement()       {}

// ContinueNode represents `continue`.
type ContinueNode struct {
	Token lexer.Token
}

func (node *ContinueNode) Literal() string  { return "continue" }
func (node *ContinueNode) Pos() lexer.Token { return node.Token }
func (node *ContinueNode) Statement()       {}

// NoopNode is an inert statement. Import/export directives parse to it.
type NoopNode struct {
	Token lexer.Token
}

func (node *NoopNode) Literal() string  { return "noop" }
func (node *NoopNode) Pos() lexer.Token { return node.Token }
func (node *NoopNode) Statement()       {}
