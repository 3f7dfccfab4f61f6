package eval

import (
	"math"

	"github.com/akaoio/zen/lexer"
	"github.com/akaoio/zen/parser"
	"github.com/akaoio/zen/scope"
	"github.com/akaoio/zen/values"
)

// evalBinaryOp dispatches a binary operator. The logical operators get the
// unevaluated right operand so they can short-circuit; everything else
// evaluates both sides first.
func (e *Evaluator) evalBinaryOp(n *parser.BinaryOpNode, scp *scope.Scope) (values.Value, *signal) {
	switch n.Operation.Type {
	case lexer.AND_OP:
		return e.evalLogicalAnd(n, scp)
	case lexer.OR_OP:
		return e.evalLogicalOr(n, scp)
	}

	left, sig := e.eval(n.Left, scp)
	if values.IsError(left) || sig != nil {
		return left, sig
	}
	right, sig := e.eval(n.Right, scp)
	if values.IsError(right) || sig != nil {
		return right, sig
	}

	switch n.Operation.Type {
	case lexer.EQ_OP:
		return &values.Boolean{Value: values.Equals(left, right)}, nil
	case lexer.NE_OP:
		return &values.Boolean{Value: !values.Equals(left, right)}, nil
	case lexer.LT_OP, lexer.GT_OP, lexer.LE_OP, lexer.GE_OP:
		return e.evalComparison(n, left, right)
	case lexer.PLUS_OP:
		return e.evalAdd(n, left, right)
	case lexer.MINUS_OP, lexer.MUL_OP, lexer.DIV_OP, lexer.MOD_OP:
		return e.evalArithmetic(n, left, right)
	default:
		return e.errorAt(n.Operation, values.TypeMismatch, "unknown operator %q", n.Operation.Literal), nil
	}
}

// evalLogicalAnd is short-circuiting two-valued AND with undecidable
// contagion: a falsy left (other than undecidable) yields false without
// evaluating the right side; an undecidable operand, once evaluated, makes
// the result undecidable.
func (e *Evaluator) evalLogicalAnd(n *parser.BinaryOpNode, scp *scope.Scope) (values.Value, *signal) {
	left, sig := e.eval(n.Left, scp)
	if values.IsError(left) || sig != nil {
		return left, sig
	}
	leftUndecidable := left.GetType() == values.UndecidableType
	if !leftUndecidable && !values.Truthy(left) {
		return &values.Boolean{Value: false}, nil
	}
	right, sig := e.eval(n.Right, scp)
	if values.IsError(right) || sig != nil {
		return right, sig
	}
	if leftUndecidable || right.GetType() == values.UndecidableType {
		return &values.Undecidable{}, nil
	}
	return &values.Boolean{Value: values.Truthy(right)}, nil
}

// evalLogicalOr is the dual of evalLogicalAnd.
func (e *Evaluator) evalLogicalOr(n *parser.BinaryOpNode, scp *scope.Scope) (values.Value, *signal) {
	left, sig := e.eval(n.Left, scp)
	if values.IsError(left) || sig != nil {
		return left, sig
	}
	leftUndecidable := left.GetType() == values.UndecidableType
	if !leftUndecidable && values.Truthy(left) {
		return &values.Boolean{Value: true}, nil
	}
	right, sig := e.eval(n.Right, scp)
	if values.IsError(right) || sig != nil {
		return right, sig
	}
	if leftUndecidable || right.GetType() == values.UndecidableType {
		return &values.Undecidable{}, nil
	}
	return &values.Boolean{Value: values.Truthy(right)}, nil
}

// evalComparison orders two strings lexicographically or two coerced
// numbers; mixing anything else is a type mismatch.
func (e *Evaluator) evalComparison(n *parser.BinaryOpNode, left, right values.Value) (values.Value, *signal) {
	if ls, ok := left.(*values.String); ok {
		if rs, ok := right.(*values.String); ok {
			return e.compareOrdered(n, compareStrings(ls.Value, rs.Value)), nil
		}
	}
	lf, err := values.ToNumber(left)
	if err != nil {
		return e.errorAt(n.Operation, values.TypeMismatch, "cannot compare %s with %s", left.GetType(), right.GetType()), nil
	}
	rf, err := values.ToNumber(right)
	if err != nil {
		return e.errorAt(n.Operation, values.TypeMismatch, "cannot compare %s with %s", left.GetType(), right.GetType()), nil
	}
	switch {
	case lf < rf:
		return e.compareOrdered(n, -1), nil
	case lf > rf:
		return e.compareOrdered(n, 1), nil
	case lf == rf:
		return e.compareOrdered(n, 0), nil
	default:
		// NaN involved: every ordering comparison is false.
		return &values.Boolean{Value: false}, nil
	}
}

// compareStrings returns -1, 0, or 1 for the lexicographic order of a and b.
func compareStrings(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// compareOrdered turns a three-way comparison result into the boolean for
// the operator at hand.
func (e *Evaluator) compareOrdered(n *parser.BinaryOpNode, cmp int) values.Value {
	var result bool
	switch n.Operation.Type {
	case lexer.LT_OP:
		result = cmp < 0
	case lexer.GT_OP:
		result = cmp > 0
	case lexer.LE_OP:
		result = cmp <= 0
	case lexer.GE_OP:
		result = cmp >= 0
	}
	return &values.Boolean{Value: result}
}

// evalAdd is numeric addition, except that a string on either side turns
// the operation into concatenation with the other side string-converted.
func (e *Evaluator) evalAdd(n *parser.BinaryOpNode, left, right values.Value) (values.Value, *signal) {
	if left.GetType() == values.StringType || right.GetType() == values.StringType {
		return &values.String{Value: left.ToString() + right.ToString()}, nil
	}
	return e.evalArithmetic(n, left, right)
}

// evalArithmetic coerces both sides to numbers and applies the operator.
// Division follows IEEE (dividing by zero yields an infinity or NaN);
// modulo by zero is an error.
func (e *Evaluator) evalArithmetic(n *parser.BinaryOpNode, left, right values.Value) (values.Value, *signal) {
	lf, err := values.ToNumber(left)
	if err != nil {
		return e.errorAt(n.Operation, err.Kind, "%s", err.Message), nil
	}
	rf, err := values.ToNumber(right)
	if err != nil {
		return e.errorAt(n.Operation, err.Kind, "%s", err.Message), nil
	}
	switch n.Operation.Type {
	case lexer.PLUS_OP:
		return &values.Number{Value: lf + rf}, nil
	case lexer.MINUS_OP:
		return &values.Number{Value: lf - rf}, nil
	case lexer.MUL_OP:
		return &values.Number{Value: lf * rf}, nil
	case lexer.DIV_OP:
		return &values.Number{Value: lf / rf}, nil
	default: // MOD_OP
		if rf == 0 {
			return e.errorAt(n.Operation, values.DivisionByZero, "modulo by zero"), nil
		}
		return &values.Number{Value: math.Mod(lf, rf)}, nil
	}
}

// evalUnaryOp applies `!` (logical NOT, with undecidable passing through
// unchanged) or `-` (numeric negation).
func (e *Evaluator) evalUnaryOp(n *parser.UnaryOpNode, scp *scope.Scope) (values.Value, *signal) {
	operand, sig := e.eval(n.Operand, scp)
	if values.IsError(operand) || sig != nil {
		return operand, sig
	}
	switch n.Operation.Type {
	case lexer.NOT_OP:
		if operand.GetType() == values.UndecidableType {
			return &values.Undecidable{}, nil
		}
		return &values.Boolean{Value: !values.Truthy(operand)}, nil
	case lexer.MINUS_OP:
		f, err := values.ToNumber(operand)
		if err != nil {
			return e.errorAt(n.Operation, err.Kind, "%s", err.Message), nil
		}
		return &values.Number{Value: -f}, nil
	default:
		return e.errorAt(n.Operation, values.TypeMismatch, "unknown unary operator %q", n.Operation.Literal), nil
	}
}
