package eval

import (
	"strconv"

	"github.com/akaoio/zen/function"
	"github.com/akaoio/zen/parser"
	"github.com/akaoio/zen/scope"
	"github.com/akaoio/zen/values"
)

// evalCompound evaluates statements in source order. An error value stops
// evaluation immediately; a control-flow signal stops it and propagates to
// the enclosing construct. The compound's value is that of its last
// statement, or Null when empty.
func (e *Evaluator) evalCompound(n *parser.CompoundNode, scp *scope.Scope) (values.Value, *signal) {
	var result values.Value = &values.Null{}
	for _, stmt := range n.Statements {
		var sig *signal
		result, sig = e.eval(stmt, scp)
		if values.IsError(result) {
			return result, nil
		}
		if sig != nil {
			return result, sig
		}
	}
	return result, nil
}

// evalVariableDefinition evaluates the initializer in the current scope and
// replaces the binding. Definitions always bind locally: a `set` inside a
// function never leaks into the enclosing scope.
func (e *Evaluator) evalVariableDefinition(n *parser.VariableDefinitionNode, scp *scope.Scope) (values.Value, *signal) {
	v, sig := e.eval(n.Expr, scp)
	if values.IsError(v) || sig != nil {
		return v, sig
	}
	scp.DefineVariable(n.Name, v)
	return v, nil
}

// evalPropertyAssignment writes through a dotted `set` target: object keys,
// instance own-properties, and array elements by index.
func (e *Evaluator) evalPropertyAssignment(n *parser.PropertyAssignmentNode, scp *scope.Scope) (values.Value, *signal) {
	target, sig := e.eval(n.Object, scp)
	if values.IsError(target) || sig != nil {
		return target, sig
	}
	v, sig := e.eval(n.Expr, scp)
	if values.IsError(v) || sig != nil {
		return v, sig
	}

	switch target := target.(type) {
	case *values.Object:
		target.Set(n.Property, v)
		return v, nil
	case *function.Instance:
		target.Props.Set(n.Property, v)
		return v, nil
	case *values.Array:
		idx, err := strconv.Atoi(n.Property)
		if err != nil || idx < 0 || idx >= len(target.Elements) {
			return e.errorAt(n.Pos(), values.BadPropertyAccess, "no array element %q", n.Property), nil
		}
		target.Elements[idx] = v
		return v, nil
	default:
		return e.errorAt(n.Pos(), values.BadPropertyAccess, "cannot assign property %q on %s", n.Property, target.GetType()), nil
	}
}

// evalFunctionDefinition registers the function in the current scope's
// function table. The binding captures the current scope, which becomes the
// parent of every invocation's call scope.
func (e *Evaluator) evalFunctionDefinition(n *parser.FunctionDefinitionNode, scp *scope.Scope) (values.Value, *signal) {
	fn := &function.Function{
		Name:    n.Name,
		Params:  n.Params,
		Body:    n.Body,
		Scope:   scp,
		Private: n.Private,
	}
	scp.DefineFunction(n.Name, fn)
	return fn, nil
}

// evalClassDefinition builds a Class value and registers it in the current
// scope's variable table (classes share the variable namespace). The parent
// is recorded by name; resolution waits until instantiation.
func (e *Evaluator) evalClassDefinition(n *parser.ClassDefinitionNode, scp *scope.Scope) (values.Value, *signal) {
	class := function.NewClass(n.Name, n.Parent)
	for _, m := range n.Methods {
		class.AddMethod(&function.Function{
			Name:    m.Name,
			Params:  m.Params,
			Body:    m.Body,
			Scope:   scp,
			Private: m.Private,
		})
	}
	scp.DefineVariable(n.Name, class)
	return class, nil
}

// evalVariable resolves a bare identifier: variable table first, then
// function table (yielding the function as a value).
func (e *Evaluator) evalVariable(n *parser.VariableNode, scp *scope.Scope) (values.Value, *signal) {
	if v, ok := scp.LookupVariable(n.Name); ok {
		return v, nil
	}
	if fn, ok := scp.LookupFunction(n.Name); ok {
		return fn, nil
	}
	return e.errorAt(n.Pos(), values.UndefinedName, "name %q is not defined", n.Name), nil
}

// evalIf branches on the condition's truthiness. The if's value is the
// value of the branch taken, or Null when no branch runs.
func (e *Evaluator) evalIf(n *parser.IfNode, scp *scope.Scope) (values.Value, *signal) {
	cond, sig := e.eval(n.Condition, scp)
	if values.IsError(cond) || sig != nil {
		return cond, sig
	}
	if values.Truthy(cond) {
		return e.eval(n.Then, scp)
	}
	if n.Else != nil {
		return e.eval(n.Else, scp)
	}
	return &values.Null{}, nil
}

// evalReturn evaluates the optional expression and raises the return
// signal.
func (e *Evaluator) evalReturn(n *parser.ReturnNode, scp *scope.Scope) (values.Value, *signal) {
	var v values.Value = &values.Null{}
	if n.Expr != nil {
		var sig *signal
		v, sig = e.eval(n.Expr, scp)
		if values.IsError(v) || sig != nil {
			return v, sig
		}
	}
	return v, &signal{kind: sigReturn, value: v}
}
