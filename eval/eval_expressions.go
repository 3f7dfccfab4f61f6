package eval

import (
	"strconv"

	"github.com/akaoio/zen/function"
	"github.com/akaoio/zen/parser"
	"github.com/akaoio/zen/scope"
	"github.com/akaoio/zen/values"
)

// evalArrayLiteral evaluates elements left to right.
func (e *Evaluator) evalArrayLiteral(n *parser.ArrayLiteralNode, scp *scope.Scope) (values.Value, *signal) {
	arr := &values.Array{Elements: make([]values.Value, 0, len(n.Elements))}
	for _, elem := range n.Elements {
		v, sig := e.eval(elem, scp)
		if values.IsError(v) || sig != nil {
			return v, sig
		}
		arr.Elements = append(arr.Elements, v)
	}
	return arr, nil
}

// evalObjectLiteral evaluates entries in source order. A duplicate key
// overwrites the earlier value without moving the key.
func (e *Evaluator) evalObjectLiteral(n *parser.ObjectLiteralNode, scp *scope.Scope) (values.Value, *signal) {
	obj := values.NewObject()
	for i, key := range n.Keys {
		v, sig := e.eval(n.Values[i], scp)
		if values.IsError(v) || sig != nil {
			return v, sig
		}
		obj.Set(key, v)
	}
	return obj, nil
}

// evalPropertyAccess implements the `.` operator:
//
//   - Object: the value at the key, Null when missing
//   - Array: `length`, or a nonnegative integer index
//   - Instance: own properties first, then the class chain for methods; a
//     method access produces a bound method, and a parameterless method is
//     invoked on the spot so `b.greet` reads like a call
//   - super: dispatch into the parent class's method table with `this`
//     preserved
func (e *Evaluator) evalPropertyAccess(n *parser.PropertyAccessNode, scp *scope.Scope) (values.Value, *signal) {
	if _, isSuper := n.Object.(*parser.SuperNode); isSuper {
		return e.evalSuperAccess(n, scp)
	}

	obj, sig := e.eval(n.Object, scp)
	if values.IsError(obj) || sig != nil {
		return obj, sig
	}

	switch obj := obj.(type) {
	case *values.Object:
		if v, ok := obj.Get(n.Property); ok {
			return v, nil
		}
		return &values.Null{}, nil
	case *values.Array:
		return e.arrayProperty(n, obj)
	case *function.Instance:
		return e.instanceProperty(n, obj)
	default:
		return e.errorAt(n.Pos(), values.BadPropertyAccess, "cannot access property %q on %s", n.Property, obj.GetType()), nil
	}
}

// arrayProperty handles `.length` and integer indexes on arrays.
func (e *Evaluator) arrayProperty(n *parser.PropertyAccessNode, arr *values.Array) (values.Value, *signal) {
	if n.Property == "length" {
		return &values.Number{Value: float64(len(arr.Elements))}, nil
	}
	idx, err := strconv.Atoi(n.Property)
	if err != nil || idx < 0 {
		return e.errorAt(n.Pos(), values.BadPropertyAccess, "no array property %q", n.Property), nil
	}
	if idx >= len(arr.Elements) {
		return e.errorAt(n.Pos(), values.BadPropertyAccess, "array index %d out of range (length %d)", idx, len(arr.Elements)), nil
	}
	return arr.Elements[idx], nil
}

// instanceProperty reads an instance property: own properties shadow
// methods. Private methods are reachable only through `this` and `super`.
func (e *Evaluator) instanceProperty(n *parser.PropertyAccessNode, inst *function.Instance) (values.Value, *signal) {
	if v, ok := inst.Props.Get(n.Property); ok {
		return v, nil
	}
	fn, home, ok := inst.Class.FindMethod(n.Property)
	if !ok {
		return e.errorAt(n.Pos(), values.BadPropertyAccess, "%s has no property %q", inst.Class.Name, n.Property), nil
	}
	if fn.Private && !receiverIsSelf(n.Object) {
		return e.errorAt(n.Pos(), values.BadPropertyAccess, "method %q of %s is private", n.Property, inst.Class.Name), nil
	}
	bound := &function.BoundMethod{Receiver: inst, Method: fn, Home: home}
	if len(fn.Params) == 0 {
		v := e.invokeBoundMethod(bound, nil, n.Pos())
		return v, nil
	}
	return bound, nil
}

// receiverIsSelf reports whether the accessed object is syntactically
// `this` or `super`, the only receivers allowed to reach private members.
func receiverIsSelf(obj parser.ExpressionNode) bool {
	if v, ok := obj.(*parser.VariableNode); ok {
		return v.Name == "this"
	}
	_, isSuper := obj.(*parser.SuperNode)
	return isSuper
}

// evalSuperAccess resolves `super.name` against the parent of the class
// whose method is currently executing, binding the original receiver.
func (e *Evaluator) evalSuperAccess(n *parser.PropertyAccessNode, scp *scope.Scope) (values.Value, *signal) {
	if len(e.classStack) == 0 {
		return e.errorAt(n.Pos(), values.BadPropertyAccess, "`super` outside of a method"), nil
	}
	home := e.classStack[len(e.classStack)-1]
	if home.Parent == nil {
		return e.errorAt(n.Pos(), values.BadPropertyAccess, "class %s has no parent", home.Name), nil
	}
	thisVal, ok := scp.LookupVariable("this")
	if !ok {
		return e.errorAt(n.Pos(), values.BadPropertyAccess, "`super` outside of a method"), nil
	}
	inst, ok := thisVal.(*function.Instance)
	if !ok {
		return e.errorAt(n.Pos(), values.BadPropertyAccess, "`super` outside of a method"), nil
	}

	fn, methodHome, found := home.Parent.FindMethod(n.Property)
	if !found {
		return e.errorAt(n.Pos(), values.BadPropertyAccess, "%s has no method %q", home.Parent.Name, n.Property), nil
	}
	bound := &function.BoundMethod{Receiver: inst, Method: fn, Home: methodHome}
	if len(fn.Params) == 0 {
		return e.invokeBoundMethod(bound, nil, n.Pos()), nil
	}
	return bound, nil
}
