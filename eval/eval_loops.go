package eval

import (
	"github.com/akaoio/zen/parser"
	"github.com/akaoio/zen/scope"
	"github.com/akaoio/zen/values"
)

// evalWhile loops until the condition turns falsy. Break exits the loop,
// continue restarts the condition, return propagates outward. The iteration
// ceiling bounds runaway loops.
func (e *Evaluator) evalWhile(n *parser.WhileNode, scp *scope.Scope) (values.Value, *signal) {
	iterations := 0
	var result values.Value = &values.Null{}
	for {
		if iterations >= e.Limits.MaxLoopIterations {
			return e.errorAt(n.Pos(), values.LoopLimitExceeded, "loop exceeded %d iterations", e.Limits.MaxLoopIterations), nil
		}
		iterations++

		cond, sig := e.eval(n.Condition, scp)
		if values.IsError(cond) || sig != nil {
			return cond, sig
		}
		if !values.Truthy(cond) {
			return result, nil
		}

		v, sig := e.eval(n.Body, scp)
		if values.IsError(v) {
			return v, nil
		}
		if sig != nil {
			switch sig.kind {
			case sigBreak:
				return result, nil
			case sigContinue:
				continue
			default:
				return v, sig
			}
		}
		result = v
	}
}

// evalForIn iterates an array's values in order, or an object's keys in
// insertion order. The iterator variable binds in the current scope — ZEN
// has no block scope — so it remains visible after the loop.
func (e *Evaluator) evalForIn(n *parser.ForInNode, scp *scope.Scope) (values.Value, *signal) {
	iterable, sig := e.eval(n.Iterable, scp)
	if values.IsError(iterable) || sig != nil {
		return iterable, sig
	}

	var items []values.Value
	switch iterable := iterable.(type) {
	case *values.Array:
		items = iterable.Elements
	case *values.Object:
		items = make([]values.Value, len(iterable.Keys))
		for i, key := range iterable.Keys {
			items[i] = &values.String{Value: key}
		}
	default:
		return e.errorAt(n.Pos(), values.NotIterable, "cannot iterate %s", iterable.GetType()), nil
	}

	var result values.Value = &values.Null{}
	for _, item := range items {
		scp.DefineVariable(n.Iterator, item)
		v, sig := e.eval(n.Body, scp)
		if values.IsError(v) {
			return v, nil
		}
		if sig != nil {
			switch sig.kind {
			case sigBreak:
				return result, nil
			case sigContinue:
				continue
			default:
				return v, sig
			}
		}
		result = v
	}
	return result, nil
}
