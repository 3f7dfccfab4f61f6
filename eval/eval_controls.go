package eval

import (
	"github.com/akaoio/zen/function"
	"github.com/akaoio/zen/lexer"
	"github.com/akaoio/zen/parser"
	"github.com/akaoio/zen/scope"
	"github.com/akaoio/zen/values"
)

// evalFunctionCall resolves a call by name, in order: builtin table, the
// scope chain's function table, then the variable table (a class value
// there makes the call a construction; a function value is invoked; any
// other value passes through when no arguments were given — that is the
// variable-reference fallback for names the parser had to guess about).
func (e *Evaluator) evalFunctionCall(n *parser.FunctionCallNode, scp *scope.Scope) (values.Value, *signal) {
	if builtin, ok := e.Builtins[n.Name]; ok {
		args, errVal := e.evalArgs(n.Args, scp)
		if errVal != nil {
			return errVal, nil
		}
		return builtin.Callback(e, e.Writer, args...), nil
	}

	if fnVal, ok := scp.LookupFunction(n.Name); ok {
		fn := fnVal.(*function.Function)
		args, errVal := e.evalArgs(n.Args, scp)
		if errVal != nil {
			return errVal, nil
		}
		return e.callFunction(fn, args, nil, nil, n.Pos()), nil
	}

	if v, ok := scp.LookupVariable(n.Name); ok {
		switch v := v.(type) {
		case *function.Class:
			args, errVal := e.evalArgs(n.Args, scp)
			if errVal != nil {
				return errVal, nil
			}
			return e.instantiate(v, args, n.Pos()), nil
		case *function.Function:
			args, errVal := e.evalArgs(n.Args, scp)
			if errVal != nil {
				return errVal, nil
			}
			return e.callFunction(v, args, nil, nil, n.Pos()), nil
		case *function.BoundMethod:
			args, errVal := e.evalArgs(n.Args, scp)
			if errVal != nil {
				return errVal, nil
			}
			return e.invokeBoundMethod(v, args, n.Pos()), nil
		default:
			if len(n.Args) == 0 {
				return v, nil
			}
			return e.errorAt(n.Pos(), values.NotCallable, "%q is not callable", n.Name), nil
		}
	}

	return e.errorAt(n.Pos(), values.UndefinedName, "name %q is not defined", n.Name), nil
}

// evalArgs evaluates call arguments left to right in the caller's scope,
// before any call frame is pushed. The second result is non-nil when an
// argument produced an error.
func (e *Evaluator) evalArgs(argNodes []parser.ExpressionNode, scp *scope.Scope) ([]values.Value, values.Value) {
	args := make([]values.Value, len(argNodes))
	for i, argNode := range argNodes {
		v, sig := e.eval(argNode, scp)
		if values.IsError(v) {
			return nil, v
		}
		if sig != nil {
			return nil, &values.Null{}
		}
		args[i] = v
	}
	return args, nil
}

// callFunction invokes a user function: arity check, depth check, a fresh
// scope parented on the capture scope, parameters bound to the already
// evaluated arguments, and the body's return signal unwrapped. A non-nil
// receiver binds `this` and pushes home onto the method class stack for
// `super` resolution.
func (e *Evaluator) callFunction(fn *function.Function, args []values.Value, receiver *function.Instance, home *function.Class, at lexer.Token) values.Value {
	if len(args) != len(fn.Params) {
		return e.errorAt(at, values.ArityMismatch, "%s expects %d arguments, got %d", fn.Name, len(fn.Params), len(args))
	}
	if e.depth >= e.Limits.MaxCallDepth {
		return e.errorAt(at, values.StackOverflow, "call depth exceeds %d", e.Limits.MaxCallDepth)
	}

	callScope := scope.NewScope(fn.Scope)
	for i, param := range fn.Params {
		callScope.DefineVariable(param, args[i])
	}
	if receiver != nil {
		callScope.DefineVariable("this", receiver)
		e.classStack = append(e.classStack, home)
		defer func() { e.classStack = e.classStack[:len(e.classStack)-1] }()
	}

	e.depth++
	result, sig := e.evalCompound(fn.Body, callScope)
	e.depth--

	if sig != nil {
		if sig.kind == sigReturn {
			return sig.value
		}
		// break/continue do not escape a function body
		return &values.Null{}
	}
	return result
}

// invokeBoundMethod calls a method with `this` bound to its receiver.
func (e *Evaluator) invokeBoundMethod(bm *function.BoundMethod, args []values.Value, at lexer.Token) values.Value {
	return e.callFunction(bm.Method, args, bm.Receiver, bm.Home, at)
}

// instantiate allocates an instance of class and runs its constructor, if
// any, with `this` bound to the new instance. Parent resolution happens
// here, lazily, so a class may extend one defined later in the file.
func (e *Evaluator) instantiate(class *function.Class, args []values.Value, at lexer.Token) values.Value {
	if errVal := e.resolveParents(class, at); errVal != nil {
		return errVal
	}
	inst := function.NewInstance(class)
	if ctor, home, ok := class.FindMethod("constructor"); ok {
		result := e.callFunction(ctor, args, inst, home, at)
		if values.IsError(result) {
			return result
		}
	} else if len(args) != 0 {
		return e.errorAt(at, values.ArityMismatch, "%s has no constructor but got %d arguments", class.Name, len(args))
	}
	return inst
}

// resolveParents walks the extends chain, resolving parent names to class
// values in the global scope. A name that resolves to something other than
// a class, or not at all, is an error.
func (e *Evaluator) resolveParents(class *function.Class, at lexer.Token) values.Value {
	for cls := class; cls != nil && cls.ParentName != "" && cls.Parent == nil; cls = cls.Parent {
		v, ok := e.Globals.LookupVariable(cls.ParentName)
		if !ok {
			return e.errorAt(at, values.UndefinedName, "parent class %q is not defined", cls.ParentName)
		}
		parent, isClass := v.(*function.Class)
		if !isClass {
			return e.errorAt(at, values.TypeMismatch, "%q is not a class", cls.ParentName)
		}
		cls.Parent = parent
	}
	// Reject inheritance cycles so method lookup always terminates.
	seen := map[*function.Class]bool{}
	for cls := class; cls != nil; cls = cls.Parent {
		if seen[cls] {
			return e.errorAt(at, values.TypeMismatch, "inheritance cycle through %q", cls.Name)
		}
		seen[cls] = true
	}
	return nil
}

// evalNewExpression resolves the class name and constructs an instance.
func (e *Evaluator) evalNewExpression(n *parser.NewExpressionNode, scp *scope.Scope) (values.Value, *signal) {
	v, ok := scp.LookupVariable(n.ClassName)
	if !ok {
		return e.errorAt(n.Pos(), values.UndefinedName, "class %q is not defined", n.ClassName), nil
	}
	class, isClass := v.(*function.Class)
	if !isClass {
		return e.errorAt(n.Pos(), values.NotCallable, "%q is not a class", n.ClassName), nil
	}
	args, errVal := e.evalArgs(n.Args, scp)
	if errVal != nil {
		return errVal, nil
	}
	return e.instantiate(class, args, n.Pos()), nil
}

// CallFunction lets host builtins call back into user code (e.g. a
// comparator passed to a builtin). Part of the std.Runtime interface.
func (e *Evaluator) CallFunction(fnVal values.Value, args ...values.Value) values.Value {
	switch fn := fnVal.(type) {
	case *function.Function:
		return e.callFunction(fn, args, nil, nil, lexer.Token{})
	case *function.BoundMethod:
		return e.invokeBoundMethod(fn, args, lexer.Token{})
	default:
		return values.NewError(values.NotCallable, "value of type %s is not callable", fnVal.GetType())
	}
}
