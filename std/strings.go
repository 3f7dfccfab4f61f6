package std

import (
	"io"
	"strings"

	"github.com/akaoio/zen/values"
)

// stringMethods are the string helpers. All of them require their string
// operands to actually be strings; they never coerce.
var stringMethods = []*Builtin{
	{Name: "upper", Callback: string1(strings.ToUpper)},
	{Name: "lower", Callback: string1(strings.ToLower)},
	{Name: "trim", Callback: string1(strings.TrimSpace)},
	{Name: "split", Callback: splitFunc},
	{Name: "join", Callback: joinFunc},
	{Name: "replace", Callback: replaceFunc},
	{Name: "contains", Callback: string2pred(strings.Contains)},
	{Name: "starts_with", Callback: string2pred(strings.HasPrefix)},
	{Name: "ends_with", Callback: string2pred(strings.HasSuffix)},
}

func init() {
	Builtins = append(Builtins, stringMethods...)
}

// argString extracts a required string argument.
func argString(args []values.Value, i int, name string) (string, *values.Error) {
	if i >= len(args) {
		return "", createError("%s: missing argument %d", name, i+1)
	}
	s, ok := args[i].(*values.String)
	if !ok {
		return "", createError("%s: argument %d must be a string, got %s", name, i+1, args[i].GetType())
	}
	return s.Value, nil
}

// string1 lifts a string transform into a one-argument builtin.
func string1(fn func(string) string) CallbackFunc {
	return func(rt Runtime, writer io.Writer, args ...values.Value) values.Value {
		if len(args) != 1 {
			return createError("expected 1 argument, got %d", len(args))
		}
		s, ok := args[0].(*values.String)
		if !ok {
			return createError("argument must be a string, got %s", args[0].GetType())
		}
		return &values.String{Value: fn(s.Value)}
	}
}

// string2pred lifts a (string, string) predicate into a two-argument
// builtin returning a boolean.
func string2pred(fn func(s, t string) bool) CallbackFunc {
	return func(rt Runtime, writer io.Writer, args ...values.Value) values.Value {
		if len(args) != 2 {
			return createError("expected 2 arguments, got %d", len(args))
		}
		s, err := argString(args, 0, "string predicate")
		if err != nil {
			return err
		}
		t, err := argString(args, 1, "string predicate")
		if err != nil {
			return err
		}
		return &values.Boolean{Value: fn(s, t)}
	}
}

// splitFunc splits a string on a separator and returns the pieces as an
// array of strings.
func splitFunc(rt Runtime, writer io.Writer, args ...values.Value) values.Value {
	if len(args) != 2 {
		return createError("split expects 2 arguments, got %d", len(args))
	}
	s, err := argString(args, 0, "split")
	if err != nil {
		return err
	}
	sep, err := argString(args, 1, "split")
	if err != nil {
		return err
	}
	parts := strings.Split(s, sep)
	elements := make([]values.Value, len(parts))
	for i, p := range parts {
		elements[i] = &values.String{Value: p}
	}
	return &values.Array{Elements: elements}
}

// joinFunc concatenates the string conversions of an array's elements with
// a separator.
func joinFunc(rt Runtime, writer io.Writer, args ...values.Value) values.Value {
	if len(args) != 2 {
		return createError("join expects 2 arguments, got %d", len(args))
	}
	arr, ok := args[0].(*values.Array)
	if !ok {
		return createError("join: argument 1 must be an array, got %s", args[0].GetType())
	}
	sep, err := argString(args, 1, "join")
	if err != nil {
		return err
	}
	parts := make([]string, len(arr.Elements))
	for i, elem := range arr.Elements {
		parts[i] = elem.ToString()
	}
	return &values.String{Value: strings.Join(parts, sep)}
}

// replaceFunc replaces every occurrence of old with new in a string.
func replaceFunc(rt Runtime, writer io.Writer, args ...values.Value) values.Value {
	if len(args) != 3 {
		return createError("replace expects 3 arguments, got %d", len(args))
	}
	s, err := argString(args, 0, "replace")
	if err != nil {
		return err
	}
	old, err := argString(args, 1, "replace")
	if err != nil {
		return err
	}
	new_, err := argString(args, 2, "replace")
	if err != nil {
		return err
	}
	return &values.String{Value: strings.ReplaceAll(s, old, new_)}
}
