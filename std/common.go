package std

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/akaoio/zen/values"
)

// commonMethods are the builtins that do not belong to a specific domain:
// printing, measurement, and type inspection.
var commonMethods = []*Builtin{
	{Name: "print", Callback: printFunc},   // Writes arguments space-separated plus a newline
	{Name: "length", Callback: lengthFunc}, // Length of a string, array, or object
	{Name: "typeof", Callback: typeofFunc}, // Runtime type name as a string
}

func init() {
	Builtins = append(Builtins, commonMethods...)
}

// createError builds a BadArgument error with a formatted message. Builtins
// use it for every argument-shape complaint.
func createError(format string, a ...interface{}) *values.Error {
	return values.NewError(values.BadArgument, format, a...)
}

// printFunc writes the space-separated string conversions of its arguments
// followed by a newline, returning Null. With no arguments it writes a bare
// newline.
func printFunc(rt Runtime, writer io.Writer, args ...values.Value) values.Value {
	for i, arg := range args {
		if i > 0 {
			fmt.Fprint(writer, " ")
		}
		fmt.Fprint(writer, arg.ToString())
	}
	fmt.Fprintln(writer)
	return &values.Null{}
}

// lengthFunc returns the length of its argument: characters of a string,
// elements of an array, keys of an object.
func lengthFunc(rt Runtime, writer io.Writer, args ...values.Value) values.Value {
	if len(args) != 1 {
		return createError("length expects 1 argument, got %d", len(args))
	}
	switch arg := args[0].(type) {
	case *values.String:
		return &values.Number{Value: float64(utf8.RuneCountInString(arg.Value))}
	case *values.Array:
		return &values.Number{Value: float64(len(arg.Elements))}
	case *values.Object:
		return &values.Number{Value: float64(len(arg.Keys))}
	default:
		return createError("length does not apply to %s", args[0].GetType())
	}
}

// typeofFunc returns the runtime type name of its argument.
func typeofFunc(rt Runtime, writer io.Writer, args ...values.Value) values.Value {
	if len(args) != 1 {
		return createError("typeof expects 1 argument, got %d", len(args))
	}
	return &values.String{Value: string(args[0].GetType())}
}
