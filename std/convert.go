package std

import (
	"io"

	"github.com/akaoio/zen/values"
)

// conversionMethods expose the standard value conversions as callable
// helpers.
var conversionMethods = []*Builtin{
	{Name: "to_string", Callback: toStringFunc},
	{Name: "to_number", Callback: toNumberFunc},
	{Name: "to_bool", Callback: toBoolFunc},
}

func init() {
	Builtins = append(Builtins, conversionMethods...)
}

// toStringFunc returns the display form of its argument.
func toStringFunc(rt Runtime, writer io.Writer, args ...values.Value) values.Value {
	if len(args) != 1 {
		return createError("to_string expects 1 argument, got %d", len(args))
	}
	return &values.String{Value: args[0].ToString()}
}

// toNumberFunc applies the standard to-number conversion: null is 0,
// booleans are 0/1, strings parse strictly, anything else errors.
func toNumberFunc(rt Runtime, writer io.Writer, args ...values.Value) values.Value {
	if len(args) != 1 {
		return createError("to_number expects 1 argument, got %d", len(args))
	}
	x, err := values.ToNumber(args[0])
	if err != nil {
		return err
	}
	return &values.Number{Value: x}
}

// toBoolFunc applies the truthiness conversion.
func toBoolFunc(rt Runtime, writer io.Writer, args ...values.Value) values.Value {
	if len(args) != 1 {
		return createError("to_bool expects 1 argument, got %d", len(args))
	}
	return &values.Boolean{Value: values.Truthy(args[0])}
}
