package std

import (
	"io"
	"math"
	"math/rand"

	"github.com/akaoio/zen/values"
)

// mathMethods are the numeric helpers. Every unary helper coerces its
// argument through the standard to-number conversion, so `abs "-3"` is 3
// and `abs null` is 0.
var mathMethods = []*Builtin{
	{Name: "abs", Callback: numeric1(math.Abs)},
	{Name: "floor", Callback: numeric1(math.Floor)},
	{Name: "ceil", Callback: numeric1(math.Ceil)},
	{Name: "round", Callback: numeric1(math.Round)},
	{Name: "sqrt", Callback: numeric1(math.Sqrt)},
	{Name: "sin", Callback: numeric1(math.Sin)},
	{Name: "cos", Callback: numeric1(math.Cos)},
	{Name: "tan", Callback: numeric1(math.Tan)},
	{Name: "log", Callback: numeric1(math.Log)},
	{Name: "exp", Callback: numeric1(math.Exp)},
	{Name: "pow", Callback: powFunc},
	{Name: "min", Callback: minFunc},
	{Name: "max", Callback: maxFunc},
	{Name: "random", Callback: randomFunc},
}

func init() {
	Builtins = append(Builtins, mathMethods...)
}

// numeric1 lifts a float64 function into a one-argument builtin.
func numeric1(fn func(float64) float64) CallbackFunc {
	return func(rt Runtime, writer io.Writer, args ...values.Value) values.Value {
		if len(args) != 1 {
			return createError("expected 1 argument, got %d", len(args))
		}
		x, err := values.ToNumber(args[0])
		if err != nil {
			return err
		}
		return &values.Number{Value: fn(x)}
	}
}

// powFunc returns base raised to exponent.
func powFunc(rt Runtime, writer io.Writer, args ...values.Value) values.Value {
	if len(args) != 2 {
		return createError("pow expects 2 arguments, got %d", len(args))
	}
	base, err := values.ToNumber(args[0])
	if err != nil {
		return err
	}
	exp, err := values.ToNumber(args[1])
	if err != nil {
		return err
	}
	return &values.Number{Value: math.Pow(base, exp)}
}

// minFunc returns the smallest of its numeric arguments.
func minFunc(rt Runtime, writer io.Writer, args ...values.Value) values.Value {
	return fold(args, "min", math.Min)
}

// maxFunc returns the largest of its numeric arguments.
func maxFunc(rt Runtime, writer io.Writer, args ...values.Value) values.Value {
	return fold(args, "max", math.Max)
}

// fold reduces one-or-more numeric arguments with a binary combiner.
func fold(args []values.Value, name string, combine func(a, b float64) float64) values.Value {
	if len(args) == 0 {
		return createError("%s expects at least 1 argument", name)
	}
	acc, err := values.ToNumber(args[0])
	if err != nil {
		return err
	}
	for _, arg := range args[1:] {
		x, err := values.ToNumber(arg)
		if err != nil {
			return err
		}
		acc = combine(acc, x)
	}
	return &values.Number{Value: acc}
}

// randomFunc returns a uniform float in [0, 1).
func randomFunc(rt Runtime, writer io.Writer, args ...values.Value) values.Value {
	if len(args) != 0 {
		return createError("random expects no arguments, got %d", len(args))
	}
	return &values.Number{Value: rand.Float64()}
}
