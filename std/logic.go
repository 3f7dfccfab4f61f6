package std

import (
	"io"

	"github.com/akaoio/zen/values"
)

// logicMethods expose the three-valued logic connectives over the domain
// {false, undecidable, true}. Arguments must be booleans or undecidable;
// anything else is a BadArgument error rather than a silent coercion, so a
// stray number never masquerades as a truth value.
var logicMethods = []*Builtin{
	{Name: "undecidable_and", Callback: trivalent2("undecidable_and", values.LukasiewiczAnd)},
	{Name: "undecidable_or", Callback: trivalent2("undecidable_or", values.LukasiewiczOr)},
	{Name: "undecidable_implies", Callback: trivalent2("undecidable_implies", values.LukasiewiczImplies)},
	{Name: "kleene_and", Callback: trivalent2("kleene_and", values.KleeneAnd)},
	{Name: "kleene_or", Callback: trivalent2("kleene_or", values.KleeneOr)},
}

func init() {
	Builtins = append(Builtins, logicMethods...)
}

// trivalent2 lifts a connective over truth ranks into a two-argument
// builtin.
func trivalent2(name string, fn func(a, b values.Trivalent) values.Trivalent) CallbackFunc {
	return func(rt Runtime, writer io.Writer, args ...values.Value) values.Value {
		if len(args) != 2 {
			return createError("%s expects 2 arguments, got %d", name, len(args))
		}
		a, ok := values.ToTrivalent(args[0])
		if !ok {
			return createError("%s: argument 1 must be a truth value, got %s", name, args[0].GetType())
		}
		b, ok := values.ToTrivalent(args[1])
		if !ok {
			return createError("%s: argument 2 must be a truth value, got %s", name, args[1].GetType())
		}
		return values.FromTrivalent(fn(a, b))
	}
}
