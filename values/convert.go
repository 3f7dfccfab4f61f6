package values

import (
	"math"
	"strconv"
	"strings"
)

// Truthy converts an arbitrary value to the two-valued boolean used by
// branching and the short-circuit operators:
//
//	null         -> false
//	undecidable  -> false
//	bool         -> itself
//	number       -> nonzero and not NaN
//	string       -> nonempty
//	array        -> nonempty
//	object       -> has at least one key
//	function     -> true
//	class        -> true
//	instance     -> true
//	error        -> false
func Truthy(v Value) bool {
	switch v := v.(type) {
	case *Null, *Undecidable, *Error:
		return false
	case *Boolean:
		return v.Value
	case *Number:
		return v.Value != 0 && !math.IsNaN(v.Value)
	case *String:
		return v.Value != ""
	case *Array:
		return len(v.Elements) > 0
	case *Object:
		return len(v.Keys) > 0
	default:
		// Functions, classes, and instances are always truthy.
		return true
	}
}

// ToNumber converts a value to a number: null is 0, booleans are 0/1,
// numbers pass through, strings are parsed strictly as decimal. Everything
// else, including undecidable, is a TypeMismatch error.
func ToNumber(v Value) (float64, *Error) {
	switch v := v.(type) {
	case *Null:
		return 0, nil
	case *Boolean:
		if v.Value {
			return 1, nil
		}
		return 0, nil
	case *Number:
		return v.Value, nil
	case *String:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.Value), 64)
		if err != nil {
			return 0, NewError(TypeMismatch, "cannot convert %q to number", v.Value)
		}
		return f, nil
	default:
		return 0, NewError(TypeMismatch, "cannot convert %s to number", v.GetType())
	}
}

// Equals reports structural equality: two values are equal iff they have the
// same type and equal content. Numbers follow IEEE equality (NaN is not
// equal to itself); arrays and objects compare deeply.
func Equals(a, b Value) bool {
	if a.GetType() != b.GetType() {
		return false
	}
	switch a := a.(type) {
	case *Null, *Undecidable:
		return true
	case *Boolean:
		return a.Value == b.(*Boolean).Value
	case *Number:
		return a.Value == b.(*Number).Value
	case *String:
		return a.Value == b.(*String).Value
	case *Array:
		other := b.(*Array)
		if len(a.Elements) != len(other.Elements) {
			return false
		}
		for i, elem := range a.Elements {
			if !Equals(elem, other.Elements[i]) {
				return false
			}
		}
		return true
	case *Object:
		other := b.(*Object)
		if len(a.Keys) != len(other.Keys) {
			return false
		}
		for key, v := range a.Pairs {
			w, ok := other.Pairs[key]
			if !ok || !Equals(v, w) {
				return false
			}
		}
		return true
	case *Error:
		other := b.(*Error)
		return a.Kind == other.Kind && a.Message == other.Message
	default:
		// Functions, classes, and instances compare by identity.
		return a == b
	}
}
