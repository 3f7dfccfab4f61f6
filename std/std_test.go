package std

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akaoio/zen/values"
)

// lookup finds a builtin by name in the global table.
func lookup(t *testing.T, name string) *Builtin {
	t.Helper()
	for _, b := range Builtins {
		if b.Name == name {
			return b
		}
	}
	t.Fatalf("builtin %q not registered", name)
	return nil
}

// call invokes a builtin with a throwaway writer.
func call(t *testing.T, name string, args ...values.Value) values.Value {
	t.Helper()
	var out bytes.Buffer
	return lookup(t, name).Callback(nil, &out, args...)
}

func TestBuiltinTableHasCoreNames(t *testing.T) {
	for _, name := range []string{
		"print", "length", "typeof",
		"abs", "floor", "ceil", "round", "sqrt", "pow",
		"sin", "cos", "tan", "log", "exp", "min", "max", "random",
		"upper", "lower", "trim", "split", "join", "replace",
		"contains", "starts_with", "ends_with",
		"to_string", "to_number", "to_bool",
		"json_parse", "json_stringify", "yaml_parse", "yaml_stringify",
		"undecidable_and", "undecidable_or", "undecidable_implies",
		"kleene_and", "kleene_or",
		"read_file", "write_file", "input",
	} {
		lookup(t, name)
	}
}

func TestPrint_SpaceSeparatedWithNewline(t *testing.T) {
	var out bytes.Buffer
	result := lookup(t, "print").Callback(nil, &out,
		&values.Number{Value: 1},
		&values.String{Value: "two"},
		&values.Boolean{Value: true},
	)
	assert.Equal(t, "1 two true\n", out.String())
	assert.Equal(t, values.NullType, result.GetType())
}

func TestPrint_NoArgumentsWritesBareNewline(t *testing.T) {
	var out bytes.Buffer
	lookup(t, "print").Callback(nil, &out)
	assert.Equal(t, "\n", out.String())
}

func TestLength_Variants(t *testing.T) {
	assert.Equal(t, "5", call(t, "length", &values.String{Value: "héllo"}).ToString())
	assert.Equal(t, "2", call(t, "length", &values.Array{Elements: []values.Value{&values.Null{}, &values.Null{}}}).ToString())

	obj := values.NewObject()
	obj.Set("k", &values.Null{})
	assert.Equal(t, "1", call(t, "length", obj).ToString())

	errVal := call(t, "length", &values.Number{Value: 1})
	assert.True(t, values.IsError(errVal))
}

func TestMathHelpers(t *testing.T) {
	assert.Equal(t, "3", call(t, "abs", &values.Number{Value: -3}).ToString())
	assert.Equal(t, "2", call(t, "floor", &values.Number{Value: 2.9}).ToString())
	assert.Equal(t, "8", call(t, "pow", &values.Number{Value: 2}, &values.Number{Value: 3}).ToString())
	assert.Equal(t, "1", call(t, "min", &values.Number{Value: 3}, &values.Number{Value: 1}, &values.Number{Value: 2}).ToString())

	// coercion through to-number applies
	assert.Equal(t, "3", call(t, "abs", &values.String{Value: "-3"}).ToString())
	assert.True(t, values.IsError(call(t, "sqrt", &values.Undecidable{})))
}

func TestRandom_InUnitInterval(t *testing.T) {
	v := call(t, "random")
	require.Equal(t, values.NumberType, v.GetType())
	f := v.(*values.Number).Value
	assert.GreaterOrEqual(t, f, 0.0)
	assert.Less(t, f, 1.0)
}

func TestStringHelpers(t *testing.T) {
	assert.Equal(t, "ZEN", call(t, "upper", &values.String{Value: "zen"}).ToString())
	assert.Equal(t, "x", call(t, "trim", &values.String{Value: " x "}).ToString())

	parts := call(t, "split", &values.String{Value: "a,b"}, &values.String{Value: ","})
	require.Equal(t, values.ArrayType, parts.GetType())
	assert.Len(t, parts.(*values.Array).Elements, 2)

	joined := call(t, "join", parts, &values.String{Value: "-"})
	assert.Equal(t, "a-b", joined.ToString())

	assert.Equal(t, "true", call(t, "contains", &values.String{Value: "hello"}, &values.String{Value: "ell"}).ToString())
	assert.True(t, values.IsError(call(t, "upper", &values.Number{Value: 1})))
}

func TestJSON_ParsePreservesKeyOrder(t *testing.T) {
	v := call(t, "json_parse", &values.String{Value: `{"z": 1, "a": 2, "m": 3}`})
	obj, ok := v.(*values.Object)
	require.True(t, ok)
	assert.Equal(t, []string{"z", "a", "m"}, obj.Keys)
}

func TestJSON_RoundTrip(t *testing.T) {
	src := `{"name":"zen","tags":["a","b"],"ok":true,"none":null,"n":1.5}`
	v := call(t, "json_parse", &values.String{Value: src})
	out := call(t, "json_stringify", v)
	assert.Equal(t, src, out.ToString())
}

func TestJSON_InvalidInput(t *testing.T) {
	assert.True(t, values.IsError(call(t, "json_parse", &values.String{Value: "{nope"})))
}

func TestYAML_ParsePreservesKeyOrder(t *testing.T) {
	v := call(t, "yaml_parse", &values.String{Value: "z: 1\na: two\nm:\n  - 1\n  - true\n"})
	obj, ok := v.(*values.Object)
	require.True(t, ok)
	assert.Equal(t, []string{"z", "a", "m"}, obj.Keys)

	z, _ := obj.Get("z")
	assert.Equal(t, values.NumberType, z.GetType())
	a, _ := obj.Get("a")
	assert.Equal(t, values.StringType, a.GetType())
	m, _ := obj.Get("m")
	require.Equal(t, values.ArrayType, m.GetType())
	assert.Len(t, m.(*values.Array).Elements, 2)
}

func TestYAML_StringifyKeepsOrder(t *testing.T) {
	obj := values.NewObject()
	obj.Set("z", &values.Number{Value: 1})
	obj.Set("a", &values.String{Value: "two"})
	out := call(t, "yaml_stringify", obj)
	assert.Equal(t, "z: 1\na: two\n", out.ToString())
}

func TestConversions(t *testing.T) {
	assert.Equal(t, "42", call(t, "to_string", &values.Number{Value: 42}).ToString())
	assert.Equal(t, "3.5", call(t, "to_number", &values.String{Value: "3.5"}).ToString())
	assert.True(t, values.IsError(call(t, "to_number", &values.String{Value: "abc"})))
	assert.Equal(t, "false", call(t, "to_bool", &values.String{Value: ""}).ToString())
}

func TestThreeValuedBuiltins(t *testing.T) {
	und := &values.Undecidable{}
	tr := &values.Boolean{Value: true}
	fa := &values.Boolean{Value: false}

	assert.Equal(t, values.UndecidableType, call(t, "undecidable_and", tr, und).GetType())
	assert.Equal(t, "false", call(t, "undecidable_and", fa, und).ToString())
	assert.Equal(t, "true", call(t, "undecidable_or", tr, und).ToString())
	assert.Equal(t, values.UndecidableType, call(t, "undecidable_implies", tr, fa).GetType())
	assert.Equal(t, values.UndecidableType, call(t, "kleene_and", und, tr).GetType())
	assert.Equal(t, "true", call(t, "kleene_or", und, tr).ToString())

	// numbers are not truth values
	assert.True(t, values.IsError(call(t, "kleene_and", &values.Number{Value: 1}, tr)))
}

func TestFileIO(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/out.txt"

	result := call(t, "write_file", &values.String{Value: path}, &values.String{Value: "hello"})
	require.Equal(t, values.NullType, result.GetType())

	back := call(t, "read_file", &values.String{Value: path})
	assert.Equal(t, "hello", back.ToString())

	missing := call(t, "read_file", &values.String{Value: dir + "/missing.txt"})
	errVal, ok := missing.(*values.Error)
	require.True(t, ok)
	assert.Equal(t, values.IOError, errVal.Kind)
}
