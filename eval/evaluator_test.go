package eval

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akaoio/zen/parser"
	"github.com/akaoio/zen/values"
)

// run parses and evaluates source, returning the final value and the
// captured print output.
func run(t *testing.T, src string) (values.Value, string) {
	t.Helper()
	par := parser.NewParser(src)
	root := par.Parse()
	require.False(t, par.HasErrors(), "parse errors: %v", par.GetErrors())

	var out bytes.Buffer
	e := NewEvaluator()
	e.SetWriter(&out)
	result := e.Eval(root)
	return result, out.String()
}

// runOutput asserts that a program produced exactly the expected stdout.
func runOutput(t *testing.T, src, expected string) {
	t.Helper()
	result, out := run(t, src)
	require.False(t, values.IsError(result), "runtime error: %s", result.ToString())
	assert.Equal(t, expected, out)
}

// runError asserts that a program fails with the given runtime error kind.
func runError(t *testing.T, src string, kind values.ErrorKind) *values.Error {
	t.Helper()
	result, _ := run(t, src)
	errVal, ok := result.(*values.Error)
	require.True(t, ok, "expected %s, got %s", kind, result.ToString())
	assert.Equal(t, kind, errVal.Kind)
	return errVal
}

// --- End-to-end scenarios ---

func TestScenario_SetAndPrint(t *testing.T) {
	runOutput(t, "set x 42\nprint x", "42\n")
}

func TestScenario_FunctionCall(t *testing.T) {
	runOutput(t, "function add a b\n    return a + b\nprint (add 2 3)", "5\n")
}

func TestScenario_Factorial(t *testing.T) {
	src := "set n 5\nset acc 1\nwhile n > 0\n    set acc acc * n\n    set n n - 1\nprint acc"
	runOutput(t, src, "120\n")
}

func TestScenario_ObjectLiteral(t *testing.T) {
	runOutput(t, "set o name \"Alice\", age 30\nprint o.name", "Alice\n")
}

func TestScenario_ForIn(t *testing.T) {
	runOutput(t, "for i in [1,2,3]\n    print i", "1\n2\n3\n")
}

func TestScenario_ClassInheritance(t *testing.T) {
	src := `class A
    method greet
        return "hi"
class B extends A
set b new B
print b.greet`
	runOutput(t, src, "hi\n")
}

// --- Scoping ---

func TestScope_FunctionLocalSetDoesNotLeak(t *testing.T) {
	src := `set x 1
function f a
    set x 2
    return x
f 0
print x`
	runOutput(t, src, "1\n")
}

func TestScope_ClosureCapturesDefinitionScope(t *testing.T) {
	src := `set base 10
function addBase n
    return base + n
print (addBase 5)`
	runOutput(t, src, "15\n")
}

func TestScope_ArgumentsEvaluateInCallerScope(t *testing.T) {
	src := `set x 3
function f v
    set x 100
    return v
print (f x)`
	runOutput(t, src, "3\n")
}

// --- Control flow ---

func TestControlFlow_ReturnThroughNestedConstructs(t *testing.T) {
	src := `function f x
    while true
        if x > 0
            return 7
    return 0
print (f 1)`
	runOutput(t, src, "7\n")
}

func TestControlFlow_BreakExitsInnermostLoop(t *testing.T) {
	src := `set total 0
for i in [1,2,3]
    set j 0
    while true
        if j > 1
            break
        set j j + 1
        set total total + 1
print total`
	runOutput(t, src, "6\n")
}

func TestControlFlow_Continue(t *testing.T) {
	src := `set total 0
for i in [1,2,3,4]
    if i % 2 = 0
        continue
    set total total + i
print total`
	runOutput(t, src, "4\n")
}

func TestControlFlow_ElifChain(t *testing.T) {
	src := `set x 2
if x = 1
    print "one"
elif x = 2
    print "two"
else
    print "many"`
	runOutput(t, src, "two\n")
}

func TestControlFlow_SingleLineThen(t *testing.T) {
	runOutput(t, "if 1 < 2 then print \"yes\"", "yes\n")
}

// --- Objects and arrays ---

func TestObject_DuplicateKeyOverwritesInPlace(t *testing.T) {
	src := `set o a 1, b 2, a 3
print o
for k in o
    print k`
	runOutput(t, src, "{\"a\": 3, \"b\": 2}\na\nb\n")
}

func TestObject_MissingKeyIsNull(t *testing.T) {
	result, _ := run(t, "set o a 1, b 2\no.missing")
	assert.Equal(t, values.NullType, result.GetType())
}

func TestObject_MultiLineBlockForm(t *testing.T) {
	src := "set o\n    name \"Ada\"\n    age 36\nprint o.age"
	runOutput(t, src, "36\n")
}

func TestArray_LengthAndIndex(t *testing.T) {
	runOutput(t, "print [10,20,30].length", "3\n")
	runOutput(t, "print [10,20,30].0", "10\n")
	runOutput(t, "set ok [10,20,30].length = 3\nprint ok", "true\n")
}

func TestArray_IndexOutOfRange(t *testing.T) {
	runError(t, "set xs 1, 2\nxs.5", values.BadPropertyAccess)
}

func TestArray_ForInOverObjectKeysInInsertionOrder(t *testing.T) {
	src := `set o z 1, a 2, m 3
for k in o
    print k`
	runOutput(t, src, "z\na\nm\n")
}

func TestPropertyAssignment_ObjectAndArray(t *testing.T) {
	src := `set o a 1, b 2
set o.c 3
set xs 10, 20
set xs.1 99
print o.c
print xs.1`
	runOutput(t, src, "3\n99\n")
}

// --- Operators ---

func TestOperators_Arithmetic(t *testing.T) {
	tests := []struct {
		src      string
		expected string
	}{
		{"print (1 + 2 * 3)", "7\n"},
		{"print ((1 + 2) * 3)", "9\n"},
		{"print (7 % 3)", "1\n"},
		{"print (10 / 4)", "2.5\n"},
		{"print (1 / 0)", "+Inf\n"},
		{"print (-1 / 0)", "-Inf\n"},
		{"print (\"a\" + 1)", "a1\n"},
		{"print (1 + \"a\")", "1a\n"},
		{"print (\"ab\" + \"cd\")", "abcd\n"},
		{"print (true + 1)", "2\n"},
		{"print (null + 5)", "5\n"},
	}
	for _, tt := range tests {
		runOutput(t, tt.src, tt.expected)
	}
}

func TestOperators_ModuloByZero(t *testing.T) {
	runError(t, "print (1 % 0)", values.DivisionByZero)
}

func TestOperators_Comparison(t *testing.T) {
	tests := []struct {
		src      string
		expected string
	}{
		{"print (1 < 2)", "true\n"},
		{"print (2 <= 2)", "true\n"},
		{"print (3 > 4)", "false\n"},
		{"print (\"apple\" < \"banana\")", "true\n"},
		{"print (\"b\" >= \"a\")", "true\n"},
		{"print (\"10\" < 9)", "false\n"},
		{"print (1 = 1)", "true\n"},
		{"print (1 != 2)", "true\n"},
		{"print ([1,2] = [1,2])", "true\n"},
		{"print ((0 / 0) = (0 / 0))", "false\n"},
	}
	for _, tt := range tests {
		runOutput(t, tt.src, tt.expected)
	}
}

func TestOperators_ComparisonTypeMismatch(t *testing.T) {
	runError(t, "set xs 1, 2\nprint (xs < 3)", values.TypeMismatch)
}

func TestOperators_Logical(t *testing.T) {
	tests := []struct {
		src      string
		expected string
	}{
		{"print (true & true)", "true\n"},
		{"print (true & false)", "false\n"},
		{"print (false | true)", "true\n"},
		{"print (false | false)", "false\n"},
		{"print (!true)", "false\n"},
		{"print (!0)", "true\n"},
		{"print (1 & \"x\")", "true\n"},
	}
	for _, tt := range tests {
		runOutput(t, tt.src, tt.expected)
	}
}

func TestOperators_ShortCircuit(t *testing.T) {
	// the right side must not evaluate, or boom would be an UndefinedName
	runOutput(t, "print (false & boom)", "false\n")
	runOutput(t, "print (true | boom)", "true\n")
}

func TestOperators_UndecidableContagion(t *testing.T) {
	tests := []struct {
		src      string
		expected string
	}{
		{"print (undecidable & true)", "undecidable\n"},
		{"print (true & undecidable)", "undecidable\n"},
		{"print (undecidable | false)", "undecidable\n"},
		{"print (!undecidable)", "undecidable\n"},
		// short-circuit wins before the undecidable side is seen
		{"print (false & undecidable)", "false\n"},
		{"print (true | undecidable)", "true\n"},
	}
	for _, tt := range tests {
		runOutput(t, tt.src, tt.expected)
	}
}

func TestOperators_UndecidableIsFalsyInBranches(t *testing.T) {
	runOutput(t, "if undecidable\n    print \"t\"\nelse\n    print \"f\"", "f\n")
}

func TestBuiltins_ThreeValuedLogic(t *testing.T) {
	tests := []struct {
		src      string
		expected string
	}{
		{"print (undecidable_and true undecidable)", "undecidable\n"},
		{"print (undecidable_and false undecidable)", "false\n"},
		{"print (undecidable_or false undecidable)", "undecidable\n"},
		{"print (undecidable_or true undecidable)", "true\n"},
		{"print (undecidable_implies true false)", "undecidable\n"},
		{"print (undecidable_implies false false)", "true\n"},
		{"print (kleene_and undecidable undecidable)", "undecidable\n"},
		{"print (kleene_or undecidable true)", "true\n"},
	}
	for _, tt := range tests {
		runOutput(t, tt.src, tt.expected)
	}
}

// --- Classes ---

func TestClass_ConstructorAndThis(t *testing.T) {
	src := `class Point
    method constructor x y
        set this.x x
        set this.y y
    method sum
        return this.x + this.y
set p new Point 3 4
print p.sum
print p.x`
	runOutput(t, src, "7\n3\n")
}

func TestClass_SuperDispatch(t *testing.T) {
	src := `class Animal
    method speak
        return "..."
    method describe
        return "animal says " + this.speak
class Dog extends Animal
    method speak
        return "woof"
    method describe
        return super.describe + "!"
set d new Dog
print d.describe`
	runOutput(t, src, "animal says woof!\n")
}

func TestClass_ConstructorArity(t *testing.T) {
	src := `class P
    method constructor x
        set this.x x
set p new P`
	runError(t, src, values.ArityMismatch)
}

func TestClass_PrivateMethodBlockedFromOutside(t *testing.T) {
	src := `class Safe
    private method secret
        return 42
    method reveal
        return this.secret
set s new Safe
print s.reveal`
	runOutput(t, src, "42\n")

	src = `class Safe
    private method secret
        return 42
set s new Safe
s.secret`
	runError(t, src, values.BadPropertyAccess)
}

func TestClass_UndefinedParent(t *testing.T) {
	runError(t, "class B extends Ghost\nnew B", values.UndefinedName)
}

func TestClass_BoundMethodThroughVariable(t *testing.T) {
	src := `class Greeter
    method greet who
        return "hi " + who
set g new Greeter
set m g.greet
print (m "zen")`
	runOutput(t, src, "hi zen\n")
}

// --- Errors and limits ---

func TestError_UndefinedName(t *testing.T) {
	errVal := runError(t, "print missing", values.UndefinedName)
	assert.Equal(t, 1, errVal.Line)
}

func TestError_ArityMismatch(t *testing.T) {
	runError(t, "function f a b\n    return a\nf 1", values.ArityMismatch)
}

func TestError_NotCallable(t *testing.T) {
	runError(t, "set x 5\nx 1 2", values.NotCallable)
}

func TestError_NotIterable(t *testing.T) {
	runError(t, "for i in 42\n    print i", values.NotIterable)
}

func TestError_BadPropertyAccess(t *testing.T) {
	runError(t, "set x 5\nx.y", values.BadPropertyAccess)
}

func TestLimit_StackOverflow(t *testing.T) {
	src := "function f x\n    return f x\nf 1"
	par := parser.NewParser(src)
	root := par.Parse()
	require.False(t, par.HasErrors())

	e := NewEvaluator()
	e.SetWriter(&bytes.Buffer{})
	e.Limits.MaxCallDepth = 50
	result := e.Eval(root)
	errVal, ok := result.(*values.Error)
	require.True(t, ok)
	assert.Equal(t, values.StackOverflow, errVal.Kind)
}

func TestLimit_LoopCeiling(t *testing.T) {
	par := parser.NewParser("while true\n    set x 1")
	root := par.Parse()
	require.False(t, par.HasErrors())

	e := NewEvaluator()
	e.SetWriter(&bytes.Buffer{})
	e.Limits.MaxLoopIterations = 100
	result := e.Eval(root)
	errVal, ok := result.(*values.Error)
	require.True(t, ok)
	assert.Equal(t, values.LoopLimitExceeded, errVal.Kind)
}

func TestError_StopsEvaluation(t *testing.T) {
	_, out := run(t, "print 1\nboom\nprint 2")
	assert.Equal(t, "1\n", out)
}

// --- Determinism ---

func TestEvaluation_PureProgramsAreDeterministic(t *testing.T) {
	src := `set acc 0
for i in [1,2,3,4,5]
    set acc acc + i * i
print acc
print ((to_string acc) + "!")`
	_, first := run(t, src)
	_, second := run(t, src)
	assert.Equal(t, first, second)
	assert.Equal(t, "55\n55!\n", first)
}

// --- Builtins through programs ---

func TestBuiltins_Conversions(t *testing.T) {
	tests := []struct {
		src      string
		expected string
	}{
		{"print (to_string 42)", "42\n"},
		{"print ((to_number \"3.5\") + 1)", "4.5\n"},
		{"print (to_bool \"\")", "false\n"},
		{"print (to_bool [1])", "true\n"},
		{"print (typeof undecidable)", "undecidable\n"},
		{"print (typeof [1,2])", "array\n"},
	}
	for _, tt := range tests {
		runOutput(t, tt.src, tt.expected)
	}
}

func TestBuiltins_MathAndStrings(t *testing.T) {
	tests := []struct {
		src      string
		expected string
	}{
		{"print (abs (-3))", "3\n"},
		{"print (pow 2 10)", "1024\n"},
		{"print (min 3 1 2)", "1\n"},
		{"print (max 3 1 2)", "3\n"},
		{"print ((floor 2.7) + (ceil 2.1))", "5\n"},
		{"print (upper \"zen\")", "ZEN\n"},
		{"print (trim \"  x  \")", "x\n"},
		{"print (join (split \"a,b,c\" \",\") \"-\")", "a-b-c\n"},
		{"print (replace \"aaa\" \"a\" \"b\")", "bbb\n"},
		{"print (contains \"hello\" \"ell\")", "true\n"},
		{"print (starts_with \"hello\" \"he\")", "true\n"},
		{"print (ends_with \"hello\" \"he\")", "false\n"},
		{"print (length \"héllo\")", "5\n"},
	}
	for _, tt := range tests {
		runOutput(t, tt.src, tt.expected)
	}
}

func TestBuiltins_JSONRoundTrip(t *testing.T) {
	src := `set s "{\"z\": 1, \"a\": [true, null, \"x\"]}"
set o json_parse s
print o.z
print (json_stringify o)`
	runOutput(t, src, "1\n{\"z\":1,\"a\":[true,null,\"x\"]}\n")
}

func TestBuiltins_PrintSpacing(t *testing.T) {
	runOutput(t, "print 1 \"two\" true null", "1 two true null\n")
}

func TestBuiltins_ArgumentErrorIsErrorValue(t *testing.T) {
	// a builtin argument error is an Error value and terminates the program
	result, _ := run(t, "print (pow 1 2 3)")
	assert.True(t, values.IsError(result))
}

// --- Strings in the language ---

func TestStrings_ConcatLoop(t *testing.T) {
	src := `set s ""
for part in ["a", "b", "c"]
    set s s + part
print s`
	runOutput(t, src, "abc\n")
}

func TestStrings_EscapesSurviveEvaluation(t *testing.T) {
	_, out := run(t, `print "a\tb"`)
	assert.Equal(t, "a\tb\n", out)
}

func TestTopLevel_ReturnYieldsValue(t *testing.T) {
	result, _ := run(t, "return 5")
	num, ok := result.(*values.Number)
	require.True(t, ok)
	assert.Equal(t, 5.0, num.Value)
}

func TestREPLStyle_LastExpressionValue(t *testing.T) {
	result, _ := run(t, "set x 2\nx * 3")
	assert.Equal(t, "6", result.ToString())
}

func TestImportExport_AreInert(t *testing.T) {
	runOutput(t, "import math\nprint (abs (-1))\nexport things", "1\n")
}

func TestWhile_ConditionCanBeCall(t *testing.T) {
	src := `function small n
    return n < 3
set n 0
while small n
    set n n + 1
print n`
	runOutput(t, src, "3\n")
}

func TestOutputIsOrdered(t *testing.T) {
	src := strings.Join([]string{
		"function shout s",
		"    print (upper s)",
		"    return null",
		"shout \"a\"",
		"shout \"b\"",
	}, "\n")
	runOutput(t, src, "A\nB\n")
}
