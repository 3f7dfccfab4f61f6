package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akaoio/zen/values"
)

func TestScope_DefineAndLookupVariable(t *testing.T) {
	s := NewScope(nil)
	s.DefineVariable("x", &values.Number{Value: 1})

	v, ok := s.LookupVariable("x")
	require.True(t, ok)
	assert.Equal(t, 1.0, v.(*values.Number).Value)

	_, ok = s.LookupVariable("missing")
	assert.False(t, ok)
}

func TestScope_LookupWalksParents(t *testing.T) {
	global := NewScope(nil)
	global.DefineVariable("x", &values.Number{Value: 1})
	child := NewScope(global)

	v, ok := child.LookupVariable("x")
	require.True(t, ok)
	assert.Equal(t, 1.0, v.(*values.Number).Value)
}

func TestScope_DefineShadowsWithoutTouchingParent(t *testing.T) {
	global := NewScope(nil)
	global.DefineVariable("x", &values.Number{Value: 1})
	child := NewScope(global)
	child.DefineVariable("x", &values.Number{Value: 2})

	v, _ := child.LookupVariable("x")
	assert.Equal(t, 2.0, v.(*values.Number).Value)
	v, _ = global.LookupVariable("x")
	assert.Equal(t, 1.0, v.(*values.Number).Value)
}

func TestScope_RedefineReplacesLocalEntry(t *testing.T) {
	s := NewScope(nil)
	s.DefineVariable("x", &values.Number{Value: 1})
	s.DefineVariable("x", &values.Number{Value: 2})

	v, _ := s.LookupVariable("x")
	assert.Equal(t, 2.0, v.(*values.Number).Value)
	assert.Len(t, s.Variables, 1)
}

func TestScope_FunctionNamespaceIsSeparate(t *testing.T) {
	s := NewScope(nil)
	s.DefineVariable("f", &values.Number{Value: 1})
	s.DefineFunction("f", &values.String{Value: "fn"})

	v, ok := s.LookupVariable("f")
	require.True(t, ok)
	assert.Equal(t, values.NumberType, v.GetType())

	fn, ok := s.LookupFunction("f")
	require.True(t, ok)
	assert.Equal(t, values.StringType, fn.GetType())
}

func TestScope_FunctionLookupWalksParents(t *testing.T) {
	global := NewScope(nil)
	global.DefineFunction("f", &values.String{Value: "fn"})
	inner := NewScope(NewScope(global))

	_, ok := inner.LookupFunction("f")
	assert.True(t, ok)
}
