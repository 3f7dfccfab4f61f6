package repl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlockHeader(t *testing.T) {
	tests := []struct {
		line     string
		expected bool
	}{
		{"function add a b", true},
		{"class Point", true},
		{"if x > 0", true},
		{"elif x < 0", true},
		{"else", true},
		{"while n > 0", true},
		{"for i in xs", true},
		{"set o", true}, // multi-line object form
		{"if x > 0 then print x", false},
		{"set x 42", false},
		{"print x", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, blockHeader(tt.line), "line %q", tt.line)
	}
}

func TestOpenBrackets(t *testing.T) {
	assert.True(t, openBrackets("set xs [1, 2"))
	assert.True(t, openBrackets("print (add 1"))
	assert.False(t, openBrackets("set xs [1, 2]"))
	assert.False(t, openBrackets(`set s "(["`))    // brackets in strings ignored
	assert.False(t, openBrackets("print x # ("))   // comments ignored
	assert.True(t, openBrackets("set xs [1, # [")) // open before comment
}

func TestTrailingComma(t *testing.T) {
	assert.True(t, trailingComma("set o a 1,"))
	assert.True(t, trailingComma("set o a 1,  "))
	assert.False(t, trailingComma("set o a 1"))
}
