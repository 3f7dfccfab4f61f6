package values

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// The full 3x3 truth tables over {false, undecidable, true}, written out
// explicitly: F = TriFalse, U = TriUndecidable, T = TriTrue.
const (
	F = TriFalse
	U = TriUndecidable
	T = TriTrue
)

func TestLukasiewiczAndTable(t *testing.T) {
	table := map[[2]Trivalent]Trivalent{
		{F, F}: F, {F, U}: F, {F, T}: F,
		{U, F}: F, {U, U}: U, {U, T}: U,
		{T, F}: F, {T, U}: U, {T, T}: T,
	}
	for in, want := range table {
		assert.Equal(t, want, LukasiewiczAnd(in[0], in[1]), "and(%d,%d)", in[0], in[1])
	}
}

func TestLukasiewiczOrTable(t *testing.T) {
	table := map[[2]Trivalent]Trivalent{
		{F, F}: F, {F, U}: U, {F, T}: T,
		{U, F}: U, {U, U}: U, {U, T}: T,
		{T, F}: T, {T, U}: T, {T, T}: T,
	}
	for in, want := range table {
		assert.Equal(t, want, LukasiewiczOr(in[0], in[1]), "or(%d,%d)", in[0], in[1])
	}
}

func TestLukasiewiczImpliesTable(t *testing.T) {
	// a -> b = max(1-a, b) clamped to the chain.
	table := map[[2]Trivalent]Trivalent{
		{F, F}: T, {F, U}: T, {F, T}: T,
		{U, F}: T, {U, U}: T, {U, T}: T,
		{T, F}: U, {T, U}: U, {T, T}: T,
	}
	for in, want := range table {
		assert.Equal(t, want, LukasiewiczImplies(in[0], in[1]), "implies(%d,%d)", in[0], in[1])
	}
}

func TestKleeneAndTable(t *testing.T) {
	table := map[[2]Trivalent]Trivalent{
		{F, F}: F, {F, U}: F, {F, T}: F,
		{U, F}: F, {U, U}: U, {U, T}: U,
		{T, F}: F, {T, U}: U, {T, T}: T,
	}
	for in, want := range table {
		assert.Equal(t, want, KleeneAnd(in[0], in[1]), "kleene_and(%d,%d)", in[0], in[1])
	}
}

func TestKleeneOrTable(t *testing.T) {
	table := map[[2]Trivalent]Trivalent{
		{F, F}: F, {F, U}: U, {F, T}: T,
		{U, F}: U, {U, U}: U, {U, T}: T,
		{T, F}: T, {T, U}: T, {T, T}: T,
	}
	for in, want := range table {
		assert.Equal(t, want, KleeneOr(in[0], in[1]), "kleene_or(%d,%d)", in[0], in[1])
	}
}

func TestTrivalentConversion(t *testing.T) {
	tri, ok := ToTrivalent(&Boolean{Value: true})
	assert.True(t, ok)
	assert.Equal(t, T, tri)

	tri, ok = ToTrivalent(&Undecidable{})
	assert.True(t, ok)
	assert.Equal(t, U, tri)

	_, ok = ToTrivalent(&Number{Value: 1})
	assert.False(t, ok)

	assert.Equal(t, UndecidableType, FromTrivalent(U).GetType())
	assert.Equal(t, "true", FromTrivalent(T).ToString())
	assert.Equal(t, "false", FromTrivalent(F).ToString())
}
