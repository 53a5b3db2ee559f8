package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector_AddSub(t *testing.T) {
	a := Vector{3, 3, 2}
	b := Vector{2, 0, 0}

	assert.Equal(t, Vector{5, 3, 2}, a.Add(b))
	assert.Equal(t, Vector{1, 3, 2}, a.Sub(b))
	// Sub may go negative; that is legal
	assert.Equal(t, Vector{-1, -3, -2}, b.Sub(a))
}

func TestVector_LessEq(t *testing.T) {
	assert.True(t, Vector{1, 2, 2}.LessEq(Vector{3, 3, 2}))
	assert.False(t, Vector{7, 4, 3}.LessEq(Vector{3, 3, 2}))
	// Negative components are always satisfiable against non-negative work
	assert.True(t, Vector{-3, 0}.LessEq(Vector{0, 0}))
}

func TestVector_Clone_Independent(t *testing.T) {
	a := Vector{1, 2}
	c := a.Clone()
	c[0] = 99

	assert.Equal(t, Vector{1, 2}, a)
}

func TestVector_WidthMismatchPanics(t *testing.T) {
	assert.Panics(t, func() { Vector{1}.Add(Vector{1, 2}) })
	assert.Panics(t, func() { Vector{1}.Sub(Vector{1, 2}) })
	assert.Panics(t, func() { Vector{1}.LessEq(Vector{1, 2}) })
}

func TestVector_NonNegative(t *testing.T) {
	assert.True(t, Vector{0, 1, 2}.NonNegative())
	assert.False(t, Vector{0, -1}.NonNegative())
	assert.True(t, Vector{}.NonNegative())
}
