package buffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromRows(t *testing.T) {
	m, err := FromRows([][]float64{
		{1, 2},
		{3, 4},
		{5, 6},
	})
	require.NoError(t, err)

	assert.Equal(t, 3, m.Rows())
	assert.Equal(t, 2, m.Cols())
	assert.Equal(t, Shape{3, 2}, m.Shape())
	assert.Equal(t, 4.0, m.At(1, 1))
	assert.Equal(t, []float64{5, 6}, m.Row(2))
	assert.Equal(t, []float64{2, 4, 6}, m.Column(1))
}

func TestFromRowsRagged(t *testing.T) {
	_, err := FromRows([][]float64{
		{1, 2},
		{3},
	})

	var sm *ErrShapeMismatch
	require.ErrorAs(t, err, &sm)
	assert.Equal(t, Shape{2, 2}, sm.Want)
	assert.Equal(t, Shape{2, 1}, sm.Got)
}

func TestFromRowsEmpty(t *testing.T) {
	m, err := FromRows(nil)
	require.NoError(t, err)
	assert.Equal(t, Shape{0, 0}, m.Shape())
}

func TestSelectColumns(t *testing.T) {
	m, err := FromRows([][]float64{
		{1, 2, 3},
		{4, 5, 6},
	})
	require.NoError(t, err)

	out := m.SelectColumns([]bool{true, false, true})
	assert.Equal(t, Shape{2, 2}, out.Shape())
	assert.Equal(t, []float64{1, 3}, out.Row(0))
	assert.Equal(t, []float64{4, 6}, out.Row(1))

	// Original untouched.
	assert.Equal(t, Shape{2, 3}, m.Shape())

	// Short masks drop the unmasked tail, empty masks drop everything.
	assert.Equal(t, Shape{2, 1}, m.SelectColumns([]bool{true}).Shape())
	assert.Equal(t, Shape{2, 0}, m.SelectColumns(nil).Shape())
}

func TestConcatRows(t *testing.T) {
	a, err := FromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	b, err := FromRows([][]float64{{5, 6}})
	require.NoError(t, err)

	out, err := a.ConcatRows(b)
	require.NoError(t, err)
	assert.Equal(t, Shape{3, 2}, out.Shape())
	assert.Equal(t, []float64{5, 6}, out.Row(2))

	// Operands untouched.
	assert.Equal(t, Shape{2, 2}, a.Shape())
	assert.Equal(t, Shape{1, 2}, b.Shape())
}

func TestConcatRowsShapeMismatch(t *testing.T) {
	a, err := FromRows([][]float64{{1, 2}})
	require.NoError(t, err)
	b, err := FromRows([][]float64{{1, 2, 3}})
	require.NoError(t, err)

	_, err = a.ConcatRows(b)

	var sm *ErrShapeMismatch
	require.ErrorAs(t, err, &sm)
	assert.Equal(t, Shape{1, 2}, sm.Want)
	assert.Equal(t, Shape{1, 3}, sm.Got)
}

func TestClone(t *testing.T) {
	m, err := FromRows([][]float64{{1, 2}})
	require.NoError(t, err)

	c := m.Clone()
	c.Set(0, 0, 99)

	assert.Equal(t, 1.0, m.At(0, 0))
	assert.Equal(t, 99.0, c.At(0, 0))
}

func TestShapeString(t *testing.T) {
	assert.Equal(t, "(10, 2)", Shape{10, 2}.String())
	assert.Equal(t, "(5)", Shape{5}.String())
	assert.True(t, Shape{1, 2}.Equal(Shape{1, 2}))
	assert.False(t, Shape{1, 2}.Equal(Shape{2, 1}))
	assert.False(t, Shape{1}.Equal(Shape{1, 1}))
}
