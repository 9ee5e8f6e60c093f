package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func coords(lives []*Life) [][2]int64 {
	result := make([][2]int64, 0, len(lives))
	for _, life := range lives {
		result = append(result, [2]int64{life.X, life.Y})
	}
	return result
}

func TestWorld_AddAndGet(t *testing.T) {
	w := NewWorld()

	assert.True(t, w.Add(NewLife(3, -4)))
	assert.Equal(t, 1, w.Len())

	life, ok := w.Get(3, -4)
	require.True(t, ok)
	assert.Equal(t, int64(3), life.X)
	assert.Equal(t, int64(-4), life.Y)

	_, ok = w.Get(3, 4)
	assert.False(t, ok)
}

func TestWorld_Add_IdempotentFirstWriterWins(t *testing.T) {
	// GIVEN a world holding an aged cell at (0, 0)
	w := NewWorld()
	first := NewLife(0, 0)
	first.Age = 5
	require.True(t, w.Add(first))

	// WHEN a newborn is added at the same position
	inserted := w.Add(NewLife(0, 0))

	// THEN the insert is a no-op and the original cell survives
	assert.False(t, inserted)
	assert.Equal(t, 1, w.Len())
	life, ok := w.Get(0, 0)
	require.True(t, ok)
	assert.Equal(t, uint32(5), life.Age)
}

func TestWorld_Remove(t *testing.T) {
	w := NewWorld()
	w.Add(NewLife(1, 1))
	w.Add(NewLife(1, 2))

	assert.True(t, w.Remove(1, 1))
	assert.Equal(t, 1, w.Len())
	_, ok := w.Get(1, 1)
	assert.False(t, ok)

	// Removing an absent cell is a no-op, including a fully empty column.
	assert.False(t, w.Remove(1, 1))
	assert.False(t, w.Remove(99, 99))
	assert.Equal(t, 1, w.Len())
}

func TestWorld_Remove_DropsEmptyColumn(t *testing.T) {
	w := NewWorld()
	w.Add(NewLife(7, 7))
	require.True(t, w.Remove(7, 7))

	assert.Equal(t, 0, w.Len())
	assert.Empty(t, w.Lives())
	assert.True(t, w.Add(NewLife(7, 7)), "column must be re-creatable after cleanup")
}

func TestWorld_SpatialQuery_InclusiveBounds(t *testing.T) {
	// GIVEN cells on and around the corners of a rectangle
	w := NewWorld()
	for _, c := range [][2]int64{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}, {0, 0}, {2, 0}, {0, 2}, {-2, 0}} {
		w.Add(NewLife(c[0], c[1]))
	}

	// WHEN the closed rectangle [-1, 1] x [-1, 1] is queried
	got := w.SpatialQuery(-1, 1, -1, 1)

	// THEN every cell on the boundary is included and results are ordered
	// by ascending x then ascending y
	assert.Equal(t, [][2]int64{
		{-1, -1}, {-1, 1},
		{0, 0},
		{1, -1}, {1, 1},
	}, coords(got))
}

func TestWorld_SpatialQuery_EmptyRanges(t *testing.T) {
	w := NewWorld()
	w.Add(NewLife(0, 0))

	assert.Empty(t, w.SpatialQuery(5, 10, 5, 10), "range with no cells")
	assert.Empty(t, w.SpatialQuery(10, 5, 0, 0), "inverted x range")
	assert.Empty(t, w.SpatialQuery(0, 0, 10, 5), "inverted y range")

	empty := NewWorld()
	assert.Empty(t, empty.SpatialQuery(-100, 100, -100, 100))
}

func TestWorld_Lives_OrderedByXThenY(t *testing.T) {
	w := NewWorld()
	for _, c := range [][2]int64{{2, 1}, {-3, 5}, {2, -7}, {-3, -5}, {0, 0}} {
		w.Add(NewLife(c[0], c[1]))
	}

	assert.Equal(t, [][2]int64{
		{-3, -5}, {-3, 5},
		{0, 0},
		{2, -7}, {2, 1},
	}, coords(w.Lives()))
}

func TestWorld_EachLife_MutatesEveryCell(t *testing.T) {
	w := NewWorld()
	w.Add(NewLife(0, 0))
	w.Add(NewLife(1, 0))
	w.Add(NewLife(-1, 3))

	w.EachLife(func(life *Life) {
		life.Age++
	})

	for _, life := range w.Lives() {
		assert.Equal(t, uint32(1), life.Age, "cell (%d,%d)", life.X, life.Y)
	}
}
