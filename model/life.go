package model

import (
	"math"

	"github.com/sparse-life/sparse-life/rules"
)

// Life represents a single live cell. Its identity is its position; Age
// counts the generations it has survived since creation, where 0 means the
// cell was born this generation and has not yet been aged.
type Life struct {
	X   int64
	Y   int64
	Age uint32
}

// NewLife creates a newborn cell at the given position
func NewLife(x, y int64) *Life {
	return &Life{X: x, Y: y}
}

// IsCloseNeighbor reports whether neighbor lies within Chebyshev distance 1
// of the cell. The cell itself satisfies this; callers skip it by position.
func (l *Life) IsCloseNeighbor(neighbor *Life) bool {
	distX := neighbor.X - l.X
	distY := neighbor.Y - l.Y
	return distX >= -1 && distX <= 1 && distY >= -1 && distY <= 1
}

// NeighborCoordinates returns the absolute coordinates of the compass
// position pos (0..7) adjacent to the cell, saturating at the int64 extremes
// rather than wrapping. ok is false for an out-of-range position index.
func (l *Life) NeighborCoordinates(pos int) (x, y int64, ok bool) {
	if pos < 0 || pos >= rules.NumPositions {
		return 0, 0, false
	}
	offset := rules.PositionOffsets[pos]
	return saturatingAdd(l.X, offset[0]), saturatingAdd(l.Y, offset[1]), true
}

// saturatingAdd adds delta to value, clamping at the int64 extremes instead
// of overflowing.
func saturatingAdd(value, delta int64) int64 {
	sum := value + delta
	if delta > 0 && sum < value {
		return math.MaxInt64
	}
	if delta < 0 && sum > value {
		return math.MinInt64
	}
	return sum
}
