package rules

// NumPositions is the number of compass positions surrounding a cell.
const NumPositions = 8

// BirthThreshold is the neighbor count at which an empty position comes alive.
const BirthThreshold = 3

/*
Survives applies Conway's Game of Life survival rule to a living cell.

Conway's Game of Life survival rule: neighbors == 2 || neighbors == 3
*/
func Survives(neighbors int) bool {
	return neighbors == 2 || neighbors == 3
}

// PositionOffsets maps each compass position index to the (dx, dy) offset of
// that position relative to the center cell:
//
//	0 1 2        NW N NE
//	3 . 4   ==   W  .  E
//	5 6 7        SW S SE
//
// with y increasing upward.
var PositionOffsets = [NumPositions][2]int64{
	{-1, 1}, {0, 1}, {1, 1},
	{-1, 0}, {1, 0},
	{-1, -1}, {0, -1}, {1, -1},
}

// contributionTable maps the relative offset (dx, dy) of a surveyed neighbor,
// for dx, dy in -2..2, to the compass-position counters that neighbor feeds.
// A neighbor at (dx, dy) from the center is itself adjacent to some of the 8
// birth-candidate positions around the center; each row below encodes exactly
// that adjacency. Indexed [dy+2][dx+2].
var contributionTable = [5][5][]int{
	// dy = -2
	{{5}, {5, 6}, {5, 6, 7}, {6, 7}, {7}},
	// dy = -1
	{{3, 5}, {3, 6}, {3, 4, 5, 7}, {4, 6}, {4, 7}},
	// dy = 0
	{{0, 3, 5}, {0, 1, 5, 6}, {}, {1, 2, 6, 7}, {2, 4, 7}},
	// dy = +1
	{{0, 3}, {1, 3}, {0, 2, 3, 4}, {1, 4}, {2, 4}},
	// dy = +2
	{{0}, {0, 1}, {0, 1, 2}, {1, 2}, {2}},
}

// Contributions returns the compass-position counter indices a surveyed
// neighbor at relative offset (dx, dy) from the center contributes to.
// Offsets outside the 5x5 survey window contribute nothing.
func Contributions(dx, dy int64) []int {
	if dx < -2 || dx > 2 || dy < -2 || dy > 2 {
		return nil
	}
	return contributionTable[dy+2][dx+2]
}
