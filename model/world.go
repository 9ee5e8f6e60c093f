package model

import (
	"sort"
	"sync"
)

// column holds every live cell sharing a single x coordinate, keyed and
// ordered by y.
type column struct {
	ys    []int64
	cells map[int64]*Life
}

// World is a sparse, unbounded container of live cells indexed by x then y,
// so that range scans touch only the active region rather than the plane.
// A reader/writer lock guards the index: the engine's survey phase holds the
// read lock for its entire pass and mutation/aging take the write lock, so
// a survey never observes a partially applied generation.
type World struct {
	mu    sync.RWMutex
	xs    []int64 // sorted x coordinates with at least one live cell
	cols  map[int64]*column
	count int
}

// NewWorld creates an empty world
func NewWorld() *World {
	return &World{cols: make(map[int64]*column)}
}

// Add inserts life at its position unless a cell already lives there.
// The insert is idempotent: on collision the existing cell is left untouched
// and Add reports false.
func (w *World) Add(life *Life) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.addLocked(life)
}

// Remove deletes the cell at (x, y) if present and reports whether it did.
func (w *World) Remove(x, y int64) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.removeLocked(x, y)
}

// Get returns the cell at (x, y), if any.
func (w *World) Get(x, y int64) (*Life, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	col, ok := w.cols[x]
	if !ok {
		return nil, false
	}
	life, ok := col.cells[y]
	return life, ok
}

// SpatialQuery returns every live cell inside the closed rectangle
// [minX, maxX] x [minY, maxY], ordered by ascending x then ascending y.
// Empty ranges and ranges holding no cells yield an empty result.
func (w *World) SpatialQuery(minX, maxX, minY, maxY int64) []*Life {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.queryLocked(minX, maxX, minY, maxY)
}

// EachLife applies fn to every stored cell in ascending x then y order,
// holding the write lock for the duration. Used for the per-generation
// aging pass.
func (w *World) EachLife(fn func(*Life)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.eachLocked(fn)
}

// Lives returns every live cell ordered by ascending x then ascending y.
func (w *World) Lives() []*Life {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.livesLocked()
}

// Len returns the number of live cells.
func (w *World) Len() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.count
}

func (w *World) addLocked(life *Life) bool {
	col, ok := w.cols[life.X]
	if !ok {
		col = &column{cells: make(map[int64]*Life)}
		w.cols[life.X] = col
		w.xs = insertSorted(w.xs, life.X)
	}
	if _, exists := col.cells[life.Y]; exists {
		return false
	}
	col.cells[life.Y] = life
	col.ys = insertSorted(col.ys, life.Y)
	w.count++
	return true
}

func (w *World) removeLocked(x, y int64) bool {
	col, ok := w.cols[x]
	if !ok {
		return false
	}
	if _, exists := col.cells[y]; !exists {
		return false
	}
	delete(col.cells, y)
	col.ys = deleteSorted(col.ys, y)
	if len(col.ys) == 0 {
		delete(w.cols, x)
		w.xs = deleteSorted(w.xs, x)
	}
	w.count--
	return true
}

func (w *World) queryLocked(minX, maxX, minY, maxY int64) []*Life {
	var results []*Life
	start := sort.Search(len(w.xs), func(i int) bool { return w.xs[i] >= minX })
	for i := start; i < len(w.xs) && w.xs[i] <= maxX; i++ {
		col := w.cols[w.xs[i]]
		yStart := sort.Search(len(col.ys), func(j int) bool { return col.ys[j] >= minY })
		for j := yStart; j < len(col.ys) && col.ys[j] <= maxY; j++ {
			results = append(results, col.cells[col.ys[j]])
		}
	}
	return results
}

func (w *World) eachLocked(fn func(*Life)) {
	for _, x := range w.xs {
		col := w.cols[x]
		for _, y := range col.ys {
			fn(col.cells[y])
		}
	}
}

func (w *World) livesLocked() []*Life {
	results := make([]*Life, 0, w.count)
	for _, x := range w.xs {
		col := w.cols[x]
		for _, y := range col.ys {
			results = append(results, col.cells[y])
		}
	}
	return results
}

// insertSorted inserts key into its sorted position. The caller guarantees
// key is not already present.
func insertSorted(keys []int64, key int64) []int64 {
	i := sort.Search(len(keys), func(j int) bool { return keys[j] >= key })
	keys = append(keys, 0)
	copy(keys[i+1:], keys[i:])
	keys[i] = key
	return keys
}

// deleteSorted removes key from a sorted slice if present.
func deleteSorted(keys []int64, key int64) []int64 {
	i := sort.Search(len(keys), func(j int) bool { return keys[j] >= key })
	if i < len(keys) && keys[i] == key {
		keys = append(keys[:i], keys[i+1:]...)
	}
	return keys
}
