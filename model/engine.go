package model

import (
	"github.com/sparse-life/sparse-life/rules"
)

// Engine advances a sparsely stored world one generation at a time. It owns
// its World exclusively for its whole lifetime; callers seed cells with
// AddLife, prime ages once with Initialize, and then drive Tick.
type Engine struct {
	world      *World
	generation uint32
}

// NewEngine creates an engine owning an empty world.
func NewEngine() *Engine {
	return &Engine{world: NewWorld()}
}

// AddLife seeds a newborn cell at (x, y). Adding to an occupied position is
// a no-op: the first cell there wins.
func (e *Engine) AddLife(x, y int64) {
	e.world.Add(NewLife(x, y))
}

// Initialize ages every currently loaded cell by one so the first Tick
// treats the seed population as established cells rather than newborns.
// Call once after seeding, before the first Tick.
func (e *Engine) Initialize() {
	e.world.EachLife(func(life *Life) {
		life.Age++
	})
}

// Generation returns how many generations have elapsed.
func (e *Engine) Generation() uint32 {
	return e.generation
}

// Population returns the current number of live cells.
func (e *Engine) Population() int {
	return e.world.Len()
}

// LiveCells enumerates the live cells ordered by ascending x then
// ascending y.
func (e *Engine) LiveCells() []*Life {
	return e.world.Lives()
}

// World exposes the engine's world for direct inspection.
func (e *Engine) World() *World {
	return e.world
}

// Tick advances the world exactly one generation and reports the births and
// deaths it applied. The survey phase reads the prior generation under the
// world's read lock; deaths, births, and aging mutate afterward under the
// write lock, so every decision is made against the unmodified prior state.
func (e *Engine) Tick() (births, deaths int) {
	var killList []*Life
	newLifeSet := make(map[[2]int64]struct{})

	e.world.mu.RLock()
	e.world.eachLocked(func(life *Life) {
		// Newborns get one generation of grace: they neither die nor
		// nominate births until they have been aged.
		if life.Age == 0 {
			return
		}

		closeNeighbors := 0

		// One counter per compass position around the cell, pre-seeded to 1
		// because the cell itself neighbors each of those positions.
		var counters [rules.NumPositions]uint8
		for i := range counters {
			counters[i] = 1
		}

		// The survey window is 2 cells wide: a birth candidate one step away
		// has neighbors of its own up to two steps from the center.
		neighbors := e.world.queryLocked(
			saturatingAdd(life.X, -2), saturatingAdd(life.X, 2),
			saturatingAdd(life.Y, -2), saturatingAdd(life.Y, 2),
		)
		for _, neighbor := range neighbors {
			if neighbor.X == life.X && neighbor.Y == life.Y {
				continue
			}
			if neighbor.Age == 0 {
				continue
			}
			if life.IsCloseNeighbor(neighbor) {
				closeNeighbors++
			}
			for _, pos := range rules.Contributions(neighbor.X-life.X, neighbor.Y-life.Y) {
				counters[pos]++
			}
		}

		for pos, counter := range counters {
			if counter == rules.BirthThreshold {
				if x, y, ok := life.NeighborCoordinates(pos); ok {
					newLifeSet[[2]int64{x, y}] = struct{}{}
				}
			}
		}

		if !rules.Survives(closeNeighbors) {
			killList = append(killList, life)
		}
	})
	e.world.mu.RUnlock()

	for _, life := range killList {
		e.world.Remove(life.X, life.Y)
	}
	deaths = len(killList)

	for coords := range newLifeSet {
		if e.world.Add(NewLife(coords[0], coords[1])) {
			births++
		}
	}

	// Age survivors and this tick's newborns alike, so a cell born here is
	// a full participant by the next survey.
	e.world.EachLife(func(life *Life) {
		life.Age++
	})

	e.generation++
	return births, deaths
}
