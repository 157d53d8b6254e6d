package core

// Grid stores the set of alive cells on the unbounded plane. The map
// key doubles as the pair hash: a comparable two-field struct hashes
// both coordinates, so (a, b) and (b, a) never collide structurally.
type Grid map[Cell]struct{}

// NewGrid returns an empty grid.
func NewGrid() Grid {
	return make(Grid)
}

// Alive reports whether c is alive.
func (g Grid) Alive(c Cell) bool {
	_, ok := g[c]
	return ok
}

// Add marks c alive. Adding an alive cell is a no-op.
func (g Grid) Add(c Cell) {
	g[c] = struct{}{}
}

// Remove marks c dead. Removing a dead cell is a no-op.
func (g Grid) Remove(c Cell) {
	delete(g, c)
}

// Len returns the population count.
func (g Grid) Len() int { return len(g) }

// Clear removes every cell.
func (g Grid) Clear() {
	clear(g)
}

// Each calls fn for every alive cell in unspecified order.
func (g Grid) Each(fn func(Cell)) {
	for c := range g {
		fn(c)
	}
}

// Cells returns a snapshot slice of the alive cells in unspecified order.
func (g Grid) Cells() []Cell {
	out := make([]Cell, 0, len(g))
	for c := range g {
		out = append(out, c)
	}
	return out
}

// Clone returns an independent copy of the grid.
func (g Grid) Clone() Grid {
	out := make(Grid, len(g))
	for c := range g {
		out[c] = struct{}{}
	}
	return out
}

// Equal reports whether g and other hold exactly the same cells.
func (g Grid) Equal(other Grid) bool {
	if len(g) != len(other) {
		return false
	}
	for c := range g {
		if _, ok := other[c]; !ok {
			return false
		}
	}
	return true
}
