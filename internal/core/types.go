package core

// Cell identifies a single position on the unbounded plane. A cell is
// alive exactly when it is present in a Grid.
type Cell struct {
	X int
	Y int
}

// mooreOffsets lists the 8 neighbor offsets of the Moore neighborhood.
var mooreOffsets = [8]Cell{
	{X: -1, Y: -1}, {X: 0, Y: -1}, {X: 1, Y: -1},
	{X: -1, Y: 0}, {X: 1, Y: 0},
	{X: -1, Y: 1}, {X: 0, Y: 1}, {X: 1, Y: 1},
}

// Neighbors returns the 8 cells of c's Moore neighborhood.
func (c Cell) Neighbors() [8]Cell {
	var out [8]Cell
	for i, off := range mooreOffsets {
		out[i] = Cell{X: c.X + off.X, Y: c.Y + off.Y}
	}
	return out
}
