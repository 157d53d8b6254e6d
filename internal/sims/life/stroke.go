package life

import "lifegrid/internal/core"

// strokeState tracks one paint gesture (press, drag, release). The
// touched set guarantees each cell is mutated at most once per stroke,
// so slow pointer sampling that revisits a cell cannot flicker it.
type strokeState struct {
	active  bool
	drawing bool
	touched map[core.Cell]struct{}
}

// BeginStroke starts a paint gesture at c. If c is alive the stroke
// becomes an erase stroke and c is removed; otherwise it becomes a draw
// stroke and c is added. A BeginStroke while a stroke is already active
// ends the current stroke and starts a fresh one, so a press event that
// raced the matching release is treated as a new gesture.
func (e *Engine) BeginStroke(c core.Cell) {
	e.stroke = strokeState{
		active:  true,
		drawing: !e.grid.Alive(c),
		touched: map[core.Cell]struct{}{c: {}},
	}
	if e.stroke.drawing {
		e.grid.Add(c)
	} else {
		e.grid.Remove(c)
	}
}

// ContinueStroke extends the active gesture to c, applying the stroke's
// fixed mode: a draw stroke only ever adds, an erase stroke only ever
// removes. Cells already touched this stroke are skipped. Without an
// active stroke this is a no-op.
func (e *Engine) ContinueStroke(c core.Cell) {
	if !e.stroke.active {
		return
	}
	if _, seen := e.stroke.touched[c]; seen {
		return
	}
	e.stroke.touched[c] = struct{}{}
	if e.stroke.drawing {
		e.grid.Add(c)
	} else {
		e.grid.Remove(c)
	}
}

// EndStroke finishes the active gesture, clearing the stroke mode and
// touched set. Calling it without an active stroke is a no-op.
func (e *Engine) EndStroke() {
	e.stroke = strokeState{}
}

// Stroking reports whether a paint gesture is in progress.
func (e *Engine) Stroking() bool { return e.stroke.active }
