package life

import (
	"time"

	"lifegrid/internal/core"
)

// Rate bounds and defaults for auto-stepping. Requests outside the
// bounds saturate rather than error.
const (
	MinRate     = 10 * time.Millisecond
	MaxRate     = 2 * time.Second
	RateStep    = 50 * time.Millisecond
	DefaultRate = 200 * time.Millisecond
)

// Engine runs Conway's Game of Life on the sparse unbounded plane. All
// state lives on the struct, so independent engines never interact.
// Engine is not safe for concurrent use; the driver calls it from a
// single goroutine.
type Engine struct {
	grid       core.Grid
	generation int64
	paused     bool
	rate       time.Duration

	stroke strokeState
}

// New returns an engine with an empty grid, generation zero, the
// default rate, and auto-stepping paused.
func New() *Engine {
	return &Engine{
		grid:   core.NewGrid(),
		paused: true,
		rate:   DefaultRate,
	}
}

// Next computes the generation following g under the B3/S23 rule. Only
// the candidate cells — alive cells and their Moore neighbors — can
// change state, so the cost is proportional to the population. The
// result is a fresh grid; g is never mutated.
func Next(g core.Grid) core.Grid {
	candidates := make(map[core.Cell]struct{}, len(g)*4)
	for c := range g {
		candidates[c] = struct{}{}
		for _, n := range c.Neighbors() {
			candidates[n] = struct{}{}
		}
	}

	next := make(core.Grid, len(g))
	for c := range candidates {
		neighbors := 0
		for _, n := range c.Neighbors() {
			if g.Alive(n) {
				neighbors++
			}
		}
		if g.Alive(c) {
			if neighbors == 2 || neighbors == 3 {
				next.Add(c)
			}
		} else if neighbors == 3 {
			next.Add(c)
		}
	}
	return next
}

// Advance replaces the grid with its next generation and increments the
// generation counter by exactly one, whether or not anything changed.
func (e *Engine) Advance() {
	e.grid = Next(e.grid)
	e.generation++
}

// Reset restores the freshly-constructed state: empty grid, generation
// zero, default rate, paused, no stroke in progress.
func (e *Engine) Reset() {
	e.grid = core.NewGrid()
	e.generation = 0
	e.paused = true
	e.rate = DefaultRate
	e.stroke = strokeState{}
}

// Seed replaces the grid wholesale with the provided cells. The
// generation counter is untouched; seeding is an edit, not a step.
func (e *Engine) Seed(g core.Grid) {
	e.grid = g.Clone()
}

// Alive reports whether c is alive in the current generation.
func (e *Engine) Alive(c core.Cell) bool { return e.grid.Alive(c) }

// Each visits every alive cell of the current generation.
func (e *Engine) Each(fn func(core.Cell)) { e.grid.Each(fn) }

// Cells returns a snapshot of the alive cells.
func (e *Engine) Cells() []core.Cell { return e.grid.Cells() }

// Population returns the number of alive cells.
func (e *Engine) Population() int { return e.grid.Len() }

// Generation returns the number of steps taken since the last reset.
func (e *Engine) Generation() int64 { return e.generation }

// Paused reports whether auto-stepping is suspended.
func (e *Engine) Paused() bool { return e.paused }

// SetPaused suspends or resumes auto-stepping. Manual Advance and
// painting work regardless.
func (e *Engine) SetPaused(paused bool) { e.paused = paused }

// Rate returns the current auto-step interval.
func (e *Engine) Rate() time.Duration { return e.rate }

// SetRate sets the auto-step interval, saturating at the rate bounds.
func (e *Engine) SetRate(d time.Duration) {
	e.rate = clampRate(d)
}

// SpeedUp shortens the auto-step interval by one increment.
func (e *Engine) SpeedUp() { e.SetRate(e.rate - RateStep) }

// SlowDown lengthens the auto-step interval by one increment.
func (e *Engine) SlowDown() { e.SetRate(e.rate + RateStep) }

func clampRate(d time.Duration) time.Duration {
	if d < MinRate {
		return MinRate
	}
	if d > MaxRate {
		return MaxRate
	}
	return d
}
