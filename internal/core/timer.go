package core

import "time"

// Pacer decides when an auto-step is due based on wall-clock time. The
// step interval is supplied by the caller on every check, so runtime
// rate changes take effect immediately. The zero interval never fires.
type Pacer struct {
	accumulator time.Duration
	last        time.Time
}

// NewPacer constructs a Pacer whose first check after a full interval
// reports due.
func NewPacer() *Pacer {
	return &Pacer{}
}

// Due reports whether one step interval has elapsed since the last due
// check. Elapsed time accumulates across calls; a long stall yields a
// single step, not a burst.
func (p *Pacer) Due(interval time.Duration) bool {
	if interval <= 0 {
		return false
	}
	now := time.Now()
	if p.last.IsZero() {
		p.last = now
	}
	p.accumulator += now.Sub(p.last)
	p.last = now
	if p.accumulator >= interval {
		// Drop the surplus so a pause or hitch cannot queue catch-up steps.
		p.accumulator = 0
		return true
	}
	return false
}

// Reset clears accumulated time, delaying the next step by a full interval.
func (p *Pacer) Reset() {
	p.accumulator = 0
	p.last = time.Time{}
}
