package life

import (
	"testing"
	"time"

	"lifegrid/internal/core"
)

func gridOf(cells ...core.Cell) core.Grid {
	g := core.NewGrid()
	for _, c := range cells {
		g.Add(c)
	}
	return g
}

func TestEmptyGridIsFixedPoint(t *testing.T) {
	g := Next(Next(core.NewGrid()))
	if g.Len() != 0 {
		t.Fatalf("empty grid produced %d cells", g.Len())
	}
}

func TestLoneCellDies(t *testing.T) {
	g := Next(gridOf(core.Cell{X: 0, Y: 0}))
	if g.Len() != 0 {
		t.Fatalf("isolated cell survived, population = %d", g.Len())
	}
}

func TestBlockIsStillLife(t *testing.T) {
	block := gridOf(
		core.Cell{X: 0, Y: 0}, core.Cell{X: 1, Y: 0},
		core.Cell{X: 0, Y: 1}, core.Cell{X: 1, Y: 1},
	)
	if !Next(block).Equal(block) {
		t.Fatal("2x2 block should be unchanged by one step")
	}
}

func TestBlinkerOscillation(t *testing.T) {
	blinker := gridOf(
		core.Cell{X: -1, Y: 0}, core.Cell{X: 0, Y: 0}, core.Cell{X: 1, Y: 0},
	)
	vertical := gridOf(
		core.Cell{X: 0, Y: -1}, core.Cell{X: 0, Y: 0}, core.Cell{X: 0, Y: 1},
	)

	after := Next(blinker)
	if after.Equal(blinker) {
		t.Fatal("blinker should change after one step")
	}
	if !after.Equal(vertical) {
		t.Fatalf("blinker step produced %v, expected vertical bar", after.Cells())
	}
	if !Next(after).Equal(blinker) {
		t.Fatal("blinker should return to its original state after two steps")
	}
}

func TestGliderTranslates(t *testing.T) {
	glider := gridOf(
		core.Cell{X: 1, Y: 0},
		core.Cell{X: 2, Y: 1},
		core.Cell{X: 0, Y: 2}, core.Cell{X: 1, Y: 2}, core.Cell{X: 2, Y: 2},
	)

	g := glider.Clone()
	for i := 0; i < 4; i++ {
		g = Next(g)
	}

	// After one full period the glider has moved (+1, +1).
	want := core.NewGrid()
	glider.Each(func(c core.Cell) {
		want.Add(core.Cell{X: c.X + 1, Y: c.Y + 1})
	})
	if !g.Equal(want) {
		t.Fatalf("glider after 4 steps = %v, expected translation by (1,1)", g.Cells())
	}
}

func TestNextDoesNotMutateInput(t *testing.T) {
	blinker := gridOf(
		core.Cell{X: -1, Y: 0}, core.Cell{X: 0, Y: 0}, core.Cell{X: 1, Y: 0},
	)
	snapshot := blinker.Clone()
	Next(blinker)
	if !blinker.Equal(snapshot) {
		t.Fatal("Next mutated its input grid")
	}
}

func TestAdvanceIncrementsGeneration(t *testing.T) {
	e := New()
	for i := int64(1); i <= 3; i++ {
		e.Advance()
		if e.Generation() != i {
			t.Fatalf("generation = %d after %d advances", e.Generation(), i)
		}
	}
	if e.Population() != 0 {
		t.Fatalf("empty engine gained %d cells", e.Population())
	}
}

func TestRateClamping(t *testing.T) {
	e := New()

	e.SetRate(time.Millisecond)
	if e.Rate() != MinRate {
		t.Fatalf("rate below minimum clamped to %v, expected %v", e.Rate(), MinRate)
	}

	e.SetRate(time.Minute)
	if e.Rate() != MaxRate {
		t.Fatalf("rate above maximum clamped to %v, expected %v", e.Rate(), MaxRate)
	}

	e.SetRate(MinRate)
	e.SpeedUp()
	if e.Rate() != MinRate {
		t.Fatalf("SpeedUp at the floor moved rate to %v", e.Rate())
	}

	e.SetRate(MaxRate)
	e.SlowDown()
	if e.Rate() != MaxRate {
		t.Fatalf("SlowDown at the ceiling moved rate to %v", e.Rate())
	}

	e.SetRate(DefaultRate)
	e.SpeedUp()
	if e.Rate() != DefaultRate-RateStep {
		t.Fatalf("SpeedUp moved rate to %v, expected %v", e.Rate(), DefaultRate-RateStep)
	}
}

func TestResetMatchesFreshEngine(t *testing.T) {
	e := New()
	e.BeginStroke(core.Cell{X: 2, Y: 2})
	e.EndStroke()
	e.Advance()
	e.SetPaused(false)
	e.SetRate(MinRate)

	e.Reset()

	fresh := New()
	if e.Population() != fresh.Population() {
		t.Fatalf("population after reset = %d", e.Population())
	}
	if e.Generation() != fresh.Generation() {
		t.Fatalf("generation after reset = %d", e.Generation())
	}
	if e.Paused() != fresh.Paused() {
		t.Fatal("reset should restore the paused state")
	}
	if e.Rate() != fresh.Rate() {
		t.Fatalf("rate after reset = %v, expected %v", e.Rate(), fresh.Rate())
	}
	if e.Stroking() {
		t.Fatal("reset should abandon any active stroke")
	}
}

func TestSeedReplacesGridWithoutStepping(t *testing.T) {
	e := New()
	e.Advance()

	soup := gridOf(core.Cell{X: 0, Y: 0}, core.Cell{X: 4, Y: 4})
	e.Seed(soup)

	if e.Population() != 2 {
		t.Fatalf("population after seed = %d, expected 2", e.Population())
	}
	if e.Generation() != 1 {
		t.Fatalf("seed changed the generation counter to %d", e.Generation())
	}

	// The engine owns its copy; mutating the source must not leak in.
	soup.Add(core.Cell{X: 9, Y: 9})
	if e.Alive(core.Cell{X: 9, Y: 9}) {
		t.Fatal("engine grid aliases the seed grid")
	}
}
