package pattern

import (
	"testing"

	"lifegrid/internal/core"
)

func TestSoupDeterministicPerSeed(t *testing.T) {
	cfg := DefaultSoup()
	a := Soup(cfg, 42)
	b := Soup(cfg, 42)
	if !a.Equal(b) {
		t.Fatal("same seed produced different soups")
	}

	c := Soup(cfg, 43)
	if a.Equal(c) {
		t.Fatal("different seeds produced identical soups")
	}
}

func TestSoupStaysInsideDisc(t *testing.T) {
	cfg := SoupConfig{CenterX: 10, CenterY: -5, Radius: 8, Density: 1}
	g := Soup(cfg, 7)
	if g.Len() == 0 {
		t.Fatal("full-density soup came up empty")
	}
	g.Each(func(c core.Cell) {
		dx := c.X - cfg.CenterX
		dy := c.Y - cfg.CenterY
		if dx*dx+dy*dy > cfg.Radius*cfg.Radius {
			t.Fatalf("cell %v outside the soup disc", c)
		}
	})
}

func TestSoupDegenerateConfigs(t *testing.T) {
	if g := Soup(SoupConfig{Radius: 0, Density: 0.5}, 1); g.Len() != 0 {
		t.Fatalf("zero-radius soup has %d cells", g.Len())
	}
	if g := Soup(SoupConfig{Radius: 10, Density: 0}, 1); g.Len() != 0 {
		t.Fatalf("zero-density soup has %d cells", g.Len())
	}
}
