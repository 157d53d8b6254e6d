// Package pattern generates starting configurations for the engine.
package pattern

import (
	"math/rand/v2"

	"github.com/aquilax/go-perlin"

	"lifegrid/internal/core"
)

// Perlin parameters for the soup field. The frequency keeps blob
// features a handful of cells wide.
const (
	noiseAlpha     = 2.0
	noiseBeta      = 2.0
	noiseOctaves   = 3
	noiseFrequency = 0.08
)

// SoupConfig controls the shape of a random soup.
type SoupConfig struct {
	// CenterX, CenterY position the soup on the plane.
	CenterX int
	CenterY int
	// Radius is the soup's extent in cells.
	Radius int
	// Density in [0, 1] scales how much of the disc comes up alive.
	Density float64
}

// DefaultSoup returns the soup shape used by the G key and bench runs.
func DefaultSoup() SoupConfig {
	return SoupConfig{Radius: 40, Density: 0.45}
}

// Soup fills a disc with an organic blob of live cells. A Perlin field
// biases density so the soup clumps instead of looking like static; the
// same seed always produces the same grid.
func Soup(cfg SoupConfig, seed int64) core.Grid {
	if cfg.Radius <= 0 || cfg.Density <= 0 {
		return core.NewGrid()
	}
	density := cfg.Density
	if density > 1 {
		density = 1
	}

	noise := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, seed)
	rng := rand.New(rand.NewPCG(uint64(seed), 0))

	g := core.NewGrid()
	r2 := cfg.Radius * cfg.Radius
	for dy := -cfg.Radius; dy <= cfg.Radius; dy++ {
		for dx := -cfg.Radius; dx <= cfg.Radius; dx++ {
			if dx*dx+dy*dy > r2 {
				continue
			}
			// Noise2D is roughly [-1, 1]; remap to [0, 1].
			n := (noise.Noise2D(float64(dx)*noiseFrequency, float64(dy)*noiseFrequency) + 1) / 2
			if rng.Float64() < density*n {
				g.Add(core.Cell{X: cfg.CenterX + dx, Y: cfg.CenterY + dy})
			}
		}
	}
	return g
}
