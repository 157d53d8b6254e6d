package main

import (
	"fmt"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"lifegrid/internal/config"
	"lifegrid/internal/pattern"
	"lifegrid/internal/sims/life"
)

type benchResult struct {
	generations int
	elapsed     time.Duration
	// populations holds the population after each generation, starting
	// with the seeded soup.
	populations []float64
}

func (r benchResult) perStep() time.Duration {
	if r.generations == 0 {
		return 0
	}
	return r.elapsed / time.Duration(r.generations)
}

// runBench seeds a soup and advances it for the requested number of
// generations, recording the population curve.
func runBench(soup pattern.SoupConfig, seed int64, generations int) benchResult {
	engine := life.New()
	engine.Seed(pattern.Soup(soup, seed))

	populations := make([]float64, 0, generations+1)
	populations = append(populations, float64(engine.Population()))

	start := time.Now()
	for i := 0; i < generations; i++ {
		engine.Advance()
		populations = append(populations, float64(engine.Population()))
	}

	return benchResult{
		generations: generations,
		elapsed:     time.Since(start),
		populations: populations,
	}
}

func newBenchCmd() *cobra.Command {
	var (
		generations int
		seed        int64
		radius      int
		density     float64
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "advance a headless soup and report step timings",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFile)
			if err != nil {
				return err
			}
			soup := pattern.SoupConfig{
				Radius:  cfg.Soup.Radius,
				Density: cfg.Soup.Density,
			}
			if cmd.Flags().Changed("radius") {
				soup.Radius = radius
			}
			if cmd.Flags().Changed("density") {
				soup.Density = density
			}
			if !cmd.Flags().Changed("seed") {
				seed = cfg.Seed
			}

			result := runBench(soup, seed, generations)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "seed %d, soup radius %d, density %.2f\n", seed, soup.Radius, soup.Density)
			fmt.Fprintf(out, "%d generations in %v (%v/step)\n",
				result.generations, result.elapsed.Round(time.Microsecond), result.perStep().Round(time.Microsecond))
			fmt.Fprintf(out, "population %d -> %d\n",
				int(result.populations[0]), int(result.populations[len(result.populations)-1]))
			fmt.Fprintln(out)
			fmt.Fprintln(out, asciigraph.Plot(result.populations,
				asciigraph.Height(12),
				asciigraph.Caption("population by generation")))
			return nil
		},
	}

	cmd.Flags().IntVar(&generations, "gens", 500, "generations to simulate")
	cmd.Flags().Int64Var(&seed, "seed", config.Default().Seed, "soup seed")
	cmd.Flags().IntVar(&radius, "radius", config.Default().Soup.Radius, "soup radius in cells")
	cmd.Flags().Float64Var(&density, "density", config.Default().Soup.Density, "soup density in (0, 1]")

	return cmd
}
