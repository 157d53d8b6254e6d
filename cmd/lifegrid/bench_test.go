package main

import (
	"testing"

	"lifegrid/internal/pattern"
)

func TestRunBenchRecordsEveryGeneration(t *testing.T) {
	soup := pattern.SoupConfig{Radius: 10, Density: 0.5}
	result := runBench(soup, 1, 20)

	if result.generations != 20 {
		t.Fatalf("generations = %d, expected 20", result.generations)
	}
	if len(result.populations) != 21 {
		t.Fatalf("recorded %d samples, expected seed + 20 generations", len(result.populations))
	}
	if result.populations[0] == 0 {
		t.Fatal("soup seed produced an empty grid")
	}
}

func TestRunBenchDeterministicPerSeed(t *testing.T) {
	soup := pattern.SoupConfig{Radius: 12, Density: 0.4}
	a := runBench(soup, 99, 30)
	b := runBench(soup, 99, 30)

	for i := range a.populations {
		if a.populations[i] != b.populations[i] {
			t.Fatalf("population diverged at generation %d: %v vs %v",
				i, a.populations[i], b.populations[i])
		}
	}
}
