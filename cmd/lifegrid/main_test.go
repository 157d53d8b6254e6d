package main

import (
	"testing"

	"lifegrid/internal/config"
)

func TestRootConfigDefaults(t *testing.T) {
	cmd := newRootCmd()
	cfg, err := rootConfig(cmd)
	if err != nil {
		t.Fatalf("rootConfig returned error: %v", err)
	}
	if cfg != config.Default() {
		t.Fatalf("rootConfig with no flags = %+v, expected defaults", cfg)
	}
}

func TestRootConfigAppliesFlags(t *testing.T) {
	cmd := newRootCmd()
	for flag, value := range map[string]string{
		"seed":  "123",
		"width": "800",
		"rate":  "0.5",
	} {
		if err := cmd.Flags().Set(flag, value); err != nil {
			t.Fatalf("set --%s: %v", flag, err)
		}
	}

	cfg, err := rootConfig(cmd)
	if err != nil {
		t.Fatalf("rootConfig returned error: %v", err)
	}
	if cfg.Seed != 123 {
		t.Fatalf("seed = %d, expected the --seed value 123", cfg.Seed)
	}
	if cfg.Width != 800 {
		t.Fatalf("width = %d, expected 800", cfg.Width)
	}
	if cfg.Rate != 0.5 {
		t.Fatalf("rate = %v, expected 0.5", cfg.Rate)
	}
	// Untouched flags keep their config defaults.
	if cfg.Height != config.Default().Height {
		t.Fatalf("height = %d, expected the default", cfg.Height)
	}
}
