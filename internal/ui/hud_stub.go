//go:build !ebiten

package ui

import "time"

// Status is the read-only snapshot the HUD renders each frame.
type Status struct {
	Paused     bool
	Rate       time.Duration
	Generation int64
	Population int
	Zoom       float64
}

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns a stub HUD.
func NewHUD() *HUD { return &HUD{} }

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, Status) {}
