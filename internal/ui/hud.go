//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelMargin  = 5
	panelPadding = 10
	lineHeight   = 16
)

// Status is the read-only snapshot the HUD renders each frame.
type Status struct {
	Paused     bool
	Rate       time.Duration
	Generation int64
	Population int
	Zoom       float64
}

// HUD draws the status text block in the top-left corner.
type HUD struct {
	panel *ebiten.Image
}

// NewHUD constructs the HUD.
func NewHUD() *HUD {
	return &HUD{}
}

// Draw paints the translucent panel and status lines onto the screen.
func (h *HUD) Draw(screen *ebiten.Image, s Status) {
	state := "Running"
	if s.Paused {
		state = "Paused"
	}
	lines := []string{
		fmt.Sprintf("Status: %s (Space)", state),
		fmt.Sprintf("Speed: %.1f steps/sec (Up/Down)", 1/s.Rate.Seconds()),
		"Step: S | Soup: G",
		fmt.Sprintf("Generation: %d", s.Generation),
		fmt.Sprintf("Population: %d", s.Population),
		fmt.Sprintf("Zoom: %.3gx (Wheel) | Pan: R-Drag | Paint: L-Drag", s.Zoom),
		"Reset: R | Quit: Q",
	}

	width := 0
	face := basicfont.Face7x13
	for _, line := range lines {
		if w := text.BoundString(face, line).Dx(); w > width {
			width = w
		}
	}
	width += 2 * panelPadding
	height := len(lines)*lineHeight + panelPadding

	if h.panel == nil || h.panel.Bounds().Dx() != width || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(width, height)
	}
	h.panel.Fill(color.RGBA{A: 178})

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(panelMargin, panelMargin)
	screen.DrawImage(h.panel, op)

	fg := color.RGBA{R: 200, G: 200, B: 200, A: 255}
	for i, line := range lines {
		y := panelMargin + panelPadding + (i+1)*lineHeight - 4
		text.Draw(screen, line, face, panelMargin+panelPadding, y, fg)
	}
}
