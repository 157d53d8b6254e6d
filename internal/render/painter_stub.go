//go:build !ebiten

package render

import (
	"image/color"

	"lifegrid/internal/core"
	"lifegrid/internal/view"
)

// CellSource yields the alive cells to draw.
type CellSource interface {
	Each(func(core.Cell))
}

// Painter is a no-op placeholder for headless builds.
type Painter struct{}

// NewPainter returns a stub painter.
func NewPainter() *Painter { return &Painter{} }

// Cells is a no-op in the headless build.
func (p *Painter) Cells(any, CellSource, *view.Camera, float64, color.RGBA) {}

// GridLines is a no-op in the headless build.
func (p *Painter) GridLines(any, *view.Camera, float64, color.RGBA) {}
