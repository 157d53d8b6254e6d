//go:build ebiten

package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"lifegrid/internal/core"
	"lifegrid/internal/view"
)

// Grid lines are skipped when the visible span exceeds this many lines;
// at that point they would be denser than the cells they separate.
const gridLineLimit = 200

// CellSource yields the alive cells to draw. Both core.Grid and the
// engine satisfy it.
type CellSource interface {
	Each(func(core.Cell))
}

// Painter draws the world through a camera. Cells and lines are a
// single white pixel stretched and tinted per draw call.
type Painter struct {
	pixel *ebiten.Image
}

// NewPainter allocates the shared pixel image.
func NewPainter() *Painter {
	p := &Painter{pixel: ebiten.NewImage(1, 1)}
	p.pixel.Fill(color.White)
	return p
}

// Cells draws every alive cell as a camera-transformed square of
// cellSize world units. Cells outside the screen are skipped.
func (p *Painter) Cells(screen *ebiten.Image, cells CellSource, cam *view.Camera, cellSize float64, col color.RGBA) {
	bounds := screen.Bounds()
	w := float64(bounds.Dx())
	h := float64(bounds.Dy())
	size := cellSize * cam.Zoom

	cells.Each(func(c core.Cell) {
		sx, sy := cam.WorldToScreen(float64(c.X)*cellSize, float64(c.Y)*cellSize)
		if sx+size < 0 || sy+size < 0 || sx > w || sy > h {
			return
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(size, size)
		op.GeoM.Translate(sx, sy)
		op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
		screen.DrawImage(p.pixel, op)
	})
}

// GridLines draws the cell boundaries across the visible world span.
// Nothing is drawn when the span exceeds the line limit.
func (p *Painter) GridLines(screen *ebiten.Image, cam *view.Camera, cellSize float64, col color.RGBA) {
	bounds := screen.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()

	minX, minY, maxX, maxY := cam.VisibleWorld(w, h)
	startX := int(math.Floor(minX / cellSize))
	startY := int(math.Floor(minY / cellSize))
	endX := int(math.Ceil(maxX / cellSize))
	endY := int(math.Ceil(maxY / cellSize))
	if endX-startX > gridLineLimit || endY-startY > gridLineLimit {
		return
	}

	for i := startX; i <= endX; i++ {
		x1, y1 := cam.WorldToScreen(float64(i)*cellSize, minY)
		x2, y2 := cam.WorldToScreen(float64(i)*cellSize, maxY)
		p.line(screen, x1, y1, x2, y2, col)
	}
	for i := startY; i <= endY; i++ {
		x1, y1 := cam.WorldToScreen(minX, float64(i)*cellSize)
		x2, y2 := cam.WorldToScreen(maxX, float64(i)*cellSize)
		p.line(screen, x1, y1, x2, y2, col)
	}
}

func (p *Painter) line(screen *ebiten.Image, x1, y1, x2, y2 float64, col color.RGBA) {
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, 1)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	screen.DrawImage(p.pixel, op)
}
