// Package view holds the pan/zoom camera that maps between screen
// pixels and world space. The simulation core never sees screen
// coordinates; callers resolve them to cells here first.
package view

import (
	"math"

	"lifegrid/internal/core"
)

// Zoom limits and the per-wheel-notch zoom change.
const (
	MinZoom       = 0.125
	MaxZoom       = 8.0
	ZoomIncrement = 0.125
)

// Camera is a 2D camera: Target is the world point shown at the screen
// point Offset, scaled by Zoom.
type Camera struct {
	TargetX float64
	TargetY float64
	OffsetX float64
	OffsetY float64
	Zoom    float64
}

// NewCamera returns a camera centered on the world origin for a screen
// of the given pixel size.
func NewCamera(screenW, screenH int) *Camera {
	c := &Camera{}
	c.Reset(screenW, screenH)
	return c
}

// Reset recenters the camera on the world origin at zoom 1.
func (c *Camera) Reset(screenW, screenH int) {
	c.TargetX = 0
	c.TargetY = 0
	c.OffsetX = float64(screenW) / 2
	c.OffsetY = float64(screenH) / 2
	c.Zoom = 1
}

// WorldToScreen maps a world point to screen pixels.
func (c *Camera) WorldToScreen(wx, wy float64) (float64, float64) {
	return (wx-c.TargetX)*c.Zoom + c.OffsetX, (wy-c.TargetY)*c.Zoom + c.OffsetY
}

// ScreenToWorld maps a screen pixel to the world point under it.
func (c *Camera) ScreenToWorld(sx, sy float64) (float64, float64) {
	return (sx-c.OffsetX)/c.Zoom + c.TargetX, (sy-c.OffsetY)/c.Zoom + c.TargetY
}

// CellAt resolves a screen pixel to the cell containing it for the
// given world-space cell size. Floor division keeps negative
// coordinates in the correct cell.
func (c *Camera) CellAt(sx, sy, cellSize float64) core.Cell {
	wx, wy := c.ScreenToWorld(sx, sy)
	return core.Cell{
		X: int(math.Floor(wx / cellSize)),
		Y: int(math.Floor(wy / cellSize)),
	}
}

// Pan moves the camera target by a screen-space delta, so dragging the
// mouse moves the world with the cursor at any zoom.
func (c *Camera) Pan(dx, dy float64) {
	c.TargetX -= dx / c.Zoom
	c.TargetY -= dy / c.Zoom
}

// ZoomAt changes zoom by steps wheel notches, keeping the world point
// under the screen position (sx, sy) fixed on screen.
func (c *Camera) ZoomAt(sx, sy, steps float64) {
	if steps == 0 {
		return
	}
	wx, wy := c.ScreenToWorld(sx, sy)
	c.OffsetX = sx
	c.OffsetY = sy
	c.TargetX = wx
	c.TargetY = wy

	c.Zoom += steps * ZoomIncrement
	if c.Zoom < MinZoom {
		c.Zoom = MinZoom
	}
	if c.Zoom > MaxZoom {
		c.Zoom = MaxZoom
	}
}

// VisibleWorld returns the world-space rectangle covered by a screen of
// the given pixel size.
func (c *Camera) VisibleWorld(screenW, screenH int) (minX, minY, maxX, maxY float64) {
	minX, minY = c.ScreenToWorld(0, 0)
	maxX, maxY = c.ScreenToWorld(float64(screenW), float64(screenH))
	return minX, minY, maxX, maxY
}
