// Package camera provides a 2D camera with manual pan and log-space zoom.
package camera

import "math"

// MaxLogScale bounds |ln(Scale)| so the scale and its reciprocal stay
// finite and non-zero as float32.
const MaxLogScale = 80.0

// Input is the key state the camera reacts to for one tick.
type Input struct {
	Up, Down, Left, Right bool
	ZoomIn, ZoomOut       bool
}

// Camera controls the view onto the box layer.
// World space is y-down, matching screen space.
type Camera struct {
	// Position is the camera center in world coordinates
	X, Y float32

	// Z is the camera depth. Boxes are layered just below it.
	Z float32

	// Scale is the projection scale: world units per screen pixel.
	// 1.0 = 1:1, 2.0 = zoomed out to show twice the area.
	Scale float64

	// Viewport dimensions (screen size)
	ViewportW, ViewportH float32

	homeX, homeY float32
}

// New creates a camera centered on the viewport with 1:1 scale.
func New(viewportW, viewportH, height float32) *Camera {
	return &Camera{
		X:         viewportW / 2,
		Y:         viewportH / 2,
		Z:         height,
		Scale:     1.0,
		ViewportW: viewportW,
		ViewportH: viewportH,
		homeX:     viewportW / 2,
		homeY:     viewportH / 2,
	}
}

// Pan moves the camera by step world units for each pressed arrow key.
// The step is per tick, not per second. Opposite keys cancel.
func (c *Camera) Pan(in Input, step float32) {
	if in.Up {
		c.Y -= step
	}
	if in.Down {
		c.Y += step
	}
	if in.Left {
		c.X -= step
	}
	if in.Right {
		c.X += step
	}
}

// Zoom adjusts the scale in log space by rate*dt per held zoom key, so
// zooming is multiplicative and the scale stays strictly positive.
func (c *Camera) Zoom(in Input, rate, dt float64) {
	dist := rate * dt
	logScale := math.Log(c.Scale)

	if in.ZoomIn {
		logScale -= dist
	}
	if in.ZoomOut {
		logScale += dist
	}

	c.Scale = math.Exp(clamp(logScale, -MaxLogScale, MaxLogScale))
}

// Magnification returns screen pixels per world unit (the inverse of Scale).
func (c *Camera) Magnification() float32 {
	return float32(1 / c.Scale)
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float32) (sx, sy float32) {
	m := c.Magnification()
	sx = c.ViewportW/2 + (wx-c.X)*m
	sy = c.ViewportH/2 + (wy-c.Y)*m
	return sx, sy
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float32) (wx, wy float32) {
	s := float32(c.Scale)
	wx = c.X + (sx-c.ViewportW/2)*s
	wy = c.Y + (sy-c.ViewportH/2)*s
	return wx, wy
}

// VisibleWorldBounds returns the world-coordinate bounds of the visible area.
func (c *Camera) VisibleWorldBounds() (minX, minY, maxX, maxY float32) {
	halfW := c.ViewportW * float32(c.Scale) / 2
	halfH := c.ViewportH * float32(c.Scale) / 2

	minX = c.X - halfW
	maxX = c.X + halfW
	minY = c.Y - halfH
	maxY = c.Y + halfH
	return
}

// Resize updates viewport dimensions. The camera keeps its world position.
func (c *Camera) Resize(viewportW, viewportH float32) {
	c.ViewportW = viewportW
	c.ViewportH = viewportH
}

// Reset returns the camera to its spawn position and 1:1 scale.
func (c *Camera) Reset() {
	c.X = c.homeX
	c.Y = c.homeY
	c.Scale = 1.0
}

// clamp restricts a value to a range.
func clamp(x, min, max float64) float64 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
