package systems

// Viewport is the visible surface size reported by the window each tick.
type Viewport struct {
	Width, Height float32
}

// Bounds is the range a box centre may occupy.
type Bounds struct {
	XMin, XMax float32
	YMin, YMax float32
}

// Inset narrows the viewport by half the footprint on every side so a box
// of the given size never leaves the screen.
func (v Viewport) Inset(size float32) Bounds {
	half := size / 2
	return Bounds{
		XMin: half,
		XMax: v.Width - half,
		YMin: half,
		YMax: v.Height - half,
	}
}

// Contains reports whether (x, y) lies within the bounds, edges included.
func (b Bounds) Contains(x, y float32) bool {
	return !outside(x, b.XMin, b.XMax) && !outside(y, b.YMin, b.YMax)
}
