// Package components defines ECS components for the text box demo.
package components

import "gonum.org/v1/gonum/spatial/r2"

// TextBox is the per-box motion payload.
type TextBox struct {
	// Direction is set once at spawn to a unit vector and afterwards only
	// has its components negated, so its magnitude never changes.
	Direction r2.Vec

	// IsHovered pauses motion while set. Nothing sets it yet; reflection
	// and clamping still apply to hovered boxes.
	IsHovered bool
}

// LabelFor returns the label for the i-th spawned box, cycling through labels.
func LabelFor(i int, labels []string) string {
	if len(labels) == 0 {
		return ""
	}
	return labels[i%len(labels)]
}

// RandomDirection normalizes (x, y) into a unit vector.
// A zero vector has no direction, so it falls back to +X.
func RandomDirection(x, y float64) r2.Vec {
	v := r2.Vec{X: x, Y: y}
	if r2.Norm(v) == 0 {
		return r2.Vec{X: 1}
	}
	return r2.Unit(v)
}
