package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/textboxes/components"
)

// ConfineSystem clamps box positions into the inset viewport.
type ConfineSystem struct {
	filter *ecs.Filter2[components.Position, components.TextBox]
	size   float32
}

// NewConfineSystem creates a confine system for boxes with the given footprint.
func NewConfineSystem(w *ecs.World, size float32) *ConfineSystem {
	return &ConfineSystem{
		filter: ecs.NewFilter2[components.Position, components.TextBox](w),
		size:   size,
	}
}

// Update clamps every box into the inset viewport. Direction is untouched.
func (s *ConfineSystem) Update(vp Viewport) {
	b := vp.Inset(s.size)

	query := s.filter.Query()
	for query.Next() {
		pos, _ := query.Get()
		pos.X = clampAxis(pos.X, b.XMin, b.XMax)
		pos.Y = clampAxis(pos.Y, b.YMin, b.YMax)
	}
}
