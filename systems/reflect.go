package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/textboxes/components"
)

// ReflectSystem bounces boxes off the viewport edges by negating the
// direction component of each axis the box has crossed.
type ReflectSystem struct {
	filter *ecs.Filter2[components.Position, components.TextBox]
	size   float32

	// Axis flips performed by the last Update
	flipsX, flipsY int
}

// NewReflectSystem creates a reflect system for boxes with the given footprint.
func NewReflectSystem(w *ecs.World, size float32) *ReflectSystem {
	return &ReflectSystem{
		filter: ecs.NewFilter2[components.Position, components.TextBox](w),
		size:   size,
	}
}

// Update flips direction axes for boxes outside the inset viewport.
// Must run after MotionSystem in the same tick.
func (s *ReflectSystem) Update(vp Viewport) {
	b := vp.Inset(s.size)
	s.flipsX, s.flipsY = 0, 0

	query := s.filter.Query()
	for query.Next() {
		pos, box := query.Get()

		if outside(pos.X, b.XMin, b.XMax) {
			box.Direction.X = -box.Direction.X
			s.flipsX++
		}
		if outside(pos.Y, b.YMin, b.YMax) {
			box.Direction.Y = -box.Direction.Y
			s.flipsY++
		}
	}
}

// Flips returns how many x and y direction flips the last Update made.
func (s *ReflectSystem) Flips() (x, y int) {
	return s.flipsX, s.flipsY
}
