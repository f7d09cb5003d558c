// Package systems contains ECS systems for the text box demo.
package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/textboxes/components"
)

// MotionSystem advances text boxes along their direction at a fixed speed.
type MotionSystem struct {
	filter *ecs.Filter2[components.Position, components.TextBox]
	speed  float32
}

// NewMotionSystem creates a motion system moving boxes at speed pixels per second.
func NewMotionSystem(w *ecs.World, speed float32) *MotionSystem {
	return &MotionSystem{
		filter: ecs.NewFilter2[components.Position, components.TextBox](w),
		speed:  speed,
	}
}

// Update moves every box that is not hovered by direction*speed*dt.
func (s *MotionSystem) Update(dt float32) {
	step := s.speed * dt

	query := s.filter.Query()
	for query.Next() {
		pos, box := query.Get()

		if box.IsHovered {
			continue
		}

		pos.X += float32(box.Direction.X) * step
		pos.Y += float32(box.Direction.Y) * step
	}
}

// SetSpeed changes the box speed for subsequent updates.
func (s *MotionSystem) SetSpeed(speed float32) {
	s.speed = speed
}

// Speed returns the current box speed.
func (s *MotionSystem) Speed() float32 {
	return s.speed
}
