// Package sim owns the text box world and advances it one tick at a time.
// It has no window dependency; the game package feeds it input, frame time
// and viewport size.
package sim

import (
	"fmt"
	"image/color"
	"math/rand"
	"sort"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/textboxes/camera"
	"github.com/pthm-cable/textboxes/components"
	"github.com/pthm-cable/textboxes/config"
	"github.com/pthm-cable/textboxes/systems"
	"github.com/pthm-cable/textboxes/telemetry"
)

// boxRef remembers a box in spawn order.
type boxRef struct {
	entity ecs.Entity
	label  string
}

// BoxView is a read-only copy of a box for drawing.
type BoxView struct {
	Pos    components.Position
	Sprite components.Sprite
	Label  components.Label
}

// Sim holds the complete demo state.
type Sim struct {
	cfg   *config.Config
	world *ecs.World
	rng   *rand.Rand

	boxMapper   *ecs.Map3[components.Position, components.TextBox, components.Sprite]
	labelMapper *ecs.Map1[components.Label]
	boxFilter   *ecs.Filter3[components.Position, components.TextBox, components.Sprite]
	labelFilter *ecs.Filter1[components.Label]

	boxes []boxRef

	camera  *camera.Camera
	motion  *systems.MotionSystem
	reflect *systems.ReflectSystem
	confine *systems.ConfineSystem

	schedule *systems.Schedule
	perf     *telemetry.PerfCollector

	// Inputs for the tick in progress
	input    camera.Input
	viewport systems.Viewport

	tick int32
}

// New creates the world, the camera and cfg.Boxes.Count text boxes placed
// at random inside vp. It panics if vp is not positive, since every pass
// depends on a real viewport.
func New(cfg *config.Config, seed int64, vp systems.Viewport) *Sim {
	if vp.Width <= 0 || vp.Height <= 0 {
		panic(fmt.Sprintf("sim: viewport must be positive, got %vx%v", vp.Width, vp.Height))
	}

	world := ecs.NewWorld()
	s := &Sim{
		cfg:         cfg,
		world:       world,
		rng:         rand.New(rand.NewSource(seed)),
		boxMapper:   ecs.NewMap3[components.Position, components.TextBox, components.Sprite](world),
		labelMapper: ecs.NewMap1[components.Label](world),
		boxFilter:   ecs.NewFilter3[components.Position, components.TextBox, components.Sprite](world),
		labelFilter: ecs.NewFilter1[components.Label](world),
		camera:      camera.New(vp.Width, vp.Height, float32(cfg.Camera.Height)),
		motion:      systems.NewMotionSystem(world, cfg.Derived.Speed32),
		reflect:     systems.NewReflectSystem(world, float32(cfg.Boxes.ConfineSize)),
		confine:     systems.NewConfineSystem(world, float32(cfg.Boxes.ConfineSize)),
		perf:        telemetry.NewPerfCollector(cfg.Screen.TargetFPS),
		viewport:    vp,
	}

	s.schedule = systems.NewSchedule(s.perf)
	s.schedule.Add(systems.PassCameraPan, func(systems.Frame) {
		s.camera.Pan(s.input, float32(s.cfg.Camera.PanStep))
	})
	s.schedule.Add(systems.PassCameraZoom, func(f systems.Frame) {
		s.camera.Zoom(s.input, s.cfg.Camera.ZoomRate, float64(f.DT))
	})
	s.schedule.Add(systems.PassMotion, func(f systems.Frame) { s.motion.Update(f.DT) })
	s.schedule.Add(systems.PassReflect, func(f systems.Frame) { s.reflect.Update(f.Viewport) })
	s.schedule.Add(systems.PassConfine, func(f systems.Frame) { s.confine.Update(f.Viewport) })

	s.spawnTextBoxes(vp)

	return s
}

// spawnTextBoxes creates the boxes and their label children.
func (s *Sim) spawnTextBoxes(vp systems.Viewport) {
	bc := s.cfg.Boxes
	boxColor := color.RGBA{R: bc.Color[0], G: bc.Color[1], B: bc.Color[2], A: 255}
	textColor := color.RGBA{R: bc.TextColor[0], G: bc.TextColor[1], B: bc.TextColor[2], A: 255}

	for i := 0; i < bc.Count; i++ {
		x := s.rng.Float32() * vp.Width
		y := s.rng.Float32() * vp.Height
		text := components.LabelFor(i, bc.Labels)

		pos := components.Position{X: x, Y: y, Z: s.cfg.Derived.BoxZ}
		box := components.TextBox{
			Direction: components.RandomDirection(s.rng.Float64(), s.rng.Float64()),
		}
		sprite := components.Sprite{
			Width:  float32(bc.SpriteWidth),
			Height: float32(bc.SpriteHeight),
			Color:  boxColor,
		}
		entity := s.boxMapper.NewEntity(&pos, &box, &sprite)

		label := components.Label{
			Text:     text,
			Parent:   entity,
			OffsetZ:  1,
			FontSize: float32(bc.FontSize),
			Color:    textColor,
		}
		s.labelMapper.NewEntity(&label)

		s.boxes = append(s.boxes, boxRef{entity: entity, label: text})
	}
}

// Step runs one tick: camera pan, camera zoom, motion, reflect, confine.
func (s *Sim) Step(in camera.Input, dt float32, vp systems.Viewport) {
	if vp != s.viewport {
		s.viewport = vp
		s.camera.Resize(vp.Width, vp.Height)
	}
	s.input = in

	s.perf.StartTick()
	s.schedule.Run(systems.Frame{DT: dt, Viewport: vp})
	s.perf.EndTick()

	s.tick++
}

// Boxes returns every box with its label, ordered back to front by depth.
func (s *Sim) Boxes() []BoxView {
	labels := make(map[ecs.Entity]components.Label, len(s.boxes))
	lq := s.labelFilter.Query()
	for lq.Next() {
		l := lq.Get()
		labels[l.Parent] = *l
	}

	views := make([]BoxView, 0, len(s.boxes))
	query := s.boxFilter.Query()
	for query.Next() {
		pos, _, sprite := query.Get()
		views = append(views, BoxView{
			Pos:    *pos,
			Sprite: *sprite,
			Label:  labels[query.Entity()],
		})
	}

	sort.SliceStable(views, func(i, j int) bool {
		return views[i].Pos.Z < views[j].Pos.Z
	})
	return views
}

// Samples returns the state of every box in spawn order.
func (s *Sim) Samples() []telemetry.BoxSample {
	out := make([]telemetry.BoxSample, len(s.boxes))
	for i, b := range s.boxes {
		pos, box, _ := s.boxMapper.Get(b.entity)
		out[i] = telemetry.BoxSample{
			Tick:    s.tick,
			Box:     i,
			Label:   b.label,
			X:       pos.X,
			Y:       pos.Y,
			DirX:    box.Direction.X,
			DirY:    box.Direction.Y,
			Hovered: box.IsHovered,
		}
	}
	return out
}

// CameraSample returns the camera state for telemetry.
func (s *Sim) CameraSample() telemetry.CameraSample {
	return telemetry.CameraSample{X: s.camera.X, Y: s.camera.Y, Scale: s.camera.Scale}
}

// Flips returns the direction flips made during the last tick.
func (s *Sim) Flips() (x, y int) {
	return s.reflect.Flips()
}

// SetBoxSpeed changes box speed in pixels per second.
func (s *Sim) SetBoxSpeed(speed float32) {
	s.motion.SetSpeed(speed)
}

// BoxSpeed returns the current box speed in pixels per second.
func (s *Sim) BoxSpeed() float32 {
	return s.motion.Speed()
}

// Camera returns the camera.
func (s *Sim) Camera() *camera.Camera {
	return s.camera
}

// Perf returns the per-pass timing collector.
func (s *Sim) Perf() *telemetry.PerfCollector {
	return s.perf
}

// PassIDs returns the tick's pass IDs in execution order.
func (s *Sim) PassIDs() []string {
	return s.schedule.IDs()
}

// BoxCount returns the number of boxes.
func (s *Sim) BoxCount() int {
	return len(s.boxes)
}

// Viewport returns the viewport used by the last tick.
func (s *Sim) Viewport() systems.Viewport {
	return s.viewport
}

// Tick returns the number of completed ticks.
func (s *Sim) Tick() int32 {
	return s.tick
}
