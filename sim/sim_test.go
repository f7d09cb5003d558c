package sim

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/textboxes/camera"
	"github.com/pthm-cable/textboxes/config"
	"github.com/pthm-cable/textboxes/systems"
)

var testViewport = systems.Viewport{Width: 800, Height: 600}

func loadConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("loading defaults: %v", err)
	}
	return cfg
}

func TestNewSpawnsBoxes(t *testing.T) {
	cfg := loadConfig(t)
	s := New(cfg, 42, testViewport)

	if s.BoxCount() != 4 {
		t.Fatalf("expected 4 boxes, got %d", s.BoxCount())
	}

	want := []string{"Josh", "Almie", "redbeard", "github.com"}
	for i, sample := range s.Samples() {
		if sample.Label != want[i] {
			t.Errorf("box %d: expected label %q, got %q", i, want[i], sample.Label)
		}
		if sample.X < 0 || sample.X >= testViewport.Width || sample.Y < 0 || sample.Y >= testViewport.Height {
			t.Errorf("box %d spawned outside the viewport at (%f, %f)", i, sample.X, sample.Y)
		}
		dir := r2.Vec{X: sample.DirX, Y: sample.DirY}
		if math.Abs(r2.Norm(dir)-1) > 1e-12 {
			t.Errorf("box %d: expected unit direction, got %v", i, dir)
		}
		if sample.DirX < 0 || sample.DirY < 0 {
			t.Errorf("box %d: spawn direction should lie in the positive quadrant, got %v", i, dir)
		}
		if sample.Hovered {
			t.Errorf("box %d spawned hovered", i)
		}
	}
}

func TestLabelsCycleBeyondList(t *testing.T) {
	cfg := loadConfig(t)
	cfg.Boxes.Count = 5
	s := New(cfg, 1, testViewport)

	samples := s.Samples()
	if samples[4].Label != "Josh" {
		t.Errorf("fifth box should reuse %q, got %q", "Josh", samples[4].Label)
	}
}

func TestBoxesCarryLabelsAndLayers(t *testing.T) {
	cfg := loadConfig(t)
	s := New(cfg, 3, testViewport)

	views := s.Boxes()
	if len(views) != 4 {
		t.Fatalf("expected 4 views, got %d", len(views))
	}

	seen := map[string]bool{}
	for _, v := range views {
		if v.Label.Text == "" {
			t.Error("box without label")
		}
		seen[v.Label.Text] = true
		if v.Pos.Z != 990 {
			t.Errorf("expected box layer 990, got %f", v.Pos.Z)
		}
		if v.Label.OffsetZ != 1 {
			t.Errorf("expected label offset 1, got %f", v.Label.OffsetZ)
		}
		if v.Sprite.Width != 200 || v.Sprite.Height != 80 {
			t.Errorf("unexpected sprite %vx%v", v.Sprite.Width, v.Sprite.Height)
		}
	}
	if len(seen) != 4 {
		t.Errorf("expected 4 distinct labels, got %v", seen)
	}
}

func TestCameraSpawn(t *testing.T) {
	s := New(loadConfig(t), 0, testViewport)
	cam := s.Camera()

	if cam.X != 400 || cam.Y != 300 || cam.Z != 1000 {
		t.Errorf("expected camera at (400, 300, 1000), got (%f, %f, %f)", cam.X, cam.Y, cam.Z)
	}
	if cam.Scale != 1 {
		t.Errorf("expected scale 1, got %v", cam.Scale)
	}
}

func TestSameSeedIsDeterministic(t *testing.T) {
	cfg := loadConfig(t)
	a := New(cfg, 99, testViewport)
	b := New(cfg, 99, testViewport)

	for i := 0; i < 120; i++ {
		a.Step(camera.Input{}, 1.0/60.0, testViewport)
		b.Step(camera.Input{}, 1.0/60.0, testViewport)
	}

	sa, sb := a.Samples(), b.Samples()
	for i := range sa {
		if sa[i] != sb[i] {
			t.Errorf("box %d diverged: %+v vs %+v", i, sa[i], sb[i])
		}
	}
}

func TestStepKeepsBoxesInBounds(t *testing.T) {
	cfg := loadConfig(t)
	cfg.Boxes.Count = 12
	s := New(cfg, 5, testViewport)

	vp := testViewport
	for i := 0; i < 2000; i++ {
		dt := float32(1.0 / 60.0)
		if i%97 == 0 {
			dt = 2.5
		}
		if i == 1000 {
			vp = systems.Viewport{Width: 500, Height: 900}
		}
		s.Step(camera.Input{}, dt, vp)

		b := vp.Inset(float32(cfg.Boxes.ConfineSize))
		for _, sample := range s.Samples() {
			if !b.Contains(sample.X, sample.Y) {
				t.Fatalf("tick %d: %s at (%f, %f) outside %+v", s.Tick(), sample.Label, sample.X, sample.Y, b)
			}
		}
	}

	if s.Tick() != 2000 {
		t.Errorf("expected 2000 ticks, got %d", s.Tick())
	}
	if s.Viewport() != vp || s.Camera().ViewportW != 500 {
		t.Error("resize was not propagated")
	}
}

func TestStepDrivesCamera(t *testing.T) {
	cfg := loadConfig(t)
	s := New(cfg, 0, testViewport)

	s.Step(camera.Input{Right: true, Up: true, ZoomIn: true}, 0.5, testViewport)

	cam := s.Camera()
	if cam.X != 410 || cam.Y != 290 {
		t.Errorf("expected pan to (410, 290), got (%f, %f)", cam.X, cam.Y)
	}
	if math.Abs(cam.Scale-math.Exp(-0.5)) > 1e-6 {
		t.Errorf("expected scale e^-0.5, got %v", cam.Scale)
	}

	// Input does not latch between ticks.
	s.Step(camera.Input{}, 0.5, testViewport)
	if cam.X != 410 {
		t.Errorf("camera moved without input: %f", cam.X)
	}
}

func TestPassOrder(t *testing.T) {
	s := New(loadConfig(t), 0, testViewport)

	want := []string{
		systems.PassCameraPan,
		systems.PassCameraZoom,
		systems.PassMotion,
		systems.PassReflect,
		systems.PassConfine,
	}
	got := s.PassIDs()
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("pass %d: expected %s, got %s", i, want[i], got[i])
		}
	}

	s.Step(camera.Input{}, 1.0/60.0, testViewport)
	if _, ok := s.Perf().Stats().PhaseAvg[systems.PassMotion]; !ok {
		t.Error("expected motion pass to be timed")
	}
}

func TestBoxSpeedOverride(t *testing.T) {
	cfg := loadConfig(t)
	s := New(cfg, 8, testViewport)
	s.SetBoxSpeed(0)

	before := s.Samples()
	s.Step(camera.Input{}, 1, testViewport)
	after := s.Samples()

	b := testViewport.Inset(float32(cfg.Boxes.ConfineSize))
	for i := range before {
		// With zero speed only the clamp can move a box.
		wantX := before[i].X
		if wantX < b.XMin {
			wantX = b.XMin
		} else if wantX > b.XMax {
			wantX = b.XMax
		}
		if after[i].X != wantX {
			t.Errorf("box %d moved from %f to %f at zero speed", i, before[i].X, after[i].X)
		}
	}
	if s.BoxSpeed() != 0 {
		t.Errorf("expected speed 0, got %f", s.BoxSpeed())
	}
}

func TestNewPanicsOnEmptyViewport(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for zero viewport")
		}
	}()
	New(loadConfig(t), 0, systems.Viewport{})
}
