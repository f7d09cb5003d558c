package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// DebugState is the tweakable state shown in the debug panel.
type DebugState struct {
	Paused      bool
	Steps       int     // ticks per frame
	BoxSpeed    float32 // pixels per second
	ResetCamera bool    // set for one frame when the reset button is clicked
}

// Limits for the debug panel sliders.
const (
	MaxSteps    = 10
	MaxBoxSpeed = 1000
)

// DebugPanel renders raygui controls that edit a DebugState in place.
type DebugPanel struct {
	theme Theme
	x, y  float32
}

// NewDebugPanel creates a debug panel anchored at (x, y).
func NewDebugPanel(x, y float32) *DebugPanel {
	return &DebugPanel{theme: DefaultTheme(), x: x, y: y}
}

// SetPosition updates the panel position.
func (d *DebugPanel) SetPosition(x, y float32) {
	d.x = x
	d.y = y
}

// Draw renders the panel and applies any widget changes to s.
func (d *DebugPanel) Draw(s *DebugState) {
	const width = 240
	t := d.theme
	drawPanel(t, int32(d.x), int32(d.y), width, 170)

	x := d.x + float32(t.Padding)
	y := d.y + float32(t.Padding)

	rl.DrawText("Debug", int32(x), int32(y), t.HeaderFontSize, rl.White)
	y += 24

	pauseText := "Pause"
	if s.Paused {
		pauseText = "Resume"
	}
	if gui.Button(rl.Rectangle{X: x, Y: y, Width: 100, Height: 24}, pauseText) {
		s.Paused = !s.Paused
	}
	s.ResetCamera = gui.Button(rl.Rectangle{X: x + 110, Y: y, Width: 100, Height: 24}, "Reset Camera")
	y += 34

	rl.DrawText(fmt.Sprintf("Steps per frame: %d", s.Steps), int32(x), int32(y), t.FontSize, t.LabelColor)
	y += 14
	steps := gui.SliderBar(
		rl.Rectangle{X: x + 20, Y: y, Width: width - 60, Height: 16},
		"1", fmt.Sprint(MaxSteps),
		float32(s.Steps), 1, MaxSteps,
	)
	s.Steps = int(steps + 0.5)
	y += 26

	rl.DrawText(fmt.Sprintf("Box speed: %.0f px/s", s.BoxSpeed), int32(x), int32(y), t.FontSize, t.LabelColor)
	y += 14
	s.BoxSpeed = gui.SliderBar(
		rl.Rectangle{X: x + 20, Y: y, Width: width - 60, Height: 16},
		"0", fmt.Sprint(MaxBoxSpeed),
		s.BoxSpeed, 0, MaxBoxSpeed,
	)
}
