package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/textboxes/camera"
	"github.com/pthm-cable/textboxes/ui"
)

// handleInput processes keyboard input and returns the camera keys held this frame.
func (g *Game) handleInput() camera.Input {
	// Window resize propagation
	g.handleResize()

	// Fullscreen toggle
	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}

	// Steps-per-update control with < > keys (comma and period)
	if rl.IsKeyPressed(rl.KeyComma) && g.stepsPerUpdate > 1 {
		g.stepsPerUpdate--
	}
	if rl.IsKeyPressed(rl.KeyPeriod) && g.stepsPerUpdate < ui.MaxSteps {
		g.stepsPerUpdate++
	}

	// Panel toggles
	if rl.IsKeyPressed(rl.KeyF1) {
		g.showDebug = !g.showDebug
	}
	if rl.IsKeyPressed(rl.KeyF2) {
		g.showPerf = !g.showPerf
	}

	// Home key to reset camera
	if rl.IsKeyPressed(rl.KeyHome) {
		g.sim.Camera().Reset()
	}

	return pollInput()
}

// pollInput reads the held camera keys. Arrows pan, PageUp zooms in,
// PageDown zooms out.
func pollInput() camera.Input {
	return camera.Input{
		Up:      rl.IsKeyDown(rl.KeyUp),
		Down:    rl.IsKeyDown(rl.KeyDown),
		Left:    rl.IsKeyDown(rl.KeyLeft),
		Right:   rl.IsKeyDown(rl.KeyRight),
		ZoomIn:  rl.IsKeyDown(rl.KeyPageUp),
		ZoomOut: rl.IsKeyDown(rl.KeyPageDown),
	}
}

// handleResize checks for window resize and propagates new dimensions.
// The simulation picks up the new viewport on its next step.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	if w == g.screenWidth && h == g.screenHeight {
		return
	}
	g.screenWidth = w
	g.screenHeight = h

	if g.perfPanel != nil {
		g.perfPanel.SetPosition(int32(w)-270, 10)
	}
}

// applyDebugState copies debug panel edits back into the game.
func (g *Game) applyDebugState(s *ui.DebugState) {
	g.paused = s.Paused
	g.stepsPerUpdate = max(s.Steps, 1)
	if s.BoxSpeed != g.sim.BoxSpeed() {
		g.sim.SetBoxSpeed(s.BoxSpeed)
	}
	if s.ResetCamera {
		g.sim.Camera().Reset()
	}
}
