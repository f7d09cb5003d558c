package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/textboxes/ui"
)

// Draw renders the game state.
func (g *Game) Draw() {
	g.sim.Perf().RecordFrame()

	rl.BeginDrawing()
	rl.ClearBackground(rl.DarkGray)

	cam := g.sim.Camera()
	rl.BeginMode2D(rl.Camera2D{
		Offset: rl.Vector2{X: g.screenWidth / 2, Y: g.screenHeight / 2},
		Target: rl.Vector2{X: cam.X, Y: cam.Y},
		Zoom:   cam.Magnification(),
	})

	g.boxRenderer.Draw(g.sim.Boxes())

	rl.EndMode2D()

	g.drawUI()

	rl.EndDrawing()
}

// drawUI renders screen-space overlays.
func (g *Game) drawUI() {
	cam := g.sim.Camera()
	g.hud.Draw(ui.HUDData{
		Title:        g.cfg.Screen.Title,
		BoxCount:     g.sim.BoxCount(),
		Tick:         g.sim.Tick(),
		Speed:        g.stepsPerUpdate,
		FPS:          rl.GetFPS(),
		Paused:       g.paused,
		CameraX:      cam.X,
		CameraY:      cam.Y,
		CameraScale:  cam.Scale,
		ScreenWidth:  int32(g.screenWidth),
		ScreenHeight: int32(g.screenHeight),
	})

	if g.showPerf {
		g.perfPanel.Draw(g.sim.Perf().Stats())
	}

	if g.showDebug {
		state := ui.DebugState{
			Paused:   g.paused,
			Steps:    g.stepsPerUpdate,
			BoxSpeed: g.sim.BoxSpeed(),
		}
		g.debugPanel.Draw(&state)
		g.applyDebugState(&state)
	}

	g.hud.DrawControls(int32(g.screenHeight),
		"Arrows: pan | PgUp/PgDn: zoom | Home: reset | Space: pause | </>: speed | F1: debug | F2: perf | F11: fullscreen")
}
