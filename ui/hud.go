package ui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/textboxes/systems"
	"github.com/pthm-cable/textboxes/telemetry"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Title        string
	BoxCount     int
	Tick         int32
	Speed        int
	FPS          int32
	Paused       bool
	CameraX      float32
	CameraY      float32
	CameraScale  float64
	ScreenWidth  int32
	ScreenHeight int32
}

// HUD renders the main heads-up display.
type HUD struct {
	theme Theme
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{theme: DefaultTheme()}
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData) {
	rl.DrawText(data.Title, 10, 10, 20, rl.White)

	rl.DrawText(
		fmt.Sprintf("Boxes: %d | Tick: %d | Speed: %dx | FPS: %d", data.BoxCount, data.Tick, data.Speed, data.FPS),
		10, 35, 16, h.theme.LabelColor,
	)
	rl.DrawText(
		fmt.Sprintf("Camera: (%.0f, %.0f) scale %.2f", data.CameraX, data.CameraY, data.CameraScale),
		10, 55, 16, h.theme.LabelColor,
	)

	if data.Paused {
		rl.DrawText("PAUSED", 10, 75, 16, h.theme.SectionHeader)
	}
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-25, 14, rl.Gray)
}

// PerfPanel renders per-pass timings.
type PerfPanel struct {
	theme    Theme
	registry *systems.SystemRegistry
	x, y     int32
}

// NewPerfPanel creates a new performance panel.
func NewPerfPanel(x, y int32, registry *systems.SystemRegistry) *PerfPanel {
	return &PerfPanel{
		theme:    DefaultTheme(),
		registry: registry,
		x:        x,
		y:        y,
	}
}

// SetPosition updates the panel position.
func (p *PerfPanel) SetPosition(x, y int32) {
	p.x = x
	p.y = y
}

// Draw renders the performance panel.
func (p *PerfPanel) Draw(stats telemetry.PerfStats) {
	t := p.theme
	names := stats.SortedPhases()
	height := t.Padding*2 + 40 + int32(len(names))*(t.LineHeight-2)
	drawPanel(t, p.x, p.y, 260, height)

	x := p.x + t.Padding
	y := p.y + t.Padding

	rl.DrawText("Pass Timings", x, y, t.HeaderFontSize, rl.White)
	y += 20

	rl.DrawText(fmt.Sprintf("Tick: %s", stats.AvgTickDuration.Round(time.Microsecond)), x, y, 14, t.SectionHeader)
	y += 16

	for _, name := range names {
		pct := stats.PhasePct[name]

		color := t.LabelColor
		if pct > 50 {
			color = t.HotColor
		} else if pct > 25 {
			color = t.WarnColor
		}

		rl.DrawText(
			fmt.Sprintf("%-12s %8s %5.1f%%", p.registry.GetName(name), stats.PhaseAvg[name], pct),
			x, y, t.FontSize, color,
		)
		y += t.LineHeight - 2
	}
}
