// Package ui draws the HUD, the perf panel and the debug panel.
package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// Theme holds panel colors and metrics.
type Theme struct {
	PanelBg        rl.Color
	PanelBorder    rl.Color
	SectionHeader  rl.Color
	LabelColor     rl.Color
	WarnColor      rl.Color
	HotColor       rl.Color
	Padding        int32
	LineHeight     int32
	FontSize       int32
	HeaderFontSize int32
}

// DefaultTheme returns the standard dark panel theme.
func DefaultTheme() Theme {
	return Theme{
		PanelBg:        rl.Color{R: 20, G: 25, B: 30, A: 240},
		PanelBorder:    rl.Color{R: 60, G: 70, B: 80, A: 255},
		SectionHeader:  rl.Yellow,
		LabelColor:     rl.LightGray,
		WarnColor:      rl.Orange,
		HotColor:       rl.Red,
		Padding:        10,
		LineHeight:     16,
		FontSize:       12,
		HeaderFontSize: 16,
	}
}

// drawPanel draws a bordered panel background.
func drawPanel(t Theme, x, y, w, h int32) {
	rl.DrawRectangle(x, y, w, h, t.PanelBg)
	rl.DrawRectangleLines(x, y, w, h, t.PanelBorder)
}
