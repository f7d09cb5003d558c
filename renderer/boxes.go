package renderer

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/textboxes/sim"
	"github.com/pthm-cable/textboxes/ui/textwrap"
)

const labelSpacing = 1

// BoxRenderer draws the backdrop and the text boxes in world space.
type BoxRenderer struct {
	fontPath string
	fontSize int32
	font     rl.Font
	ownsFont bool

	// Backdrop covers the viewport the demo started with
	backdropW, backdropH float32

	initialized bool
}

// NewBoxRenderer creates a renderer. An empty fontPath uses the raylib default font.
func NewBoxRenderer(fontPath string, fontSize int32, backdropW, backdropH float32) *BoxRenderer {
	return &BoxRenderer{
		fontPath:  fontPath,
		fontSize:  fontSize,
		backdropW: backdropW,
		backdropH: backdropH,
	}
}

// Init loads the label font (must be called after raylib window is created).
func (r *BoxRenderer) Init() {
	if r.initialized {
		return
	}
	r.initialized = true

	r.font = rl.GetFontDefault()
	if r.fontPath == "" {
		return
	}

	f := rl.LoadFontEx(r.fontPath, r.fontSize, nil)
	if f.BaseSize == 0 {
		slog.Warn("failed to load font, using default", "path", r.fontPath)
		return
	}
	rl.SetTextureFilter(f.Texture, rl.FilterBilinear)
	r.font = f
	r.ownsFont = true
}

// Draw renders the backdrop, then each box with its label on top.
// Boxes are expected back to front. Call inside BeginMode2D.
func (r *BoxRenderer) Draw(boxes []sim.BoxView) {
	if !r.initialized {
		r.Init()
	}

	rl.DrawRectangleRec(rl.Rectangle{Width: r.backdropW, Height: r.backdropH}, rl.Black)

	for _, b := range boxes {
		r.drawBox(b)
	}
}

// drawBox draws one box centered on its position with its wrapped label.
func (r *BoxRenderer) drawBox(b sim.BoxView) {
	w, h := b.Sprite.Width, b.Sprite.Height
	rl.DrawRectangleRec(rl.Rectangle{
		X:      b.Pos.X - w/2,
		Y:      b.Pos.Y - h/2,
		Width:  w,
		Height: h,
	}, b.Sprite.Color)

	if b.Label.Text == "" {
		return
	}

	size := b.Label.FontSize
	measure := func(s string) float32 {
		return rl.MeasureTextEx(r.font, s, size, labelSpacing).X
	}
	lines := textwrap.Wrap(b.Label.Text, w, measure)

	// Lines are left-aligned inside a block centered on the box
	x := b.Pos.X - textwrap.Widest(lines, measure)/2
	y := b.Pos.Y - float32(len(lines))*size/2
	for _, line := range lines {
		rl.DrawTextEx(r.font, line, rl.Vector2{X: x, Y: y}, size, labelSpacing, b.Label.Color)
		y += size
	}
}

// Unload frees resources.
func (r *BoxRenderer) Unload() {
	if r.ownsFont {
		rl.UnloadFont(r.font)
		r.ownsFont = false
	}
	r.initialized = false
}
