package components

import (
	"image/color"

	"github.com/mlange-42/ark/ecs"
)

// Sprite holds the drawn rectangle of a text box.
// The footprint used for bouncing is shared by all boxes and lives in config.
type Sprite struct {
	Width, Height float32
	Color         color.RGBA
}

// Label is the text child of a text box. It is parented for rendering
// offset only and no update pass touches it.
type Label struct {
	Text     string
	Parent   ecs.Entity
	OffsetZ  float32
	FontSize float32
	Color    color.RGBA
}
