package components

// Position represents an entity's world position.
// Z is a fixed depth layer used for draw ordering only.
type Position struct {
	X, Y, Z float32
}
