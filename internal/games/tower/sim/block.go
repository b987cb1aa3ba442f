package sim

// Block is a landed or moving block in logical frame units.
// Squash and Flash are visual timers that decay after landing.
type Block struct {
	X, Y  float64
	W, H  float64
	Color int // index into the theme palette, modulo its length

	Squash float64 // 1 on landing, decays to 0
	Flash  float64 // border flash alpha on a perfect landing
}

// Right returns the x-coordinate of the right edge.
func (b Block) Right() float64 {
	return b.X + b.W
}

// Center returns the horizontal midpoint.
func (b Block) Center() float64 {
	return b.X + b.W/2
}

// FallingPiece is the trimmed or missed remainder of a drop.
type FallingPiece struct {
	Block
	VY float64
}

// update integrates gravity and reports whether the piece is still visible.
func (p *FallingPiece) update(dt, gravity, frameH, cameraY float64) bool {
	p.VY += gravity * dt
	p.Y += p.VY * dt
	return p.Y <= frameH+100-cameraY
}
