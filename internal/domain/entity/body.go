package entity

// Body represents the physical body of an entity.
// X and Y are the top-left corner in play-area units.
type Body struct {
	X, Y   float64
	W, H   float64
	VX, VY float64 // units per tick
}

// Rect returns the raw bounding rectangle of the body
func (b *Body) Rect() Rect {
	return Rect{
		Left:   b.X,
		Top:    b.Y,
		Right:  b.X + b.W,
		Bottom: b.Y + b.H,
	}
}

// SetPos moves the body's top-left corner to (x, y)
func (b *Body) SetPos(x, y float64) {
	b.X = x
	b.Y = y
}

// ApplyVelocity moves the body by one tick of its velocity
func (b *Body) ApplyVelocity() {
	b.X += b.VX
	b.Y += b.VY
}

// Clamp keeps the body fully inside a w x h area.
// A body larger than the area is pinned to the top-left corner.
func (b *Body) Clamp(w, h float64) {
	if b.X+b.W > w {
		b.X = w - b.W
	}
	if b.Y+b.H > h {
		b.Y = h - b.H
	}
	if b.X < 0 {
		b.X = 0
	}
	if b.Y < 0 {
		b.Y = 0
	}
}
