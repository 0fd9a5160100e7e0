package system

import "github.com/younwookim/dodge/internal/domain/entity"

// Default hitbox padding applied to every entity's raw bounding rect
const (
	DefaultPadX = 7
	DefaultPadY = 13
)

// Padding is the inward shrink applied to each side of a raw rect
type Padding struct {
	X, Y float64
}

// DefaultPadding returns the standard 7/13 padding
func DefaultPadding() Padding {
	return Padding{X: DefaultPadX, Y: DefaultPadY}
}

// Hitbox is the padded rectangle used for contact tests.
// It is computed fresh every tick and never stored.
type Hitbox struct {
	Left, Right, Top, Bottom float64
}

// Empty reports whether the hitbox has no area
func (h Hitbox) Empty() bool {
	return h.Right <= h.Left || h.Bottom <= h.Top
}

// ToHitbox shrinks a raw rect by the default padding
func ToHitbox(r entity.Rect) Hitbox {
	return ToHitboxWithPadding(r, DefaultPadding())
}

// ToHitboxWithPadding shrinks a raw rect by pad on every side.
// A rect too small for the padding collapses to a zero-area hitbox at its centre.
func ToHitboxWithPadding(r entity.Rect, pad Padding) Hitbox {
	h := Hitbox{
		Left:   r.Left + pad.X,
		Right:  r.Right - pad.X,
		Top:    r.Top + pad.Y,
		Bottom: r.Bottom - pad.Y,
	}
	if h.Right < h.Left {
		mid := (h.Left + h.Right) / 2
		h.Left, h.Right = mid, mid
	}
	if h.Bottom < h.Top {
		mid := (h.Top + h.Bottom) / 2
		h.Top, h.Bottom = mid, mid
	}
	return h
}

// Collides reports whether two hitboxes overlap.
// Touching edges do not count and empty hitboxes never collide.
func Collides(a, b Hitbox) bool {
	if a.Empty() || b.Empty() {
		return false
	}
	return a.Left < b.Right &&
		a.Right > b.Left &&
		a.Top < b.Bottom &&
		a.Bottom > b.Top
}
