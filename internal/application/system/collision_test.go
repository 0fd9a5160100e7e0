package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/younwookim/dodge/internal/domain/entity"
)

func hb(l, r, t, b float64) Hitbox {
	return Hitbox{Left: l, Right: r, Top: t, Bottom: b}
}

func TestCollides(t *testing.T) {
	tests := []struct {
		name string
		a, b Hitbox
		want bool
	}{
		{"clear overlap", hb(0, 10, 0, 10), hb(5, 15, 5, 15), true},
		{"shared vertical edge", hb(0, 10, 0, 10), hb(10, 20, 0, 10), false},
		{"shared horizontal edge", hb(0, 10, 0, 10), hb(0, 10, 10, 20), false},
		{"corner touch", hb(0, 10, 0, 10), hb(10, 20, 10, 20), false},
		{"contained", hb(0, 100, 0, 100), hb(40, 60, 40, 60), true},
		{"apart horizontally", hb(0, 10, 0, 10), hb(11, 20, 0, 10), false},
		{"apart vertically", hb(0, 10, 0, 10), hb(0, 10, 30, 40), false},
		{"overlap x only", hb(0, 10, 0, 10), hb(5, 15, 20, 30), false},
		{"identical", hb(3, 9, 3, 9), hb(3, 9, 3, 9), true},
		{"zero area inside other", hb(5, 5, 0, 10), hb(0, 10, 0, 10), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Collides(tt.a, tt.b))
			assert.Equal(t, tt.want, Collides(tt.b, tt.a), "collision must be symmetric")
		})
	}
}

func TestToHitbox(t *testing.T) {
	r := entity.Rect{Left: 100, Top: 200, Right: 160, Bottom: 280}
	got := ToHitbox(r)

	assert.Equal(t, hb(107, 153, 213, 267), got)
	assert.False(t, got.Empty())
}

func TestToHitboxWithPadding(t *testing.T) {
	r := entity.Rect{Left: 0, Top: 0, Right: 20, Bottom: 20}
	got := ToHitboxWithPadding(r, Padding{X: 2, Y: 3})
	assert.Equal(t, hb(2, 18, 3, 17), got)

	assert.Equal(t, hb(0, 20, 0, 20), ToHitboxWithPadding(r, Padding{}))
}

func TestToHitbox_Degenerate(t *testing.T) {
	tests := []struct {
		name string
		rect entity.Rect
	}{
		{"too narrow", entity.Rect{Left: 0, Top: 0, Right: 10, Bottom: 100}},
		{"too short", entity.Rect{Left: 0, Top: 0, Right: 100, Bottom: 20}},
		{"exactly padding", entity.Rect{Left: 0, Top: 0, Right: 14, Bottom: 26}},
		{"inverted input", entity.Rect{Left: 50, Top: 50, Right: 0, Bottom: 0}},
	}

	big := hb(-1000, 1000, -1000, 1000)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := ToHitbox(tt.rect)
			assert.True(t, h.Empty())
			assert.LessOrEqual(t, h.Left, h.Right)
			assert.LessOrEqual(t, h.Top, h.Bottom)
			assert.False(t, Collides(h, big))
			assert.False(t, Collides(big, h))
		})
	}
}
