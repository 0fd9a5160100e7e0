package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// fakeSurface is a fixed-size Surface that records attached sprites
type fakeSurface struct {
	w, h     float64
	attached []Sprite
	detached []Sprite
}

func newFakeSurface(w, h float64) *fakeSurface {
	return &fakeSurface{w: w, h: h}
}

func (s *fakeSurface) Size() (float64, float64) { return s.w, s.h }
func (s *fakeSurface) Attach(sp Sprite)         { s.attached = append(s.attached, sp) }
func (s *fakeSurface) Detach(sp Sprite)         { s.detached = append(s.detached, sp) }

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindPlayer, "player"},
		{KindGround, "ground"},
		{KindAerial, "aerial"},
		{Kind(42), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.kind.String())
		})
	}
}

func TestRect_Size(t *testing.T) {
	r := Rect{Left: 10, Top: 20, Right: 40, Bottom: 70}
	assert.Equal(t, 30.0, r.Width())
	assert.Equal(t, 50.0, r.Height())

	// Inverted rects report negative extents
	inv := Rect{Left: 10, Top: 10, Right: 5, Bottom: 0}
	assert.Less(t, inv.Width(), 0.0)
	assert.Less(t, inv.Height(), 0.0)
}
