// Package screen is the presentation boundary between the game core and the
// scenes that draw it. A Board tracks which named screens are visible, the
// play-area size, the lives counter text and the sprites attached to the play
// surface. Scenes read it every frame; the core only writes to it.
package screen

import "github.com/younwookim/dodge/internal/domain/entity"

// ID names one of the game's screens
type ID int

const (
	Intro ID = iota
	Play
	End
)

// String returns the screen name
func (id ID) String() string {
	switch id {
	case Intro:
		return "intro"
	case Play:
		return "play"
	case End:
		return "end"
	default:
		return "unknown"
	}
}

// Board is the in-memory presentation state shared by the core and the scenes
type Board struct {
	visible map[ID]bool
	width   float64
	height  float64
	lives   string
	sprites []entity.Sprite
}

// NewBoard creates a board showing the intro screen with a w x h play area
func NewBoard(w, h float64) *Board {
	return &Board{
		visible: map[ID]bool{Intro: true},
		width:   w,
		height:  h,
	}
}

// Show makes a screen visible
func (b *Board) Show(id ID) {
	b.visible[id] = true
}

// Hide makes a screen invisible
func (b *Board) Hide(id ID) {
	b.visible[id] = false
}

// Visible reports whether a screen is shown
func (b *Board) Visible(id ID) bool {
	return b.visible[id]
}

// Current returns the top-most visible screen, End over Play over Intro.
// With nothing visible it returns Intro.
func (b *Board) Current() ID {
	for _, id := range []ID{End, Play, Intro} {
		if b.visible[id] {
			return id
		}
	}
	return Intro
}

// SetPlayArea sizes the play surface
func (b *Board) SetPlayArea(w, h float64) {
	b.width = w
	b.height = h
}

// Size implements entity.Surface
func (b *Board) Size() (float64, float64) {
	return b.width, b.height
}

// SetLives replaces the lives counter text
func (b *Board) SetLives(text string) {
	b.lives = text
}

// Lives returns the lives counter text
func (b *Board) Lives() string {
	return b.lives
}

// Attach implements entity.Surface
func (b *Board) Attach(s entity.Sprite) {
	b.sprites = append(b.sprites, s)
}

// Detach implements entity.Surface
func (b *Board) Detach(s entity.Sprite) {
	for i, sp := range b.sprites {
		if sp == s {
			b.sprites = append(b.sprites[:i], b.sprites[i+1:]...)
			return
		}
	}
}

// Sprites returns the attached sprites in attach order
func (b *Board) Sprites() []entity.Sprite {
	return b.sprites
}

// Clear detaches every sprite
func (b *Board) Clear() {
	b.sprites = nil
}
