// Package intro provides the title screen shown before the first session.
package intro

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/younwookim/dodge/internal/application/scene"
	"github.com/younwookim/dodge/internal/application/screen"
	"github.com/younwookim/dodge/internal/application/system"
)

var colorBG = color.RGBA{20, 30, 50, 255}

// Intro waits for Space or Enter, then hands over to the playing scene
type Intro struct {
	board *screen.Board
	input system.InputSource
	next  scene.Scene
	title string
}

// New creates the intro scene. next is entered on confirm.
func New(board *screen.Board, input system.InputSource, next scene.Scene, title string) *Intro {
	return &Intro{board: board, input: input, next: next, title: title}
}

// Update implements scene.Scene
func (s *Intro) Update(_ float64) (scene.Scene, error) {
	in := s.input.Poll()
	if in.Quit {
		return nil, ebiten.Termination
	}
	if in.Confirm {
		return s.next, nil
	}
	return nil, nil
}

// Draw implements scene.Scene
func (s *Intro) Draw(img *ebiten.Image) {
	img.Fill(colorBG)
	w, h := s.board.Size()
	x, y := int(w)/2-80, int(h)/2-40
	ebitenutil.DebugPrintAt(img, s.title, x, y)
	ebitenutil.DebugPrintAt(img, "Dodge the rocks and the birds.", x, y+20)
	ebitenutil.DebugPrintAt(img, "Arrows/WASD to move", x, y+40)
	ebitenutil.DebugPrintAt(img, "Press SPACE or ENTER to start", x, y+70)
}

// OnEnter shows the intro screen
func (s *Intro) OnEnter() {
	s.board.Show(screen.Intro)
}

// OnExit is a no-op; starting the session hides the intro
func (s *Intro) OnExit() {}
