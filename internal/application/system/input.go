package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/dodge/internal/domain/entity"
)

// InputState holds one frame of input
type InputState struct {
	Move    entity.Input
	Pause   bool // Escape pressed this frame
	Confirm bool // Space or Enter pressed this frame
	Quit    bool
}

// InputSource produces one InputState per frame
type InputSource interface {
	Poll() InputState
}

// InputSystem reads the keyboard through ebiten
type InputSystem struct{}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// Poll reads the current input state. Arrow keys and WASD both steer.
func (s *InputSystem) Poll() InputState {
	return InputState{
		Move: entity.Input{
			Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
			Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
			Up:    ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW),
			Down:  ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS),
		},
		Pause:   inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		Confirm: inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter),
		Quit:    inpututil.IsKeyJustPressed(ebiten.KeyQ),
	}
}

// StaticInput replays the same state every frame
type StaticInput InputState

// Poll returns the fixed state
func (s StaticInput) Poll() InputState {
	return InputState(s)
}
