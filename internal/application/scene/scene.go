// Package scene defines the Scene interface for the game's screens.
//
// The intro, playing and game-over screens each implement Scene. The
// presentation state they share lives on a screen.Board; a scene owns only
// its own update logic and rendering.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene is one screen of the game.
//
// The game delegates Update and Draw calls to the current scene.
// Scene transitions are handled by returning a new Scene from Update.
type Scene interface {
	// Update runs one frame.
	// dt is the frame time in seconds (1/framerate).
	// Returns the next scene if a transition is needed, nil to stay on current scene.
	// Returns an error to terminate the game; ebiten.Termination ends it cleanly.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called every time the scene becomes current.
	// The playing scene starts a new session here.
	OnEnter()

	// OnExit is called when leaving this scene.
	OnExit()
}
