// Package game provides the ebiten.Game that owns the current Scene and
// switches between the intro, playing and game-over screens.
package game

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/dodge/internal/application/scene"
	"github.com/younwookim/dodge/internal/infrastructure/logging"
)

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current     scene.Scene
	screenW     int
	screenH     int
	dt          float64
	transitions int
	logger      *log.Logger
}

// New creates a new Game with the given initial scene.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH int, logger *log.Logger) *Game {
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / 60.0, // Default to 60 FPS
		logger:  logging.OrDiscard(logger),
	}
	g.current.OnEnter()
	return g
}

// Update updates the current scene and handles scene transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	next, err := g.current.Update(g.dt)
	if err != nil {
		g.current.OnExit()
		if errors.Is(err, ebiten.Termination) {
			g.logger.Info("quit requested")
		}
		return err
	}

	// Handle scene transition
	if next != nil {
		g.logger.Debug("scene transition", "from", sceneName(g.current), "to", sceneName(next))
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
		g.transitions++
	}

	return nil
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// SetFramerate sets the delta time handed to scenes to 1/fps.
func (g *Game) SetFramerate(fps int) {
	if fps > 0 {
		g.dt = 1.0 / float64(fps)
	}
}

// Current returns the active scene
func (g *Game) Current() scene.Scene {
	return g.current
}

// Transitions counts scene switches since New
func (g *Game) Transitions() int {
	return g.transitions
}

func sceneName(s scene.Scene) string {
	return fmt.Sprintf("%T", s)
}
