// Package gameover provides the end screen shown after the last life is lost.
package gameover

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/younwookim/dodge/internal/application/scene"
	"github.com/younwookim/dodge/internal/application/screen"
	"github.com/younwookim/dodge/internal/application/system"
	"github.com/younwookim/dodge/internal/infrastructure/logging"
)

var colorOverlay = color.RGBA{100, 0, 0, 255}

// Stats is what the end screen reports about the finished session
type Stats interface {
	Ticks() int
	Score() int
}

// GameOver waits for Space or Enter and restarts play
type GameOver struct {
	board   *screen.Board
	input   system.InputSource
	restart scene.Scene
	stats   Stats
	logger  *log.Logger
}

// New creates the end scene. restart is entered on confirm and is expected to
// start a fresh session in its OnEnter.
func New(board *screen.Board, input system.InputSource, restart scene.Scene, stats Stats, logger *log.Logger) *GameOver {
	return &GameOver{
		board:   board,
		input:   input,
		restart: restart,
		stats:   stats,
		logger:  logging.OrDiscard(logger),
	}
}

// Update implements scene.Scene
func (g *GameOver) Update(_ float64) (scene.Scene, error) {
	in := g.input.Poll()
	if in.Quit {
		return nil, ebiten.Termination
	}
	if in.Confirm {
		g.logger.Info("restarting")
		return g.restart, nil
	}
	return nil, nil
}

// Draw implements scene.Scene
func (g *GameOver) Draw(img *ebiten.Image) {
	img.Fill(colorOverlay)
	w, h := g.board.Size()
	ebitenutil.DebugPrintAt(img, g.summary(), int(w)/2-80, int(h)/2-40)
}

func (g *GameOver) summary() string {
	text := "GAME OVER\n\n" + g.board.Lives()
	if g.stats != nil {
		text += fmt.Sprintf("\nScore: %d\nSurvived %d frames", g.stats.Score(), g.stats.Ticks())
	}
	return text + "\n\nPress SPACE or ENTER to play again"
}

// OnEnter makes sure the end screen is the visible one
func (g *GameOver) OnEnter() {
	if !g.board.Visible(screen.End) {
		g.board.Hide(screen.Play)
		g.board.Show(screen.End)
	}
}

// OnExit is a no-op; the next session hides the end screen
func (g *GameOver) OnExit() {}
