package system

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/younwookim/dodge/internal/application/screen"
	"github.com/younwookim/dodge/internal/application/session"
	"github.com/younwookim/dodge/internal/application/state"
	"github.com/younwookim/dodge/internal/domain/entity"
	"github.com/younwookim/dodge/internal/infrastructure/logging"
)

// Player is the avatar driven by the loop
type Player interface {
	Advance()
	BoundingRect() entity.Rect
	ResetPosition()
}

// Presentation is the screen boundary the core reports transitions to
type Presentation interface {
	Show(id screen.ID)
	Hide(id screen.ID)
	SetPlayArea(w, h float64)
	SetLives(text string)
}

// Stopper halts whatever is driving the session
type Stopper interface {
	Stop()
}

// LivesText formats the lives counter
func LivesText(lives int) string {
	return fmt.Sprintf("Lives: %d", lives)
}

// LivesManager decides what a confirmed collision costs
type LivesManager struct {
	player  Player
	view    Presentation
	stopper Stopper
	logger  *log.Logger
}

// NewLivesManager creates a lives manager.
// stopper may be nil when nothing needs halting on game-over.
func NewLivesManager(player Player, view Presentation, stopper Stopper, logger *log.Logger) *LivesManager {
	return &LivesManager{
		player:  player,
		view:    view,
		stopper: stopper,
		logger:  logging.OrDiscard(logger),
	}
}

// OnCollision takes one life. When none are left the session moves to
// game-over, the end screen replaces the play screen and the loop is stopped;
// otherwise the player is sent back to its start position.
// Sessions that are not active are left untouched.
func (m *LivesManager) OnCollision(s *session.GameSession) {
	if s.Phase != state.PhaseActive {
		return
	}

	s.Lives--
	m.view.SetLives(LivesText(s.Lives))
	m.logger.Info("life lost", "lives", s.Lives, "tick", s.Ticks)

	if s.Lives <= 0 {
		s.Finish()
		m.view.Hide(screen.Play)
		m.view.Show(screen.End)
		if m.stopper != nil {
			m.stopper.Stop()
		}
		m.logger.Info("game over", "ticks", s.Ticks, "seed", s.Seed)
		return
	}

	m.player.ResetPosition()
}
