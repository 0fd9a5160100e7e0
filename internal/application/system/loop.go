package system

import (
	"github.com/charmbracelet/log"
	"github.com/younwookim/dodge/internal/application/screen"
	"github.com/younwookim/dodge/internal/application/session"
	"github.com/younwookim/dodge/internal/infrastructure/logging"
)

// Rules are the fixed numbers a session starts with
type Rules struct {
	Lives      int
	PlayWidth  float64
	PlayHeight float64
	Padding    Padding // zero keeps DefaultPadding
	Waves      []Wave
}

// Loop drives one session frame by frame
type Loop struct {
	session *session.GameSession
	player  Player
	view    Presentation
	spawner *Spawner
	lives   *LivesManager
	padding Padding
	running bool
	logger  *log.Logger
}

// NewLoop creates a stopped loop for the session
func NewLoop(s *session.GameSession, player Player, view Presentation, spawner *Spawner, logger *log.Logger) *Loop {
	l := &Loop{
		session: s,
		player:  player,
		view:    view,
		spawner: spawner,
		padding: DefaultPadding(),
		logger:  logging.OrDiscard(logger),
	}
	l.lives = NewLivesManager(player, view, l, l.logger)
	return l
}

// Start activates the session: the play screen replaces the others, the play
// area is sized, every wave is scheduled, the lives counter is shown and the
// loop begins running. Returns false if the session could not be started.
func (l *Loop) Start(rules Rules) bool {
	if rules.Lives <= 0 || !l.session.Start(rules.Lives) {
		return false
	}

	l.view.Hide(screen.Intro)
	l.view.Hide(screen.End)
	l.view.Show(screen.Play)
	l.view.SetPlayArea(rules.PlayWidth, rules.PlayHeight)

	for _, w := range rules.Waves {
		l.spawner.Schedule(w)
	}

	l.view.SetLives(LivesText(l.session.Lives))
	if rules.Padding != (Padding{}) {
		l.padding = rules.Padding
	}
	l.running = true

	l.logger.Info("session started", "seed", l.session.Seed, "lives", l.session.Lives,
		"spawns", l.session.ScheduledSpawnCount)
	return true
}

// Tick runs one frame: all movement first, then collision tests against
// ground obstacles followed by aerial ones. Scanning stops as soon as the
// session is over. A torn down session is never touched.
// Returns true if the loop should run again next frame.
func (l *Loop) Tick() bool {
	if !l.running {
		return false
	}
	if l.session.IsOver() || !l.session.Alive() {
		l.running = false
		return false
	}

	l.session.Ticks++

	l.player.Advance()
	for _, o := range l.session.Obstacles {
		o.Advance()
	}
	for _, o := range l.session.AerialObstacles {
		o.Advance()
	}

	if l.checkGroup(l.session.Obstacles) {
		l.checkGroup(l.session.AerialObstacles)
	}

	if l.session.IsOver() {
		l.running = false
		return false
	}
	return true
}

// checkGroup reports each colliding obstacle once.
// Returns false once the session is over.
func (l *Loop) checkGroup(group []session.Obstacle) bool {
	for _, o := range group {
		// player hitbox is recomputed per obstacle, a reset may have moved it
		player := ToHitboxWithPadding(l.player.BoundingRect(), l.padding)
		if !Collides(player, ToHitboxWithPadding(o.BoundingRect(), l.padding)) {
			continue
		}
		l.lives.OnCollision(l.session)
		if l.session.IsOver() {
			return false
		}
	}
	return true
}

// Stop halts the loop; the next Tick does nothing
func (l *Loop) Stop() {
	l.running = false
}

// Running reports whether the loop will run on the next frame
func (l *Loop) Running() bool {
	return l.running
}

// Session returns the session the loop drives
func (l *Loop) Session() *session.GameSession {
	return l.session
}
