// Package session holds the state of a single play-through.
package session

import (
	"github.com/younwookim/dodge/internal/application/schedule"
	"github.com/younwookim/dodge/internal/application/state"
	"github.com/younwookim/dodge/internal/domain/entity"
)

// Obstacle is the session's handle on one spawned obstacle
type Obstacle interface {
	Advance()
	BoundingRect() entity.Rect
	Destroy()
}

// GameSession is one play-through from start to game-over.
// It is owned by whoever started it; there is no process-wide instance.
type GameSession struct {
	Lives               int
	Phase               state.Phase
	Score               int
	Obstacles           []Obstacle
	AerialObstacles     []Obstacle
	ScheduledSpawnCount int
	Ticks               int
	Seed                uint64

	alive bool
	tasks *schedule.Group
}

// New creates a session that has not started yet.
// Deferred work for the session is scheduled on its own group of sched.
func New(sched *schedule.Scheduler, seed uint64) *GameSession {
	return &GameSession{
		Phase: state.PhaseNotStarted,
		Seed:  seed,
		tasks: sched.NewGroup(),
	}
}

// Start moves the session into the Active phase with the given lives.
// Returns false if the session was already started or torn down.
// Active to Active is the collision self-loop, not a restart.
func (s *GameSession) Start(lives int) bool {
	if s.Phase != state.PhaseNotStarted || s.tasks.Closed() {
		return false
	}
	s.Lives = lives
	s.Phase = state.PhaseActive
	s.alive = true
	return true
}

// Alive reports whether the session may still be mutated by deferred work
func (s *GameSession) Alive() bool {
	return s.alive
}

// IsOver reports whether the session has reached game-over
func (s *GameSession) IsOver() bool {
	return s.Phase == state.PhaseOver
}

// Tasks returns the scheduler group that is cancelled on teardown
func (s *GameSession) Tasks() *schedule.Group {
	return s.tasks
}

// AddObstacle appends a spawned obstacle to the collection for its kind
func (s *GameSession) AddObstacle(kind entity.Kind, o Obstacle) {
	if !s.alive {
		return
	}
	if kind == entity.KindAerial {
		s.AerialObstacles = append(s.AerialObstacles, o)
		return
	}
	s.Obstacles = append(s.Obstacles, o)
}

// ObstacleCount returns the total number of live obstacles of both kinds
func (s *GameSession) ObstacleCount() int {
	return len(s.Obstacles) + len(s.AerialObstacles)
}

// Finish moves an active session to game-over. Pending spawns are cancelled
// but obstacles stay in place until Teardown.
func (s *GameSession) Finish() {
	if !s.Phase.CanTransition(state.PhaseOver) {
		return
	}
	s.Phase = state.PhaseOver
	s.alive = false
	s.tasks.Cancel()
}

// Teardown ends the session: pending spawns are cancelled, obstacles are
// destroyed and both collections are discarded. Safe to call more than once.
func (s *GameSession) Teardown() {
	s.tasks.Cancel()
	s.alive = false

	for _, o := range s.Obstacles {
		o.Destroy()
	}
	for _, o := range s.AerialObstacles {
		o.Destroy()
	}
	s.Obstacles = nil
	s.AerialObstacles = nil
}
