package system

import (
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/younwookim/dodge/internal/application/session"
	"github.com/younwookim/dodge/internal/domain/entity"
	"github.com/younwookim/dodge/internal/infrastructure/logging"
)

// Factory builds the obstacle handed to the session for each spawn
type Factory interface {
	NewObstacle(kind entity.Kind, margin, secondary float64) session.Obstacle
}

// FactoryFunc adapts a function to Factory
type FactoryFunc func(kind entity.Kind, margin, secondary float64) session.Obstacle

// NewObstacle implements Factory
func (f FactoryFunc) NewObstacle(kind entity.Kind, margin, secondary float64) session.Obstacle {
	return f(kind, margin, secondary)
}

// EntityFactory builds entity obstacles on a render surface
type EntityFactory struct {
	Surface entity.Surface
	Ground  entity.ObstacleSpec
	Aerial  entity.ObstacleSpec
}

// NewObstacle implements Factory
func (f EntityFactory) NewObstacle(kind entity.Kind, margin, secondary float64) session.Obstacle {
	if kind == entity.KindAerial {
		return entity.NewAerialObstacle(f.Surface, margin, secondary, f.Aerial)
	}
	return entity.NewGroundObstacle(f.Surface, margin, f.Ground)
}

// Wave describes one timed spawn schedule
type Wave struct {
	Count     int
	Interval  time.Duration
	Kind      entity.Kind
	Margins   []float64
	Secondary float64 // bottom margin, aerial only
}

// Spawner schedules obstacle creation on a session's task group
type Spawner struct {
	session *session.GameSession
	factory Factory
	rng     *rand.Rand
	logger  *log.Logger
}

// NewSpawner creates a spawner feeding the given session
func NewSpawner(s *session.GameSession, factory Factory, rng *rand.Rand, logger *log.Logger) *Spawner {
	return &Spawner{
		session: s,
		factory: factory,
		rng:     rng,
		logger:  logging.OrDiscard(logger),
	}
}

// ScheduleWave schedules count spawns of the given kind, the i-th one
// i*interval after now. Each spawn reshuffles the margin pool and takes the
// margin at i mod len(pool). Aerial spawns also receive the secondary margin.
// Returns the number of spawns scheduled; a session that is not alive gets none.
func (sp *Spawner) ScheduleWave(count int, interval time.Duration, kind entity.Kind, marginPool []float64, secondary ...float64) int {
	if count <= 0 || len(marginPool) == 0 || !sp.session.Alive() {
		return 0
	}

	pool := make([]float64, len(marginPool))
	copy(pool, marginPool)

	var second float64
	if len(secondary) > 0 {
		second = secondary[0]
	}

	tasks := sp.session.Tasks()
	for i := 0; i < count; i++ {
		tasks.After(time.Duration(i)*interval, func() {
			sp.spawn(i, kind, pool, second)
		})
	}
	sp.session.ScheduledSpawnCount += count

	sp.logger.Debug("wave scheduled", "kind", kind, "count", count, "interval", interval)
	return count
}

// Schedule schedules a Wave
func (sp *Spawner) Schedule(w Wave) int {
	return sp.ScheduleWave(w.Count, w.Interval, w.Kind, w.Margins, w.Secondary)
}

func (sp *Spawner) spawn(index int, kind entity.Kind, pool []float64, secondary float64) {
	if !sp.session.Alive() {
		return
	}

	margins := Shuffle(sp.rng, pool)
	margin := margins[index%len(margins)]

	o := sp.factory.NewObstacle(kind, margin, secondary)
	sp.session.AddObstacle(kind, o)

	sp.logger.Debug("obstacle spawned", "kind", kind, "index", index, "margin", margin)
}
