package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/dodge/internal/application/schedule"
	"github.com/younwookim/dodge/internal/application/state"
	"github.com/younwookim/dodge/internal/domain/entity"
)

type fakeObstacle struct {
	destroyed int
}

func (o *fakeObstacle) Advance()                  {}
func (o *fakeObstacle) BoundingRect() entity.Rect { return entity.Rect{} }
func (o *fakeObstacle) Destroy()                  { o.destroyed++ }

func TestNew(t *testing.T) {
	s := New(schedule.New(), 42)

	assert.Equal(t, state.PhaseNotStarted, s.Phase)
	assert.Equal(t, uint64(42), s.Seed)
	assert.False(t, s.Alive())
	assert.False(t, s.IsOver())
}

func TestGameSession_Start(t *testing.T) {
	s := New(schedule.New(), 1)

	require.True(t, s.Start(3))
	assert.Equal(t, state.PhaseActive, s.Phase)
	assert.Equal(t, 3, s.Lives)
	assert.True(t, s.Alive())
	assert.Empty(t, s.Obstacles)
	assert.Empty(t, s.AerialObstacles)

	assert.False(t, s.Start(3), "a session starts only once")
}

func TestGameSession_StartMidGameChangesNothing(t *testing.T) {
	sched := schedule.New()
	s := New(sched, 1)
	require.True(t, s.Start(3))

	ground := &fakeObstacle{}
	s.AddObstacle(entity.KindGround, ground)
	s.Lives = 1
	spawned := 0
	s.Tasks().After(time.Second, func() { spawned++ })

	assert.False(t, s.Start(3))
	assert.Equal(t, 1, s.Lives, "lives only change through collisions")
	assert.Equal(t, []Obstacle{ground}, s.Obstacles)
	assert.Zero(t, ground.destroyed)

	sched.Advance(time.Second)
	assert.Equal(t, 1, spawned, "pending work of the running session still fires")
}

func TestGameSession_AddObstacle(t *testing.T) {
	s := New(schedule.New(), 1)
	ground := &fakeObstacle{}

	s.AddObstacle(entity.KindGround, ground)
	assert.Zero(t, s.ObstacleCount(), "not started yet")

	s.Start(3)
	s.AddObstacle(entity.KindGround, ground)
	s.AddObstacle(entity.KindAerial, &fakeObstacle{})
	s.AddObstacle(entity.KindGround, &fakeObstacle{})

	assert.Len(t, s.Obstacles, 2)
	assert.Len(t, s.AerialObstacles, 1)
	assert.Same(t, ground, s.Obstacles[0])
	assert.Equal(t, 3, s.ObstacleCount())
}

func TestGameSession_Finish(t *testing.T) {
	sched := schedule.New()
	s := New(sched, 1)
	s.Start(1)

	ran := false
	s.Tasks().After(time.Second, func() { ran = true })
	o := &fakeObstacle{}
	s.AddObstacle(entity.KindGround, o)

	s.Finish()
	assert.True(t, s.IsOver())
	assert.False(t, s.Alive())
	assert.Len(t, s.Obstacles, 1, "obstacles survive until teardown")
	assert.Zero(t, o.destroyed)

	sched.Advance(2 * time.Second)
	assert.False(t, ran, "pending work is cancelled at game-over")
}

func TestGameSession_FinishBeforeStart(t *testing.T) {
	s := New(schedule.New(), 1)
	s.Finish()
	assert.Equal(t, state.PhaseNotStarted, s.Phase)
}

func TestGameSession_Teardown(t *testing.T) {
	sched := schedule.New()
	s := New(sched, 1)
	s.Start(3)

	ground := &fakeObstacle{}
	aerial := &fakeObstacle{}
	s.AddObstacle(entity.KindGround, ground)
	s.AddObstacle(entity.KindAerial, aerial)
	s.Tasks().After(time.Second, func() { s.AddObstacle(entity.KindGround, &fakeObstacle{}) })

	s.Teardown()
	s.Teardown()

	assert.Equal(t, 1, ground.destroyed)
	assert.Equal(t, 1, aerial.destroyed)
	assert.Zero(t, s.ObstacleCount())
	assert.False(t, s.Alive())
	assert.False(t, s.Start(3), "a torn down session cannot restart")

	sched.Advance(time.Minute)
	assert.Zero(t, s.ObstacleCount())
}
