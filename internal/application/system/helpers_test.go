package system

import (
	"github.com/younwookim/dodge/internal/application/schedule"
	"github.com/younwookim/dodge/internal/application/screen"
	"github.com/younwookim/dodge/internal/application/session"
	"github.com/younwookim/dodge/internal/domain/entity"
)

// fakePlayer is a Player with a fixed rect that records calls
type fakePlayer struct {
	rect     entity.Rect
	start    entity.Rect
	advances int
	resets   int
	onAdv    func()
}

func newFakePlayer(r entity.Rect) *fakePlayer {
	return &fakePlayer{rect: r, start: r}
}

func (p *fakePlayer) Advance() {
	p.advances++
	if p.onAdv != nil {
		p.onAdv()
	}
}

func (p *fakePlayer) BoundingRect() entity.Rect { return p.rect }

func (p *fakePlayer) ResetPosition() {
	p.resets++
	p.rect = p.start
}

// fakeObstacle is a session.Obstacle with a fixed rect
type fakeObstacle struct {
	kind      entity.Kind
	margin    float64
	secondary float64
	rect      entity.Rect
	advances  int
	destroyed bool
	log       *[]string
	name      string
}

func (o *fakeObstacle) Advance() {
	o.advances++
	if o.log != nil {
		*o.log = append(*o.log, "advance:"+o.name)
	}
}

func (o *fakeObstacle) BoundingRect() entity.Rect {
	if o.log != nil {
		*o.log = append(*o.log, "rect:"+o.name)
	}
	return o.rect
}

func (o *fakeObstacle) Destroy() { o.destroyed = true }

// recordingFactory builds fakeObstacles far away from the origin
type recordingFactory struct {
	built []*fakeObstacle
}

func (f *recordingFactory) NewObstacle(kind entity.Kind, margin, secondary float64) session.Obstacle {
	o := &fakeObstacle{
		kind:      kind,
		margin:    margin,
		secondary: secondary,
		rect:      far,
	}
	f.built = append(f.built, o)
	return o
}

// far is a rect that overlaps nothing the tests place near the origin
var far = entity.Rect{Left: 5000, Top: 5000, Right: 5100, Bottom: 5100}

// overlapping returns a rect whose padded hitbox clearly overlaps r's
func overlapping(r entity.Rect) entity.Rect {
	return entity.Rect{Left: r.Left + 10, Top: r.Top + 10, Right: r.Right + 10, Bottom: r.Bottom + 10}
}

type fixture struct {
	sched   *schedule.Scheduler
	session *session.GameSession
	board   *screen.Board
	player  *fakePlayer
	factory *recordingFactory
	spawner *Spawner
	loop    *Loop
}

func newFixture(seed uint64) *fixture {
	f := &fixture{
		sched:   schedule.New(),
		board:   screen.NewBoard(1, 1),
		player:  newFakePlayer(entity.Rect{Left: 0, Top: 0, Right: 60, Bottom: 80}),
		factory: &recordingFactory{},
	}
	f.session = session.New(f.sched, seed)
	f.spawner = NewSpawner(f.session, f.factory, NewRand(seed), nil)
	f.loop = NewLoop(f.session, f.player, f.board, f.spawner, nil)
	return f
}

func testRules(waves ...Wave) Rules {
	return Rules{
		Lives:      3,
		PlayWidth:  900,
		PlayHeight: 750,
		Padding:    DefaultPadding(),
		Waves:      waves,
	}
}
