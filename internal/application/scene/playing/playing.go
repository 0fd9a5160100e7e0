// Package playing provides the main gameplay scene.
package playing

import (
	"errors"
	"fmt"
	"image/color"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/younwookim/dodge/internal/application/scene"
	"github.com/younwookim/dodge/internal/application/schedule"
	"github.com/younwookim/dodge/internal/application/screen"
	"github.com/younwookim/dodge/internal/application/session"
	"github.com/younwookim/dodge/internal/application/system"
	"github.com/younwookim/dodge/internal/domain/entity"
	"github.com/younwookim/dodge/internal/infrastructure/config"
	"github.com/younwookim/dodge/internal/infrastructure/logging"
)

// Colors for rendering
var (
	colorBG     = color.RGBA{26, 26, 46, 255}
	colorGround = color.RGBA{60, 50, 40, 255}
	colorPlayer = color.RGBA{100, 200, 100, 255}
	colorRock   = color.RGBA{200, 100, 60, 255}
	colorBird   = color.RGBA{120, 140, 230, 255}
	colorPause  = color.RGBA{0, 0, 0, 128}
)

// ErrNotStarted is returned by Update when the session could not be started
var ErrNotStarted = errors.New("session did not start")

// Options tune a Playing scene
type Options struct {
	// Seed for the first session. Zero picks one from the clock; restarts
	// always pick a fresh one.
	Seed uint64
	// RecordPath enables input recording when not empty
	RecordPath string
	Logger     *log.Logger
}

// Playing is the main gameplay scene. Every OnEnter starts a fresh session.
type Playing struct {
	config *config.GameConfig
	board  *screen.Board
	input  system.InputSource
	opts   Options
	logger *log.Logger
	frame  time.Duration

	sched    *schedule.Scheduler
	session  *session.GameSession
	player   *entity.Player
	loop     *system.Loop
	paused   bool
	sessions int
	startErr error

	// Input recording
	recorder *Recorder

	// OnOver returns the scene shown once the session ends; nil stays here
	OnOver func() scene.Scene
}

// New creates a new Playing scene. No session exists until OnEnter.
func New(cfg *config.GameConfig, board *screen.Board, input system.InputSource, opts Options) *Playing {
	return &Playing{
		config: cfg,
		board:  board,
		input:  input,
		opts:   opts,
		logger: logging.OrDiscard(opts.Logger),
		frame:  time.Second / time.Duration(cfg.Display.Framerate),
	}
}

// Rules converts the config into the rules a loop starts with
func Rules(cfg *config.GameConfig) system.Rules {
	wave := func(kind entity.Kind, w config.WaveConfig) system.Wave {
		return system.Wave{
			Count:     w.Count,
			Interval:  time.Duration(w.IntervalMs) * time.Millisecond,
			Kind:      kind,
			Margins:   w.Margins,
			Secondary: w.SecondaryMargin,
		}
	}
	return system.Rules{
		Lives:      cfg.Rules.Lives,
		PlayWidth:  float64(cfg.Display.ScreenWidth),
		PlayHeight: float64(cfg.Display.ScreenHeight),
		Padding:    system.Padding{X: cfg.Rules.HitboxPadding.X, Y: cfg.Rules.HitboxPadding.Y},
		Waves: []system.Wave{
			wave(entity.KindGround, cfg.Waves.Ground),
			wave(entity.KindAerial, cfg.Waves.Aerial),
		},
	}
}

func obstacleSpec(c config.ObstacleConfig) entity.ObstacleSpec {
	return entity.ObstacleSpec{Width: c.Width, Height: c.Height, Speed: c.Speed, BobSpeed: c.BobSpeed}
}

// begin tears down the previous session, if any, and starts a new one
func (p *Playing) begin() {
	p.teardown()

	seed := p.opts.Seed
	if seed == 0 || p.sessions > 0 {
		seed = uint64(time.Now().UnixNano())
	}
	p.sessions++

	pc := p.config.Player
	p.sched = schedule.New()
	p.session = session.New(p.sched, seed)
	p.player = entity.NewPlayer(p.board, entity.PlayerSpec{
		Width: pc.Width, Height: pc.Height, Speed: pc.Speed, StartX: pc.StartX, StartY: pc.StartY,
	})
	spawner := system.NewSpawner(p.session, system.EntityFactory{
		Surface: p.board,
		Ground:  obstacleSpec(p.config.Obstacles.Ground),
		Aerial:  obstacleSpec(p.config.Obstacles.Aerial),
	}, system.NewRand(seed), p.logger)
	p.loop = system.NewLoop(p.session, p.player, p.board, spawner, p.logger)
	p.paused = false
	p.recorder = nil
	p.startErr = nil

	if !p.loop.Start(Rules(p.config)) {
		p.startErr = fmt.Errorf("%w: lives %d", ErrNotStarted, p.config.Rules.Lives)
		p.logger.Error("session did not start", "lives", p.config.Rules.Lives)
		return
	}

	if p.opts.RecordPath != "" {
		p.recorder = NewRecorder(seed, p.config.Rules.Lives)
		p.logger.Info("recording enabled", "path", p.recordPath(), "seed", seed)
	}
}

// recordPath is RecordPath for the first session; restarts get a _<n> suffix
// so earlier recordings are kept
func (p *Playing) recordPath() string {
	path := p.opts.RecordPath
	if path == "" || p.sessions <= 1 {
		return path
	}
	ext := filepath.Ext(path)
	return fmt.Sprintf("%s_%d%s", strings.TrimSuffix(path, ext), p.sessions, ext)
}

func (p *Playing) teardown() {
	if p.session == nil {
		return
	}
	p.session.Teardown()
	p.board.Detach(p.player)
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(_ float64) (scene.Scene, error) {
	if p.session == nil {
		return nil, nil
	}
	if p.startErr != nil {
		return nil, p.startErr
	}

	in := p.input.Poll()
	if in.Quit {
		p.saveRecording()
		return nil, ebiten.Termination
	}

	if p.recorder != nil {
		p.recorder.RecordFrame(in)
	}

	if in.Pause && !p.session.IsOver() {
		p.paused = !p.paused
		p.logger.Debug("pause toggled", "paused", p.paused, "tick", p.session.Ticks)
	}
	if p.paused {
		return nil, nil
	}

	p.Step(in.Move)

	if p.session.IsOver() {
		p.saveRecording()
		if p.OnOver != nil {
			return p.OnOver(), nil
		}
	}

	return nil, nil // nil = stay on this scene
}

// Step runs one unpaused frame: pending spawns first, then the loop tick
func (p *Playing) Step(move entity.Input) {
	p.player.SetInput(move)
	p.sched.Advance(p.frame)
	p.loop.Tick()
}

// saveRecording saves the current recording to file once
func (p *Playing) saveRecording() {
	if p.recorder == nil || !p.recorder.IsRecording() {
		return
	}
	p.recorder.Stop()

	filename := p.recordPath()
	if filename == "" {
		filename = GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		p.logger.Error("failed to save recording", "err", err)
	} else {
		p.logger.Info("recording saved", "path", filename, "frames", p.recorder.FrameCount())
	}
}

// Session returns the current session, nil before OnEnter
func (p *Playing) Session() *session.GameSession {
	return p.session
}

// Player returns the current player
func (p *Playing) Player() *entity.Player {
	return p.player
}

// Ticks returns the frames the current session has run
func (p *Playing) Ticks() int {
	if p.session == nil {
		return 0
	}
	return p.session.Ticks
}

// Score returns the current session's score
func (p *Playing) Score() int {
	if p.session == nil {
		return 0
	}
	return p.session.Score
}

// Paused reports whether the scene is paused
func (p *Playing) Paused() bool {
	return p.paused
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	w, h := p.board.Size()
	if m := p.config.Waves.Ground.Margins; len(m) > 0 {
		floor := h * (1 - m[0])
		ebitenutil.DrawRect(screen, 0, floor, w, h-floor, colorGround)
	}

	for _, s := range p.board.Sprites() {
		r := s.BoundingRect()
		clr := colorPlayer
		switch s.Kind() {
		case entity.KindGround:
			clr = colorRock
		case entity.KindAerial:
			clr = colorBird
		}
		ebitenutil.DrawRect(screen, r.Left, r.Top, r.Width(), r.Height(), clr)
	}

	p.drawUI(screen, int(w), int(h))
}

func (p *Playing) drawUI(screen *ebiten.Image, w, h int) {
	ebitenutil.DebugPrint(screen, "Arrows/WASD: Move | ESC: Pause | Q: Quit")
	ebitenutil.DebugPrintAt(screen, p.board.Lives(), 10, 20)
	if p.session != nil {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", p.session.Score), 10, 35)
	}

	if p.paused {
		ebitenutil.DrawRect(screen, 0, 0, float64(w), float64(h), colorPause)
		ebitenutil.DebugPrintAt(screen, "PAUSED\n\nPress ESC to resume", w/2-50, h/2-20)
	}
}

// OnEnter starts a new session
func (p *Playing) OnEnter() {
	p.begin()
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.saveRecording()
}
