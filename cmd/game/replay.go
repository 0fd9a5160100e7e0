package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/younwookim/dodge/internal/application/replay"
	"github.com/younwookim/dodge/internal/application/scene/playing"
	"github.com/younwookim/dodge/internal/application/screen"
	"github.com/younwookim/dodge/internal/application/state"
	"github.com/younwookim/dodge/internal/infrastructure/config"
)

// ReplayResult summarizes a headless run
type ReplayResult struct {
	Seed   uint64
	Frames int
	Ticks  int
	Lives  int
	Phase  state.Phase
}

func (r ReplayResult) String() string {
	return fmt.Sprintf("seed=%d frames=%d ticks=%d lives=%d phase=%s", r.Seed, r.Frames, r.Ticks, r.Lives, r.Phase)
}

// runReplay loads a recording and plays it without a window
func runReplay(cfg *config.GameConfig, path string, logger *log.Logger) (ReplayResult, error) {
	data, err := replay.LoadReplay(path)
	if err != nil {
		return ReplayResult{}, fmt.Errorf("load replay %s: %w", path, err)
	}
	logger.Info("replay loaded", "path", path, "frames", len(data.Frames), "seed", data.Seed)
	return simulate(cfg, *data, logger), nil
}

// simulate feeds every recorded frame to a fresh playing scene, stopping early
// when the session ends
func simulate(cfg *config.GameConfig, data replay.ReplayData, logger *log.Logger) ReplayResult {
	if data.Lives > 0 && data.Lives != cfg.Rules.Lives {
		c := *cfg
		c.Rules.Lives = data.Lives
		cfg = &c
	}

	r := replay.NewReplayer(data)
	board := screen.NewBoard(float64(cfg.Display.ScreenWidth), float64(cfg.Display.ScreenHeight))
	p := playing.New(cfg, board, r, playing.Options{Seed: data.Seed, Logger: logger})
	p.OnEnter()

	dt := 1.0 / float64(cfg.Display.Framerate)
	frames := 0
	for !r.Done() && !p.Session().IsOver() {
		// a replayer never asks to quit, so Update cannot fail
		_, _ = p.Update(dt)
		frames++
	}

	s := p.Session()
	return ReplayResult{
		Seed:   s.Seed,
		Frames: frames,
		Ticks:  s.Ticks,
		Lives:  s.Lives,
		Phase:  s.Phase,
	}
}
