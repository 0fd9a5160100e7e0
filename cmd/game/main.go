package main

import (
	"embed"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/dodge/internal/application/game"
	"github.com/younwookim/dodge/internal/application/scene"
	"github.com/younwookim/dodge/internal/application/scene/gameover"
	"github.com/younwookim/dodge/internal/application/scene/intro"
	"github.com/younwookim/dodge/internal/application/scene/playing"
	"github.com/younwookim/dodge/internal/application/screen"
	"github.com/younwookim/dodge/internal/application/system"
	"github.com/younwookim/dodge/internal/infrastructure/config"
	"github.com/younwookim/dodge/internal/infrastructure/logging"
)

//go:embed configs
var configFS embed.FS

// loadConfig reads the embedded game.json and applies DODGE_* overrides
func loadConfig() (*config.GameConfig, config.Overrides, error) {
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, config.Overrides{}, fmt.Errorf("config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs").LoadAll()
}

func main() {
	// Parse command line flags
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Play a recorded file without a window and print the outcome")
	seedFlag := flag.Uint64("seed", 0, "Seed for the first session (0 picks one)")
	flag.Parse()

	cfg, ov, err := loadConfig()
	if err != nil {
		logging.New(os.Stderr, "error", "dodge").Fatal("failed to load config", "err", err)
	}
	logger := logging.New(os.Stderr, cfg.Log.Level, "dodge")

	if *replayFlag != "" {
		res, err := runReplay(cfg, *replayFlag, logger)
		if err != nil {
			logger.Fatal("replay failed", "err", err)
		}
		fmt.Println(res)
		return
	}

	// Flags win over the environment
	seed := *seedFlag
	if seed == 0 {
		seed = ov.Seed
	}
	record := *recordFlag
	if record == "" {
		record = ov.Record
	}

	w, h := cfg.Display.ScreenWidth, cfg.Display.ScreenHeight
	board := screen.NewBoard(float64(w), float64(h))
	input := system.NewInputSystem()

	play := playing.New(cfg, board, input, playing.Options{Seed: seed, RecordPath: record, Logger: logger})
	over := gameover.New(board, input, play, play, logger)
	play.OnOver = func() scene.Scene { return over }

	g := game.New(intro.New(board, input, play, cfg.Display.Title), w, h, logger)
	g.SetFramerate(cfg.Display.Framerate)

	// Set up ebiten
	scale := max(cfg.Display.Scale, 1)
	ebiten.SetWindowSize(w*scale, h*scale)
	ebiten.SetWindowTitle(cfg.Display.Title)
	ebiten.SetTPS(cfg.Display.Framerate)

	// Run game
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal("game stopped", "err", err)
	}
}
