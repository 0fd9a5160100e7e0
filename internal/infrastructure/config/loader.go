package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Loader loads game configuration from JSON files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadGame loads and validates game.json
func (l *Loader) LoadGame() (*GameConfig, error) {
	data, err := fs.ReadFile(l.fsys, "game.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read game.json: %w", err)
	}

	var cfg GameConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game.json: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s/game.json: %w", l.basePath, err)
	}

	return &cfg, nil
}

// LoadAll loads game.json and applies DODGE_* environment overrides
func (l *Loader) LoadAll() (*GameConfig, Overrides, error) {
	cfg, err := l.LoadGame()
	if err != nil {
		return nil, Overrides{}, err
	}

	ov, err := ParseEnv()
	if err != nil {
		return nil, Overrides{}, err
	}
	cfg.Apply(ov)

	if err := cfg.Validate(); err != nil {
		return nil, Overrides{}, fmt.Errorf("after env overrides: %w", err)
	}

	return cfg, ov, nil
}

// Validate checks the values the game cannot run without
func (c *GameConfig) Validate() error {
	if c.Display.ScreenWidth <= 0 || c.Display.ScreenHeight <= 0 {
		return fmt.Errorf("%w: screen size %dx%d", ErrInvalidConfig, c.Display.ScreenWidth, c.Display.ScreenHeight)
	}
	if c.Display.Framerate <= 0 {
		return fmt.Errorf("%w: framerate %d", ErrInvalidConfig, c.Display.Framerate)
	}
	if c.Rules.Lives <= 0 {
		return fmt.Errorf("%w: lives %d", ErrInvalidConfig, c.Rules.Lives)
	}
	if c.Rules.HitboxPadding.X < 0 || c.Rules.HitboxPadding.Y < 0 {
		return fmt.Errorf("%w: negative hitbox padding", ErrInvalidConfig)
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		return fmt.Errorf("%w: player size %gx%g", ErrInvalidConfig, c.Player.Width, c.Player.Height)
	}

	waves := []struct {
		name string
		wave WaveConfig
	}{
		{"ground", c.Waves.Ground},
		{"aerial", c.Waves.Aerial},
	}
	for _, nw := range waves {
		name, w := nw.name, nw.wave
		if w.Count < 0 || w.IntervalMs < 0 {
			return fmt.Errorf("%w: %s wave count %d interval %dms", ErrInvalidConfig, name, w.Count, w.IntervalMs)
		}
		if w.Count > 0 && len(w.Margins) == 0 {
			return fmt.Errorf("%w: %s wave has no margins", ErrInvalidConfig, name)
		}
	}

	return nil
}
