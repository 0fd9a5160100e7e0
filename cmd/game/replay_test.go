package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/dodge/internal/application/replay"
	"github.com/younwookim/dodge/internal/application/state"
	"github.com/younwookim/dodge/internal/infrastructure/config"
	"github.com/younwookim/dodge/internal/infrastructure/logging"
)

func testConfig(t *testing.T) *config.GameConfig {
	t.Helper()
	cfg, _, err := loadConfig()
	require.NoError(t, err)
	return cfg
}

func TestLoadConfig_Embedded(t *testing.T) {
	cfg := testConfig(t)

	assert.Equal(t, 900, cfg.Display.ScreenWidth)
	assert.Equal(t, 750, cfg.Display.ScreenHeight)
	assert.Equal(t, 3, cfg.Rules.Lives)
	assert.Equal(t, 7, cfg.Waves.Ground.Count)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("DODGE_LIVES", "5")
	t.Setenv("DODGE_SEED", "99")

	cfg, ov, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Rules.Lives)
	assert.Equal(t, uint64(99), ov.Seed)
}

func TestSimulate_IdleIsDeterministic(t *testing.T) {
	cfg := testConfig(t)
	data := replay.CreateTestReplayData(900, 42)

	first := simulate(cfg, data, logging.Discard())
	second := simulate(cfg, data, logging.Discard())

	assert.Equal(t, first, second)
	assert.Equal(t, uint64(42), first.Seed)
	assert.Equal(t, first.Frames, first.Ticks, "every replayed frame is a tick")
}

func TestSimulate_TallPlayerLoses(t *testing.T) {
	cfg := testConfig(t)
	cfg.Player.Height = float64(cfg.Display.ScreenHeight)
	cfg.Player.StartY = 0

	res := simulate(cfg, replay.CreateTestReplayData(900, 7), logging.Discard())

	assert.Equal(t, state.PhaseOver, res.Phase)
	assert.Equal(t, 0, res.Lives)
	assert.Less(t, res.Frames, 900, "replay stops at game-over")
}

func TestSimulate_UsesRecordedLives(t *testing.T) {
	cfg := testConfig(t)
	cfg.Player.Height = float64(cfg.Display.ScreenHeight)
	cfg.Player.StartY = 0

	data := replay.CreateTestReplayData(900, 7)
	data.Lives = 1
	one := simulate(cfg, data, logging.Discard())

	data.Lives = 3
	three := simulate(cfg, data, logging.Discard())

	assert.Equal(t, state.PhaseOver, one.Phase)
	assert.Less(t, one.Frames, three.Frames)
	assert.Equal(t, 3, cfg.Rules.Lives, "config is not mutated")
}

func TestSimulate_PausedFramesDoNotTick(t *testing.T) {
	cfg := testConfig(t)
	data := replay.CreateTestReplayData(10, 1)
	data.Frames[2].P = true
	data.Frames[5].P = true

	res := simulate(cfg, data, logging.Discard())

	assert.Equal(t, 10, res.Frames)
	assert.Equal(t, 7, res.Ticks)
}

func TestRunReplay_FromFile(t *testing.T) {
	cfg := testConfig(t)
	path := filepath.Join(t.TempDir(), "run.json")
	data := replay.CreateTestReplayData(60, 5)
	data.Frames[0].R = true
	require.NoError(t, replay.Save(data, path))

	res, err := runReplay(cfg, path, logging.Discard())
	require.NoError(t, err)

	assert.Equal(t, simulate(cfg, data, logging.Discard()), res)
	assert.Equal(t, "seed=5 frames=60 ticks=60 lives=3 phase=Active", res.String())
}

func TestRunReplay_MissingFile(t *testing.T) {
	_, err := runReplay(testConfig(t), filepath.Join(t.TempDir(), "nope.json"), logging.Discard())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load replay")
}
