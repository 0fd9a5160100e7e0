package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix is prepended to every override variable
const EnvPrefix = "DODGE_"

// Overrides are the values that can be set from the environment.
// Zero values mean "not set".
type Overrides struct {
	Lives    int    `env:"LIVES"`
	LogLevel string `env:"LOG_LEVEL"`
	Scale    int    `env:"SCALE"`
	Seed     uint64 `env:"SEED"`
	Record   string `env:"RECORD"`
}

// ParseEnv loads DODGE_* overrides from the environment
func ParseEnv() (Overrides, error) {
	var ov Overrides
	if err := env.ParseWithOptions(&ov, env.Options{Prefix: EnvPrefix}); err != nil {
		return Overrides{}, fmt.Errorf("parse env: %w", err)
	}
	return ov, nil
}

// Apply copies every set override into the config
func (c *GameConfig) Apply(ov Overrides) {
	if ov.Lives != 0 {
		c.Rules.Lives = ov.Lives
	}
	if ov.LogLevel != "" {
		c.Log.Level = ov.LogLevel
	}
	if ov.Scale != 0 {
		c.Display.Scale = ov.Scale
	}
}
