package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"

	"war/game"
	"war/meta"
)

// Config holds the settings shared by every command. Flags override these.
type Config struct {
	Seed        uint64 `env:"WAR_SEED"`
	Locale      string `env:"WAR_LOCALE"       envDefault:"en-US"`
	PlayerColor string `env:"WAR_PLAYER_COLOR"`
	StrictTies  bool   `env:"WAR_STRICT_TIES"`
	RecordDir   string `env:"WAR_RECORD_DIR"`
	LogLevel    string `env:"WAR_LOG_LEVEL"    envDefault:"warn"`
	Territories int    `env:"WAR_TERRITORIES"  envDefault:"5"`
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Territories < 1 {
		return fmt.Errorf("territories must be positive, got %d", c.Territories)
	}
	if strings.TrimSpace(c.Locale) == "" {
		return fmt.Errorf("locale must not be empty")
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Rules returns the attack rules selected by StrictTies.
func (c Config) Rules() game.Rules {
	if c.StrictTies {
		return game.NewStrictRules()
	}
	return game.NewStandardRules()
}

// Roller returns a die seeded with Seed, or with the clock when Seed is 0.
func (c Config) Roller() game.Roller {
	seed := c.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return game.NewRandomRoller(seed)
}

// Capacity is the registry size for the register menu, which never exceeds
// the fixed-size board.
func (c Config) Capacity() int {
	return min(c.Territories, meta.MAX_TERRITORIES)
}

func (c Config) Level() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("log level: %w", err)
	}
	return level, nil
}
