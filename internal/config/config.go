// Package config provides YAML-based configuration loading for the game,
// with embedded defaults and environment overrides.
package config

import (
	"fmt"

	"github.com/vovakirdan/term-snake/internal/snake"
)

// Config contains all configuration for a snake session.
type Config struct {
	Grid   GridConfig   `yaml:"grid"`
	TickMS int          `yaml:"tick_ms"`
	Rules  RulesConfig  `yaml:"rules"`
	Scores ScoresConfig `yaml:"scores"`

	// Source is the file the YAML came from, or "embedded".
	Source string `yaml:"-"`
}

// GridConfig defines the playfield size, border included.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// RulesConfig defines optional rule variations.
type RulesConfig struct {
	FoodPlacement string `yaml:"food_placement"` // "free" or "anywhere"
	TailChase     bool   `yaml:"tail_chase"`
}

// ScoresConfig defines where finished games are recorded.
type ScoresConfig struct {
	Backend string `yaml:"backend"` // "file" or "sqlite"
	Path    string `yaml:"path"`
}

// Score backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Validate checks the configuration for values the game cannot run with.
func (c Config) Validate() error {
	if err := c.GameOptions(0).Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.TickMS <= 0 {
		return fmt.Errorf("config: tick_ms must be positive, got %d", c.TickMS)
	}
	switch c.Scores.Backend {
	case BackendFile, BackendSQLite:
	default:
		return fmt.Errorf("config: unknown scores backend %q", c.Scores.Backend)
	}
	if c.Scores.Path == "" {
		return fmt.Errorf("config: scores path is empty")
	}
	return nil
}

// GameOptions converts the configuration into engine options.
func (c Config) GameOptions(seed int64) snake.Options {
	return snake.Options{
		Width:     c.Grid.Width,
		Height:    c.Grid.Height,
		Seed:      seed,
		Food:      snake.FoodPolicy(c.Rules.FoodPlacement),
		TailChase: c.Rules.TailChase,
	}
}
