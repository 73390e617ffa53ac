package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Grid: GridConfig{
			Width:  30,
			Height: 20,
		},
		TickMS: 150,
		Rules: RulesConfig{
			FoodPlacement: "free",
			TailChase:     false,
		},
		Scores: ScoresConfig{
			Backend: BackendFile,
			Path:    "~/.snake/scores.txt",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
