package main

import (
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a single game",
	Long: `Play one game, enter a name, save the score and exit.

Controls:
  Arrows/WASD/hjkl  - Steer
  Esc/Q             - End the game
  Enter             - Confirm the name after game over
  Ctrl+C            - Quit immediately

Examples:
  snake play
  snake play --seed 42
  snake play --config ./my-snake.yaml
  snake play --backend sqlite --scores ~/.snake/scores.db`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	return runSession(true)
}
