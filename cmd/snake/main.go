// snake is the classic snake game for the terminal.
//
// Usage:
//
//	snake                  - Start the interactive menu
//	snake menu             - Same as above
//	snake play             - Play one game, save the score and exit
//	snake scores           - Print the leaderboard
//	snake serve            - Serve the menu over SSH
//
// Global flags:
//
//	--config <path>    - Config file (default: ~/.snake/snake.yaml, ./configs/snake.yaml)
//	--seed <value>     - RNG seed for reproducible games
//	--scores <path>    - Score file or database
//	--backend <name>   - Score backend: file or sqlite
//	--log <path>       - Log file (default: ~/.snake/snake.log)
//	--log-level <lvl>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagScores   string
	flagBackend  string
	flagLogPath  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game in your terminal",
	Long: `Snake is the classic arcade game for the terminal.

Steer with the arrow keys, WASD or hjkl. Every piece of food makes the
snake one cell longer and is worth one point. Hitting a wall or your own
body ends the game.

Available commands:
  menu     - Interactive menu (default)
  play     - Play a single game
  scores   - Print the leaderboard
  serve    - Start SSH server for remote play

Examples:
  snake
  snake play --seed 42
  snake scores --limit 5
  snake serve --ssh :2222`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runMenu,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagScores, "scores", "", "Path to score file or database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "", "Score backend: file or sqlite (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "~/.snake/snake.log", "Path to log file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
