package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/term-snake/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Interactive menu (default)",
	Long: `Start the interactive menu.

Menu:
  New game     - Play, then enter a name for the leaderboard
  Leaderboard  - Show the best scores
  Exit         - Leave

Controls:
  Up/Down, k/j  - Navigate
  Enter         - Select
  Esc/Q         - Exit

In game:
  Arrows/WASD/hjkl  - Steer
  Esc/Q             - End the game
  Ctrl+S            - Save a screenshot to ~/.snake/screenshots
  Ctrl+C            - Quit immediately`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	return runSession(false)
}

// runSession runs a local session, optionally a single game.
func runSession(playOnce bool) error {
	a, err := newApp(false)
	if err != nil {
		return err
	}
	defer a.Close()

	opts, err := a.sessionOptions(playOnce)
	if err != nil {
		return err
	}

	a.logger.Info("session started", "play_once", playOnce)
	status, err := tui.Run(opts)
	if err != nil {
		a.logger.Error("session failed", "error", err)
		return err
	}
	a.logger.Info("session ended")

	if playOnce && status != "" {
		fmt.Println(status)
	}
	return nil
}
