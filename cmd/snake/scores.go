package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/term-snake/internal/storage"
)

var flagLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Print the leaderboard",
	Long: `Print the best recorded scores, highest first.

Examples:
  snake scores
  snake scores --limit 5
  snake scores --backend sqlite --scores ~/.snake/scores.db`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of entries to show (0 = all)")
}

func runScores(_ *cobra.Command, _ []string) error {
	a, err := newApp(false)
	if err != nil {
		return err
	}
	defer a.Close()

	if a.store == nil {
		return fmt.Errorf("cannot open score store %s (%s); see the log for details",
			a.cfg.Scores.Path, a.cfg.Scores.Backend)
	}

	entries, err := a.store.Leaderboard(flagLimit)
	if err != nil {
		return err
	}

	title := lipgloss.NewStyle().Bold(true)
	fmt.Fprintln(os.Stdout, title.Render("Leaderboard"))
	fmt.Fprintln(os.Stdout)

	if len(entries) == 0 {
		fmt.Fprintln(os.Stdout, "No scores recorded yet.")
		fmt.Fprintln(os.Stdout)
		fmt.Fprintln(os.Stdout, "Run 'snake play' to set the first high score!")
		return nil
	}

	printLeaderboard(entries)

	st, err := storage.Summarize(a.store)
	if err == nil {
		fmt.Fprintln(os.Stdout)
		fmt.Fprintf(os.Stdout, "Games: %d  Best: %d  Average: %.1f\n", st.Games, st.Best, st.Average)
	}
	return nil
}

func printLeaderboard(entries []storage.ScoreEntry) {
	fmt.Fprintf(os.Stdout, "  %-4s  %-24s  %s\n", "Rank", "Name", "Score")
	fmt.Fprintf(os.Stdout, "  %-4s  %-24s  %s\n", "----", "----", "-----")
	for i, e := range entries {
		fmt.Fprintf(os.Stdout, "  %-4d  %-24s  %d\n", i+1, e.Name, e.Score)
	}
}
