package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/term-snake/internal/config"
	"github.com/vovakirdan/term-snake/internal/core"
	"github.com/vovakirdan/term-snake/internal/platform/tui"
	"github.com/vovakirdan/term-snake/internal/storage"
)

// app bundles what every command needs: settings, logger and score store.
type app struct {
	cfg     config.Config
	logger  *log.Logger
	logFile io.Closer
	store   storage.ScoreStore
}

// newApp loads configuration, applies flags and opens the store.
// logToStderr is for the server; interactive commands log to a file so the
// alternate screen stays clean.
func newApp(logToStderr bool) (*app, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	a := &app{}
	var out io.Writer = os.Stderr
	if !logToStderr {
		f, err := openLogFile(flagLogPath)
		if err != nil {
			return nil, err
		}
		a.logFile = f
		out = f
	}
	a.logger = log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
		Level:           level,
	})

	cfg, err := config.Load(flagConfig)
	if err != nil {
		a.Close()
		return nil, err
	}
	if flagScores != "" {
		cfg.Scores.Path = flagScores
	}
	if flagBackend != "" {
		cfg.Scores.Backend = flagBackend
	}
	if err := cfg.Validate(); err != nil {
		a.Close()
		return nil, err
	}
	a.cfg = cfg
	a.logger.Debug("config loaded", "source", cfg.Source,
		"grid", fmt.Sprintf("%dx%d", cfg.Grid.Width, cfg.Grid.Height), "tick_ms", cfg.TickMS)

	store, err := storage.Open(cfg.Scores.Backend, cfg.Scores.Path)
	if err != nil {
		// Continue without storage - game still works
		a.logger.Warn("could not open score store", "backend", cfg.Scores.Backend,
			"path", cfg.Scores.Path, "error", err)
	} else {
		a.store = store
	}
	return a, nil
}

// Close releases the store and the log file.
func (a *app) Close() {
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			a.logger.Warn("could not close score store", "error", err)
		}
	}
	if a.logFile != nil {
		a.logFile.Close()
	}
}

// sessionOptions builds the options for a local session.
func (a *app) sessionOptions(playOnce bool) (tui.SessionOptions, error) {
	width, height := terminalSize()
	needW, needH := a.cfg.Grid.Width, a.cfg.Grid.Height+3
	if width < needW || height < needH {
		return tui.SessionOptions{}, fmt.Errorf("terminal is %dx%d, need at least %dx%d for a %dx%d grid",
			width, height, needW, needH, a.cfg.Grid.Width, a.cfg.Grid.Height)
	}

	return tui.SessionOptions{
		Store:  a.store,
		Logger: a.logger,
		Game:   a.cfg.GameOptions(0),
		Runtime: core.RuntimeConfig{
			ScreenW: width,
			ScreenH: height,
			TickMS:  a.cfg.TickMS,
			Seed:    flagSeed,
		},
		PlayOnce: playOnce,
	}, nil
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return width, height
}

func openLogFile(path string) (*os.File, error) {
	if path != "" && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, nil
}
