package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/term-snake/internal/core"
	"github.com/vovakirdan/term-snake/internal/snake"
	"github.com/vovakirdan/term-snake/internal/storage"
)

// SessionOptions configures one interactive session, local or over SSH.
type SessionOptions struct {
	// Store records finished games. Nil disables persistence.
	Store storage.ScoreStore

	// Logger receives session events. Nil discards them.
	Logger *log.Logger

	// Game is the template for every new game. Seed 0 means time-based.
	Game snake.Options

	// Runtime carries the screen size, tick length and base seed.
	Runtime core.RuntimeConfig

	// Username prefills the name prompt.
	Username string

	// PlayOnce skips the menu and ends the session after one saved game.
	PlayOnce bool

	// ScreenshotDir overrides where ctrl+s writes screenshots.
	ScreenshotDir string
}

type sessionView int

const (
	viewMenu sessionView = iota
	viewGame
	viewScores
)

// scoreSavedMsg reports the outcome of a background SaveScore.
type scoreSavedMsg struct {
	name  string
	score int
	err   error
}

// SessionModel manages the full session flow: menu -> game -> prompt -> menu.
// It is the top-level model for both the local terminal and SSH sessions.
type SessionModel struct {
	opts   SessionOptions
	logger *log.Logger
	view   sessionView
	menu   MenuModel
	game   GameModel
	scores ScoreboardModel
	played int
	status string
	saving bool
	err    error
}

// NewSessionModel creates a new session model.
func NewSessionModel(opts SessionOptions) SessionModel {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.Runtime.TickMS <= 0 {
		opts.Runtime.TickMS = core.DefaultConfig().TickMS
	}

	m := SessionModel{
		opts:   opts,
		logger: logger,
		menu:   NewMenuModel(opts.Runtime.ScreenW, opts.Runtime.ScreenH),
	}
	if opts.PlayOnce {
		m = m.startGame()
	}
	return m
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	if m.err != nil {
		return tea.Quit
	}
	if m.view == viewGame {
		return m.game.Init()
	}
	return m.menu.Init()
}

// Update routes messages to the active screen and handles transitions.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, forceQuit) {
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.opts.Runtime.ScreenW = msg.Width
		m.opts.Runtime.ScreenH = msg.Height

	case MenuChoiceMsg:
		return m.handleChoice(msg.Choice)

	case GameDoneMsg:
		return m.finishGame(msg)

	case scoreSavedMsg:
		return m.handleSaved(msg)

	case ScoreboardDoneMsg:
		return m.toMenu(""), nil
	}

	return m.delegate(msg)
}

// delegate forwards msg to the active screen.
func (m SessionModel) delegate(msg tea.Msg) (tea.Model, tea.Cmd) {
	var next tea.Model
	var cmd tea.Cmd

	switch m.view {
	case viewGame:
		next, cmd = m.game.Update(msg)
		if gm, ok := next.(GameModel); ok {
			m.game = gm
		}
	case viewScores:
		next, cmd = m.scores.Update(msg)
		if sm, ok := next.(ScoreboardModel); ok {
			m.scores = sm
		}
	default:
		next, cmd = m.menu.Update(msg)
		if mm, ok := next.(MenuModel); ok {
			m.menu = mm
		}
	}
	return m, cmd
}

// handleChoice acts on a menu selection.
func (m SessionModel) handleChoice(c MenuChoice) (tea.Model, tea.Cmd) {
	switch c {
	case ChoiceNewGame:
		m = m.startGame()
		if m.err != nil {
			return m.toMenu(m.err.Error()), nil
		}
		return m, m.game.Init()

	case ChoiceLeaderboard:
		m.scores = NewScoreboardModel(m.opts.Store, m.opts.Runtime.ScreenW, m.opts.Runtime.ScreenH)
		m.view = viewScores
		return m, m.scores.Init()

	default:
		return m, tea.Quit
	}
}

// startGame builds a new game model and switches to it.
func (m SessionModel) startGame() SessionModel {
	gameOpts := m.opts.Game
	if m.opts.Runtime.Seed != 0 {
		gameOpts.Seed = m.opts.Runtime.Seed + int64(m.played)
	}

	gm, err := NewGameModel(gameOpts, m.opts.Runtime)
	if err != nil {
		m.logger.Error("cannot start game", "error", err)
		m.err = err
		return m
	}
	m.err = nil

	if m.opts.Store != nil {
		best, err := storage.Best(m.opts.Store)
		if err != nil {
			m.logger.Warn("could not read best score", "error", err)
		} else {
			gm = gm.WithBest(best)
		}
	}
	if m.opts.Username != "" {
		gm = gm.WithName(m.opts.Username)
	}
	if m.opts.ScreenshotDir != "" {
		gm = gm.WithScreenshotDir(m.opts.ScreenshotDir)
	}

	m.played++
	m.game = gm
	m.view = viewGame
	m.logger.Debug("game started", "user", m.opts.Username, "game", m.played)
	return m
}

// finishGame records a confirmed result.
func (m SessionModel) finishGame(done GameDoneMsg) (tea.Model, tea.Cmd) {
	if g := m.game.Game(); g != nil {
		m.logger.Info("game over", "user", m.opts.Username, "score", done.Score,
			"length", g.Len(), "ticks", g.Tick())
		m.logger.Debug("final state", "state", g.DebugState())
	}

	if m.opts.Store == nil {
		return m.afterGame(fmt.Sprintf("Score %d was not saved: no score store", done.Score))
	}
	if m.saving {
		return m, nil
	}
	m.saving = true
	m.game.SetStatus("saving...")
	return m, saveScoreCmd(m.opts.Store, done.Name, done.Score)
}

// handleSaved reports the save outcome and leaves the game screen.
func (m SessionModel) handleSaved(msg scoreSavedMsg) (tea.Model, tea.Cmd) {
	m.saving = false
	if msg.err != nil {
		m.logger.Warn("could not save score", "name", msg.name, "score", msg.score, "error", msg.err)
		return m.afterGame(fmt.Sprintf("Could not save score: %v", msg.err))
	}
	m.logger.Info("score saved", "name", msg.name, "score", msg.score)
	return m.afterGame(fmt.Sprintf("Saved %s: %d", msg.name, msg.score))
}

// afterGame returns to the menu, or ends a play-once session.
func (m SessionModel) afterGame(status string) (tea.Model, tea.Cmd) {
	if m.opts.PlayOnce {
		m.status = status
		return m, tea.Quit
	}
	return m.toMenu(status), nil
}

// toMenu switches back to a fresh menu showing status.
func (m SessionModel) toMenu(status string) SessionModel {
	m.status = status
	m.menu = NewMenuModel(m.opts.Runtime.ScreenW, m.opts.Runtime.ScreenH).WithStatus(status)
	m.view = viewMenu
	return m
}

// saveScoreCmd runs SaveScore off the update loop.
func saveScoreCmd(store storage.ScoreStore, name string, score int) tea.Cmd {
	return func() tea.Msg {
		err := store.SaveScore(name, score)
		return scoreSavedMsg{name: storage.SanitizeName(name), score: score, err: err}
	}
}

// View renders the active screen.
func (m SessionModel) View() string {
	switch m.view {
	case viewGame:
		return m.game.View()
	case viewScores:
		return m.scores.View()
	default:
		return m.menu.View()
	}
}

// Status returns the last message shown to the player.
func (m SessionModel) Status() string {
	return m.status
}

// Err returns the error that prevented a game from starting, if any.
func (m SessionModel) Err() error {
	return m.err
}

// Run starts a local session on the terminal and blocks until it ends.
// It returns the last status message, such as the outcome of saving a score.
func Run(opts SessionOptions) (string, error) {
	model := NewSessionModel(opts)
	if err := model.Err(); err != nil {
		return "", err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return "", err
	}
	if sm, ok := final.(SessionModel); ok {
		return sm.Status(), nil
	}
	return "", nil
}
