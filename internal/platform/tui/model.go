package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/term-snake/internal/core"
	"github.com/vovakirdan/term-snake/internal/snake"
)

// maxNameLen caps the name typed into the game-over prompt.
const maxNameLen = 24

// GameDoneMsg is emitted once the player confirms the game-over prompt.
type GameDoneMsg struct {
	Score int
	Name  string
}

// GameModel runs one snake game and the name prompt that follows it.
type GameModel struct {
	game   *snake.Game
	frame  *snake.Frame
	screen *core.Screen
	config core.RuntimeConfig
	keys   GameKeyMap
	help   help.Model
	input  core.InputFrame
	prompt textinput.Model

	best      int
	hasBest   bool
	status    string
	shotDir   string
	submitted bool
}

// NewGameModel creates a model for a fresh game built from opts.
func NewGameModel(opts snake.Options, cfg core.RuntimeConfig) (GameModel, error) {
	if opts.Seed == 0 {
		opts.Seed = cfg.Seed
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	game, err := snake.New(opts)
	if err != nil {
		return GameModel{}, err
	}

	prompt := textinput.New()
	prompt.Placeholder = "Anonymous"
	prompt.CharLimit = maxNameLen
	prompt.Width = maxNameLen
	prompt.Prompt = ""

	m := GameModel{
		game:    game,
		frame:   snake.NewFrameFor(game),
		config:  cfg,
		keys:    DefaultGameKeyMap(),
		help:    help.New(),
		input:   core.NewInputFrame(),
		prompt:  prompt,
		shotDir: defaultScreenshotDir(),
	}
	m.screen = core.NewScreen(m.screenSize())
	return m, nil
}

// WithBest sets the best recorded score shown in the status line.
func (m GameModel) WithBest(best int) GameModel {
	m.best = best
	m.hasBest = true
	return m
}

// WithName prefills the game-over prompt.
func (m GameModel) WithName(name string) GameModel {
	m.prompt.SetValue(name)
	return m
}

// WithScreenshotDir overrides where ctrl+s writes screenshots.
func (m GameModel) WithScreenshotDir(dir string) GameModel {
	m.shotDir = dir
	return m
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.config.TickMS)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(m.screenSize())
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	if m.game.Over() {
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	if m.game.Over() {
		return m.handlePromptKey(msg)
	}

	// Keys only accumulate; the next tick applies them.
	m.input.Set(m.keys.MapKey(msg))
	return m, nil
}

// handlePromptKey feeds the name prompt and submits it on enter or esc.
func (m GameModel) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.submitted {
		return m, nil
	}
	switch msg.Type {
	case tea.KeyEnter, tea.KeyEsc:
		m.submitted = true
		done := GameDoneMsg{Score: m.game.Score(), Name: m.prompt.Value()}
		m.prompt.Blur()
		return m, func() tea.Msg { return done }
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.game.Over() {
		return m, nil
	}

	result := m.game.Step(m.input)
	m.input.Clear()

	if result.State.GameOver {
		// Ticking stops here; the prompt takes over input.
		return m, m.prompt.Focus()
	}
	return m, tickCmd(m.config.TickMS)
}

// screenSize returns the terminal size, minus the help line, grown to fit
// the grid and status lines.
func (m GameModel) screenSize() (int, int) {
	g := m.game.Grid()
	return max(m.config.ScreenW, g.W), max(m.config.ScreenH-1, g.H+2)
}

// origin returns where the grid's top-left corner is drawn.
func (m GameModel) origin() (int, int) {
	g := m.game.Grid()
	return max(0, (m.screen.Width()-g.W)/2), 0
}

// render draws the playfield, status line and any overlay into the screen.
func (m GameModel) render() {
	m.screen.Clear()
	m.frame.Compose(m.game)

	ox, oy := m.origin()
	score := m.game.Score()
	PaintFrame(m.screen, m.frame, ox, oy, score)

	status := fmt.Sprintf("Score: %d", score)
	if m.hasBest {
		status += fmt.Sprintf("   Best: %d", max(m.best, score))
	}
	m.screen.DrawText(ox, oy+m.game.Grid().H, status, core.ColorBrightWhite)
	if m.status != "" {
		m.screen.DrawText(ox, oy+m.game.Grid().H+1, m.status, core.ColorGray)
	}

	if m.game.Over() {
		m.renderGameOver(ox, oy)
	}
}

// renderGameOver draws the final score and the name field over the grid.
func (m GameModel) renderGameOver(ox, oy int) {
	g := m.game.Grid()
	w := min(g.W-2, maxNameLen+10)
	h := 6
	box := core.NewRect(ox+(g.W-w)/2, oy+(g.H-h)/2, w, h)

	m.screen.DrawRect(box, ' ')
	m.screen.DrawBox(box, core.ColorBrightWhite)

	lines := []string{
		"GAME OVER",
		fmt.Sprintf("Score: %d", m.game.Score()),
		"Name: " + m.prompt.Value() + "_",
		"enter to save",
	}
	if box.W <= 2 {
		return
	}
	for i, line := range lines {
		if len(line) > box.W-2 {
			line = line[:box.W-2]
		}
		x := box.X + (box.W-len(line))/2
		c := core.ColorBrightWhite
		if i == 0 {
			c = core.ColorRed
		}
		m.screen.DrawText(x, box.Y+1+i, line, c)
	}
}

// saveScreenshot writes the current screen as plain text.
func (m *GameModel) saveScreenshot() {
	m.render()

	path, err := writeScreenshot(m.shotDir, m.screen)
	if err != nil {
		m.status = "screenshot failed: " + err.Error()
		return
	}
	m.status = "saved " + path
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	m.render()

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Game exposes the running game.
func (m GameModel) Game() *snake.Game {
	return m.game
}

// Screen exposes the screen buffer of the last render.
func (m GameModel) Screen() *core.Screen {
	return m.screen
}

// SetStatus sets the line shown under the score.
func (m *GameModel) SetStatus(s string) {
	m.status = s
}

func defaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".snake", "screenshots")
	}
	return filepath.Join(home, ".snake", "screenshots")
}

func writeScreenshot(dir string, s *core.Screen) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create %s: %w", dir, err)
	}

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405.000")
	path := filepath.Join(dir, fmt.Sprintf("snake_%s.txt", timestamp))

	if err := os.WriteFile(path, []byte(s.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}
