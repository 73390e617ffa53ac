package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// MenuChoice is one entry of the main menu.
type MenuChoice int

const (
	ChoiceNewGame MenuChoice = iota
	ChoiceLeaderboard
	ChoiceExit
)

// String returns the label shown in the menu.
func (c MenuChoice) String() string {
	switch c {
	case ChoiceNewGame:
		return "New game"
	case ChoiceLeaderboard:
		return "Leaderboard"
	case ChoiceExit:
		return "Exit"
	default:
		return "?"
	}
}

var menuChoices = []MenuChoice{ChoiceNewGame, ChoiceLeaderboard, ChoiceExit}

// MenuChoiceMsg reports the entry the player picked.
type MenuChoiceMsg struct {
	Choice MenuChoice
}

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	cursor int
	width  int
	height int
	status string
	keys   MenuKeyMap
	help   help.Model
}

// NewMenuModel creates a new menu model.
func NewMenuModel(width, height int) MenuModel {
	return MenuModel{
		width:  width,
		height: height,
		keys:   DefaultMenuKeyMap(),
		help:   help.New(),
	}
}

// WithStatus sets a one-line message shown under the entries.
func (m MenuModel) WithStatus(s string) MenuModel {
	m.status = s
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(menuChoices)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Select):
		return m, choose(menuChoices[m.cursor])

	case key.Matches(msg, m.keys.Back):
		return m, choose(ChoiceExit)
	}

	return m, nil
}

func choose(c MenuChoice) tea.Cmd {
	return func() tea.Msg { return MenuChoiceMsg{Choice: c} }
}

// Cursor returns the highlighted entry.
func (m MenuModel) Cursor() MenuChoice {
	return menuChoices[m.cursor]
}

// View renders the menu.
func (m MenuModel) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	selectedStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("S N A K E"), m.width))
	b.WriteString("\n\n")

	for i, c := range menuChoices {
		line := "  " + c.String()
		if i == m.cursor {
			line = selectedStyle.Render("> " + c.String())
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(centerText(dimStyle.Render(m.status), m.width))
		b.WriteString("\n\n")
	}
	b.WriteString(centerText(dimStyle.Render(m.help.View(m.keys)), m.width))
	b.WriteString("\n")

	return b.String()
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
