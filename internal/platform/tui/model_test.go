package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/term-snake/internal/core"
	"github.com/vovakirdan/term-snake/internal/snake"
)

func newTestModel(t *testing.T) GameModel {
	t.Helper()
	m, err := NewGameModel(snake.DefaultOptions(), core.RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		TickMS:  150,
		Seed:    1,
	})
	if err != nil {
		t.Fatalf("NewGameModel() failed: %v", err)
	}
	return m
}

// send feeds msgs through Update and returns the model and the last command.
func send(t *testing.T, m GameModel, msgs ...tea.Msg) (GameModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		gm, ok := next.(GameModel)
		if !ok {
			t.Fatalf("Update returned %T, expected GameModel", next)
		}
		m = gm
	}
	return m, cmd
}

func TestGameModelLastKeyWins(t *testing.T) {
	m := newTestModel(t)

	m, _ = send(t, m, runeKey('w'), tea.KeyMsg{Type: tea.KeyDown}, TickMsg{})

	if h := m.Game().Heading(); h != snake.DirDown {
		t.Errorf("Heading() = %v, expected Down", h)
	}
	if head := m.Game().Head(); head != core.Pt(15, 11) {
		t.Errorf("Head() = %v, expected (15, 11)", head)
	}
}

func TestGameModelReversalAsLastKeyIsIgnored(t *testing.T) {
	m := newTestModel(t)

	m, _ = send(t, m, runeKey('w'), runeKey('a'), TickMsg{})

	if h := m.Game().Heading(); h != snake.DirRight {
		t.Errorf("Heading() = %v, expected Right", h)
	}
	if head := m.Game().Head(); head != core.Pt(16, 10) {
		t.Errorf("Head() = %v, expected (16, 10)", head)
	}
}

func TestGameModelKeysWaitForTick(t *testing.T) {
	m := newTestModel(t)

	m, _ = send(t, m, runeKey('s'))
	if m.Game().Tick() != 0 || m.Game().Heading() != snake.DirRight {
		t.Fatal("a key press alone should not advance the game")
	}

	m, cmd := send(t, m, TickMsg{})
	if cmd == nil {
		t.Error("a running game should schedule the next tick")
	}
	m, _ = send(t, m, TickMsg{})
	if m.Game().Heading() != snake.DirDown {
		t.Errorf("Heading() = %v, expected Down", m.Game().Heading())
	}
	if head := m.Game().Head(); head != core.Pt(15, 12) {
		t.Errorf("Head() = %v, expected (15, 12) after two ticks", head)
	}
}

func TestGameModelQuitAndPrompt(t *testing.T) {
	m := newTestModel(t)

	m, _ = send(t, m, runeKey('q'), TickMsg{})
	if !m.Game().Over() {
		t.Fatal("q followed by a tick should end the game")
	}
	if head := m.Game().Head(); head != core.Pt(15, 10) {
		t.Errorf("quitting should not move the snake, head = %v", head)
	}

	// Further ticks are ignored and stop the loop.
	m, cmd := send(t, m, TickMsg{})
	if cmd != nil {
		t.Error("a finished game should not schedule ticks")
	}

	m, _ = send(t, m, runeKey('b'), runeKey('o'), runeKey('b'))
	if !strings.Contains(m.View(), "Name: bob") {
		t.Errorf("View() should show the typed name, got:\n%s", m.View())
	}

	_, cmd = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter should submit the prompt")
	}
	done, ok := cmd().(GameDoneMsg)
	if !ok {
		t.Fatalf("submit produced %T, expected GameDoneMsg", cmd())
	}
	if done.Name != "bob" || done.Score != 0 {
		t.Errorf("GameDoneMsg = %+v, expected bob/0", done)
	}
}

func TestGameModelPrefilledName(t *testing.T) {
	m := newTestModel(t).WithName("alice")

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc}, TickMsg{})
	_, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	done := cmd().(GameDoneMsg)
	if done.Name != "alice" {
		t.Errorf("Name = %q, expected alice", done.Name)
	}
}

func TestGameModelStatusLine(t *testing.T) {
	m := newTestModel(t)
	if v := m.View(); !strings.Contains(v, "Score: 0") || strings.Contains(v, "Best:") {
		t.Errorf("View() without a store should show only the score, got:\n%s", v)
	}

	m = m.WithBest(42)
	if v := m.View(); !strings.Contains(v, "Best: 42") {
		t.Errorf("View() should show the best score, got:\n%s", v)
	}
}

func TestGameModelScreenshot(t *testing.T) {
	dir := t.TempDir()
	m := newTestModel(t).WithScreenshotDir(dir)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	files, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() failed: %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("expected 1 screenshot, found %d", len(files))
	}
	data, err := os.ReadFile(filepath.Join(dir, files[0].Name()))
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	if !strings.Contains(string(data), "##########") || !strings.Contains(string(data), "*") {
		t.Errorf("screenshot should contain the playfield, got:\n%s", data)
	}
	if m.Game().Tick() != 0 {
		t.Error("a screenshot should not advance the game")
	}
}

func TestGameModelResizeKeepsGrid(t *testing.T) {
	m := newTestModel(t)
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 10, Height: 5})

	if w, h := m.Screen().Width(), m.Screen().Height(); w < 30 || h < 22 {
		t.Errorf("screen shrank to %dx%d, must fit the 30x20 grid and status", w, h)
	}
	if m.Game().Tick() != 0 || m.Game().Over() {
		t.Error("resizing should not touch the game")
	}
}
