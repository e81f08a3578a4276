package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/conway/internal/patterns"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestPicker() *Picker {
	return NewPicker(patterns.Entries(), Settings{
		Pattern: "glider", Width: 30, Height: 20, FPS: 5, Probability: 0.3,
	})
}

func send(p *Picker, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = p.Update(key(k))
	}
	return cmd
}

func TestPickerStartsOnDefaultPattern(t *testing.T) {
	p := newTestPicker()
	if p.entries[p.cursor].Name != "glider" {
		t.Errorf("cursor on %s, want glider", p.entries[p.cursor].Name)
	}
	if !strings.Contains(p.View(), "glider") {
		t.Error("menu should list glider")
	}
}

func TestPickerChoosePatternUsesPreferredSize(t *testing.T) {
	p := newTestPicker()
	for i, e := range p.entries {
		if e.Name == "pulsar" {
			p.cursor = i
		}
	}
	send(p, "enter")

	if p.state != stateConfig {
		t.Fatal("expected settings screen")
	}
	s := p.Settings()
	if s.Pattern != "pulsar" || s.Width != 30 || s.Height != 30 {
		t.Errorf("settings = %+v", s)
	}
}

func TestPickerAdjustAndStart(t *testing.T) {
	p := newTestPicker()
	send(p, "enter", "right", "right", "down", "enter", "4", "2", "enter")

	cmd := send(p, "s")
	if cmd == nil {
		t.Fatal("start should quit the program")
	}
	if !p.Chosen() {
		t.Error("expected chosen")
	}
	s := p.Settings()
	if s.Width != 32 {
		t.Errorf("width = %d, want 32", s.Width)
	}
	if s.Height != 42 {
		t.Errorf("height = %d, want 42", s.Height)
	}
}

func TestPickerClampsValues(t *testing.T) {
	p := newTestPicker()
	send(p, "enter", "down", "down", "down", "down")
	for range 30 {
		send(p, "right")
	}
	if got := p.Settings().Probability; got != 1 {
		t.Errorf("probability = %f, want clamp at 1", got)
	}
}

func TestPickerQuitWithoutChoosing(t *testing.T) {
	p := newTestPicker()
	send(p, "enter", "esc")
	if p.state != stateMenu {
		t.Error("esc should return to the menu")
	}
	if cmd := send(p, "q"); cmd == nil {
		t.Error("q on the menu should quit")
	}
	if p.Chosen() {
		t.Error("quit should not mark a choice")
	}
}
