package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/conway/internal/patterns"
)

var (
	cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
)

// Settings are the run parameters editable in the picker.
type Settings struct {
	Pattern     string
	Width       int
	Height      int
	FPS         int
	Generations int
	Probability float64
}

type state int

const (
	stateMenu state = iota
	stateConfig
)

type param struct {
	name string
	step float64
	min  float64
	max  float64
}

var params = []param{
	{"width", 1, 1, 500},
	{"height", 1, 1, 500},
	{"fps", 1, 1, 60},
	{"generations", 10, 0, 1e6},
	{"probability", 0.05, 0, 1},
}

// Picker is a two screen menu: choose a pattern, then adjust its settings.
type Picker struct {
	state   state
	cursor  int
	entries []patterns.Entry

	settings    Settings
	paramCursor int
	editing     bool
	editBuf     string

	chosen bool
}

func NewPicker(entries []patterns.Entry, defaults Settings) *Picker {
	p := &Picker{entries: entries, settings: defaults}
	for i, e := range entries {
		if e.Name == defaults.Pattern {
			p.cursor = i
		}
	}
	return p
}

// Run shows the picker on the terminal. ok is false when the user quit
// without starting.
func (p *Picker) Run() (s Settings, ok bool, err error) {
	final, err := tea.NewProgram(p).Run()
	if err != nil {
		return Settings{}, false, fmt.Errorf("pattern picker: %w", err)
	}
	fp := final.(*Picker)
	return fp.settings, fp.chosen, nil
}

func (p *Picker) Settings() Settings { return p.settings }
func (p *Picker) Chosen() bool       { return p.chosen }

func (p *Picker) Init() tea.Cmd { return nil }

func (p *Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}
	if key.String() == "ctrl+c" {
		return p, tea.Quit
	}
	switch p.state {
	case stateMenu:
		return p, p.menuKey(key)
	case stateConfig:
		return p, p.configKey(key)
	}
	return p, nil
}

func (p *Picker) menuKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "q", "esc":
		return tea.Quit
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
		}
	case "down", "j":
		if p.cursor < len(p.entries)-1 {
			p.cursor++
		}
	case "enter", " ":
		if len(p.entries) == 0 {
			return nil
		}
		e := p.entries[p.cursor]
		p.settings.Pattern = e.Name
		if e.Width > 0 && e.Height > 0 {
			p.settings.Width, p.settings.Height = e.Width, e.Height
		}
		p.state = stateConfig
		p.paramCursor = 0
	}
	return nil
}

func (p *Picker) configKey(msg tea.KeyMsg) tea.Cmd {
	if p.editing {
		switch msg.String() {
		case "enter":
			if v, err := strconv.ParseFloat(p.editBuf, 64); err == nil {
				p.set(params[p.paramCursor], v)
			}
			p.editing = false
			p.editBuf = ""
		case "esc":
			p.editing = false
			p.editBuf = ""
		case "backspace":
			if len(p.editBuf) > 0 {
				p.editBuf = p.editBuf[:len(p.editBuf)-1]
			}
		default:
			if s := msg.String(); len(s) == 1 {
				c := s[0]
				if (c >= '0' && c <= '9') || c == '.' {
					p.editBuf += s
				}
			}
		}
		return nil
	}

	switch msg.String() {
	case "q", "esc":
		p.state = stateMenu
	case "up", "k":
		if p.paramCursor > 0 {
			p.paramCursor--
		}
	case "down", "j":
		if p.paramCursor < len(params)-1 {
			p.paramCursor++
		}
	case "enter", " ":
		p.editing = true
		p.editBuf = ""
	case "left", "h":
		pr := params[p.paramCursor]
		p.set(pr, p.get(pr)-pr.step)
	case "right", "l":
		pr := params[p.paramCursor]
		p.set(pr, p.get(pr)+pr.step)
	case "s":
		p.chosen = true
		return tea.Quit
	}
	return nil
}

func (p *Picker) get(pr param) float64 {
	switch pr.name {
	case "width":
		return float64(p.settings.Width)
	case "height":
		return float64(p.settings.Height)
	case "fps":
		return float64(p.settings.FPS)
	case "generations":
		return float64(p.settings.Generations)
	default:
		return p.settings.Probability
	}
}

func (p *Picker) set(pr param, v float64) {
	v = max(pr.min, min(pr.max, v))
	switch pr.name {
	case "width":
		p.settings.Width = int(v)
	case "height":
		p.settings.Height = int(v)
	case "fps":
		p.settings.FPS = int(v)
	case "generations":
		p.settings.Generations = int(v)
	default:
		p.settings.Probability = v
	}
}

func (p *Picker) View() string {
	if p.state == stateConfig {
		return p.viewConfig()
	}
	return p.viewMenu()
}

func (p *Picker) viewMenu() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("           " + cyan.Render("c o n w a y") + "\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("\n")

	for i, e := range p.entries {
		if i == p.cursor {
			b.WriteString("      " + cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-12s", e.Name)) + dim.Render(e.Description) + "\n")
		} else {
			b.WriteString("        " + dim.Render(fmt.Sprintf("%-12s", e.Name)) + dimmer.Render(e.Description) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("      ↑↓ select   enter choose   q quit") + "\n")
	return b.String()
}

func (p *Picker) viewConfig() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("      " + cyan.Render(p.settings.Pattern) + "\n")
	b.WriteString(dimmer.Render("      "+strings.Repeat("─", 30)) + "\n\n")

	for i, pr := range params {
		val := p.format(pr)
		if p.editing && i == p.paramCursor {
			val = fmt.Sprintf("%8s", p.editBuf+"▋")
		}
		if i == p.paramCursor {
			b.WriteString("      " + cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-12s", pr.name)) + magenta.Render(val) + "\n")
		} else {
			b.WriteString("        " + dim.Render(fmt.Sprintf("%-12s", pr.name)) + dim.Render(val) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("      ↑↓ select  ←→ adjust  enter edit  s start  esc back") + "\n")
	return b.String()
}

func (p *Picker) format(pr param) string {
	if pr.name == "probability" {
		return fmt.Sprintf("%8.2f", p.settings.Probability)
	}
	if pr.name == "generations" && p.settings.Generations == 0 {
		return fmt.Sprintf("%8s", "∞")
	}
	return fmt.Sprintf("%8d", int(p.get(pr)))
}
