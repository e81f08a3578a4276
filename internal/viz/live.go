package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/conway/internal/life"
	"github.com/san-kum/conway/internal/metrics"
)

const (
	historyCapacity = 600
	maxFPS          = 60
	defaultGIFPath  = "conway.gif"
)

// Options configure a Model. Width and Height of zero size the grid to the
// seed pattern plus a margin.
type Options struct {
	Name        string
	Seed        [][]bool
	Width       int
	Height      int
	FPS         int
	Generations int
	Theme       string
	GIFPath     string
}

type TickMsg time.Time

// Model is the Bubble Tea model of an interactive session.
type Model struct {
	opts     Options
	grid     *life.Grid
	fps      int
	running  bool
	cursorX  int
	cursorY  int
	theme    Theme
	braille  bool
	canvas   *Canvas
	showHelp bool
	notice   string

	population []float64
	peak       *metrics.PeakPopulation
	period     *metrics.Period
	recorder   *Recorder
}

func NewModel(opts Options) (Model, error) {
	if opts.FPS <= 0 {
		opts.FPS = 5
	}
	if opts.GIFPath == "" {
		opts.GIFPath = defaultGIFPath
	}
	m := Model{
		opts:       opts,
		fps:        opts.FPS,
		running:    true,
		theme:      GetTheme(opts.Theme),
		population: make([]float64, 0, historyCapacity),
		peak:       metrics.NewPeakPopulation(),
		period:     metrics.NewPeriod(metrics.DefaultPeriodWindow),
	}
	if err := m.reset(); err != nil {
		return Model{}, err
	}
	m.cursorX, m.cursorY = m.grid.Width()/2, m.grid.Height()/2
	return m, nil
}

// Run shows the model full screen until the user quits.
func Run(m Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func (m Model) Grid() *life.Grid { return m.grid }
func (m Model) Running() bool    { return m.running }
func (m Model) FPS() int         { return m.fps }
func (m Model) Theme() Theme     { return m.theme }

func (m Model) Init() tea.Cmd { return m.tick() }

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input events and advances the grid on each tick.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "n":
			if !m.finished() {
				m.step()
			}
		case "r":
			if err := m.reset(); err != nil {
				m.notice = err.Error()
			}
		case "c":
			m.grid.Clear()
			m.resetStats()
		case "up", "k":
			m.moveCursor(0, -1)
		case "down", "j":
			m.moveCursor(0, 1)
		case "left", "h":
			m.moveCursor(-1, 0)
		case "right", "l":
			m.moveCursor(1, 0)
		case "enter", "x":
			m.grid.ToggleCell(m.cursorX, m.cursorY)
			m.period.Reset()
		case "+", "=":
			m.fps = min(m.fps+1, maxFPS)
		case "-", "_":
			m.fps = max(m.fps-1, 1)
		case "t":
			m.theme = NextTheme(m.theme)
		case "b":
			m.braille = !m.braille
		case "g":
			m.toggleRecording()
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running && !m.finished() {
			m.step()
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) finished() bool {
	return m.opts.Generations > 0 && m.grid.Generation() >= m.opts.Generations
}

func (m *Model) step() {
	m.grid.Advance()
	m.observe()
	if m.recorder != nil {
		m.recorder.Capture(m.grid)
	}
}

func (m *Model) observe() {
	m.population = append(m.population, float64(m.grid.Population()))
	if len(m.population) > historyCapacity {
		m.population = m.population[1:]
	}
	m.peak.Observe(m.grid)
	m.period.Observe(m.grid)
}

// reset rebuilds the grid from the seed pattern.
func (m *Model) reset() error {
	var opts []life.Option
	if m.opts.Width > 0 {
		opts = append(opts, life.WithWidth(m.opts.Width))
	}
	if m.opts.Height > 0 {
		opts = append(opts, life.WithHeight(m.opts.Height))
	}
	g, err := life.FromPattern(m.opts.Seed, opts...)
	if err != nil {
		return err
	}
	m.grid = g
	m.canvas = CanvasFor(g)
	m.resetStats()
	return nil
}

func (m *Model) resetStats() {
	m.population = m.population[:0]
	m.peak.Reset()
	m.period.Reset()
	m.observe()
}

func (m *Model) moveCursor(dx, dy int) {
	w, h := m.grid.Width(), m.grid.Height()
	m.cursorX = ((m.cursorX+dx)%w + w) % w
	m.cursorY = ((m.cursorY+dy)%h + h) % h
}

func (m *Model) toggleRecording() {
	if m.recorder == nil {
		m.recorder = NewRecorder(4, m.fps)
		m.recorder.Capture(m.grid)
		m.notice = ""
		return
	}
	if err := m.recorder.Save(m.opts.GIFPath); err != nil {
		m.notice = err.Error()
	} else {
		m.notice = fmt.Sprintf("saved %d frames to %s", m.recorder.Len(), m.opts.GIFPath)
	}
	m.recorder = nil
}

func (m Model) status() string {
	switch {
	case m.recorder != nil:
		return StatusRecording.Render("● REC")
	case m.finished():
		return StatusPaused.Render("FINISHED")
	case !m.running:
		return StatusPaused.Render("PAUSED")
	default:
		return StatusRunning.Render("RUNNING")
	}
}

// View renders the grid beside the statistics panel.
func (m Model) View() string {
	var grid string
	if m.braille {
		m.canvas.Plot(m.grid)
		grid = lipgloss.NewStyle().Foreground(m.theme.Alive).Render(m.canvas.String())
	} else {
		grid = m.renderCells()
	}
	canvasView := CanvasStyle.Render(grid)

	var s strings.Builder
	s.WriteString(GradientText("CONWAY", m.theme.Primary, m.theme.Secondary) + "\n")
	if m.opts.Name != "" {
		s.WriteString(Subtle.Render(m.opts.Name) + "\n")
	}
	s.WriteString(m.status() + "\n\n")

	row := func(label, value string) {
		s.WriteString(MetricLabel.Render(label) + MetricValue.Render(value) + "\n")
	}
	gen := fmt.Sprintf("%d", m.grid.Generation())
	if m.opts.Generations > 0 {
		gen += fmt.Sprintf(" / %d", m.opts.Generations)
	}
	row("Generation", gen)
	row("Live cells", fmt.Sprintf("%d", m.grid.Population()))
	row("Peak", fmt.Sprintf("%.0f", m.peak.Value()))
	row("Period", periodLabel(int(m.period.Value())))
	row("FPS", fmt.Sprintf("%d", m.fps))
	row("Cursor", fmt.Sprintf("%d,%d", m.cursorX, m.cursorY))

	if m.opts.Generations > 0 {
		done := float64(m.grid.Generation()) / float64(m.opts.Generations)
		s.WriteString("\n" + ProgressBar(done, 30) + "\n")
	}

	if len(m.population) > 1 {
		chart := asciigraph.Plot(m.population, asciigraph.Height(6), asciigraph.Width(30), asciigraph.Caption("Population"))
		s.WriteString(GraphStyle.Render(chart) + "\n")
	}
	if m.notice != "" {
		s.WriteString(Subtle.Render(m.notice) + "\n")
	}

	s.WriteString(Separator(30) + "\n")
	s.WriteString(KeyHint.Render("SP:Pause N:Step R:Reset C:Clear\nX:Toggle T:Theme B:Braille ?:Help Q:Quit"))
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, PanelStyle.Render(s.String()))

	if m.showHelp {
		return helpText + "\n\n" + mainView
	}
	return mainView
}

func (m Model) renderCells() string {
	alive := lipgloss.NewStyle().Foreground(m.theme.Alive)
	dead := lipgloss.NewStyle().Foreground(m.theme.Dead)
	cursor := lipgloss.NewStyle().Foreground(m.theme.Cursor).Bold(true)

	var b strings.Builder
	for y := range m.grid.Height() {
		for x := range m.grid.Width() {
			on := m.grid.IsAlive(x, y)
			switch {
			case x == m.cursorX && y == m.cursorY && on:
				b.WriteString(cursor.Render("■ "))
			case x == m.cursorX && y == m.cursorY:
				b.WriteString(cursor.Render("□ "))
			case on:
				b.WriteString(alive.Render("■ "))
			default:
				b.WriteString(dead.Render("· "))
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

func periodLabel(p int) string {
	switch p {
	case 0:
		return "-"
	case 1:
		return "still life"
	default:
		return fmt.Sprintf("%d", p)
	}
}

const helpText = `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume             ║
║  N        - Advance one generation   ║
║  R        - Reset to the start       ║
║  C        - Clear the grid           ║
║  Arrows   - Move the cursor (hjkl)   ║
║  Enter/X  - Toggle cell at cursor    ║
║  + / -    - Faster / slower          ║
║  T        - Cycle themes             ║
║  B        - Toggle Braille view      ║
║  G        - Toggle GIF recording     ║
║  ?        - Toggle this help         ║
║  Q        - Quit                     ║
╚══════════════════════════════════════╝`
