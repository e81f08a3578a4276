package metrics

import "github.com/san-kum/conway/internal/life"

// DefaultPeriodWindow is how many past generations Period remembers.
const DefaultPeriodWindow = 64

// Period detects when the grid repeats an earlier configuration. Value is
// the shortest period found so far: 1 for a still life, 2 for a blinker,
// 0 while no repeat has been seen within the window.
type Period struct {
	name    string
	window  int
	history []uint64
	period  int
}

func NewPeriod(window int) *Period {
	if window <= 0 {
		window = DefaultPeriodWindow
	}
	return &Period{
		name:    "period",
		window:  window,
		history: make([]uint64, 0, window),
	}
}

func (p *Period) Name() string { return p.name }

func (p *Period) Observe(g *life.Grid) {
	fp := g.Fingerprint()
	p.period = 0
	for i := len(p.history) - 1; i >= 0; i-- {
		if p.history[i] == fp {
			p.period = len(p.history) - i
			break
		}
	}
	if len(p.history) == p.window {
		p.history = p.history[1:]
	}
	p.history = append(p.history, fp)
}

func (p *Period) Value() float64 { return float64(p.period) }

// Stable reports whether the last observation repeated an earlier one.
func (p *Period) Stable() bool { return p.period > 0 }

func (p *Period) Reset() {
	p.history = p.history[:0]
	p.period = 0
}
