package metrics

import "github.com/san-kum/conway/internal/life"

// Population reports the live cell count of the last observed grid.
type Population struct {
	name  string
	count int
}

func NewPopulation() *Population {
	return &Population{name: "population"}
}

func (p *Population) Name() string         { return p.name }
func (p *Population) Observe(g *life.Grid) { p.count = g.Population() }
func (p *Population) Value() float64       { return float64(p.count) }
func (p *Population) Reset()               { p.count = 0 }

// PeakPopulation tracks the largest live cell count seen.
type PeakPopulation struct {
	name string
	peak int
}

func NewPeakPopulation() *PeakPopulation {
	return &PeakPopulation{name: "peak_population"}
}

func (p *PeakPopulation) Name() string { return p.name }

func (p *PeakPopulation) Observe(g *life.Grid) {
	p.peak = max(p.peak, g.Population())
}

func (p *PeakPopulation) Value() float64 { return float64(p.peak) }
func (p *PeakPopulation) Reset()         { p.peak = 0 }

// AveragePopulation is the mean live cell count over all observations.
type AveragePopulation struct {
	name    string
	sum     int
	samples int
}

func NewAveragePopulation() *AveragePopulation {
	return &AveragePopulation{name: "average_population"}
}

func (a *AveragePopulation) Name() string { return a.name }

func (a *AveragePopulation) Observe(g *life.Grid) {
	a.sum += g.Population()
	a.samples++
}

func (a *AveragePopulation) Value() float64 {
	if a.samples == 0 {
		return 0
	}
	return float64(a.sum) / float64(a.samples)
}

func (a *AveragePopulation) Reset() {
	a.sum = 0
	a.samples = 0
}
