package sim

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/san-kum/conway/internal/life"
)

// Runner drives the render-then-advance loop for a single grid. The grid is
// only touched from the goroutine calling Run.
type Runner struct {
	grid      *life.Grid
	renderer  Renderer
	metrics   []Metric
	observers []Observer
}

func New(grid *life.Grid, renderer Renderer) *Runner {
	if renderer == nil {
		renderer = Discard
	}
	return &Runner{
		grid:      grid,
		renderer:  renderer,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (r *Runner) AddMetric(m Metric)     { r.metrics = append(r.metrics, m) }
func (r *Runner) AddObserver(o Observer) { r.observers = append(r.observers, o) }

func (r *Runner) Grid() *life.Grid { return r.grid }

// Run renders and advances the grid until the generation limit is reached,
// the renderer returns ErrStopped, or ctx is done. The last two are normal
// stops: the result is marked Interrupted and the error is nil.
func (r *Runner) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	capacity := 256
	if cfg.Generations > 0 {
		capacity = min(cfg.Generations, 4096)
	}
	result := &Result{
		Population: make([]int, 0, capacity),
		Metrics:    make(map[string]float64),
	}

	for _, m := range r.metrics {
		m.Reset()
	}

	var tick <-chan time.Time
	if d := cfg.FrameDelay(); d > 0 {
		ticker := time.NewTicker(d)
		defer ticker.Stop()
		tick = ticker.C
	}

	start := time.Now()
	defer func() {
		result.Elapsed = time.Since(start)
		for _, m := range r.metrics {
			result.Metrics[m.Name()] = m.Value()
		}
	}()

loop:
	for cfg.Generations <= 0 || result.Generations < cfg.Generations {
		select {
		case <-ctx.Done():
			result.Interrupted = true
			break loop
		default:
		}

		if err := r.renderer.Render(r.grid); err != nil {
			if errors.Is(err, ErrStopped) {
				result.Interrupted = true
				break loop
			}
			return result, fmt.Errorf("render generation %d: %w", r.grid.Generation(), err)
		}

		result.Population = append(result.Population, r.grid.Population())
		for _, m := range r.metrics {
			m.Observe(r.grid)
		}
		for _, obs := range r.observers {
			obs.OnGeneration(r.grid)
		}

		r.grid.Advance()
		result.Generations++

		if tick == nil || result.Generations == cfg.Generations {
			continue
		}
		select {
		case <-ctx.Done():
			result.Interrupted = true
			break loop
		case <-tick:
		}
	}

	return result, nil
}

func validateConfig(cfg Config) error {
	if cfg.FPS < 0 {
		return fmt.Errorf("%w: fps must not be negative, got %d", ErrInvalidConfig, cfg.FPS)
	}
	return nil
}

// Step advances g by n generations without rendering.
func Step(g *life.Grid, n int) {
	for range n {
		g.Advance()
	}
}
