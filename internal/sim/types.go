package sim

import (
	"errors"
	"time"

	"github.com/san-kum/conway/internal/life"
)

var (
	// ErrInvalidConfig indicates a loop configuration that cannot run.
	ErrInvalidConfig = errors.New("sim: invalid config")

	// ErrStopped is returned by a Renderer to end the loop cleanly, for
	// example when the user closes the window.
	ErrStopped = errors.New("sim: stopped by renderer")
)

// Renderer draws one frame of the grid. It must not call Advance.
type Renderer interface {
	Render(g *life.Grid) error
}

// Observer is notified once per frame, after rendering and before the
// grid advances.
type Observer interface {
	OnGeneration(g *life.Grid)
}

type Metric interface {
	Name() string
	Observe(g *life.Grid)
	Value() float64
	Reset()
}

// Config controls pacing. FPS 0 runs unthrottled; Generations <= 0 runs
// until the context is cancelled.
type Config struct {
	FPS         int
	Generations int
}

func DefaultConfig() Config {
	return Config{FPS: 5}
}

// FrameDelay is the target time between frames.
func (c Config) FrameDelay() time.Duration {
	if c.FPS <= 0 {
		return 0
	}
	return time.Second / time.Duration(c.FPS)
}

type Result struct {
	Generations int
	Interrupted bool
	Population  []int
	Metrics     map[string]float64
	Elapsed     time.Duration
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(g *life.Grid) error

func (f RendererFunc) Render(g *life.Grid) error { return f(g) }

// Discard renders nothing; it runs a grid headless.
var Discard Renderer = RendererFunc(func(*life.Grid) error { return nil })
