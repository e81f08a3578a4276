package sim

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/san-kum/conway/internal/life"
)

func blinkerGrid(t *testing.T) *life.Grid {
	t.Helper()
	g, err := life.FromPattern([][]bool{{true, true, true}}, life.WithSize(5, 5))
	if err != nil {
		t.Fatalf("from pattern: %v", err)
	}
	return g
}

type recorder struct {
	generations []int
}

func (r *recorder) Render(g *life.Grid) error {
	r.generations = append(r.generations, g.Generation())
	return nil
}

type countObserver struct{ calls int }

func (c *countObserver) OnGeneration(*life.Grid) { c.calls++ }

type testMetric struct{ observed int }

func (m *testMetric) Name() string         { return "test" }
func (m *testMetric) Observe(g *life.Grid) { m.observed++ }
func (m *testMetric) Value() float64       { return float64(m.observed) }
func (m *testMetric) Reset()               { m.observed = 0 }

func TestRunnerGenerationLimit(t *testing.T) {
	g := blinkerGrid(t)
	rec := &recorder{}
	obs := &countObserver{}
	metric := &testMetric{}

	r := New(g, rec)
	r.AddObserver(obs)
	r.AddMetric(metric)

	result, err := r.Run(context.Background(), Config{Generations: 4})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if result.Generations != 4 || g.Generation() != 4 {
		t.Errorf("generations = %d, grid at %d, want 4", result.Generations, g.Generation())
	}
	if result.Interrupted {
		t.Error("limit reached should not be an interruption")
	}
	want := []int{0, 1, 2, 3}
	if len(rec.generations) != len(want) {
		t.Fatalf("rendered %v, want %v", rec.generations, want)
	}
	for i := range want {
		if rec.generations[i] != want[i] {
			t.Errorf("frame %d showed generation %d", i, rec.generations[i])
		}
	}
	if obs.calls != 4 {
		t.Errorf("observer calls = %d, want 4", obs.calls)
	}
	if result.Metrics["test"] != 4 {
		t.Errorf("metric = %f, want 4", result.Metrics["test"])
	}
	if len(result.Population) != 4 || result.Population[0] != 3 {
		t.Errorf("population = %v", result.Population)
	}
}

func TestRunnerContextCancelIsCleanStop(t *testing.T) {
	g := blinkerGrid(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	frames := 0
	r := New(g, RendererFunc(func(*life.Grid) error {
		frames++
		if frames == 3 {
			cancel()
		}
		return nil
	}))

	result, err := r.Run(ctx, Config{})
	if err != nil {
		t.Fatalf("interrupt should not be an error: %v", err)
	}
	if !result.Interrupted {
		t.Error("expected interrupted result")
	}
	if result.Generations != 3 || g.Generation() != 3 {
		t.Errorf("generations = %d, want 3", result.Generations)
	}
}

func TestRunnerCancelDuringFrameWait(t *testing.T) {
	g := blinkerGrid(t)
	ctx, cancel := context.WithCancel(context.Background())

	r := New(g, RendererFunc(func(*life.Grid) error {
		cancel()
		return nil
	}))

	start := time.Now()
	result, err := r.Run(ctx, Config{FPS: 1})
	if err != nil {
		t.Fatal(err)
	}
	if !result.Interrupted || result.Generations != 1 {
		t.Errorf("result = %+v", result)
	}
	if time.Since(start) > 500*time.Millisecond {
		t.Error("cancel should not wait for the next frame")
	}
}

func TestRunnerRendererStop(t *testing.T) {
	g := blinkerGrid(t)
	r := New(g, RendererFunc(func(g *life.Grid) error {
		if g.Generation() == 2 {
			return ErrStopped
		}
		return nil
	}))

	result, err := r.Run(context.Background(), Config{})
	if err != nil {
		t.Fatalf("stop should not be an error: %v", err)
	}
	if !result.Interrupted || result.Generations != 2 {
		t.Errorf("result = %+v", result)
	}
}

func TestRunnerRendererError(t *testing.T) {
	boom := errors.New("boom")
	r := New(blinkerGrid(t), RendererFunc(func(*life.Grid) error { return boom }))

	_, err := r.Run(context.Background(), Config{Generations: 3})
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped renderer error, got %v", err)
	}
}

func TestRunnerInvalidConfig(t *testing.T) {
	r := New(blinkerGrid(t), nil)
	_, err := r.Run(context.Background(), Config{FPS: -1})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestConfigFrameDelay(t *testing.T) {
	tests := []struct {
		fps  int
		want time.Duration
	}{
		{0, 0},
		{1, time.Second},
		{5, 200 * time.Millisecond},
		{60, time.Second / 60},
	}
	for _, tt := range tests {
		if got := (Config{FPS: tt.fps}).FrameDelay(); got != tt.want {
			t.Errorf("fps %d: delay = %v, want %v", tt.fps, got, tt.want)
		}
	}
	if DefaultConfig().FPS != 5 {
		t.Error("default fps should be 5")
	}
}

func TestStep(t *testing.T) {
	g := blinkerGrid(t)
	Step(g, 6)
	if g.Generation() != 6 {
		t.Errorf("generation = %d, want 6", g.Generation())
	}
}
