package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/san-kum/conway/internal/config"
	"github.com/san-kum/conway/internal/gui"
	"github.com/san-kum/conway/internal/life"
	"github.com/san-kum/conway/internal/metrics"
	"github.com/san-kum/conway/internal/patterns"
	"github.com/san-kum/conway/internal/sim"
	"github.com/san-kum/conway/internal/storage"
	"github.com/san-kum/conway/internal/tui"
	"github.com/san-kum/conway/internal/viz"
	"github.com/spf13/cobra"
)

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := flags.resolve(cmd.Flags(), args)
	if err != nil {
		return err
	}
	explicit := explicitSize(cmd.Flags(), cfg)

	switch cfg.Renderer {
	case "", "console":
		return runConsole(cmd, cfg, explicit)
	case "live", "tui":
		return startLive(cmd, cfg, explicit)
	case "gui":
		return startGUI(cmd, cfg, explicit)
	default:
		return fmt.Errorf("unknown renderer: %s (available: console, live, gui)", cfg.Renderer)
	}
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := flags.resolve(cmd.Flags(), args)
	if err != nil {
		return err
	}
	explicit := explicitSize(cmd.Flags(), cfg)

	if len(args) == 0 && cfg.PatternFile == "" {
		picker := tui.NewPicker(patterns.Entries(), tui.Settings{
			Pattern:     cfg.Pattern,
			Width:       cfg.Width,
			Height:      cfg.Height,
			FPS:         cfg.FPS,
			Generations: cfg.Generations,
			Probability: cfg.Probability,
		})
		s, ok, err := picker.Run()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		cfg.Pattern = s.Pattern
		cfg.Width, cfg.Height = s.Width, s.Height
		cfg.FPS = s.FPS
		cfg.Generations = s.Generations
		cfg.Probability = s.Probability
		if err := cfg.Validate(); err != nil {
			return err
		}
		explicit = true
	}
	return startLive(cmd, cfg, explicit)
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := flags.resolve(cmd.Flags(), args)
	if err != nil {
		return err
	}
	return startGUI(cmd, cfg, explicitSize(cmd.Flags(), cfg))
}

// prepare loads the seed and builds its grid. ok is false when the pattern
// name was unknown and the valid names have been printed.
func prepare(cmd *cobra.Command, cfg *config.Config, explicit bool) (s seed, g *life.Grid, ok bool, err error) {
	s, err = loadSeed(cfg, explicit)
	if err != nil {
		if reportUnknownPattern(cmd.OutOrStdout(), err) {
			return seed{}, nil, false, nil
		}
		return seed{}, nil, false, err
	}
	g, err = s.grid()
	if err != nil {
		return seed{}, nil, false, fmt.Errorf("build %s: %w", s.name, err)
	}
	log.Printf("pattern %s on %dx%d, fps %d, generation limit %d", s.name, g.Width(), g.Height(), cfg.FPS, cfg.Generations)
	return s, g, true, nil
}

func runConsole(cmd *cobra.Command, cfg *config.Config, explicit bool) error {
	s, g, ok, err := prepare(cmd, cfg, explicit)
	if err != nil || !ok {
		return err
	}

	fmt.Printf("Starting Conway's Game of Life with pattern: %s\n", s.name)
	r := tui.NewLiveRenderer(os.Stdout)
	r.Start()
	res, err := simulate(cmd.Context(), g, r, sim.Config{FPS: cfg.FPS, Generations: cfg.Generations})
	r.Stop()
	if err != nil {
		return err
	}
	return finish(cfg, s.name, g, res)
}

func startLive(cmd *cobra.Command, cfg *config.Config, explicit bool) error {
	s, err := loadSeed(cfg, explicit)
	if err != nil {
		if reportUnknownPattern(cmd.OutOrStdout(), err) {
			return nil
		}
		return err
	}
	m, err := viz.NewModel(viz.Options{
		Name:        s.name,
		Seed:        s.pattern,
		Width:       s.width,
		Height:      s.height,
		FPS:         cfg.FPS,
		Generations: cfg.Generations,
		Theme:       cfg.Theme,
		GIFPath:     s.name + ".gif",
	})
	if err != nil {
		return err
	}
	return viz.Run(m)
}

func startGUI(cmd *cobra.Command, cfg *config.Config, explicit bool) error {
	s, g, ok, err := prepare(cmd, cfg, explicit)
	if err != nil || !ok {
		return err
	}

	fmt.Printf("Starting Conway's Game of Life with pattern: %s\n", s.name)
	w := gui.NewWindow(cfg.CellSize, cfg.FPS)
	w.Open(g)
	// raylib paces the frames, so the runner itself does not wait.
	res, err := simulate(cmd.Context(), g, w, sim.Config{Generations: cfg.Generations})
	w.Close()
	if err != nil {
		return err
	}
	return finish(cfg, s.name, g, res)
}

func simulate(ctx context.Context, g *life.Grid, r sim.Renderer, cfg sim.Config) (*sim.Result, error) {
	runner := sim.New(g, r)
	runner.AddMetric(metrics.NewPeakPopulation())
	runner.AddMetric(metrics.NewAveragePopulation())
	runner.AddMetric(metrics.NewPeriod(metrics.DefaultPeriodWindow))
	return runner.Run(ctx, cfg)
}

func finish(cfg *config.Config, name string, g *life.Grid, res *sim.Result) error {
	if res.Interrupted {
		fmt.Println("\nAnimation stopped by user.")
	}
	fmt.Println("Game of Life simulation ended.")
	fmt.Printf("generations: %d\n", res.Generations)
	fmt.Printf("live cells: %d\n", g.Population())
	fmt.Printf("peak: %.0f\n", res.Metrics["peak_population"])
	if p := res.Metrics["period"]; p > 0 {
		fmt.Printf("period: %.0f\n", p)
	}
	log.Printf("elapsed %v", res.Elapsed)

	if !cfg.Record {
		return nil
	}
	st := storage.New(cfg.DataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(runMetadata(cfg, name, g, res), res.Population)
	if err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	fmt.Printf("run id: %s\n", runID)
	return nil
}

func runMetadata(cfg *config.Config, name string, g *life.Grid, res *sim.Result) storage.RunMetadata {
	meta := storage.RunMetadata{
		Pattern:     name,
		Width:       g.Width(),
		Height:      g.Height(),
		FPS:         cfg.FPS,
		Generations: res.Generations,
		Interrupted: res.Interrupted,
		Elapsed:     res.Elapsed,
		Metrics:     res.Metrics,
	}
	if name == "random" {
		meta.Seed = cfg.Seed
		meta.Probability = cfg.Probability
	}
	return meta
}
