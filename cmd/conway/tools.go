package main

import (
	"fmt"
	"log"
	"os"
	"runtime"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/conway/internal/automation"
	"github.com/san-kum/conway/internal/config"
	"github.com/san-kum/conway/internal/export"
	"github.com/san-kum/conway/internal/metrics"
	"github.com/san-kum/conway/internal/patterns"
	"github.com/san-kum/conway/internal/sim"
	"github.com/san-kum/conway/internal/storage"
	"github.com/san-kum/conway/internal/viz"
	"github.com/spf13/cobra"
)

var (
	svgOut     string
	svgAfter   int
	svgBraille bool

	benchGenerations int
	benchParallel    int

	sweep         automation.ParameterSweep
	sweepParallel int

	scenarioParallel int
	scenarioRecord   bool
)

func listPatterns(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSIZE\tDESCRIPTION")
	for _, e := range patterns.Entries() {
		width, height := e.Size(0, 0)
		fmt.Fprintf(w, "%s\t%dx%d\t%s\n", e.Name, width, height, e.Description)
	}
	return w.Flush()
}

func listPresets(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		for _, name := range config.PresetPatterns() {
			fmt.Printf("%s: %v\n", name, config.ListPresets(name))
		}
		return nil
	}

	presets := config.ListPresets(args[0])
	if len(presets) == 0 {
		fmt.Printf("no presets for pattern: %s\n", args[0])
		return nil
	}
	fmt.Printf("presets for %s:\n", args[0])
	for _, name := range presets {
		p := config.GetPreset(args[0], name)
		fmt.Printf("  %-8s %dx%d at %d fps\n", name, p.Width, p.Height, p.FPS)
	}
	return nil
}

func writeSVG(cmd *cobra.Command, args []string) error {
	cfg, err := flags.resolve(cmd.Flags(), args)
	if err != nil {
		return err
	}
	s, g, ok, err := prepare(cmd, cfg, explicitSize(cmd.Flags(), cfg))
	if err != nil || !ok {
		return err
	}
	sim.Step(g, svgAfter)

	var svg string
	if svgBraille {
		c := viz.CanvasFor(g)
		c.Plot(g)
		svg = export.CanvasToSVG(c, float64(cfg.CellSize))
	} else {
		svg = export.GridToSVG(g, float64(cfg.CellSize))
	}

	out := svgOut
	if out == "" {
		out = s.name + ".svg"
	}
	if err := os.WriteFile(out, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s (generation %d, %d live cells)\n", out, g.Generation(), g.Population())
	return nil
}

func benchPatterns(cmd *cobra.Command, args []string) error {
	entries := patterns.Entries()
	jobs := make([]sim.Job, 0, len(entries))
	for _, e := range entries {
		g, err := e.Grid(0, 0, patterns.RandomOptions{Probability: patterns.DefaultProbability, Seed: 42})
		if err != nil {
			return err
		}
		jobs = append(jobs, sim.Job{
			Name:        e.Name,
			Grid:        g,
			Generations: benchGenerations,
			Metrics:     []sim.Metric{metrics.NewPeriod(metrics.DefaultPeriodWindow)},
		})
	}

	fmt.Printf("benchmarking %d patterns, %d generations each\n\n", len(jobs), benchGenerations)
	start := time.Now()
	results, err := sim.NewEnsemble(benchParallel, jobs...).Run(cmd.Context())
	if err != nil {
		return err
	}
	log.Printf("bench finished in %v", time.Since(start))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PATTERN\tSIZE\tGENERATIONS\tTIME\tGEN/SEC\tCELLS/SEC\tPERIOD")
	for i, res := range results {
		g := jobs[i].Grid
		secs := res.Elapsed.Seconds()
		if secs == 0 {
			secs = 1e-9
		}
		cells := float64(g.Width()*g.Height()) * float64(res.Generations)
		fmt.Fprintf(w, "%s\t%dx%d\t%d\t%v\t%.0f\t%.3g\t%.0f\n",
			jobs[i].Name, g.Width(), g.Height(), res.Generations, res.Elapsed.Round(time.Microsecond),
			float64(res.Generations)/secs, cells/secs, res.Metrics["period"])
	}
	return w.Flush()
}

func runSweep(cmd *cobra.Command, args []string) error {
	fmt.Printf("sweeping p in [%.2f, %.2f] over %d steps, %d trials, %dx%d for %d generations\n\n",
		sweep.MinP, sweep.MaxP, sweep.NumSteps, sweep.Trials, sweep.Width, sweep.Height, sweep.Generations)

	results, err := automation.RunSweep(cmd.Context(), &sweep, sweepParallel)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "P\tINITIAL\tFINAL\tPEAK\tSETTLED")
	finals := make([]float64, len(results))
	for i, r := range results {
		fmt.Fprintf(w, "%.3f\t%.1f\t%.1f\t%.1f\t%.0f%%\n",
			r.Probability, r.MeanInitial, r.MeanFinal, r.MeanPeak, r.StableFraction*100)
		finals[i] = r.MeanFinal
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if len(finals) > 1 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(finals,
			asciigraph.Height(10),
			asciigraph.Caption("mean final population by fill probability"),
		))
	}
	return nil
}

func runScenario(cmd *cobra.Command, args []string) error {
	sc, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}
	if sc.Name != "" {
		fmt.Printf("scenario: %s\n", sc.Name)
	}
	if sc.Description != "" {
		fmt.Println(sc.Description)
	}
	fmt.Println()

	limit := scenarioParallel
	if limit <= 0 {
		limit = runtime.NumCPU()
	}
	results, err := automation.RunScenario(cmd.Context(), sc, limit)
	if err != nil {
		if reportUnknownPattern(cmd.OutOrStdout(), err) {
			return nil
		}
		return err
	}

	var st *storage.Store
	if scenarioRecord {
		if st, err = openStore(cmd); err != nil {
			return err
		}
		if err := st.Init(); err != nil {
			return err
		}
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tPATTERN\tSIZE\tGENERATIONS\tPEAK\tMEAN\tPERIOD\tRUN")
	for _, r := range results {
		runID := "-"
		if st != nil {
			meta := storage.RunMetadata{
				Pattern:     r.Step.Pattern,
				Width:       r.Width,
				Height:      r.Height,
				Seed:        r.Step.Seed,
				Probability: r.Step.Probability,
				Generations: r.Result.Generations,
				Interrupted: r.Result.Interrupted,
				Elapsed:     r.Result.Elapsed,
				Metrics:     r.Result.Metrics,
			}
			if runID, err = st.Save(meta, r.Result.Population); err != nil {
				return err
			}
		}
		fmt.Fprintf(w, "%s\t%s\t%dx%d\t%d\t%.0f\t%.1f\t%.0f\t%s\n",
			r.Step.Name, r.Step.Pattern, r.Width, r.Height, r.Result.Generations,
			r.Result.Metrics["peak_population"], r.Result.Metrics["average_population"],
			r.Result.Metrics["period"], runID)
	}
	return w.Flush()
}
