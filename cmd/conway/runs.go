package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/conway/internal/analysis"
	"github.com/san-kum/conway/internal/config"
	"github.com/san-kum/conway/internal/export"
	"github.com/san-kum/conway/internal/storage"
	"github.com/spf13/cobra"
)

var plotSVG string

// openStore returns the run store named by --data, CONWAY_DATA_DIR or the
// default, in that order.
func openStore(cmd *cobra.Command) (*storage.Store, error) {
	cfg := config.DefaultConfig()
	if err := config.ApplyEnv(cfg); err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("data") {
		cfg.DataDir = dataDir
	}
	return storage.New(cfg.DataDir), nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPATTERN\tSIZE\tGENERATIONS\tPEAK\tTIME")
	for _, r := range runs {
		gens := fmt.Sprint(r.Generations)
		if r.Interrupted {
			gens += "*"
		}
		fmt.Fprintf(w, "%s\t%s\t%dx%d\t%s\t%.0f\t%s\n",
			r.ID, r.Pattern, r.Width, r.Height, gens, r.Metrics["peak_population"],
			r.Timestamp.Format("2006-01-02 15:04:05"))
	}
	return w.Flush()
}

func loadRun(cmd *cobra.Command, runID string) (*storage.RunMetadata, []int, error) {
	st, err := openStore(cmd)
	if err != nil {
		return nil, nil, err
	}
	meta, err := st.Load(runID)
	if err != nil {
		return nil, nil, err
	}
	population, err := st.LoadPopulation(runID)
	if err != nil {
		return nil, nil, err
	}
	if len(population) == 0 {
		return nil, nil, fmt.Errorf("run %s has no data", runID)
	}
	return meta, population, nil
}

func plotRun(cmd *cobra.Command, args []string) error {
	meta, population, err := loadRun(cmd, args[0])
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("pattern: %s (%dx%d)\n", meta.Pattern, meta.Width, meta.Height)
	fmt.Printf("generations: %d\n\n", len(population))

	graph := asciigraph.Plot(toFloats(population),
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption("live cells per generation"),
	)
	fmt.Println(graph)

	if plotSVG == "" {
		return nil
	}
	svg := export.PopulationToSVG(population, 800, 300, "#4ec9b0")
	if err := os.WriteFile(plotSVG, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("\nwrote %s\n", plotSVG)
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	return st.ExportJSON(os.Stdout, args[0])
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	meta, population, err := loadRun(cmd, args[0])
	if err != nil {
		return err
	}

	fmt.Printf("analysis: %s\n", meta.ID)
	fmt.Printf("pattern: %s\n\n", meta.Pattern)

	s := analysis.Summarize(population)
	fmt.Printf("generations: %d\n", s.Generations)
	fmt.Printf("population: min %d, max %d, mean %.1f, final %d\n", s.Min, s.Max, s.Mean, s.Final)
	if s.SettledAt >= 0 {
		fmt.Printf("settled at generation %d\n", s.SettledAt)
	} else {
		fmt.Println("still changing at the end of the run")
	}

	if len(population) < 4 {
		return nil
	}
	ps := analysis.PowerSpectrum(toFloats(population))
	graph := asciigraph.Plot(ps,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("power spectrum (population)"),
	)
	fmt.Println()
	fmt.Println(graph)
	fmt.Println()

	period, power := analysis.DominantPeriod(population)
	if period == 0 {
		fmt.Println("no dominant oscillation")
		return nil
	}
	fmt.Printf("dominant period: %.2f generations (power %.3g)\n", period, power)
	return nil
}

func toFloats(values []int) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = float64(v)
	}
	return out
}
