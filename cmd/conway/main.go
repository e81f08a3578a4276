package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/san-kum/conway/internal/config"
	"github.com/san-kum/conway/internal/patterns"
	"github.com/spf13/cobra"
)

var (
	dataDir string
	verbose bool
	flags   runFlags
)

func main() {
	log.SetPrefix("conway: ")
	log.SetFlags(0)

	rootCmd := newRootCmd()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "conway [pattern]",
		Short:        "Conway's Game of Life on a toroidal grid",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE:         runSimulation,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if !verbose {
				log.SetOutput(io.Discard)
			}
		},
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultDataDir, "data directory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log diagnostics to stderr")
	flags.register(rootCmd.Flags())

	runCmd := &cobra.Command{
		Use:   "run [pattern]",
		Short: "run the simulation with the configured renderer",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSimulation,
	}
	flags.register(runCmd.Flags())

	liveCmd := &cobra.Command{
		Use:   "live [pattern]",
		Short: "run with the interactive terminal UI (pattern menu when no pattern is given)",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	flags.register(liveCmd.Flags())

	guiCmd := &cobra.Command{
		Use:   "gui [pattern]",
		Short: "run in a graphical window",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runGUI,
	}
	flags.register(guiCmd.Flags())

	patternsCmd := &cobra.Command{
		Use:   "patterns",
		Short: "list available patterns",
		RunE:  listPatterns,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [pattern]",
		Short: "list available presets",
		Args:  cobra.MaximumNArgs(1),
		RunE:  listPresets,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot the population of a recorded run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVar(&plotSVG, "svg", "", "also write the chart to this SVG file")

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export a recorded run as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "population statistics and frequency analysis of a recorded run",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	svgCmd := &cobra.Command{
		Use:   "svg [pattern]",
		Short: "write a generation as SVG",
		Args:  cobra.MaximumNArgs(1),
		RunE:  writeSVG,
	}
	flags.register(svgCmd.Flags())
	svgCmd.Flags().StringVarP(&svgOut, "output", "o", "", "output file (default <pattern>.svg)")
	svgCmd.Flags().IntVar(&svgAfter, "after", 0, "advance this many generations first")
	svgCmd.Flags().BoolVar(&svgBraille, "braille", false, "draw the braille canvas instead of square cells")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark every registered pattern",
		Args:  cobra.NoArgs,
		RunE:  benchPatterns,
	}
	benchCmd.Flags().IntVar(&benchGenerations, "generations", 1000, "generations per pattern")
	benchCmd.Flags().IntVar(&benchParallel, "parallel", 1, "patterns to run at once")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "sweep the fill probability of random soups",
		Args:  cobra.NoArgs,
		RunE:  runSweep,
	}
	sweepCmd.Flags().IntVar(&sweep.Width, "width", 40, "grid width")
	sweepCmd.Flags().IntVar(&sweep.Height, "height", 40, "grid height")
	sweepCmd.Flags().IntVar(&sweep.Generations, "generations", 200, "generations per trial")
	sweepCmd.Flags().Float64Var(&sweep.MinP, "min", 0.05, "lowest probability")
	sweepCmd.Flags().Float64Var(&sweep.MaxP, "max", 0.95, "highest probability")
	sweepCmd.Flags().IntVar(&sweep.NumSteps, "steps", 10, "number of probabilities")
	sweepCmd.Flags().IntVar(&sweep.Trials, "trials", 5, "trials per probability")
	sweepCmd.Flags().Int64Var(&sweep.Seed, "seed", 0, "base random seed (0 = unseeded)")
	sweepCmd.Flags().IntVar(&sweepParallel, "parallel", 0, "trials to run at once (0 = all)")

	scenarioCmd := &cobra.Command{
		Use:   "scenario [file]",
		Short: "run the steps of a YAML scenario headless",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}
	scenarioCmd.Flags().IntVar(&scenarioParallel, "parallel", 0, "steps to run at once (0 = all)")
	scenarioCmd.Flags().BoolVar(&scenarioRecord, "record", false, "save each step's statistics to the data directory")

	rootCmd.AddCommand(runCmd, liveCmd, guiCmd, patternsCmd, presetsCmd, listCmd, plotCmd, exportCmd, analyzeCmd, svgCmd, benchCmd, sweepCmd, scenarioCmd)
	return rootCmd
}

// reportUnknownPattern prints the valid names when err is an unknown pattern
// and reports whether it did.
func reportUnknownPattern(w io.Writer, err error) bool {
	var unknown *patterns.UnknownPatternError
	if !errors.As(err, &unknown) {
		return false
	}
	fmt.Fprintf(w, "Unknown pattern: %s\n", unknown.Name)
	fmt.Fprintf(w, "Available patterns: %s\n", strings.Join(unknown.Valid, ", "))
	return true
}
