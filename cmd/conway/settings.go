package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/san-kum/conway/internal/config"
	"github.com/san-kum/conway/internal/life"
	"github.com/san-kum/conway/internal/patterns"
	"github.com/spf13/pflag"
)

// runFlags are the flags shared by every command that starts a simulation.
type runFlags struct {
	configFile  string
	preset      string
	patternFile string
	width       int
	height      int
	fps         int
	generations int
	cellSize    int
	probability float64
	seed        int64
	theme       string
	record      bool
}

func (f *runFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.configFile, "config", "", "config file path (yaml)")
	fs.StringVar(&f.preset, "preset", "", "use preset configuration")
	fs.StringVar(&f.patternFile, "pattern-file", "", "load the starting pattern from a plaintext .cells file")
	fs.IntVar(&f.width, "width", config.DefaultWidth, "grid width in cells")
	fs.IntVar(&f.height, "height", config.DefaultHeight, "grid height in cells")
	fs.IntVar(&f.fps, "fps", config.DefaultFPS, "generations per second")
	fs.IntVar(&f.generations, "generations", 0, "stop after this many generations (0 = unlimited)")
	fs.IntVar(&f.cellSize, "cell-size", config.DefaultCellSize, "cell size in pixels (gui, svg)")
	fs.Float64Var(&f.probability, "probability", config.DefaultProbability, "fill probability for the random pattern")
	fs.Int64Var(&f.seed, "seed", 0, "random seed (0 = unseeded)")
	fs.StringVar(&f.theme, "theme", config.DefaultTheme, "color theme (live)")
	fs.BoolVar(&f.record, "record", false, "save run statistics to the data directory")
}

// resolve builds the effective configuration: defaults, then the preset,
// the config file, CONWAY_* environment variables, and finally the flags
// set on the command line. A pattern argument counts as a flag.
func (f *runFlags) resolve(fs *pflag.FlagSet, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if f.preset != "" {
		name := cfg.Pattern
		if len(args) > 0 {
			name = args[0]
		}
		p := config.GetPreset(name, f.preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", f.preset, config.ListPresets(name))
		}
		cfg.Merge(p)
	}

	if f.configFile != "" {
		if _, err := config.LoadInto(cfg, f.configFile); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	if err := config.ApplyEnv(cfg); err != nil {
		return nil, err
	}

	if len(args) > 0 {
		cfg.Pattern = args[0]
	}
	if fs.Changed("pattern-file") {
		cfg.PatternFile = f.patternFile
	}
	if fs.Changed("width") {
		cfg.Width = f.width
	}
	if fs.Changed("height") {
		cfg.Height = f.height
	}
	if fs.Changed("fps") {
		cfg.FPS = f.fps
	}
	if fs.Changed("generations") {
		cfg.Generations = f.generations
	}
	if fs.Changed("cell-size") {
		cfg.CellSize = f.cellSize
	}
	if fs.Changed("probability") {
		cfg.Probability = f.probability
	}
	if fs.Changed("seed") {
		cfg.Seed = f.seed
	}
	if fs.Changed("theme") {
		cfg.Theme = f.theme
	}
	if fs.Changed("record") {
		cfg.Record = f.record
	}
	if fs.Changed("data") {
		cfg.DataDir, _ = fs.GetString("data")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// explicitSize reports whether the field size was chosen by the user rather
// than left at the defaults, in which case a pattern's preferred size wins.
func explicitSize(fs *pflag.FlagSet, cfg *config.Config) bool {
	return fs.Changed("width") || fs.Changed("height") ||
		cfg.Width != config.DefaultWidth || cfg.Height != config.DefaultHeight
}

// seed is a starting pattern together with the field it goes into. A zero
// width or height sizes the field to the pattern plus life.DefaultMargin.
type seed struct {
	name    string
	pattern [][]bool
	width   int
	height  int
}

func (s seed) grid() (*life.Grid, error) {
	if s.width <= 0 || s.height <= 0 {
		return life.FromPattern(s.pattern)
	}
	return life.FromPattern(s.pattern, life.WithSize(s.width, s.height))
}

func loadSeed(cfg *config.Config, explicit bool) (seed, error) {
	if cfg.PatternFile != "" {
		pattern, err := patterns.LoadFile(cfg.PatternFile)
		if err != nil {
			return seed{}, err
		}
		s := seed{
			name:    strings.TrimSuffix(filepath.Base(cfg.PatternFile), filepath.Ext(cfg.PatternFile)),
			pattern: pattern,
		}
		if explicit {
			s.width, s.height = cfg.Width, cfg.Height
		}
		return s, nil
	}

	entry, err := patterns.Lookup(cfg.Pattern)
	if err != nil {
		return seed{}, err
	}
	w, h := cfg.Width, cfg.Height
	if !explicit {
		w, h = entry.Size(0, 0)
	}
	opts := patterns.RandomOptions{Probability: cfg.Probability, Seed: cfg.Seed}
	return seed{
		name:    entry.Name,
		pattern: entry.Build(w, h, opts),
		width:   w,
		height:  h,
	}, nil
}
