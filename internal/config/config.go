package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth       = 30
	DefaultHeight      = 20
	DefaultFPS         = 5
	DefaultCellSize    = 20
	DefaultPattern     = "glider"
	DefaultProbability = 0.3
	DefaultRenderer    = "console"
	DefaultTheme       = "default"
	DefaultDataDir     = ".conway"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid")

type Config struct {
	Pattern     string  `yaml:"pattern" env:"CONWAY_PATTERN"`
	PatternFile string  `yaml:"pattern_file,omitempty" env:"CONWAY_PATTERN_FILE"`
	Width       int     `yaml:"width" env:"CONWAY_WIDTH"`
	Height      int     `yaml:"height" env:"CONWAY_HEIGHT"`
	FPS         int     `yaml:"fps" env:"CONWAY_FPS"`
	Generations int     `yaml:"generations" env:"CONWAY_GENERATIONS"`
	CellSize    int     `yaml:"cell_size" env:"CONWAY_CELL_SIZE"`
	Probability float64 `yaml:"probability" env:"CONWAY_PROBABILITY"`
	Seed        int64   `yaml:"seed" env:"CONWAY_SEED"`
	Renderer    string  `yaml:"renderer" env:"CONWAY_RENDERER"`
	Theme       string  `yaml:"theme" env:"CONWAY_THEME"`
	Record      bool    `yaml:"record" env:"CONWAY_RECORD"`
	DataDir     string  `yaml:"data_dir" env:"CONWAY_DATA_DIR"`
}

func DefaultConfig() *Config {
	return &Config{
		Pattern:     DefaultPattern,
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		FPS:         DefaultFPS,
		CellSize:    DefaultCellSize,
		Probability: DefaultProbability,
		Renderer:    DefaultRenderer,
		Theme:       DefaultTheme,
		DataDir:     DefaultDataDir,
	}
}

// Load reads a YAML file over the defaults. Keys missing from the file keep
// their default values.
func Load(path string) (*Config, error) {
	return LoadInto(DefaultConfig(), path)
}

// LoadInto reads a YAML file over base, which is modified and returned.
func LoadInto(base *Config, path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read config file %s", path)
	}
	if err := yaml.Unmarshal(data, base); err != nil {
		return nil, errors.Wrapf(err, "parse config file %s", path)
	}
	return base, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ApplyEnv overlays CONWAY_* environment variables. Unset variables leave
// the current value alone.
func ApplyEnv(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Merge copies the non-zero fields of other onto c.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	if other.Pattern != "" {
		c.Pattern = other.Pattern
	}
	if other.PatternFile != "" {
		c.PatternFile = other.PatternFile
	}
	if other.Width > 0 {
		c.Width = other.Width
	}
	if other.Height > 0 {
		c.Height = other.Height
	}
	if other.FPS > 0 {
		c.FPS = other.FPS
	}
	if other.Generations > 0 {
		c.Generations = other.Generations
	}
	if other.CellSize > 0 {
		c.CellSize = other.CellSize
	}
	if other.Probability > 0 {
		c.Probability = other.Probability
	}
	if other.Seed != 0 {
		c.Seed = other.Seed
	}
	if other.Renderer != "" {
		c.Renderer = other.Renderer
	}
	if other.Theme != "" {
		c.Theme = other.Theme
	}
}

func (c *Config) Validate() error {
	switch {
	case c.Width <= 0:
		return fmt.Errorf("%w: width must be positive, got %d", ErrInvalid, c.Width)
	case c.Height <= 0:
		return fmt.Errorf("%w: height must be positive, got %d", ErrInvalid, c.Height)
	case c.FPS <= 0:
		return fmt.Errorf("%w: fps must be positive, got %d", ErrInvalid, c.FPS)
	case c.CellSize <= 0:
		return fmt.Errorf("%w: cell size must be positive, got %d", ErrInvalid, c.CellSize)
	case c.Probability < 0 || c.Probability > 1:
		return fmt.Errorf("%w: probability must be in [0, 1], got %g", ErrInvalid, c.Probability)
	case c.Generations < 0:
		return fmt.Errorf("%w: generations must not be negative, got %d", ErrInvalid, c.Generations)
	}
	return nil
}
