package patterns

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
)

// ErrUnknownPattern is wrapped by UnknownPatternError.
var ErrUnknownPattern = errors.New("patterns: unknown pattern")

// UnknownPatternError names the requested pattern and the valid choices.
type UnknownPatternError struct {
	Name  string
	Valid []string
}

func (e *UnknownPatternError) Error() string {
	return fmt.Sprintf("unknown pattern: %s (available: %s)", e.Name, strings.Join(e.Valid, ", "))
}

func (e *UnknownPatternError) Unwrap() error {
	return ErrUnknownPattern
}

// RandomOptions parameterizes random patterns; other builders ignore it.
// Seed 0 draws from the process-wide source.
type RandomOptions struct {
	Probability float64
	Seed        int64
}

func (o RandomOptions) rng() *rand.Rand {
	if o.Seed == 0 {
		return nil
	}
	return rand.New(rand.NewPCG(uint64(o.Seed), 0))
}

// Entry describes a named pattern. Width and Height, when non-zero, are
// the grid size the pattern is best shown in.
type Entry struct {
	Name        string
	Description string
	Width       int
	Height      int
	Build       func(width, height int, opts RandomOptions) [][]bool
}

func fixed(f func() [][]bool) func(int, int, RandomOptions) [][]bool {
	return func(int, int, RandomOptions) [][]bool { return f() }
}

var registry = map[string]Entry{
	"glider":     {Name: "glider", Description: "3x3 spaceship moving diagonally", Build: fixed(Glider)},
	"blinker":    {Name: "blinker", Description: "period 2 oscillator", Build: fixed(Blinker)},
	"block":      {Name: "block", Description: "2x2 still life", Build: fixed(Block)},
	"beacon":     {Name: "beacon", Description: "period 2 oscillator of two blocks", Build: fixed(Beacon)},
	"pulsar":     {Name: "pulsar", Description: "17x17 period 3 oscillator", Width: 30, Height: 30, Build: fixed(Pulsar)},
	"glider_gun": {Name: "glider_gun", Description: "Gosper glider gun", Width: 50, Height: 30, Build: fixed(GosperGliderGun)},
	"random": {
		Name:        "random",
		Description: "independent random cells filling the grid",
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		Build: func(w, h int, opts RandomOptions) [][]bool {
			return Random(w, h, opts.Probability, opts.rng())
		},
	},
}

var aliases = map[string]string{
	"gosper_glider_gun": "glider_gun",
	"gosper":            "glider_gun",
	"gun":               "glider_gun",
}

// Lookup returns the entry registered under name. Names are case
// insensitive and dashes are read as underscores.
func Lookup(name string) (Entry, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	if canonical, ok := aliases[key]; ok {
		key = canonical
	}
	e, ok := registry[key]
	if !ok {
		return Entry{}, &UnknownPatternError{Name: name, Valid: Names()}
	}
	return e, nil
}

// Names lists the registered pattern names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Entries returns every registered entry sorted by name.
func Entries() []Entry {
	out := make([]Entry, 0, len(registry))
	for _, name := range Names() {
		out = append(out, registry[name])
	}
	return out
}
