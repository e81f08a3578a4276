package config

import "sort"

// Presets holds named starting configurations per pattern.
var Presets = map[string]map[string]*Config{
	"pulsar": {
		"default": {Pattern: "pulsar", Width: 30, Height: 30, FPS: 5},
		"fast":    {Pattern: "pulsar", Width: 30, Height: 30, FPS: 15},
	},
	"glider_gun": {
		"default": {Pattern: "glider_gun", Width: 50, Height: 30, FPS: 10},
		"long":    {Pattern: "glider_gun", Width: 80, Height: 40, FPS: 20, Generations: 600},
	},
	"glider": {
		"default": {Pattern: "glider", Width: 30, Height: 20, FPS: 5},
		"wide":    {Pattern: "glider", Width: 60, Height: 40, FPS: 10},
	},
	"random": {
		"dense":  {Pattern: "random", Width: 60, Height: 40, FPS: 10, Probability: 0.5},
		"sparse": {Pattern: "random", Width: 60, Height: 40, FPS: 10, Probability: 0.15},
	},
	"beacon": {
		"slow": {Pattern: "beacon", Width: 12, Height: 12, FPS: 2},
	},
	"block": {
		"still": {Pattern: "block", Width: 8, Height: 8, FPS: 2, Generations: 10},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(pattern, preset string) *Config {
	patternPresets, ok := Presets[pattern]
	if !ok {
		return nil
	}
	cfg, ok := patternPresets[preset]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets(pattern string) []string {
	patternPresets, ok := Presets[pattern]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(patternPresets))
	for name := range patternPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PresetPatterns lists the patterns that have presets.
func PresetPatterns() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
