package automation

import (
	"context"
	"fmt"
	"os"

	"github.com/san-kum/conway/internal/metrics"
	"github.com/san-kum/conway/internal/patterns"
	"github.com/san-kum/conway/internal/sim"
	"gopkg.in/yaml.v3"
)

// DefaultGenerations bounds headless runs that do not set a limit.
const DefaultGenerations = 500

// Scenario defines a batch of headless runs
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep is a single run in a scenario
type ScenarioStep struct {
	Name        string  `yaml:"name"`
	Pattern     string  `yaml:"pattern"`
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	Generations int     `yaml:"generations"`
	Probability float64 `yaml:"probability"`
	Seed        int64   `yaml:"seed"`
}

// StepResult pairs a step with the outcome of its run.
type StepResult struct {
	Step   ScenarioStep
	Width  int
	Height int
	Result *sim.Result
}

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	if len(scenario.Steps) == 0 {
		return nil, fmt.Errorf("scenario %s has no steps", path)
	}
	return &scenario, nil
}

// RunScenario runs every step concurrently, at most limit at a time, and
// returns the results in step order.
func RunScenario(ctx context.Context, scenario *Scenario, limit int) ([]StepResult, error) {
	jobs := make([]sim.Job, 0, len(scenario.Steps))
	out := make([]StepResult, 0, len(scenario.Steps))

	for i, step := range scenario.Steps {
		if step.Probability == 0 {
			step.Probability = patterns.DefaultProbability
		}
		if step.Generations <= 0 {
			step.Generations = DefaultGenerations
		}
		g, err := patterns.NewGrid(step.Pattern, step.Width, step.Height, patterns.RandomOptions{
			Probability: step.Probability,
			Seed:        step.Seed,
		})
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		if step.Name == "" {
			step.Name = fmt.Sprintf("%s#%d", step.Pattern, i+1)
		}

		jobs = append(jobs, sim.Job{
			Name:        step.Name,
			Grid:        g,
			Generations: step.Generations,
			Metrics:     standardMetrics(),
		})
		out = append(out, StepResult{Step: step, Width: g.Width(), Height: g.Height()})
	}

	results, err := sim.NewEnsemble(limit, jobs...).Run(ctx)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].Result = results[i]
	}
	return out, nil
}

func standardMetrics() []sim.Metric {
	return []sim.Metric{
		metrics.NewPeakPopulation(),
		metrics.NewAveragePopulation(),
		metrics.NewPeriod(metrics.DefaultPeriodWindow),
	}
}

// ParameterSweep runs random soups across a range of fill probabilities.
type ParameterSweep struct {
	Width       int
	Height      int
	Generations int
	MinP        float64
	MaxP        float64
	NumSteps    int
	Trials      int
	Seed        int64
}

// SweepResult holds the averages over all trials at one probability.
type SweepResult struct {
	Probability    float64
	MeanInitial    float64
	MeanFinal      float64
	MeanPeak       float64
	StableFraction float64
}

// RunSweep executes a parameter sweep. Trial t at step i is seeded with
// Seed + i*Trials + t, so a non-zero Seed makes the sweep reproducible.
func RunSweep(ctx context.Context, sweep *ParameterSweep, limit int) ([]SweepResult, error) {
	if sweep.NumSteps < 1 || sweep.Trials < 1 {
		return nil, fmt.Errorf("sweep needs at least one step and one trial")
	}
	if sweep.MinP < 0 || sweep.MaxP > 1 || sweep.MinP > sweep.MaxP {
		return nil, fmt.Errorf("sweep probabilities must satisfy 0 <= min <= max <= 1")
	}
	generations := sweep.Generations
	if generations <= 0 {
		generations = DefaultGenerations
	}

	paramStep := 0.0
	if sweep.NumSteps > 1 {
		paramStep = (sweep.MaxP - sweep.MinP) / float64(sweep.NumSteps-1)
	}

	type trial struct {
		step    int
		initial int
		period  *metrics.Period
		peak    *metrics.PeakPopulation
	}
	trials := make([]trial, 0, sweep.NumSteps*sweep.Trials)
	jobs := make([]sim.Job, 0, cap(trials))

	for i := range sweep.NumSteps {
		p := sweep.MinP + float64(i)*paramStep
		for t := range sweep.Trials {
			opts := patterns.RandomOptions{Probability: p}
			if sweep.Seed != 0 {
				opts.Seed = sweep.Seed + int64(i*sweep.Trials+t)
			}
			g, err := patterns.NewGrid("random", sweep.Width, sweep.Height, opts)
			if err != nil {
				return nil, err
			}
			tr := trial{
				step:    i,
				initial: g.Population(),
				period:  metrics.NewPeriod(metrics.DefaultPeriodWindow),
				peak:    metrics.NewPeakPopulation(),
			}
			trials = append(trials, tr)
			jobs = append(jobs, sim.Job{
				Name:        fmt.Sprintf("p=%.3f#%d", p, t),
				Grid:        g,
				Generations: generations,
				Metrics:     []sim.Metric{tr.period, tr.peak},
			})
		}
	}

	if _, err := sim.NewEnsemble(limit, jobs...).Run(ctx); err != nil {
		return nil, err
	}

	results := make([]SweepResult, sweep.NumSteps)
	n := float64(sweep.Trials)
	for i := range results {
		results[i].Probability = sweep.MinP + float64(i)*paramStep
	}
	for j, tr := range trials {
		r := &results[tr.step]
		r.MeanInitial += float64(tr.initial) / n
		r.MeanFinal += float64(jobs[j].Grid.Population()) / n
		r.MeanPeak += tr.peak.Value() / n
		if tr.period.Stable() {
			r.StableFraction += 1 / n
		}
	}
	return results, nil
}
