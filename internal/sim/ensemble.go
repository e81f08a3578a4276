package sim

import (
	"context"

	"github.com/san-kum/conway/internal/life"
	"golang.org/x/sync/errgroup"
)

// Job is one headless run inside an Ensemble.
type Job struct {
	Name        string
	Grid        *life.Grid
	Generations int
	Metrics     []Metric
}

// Ensemble runs independent grids concurrently. Each grid is owned by
// exactly one goroutine for the whole run, so no grid is shared.
type Ensemble struct {
	jobs  []Job
	limit int
}

// NewEnsemble returns an ensemble running at most limit jobs at once;
// limit <= 0 means no limit.
func NewEnsemble(limit int, jobs ...Job) *Ensemble {
	return &Ensemble{jobs: jobs, limit: limit}
}

// Run returns results in job order. The first failing job cancels the rest.
func (e *Ensemble) Run(ctx context.Context) ([]*Result, error) {
	results := make([]*Result, len(e.jobs))

	eg, ctx := errgroup.WithContext(ctx)
	if e.limit > 0 {
		eg.SetLimit(e.limit)
	}
	for i, job := range e.jobs {
		eg.Go(func() error {
			r := New(job.Grid, Discard)
			for _, m := range job.Metrics {
				r.AddMetric(m)
			}
			res, err := r.Run(ctx, Config{Generations: job.Generations})
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
