package reconcile

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Job is one unit of reconciliation work, typically a single device snapshot.
type Job struct {
	// Name identifies the job in the resulting Outcome.
	Name string

	// Run performs the reconciliation.
	Run func(ctx context.Context) (*Summary, error)
}

// RunAll executes jobs with at most workers running at once and returns one Outcome per
// job, in job order. A failing job does not stop the others: each device is reconciled
// independently. Jobs not yet started when ctx is cancelled report ctx.Err().
func RunAll(ctx context.Context, workers int, jobs []Job) []Outcome {
	if workers <= 0 {
		workers = 1
	}

	outcomes := make([]Outcome, len(jobs))

	var g errgroup.Group
	g.SetLimit(workers)

	for i, job := range jobs {
		g.Go(func() error {
			outcomes[i].Name = job.Name
			if err := ctx.Err(); err != nil {
				outcomes[i].Err = err
				return nil
			}
			summary, err := job.Run(ctx)
			outcomes[i].Summary = summary
			outcomes[i].Err = err
			return nil
		})
	}

	// Jobs never return errors to the group; failures live in the outcomes.
	_ = g.Wait()

	return outcomes
}
