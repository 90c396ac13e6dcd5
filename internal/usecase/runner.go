package usecase

import (
	"context"
	"sync"

	"WavePull/internal/domain/models"
	"WavePull/pkg/queue"
)

// Job is one independent acquisition request: a station and a window.
type Job struct {
	Spec   models.StationSpec
	Window models.TimeWindow
	Dtype  string
}

// Runner dispatches many acquisitions onto a worker pool. Each request owns
// its own entities, so jobs run concurrently without coordination.
type Runner struct {
	acq  *Acquirer
	pool *queue.Pool
}

func NewRunner(acq *Acquirer, pool *queue.Pool) *Runner {
	return &Runner{acq: acq, pool: pool}
}

// Run executes all jobs and returns results in job order.
func (r *Runner) Run(ctx context.Context, jobs []Job) []Result {
	results := make([]Result, len(jobs))
	var wg sync.WaitGroup

	for i, job := range jobs {
		i, job := i, job
		wg.Add(1)
		err := r.pool.Submit(func(ctx context.Context) {
			defer wg.Done()
			results[i] = r.acq.Acquire(ctx, job.Spec, job.Window, job.Dtype)
		})
		if err != nil {
			wg.Done()
			results[i] = Result{Status: models.StatusFailed, Reason: models.ReasonDataUnavailable}
		}
	}

	wg.Wait()
	return results
}
