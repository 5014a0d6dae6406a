package command

import (
	"context"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// CompensationPool runs compensation work on a bounded set of workers.
// Run blocks until the submitted work has finished.
type CompensationPool struct {
	sem *semaphore.Weighted
}

// NewCompensationPool creates a pool with the given number of workers
// (at least one).
func NewCompensationPool(workers int) *CompensationPool {
	if workers < 1 {
		workers = 1
	}
	return &CompensationPool{sem: semaphore.NewWeighted(int64(workers))}
}

// Run executes fn on a pool worker and waits for its result. It returns
// ctx.Err() if no worker frees up before ctx is done.
func (p *CompensationPool) Run(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := p.sem.Acquire(ctx, 1); err != nil {
		return err
	}

	var g errgroup.Group
	g.Go(func() error {
		defer p.sem.Release(1)
		return fn(ctx)
	})
	return g.Wait()
}
