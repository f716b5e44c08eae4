package worker

import (
	"context"
	"sync"
)

// Pool applies one function to a fixed list of tasks on a bounded number of
// goroutines. Outputs come back in task order regardless of completion order.
type Pool[T, R any] struct {
	workers int
	fn      func(ctx context.Context, task T) R
	skip    func(task T, err error) R
}

// NewPool creates a pool running fn on at most workers goroutines
func NewPool[T, R any](workers int, fn func(ctx context.Context, task T) R) *Pool[T, R] {
	if workers <= 0 {
		workers = 1
	}
	return &Pool[T, R]{workers: workers, fn: fn}
}

// OnSkip sets the output for tasks that never started because ctx ended.
// Without it those slots hold the zero value of R.
func (p *Pool[T, R]) OnSkip(skip func(task T, err error) R) *Pool[T, R] {
	p.skip = skip
	return p
}

// Run executes every task and returns out[i] for tasks[i].
// Once ctx is done no new task is started; tasks already running finish.
func (p *Pool[T, R]) Run(ctx context.Context, tasks []T) []R {
	out := make([]R, len(tasks))
	if len(tasks) == 0 {
		return out
	}

	started := make([]bool, len(tasks))
	indexes := make(chan int)

	workers := p.workers
	if workers > len(tasks) {
		workers = len(tasks)
	}

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				// each index is owned by exactly one worker
				started[i] = true
				out[i] = p.fn(ctx, tasks[i])
			}
		}()
	}

feed:
	for i := range tasks {
		if ctx.Err() != nil {
			break
		}
		select {
		case <-ctx.Done():
			break feed
		case indexes <- i:
		}
	}
	close(indexes)
	wg.Wait()

	if p.skip != nil {
		err := ctx.Err()
		if err == nil {
			err = context.Canceled
		}
		for i, ok := range started {
			if !ok {
				out[i] = p.skip(tasks[i], err)
			}
		}
	}

	return out
}
