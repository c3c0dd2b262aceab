// Package fanout runs independent application-layer reads concurrently.
//
// All starts every task at once, up to a worker limit, and cancels the
// shared context as soon as one task fails. It is meant for handfuls of
// repository calls that feed a single response, such as the admin
// dashboard, not for unbounded batch work.
package fanout

import (
	"context"
	"sync"
)

// Task is one unit of work. It must honor ctx cancellation.
type Task func(ctx context.Context) error

// All runs tasks using at most maxWorkers goroutines and blocks until every
// started task returns. It returns the error of the first task to fail, or
// nil when all succeed. After the first failure the context passed to the
// other tasks is canceled and tasks still waiting for a worker are skipped.
// If the caller's ctx ends before a task could start, its error is returned.
//
// A maxWorkers below 1 runs every task concurrently.
func All(ctx context.Context, maxWorkers int, tasks ...Task) error {
	if len(tasks) == 0 {
		return nil
	}
	if maxWorkers < 1 || maxWorkers > len(tasks) {
		maxWorkers = len(tasks)
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		once     sync.Once
		firstErr error
		skipped  bool
		mu       sync.Mutex
		wg       sync.WaitGroup
	)
	fail := func(err error) {
		once.Do(func() {
			firstErr = err
			cancel()
		})
	}

	sem := make(chan struct{}, maxWorkers)
	for _, task := range tasks {
		wg.Add(1)
		go func() {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-runCtx.Done():
				mu.Lock()
				skipped = true
				mu.Unlock()
				return
			}

			if err := task(runCtx); err != nil {
				fail(err)
			}
		}()
	}
	wg.Wait()

	if firstErr != nil {
		return firstErr
	}
	if skipped {
		return ctx.Err()
	}
	return nil
}
