package internal

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Gather calls task for every index in [0, n) concurrently and returns the
// results in index order.
//
// The first error cancels the context given to the other tasks and is
// returned once all of them are done. A panicking task does not crash the
// process from its own goroutine: the panic is raised again on the caller's
// goroutine after every task has finished.
func Gather[T any](ctx context.Context, n int, task func(ctx context.Context, i int) (T, error)) ([]T, error) {
	results := make([]T, n)
	if n == 0 {
		return results, nil
	}

	var (
		panicOnce sync.Once
		panicked  bool
		recovered any
	)

	g, groupCtx := errgroup.WithContext(ctx)
	for i := range n {
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					panicOnce.Do(func() {
						panicked = true
						recovered = r
					})
					err = errTaskPanicked
				}
			}()

			result, err := task(groupCtx, i)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}

	err := g.Wait()
	if panicked {
		panic(recovered)
	}
	if err != nil {
		return nil, err
	}
	return results, nil
}

var errTaskPanicked = errors.New("task panicked")
