package lambdaioc

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"
)

// lazyCell holds a value computed at most once. Failed computations are not
// stored, so the next call tries again.
type lazyCell struct {
	mu    sync.Mutex
	done  bool
	value any
}

// get holds the lock while compute runs: concurrent callers wait for the
// first one instead of computing the value a second time.
func (cell *lazyCell) get(compute func() (any, error)) (any, error) {
	cell.mu.Lock()
	defer cell.mu.Unlock()

	if cell.done {
		return cell.value, nil
	}
	value, err := compute()
	if err != nil {
		return nil, err
	}
	cell.value = value
	cell.done = true
	return value, nil
}

// asyncLazyCell is lazyCell for blocking computations. Callers arriving while
// the value is being computed share the in-flight computation.
type asyncLazyCell struct {
	mu       sync.RWMutex
	done     bool
	value    any
	inFlight singleflight.Group
}

func (cell *asyncLazyCell) load() (any, bool) {
	cell.mu.RLock()
	defer cell.mu.RUnlock()
	return cell.value, cell.done
}

func (cell *asyncLazyCell) store(value any) {
	cell.mu.Lock()
	defer cell.mu.Unlock()
	cell.value = value
	cell.done = true
}

// get shares one in-flight computation between concurrent callers. The
// computation runs with the values of the caller that started it but not its
// cancellation, so it is never aborted on behalf of the other callers. Each
// caller stops waiting when its own ctx is done.
//
// A panic in compute is raised again on every waiting caller.
func (cell *asyncLazyCell) get(ctx context.Context, compute func(ctx context.Context) (any, error)) (any, error) {
	if value, done := cell.load(); done {
		return value, nil
	}

	computeCtx := context.WithoutCancel(ctx)
	results := cell.inFlight.DoChan("value", func() (value any, err error) {
		defer func() {
			if r := recover(); r != nil {
				err = &computePanic{value: r}
			}
		}()

		if value, done := cell.load(); done {
			return value, nil
		}
		value, err = compute(computeCtx)
		if err != nil {
			return nil, err
		}
		cell.store(value)
		return value, nil
	})

	select {
	case result := <-results:
		var p *computePanic
		if errors.As(result.Err, &p) {
			panic(p.value)
		}
		return result.Val, result.Err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// computePanic carries a recovered panic out of the singleflight goroutine.
type computePanic struct {
	value any
}

func (p *computePanic) Error() string {
	return fmt.Sprintf("panic: %v", p.value)
}
