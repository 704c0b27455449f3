// Package workerpool provides simple concurrent processing utilities.
package workerpool

import (
	"context"
	"sync"
)

// Collect runs a worker pool over the provided work items and gathers the
// results. A nil result marks an item that produced nothing and is omitted.
// Results arrive in completion order; callers needing the input order must
// sort. The first process error cancels the pool and is returned.
func Collect[T, R any](
	ctx context.Context,
	workerCount int,
	items []T,
	process func(context.Context, T) (*R, error),
) ([]R, error) {
	results := make([]R, 0, len(items))
	mu := sync.Mutex{}

	err := Process(ctx, workerCount, items, func(ctx context.Context, item T) error {
		res, err := process(ctx, item)
		if err != nil {
			return err
		}
		if res == nil {
			return nil
		}
		mu.Lock()
		results = append(results, *res)
		mu.Unlock()
		return nil
	}, nil)
	if err != nil {
		return nil, err
	}
	return results, nil
}

// Process runs a worker pool over the provided work items, invoking process for each.
// If process returns an error, the pool cancels the context and stops further work.
func Process[T any](
	ctx context.Context,
	workerCount int,
	items []T,
	process func(context.Context, T) error,
	onCancel func(),
) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	tasks := make(chan T, workerCount)
	errs := make(chan error, workerCount)
	wg := sync.WaitGroup{}
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case item, ok := <-tasks:
					if !ok {
						return
					}
					if err := process(ctx, item); err != nil {
						select {
						case errs <- err:
						default:
						}
						if onCancel != nil {
							onCancel()
						}
						cancel()
						return
					}
				}
			}
		}()
	}

	go func() {
		for _, item := range items {
			select {
			case <-ctx.Done():
				close(tasks)
				return
			case tasks <- item:
			}
		}
		close(tasks)
	}()

	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			return err
		}
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	return nil
}
