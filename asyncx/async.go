package asyncx

import (
	"context"
)

// All waits for every future to settle and returns their results in order.
// The first error encountered wins; later futures still run to completion in
// their own goroutines, they are just no longer awaited.
func All[T any](ctx context.Context, futures ...*Future[T]) ([]T, error) {
	results := make([]T, len(futures))

	for i, f := range futures {
		result, err := f.Await(ctx)
		if err != nil {
			return nil, err
		}
		results[i] = result
	}

	return results, nil
}

// Any waits for the first future to settle and returns its index and
// outcome. With no futures it fails immediately.
func Any[T any](ctx context.Context, futures ...*Future[T]) (int, T, error) {
	if len(futures) == 0 {
		var zero T
		return -1, zero, ErrorRegistry.New(ErrNoFutures)
	}

	type settled struct {
		index  int
		result T
		err    error
	}

	done := make(chan settled, 1)

	for i, f := range futures {
		go func(idx int, f *Future[T]) {
			result, err := f.Await(ctx)
			select {
			case done <- settled{idx, result, err}:
			default:
				// Another future settled first
			}
		}(i, f)
	}

	s := <-done
	return s.index, s.result, s.err
}
