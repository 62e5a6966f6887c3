package asyncx_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/btnwtn/form-bureaucracy/asyncx"
	"github.com/btnwtn/form-bureaucracy/errx"
)

func TestGoResolves(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	future := asyncx.Go(ctx, func(ctx context.Context) (string, error) {
		time.Sleep(20 * time.Millisecond)
		return "done", nil
	})

	result, err := future.Await(ctx)
	require.NoError(t, err)
	require.Equal(t, "done", result)
}

func TestGoPropagatesError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	boom := errors.New("boom")
	future := asyncx.Go(ctx, func(ctx context.Context) (int, error) {
		return 0, boom
	})

	_, err := future.Await(ctx)
	require.Same(t, boom, err)
}

func TestGoPreCanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ran := false
	future := asyncx.Go(ctx, func(ctx context.Context) (int, error) {
		ran = true
		return 1, nil
	})

	_, err := future.Await(context.Background())
	require.ErrorIs(t, err, context.Canceled)
	require.False(t, ran)

	var xerr *errx.Error
	require.ErrorAs(t, err, &xerr)
	require.Equal(t, asyncx.ErrCanceled, xerr.Code)
}

func TestResolvedAndRejected(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	resolved := asyncx.Resolved([]string{"a"})
	require.True(t, resolved.IsComplete())

	result, err := resolved.Await(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"a"}, result)

	boom := errors.New("boom")
	rejected := asyncx.Rejected[[]string](boom)
	require.True(t, rejected.IsComplete())

	result, err = rejected.Await(ctx)
	require.Same(t, boom, err)
	require.Nil(t, result)
}

func TestThenTransforms(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	future := asyncx.Then(asyncx.Resolved(2), func(n int) (int, error) {
		return n * 21, nil
	})

	result, err := future.Await(ctx)
	require.NoError(t, err)
	require.Equal(t, 42, result)
}

func TestThenPassesErrorThrough(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	boom := errors.New("boom")
	called := false
	future := asyncx.Then(asyncx.Rejected[int](boom), func(n int) (int, error) {
		called = true
		return n, nil
	})

	_, err := future.Await(ctx)
	require.Same(t, boom, err)
	require.False(t, called)
}

func TestAwaitContextExpiryLeavesFutureUsable(t *testing.T) {
	t.Parallel()

	future := asyncx.Go(context.Background(), func(ctx context.Context) (string, error) {
		time.Sleep(50 * time.Millisecond)
		return "late", nil
	})

	shortCtx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := future.Await(shortCtx)
	require.ErrorIs(t, err, context.DeadlineExceeded)

	// The computation itself was unaffected; a second wait sees the result
	result, err := future.Await(context.Background())
	require.NoError(t, err)
	require.Equal(t, "late", result)
}

func TestAwaitTimeout(t *testing.T) {
	t.Parallel()

	future := asyncx.Go(context.Background(), func(ctx context.Context) (int, error) {
		time.Sleep(100 * time.Millisecond)
		return 1, nil
	})

	_, err := future.AwaitTimeout(10 * time.Millisecond)
	var xerr *errx.Error
	require.ErrorAs(t, err, &xerr)
	require.Equal(t, asyncx.ErrTimeout, xerr.Code)
}

func TestAll(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	results, err := asyncx.All(ctx,
		asyncx.Resolved(1),
		asyncx.Resolved(2),
		asyncx.Resolved(3),
	)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, results)
}

func TestAllFirstErrorWins(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	boom := errors.New("boom")
	results, err := asyncx.All(ctx,
		asyncx.Resolved(1),
		asyncx.Rejected[int](boom),
		asyncx.Resolved(3),
	)
	require.Same(t, boom, err)
	require.Nil(t, results)
}

func TestAnyReturnsFirstSettled(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	slow := asyncx.Go(ctx, func(ctx context.Context) (string, error) {
		time.Sleep(100 * time.Millisecond)
		return "slow", nil
	})
	fast := asyncx.Resolved("fast")

	_, result, err := asyncx.Any(ctx, slow, fast)
	require.NoError(t, err)
	require.Equal(t, "fast", result)
}

func TestAnyEmpty(t *testing.T) {
	t.Parallel()

	_, _, err := asyncx.Any[int](context.Background())
	var xerr *errx.Error
	require.ErrorAs(t, err, &xerr)
	require.Equal(t, asyncx.ErrNoFutures, xerr.Code)
}
