package debounce

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDo_RunsAfterWindow(t *testing.T) {
	d := New[string](5 * time.Millisecond)

	got, err := d.Do(context.Background(), "110001", func(context.Context) (string, error) {
		return "New Delhi", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "New Delhi", got)
}

func TestDo_NewerCallSupersedesPending(t *testing.T) {
	d := New[string](50 * time.Millisecond)

	firstErr := make(chan error, 1)
	go func() {
		_, err := d.Do(context.Background(), "pincode", func(context.Context) (string, error) {
			return "New Delhi", nil
		})
		firstErr <- err
	}()

	// Let the first call register before superseding it.
	time.Sleep(10 * time.Millisecond)

	got, err := d.Do(context.Background(), "pincode", func(context.Context) (string, error) {
		return "Mumbai", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "Mumbai", got)

	assert.ErrorIs(t, <-firstErr, ErrSuperseded)
}

func TestDo_DistinctKeysDoNotInterfere(t *testing.T) {
	d := New[string](20 * time.Millisecond)

	type result struct {
		value string
		err   error
	}
	results := make(chan result, 2)
	for _, key := range []string{"110001", "400001"} {
		key := key
		go func() {
			v, err := d.Do(context.Background(), key, func(context.Context) (string, error) {
				return key, nil
			})
			results <- result{v, err}
		}()
	}

	seen := map[string]bool{}
	for i := 0; i < 2; i++ {
		r := <-results
		require.NoError(t, r.err)
		seen[r.value] = true
	}
	assert.True(t, seen["110001"])
	assert.True(t, seen["400001"])
}

func TestDo_CallerCancellationIsNotSupersession(t *testing.T) {
	d := New[string](100 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := d.Do(ctx, "pincode", func(context.Context) (string, error) {
			return "never", nil
		})
		done <- err
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()

	err := <-done
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, ErrSuperseded)
}

func TestDo_OnlyTrailingCallRuns(t *testing.T) {
	d := New[int](30 * time.Millisecond)

	var calls atomic.Int32
	for i := 0; i < 3; i++ {
		go func() {
			_, _ = d.Do(context.Background(), "burst", func(context.Context) (int, error) {
				calls.Add(1)
				return 0, nil
			})
		}()
		time.Sleep(5 * time.Millisecond)
	}

	_, err := d.Do(context.Background(), "burst", func(context.Context) (int, error) {
		calls.Add(1)
		return 0, nil
	})
	require.NoError(t, err)

	// Give any stragglers a chance to run before asserting.
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())
}
