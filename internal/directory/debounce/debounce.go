// Package debounce coalesces bursts of lookups for the same key. Only the
// trailing call in a burst runs; earlier callers are told they were
// superseded so the client renders one result, the latest.
package debounce

import (
	"context"
	"errors"
	"sync"
	"time"

	"udyam-portal/internal/platform/delay"
)

// ErrSuperseded reports that a newer request for the same key arrived while
// this one was waiting its turn.
var ErrSuperseded = errors.New("superseded by a newer request")

type entry struct {
	cancel context.CancelFunc
}

// Debouncer delays each call by the wait window and cancels the pending call
// when a newer one arrives for the same key.
type Debouncer[T any] struct {
	wait    time.Duration
	mu      sync.Mutex
	pending map[string]*entry
}

func New[T any](wait time.Duration) *Debouncer[T] {
	return &Debouncer[T]{
		wait:    wait,
		pending: make(map[string]*entry),
	}
}

// Do waits out the debounce window and then runs fn, unless a later Do for
// the same key supersedes this call first. Caller cancellation is passed
// through unchanged.
func (d *Debouncer[T]) Do(ctx context.Context, key string, fn func(context.Context) (T, error)) (T, error) {
	var zero T

	callCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	e := &entry{cancel: cancel}
	d.mu.Lock()
	if prev, ok := d.pending[key]; ok {
		prev.cancel()
	}
	d.pending[key] = e
	d.mu.Unlock()

	defer func() {
		d.mu.Lock()
		// Only remove our own registration; a newer call may own the slot.
		if d.pending[key] == e {
			delete(d.pending, key)
		}
		d.mu.Unlock()
	}()

	if err := delay.Wait(callCtx, d.wait); err != nil {
		return zero, classify(ctx, err)
	}

	result, err := fn(callCtx)
	if err != nil {
		return zero, classify(ctx, err)
	}
	return result, nil
}

// classify maps a cancellation caused by supersession to ErrSuperseded while
// leaving caller-driven cancellation and ordinary failures untouched.
func classify(parent context.Context, err error) error {
	if errors.Is(err, context.Canceled) && parent.Err() == nil {
		return ErrSuperseded
	}
	return err
}
