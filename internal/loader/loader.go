// Package loader wraps repository calls in the asynchronous-state contract
// consumed by views: the latest data, whether a load is in flight and the
// last error message.
package loader

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
)

// DefaultErrorMessage is reported when a failure carries no description.
const DefaultErrorMessage = "An error occurred"

// State is a snapshot of a loader.
type State[T any] struct {
	Data    T      `json:"data"`
	Loading bool   `json:"loading"`
	Error   string `json:"error,omitempty"`
}

// resource tracks one fetchable value. Every load takes a sequence number and
// only the most recently started load may publish, so a slow superseded
// fetch never overwrites a newer result.
type resource[T any] struct {
	mu      sync.Mutex
	state   State[T]
	seq     uint64
	fetch   func(context.Context) (T, error)
	recover func(error) (T, bool)
	logger  zerolog.Logger
	name    string
}

func newResource[T any](name string, initial T, fetch func(context.Context) (T, error), logger zerolog.Logger) *resource[T] {
	return &resource[T]{
		state:  State[T]{Data: initial, Loading: true},
		fetch:  fetch,
		logger: logger,
		name:   name,
	}
}

func (r *resource[T]) snapshot() State[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// reset replaces the state and supersedes any load in flight.
func (r *resource[T]) reset(state State[T]) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	r.state = state
}

func (r *resource[T]) load(ctx context.Context) (State[T], bool) {
	return r.loadWith(ctx, r.fetch)
}

// loadWith runs fetch and publishes its outcome unless a newer load started
// in the meantime. It reports whether the outcome was published.
func (r *resource[T]) loadWith(ctx context.Context, fetch func(context.Context) (T, error)) (State[T], bool) {
	seq := r.begin()
	data, err := fetch(ctx)
	return r.publish(seq, data, err)
}

// begin marks a load as started and returns its sequence number.
func (r *resource[T]) begin() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	r.state.Loading = true
	return r.seq
}

// publish records the outcome of load seq unless a newer load has begun.
func (r *resource[T]) publish(seq uint64, data T, err error) (State[T], bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if seq != r.seq {
		r.logger.Debug().Str("loader", r.name).Uint64("seq", seq).Msg("loader: discarding superseded result")
		return r.state, false
	}
	r.state.Loading = false
	if err != nil {
		r.logger.Error().Err(err).Str("loader", r.name).Msg("loader: fetch failed")
		if r.recover != nil {
			if fallback, ok := r.recover(err); ok {
				r.state.Data = fallback
				r.state.Error = ""
				return r.state, true
			}
		}
		r.state.Error = ErrorMessage(err)
		return r.state, true
	}
	r.state.Data = data
	r.state.Error = ""
	return r.state, true
}

// ErrorMessage derives the user-facing text for a failure.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return DefaultErrorMessage
}
