package ledger

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Refresher coordinates overlapping reloads of a derived view.
//
// Consumers trigger a reload on every input change (search text, date
// filter, branch selection). Triggers inside the debounce window
// replace the pending one, a newer trigger cancels a still in-flight
// load, and completions are delivered only when their invocation is
// still the newest. A slow, superseded load can therefore never
// overwrite a newer result.
type Refresher struct {
	mu       sync.Mutex
	debounce time.Duration
	current  uuid.UUID
	cancel   context.CancelFunc
	timer    *time.Timer
}

// NewRefresher returns a refresher with the given debounce window. A
// zero window runs every trigger immediately.
func NewRefresher(debounce time.Duration) *Refresher {
	return &Refresher{debounce: debounce}
}

// Trigger schedules load after the debounce window. done is called
// with load's error only if no newer trigger has superseded this one
// in the meantime.
func (r *Refresher) Trigger(parent context.Context, load func(context.Context) error, done func(error)) {
	r.mu.Lock()
	defer r.mu.Unlock()

	generation := uuid.New()
	r.current = generation

	r.supersede()

	ctx, cancel := context.WithCancel(parent)
	r.cancel = cancel

	r.timer = time.AfterFunc(r.debounce, func() {
		err := load(ctx)
		cancel()

		r.mu.Lock()
		newest := r.current == generation
		r.mu.Unlock()

		if !newest {
			log.Debug().Str("generation", generation.String()).Msg("discarding superseded reload")
			return
		}

		if done != nil {
			done(err)
		}
	})
}

// Stop cancels the pending and in-flight work. It is safe to call at
// any time, typically when the consuming view goes away.
func (r *Refresher) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.current = uuid.Nil
	r.supersede()
}

// supersede stops the pending timer and cancels in-flight work. The
// caller must hold r.mu.
func (r *Refresher) supersede() {
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}

	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
}
