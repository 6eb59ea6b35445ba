package app

import (
	"context"
	"time"

	"github.com/five82/domterm/internal/logging"
	"github.com/five82/domterm/internal/logtail"
	"github.com/five82/domterm/internal/state"
)

const (
	defaultFollowInterval = time.Second
	defaultFollowLines    = 200
	maxBackoff            = 30 * time.Second
)

// FollowOptions describe the file tailed into the output pane.
type FollowOptions struct {
	Path     string
	Lines    int
	Interval time.Duration
}

// StartFollower launches a background goroutine that re-reads the tail of
// opts.Path into store. notify is called whenever the lines change. Reads
// that fail back off exponentially. The returned channel is closed once the
// goroutine has exited after ctx ends.
func StartFollower(ctx context.Context, store *state.Store, opts FollowOptions, notify func()) <-chan struct{} {
	if opts.Interval <= 0 {
		opts.Interval = defaultFollowInterval
	}
	if opts.Lines <= 0 {
		opts.Lines = defaultFollowLines
	}
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			failures := refresh(store, opts, notify)
			timer := time.NewTimer(calculateBackoff(failures, opts.Interval))
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case <-timer.C:
			}
		}
	}()
	return done
}

// refresh reads the file once and returns the number of consecutive failures.
func refresh(store *state.Store, opts FollowOptions, notify func()) int {
	lines, err := logtail.Tail(opts.Path, opts.Lines)
	if err != nil {
		store.Update(nil, err)
		snap := store.Snapshot()
		logging.Warnf("follow %s failed (%d in a row): %v", opts.Path, snap.ConsecutiveFailures, err)
		return snap.ConsecutiveFailures
	}
	if store.Update(lines, nil) && notify != nil {
		notify()
	}
	return 0
}

// calculateBackoff doubles base for every consecutive failure, capped at
// maxBackoff.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	limit := max(maxBackoff, base)
	if failures >= 32 {
		return limit
	}
	return min(base<<failures, limit)
}
