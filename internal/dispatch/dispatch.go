// Package dispatch provides the single UI queue that owns application state.
//
// Callbacks arriving from other goroutines (global hotkey, tray menu, window
// buttons) are posted here instead of touching shared state inline.
package dispatch

import (
	"context"
	"sync"
)

// Queue runs posted functions one at a time, in the order they were posted.
type Queue struct {
	mu      sync.Mutex
	pending []func()
	closed  bool
	wake    chan struct{}
	done    chan struct{}
}

// New creates an empty queue. Call Run to start draining it.
func New() *Queue {
	return &Queue{
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
	}
}

// Post appends fn to the queue. It never blocks.
// Posts after Close are dropped; Post reports whether fn was accepted.
func (q *Queue) Post(fn func()) bool {
	if fn == nil {
		return false
	}

	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return false
	}
	q.pending = append(q.pending, fn)
	q.mu.Unlock()

	select {
	case q.wake <- struct{}{}:
	default:
	}
	return true
}

// Run drains the queue until ctx is cancelled or Close is called.
// Functions already queued when Close is called still run.
func (q *Queue) Run(ctx context.Context) {
	for {
		for {
			fn, ok := q.next()
			if !ok {
				break
			}
			fn()
		}

		select {
		case <-ctx.Done():
			return
		case <-q.done:
			// Drain what was accepted before Close.
			for {
				fn, ok := q.next()
				if !ok {
					return
				}
				fn()
			}
		case <-q.wake:
		}
	}
}

func (q *Queue) next() (func(), bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.pending) == 0 {
		return nil, false
	}
	fn := q.pending[0]
	q.pending[0] = nil
	q.pending = q.pending[1:]
	return fn, true
}

// Close stops accepting new functions and makes Run return.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	q.closed = true
	close(q.done)
}
