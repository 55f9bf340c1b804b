package preview

import (
	"sync"
	"time"

	"github.com/uber/yaml-preview/src/preview/entity"
	"github.com/uber/yaml-preview/src/preview/internal/clock"
)

// sendFunc delivers a snapshot to the preview panel.
type sendFunc func(snapshot entity.ChangeSnapshot)

// streamer coalesces bursts of document changes into single snapshot sends.
// Delivery is trailing-edge: each scheduled snapshot restarts the quiet period
// and replaces whatever was pending, so a burst of edits produces exactly one
// send carrying the final state.
type streamer struct {
	mu       sync.Mutex
	delay    time.Duration
	clock    clock.Clock
	timer    clock.Timer
	pending  *entity.ChangeSnapshot
	disposed bool
	send     sendFunc
}

func newStreamer(delay time.Duration, clk clock.Clock, send sendFunc) *streamer {
	return &streamer{
		delay: delay,
		clock: clk,
		send:  send,
	}
}

// schedule queues a snapshot for delivery once the quiet period elapses.
// A non-positive delay delivers immediately.
func (s *streamer) schedule(snapshot entity.ChangeSnapshot) {
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		return
	}

	s.pending = &snapshot
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}

	if s.delay <= 0 {
		s.mu.Unlock()
		s.fire()
		return
	}

	s.timer = s.clock.AfterFunc(s.delay, s.fire)
	s.mu.Unlock()
}

// fire delivers the pending snapshot, if any. A fire that races with dispose
// or with a fresh schedule resolves against the current state and never
// delivers stale data.
func (s *streamer) fire() {
	s.mu.Lock()
	if s.disposed || s.pending == nil {
		s.mu.Unlock()
		return
	}
	snapshot := *s.pending
	s.pending = nil
	s.timer = nil
	s.mu.Unlock()

	s.send(snapshot)
}

// dispose cancels any pending delivery. All subsequent schedule and fire calls are no-ops.
func (s *streamer) dispose() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.disposed = true
	s.pending = nil
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
