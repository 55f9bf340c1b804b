package clock

import (
	"time"
)

// Clock is an interface that abstracts the functionality for scheduling time-based work.
type Clock interface {
	// AfterFunc waits for the duration to elapse and then calls f in its own goroutine.
	// A zero duration fires on the next scheduling opportunity.
	AfterFunc(duration time.Duration, f func()) Timer
}

// Timer is a handle to a scheduled call that may be stopped before it fires.
type Timer interface {
	// Stop prevents the Timer from firing. It returns false if the timer has
	// already fired or been stopped; stopping does not interrupt a call already in flight.
	Stop() bool
}

type clock struct{}

// New creates a new instance of Clock.
func New() Clock {
	return clock{}
}

func (clock) AfterFunc(duration time.Duration, f func()) Timer {
	return time.AfterFunc(duration, f)
}
