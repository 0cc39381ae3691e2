// Package clock abstracts timer scheduling so timed state transitions
// (dwell timeouts, silence-mode phase delays, the ambient interval) are
// cancellable and deterministic under test.
package clock

import "time"

// Timer is a cancellable scheduled call
type Timer interface {
	// Stop prevents the call from firing; reports whether it was pending
	Stop() bool
}

// Clock schedules timers and reports the current time
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

type realClock struct{}

// New returns the wall clock
func New() Clock {
	return realClock{}
}

func (realClock) Now() time.Time {
	return time.Now()
}

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
