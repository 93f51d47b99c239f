// Package clock abstracts the current time for testability. Production
// code injects Real(); tests inject Fake() pinned to a fixed instant so
// age calculations are deterministic.
package clock

import "time"

// Clock provides the current time. Code that needs "now" should take a
// Clock instead of calling time.Now directly.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// Real returns a Clock backed by time.Now.
func Real() Clock {
	return realClock{}
}

// FakeClock is a Clock pinned to an explicit instant.
type FakeClock struct {
	now time.Time
}

// Fake returns a FakeClock pinned to t.
func Fake(t time.Time) *FakeClock {
	return &FakeClock{now: t}
}

// Now returns the pinned instant.
func (f *FakeClock) Now() time.Time { return f.now }

// Set moves the clock to t.
func (f *FakeClock) Set(t time.Time) { f.now = t }

// Advance moves the clock forward by d.
func (f *FakeClock) Advance(d time.Duration) { f.now = f.now.Add(d) }
