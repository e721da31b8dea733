// time_control.go manages the search's time budget (spec §5: cooperative
// time-cutoff polling, no preemption). The search checks ShouldStop
// periodically rather than being interrupted, so a deep, slow node can run
// a little past the deadline; this is the only concurrency primitive this
// package uses outside of channels, and it exists because a UCI "stop"
// command arrives on a separate goroutine from the one running Play.
//
// Grounded on the deadline/atomic-flag design of
// _examples/easychessanimations-zurichess/engine/time_control.go.

package engine

import (
	"sync/atomic"
	"time"
)

// checkNodesInterval is how many nodes the search visits between clock
// reads, keeping time.Now() off the hot path.
const checkNodesInterval = 2048

// TimeControl tracks a search's time budget and stop signal.
type TimeControl struct {
	started  time.Time
	deadline time.Time
	hasLimit bool
	stopped  atomic.Bool
}

// NewTimeControl returns a TimeControl with no time limit; the search runs
// until Stop is called or it exhausts the requested depth.
func NewTimeControl() *TimeControl {
	return &TimeControl{started: time.Now()}
}

// NewTimeControlFor returns a TimeControl that requests Stop on its own
// once budget has elapsed from now.
func NewTimeControlFor(budget time.Duration) *TimeControl {
	now := time.Now()
	return &TimeControl{started: now, deadline: now.Add(budget), hasLimit: true}
}

// Stop requests that the search return as soon as it next polls. Safe to
// call from a different goroutine than the one running the search, which
// is how a UCI "stop" command reaches an in-progress Play.
func (tc *TimeControl) Stop() { tc.stopped.Store(true) }

// Stopped reports whether Stop has been called or ShouldStop has found the
// deadline passed.
func (tc *TimeControl) Stopped() bool { return tc.stopped.Load() }

// ShouldStop reports whether the search should return now, given it has
// visited nodes total nodes so far. It only consults the wall clock every
// checkNodesInterval nodes.
func (tc *TimeControl) ShouldStop(nodes uint64) bool {
	if tc.stopped.Load() {
		return true
	}
	if !tc.hasLimit || nodes%checkNodesInterval != 0 {
		return false
	}
	if time.Now().After(tc.deadline) {
		tc.stopped.Store(true)
		return true
	}
	return false
}

// Elapsed returns the time since the search started.
func (tc *TimeControl) Elapsed() time.Duration { return time.Since(tc.started) }
