// Package core provides the internal implementation of the double package's
// call recording, stubbing and verification infrastructure.
package core

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// Call is a single recorded invocation of a test double.
type Call struct {
	Target string
	Method string
	Args   []any
	Seq    uint64

	verified bool
}

// String renders the call as Target.Method(arg, arg).
func (c *Call) String() string {
	return fmt.Sprintf("%s.%s(%s)", c.Target, c.Method, formatArgs(c.Args))
}

// Verified reports whether a verification has accounted for this call.
func (c *Call) Verified() bool {
	return c.verified
}

// Controller owns the call log of one test and the goroutines waiting on it.
type Controller struct {
	T     TestReporter
	Timer Timer

	mu      sync.Mutex // Protects calls, waiters and seq
	calls   []*Call
	waiters []*waiter
	seq     uint64
}

// Await blocks until the number of logged calls accepted by validator makes
// ready return true, or until timeout elapses. A timeout of 0 checks once and
// returns immediately. It returns the final count and whether ready was met.
func (c *Controller) Await(
	timeout time.Duration,
	validator func(*Call) error,
	ready func(count int) bool,
) (int, bool) {
	c.mu.Lock()

	count := c.countLocked(validator)
	if ready(count) || timeout <= 0 {
		c.mu.Unlock()

		return count, ready(count)
	}

	// Register as waiter BEFORE unlocking so no call can slip past us
	myWaiter := &waiter{
		validator: validator,
		ready:     ready,
		done:      make(chan struct{}),
	}
	c.waiters = append(c.waiters, myWaiter)
	c.mu.Unlock()

	select {
	case <-myWaiter.done:
	case <-c.Timer.After(timeout):
		c.removeWaiter(myWaiter)
	}

	c.mu.Lock()
	count = c.countLocked(validator)
	c.mu.Unlock()

	return count, ready(count)
}

// Calls returns a snapshot of the call log in invocation order.
func (c *Controller) Calls() []Call {
	c.mu.Lock()
	defer c.mu.Unlock()

	snapshot := make([]Call, 0, len(c.calls))
	for _, call := range c.calls {
		snapshot = append(snapshot, *call)
	}

	return snapshot
}

// Count returns the number of logged calls accepted by validator.
func (c *Controller) Count(validator func(*Call) error) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.countLocked(validator)
}

// MarkVerified flags every logged call accepted by validator as verified.
func (c *Controller) MarkVerified(validator func(*Call) error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, call := range c.calls {
		if validator(call) == nil {
			call.verified = true
		}
	}
}

// Record appends call to the log and releases every waiter whose condition
// the new call satisfies.
func (c *Controller) Record(call *Call) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.seq++
	call.Seq = c.seq
	c.calls = append(c.calls, call)

	remaining := c.waiters[:0]

	for _, w := range c.waiters {
		if w.validator(call) == nil && w.ready(c.countLocked(w.validator)) {
			close(w.done)

			continue
		}

		remaining = append(remaining, w)
	}

	c.waiters = remaining
}

// Unverified returns the logged calls no verification has accounted for.
func (c *Controller) Unverified() []Call {
	c.mu.Lock()
	defer c.mu.Unlock()

	var unverified []Call

	for _, call := range c.calls {
		if !call.verified {
			unverified = append(unverified, *call)
		}
	}

	return unverified
}

// countLocked must be called with c.mu held.
func (c *Controller) countLocked(validator func(*Call) error) int {
	count := 0

	for _, call := range c.calls {
		if validator(call) == nil {
			count++
		}
	}

	return count
}

func (c *Controller) removeWaiter(target *waiter) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, w := range c.waiters {
		if w == target {
			c.waiters = append(c.waiters[:i], c.waiters[i+1:]...)

			return
		}
	}
}

// TestReporter is the minimal interface the runtime needs from test frameworks.
type TestReporter interface {
	Helper()
	Fatalf(format string, args ...any)
}

// Timer abstracts time-based operations for testability.
type Timer interface {
	After(d time.Duration) <-chan time.Time
}

// NewController creates a new controller with the default real timer.
func NewController(t TestReporter) *Controller {
	return NewControllerWithTimer(t, realTimer{})
}

// NewControllerWithTimer creates a new controller with a custom timer for testing.
func NewControllerWithTimer(t TestReporter, timer Timer) *Controller {
	return &Controller{
		T:     t,
		Timer: timer,
	}
}

type realTimer struct{}

func (realTimer) After(d time.Duration) <-chan time.Time {
	return time.After(d)
}

type waiter struct {
	validator func(*Call) error // Returns nil for a call this waiter counts
	ready     func(count int) bool
	done      chan struct{}
}

func formatArgs(args []any) string {
	parts := make([]string, 0, len(args))
	for _, arg := range args {
		parts = append(parts, fmt.Sprintf("%#v", arg))
	}

	return strings.Join(parts, ", ")
}

func formatCalls(calls []Call) string {
	if len(calls) == 0 {
		return "  (no interactions)"
	}

	lines := make([]string, 0, len(calls))
	for i := range calls {
		lines = append(lines, fmt.Sprintf("  %d: %s", calls[i].Seq, calls[i].String()))
	}

	return strings.Join(lines, "\n")
}
