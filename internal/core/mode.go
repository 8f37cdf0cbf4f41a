package core

import (
	"errors"
	"fmt"
)

// Exported variables.
var (
	// ErrTooFewInvocations is wrapped when a method was called fewer times than wanted.
	ErrTooFewInvocations = errors.New("too few invocations")
	// ErrTooManyInvocations is wrapped when a method was called more times than wanted.
	ErrTooManyInvocations = errors.New("too many invocations")
)

// VerificationMode bounds how many times a call must have happened.
// The zero value wants no calls at all.
type VerificationMode struct {
	min       int
	max       int
	unbounded bool
}

// Check returns nil if count satisfies the mode, or an error wrapping
// ErrTooFewInvocations or ErrTooManyInvocations.
func (m VerificationMode) Check(count int) error {
	if count < m.min {
		return fmt.Errorf("%w: wanted %s, but was %d", ErrTooFewInvocations, m, count)
	}

	if !m.unbounded && count > m.max {
		return fmt.Errorf("%w: wanted %s, but was %d", ErrTooManyInvocations, m, count)
	}

	return nil
}

// String describes the mode, e.g. "at least 2 times".
func (m VerificationMode) String() string {
	switch {
	case m.unbounded:
		return "at least " + plural(m.min)
	case m.min == m.max && m.max == 0:
		return "never"
	case m.min == m.max:
		return "exactly " + plural(m.min)
	case m.min == 0:
		return "at most " + plural(m.max)
	default:
		return fmt.Sprintf("between %d and %s", m.min, plural(m.max))
	}
}

// AtLeast wants n or more calls.
func AtLeast(n int) VerificationMode {
	return VerificationMode{min: n, unbounded: true}
}

// AtLeastOnce wants one or more calls.
func AtLeastOnce() VerificationMode {
	return AtLeast(1)
}

// AtMost wants n or fewer calls.
func AtMost(n int) VerificationMode {
	return VerificationMode{min: 0, max: n}
}

// Never wants no calls.
func Never() VerificationMode {
	return VerificationMode{}
}

// Times wants exactly n calls.
func Times(n int) VerificationMode {
	return VerificationMode{min: n, max: n}
}

func plural(n int) string {
	if n == 1 {
		return "1 time"
	}

	return fmt.Sprintf("%d times", n)
}
