// Package double provides test doubles (mocks and spies) for Go interfaces.
// Doubles are generated by dblgen; this package is the runtime they use to
// record calls, stub responses and verify interactions.
//
// This is the public API entry point. Implementation lives in internal/core.
package double

import (
	"time"

	"github.com/toejough/catcalc/internal/core"
)

// Exported variables.
var (
	// ErrTooFewInvocations is wrapped by VerificationMode.Check when a method
	// was called fewer times than wanted.
	ErrTooFewInvocations = core.ErrTooFewInvocations
	// ErrTooManyInvocations is wrapped by VerificationMode.Check when a method
	// was called more times than wanted.
	ErrTooManyInvocations = core.ErrTooManyInvocations
)

// Answer computes a stubbed response from the invocation that triggered it.
type Answer = core.Answer

// Call represents a single recorded call to a double.
type Call = core.Call

// Controller owns the call log of one test.
type Controller = core.Controller

// DependencyMethod represents a method on a double.
type DependencyMethod = core.DependencyMethod

// NewDependencyMethod creates a new DependencyMethod.
func NewDependencyMethod(imp *Imp, target, methodName string) *DependencyMethod {
	return core.NewDependencyMethod(imp, target, methodName)
}

// Imp is the central coordinator for the doubles of one test.
type Imp = core.Imp

// GetOrCreateImp returns the Imp for the given test, creating one if needed.
func GetOrCreateImp(t TestReporter) *Imp {
	return core.GetOrCreateImp(t)
}

// NewImp creates a new Imp coordinator that is not shared through the registry.
func NewImp(t TestReporter) *Imp {
	return core.NewImp(t)
}

// NewImpWithTimer creates a new Imp whose timeouts use timer.
func NewImpWithTimer(t TestReporter, timer Timer) *Imp {
	return core.NewImpWithTimer(t, timer)
}

// Invocation describes the call an Answer is responding to.
type Invocation = core.Invocation

// Matcher defines the interface for flexible value matching.
type Matcher = core.Matcher

// Stub binds responses to matching calls.
type Stub = core.Stub

// TestReporter is the minimal interface double needs from test frameworks.
type TestReporter = core.TestReporter

// Timer abstracts time-based operations for testability.
type Timer = core.Timer

// VerificationMode bounds how many times a call must have happened.
type VerificationMode = core.VerificationMode

// Arg returns argument index of inv as a T, converting between numeric types.
func Arg[T any](inv Invocation, index int) T {
	return core.Arg[T](inv, index)
}

// AtLeast wants n or more calls.
func AtLeast(n int) VerificationMode {
	return core.AtLeast(n)
}

// AtLeastOnce wants one or more calls.
func AtLeastOnce() VerificationMode {
	return core.AtLeastOnce()
}

// AtMost wants n or fewer calls.
func AtMost(n int) VerificationMode {
	return core.AtMost(n)
}

// MatchValue checks if actual matches expected.
func MatchValue(actual, expected any) (bool, string) {
	return core.MatchValue(actual, expected)
}

// Never wants no calls.
func Never() VerificationMode {
	return core.Never()
}

// Result returns value index of a response as a T, converting between numeric types.
func Result[T any](t TestReporter, values []any, index int) T {
	return core.Result[T](t, values, index)
}

// SetTimeout configures the default verification timeout for the test.
func SetTimeout(t TestReporter, d time.Duration) {
	core.SetTimeout(t, d)
}

// Times wants exactly n calls.
func Times(n int) VerificationMode {
	return core.Times(n)
}

// VerifyNoMoreInteractions fails t if any call recorded under t was never verified.
func VerifyNoMoreInteractions(t TestReporter) {
	core.VerifyNoMoreInteractions(t)
}
