package core

import (
	"fmt"
	"sync"
	"time"

	"github.com/go-logr/logr"
)

// Imp is the central coordinator for the test doubles of one test.
// It owns the shared call log (via Controller) and the stub table.
type Imp struct {
	*Controller

	t TestReporter

	stubsMu        sync.Mutex
	stubs          []*Stub
	targets        map[string]int
	defaultTimeout time.Duration
	logger         logr.Logger
}

// NewImp creates a new Imp coordinator.
func NewImp(testReporter TestReporter) *Imp {
	return NewImpWithTimer(testReporter, realTimer{})
}

// NewImpWithTimer creates a new Imp whose timeout-bounded verifications use timer.
func NewImpWithTimer(testReporter TestReporter, timer Timer) *Imp {
	return &Imp{
		Controller: NewControllerWithTimer(testReporter, timer),
		t:          testReporter,
		targets:    make(map[string]int),
		logger:     logr.Discard(),
	}
}

// DefaultTimeout returns the timeout applied to verifications that did not
// set one with Within.
func (i *Imp) DefaultTimeout() time.Duration {
	i.stubsMu.Lock()
	defer i.stubsMu.Unlock()

	return i.defaultTimeout
}

// Fatalf fails the test with a formatted message.
// Implements TestReporter interface.
func (i *Imp) Fatalf(format string, args ...any) {
	i.t.Fatalf(format, args...)
}

// Helper marks the calling function as a test helper.
// Implements TestReporter interface.
func (i *Imp) Helper() {
	i.t.Helper()
}

// Invoke records a call on target and resolves its response. The newest stub
// matching the call wins. Without a matching stub, real is called when it is
// non-nil (spies); otherwise Invoke returns nil and the caller falls back to
// zero values (mocks). A stubbed panic is raised after the call is recorded.
// A returned or answered response must hold exactly results values; any other
// count fails the test and yields zero values.
func (i *Imp) Invoke(target, method string, args []any, results int, real func() []any) []any {
	call := &Call{Target: target, Method: method, Args: args}
	i.Record(call)

	logger := i.Logger()
	stub := i.findStub(target, method, args)

	if stub == nil {
		if real != nil {
			logger.V(1).Info("unstubbed call, calling real method", "call", call.String())

			return real()
		}

		logger.V(1).Info("unstubbed call, returning zero values", "call", call.String())

		return nil
	}

	resp := stub.next()
	logger.V(1).Info("stubbed call", "call", call.String(), "stub", stub.Description, "response", resp.kind.String())

	values := resp.resolve(Invocation{Target: target, Method: method, Args: args}, real)

	if (resp.kind == returnResponse || resp.kind == answerResponse) && len(values) != results {
		i.t.Helper()
		i.t.Fatalf("%s: %s response has %d values, but the method returns %d",
			call.String(), resp.kind, len(values), results)

		return nil
	}

	return values
}

// Logger returns the logger invocations are traced to.
func (i *Imp) Logger() logr.Logger {
	i.stubsMu.Lock()
	defer i.stubsMu.Unlock()

	return i.logger
}

// NewTarget returns a fresh target identifier for a double named name,
// e.g. "Arithmetic#1" for the first Arithmetic double in the test.
func (i *Imp) NewTarget(name string) string {
	i.stubsMu.Lock()
	defer i.stubsMu.Unlock()

	i.targets[name]++

	return fmt.Sprintf("%s#%d", name, i.targets[name])
}

// RegisterStub adds a stub for method on target. It takes precedence over
// every stub registered before it.
func (i *Imp) RegisterStub(target, method string, validator func([]any) error, description string) *Stub {
	stub := newStub(target, method, validator, description)

	i.stubsMu.Lock()
	i.stubs = append(i.stubs, stub)
	i.stubsMu.Unlock()

	return stub
}

// SetLogger routes invocation traces (at V(1)) to logger.
func (i *Imp) SetLogger(logger logr.Logger) {
	i.stubsMu.Lock()
	defer i.stubsMu.Unlock()

	i.logger = logger
}

// SetTimeout configures the default timeout for verifications.
// A duration of 0 means verifications check the call log once, immediately.
func (i *Imp) SetTimeout(d time.Duration) {
	i.stubsMu.Lock()
	defer i.stubsMu.Unlock()

	i.defaultTimeout = d
}

// VerifyNoMoreInteractions fails the test if any recorded call has not been
// accounted for by a successful verification.
func (i *Imp) VerifyNoMoreInteractions() {
	i.t.Helper()

	unverified := i.Unverified()
	if len(unverified) == 0 {
		return
	}

	i.t.Fatalf("no more interactions wanted, but found %d unverified:\n%s", len(unverified), formatCalls(unverified))
}

// findStub returns the newest stub matching the call, or nil.
func (i *Imp) findStub(target, method string, args []any) *Stub {
	i.stubsMu.Lock()
	defer i.stubsMu.Unlock()

	for idx := len(i.stubs) - 1; idx >= 0; idx-- {
		if i.stubs[idx].matches(target, method, args) {
			return i.stubs[idx]
		}
	}

	return nil
}
