package core

import (
	"time"
)

// DependencyMethod represents one method of a test double.
// Generated doubles expose one per method to stub and verify calls with.
type DependencyMethod struct {
	imp        *Imp
	target     string
	methodName string
	timeout    time.Duration
}

// NewDependencyMethod creates a new DependencyMethod.
// This is used by generated double code.
func NewDependencyMethod(imp *Imp, target, methodName string) *DependencyMethod {
	return &DependencyMethod{
		imp:        imp,
		target:     target,
		methodName: methodName,
	}
}

// Count returns how many recorded calls had exactly args.
func (dm *DependencyMethod) Count(args ...any) int {
	return dm.imp.Count(dm.callValidator(argsEqual(args)))
}

// CountAny returns how many recorded calls this method received.
func (dm *DependencyMethod) CountAny() int {
	return dm.imp.Count(dm.callValidator(anyArgs))
}

// Name returns the method name.
func (dm *DependencyMethod) Name() string {
	return dm.methodName
}

// Verify fails the test unless the number of calls with exactly args
// satisfies mode. Verified calls are excluded from VerifyNoMoreInteractions.
func (dm *DependencyMethod) Verify(mode VerificationMode, args ...any) {
	dm.imp.Helper()
	dm.verify(mode, argsEqual(args), formatArgs(args))
}

// VerifyAnyArgs is Verify for calls with any arguments.
func (dm *DependencyMethod) VerifyAnyArgs(mode VerificationMode) {
	dm.imp.Helper()
	dm.verify(mode, anyArgs, "<any>")
}

// VerifyMatching is Verify with per-argument matchers (gomega compatible) or
// plain values.
func (dm *DependencyMethod) VerifyMatching(mode VerificationMode, matchers ...any) {
	dm.imp.Helper()
	dm.verify(mode, argsMatch(matchers), formatArgs(matchers))
}

// When stubs calls with exactly args.
func (dm *DependencyMethod) When(args ...any) *Stub {
	return dm.imp.RegisterStub(dm.target, dm.methodName, argsEqual(args), formatArgs(args))
}

// WhenAnyArgs stubs calls with any arguments.
func (dm *DependencyMethod) WhenAnyArgs() *Stub {
	return dm.imp.RegisterStub(dm.target, dm.methodName, anyArgs, "<any>")
}

// WhenMatching stubs calls whose arguments satisfy matchers (gomega
// compatible) or equal plain values.
func (dm *DependencyMethod) WhenMatching(matchers ...any) *Stub {
	return dm.imp.RegisterStub(dm.target, dm.methodName, argsMatch(matchers), formatArgs(matchers))
}

// Within returns a view of this method whose verifications wait up to
// timeout for the wanted calls to arrive before failing.
func (dm *DependencyMethod) Within(timeout time.Duration) *DependencyMethod {
	return &DependencyMethod{
		imp:        dm.imp,
		target:     dm.target,
		methodName: dm.methodName,
		timeout:    timeout,
	}
}

func (dm *DependencyMethod) callValidator(argsValidator func([]any) error) func(*Call) error {
	return func(call *Call) error {
		if call.Target != dm.target || call.Method != dm.methodName {
			return errOtherMethod
		}

		return argsValidator(call.Args)
	}
}

func (dm *DependencyMethod) verify(mode VerificationMode, argsValidator func([]any) error, description string) {
	dm.imp.Helper()

	timeout := dm.timeout
	if timeout == 0 {
		timeout = dm.imp.DefaultTimeout()
	}

	validator := dm.callValidator(argsValidator)

	count, _ := dm.imp.Await(timeout, validator, func(n int) bool {
		return mode.Check(n) == nil
	})

	err := mode.Check(count)
	if err != nil {
		dm.imp.Fatalf("%s.%s(%s): %v\nrecorded interactions:\n%s",
			dm.target, dm.methodName, description, err, formatCalls(dm.imp.Calls()))

		return
	}

	dm.imp.MarkVerified(validator)
}
