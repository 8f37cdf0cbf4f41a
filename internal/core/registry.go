package core

import (
	"sync"
	"time"
)

// GetOrCreateImp returns the Imp for the given test, creating one if needed.
// Multiple calls with the same TestReporter return the same Imp instance,
// so every double in a test shares one call log.
//
// If the TestReporter supports Cleanup (like *testing.T), the Imp is
// automatically removed from the registry when the test completes.
func GetOrCreateImp(t TestReporter) *Imp {
	if imp, ok := t.(*Imp); ok {
		return imp
	}

	registryMu.Lock()
	defer registryMu.Unlock()

	if imp, ok := registry[t]; ok {
		return imp
	}

	imp := NewImp(t)
	registry[t] = imp

	if cr, ok := t.(cleanupRegistrar); ok {
		cr.Cleanup(func() {
			registryMu.Lock()
			delete(registry, t)
			registryMu.Unlock()
		})
	}

	return imp
}

// SetTimeout configures the default verification timeout for the test.
// A duration of 0 means verifications check the call log once, immediately.
//
// If no Imp has been created for t yet, one is created.
func SetTimeout(t TestReporter, d time.Duration) {
	GetOrCreateImp(t).SetTimeout(d)
}

// VerifyNoMoreInteractions fails t if any call recorded under t was never
// verified. If no Imp has been created for t yet, it returns immediately.
func VerifyNoMoreInteractions(t TestReporter) {
	t.Helper()

	registryMu.Lock()

	imp, ok := registry[t]

	registryMu.Unlock()

	if !ok {
		return
	}

	imp.VerifyNoMoreInteractions()
}

// unexported variables.
var (
	//nolint:gochecknoglobals // Package-level registry is intentional for test coordination
	registry = make(map[TestReporter]*Imp)
	//nolint:gochecknoglobals // Mutex for registry
	registryMu sync.Mutex
)

// cleanupRegistrar is the interface needed for registering cleanup functions.
// This is satisfied by *testing.T and *testing.B.
type cleanupRegistrar interface {
	Cleanup(cleanupFunc func())
}
