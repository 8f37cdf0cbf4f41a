// Package match provides argument matchers for WhenMatching and
// VerifyMatching. They mix freely with gomega matchers. Gomega has its own
// Satisfy, so import this package by name when gomega is dot-imported:
//
//	import (
//	    . "github.com/onsi/gomega"
//	    "github.com/toejough/catcalc/match"
//	)
//
//	mock.Add.WhenMatching(match.BeCloseTo(0.3, 1e-9), BeNumerically(">", 0)).ThenReturn(1.0)
package match

import (
	"fmt"
	"math"

	"github.com/toejough/catcalc/internal/core"
)

// Matcher judges one argument.
type Matcher = core.Matcher

// BeAny accepts every argument, nil included.
//
//nolint:gochecknoglobals // stateless, shared by every caller
var BeAny Matcher = anything{}

// BeCloseTo accepts a float64 no further than epsilon from expected.
// NaN is never close to anything.
//
//	spy.Divide.VerifyMatching(double.Times(1), match.BeCloseTo(1.0/3, 1e-12), match.BeAny)
func BeCloseTo(expected, epsilon float64) Matcher {
	return judge[float64]{
		accepts: func(actual float64) error {
			if distance := math.Abs(actual - expected); !(distance <= epsilon) {
				return fmt.Errorf("off by %v", distance) //nolint:err113 // per-call detail
			}

			return nil
		},
		describe: fmt.Sprintf("within %v of %v", epsilon, expected),
	}
}

// Satisfy accepts a T for which predicate returns nil. The predicate's error
// becomes part of the failure message, so it runs again when one is built.
//
//	mock.Divide.WhenMatching(match.BeAny, match.Satisfy(func(b float64) error {
//	    if b != 0 {
//	        return fmt.Errorf("divisor %v is not zero", b)
//	    }
//	    return nil
//	})).ThenPanic("Division by zero")
func Satisfy[T any](predicate func(T) error) Matcher {
	return judge[T]{accepts: predicate, describe: "a value satisfying the predicate"}
}

type anything struct{}

func (anything) FailureMessage(any) string { return "" }

func (anything) Match(any) (bool, error) { return true, nil }

// judge adapts a typed check to the untyped Matcher method set.
type judge[T any] struct {
	accepts  func(T) error
	describe string
}

func (j judge[T]) FailureMessage(actual any) string {
	typed, ok := actual.(T)
	if !ok {
		return fmt.Sprintf("expected %s, got %#v", j.describe, actual)
	}

	return fmt.Sprintf("expected %s, got %#v: %v", j.describe, actual, j.accepts(typed))
}

func (j judge[T]) Match(actual any) (bool, error) {
	typed, ok := actual.(T)
	if !ok {
		return false, fmt.Errorf("expected %s of type %T, got %T", j.describe, *new(T), actual) //nolint:err113 // per-call detail
	}

	return j.accepts(typed) == nil, nil
}
