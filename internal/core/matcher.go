package core

import (
	"errors"
	"fmt"
	"reflect"
)

// Matcher is anything that can judge a single argument. Gomega matchers
// already have this method set.
type Matcher interface {
	Match(actual any) (success bool, err error)
	FailureMessage(actual any) string
}

// Arg returns argument index of inv as a T. Numeric arguments are converted
// when their type differs from T; anything else that is not a T yields T's
// zero value.
func Arg[T any](inv Invocation, index int) T {
	converted, _ := convertTo[T](valueAt(inv.Args, index))

	return converted
}

// MatchValue checks if actual matches expected.
// If expected implements the Matcher interface, uses its Match method.
// Otherwise compares with valuesEqual.
// Returns (success, errorMessage). If success is true, errorMessage is empty.
func MatchValue(actual, expected any) (bool, string) {
	if matcher, ok := expected.(Matcher); ok {
		success, err := matcher.Match(actual)
		if err != nil {
			return false, err.Error()
		}

		if !success {
			return false, matcher.FailureMessage(actual)
		}

		return true, ""
	}

	if valuesEqual(actual, expected) {
		return true, ""
	}

	return false, fmt.Sprintf("expected %#v, got %#v", expected, actual)
}

// Result returns value index of a response as a T, converting numbers the way
// Arg does. Nil values (a mock with no stub) yield T's zero value. A stubbed
// value that cannot be used as a T fails the test through t.
func Result[T any](t TestReporter, values []any, index int) T {
	if values == nil {
		var zero T

		return zero
	}

	value := valueAt(values, index)

	converted, ok := convertTo[T](value)
	if !ok {
		t.Helper()
		t.Fatalf("response value %d is %T(%#v), which cannot be returned as %s",
			index, value, value, reflect.TypeOf((*T)(nil)).Elem())
	}

	return converted
}

// unexported variables.
var (
	errOtherMethod = errors.New("call is for another method")
)

// argsEqual builds a validator requiring each argument to equal the
// corresponding expected value.
func argsEqual(expected []any) func([]any) error {
	return func(actual []any) error {
		if len(actual) != len(expected) {
			//nolint:err113 // validation error with dynamic context
			return fmt.Errorf("expected %d args, got %d", len(expected), len(actual))
		}

		for i, want := range expected {
			if !valuesEqual(actual[i], want) {
				//nolint:err113 // validation error with dynamic context
				return fmt.Errorf("arg %d: expected %#v, got %#v", i, want, actual[i])
			}
		}

		return nil
	}
}

// argsMatch builds a validator applying MatchValue per argument.
func argsMatch(matchers []any) func([]any) error {
	return func(actual []any) error {
		if len(actual) != len(matchers) {
			//nolint:err113 // validation error with dynamic context
			return fmt.Errorf("expected %d args, got %d", len(matchers), len(actual))
		}

		for i, m := range matchers {
			ok, failureMsg := MatchValue(actual[i], m)
			if !ok {
				//nolint:err113 // validation error with dynamic context
				return fmt.Errorf("arg %d: %s", i, failureMsg)
			}
		}

		return nil
	}
}

func anyArgs([]any) error {
	return nil
}

// convertTo reports false when value is neither a T, a number convertible to
// a numeric T, nor nil for a T that can hold nil.
func convertTo[T any](value any) (T, bool) {
	var zero T

	target := reflect.TypeOf((*T)(nil)).Elem()

	if value == nil {
		return zero, isNilable(target.Kind())
	}

	if typed, ok := value.(T); ok {
		return typed, true
	}

	source := reflect.ValueOf(value)

	if isNumericKind(source.Kind()) && isNumericKind(target.Kind()) {
		converted, _ := source.Convert(target).Interface().(T)

		return converted, true
	}

	return zero, false
}

func isNilable(kind reflect.Kind) bool {
	switch kind {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return true
	default:
		return false
	}
}

func isNumericKind(kind reflect.Kind) bool {
	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

func valueAt(values []any, index int) any {
	if index < 0 || index >= len(values) {
		return nil
	}

	return values[index]
}

// valuesEqual compares with reflect.DeepEqual, except that an expected number
// of a different numeric type is first converted to the actual value's type,
// so an untyped constant like 20 matches a float64 argument of 20.
func valuesEqual(actual, expected any) bool {
	if reflect.DeepEqual(actual, expected) {
		return true
	}

	if actual == nil || expected == nil {
		return false
	}

	actualVal := reflect.ValueOf(actual)
	expectedVal := reflect.ValueOf(expected)

	if !isNumericKind(actualVal.Kind()) || !isNumericKind(expectedVal.Kind()) {
		return false
	}

	converted := expectedVal.Convert(actualVal.Type())

	// Reject lossy conversions such as 20.5 -> int(20)
	if !reflect.DeepEqual(converted.Convert(expectedVal.Type()).Interface(), expected) {
		return false
	}

	return reflect.DeepEqual(converted.Interface(), actual)
}
