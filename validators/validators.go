// Package validators provides the standard validators. A validator accepts
// or rejects a value in place: on success the result holds the very value
// that was passed in, so large maps and slices are never rebuilt.
package validators

import (
	"errors"
	"slices"

	"github.com/reoring/goconv"
)

// Validator is a goconv.Validator with an untyped context.
type Validator[T any] = goconv.Validator[T, any]

// String accepts strings.
func String() Validator[string] {
	return goconv.ValidatorFromFunc[string](func(from any, _ any) error {
		if _, ok := from.(string); ok {
			return nil
		}
		return failure(goconv.CodeNotString, from)
	})
}

// Number accepts Go numeric values and json.Number. Numeric strings are
// rejected; use converters.Number to coerce them.
func Number() Validator[any] {
	return goconv.ValidatorFromFunc[any](func(from any, _ any) error {
		if isNumber(from) {
			return nil
		}
		return failure(goconv.CodeNotNumber, from)
	})
}

// Boolean accepts booleans.
func Boolean() Validator[bool] {
	return goconv.ValidatorFromFunc[bool](func(from any, _ any) error {
		if _, ok := from.(bool); ok {
			return nil
		}
		return failure(goconv.CodeNotBoolean, from)
	})
}

// Literal accepts exactly v. Numbers match by value, and a matching
// json.Number or other numeric kind is returned as T.
func Literal[T comparable](v T) Validator[T] {
	return goconv.ValidatorFromFunc[T](func(from any, _ any) error {
		if goconv.Equal(from, v) {
			return nil
		}
		return errors.New(goconv.Text(goconv.CodeNotLiteral, map[string]string{
			"value":    goconv.Stringify(from),
			"expected": goconv.Stringify(v),
		}))
	})
}

// EnumeratedValue accepts members of allowed. A context of type []T
// replaces allowed for that call.
func EnumeratedValue[T comparable](allowed []T) Validator[T] {
	allowed = slices.Clone(allowed)
	return goconv.ValidatorFromFunc[T](func(from any, ctx any) error {
		list := allowed
		if override, ok := ctx.([]T); ok {
			list = override
		}
		if slices.ContainsFunc(list, func(v T) bool { return goconv.Equal(from, v) }) {
			return nil
		}
		return errors.New(goconv.Text(goconv.CodeInvalidEnum, map[string]string{
			"value":    goconv.Stringify(from),
			"expected": goconv.Stringify(list),
		}))
	})
}

// IsA accepts values of type T for which guard holds.
func IsA[T any](description string, guard func(T) bool) Validator[T] {
	return goconv.ValidatorFromFunc[T](func(from any, _ any) error {
		if v, ok := from.(T); ok && (guard == nil || guard(v)) {
			return nil
		}
		return errors.New(goconv.Text(goconv.CodeNotA, map[string]string{
			"description": description,
			"value":       goconv.Stringify(from),
		}))
	})
}

// Generic wraps an arbitrary validation function.
func Generic[T any](fn func(from any, ctx any) error) Validator[T] {
	return goconv.ValidatorFromFunc[T](fn)
}

func failure(code string, from any) error {
	return errors.New(goconv.Text(code, map[string]string{"value": goconv.Stringify(from)}))
}

func isNumber(v any) bool {
	_, ok := goconv.NumericValue(v)
	return ok
}

func forward(ctx any) []any {
	if ctx == nil {
		return nil
	}
	return []any{ctx}
}
