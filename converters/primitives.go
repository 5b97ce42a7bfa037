// Package converters provides the standard converters: primitive leaves,
// enumerations and structural combinators over the untyped value model
// produced by the JSON and YAML readers.
//
// All converters here use an untyped (any) context.
package converters

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/reoring/goconv"
	"github.com/reoring/goconv/codec"
)

// Converter is a goconv.Converter with an untyped context.
type Converter[T any] = goconv.Converter[T, any]

// String accepts strings only; nothing is coerced.
func String() Converter[string] {
	return goconv.FromFunc(func(from any, _ any) goconv.Result[string] {
		if s, ok := from.(string); ok {
			return goconv.Succeed(s)
		}
		return fail[string](goconv.CodeNotString, from)
	})
}

// Number accepts any Go numeric value, json.Number and numeric strings.
// Empty or non-numeric strings fail.
func Number() Converter[float64] {
	return goconv.FromFunc(func(from any, _ any) goconv.Result[float64] {
		if f, ok := toFloat(from); ok {
			return goconv.Succeed(f)
		}
		return fail[float64](goconv.CodeNotNumber, from)
	})
}

// Boolean accepts booleans and the strings "true" and "false" in any case.
func Boolean() Converter[bool] {
	return goconv.FromFunc(func(from any, _ any) goconv.Result[bool] {
		switch v := from.(type) {
		case bool:
			return goconv.Succeed(v)
		case string:
			switch strings.ToLower(v) {
			case "true":
				return goconv.Succeed(true)
			case "false":
				return goconv.Succeed(false)
			}
		}
		return fail[bool](goconv.CodeNotBoolean, from)
	})
}

// maxEpochMillis bounds numeric dates to ±100,000,000 days around the epoch.
const maxEpochMillis = 8.64e15

// ISODate accepts a time.Time, an ISO-8601 string or a number of epoch
// milliseconds within ±8.64e15. NaN and infinite numbers fail.
func ISODate() Converter[time.Time] {
	return goconv.FromFunc(func(from any, _ any) goconv.Result[time.Time] {
		switch v := from.(type) {
		case time.Time:
			return goconv.Succeed(v)
		case string:
			t, err := codec.ParseTime(v)
			if err != nil {
				return fail[time.Time](goconv.CodeInvalidDate, from)
			}
			return goconv.Succeed(t)
		}
		if ms, ok := toFloat(from); ok {
			if math.IsNaN(ms) || math.Abs(ms) > maxEpochMillis {
				return fail[time.Time](goconv.CodeInvalidDate, from)
			}
			return goconv.Succeed(time.UnixMilli(int64(ms)).UTC())
		}
		return fail[time.Time](goconv.CodeNotDate, from)
	})
}

// Literal accepts exactly v. Numbers match by value whatever their kind.
func Literal[T comparable](v T) Converter[T] {
	return goconv.FromFunc(func(from any, _ any) goconv.Result[T] {
		if goconv.Equal(from, v) {
			return goconv.Succeed(v)
		}
		return goconv.FailCode[T](goconv.CodeNotLiteral, map[string]string{
			"value":    goconv.Stringify(from),
			"expected": goconv.Stringify(v),
		})
	})
}

// UUID accepts uuid.UUID values and strings in any form uuid.Parse accepts.
func UUID() Converter[uuid.UUID] {
	return goconv.FromFunc(func(from any, _ any) goconv.Result[uuid.UUID] {
		switch v := from.(type) {
		case uuid.UUID:
			return goconv.Succeed(v)
		case string:
			if id, err := uuid.Parse(v); err == nil {
				return goconv.Succeed(id)
			}
		}
		return fail[uuid.UUID](goconv.CodeInvalidUUID, from)
	})
}

// IsA accepts values of type T for which guard holds. description names the
// expected kind of value in failure messages.
func IsA[T any](description string, guard func(T) bool) Converter[T] {
	return goconv.FromFunc(func(from any, _ any) goconv.Result[T] {
		if v, ok := from.(T); ok && (guard == nil || guard(v)) {
			return goconv.Succeed(v)
		}
		return goconv.FailCode[T](goconv.CodeNotA, map[string]string{
			"description": description,
			"value":       goconv.Stringify(from),
		})
	})
}

// Generic wraps an arbitrary conversion function.
func Generic[T any](fn func(from any, ctx any) goconv.Result[T]) Converter[T] {
	return goconv.FromFunc(fn)
}

// ValidateWith converts by validating: the result is the input itself.
func ValidateWith[T any](v goconv.Validator[T, any]) Converter[T] {
	return v.AsConverter()
}

// OptionalString is Optional(String()).
func OptionalString() Converter[*string] { return goconv.Optional(String()) }

// OptionalNumber is Optional(Number()).
func OptionalNumber() Converter[*float64] { return goconv.Optional(Number()) }

// OptionalBoolean is Optional(Boolean()).
func OptionalBoolean() Converter[*bool] { return goconv.Optional(Boolean()) }

// StringArray is ArrayOf(String()).
func StringArray() Converter[[]string] { return ArrayOf(String()) }

// NumberArray is ArrayOf(Number()).
func NumberArray() Converter[[]float64] { return ArrayOf(Number()) }

func fail[T any](code string, from any) goconv.Result[T] {
	return goconv.FailCode[T](code, map[string]string{"value": goconv.Stringify(from)})
}

func toFloat(v any) (float64, bool) {
	if n, ok := v.(string); ok {
		s := strings.TrimSpace(n)
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(f) {
			return 0, false
		}
		return f, true
	}
	return goconv.NumericValue(v)
}

// forward passes a call's context on to nested converters. A nil context
// is not forwarded so that nested default contexts still apply.
func forward(ctx any) []any {
	if ctx == nil {
		return nil
	}
	return []any{ctx}
}

func policy(onError []goconv.OnError, def goconv.OnError) goconv.OnError {
	if len(onError) > 0 {
		return onError[len(onError)-1]
	}
	return def
}
