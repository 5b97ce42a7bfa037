package converters

import (
	"slices"
	"strings"

	"github.com/reoring/goconv"
)

// EnumeratedValue accepts members of allowed and yields the matching
// member. Numbers match by value, so json.Number("2") is a member of
// []int{2}. A context of type []T replaces allowed for that call.
func EnumeratedValue[T comparable](allowed []T) Converter[T] {
	allowed = slices.Clone(allowed)
	return goconv.FromFunc(func(from any, ctx any) goconv.Result[T] {
		list := allowed
		if override, ok := ctx.([]T); ok {
			list = override
		}
		for _, v := range list {
			if goconv.Equal(from, v) {
				return goconv.Succeed(v)
			}
		}
		return goconv.FailCode[T](goconv.CodeInvalidEnum, map[string]string{
			"value":    goconv.Stringify(from),
			"expected": goconv.Stringify(list),
		})
	})
}

// Mapping maps every value in From onto To.
type Mapping[T any] struct {
	To   T
	From []any
}

// MappedEnumeratedValue maps any input matching one of the pairs to the
// pair's target. Pairs are tried in order. message, when given, replaces
// the default failure text.
func MappedEnumeratedValue[T any](pairs []Mapping[T], message ...string) Converter[T] {
	pairs = slices.Clone(pairs)
	return goconv.FromFunc(func(from any, _ any) goconv.Result[T] {
		for _, p := range pairs {
			for _, candidate := range p.From {
				if goconv.Equal(from, candidate) {
					return goconv.Succeed(p.To)
				}
			}
		}
		if len(message) > 0 && message[0] != "" {
			return goconv.Fail[T](message[0])
		}
		return fail[T](goconv.CodeCannotMap, from)
	})
}

// DelimitedKind selects which tokens DelimitedString keeps.
type DelimitedKind int

const (
	// DelimitedFiltered drops empty tokens.
	DelimitedFiltered DelimitedKind = iota
	// DelimitedAll keeps every token.
	DelimitedAll
)

// DelimitedString splits a string on delim. kind defaults to
// DelimitedFiltered.
func DelimitedString(delim string, kind ...DelimitedKind) Converter[[]string] {
	k := DelimitedFiltered
	if len(kind) > 0 {
		k = kind[len(kind)-1]
	}
	return goconv.FromFunc(func(from any, _ any) goconv.Result[[]string] {
		s, ok := from.(string)
		if !ok {
			return fail[[]string](goconv.CodeNotString, from)
		}
		parts := strings.Split(s, delim)
		if k == DelimitedFiltered {
			parts = slices.DeleteFunc(parts, func(p string) bool { return p == "" })
		}
		return goconv.Succeed(parts)
	})
}
