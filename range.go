package goconv

import (
	"cmp"
	"errors"
	"fmt"
)

// RangeCheck is the position of a value relative to a range.
type RangeCheck string

const (
	RangeLess    RangeCheck = "less"
	RangeIn      RangeCheck = "in"
	RangeGreater RangeCheck = "greater"
)

// RangeInit holds the optional bounds of a range.
type RangeInit[T any] struct {
	Min *T `json:"min,omitempty"`
	Max *T `json:"max,omitempty"`
}

// RangeOf is a range with optional bounds. Membership includes Min and
// excludes Max.
type RangeOf[T any] struct {
	min, max *T
	compare  func(a, b T) int
}

// NewRange builds a range over an ordered type. It panics when both bounds
// are present and min > max.
func NewRange[T cmp.Ordered](min, max *T) RangeOf[T] {
	return NewRangeFunc(min, max, cmp.Compare[T])
}

// Between builds a range with both bounds present.
func Between[T cmp.Ordered](min, max T) RangeOf[T] {
	return NewRange(&min, &max)
}

// NewRangeFunc builds a range ordered by compare. It panics when both bounds
// are present and compare(min, max) > 0.
func NewRangeFunc[T any](min, max *T, compare func(a, b T) int) RangeOf[T] {
	if min != nil && max != nil && compare(*min, *max) > 0 {
		panic(errors.New(Text(CodeInvertedRange, map[string]string{"min": Stringify(*min), "max": Stringify(*max)})))
	}
	r := RangeOf[T]{compare: compare}
	if min != nil {
		v := *min
		r.min = &v
	}
	if max != nil {
		v := *max
		r.max = &v
	}
	return r
}

// CreateRange builds a range over an ordered type, reporting an inverted
// range as a failure.
func CreateRange[T cmp.Ordered](init RangeInit[T]) Result[RangeOf[T]] {
	return Capture(func() RangeOf[T] { return NewRange(init.Min, init.Max) })
}

// CreateRangeFunc is CreateRange with an explicit ordering.
func CreateRangeFunc[T any](init RangeInit[T], compare func(a, b T) int) Result[RangeOf[T]] {
	return Capture(func() RangeOf[T] { return NewRangeFunc(init.Min, init.Max, compare) })
}

// Min returns the lower bound, if any.
func (r RangeOf[T]) Min() (T, bool) { return bound(r.min) }

// Max returns the upper bound, if any.
func (r RangeOf[T]) Max() (T, bool) { return bound(r.max) }

func bound[T any](p *T) (T, bool) {
	if p == nil {
		var zero T
		return zero, false
	}
	return *p, true
}

// Check locates v relative to the range.
func (r RangeOf[T]) Check(v T) RangeCheck {
	if r.min != nil && r.compare(v, *r.min) < 0 {
		return RangeLess
	}
	if r.max != nil && r.compare(v, *r.max) >= 0 {
		return RangeGreater
	}
	return RangeIn
}

// Includes reports whether min <= v < max.
func (r RangeOf[T]) Includes(v T) bool { return r.Check(v) == RangeIn }

// FindTransition returns the next bound v would cross when increasing: Min
// when v is below the range, Max when v is inside it.
func (r RangeOf[T]) FindTransition(v T) (T, bool) {
	switch r.Check(v) {
	case RangeLess:
		return bound(r.min)
	case RangeIn:
		return bound(r.max)
	}
	var zero T
	return zero, false
}

// Init returns the bounds as a RangeInit.
func (r RangeOf[T]) Init() RangeInit[T] {
	out := RangeInit[T]{}
	if v, ok := r.Min(); ok {
		out.Min = &v
	}
	if v, ok := r.Max(); ok {
		out.Max = &v
	}
	return out
}

// Format renders the range as "min-max", leaving out absent bounds.
// format defaults to fmt.Sprint.
func (r RangeOf[T]) Format(format func(T) string) string {
	if format == nil {
		format = func(v T) string { return fmt.Sprint(v) }
	}
	var lo, hi string
	if v, ok := r.Min(); ok {
		lo = format(v)
	}
	if v, ok := r.Max(); ok {
		hi = format(v)
	}
	return lo + "-" + hi
}
