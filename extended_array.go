package goconv

import "strconv"

// ExtendedArray is an ordered sequence together with a human-readable item
// description used in failure messages.
type ExtendedArray[T any] struct {
	ItemDescription string
	Items           []T
}

// NewExtendedArray wraps items.
func NewExtendedArray[T any](itemDescription string, items []T) ExtendedArray[T] {
	return ExtendedArray[T]{ItemDescription: itemDescription, Items: items}
}

// Len returns the number of items.
func (a ExtendedArray[T]) Len() int { return len(a.Items) }

// All returns the items.
func (a ExtendedArray[T]) All() []T { return a.Items }

func (a ExtendedArray[T]) matching(pred []func(T) bool) []T {
	if len(pred) == 0 || pred[0] == nil {
		return a.Items
	}
	var out []T
	for _, it := range a.Items {
		if pred[0](it) {
			out = append(out, it)
		}
	}
	return out
}

// Single succeeds with the only item (matching pred, when given). It fails
// when there is no such item or more than one.
func (a ExtendedArray[T]) Single(pred ...func(T) bool) Result[T] {
	m := a.matching(pred)
	switch len(m) {
	case 1:
		return Succeed(m[0])
	case 0:
		return FailCode[T](CodeNotFound, map[string]string{"description": a.ItemDescription})
	default:
		return FailCode[T](CodeTooMany, map[string]string{"description": a.ItemDescription, "count": strconv.Itoa(len(m))})
	}
}

// First succeeds with the first item (matching pred, when given).
func (a ExtendedArray[T]) First(pred ...func(T) bool) Result[T] {
	m := a.matching(pred)
	if len(m) == 0 {
		return FailCode[T](CodeNotFound, map[string]string{"description": a.ItemDescription})
	}
	return Succeed(m[0])
}

// AtLeastOne succeeds with the items (matching pred, when given) if there is
// at least one.
func (a ExtendedArray[T]) AtLeastOne(pred ...func(T) bool) Result[[]T] {
	m := a.matching(pred)
	if len(m) == 0 {
		return FailCode[[]T](CodeAtLeastOne, map[string]string{"description": a.ItemDescription})
	}
	return Succeed(m)
}
