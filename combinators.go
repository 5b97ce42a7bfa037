package goconv

// ConstraintOptions describes a constraint attached with WithConstraint.
type ConstraintOptions struct {
	// Description replaces "does not meet constraint" in failure messages and
	// tags the constraint trait of validators.
	Description string
}

func constraintDescription(opts []ConstraintOptions) string {
	if len(opts) > 0 && opts[len(opts)-1].Description != "" {
		return opts[len(opts)-1].Description
	}
	return "does not meet constraint"
}

func constraintFailure[T any](v any, description string) Result[T] {
	return FailCode[T](CodeConstraint, map[string]string{"value": Stringify(v), "description": description})
}

// WithConstraint returns a converter that additionally requires pred to hold
// for the converted value.
func (c Converter[T, C]) WithConstraint(pred func(T) bool, opts ...ConstraintOptions) Converter[T, C] {
	desc := constraintDescription(opts)
	return c.with(func(from any, _ Converter[T, C], ctx C) Result[T] {
		r := c.fn(from, c, ctx)
		if r.ok && !pred(r.value) {
			return constraintFailure[T](r.value, desc)
		}
		return r
	})
}

// WithResultConstraint is WithConstraint for checks that build their own
// Result; the check's result is returned verbatim.
func (c Converter[T, C]) WithResultConstraint(check func(T) Result[T]) Converter[T, C] {
	return c.with(func(from any, _ Converter[T, C], ctx C) Result[T] {
		r := c.fn(from, c, ctx)
		if !r.ok {
			return r
		}
		return check(r.value)
	})
}

// Map returns a converter that applies f to the value of a successful
// conversion. f is not called when the conversion fails.
func Map[T, U, C any](c Converter[T, C], f func(T) Result[U]) Converter[U, C] {
	return derive(c, func(from any, _ Converter[U, C], ctx C) Result[U] {
		return Then(c.Convert(from, ctx), f)
	}, Traits{})
}

// MapConvert feeds the value of a successful conversion into next.
func MapConvert[T, U, C, C2 any](c Converter[T, C], next Converter[U, C2]) Converter[U, C] {
	return Map(c, func(v T) Result[U] { return next.Convert(v) })
}

// MapItems requires the converted value to be a sequence and applies f to
// every item. All item failures are reported.
func MapItems[T, U, C any](c Converter[T, C], f func(any) Result[U]) Converter[[]U, C] {
	return Map(c, func(v T) Result[[]U] {
		items, ok := Items(any(v))
		if !ok {
			return FailCode[[]U](CodeNotArray, map[string]string{"value": Stringify(v)})
		}
		results := make([]Result[U], len(items))
		for i, item := range items {
			results[i] = f(item)
		}
		return MapResults(results)
	})
}

// MapConvertItems is MapItems with next converting every item.
func MapConvertItems[T, U, C, C2 any](c Converter[T, C], next Converter[U, C2]) Converter[[]U, C] {
	return MapItems(c, func(item any) Result[U] { return next.Convert(item) })
}

// WithTypeGuard narrows the converted value to U: guard must accept it and it
// must hold a U. Failures read "<message>: <value>"; message defaults to
// "invalid type".
func WithTypeGuard[U, T, C any](c Converter[T, C], guard func(any) bool, message ...string) Converter[U, C] {
	msg := guardMessage(message)
	return Map(c, func(v T) Result[U] {
		return guardValue[U](any(v), guard, msg)
	})
}

// WithItemTypeGuard narrows every item of a converted sequence to E.
func WithItemTypeGuard[E, T, C any](c Converter[T, C], guard func(any) bool, message ...string) Converter[[]E, C] {
	msg := guardMessage(message)
	return MapItems(c, func(item any) Result[E] {
		return guardValue[E](item, guard, msg)
	})
}

func guardMessage(message []string) string {
	if len(message) > 0 && message[0] != "" {
		return message[0]
	}
	return "invalid type"
}

func guardValue[U any](v any, guard func(any) bool, msg string) Result[U] {
	if guard(v) {
		if u, ok := v.(U); ok {
			return Succeed(u)
		}
	}
	return Failf[U]("%s: %s", msg, Stringify(v))
}

// BrandTag names a nominal brand at the type level.
//
//	type UserID struct{}
//	func (UserID) BrandName() string { return "UserID" }
type BrandTag interface {
	BrandName() string
}

// Branded is a T tagged with the brand B. Values with different brands are
// distinct types even when T is the same.
type Branded[T any, B BrandTag] struct {
	value T
}

// Unbrand returns the underlying value.
func (b Branded[T, B]) Unbrand() T { return b.value }

// Brand returns a converter producing Branded[T, B]. It panics with a
// *BrandConflictError when c is already branded.
func Brand[B BrandTag, T, C any](c Converter[T, C]) Converter[Branded[T, B], C] {
	var tag B
	branded := c.WithBrand(tag.BrandName())
	return derive(branded, func(from any, _ Converter[Branded[T, B], C], ctx C) Result[Branded[T, B]] {
		return Then(branded.Convert(from, ctx), func(v T) Result[Branded[T, B]] {
			return Succeed(Branded[T, B]{value: v})
		})
	}, branded.traits)
}
