package converters

import (
	"maps"
	"strconv"

	"github.com/reoring/goconv"
)

// Field converts the property name of an object.
func Field[T any](name string, c Converter[T]) Converter[T] {
	return goconv.FromFunc(func(from any, ctx any) goconv.Result[T] {
		obj, ok := goconv.AsObject(from)
		if !ok {
			return nonObject[T](name, from)
		}
		raw, present := obj[name]
		if !present {
			return goconv.FailCode[T](goconv.CodeFieldNotFound, map[string]string{"field": name, "value": goconv.Stringify(from)})
		}
		r := c.Convert(raw, forward(ctx)...)
		if r.IsFailure() {
			return goconv.Fail[T](name + ": " + r.Message())
		}
		return r
	})
}

// OptionalField converts the property name of an object when present. A
// missing property, or an undefined one that fails to convert, yields nil.
func OptionalField[T any](name string, c Converter[T]) Converter[*T] {
	return goconv.FromFunc(func(from any, ctx any) goconv.Result[*T] {
		obj, ok := goconv.AsObject(from)
		if !ok {
			return nonObject[*T](name, from)
		}
		raw, present := obj[name]
		if !present {
			return goconv.Succeed[*T](nil)
		}
		r := c.Convert(raw, forward(ctx)...)
		switch {
		case r.IsSuccess():
			v := r.Value()
			return goconv.Succeed(&v)
		case goconv.IsUndefined(raw):
			return goconv.Succeed[*T](nil)
		}
		return goconv.Fail[*T](name + ": " + r.Message())
	})
}

func nonObject[T any](name string, from any) goconv.Result[T] {
	return goconv.FailCode[T](goconv.CodeNonObject, map[string]string{"field": name, "value": goconv.Stringify(from)})
}

// Element converts the element at index of a sequence.
func Element[T any](index int, c Converter[T]) Converter[T] {
	return goconv.FromFunc(func(from any, ctx any) goconv.Result[T] {
		items, r, done := element[T](index, from)
		if done {
			return r
		}
		if index >= len(items) {
			return goconv.FailCode[T](goconv.CodeIndexOutOfRange, map[string]string{"index": strconv.Itoa(index), "value": goconv.Stringify(from)})
		}
		return elementValue(index, c.Convert(items[index], forward(ctx)...))
	})
}

// OptionalElement is Element except that an index past the end, or an
// undefined element that fails to convert, yields nil.
func OptionalElement[T any](index int, c Converter[T]) Converter[*T] {
	return goconv.FromFunc(func(from any, ctx any) goconv.Result[*T] {
		items, r, done := element[*T](index, from)
		if done {
			return r
		}
		if index >= len(items) {
			return goconv.Succeed[*T](nil)
		}
		e := c.Convert(items[index], forward(ctx)...)
		switch {
		case e.IsSuccess():
			v := e.Value()
			return goconv.Succeed(&v)
		case goconv.IsUndefined(items[index]):
			return goconv.Succeed[*T](nil)
		}
		return goconv.Failf[*T]("element %d: %s", index, e.Message())
	})
}

// element checks the input and index shared by Element and OptionalElement.
// done reports that r is the final result.
func element[T any](index int, from any) (items []any, r goconv.Result[T], done bool) {
	items, ok := goconv.Items(from)
	if !ok {
		return nil, fail[T](goconv.CodeNotArray, from), true
	}
	if index < 0 {
		return nil, goconv.FailCode[T](goconv.CodeNegativeIndex, map[string]string{"index": strconv.Itoa(index)}), true
	}
	return items, r, false
}

func elementValue[T any](index int, r goconv.Result[T]) goconv.Result[T] {
	if r.IsFailure() {
		return goconv.Failf[T]("element %d: %s", index, r.Message())
	}
	return r
}

// DiscriminatedObject selects the converter for an object by the value of
// its discriminator property key. The selected converter receives the
// whole object.
func DiscriminatedObject[T any](key string, byTag map[string]Converter[T]) Converter[T] {
	byTag = maps.Clone(byTag)
	return goconv.FromFunc(func(from any, ctx any) goconv.Result[T] {
		obj, ok := goconv.AsObject(from)
		if !ok {
			return fail[T](goconv.CodeNotDiscriminated, from)
		}
		raw, present := obj[key]
		if !present || goconv.IsUndefined(raw) {
			return goconv.FailCode[T](goconv.CodeDiscriminatorMissing, map[string]string{"field": key, "value": goconv.Stringify(from)})
		}
		tag, ok := raw.(string)
		if !ok {
			tag = goconv.Stringify(raw)
		}
		c, ok := byTag[tag]
		if !ok {
			return goconv.FailCode[T](goconv.CodeDiscriminatorUnknown, map[string]string{"field": key, "value": tag})
		}
		return c.Convert(from, forward(ctx)...)
	})
}
