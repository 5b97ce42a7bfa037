package converters

import (
	"maps"
	"slices"

	"github.com/reoring/goconv"
)

// OneOf returns the result of the first converter that succeeds. onError
// defaults to IgnoreErrors, where the first success wins even if its value
// is undefined. Under FailOnError an undefined success does not end the
// search, a failing converter never aborts it either, and when nothing
// matches the final failure lists every converter's message.
func OneOf[T any](list []Converter[T], onError ...goconv.OnError) Converter[T] {
	p := policy(onError, goconv.IgnoreErrors)
	list = slices.Clone(list)
	return goconv.FromFunc(func(from any, ctx any) goconv.Result[T] {
		var errs []string
		for _, c := range list {
			r := c.Convert(from, forward(ctx)...)
			if r.IsSuccess() {
				if p == goconv.IgnoreErrors || !goconv.IsUndefined(any(r.Value())) {
					return r
				}
				continue
			}
			if p == goconv.FailOnError {
				errs = append(errs, r.Message())
			}
		}
		msg := goconv.Text(goconv.CodeNoMatch, map[string]string{"value": goconv.Stringify(from)})
		if len(errs) > 0 {
			msg = goconv.JoinMessages(append([]string{msg}, errs...))
		}
		return goconv.Fail[T](msg)
	})
}

// ArrayOf converts every element of a sequence with item. onError defaults
// to FailOnError, which reports every element failure. IgnoreErrors drops
// failing elements as well as elements converted to an undefined value.
func ArrayOf[T any](item Converter[T], onError ...goconv.OnError) Converter[[]T] {
	p := policy(onError, goconv.FailOnError)
	return goconv.FromFunc(func(from any, ctx any) goconv.Result[[]T] {
		items, ok := goconv.Items(from)
		if !ok {
			return fail[[]T](goconv.CodeNotArray, from)
		}
		if p == goconv.IgnoreErrors {
			out := make([]T, 0, len(items))
			for _, it := range items {
				r := item.Convert(it, forward(ctx)...)
				if r.IsSuccess() && !goconv.IsUndefined(any(r.Value())) {
					out = append(out, r.Value())
				}
			}
			return goconv.Succeed(out)
		}
		results := make([]goconv.Result[T], len(items))
		for i, it := range items {
			results[i] = item.Convert(it, forward(ctx)...)
		}
		return goconv.MapResults(results)
	})
}

// ExtendedArrayOf is ArrayOf with the result wrapped in an ExtendedArray
// described by itemDescription.
func ExtendedArrayOf[T any](itemDescription string, item Converter[T], onError ...goconv.OnError) Converter[goconv.ExtendedArray[T]] {
	return goconv.Map(ArrayOf(item, onError...), func(items []T) goconv.Result[goconv.ExtendedArray[T]] {
		return goconv.Succeed(goconv.NewExtendedArray(itemDescription, items))
	})
}

// RecordOptions configures RecordOf.
type RecordOptions struct {
	// OnError defaults to FailOnError.
	OnError goconv.OnError
	// KeyConverter, when set, converts every key before it is stored.
	KeyConverter Converter[string]
}

// RecordOf converts every value of a string-keyed object with item.
// Under FailOnError any key or value failure fails the whole conversion and
// every failure is reported; under IgnoreErrors failing entries are dropped.
func RecordOf[T any](item Converter[T], opts ...RecordOptions) Converter[map[string]T] {
	var o RecordOptions
	if len(opts) > 0 {
		o = opts[len(opts)-1]
	}
	key := o.KeyConverter
	if key.IsZero() {
		key = String()
	}
	return MapOf(key, item, o.OnError)
}

// MapOf converts a string-keyed object into a map[K]T, converting keys
// with key and values with item. onError defaults to FailOnError.
func MapOf[K comparable, T any](key Converter[K], item Converter[T], onError ...goconv.OnError) Converter[map[K]T] {
	p := policy(onError, goconv.FailOnError)
	return goconv.FromFunc(func(from any, ctx any) goconv.Result[map[K]T] {
		obj, ok := goconv.AsObject(from)
		if !ok {
			return fail[map[K]T](goconv.CodeNotRecord, from)
		}
		out := make(map[K]T, len(obj))
		var errs []string
		for _, name := range slices.Sorted(maps.Keys(obj)) {
			k := key.Convert(name, forward(ctx)...)
			if k.IsFailure() {
				if p == goconv.FailOnError {
					errs = append(errs, name+": "+k.Message())
				}
				continue
			}
			v := item.Convert(obj[name], forward(ctx)...)
			if v.IsFailure() {
				if p == goconv.FailOnError {
					errs = append(errs, name+": "+v.Message())
				}
				continue
			}
			out[k.Value()] = v.Value()
		}
		if len(errs) > 0 {
			return goconv.Fail[map[K]T](goconv.JoinMessages(errs))
		}
		return goconv.Succeed(out)
	})
}
