package converters

import (
	"cmp"

	"github.com/reoring/goconv"
)

// RangeOf converts an object {min?, max?} into a goconv.RangeOf, converting
// each present bound with value. Both bounds present with min > max fails
// with "inverted range".
func RangeOf[T cmp.Ordered](value Converter[T]) Converter[goconv.RangeOf[T]] {
	return RangeOfFunc(value, cmp.Compare[T])
}

// RangeOfFunc is RangeOf for types ordered by compare.
func RangeOfFunc[T any](value Converter[T], compare func(a, b T) int) Converter[goconv.RangeOf[T]] {
	return goconv.FromFunc(func(from any, ctx any) goconv.Result[goconv.RangeOf[T]] {
		obj, ok := goconv.AsObject(from)
		if !ok {
			return fail[goconv.RangeOf[T]](goconv.CodeNotObject, from)
		}
		var init goconv.RangeInit[T]
		var errs []string
		for _, b := range []struct {
			name string
			dst  **T
		}{{"min", &init.Min}, {"max", &init.Max}} {
			raw, present := obj[b.name]
			if !present || goconv.IsUndefined(raw) {
				continue
			}
			r := value.Convert(raw, forward(ctx)...)
			if r.IsFailure() {
				errs = append(errs, b.name+": "+r.Message())
				continue
			}
			v := r.Value()
			*b.dst = &v
		}
		if len(errs) > 0 {
			return goconv.Fail[goconv.RangeOf[T]](goconv.JoinMessages(errs))
		}
		return goconv.CreateRangeFunc(init, compare)
	})
}
