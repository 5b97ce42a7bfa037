package validators

import (
	"errors"
	"maps"
	"slices"
	"strconv"

	"github.com/reoring/goconv"
)

// ArrayOf accepts a []any whose every element passes item. Every element
// failure is reported.
func ArrayOf(item goconv.AnyValidator[any]) Validator[[]any] {
	return goconv.ValidatorFromFunc[[]any](func(from any, ctx any) error {
		items, ok := from.([]any)
		if !ok {
			return failure(goconv.CodeNotArray, from)
		}
		var errs []string
		for i, it := range items {
			if r := item.ValidateAny(it, forward(ctx)...); r.IsFailure() {
				errs = append(errs, strconv.Itoa(i)+": "+r.Message())
			}
		}
		return joined(errs)
	})
}

// RecordOf accepts a map[string]any whose every value passes item.
func RecordOf(item goconv.AnyValidator[any]) Validator[map[string]any] {
	return goconv.ValidatorFromFunc[map[string]any](func(from any, ctx any) error {
		obj, ok := from.(map[string]any)
		if !ok || obj == nil {
			return failure(goconv.CodeNotRecord, from)
		}
		var errs []string
		for _, k := range slices.Sorted(maps.Keys(obj)) {
			if r := item.ValidateAny(obj[k], forward(ctx)...); r.IsFailure() {
				errs = append(errs, k+": "+r.Message())
			}
		}
		return joined(errs)
	})
}

// Fields maps property names to validators. A nil entry is skipped.
type Fields map[string]goconv.AnyValidator[any]

// ObjectOptions configures Object.
type ObjectOptions struct {
	OptionalFields []string
	Strict         bool
}

// Object accepts a map[string]any whose properties pass their validators.
func Object(fields Fields, opts ...ObjectOptions) Validator[map[string]any] {
	var o ObjectOptions
	if len(opts) > 0 {
		o = opts[len(opts)-1]
	}
	fields = maps.Clone(fields)
	optional := make(map[string]bool, len(o.OptionalFields))
	for _, name := range o.OptionalFields {
		optional[name] = true
	}
	keys := slices.Sorted(maps.Keys(fields))
	return goconv.ValidatorFromFunc[map[string]any](func(from any, ctx any) error {
		obj, ok := from.(map[string]any)
		if !ok || obj == nil {
			return failure(goconv.CodeNotObject, from)
		}
		var errs []string
		for _, name := range keys {
			v := fields[name]
			if v == nil {
				continue
			}
			isOptional := optional[name] || v.IsOptional()
			raw, present := obj[name]
			if !present {
				if !isOptional {
					errs = append(errs, goconv.Text(goconv.CodeFieldNotFound, map[string]string{"field": name, "value": goconv.Stringify(from)}))
				}
				continue
			}
			r := v.ValidateAny(raw, forward(ctx)...)
			if r.IsFailure() && !(isOptional && goconv.IsUndefined(raw)) {
				errs = append(errs, name+": "+r.Message())
			}
		}
		if o.Strict {
			for _, k := range slices.Sorted(maps.Keys(obj)) {
				if _, known := fields[k]; !known {
					errs = append(errs, goconv.Text(goconv.CodeUnexpectedProperty, map[string]string{"field": k}))
				}
			}
		}
		return joined(errs)
	})
}

// OneOf accepts values that pass at least one of the validators.
func OneOf(list []goconv.AnyValidator[any]) Validator[any] {
	list = slices.Clone(list)
	return goconv.ValidatorFromFunc[any](func(from any, ctx any) error {
		for _, v := range list {
			if v.ValidateAny(from, forward(ctx)...).IsSuccess() {
				return nil
			}
		}
		return failure(goconv.CodeNoMatch, from)
	})
}

// DiscriminatedObject validates an object with the validator selected by
// the value of its discriminator property key.
func DiscriminatedObject(key string, byTag map[string]goconv.AnyValidator[any]) Validator[map[string]any] {
	byTag = maps.Clone(byTag)
	return goconv.ValidatorFromFunc[map[string]any](func(from any, ctx any) error {
		obj, ok := from.(map[string]any)
		if !ok || obj == nil {
			return failure(goconv.CodeNotDiscriminated, from)
		}
		raw, present := obj[key]
		if !present || goconv.IsUndefined(raw) {
			return errors.New(goconv.Text(goconv.CodeDiscriminatorMissing, map[string]string{"field": key, "value": goconv.Stringify(from)}))
		}
		tag, ok := raw.(string)
		if !ok {
			tag = goconv.Stringify(raw)
		}
		v, ok := byTag[tag]
		if !ok {
			return errors.New(goconv.Text(goconv.CodeDiscriminatorUnknown, map[string]string{"field": key, "value": tag}))
		}
		if r := v.ValidateAny(from, forward(ctx)...); r.IsFailure() {
			return errors.New(r.Message())
		}
		return nil
	})
}

func joined(errs []string) error {
	if len(errs) == 0 {
		return nil
	}
	return errors.New(goconv.JoinMessages(errs))
}
