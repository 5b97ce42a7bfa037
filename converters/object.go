package converters

import (
	"maps"
	"slices"

	"github.com/mitchellh/mapstructure"

	"github.com/reoring/goconv"
)

// Fields maps property names to the converters (or validators) for their
// values. A nil entry is skipped: the property is neither read nor
// reported as unexpected.
type Fields map[string]goconv.AnyConverter[any]

// ObjectOptions configures Object.
type ObjectOptions struct {
	// OptionalFields lists fields that may be missing. Fields whose
	// converter is optional are always treated as optional.
	OptionalFields []string
	// Strict rejects source properties that have no entry in the fields.
	Strict bool
	// Description prefixes every failure message when set.
	Description string
}

// ObjectConverter converts plain objects field by field.
type ObjectConverter struct {
	goconv.Converter[map[string]any, any]
	fields Fields
	opts   ObjectOptions
}

// Object builds a converter for plain objects. A missing required field
// fails with "field <name> not found"; every field failure is reported.
func Object(fields Fields, opts ...ObjectOptions) ObjectConverter {
	var o ObjectOptions
	if len(opts) > 0 {
		o = opts[len(opts)-1]
	}
	return newObject(maps.Clone(fields), o)
}

// StrictObject is Object with Strict set.
func StrictObject(fields Fields, opts ...ObjectOptions) ObjectConverter {
	var o ObjectOptions
	if len(opts) > 0 {
		o = opts[len(opts)-1]
	}
	o.Strict = true
	return newObject(maps.Clone(fields), o)
}

func newObject(fields Fields, o ObjectOptions) ObjectConverter {
	o.OptionalFields = slices.Clone(o.OptionalFields)
	optional := make(map[string]bool, len(o.OptionalFields))
	for _, name := range o.OptionalFields {
		optional[name] = true
	}
	keys := slices.Sorted(maps.Keys(fields))
	c := goconv.FromFunc(func(from any, ctx any) goconv.Result[map[string]any] {
		obj, ok := goconv.AsObject(from)
		if !ok {
			code := goconv.CodeCannotConvert
			if o.Strict {
				code = goconv.CodeNotObject
			}
			return describe(fail[map[string]any](code, from), o.Description)
		}
		out := make(map[string]any, len(fields))
		var errs []string
		for _, name := range keys {
			conv := fields[name]
			if conv == nil {
				continue
			}
			isOptional := optional[name] || conv.IsOptional()
			raw, present := obj[name]
			if !present {
				if !isOptional {
					errs = append(errs, goconv.Text(goconv.CodeFieldNotFound, map[string]string{"field": name, "value": goconv.Stringify(from)}))
				}
				continue
			}
			r := conv.ConvertAny(raw, forward(ctx)...)
			switch {
			case r.IsFailure() && isOptional && goconv.IsUndefined(raw):
			case r.IsFailure():
				errs = append(errs, name+": "+r.Message())
			case isOptional && goconv.IsUndefined(r.Value()):
			default:
				out[name] = r.Value()
			}
		}
		if o.Strict {
			errs = append(errs, unexpected(obj, func(k string) bool {
				_, known := fields[k]
				return known
			})...)
		}
		if len(errs) > 0 {
			return describe(goconv.Fail[map[string]any](goconv.JoinMessages(errs)), o.Description)
		}
		return goconv.Succeed(out)
	})
	return ObjectConverter{Converter: c, fields: fields, opts: o}
}

// AddPartial returns a converter that also treats names as optional. The
// receiver is left unchanged.
func (o ObjectConverter) AddPartial(names ...string) ObjectConverter {
	opts := o.opts
	opts.OptionalFields = append(slices.Clone(o.opts.OptionalFields), names...)
	return newObject(o.fields, opts)
}

// Options returns a copy of the options the converter was built with.
func (o ObjectConverter) Options() ObjectOptions {
	opts := o.opts
	opts.OptionalFields = slices.Clone(o.opts.OptionalFields)
	return opts
}

// Transformers maps result properties to converters applied to the whole
// source object.
type Transformers map[string]goconv.AnyConverter[any]

// Transform builds an object by running every converter against the whole
// source value. Undefined results of optional converters are left out.
func Transform(fields Transformers) Converter[map[string]any] {
	fields = maps.Clone(fields)
	keys := slices.Sorted(maps.Keys(fields))
	return goconv.FromFunc(func(from any, ctx any) goconv.Result[map[string]any] {
		out := make(map[string]any, len(fields))
		var errs []string
		for _, name := range keys {
			conv := fields[name]
			if conv == nil {
				continue
			}
			r := conv.ConvertAny(from, forward(ctx)...)
			switch {
			case r.IsFailure():
				errs = append(errs, r.Message())
			case conv.IsOptional() && goconv.IsUndefined(r.Value()):
			default:
				out[name] = r.Value()
			}
		}
		if len(errs) > 0 {
			return goconv.Fail[map[string]any](goconv.JoinMessages(errs))
		}
		return goconv.Succeed(out)
	})
}

// FieldTransformer reads the source property From (the result property
// name when empty) and converts it.
type FieldTransformer struct {
	From      string
	Converter goconv.AnyConverter[any]
	Optional  bool
}

// TransformOptions configures TransformObject.
type TransformOptions struct {
	// Strict rejects source properties that no transformer reads, except
	// those listed in Ignore.
	Strict      bool
	Ignore      []string
	Description string
}

// TransformObject builds an object from differently named source
// properties, with the required/optional semantics of Object.
func TransformObject(fields map[string]FieldTransformer, opts ...TransformOptions) Converter[map[string]any] {
	var o TransformOptions
	if len(opts) > 0 {
		o = opts[len(opts)-1]
	}
	fields = maps.Clone(fields)
	keys := slices.Sorted(maps.Keys(fields))
	known := make(map[string]bool, len(fields)+len(o.Ignore))
	for _, name := range keys {
		known[sourceName(name, fields[name])] = true
	}
	for _, name := range o.Ignore {
		known[name] = true
	}
	return goconv.FromFunc(func(from any, ctx any) goconv.Result[map[string]any] {
		obj, ok := goconv.AsObject(from)
		if !ok {
			code := goconv.CodeCannotConvert
			if o.Strict {
				code = goconv.CodeNotObject
			}
			return describe(fail[map[string]any](code, from), o.Description)
		}
		out := make(map[string]any, len(fields))
		var errs []string
		for _, name := range keys {
			ft := fields[name]
			if ft.Converter == nil {
				continue
			}
			src := sourceName(name, ft)
			isOptional := ft.Optional || ft.Converter.IsOptional()
			raw, present := obj[src]
			if !present {
				if !isOptional {
					errs = append(errs, goconv.Text(goconv.CodeFieldNotFound, map[string]string{"field": src, "value": goconv.Stringify(from)}))
				}
				continue
			}
			r := ft.Converter.ConvertAny(raw, forward(ctx)...)
			switch {
			case r.IsFailure() && isOptional && goconv.IsUndefined(raw):
			case r.IsFailure():
				errs = append(errs, src+": "+r.Message())
			case isOptional && goconv.IsUndefined(r.Value()):
			default:
				out[name] = r.Value()
			}
		}
		if o.Strict {
			errs = append(errs, unexpected(obj, func(k string) bool { return known[k] })...)
		}
		if len(errs) > 0 {
			return describe(goconv.Fail[map[string]any](goconv.JoinMessages(errs)), o.Description)
		}
		return goconv.Succeed(out)
	})
}

func sourceName(name string, ft FieldTransformer) string {
	if ft.From != "" {
		return ft.From
	}
	return name
}

func unexpected(obj map[string]any, known func(string) bool) []string {
	var errs []string
	for _, k := range slices.Sorted(maps.Keys(obj)) {
		if !known(k) {
			errs = append(errs, goconv.Text(goconv.CodeUnexpectedProperty, map[string]string{"field": k}))
		}
	}
	return errs
}

func describe[T any](r goconv.Result[T], description string) goconv.Result[T] {
	if description == "" || r.IsSuccess() {
		return r
	}
	return goconv.Fail[T](description + ": " + r.Message())
}

// StructOf converts a plain object with Object and decodes the result into
// a T. Struct fields are matched by their json tag names.
func StructOf[T any](fields Fields, opts ...ObjectOptions) Converter[T] {
	return goconv.Map(Object(fields, opts...).Converter, decodeStruct[T])
}

func decodeStruct[T any](m map[string]any) goconv.Result[T] {
	var out T
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  &out,
		TagName: "json",
	})
	if err != nil {
		return goconv.Fail[T](err.Error())
	}
	if err := dec.Decode(m); err != nil {
		return goconv.Fail[T](err.Error())
	}
	return goconv.Succeed(out)
}
