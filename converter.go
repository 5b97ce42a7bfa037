package goconv

// OnError selects how a combinator treats failing (or undefined) elements.
type OnError int

const (
	// FailOnError aborts, or aggregates every element failure, on any failure.
	FailOnError OnError = iota
	// IgnoreErrors silently drops failing elements.
	IgnoreErrors
)

func (o OnError) String() string {
	if o == IgnoreErrors {
		return "ignoreErrors"
	}
	return "failOnError"
}

// policy returns the last supplied OnError, or def when none is given.
func policy(onError []OnError, def OnError) OnError {
	if len(onError) > 0 {
		return onError[len(onError)-1]
	}
	return def
}

// ResolveContext picks the context of a call: the last explicit context when
// one is supplied, otherwise the default context, otherwise the zero value.
func ResolveContext[C any](explicit []C, def *C) C {
	if len(explicit) > 0 {
		return explicit[len(explicit)-1]
	}
	if def != nil {
		return *def
	}
	var zero C
	return zero
}

// Traits describe a converter.
type Traits struct {
	IsOptional bool
	Brand      string
}

// ConverterFunc is the conversion body wrapped by a Converter. self is the
// converter being invoked, which lets a body recurse.
type ConverterFunc[T, C any] func(from any, self Converter[T, C], ctx C) Result[T]

// Converter turns an unknown value into a T, optionally guided by a context C.
// A Converter is an immutable value: every combinator returns a new one.
type Converter[T, C any] struct {
	fn         ConverterFunc[T, C]
	defaultCtx *C
	traits     Traits
	// box erases a converted value for ConvertAny; nil means any(v).
	box func(T) any
}

// AnyConverter is the type-erased view of a Converter (or Validator) used by
// structural combinators that hold converters of heterogeneous types.
type AnyConverter[C any] interface {
	ConvertAny(from any, ctx ...C) Result[any]
	IsOptional() bool
}

var _ AnyConverter[any] = Converter[string, any]{}

// ConverterOption configures NewConverter.
type ConverterOption[C any] func(*converterConfig[C])

type converterConfig[C any] struct {
	defaultCtx *C
	traits     Traits
}

// WithDefaultContext sets the context used when a call supplies none.
func WithDefaultContext[C any](ctx C) ConverterOption[C] {
	return func(cfg *converterConfig[C]) { cfg.defaultCtx = &ctx }
}

// WithTraits sets the initial traits of a converter.
func WithTraits[C any](t Traits) ConverterOption[C] {
	return func(cfg *converterConfig[C]) { cfg.traits = t }
}

// NewConverter wraps fn into a Converter.
func NewConverter[T, C any](fn ConverterFunc[T, C], opts ...ConverterOption[C]) Converter[T, C] {
	var cfg converterConfig[C]
	for _, o := range opts {
		o(&cfg)
	}
	return Converter[T, C]{fn: fn, defaultCtx: cfg.defaultCtx, traits: cfg.traits}
}

// FromFunc wraps a body that does not need access to the converter itself.
func FromFunc[T, C any](fn func(from any, ctx C) Result[T], opts ...ConverterOption[C]) Converter[T, C] {
	return NewConverter(func(from any, _ Converter[T, C], ctx C) Result[T] { return fn(from, ctx) }, opts...)
}

// IsZero reports whether c was never constructed.
func (c Converter[T, C]) IsZero() bool { return c.fn == nil }

// Traits returns the traits of c.
func (c Converter[T, C]) Traits() Traits { return c.traits }

// IsOptional reports whether c accepts undefined input.
func (c Converter[T, C]) IsOptional() bool { return c.traits.IsOptional }

// Brand returns the brand of c, or "" when unbranded.
func (c Converter[T, C]) Brand() string { return c.traits.Brand }

// DefaultContext returns the default context and whether one is set.
func (c Converter[T, C]) DefaultContext() (C, bool) {
	if c.defaultCtx == nil {
		var zero C
		return zero, false
	}
	return *c.defaultCtx, true
}

// Convert converts from using the explicit context if supplied, otherwise the
// default context.
func (c Converter[T, C]) Convert(from any, ctx ...C) Result[T] {
	return c.fn(from, c, ResolveContext(ctx, c.defaultCtx))
}

// ConvertOptional converts from, ignoring errors: any failure yields an
// undefined (nil) success.
func (c Converter[T, C]) ConvertOptional(from any, ctx ...C) Result[*T] {
	return c.ConvertOptionalWith(from, IgnoreErrors, ctx...)
}

// ConvertOptionalWith converts from; on failure it yields an undefined
// success when from is undefined or onError is IgnoreErrors, and propagates
// the failure otherwise.
func (c Converter[T, C]) ConvertOptionalWith(from any, onError OnError, ctx ...C) Result[*T] {
	r := c.Convert(from, ctx...)
	if r.ok {
		v := r.value
		return Succeed(&v)
	}
	if IsUndefined(from) || onError == IgnoreErrors {
		return Succeed[*T](nil)
	}
	return Fail[*T](r.message)
}

// ConvertAny converts from and erases the type of the value. An optional
// converter's undefined result is reported as a nil value.
func (c Converter[T, C]) ConvertAny(from any, ctx ...C) Result[any] {
	r := c.Convert(from, ctx...)
	if !r.ok {
		return Fail[any](r.message)
	}
	if c.box != nil {
		return Succeed(c.box(r.value))
	}
	return Succeed[any](r.value)
}

// derive copies c's default context into a new converter with body fn.
func derive[T, U, C any](c Converter[T, C], fn ConverterFunc[U, C], traits Traits) Converter[U, C] {
	return Converter[U, C]{fn: fn, defaultCtx: c.defaultCtx, traits: traits}
}

// with returns a copy of c with body fn, keeping traits and boxing.
func (c Converter[T, C]) with(fn ConverterFunc[T, C]) Converter[T, C] {
	out := c
	out.fn = fn
	return out
}

// Optional returns a converter of *T that accepts undefined input. When the
// underlying conversion fails, undefined input yields a nil success; other
// input fails unless onError is IgnoreErrors. onError defaults to
// FailOnError, unlike ConvertOptional, which ignores errors.
func Optional[T, C any](c Converter[T, C], onError ...OnError) Converter[*T, C] {
	p := policy(onError, FailOnError)
	traits := c.traits
	traits.IsOptional = true
	out := derive(c, func(from any, _ Converter[*T, C], ctx C) Result[*T] {
		return c.ConvertOptionalWith(from, p, ctx)
	}, traits)
	out.box = func(v *T) any {
		if v == nil {
			return nil
		}
		if c.box != nil {
			return c.box(*v)
		}
		return *v
	}
	return out
}

// WithContext returns a copy of c whose default context is ctx.
func (c Converter[T, C]) WithContext(ctx C) Converter[T, C] {
	out := c
	out.defaultCtx = &ctx
	return out
}

// WithDefault returns a converter that succeeds with def whenever c fails.
func (c Converter[T, C]) WithDefault(def T) Converter[T, C] {
	return c.with(func(from any, _ Converter[T, C], ctx C) Result[T] {
		r := c.fn(from, c, ctx)
		if !r.ok {
			return Succeed(def)
		}
		return r
	})
}

// WithFormattedError returns a converter whose failure messages are rewritten
// by format.
func (c Converter[T, C]) WithFormattedError(format func(from any, message string, ctx C) string) Converter[T, C] {
	return c.with(func(from any, _ Converter[T, C], ctx C) Result[T] {
		r := c.fn(from, c, ctx)
		if !r.ok {
			return Fail[T](format(from, r.message, ctx))
		}
		return r
	})
}

// WithBrand returns a copy of c carrying the nominal brand tag. Branding an
// already branded converter is a programmer error and panics with a
// *BrandConflictError.
func (c Converter[T, C]) WithBrand(tag string) Converter[T, C] {
	if c.traits.Brand != "" {
		panic(&BrandConflictError{Existing: c.traits.Brand, Requested: tag})
	}
	out := c
	out.traits.Brand = tag
	return out
}
