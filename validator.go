package goconv

import (
	"errors"
	"slices"
)

// ValidatorFunc accepts (nil error) or rejects (non-nil error) a value in
// place. The error text becomes the failure message.
type ValidatorFunc[C any] func(from any, ctx C) error

// ConstraintTrait describes one constraint attached to a validator.
type ConstraintTrait struct {
	Kind string
	Tag  string
}

// ConstraintKindFunction marks constraints attached with WithConstraint.
const ConstraintKindFunction = "function"

// ValidatorTraits describe a validator. Unlike converters, validators expose
// the constraints attached to them.
type ValidatorTraits struct {
	IsOptional  bool
	Brand       string
	Constraints []ConstraintTrait
}

// ValidatorOptions configures NewValidator.
type ValidatorOptions[C any] struct {
	Validator      ValidatorFunc[C]
	DefaultContext *C
	Traits         ValidatorTraits
}

// Validator confirms or rejects an unknown value without transforming it:
// on success it returns the very value it was given.
type Validator[T, C any] struct {
	fn         ValidatorFunc[C]
	defaultCtx *C
	traits     ValidatorTraits
	onError    OnError
}

// AnyValidator is the type-erased view of a Validator.
type AnyValidator[C any] interface {
	ValidateAny(from any, ctx ...C) Result[any]
	IsOptional() bool
}

var (
	_ AnyValidator[any] = Validator[string, any]{}
	_ AnyConverter[any] = Validator[string, any]{}
)

// NewValidator builds a Validator. It panics with ErrNoValidatorFunction when
// opts.Validator is nil.
func NewValidator[T, C any](opts ValidatorOptions[C]) Validator[T, C] {
	if opts.Validator == nil {
		panic(ErrNoValidatorFunction)
	}
	traits := opts.Traits
	traits.Constraints = slices.Clone(traits.Constraints)
	return Validator[T, C]{fn: opts.Validator, defaultCtx: opts.DefaultContext, traits: traits}
}

// ValidatorFromFunc is shorthand for NewValidator with only a function.
func ValidatorFromFunc[T, C any](fn ValidatorFunc[C]) Validator[T, C] {
	return NewValidator[T](ValidatorOptions[C]{Validator: fn})
}

// Traits returns a copy of the traits of v.
func (v Validator[T, C]) Traits() ValidatorTraits {
	t := v.traits
	t.Constraints = slices.Clone(t.Constraints)
	return t
}

func (v Validator[T, C]) IsOptional() bool { return v.traits.IsOptional }
func (v Validator[T, C]) Brand() string    { return v.traits.Brand }

func (v Validator[T, C]) validate(from any, ctx C) Result[T] {
	if err := v.fn(from, ctx); err != nil {
		return Fail[T](err.Error())
	}
	if from == nil {
		var zero T
		return Succeed(zero)
	}
	if t, ok := from.(T); ok {
		return Succeed(t)
	}
	// decoded numbers (json.Number, int from YAML) are accepted as numeric T
	if t, ok := AsNumber[T](from); ok {
		return Succeed(t)
	}
	return FailCode[T](CodeInvalidType, map[string]string{"value": Stringify(from)})
}

// Validate checks from and returns it unchanged on success.
func (v Validator[T, C]) Validate(from any, ctx ...C) Result[T] {
	c := ResolveContext(ctx, v.defaultCtx)
	if v.traits.IsOptional {
		return v.validateOptional(from, v.onError, c)
	}
	return v.validate(from, c)
}

// ValidateOptional validates from, ignoring errors: a failure yields an
// undefined (zero) success.
func (v Validator[T, C]) ValidateOptional(from any, ctx ...C) Result[T] {
	return v.ValidateOptionalWith(from, IgnoreErrors, ctx...)
}

// ValidateOptionalWith validates from; on failure it yields an undefined
// (zero) success when from is undefined or onError is IgnoreErrors.
func (v Validator[T, C]) ValidateOptionalWith(from any, onError OnError, ctx ...C) Result[T] {
	return v.validateOptional(from, onError, ResolveContext(ctx, v.defaultCtx))
}

func (v Validator[T, C]) validateOptional(from any, onError OnError, ctx C) Result[T] {
	r := v.validate(from, ctx)
	if !r.ok && (IsUndefined(from) || onError == IgnoreErrors) {
		var zero T
		return Succeed(zero)
	}
	return r
}

// Guard reports whether from is valid; usable as a plain type predicate.
func (v Validator[T, C]) Guard(from any, ctx ...C) bool {
	return v.Validate(from, ctx...).ok
}

// ValidateAny validates from and erases its type.
func (v Validator[T, C]) ValidateAny(from any, ctx ...C) Result[any] {
	r := v.validate(from, ResolveContext(ctx, v.defaultCtx))
	switch {
	case r.ok:
		return Succeed(from)
	case v.traits.IsOptional && (IsUndefined(from) || v.onError == IgnoreErrors):
		return Succeed[any](nil)
	}
	return Fail[any](r.message)
}

// ConvertAny lets a validator stand wherever a converter is accepted.
func (v Validator[T, C]) ConvertAny(from any, ctx ...C) Result[any] {
	return v.ValidateAny(from, ctx...)
}

// AsConverter returns a Converter that validates with v.
func (v Validator[T, C]) AsConverter() Converter[T, C] {
	return Converter[T, C]{
		fn:         func(from any, _ Converter[T, C], ctx C) Result[T] { return v.Validate(from, ctx) },
		defaultCtx: v.defaultCtx,
		traits:     Traits{IsOptional: v.traits.IsOptional, Brand: v.traits.Brand},
	}
}

// Optional returns a validator that accepts undefined input. onError defaults
// to FailOnError.
func (v Validator[T, C]) Optional(onError ...OnError) Validator[T, C] {
	out := v.clone()
	out.traits.IsOptional = true
	out.onError = policy(onError, FailOnError)
	return out
}

// WithContext returns a copy of v whose default context is ctx.
func (v Validator[T, C]) WithContext(ctx C) Validator[T, C] {
	out := v.clone()
	out.defaultCtx = &ctx
	return out
}

// WithConstraint returns a validator that additionally requires pred to hold.
// The constraint is recorded in the traits.
func (v Validator[T, C]) WithConstraint(pred func(T) bool, opts ...ConstraintOptions) Validator[T, C] {
	desc := constraintDescription(opts)
	return v.withCheck(func(t T) error {
		if !pred(t) {
			return errors.New(constraintFailure[T](t, desc).message)
		}
		return nil
	}, ConstraintTrait{Kind: ConstraintKindFunction, Tag: desc})
}

// WithResultConstraint attaches a check that builds its own Result; a
// failure's message is reported verbatim.
func (v Validator[T, C]) WithResultConstraint(check func(T) Result[T], opts ...ConstraintOptions) Validator[T, C] {
	return v.withCheck(func(t T) error {
		if r := check(t); !r.ok {
			return errors.New(r.message)
		}
		return nil
	}, ConstraintTrait{Kind: ConstraintKindFunction, Tag: constraintDescription(opts)})
}

func (v Validator[T, C]) withCheck(check func(T) error, trait ConstraintTrait) Validator[T, C] {
	base := v.fn
	out := v.clone()
	out.fn = func(from any, ctx C) error {
		if err := base(from, ctx); err != nil {
			return err
		}
		t, ok := from.(T)
		if !ok {
			if from != nil {
				return errors.New(Text(CodeInvalidType, map[string]string{"value": Stringify(from)}))
			}
			var zero T
			t = zero
		}
		return check(t)
	}
	out.traits.Constraints = append(out.traits.Constraints, trait)
	return out
}

// WithBrand returns a copy of v carrying the brand tag. It panics with a
// *BrandConflictError when v is already branded.
func (v Validator[T, C]) WithBrand(tag string) Validator[T, C] {
	if v.traits.Brand != "" {
		panic(&BrandConflictError{Existing: v.traits.Brand, Requested: tag})
	}
	out := v.clone()
	out.traits.Brand = tag
	return out
}

func (v Validator[T, C]) clone() Validator[T, C] {
	out := v
	out.traits.Constraints = slices.Clone(v.traits.Constraints)
	return out
}
