package goconv

import "fmt"

// Result is the outcome of a conversion or validation: exactly one of a
// success carrying a value or a failure carrying a message.
//
// The zero Result is a failure with an empty message. Build results with
// Succeed, Fail or Failf.
type Result[T any] struct {
	value   T
	message string
	ok      bool
}

// Succeed returns a successful Result carrying v.
func Succeed[T any](v T) Result[T] {
	return Result[T]{value: v, ok: true}
}

// Fail returns a failed Result carrying message.
func Fail[T any](message string) Result[T] {
	return Result[T]{message: message}
}

// Failf is Fail with fmt.Sprintf formatting.
func Failf[T any](format string, args ...any) Result[T] {
	return Result[T]{message: fmt.Sprintf(format, args...)}
}

// IsSuccess reports whether r is a success.
func (r Result[T]) IsSuccess() bool { return r.ok }

// IsFailure reports whether r is a failure.
func (r Result[T]) IsFailure() bool { return !r.ok }

// Value returns the value of a success. It panics with an *AccessError when r
// is a failure.
func (r Result[T]) Value() T {
	if !r.ok {
		panic(&AccessError{Op: "value of a failed result", Message: r.message})
	}
	return r.value
}

// Message returns the message of a failure. It panics with an *AccessError
// when r is a success.
func (r Result[T]) Message() string {
	if r.ok {
		panic(&AccessError{Op: "message of a successful result"})
	}
	return r.message
}

// OrThrow returns the value of a success. A failure is first reported to the
// supplied loggers and then raised as a panic carrying a *FailureError.
func (r Result[T]) OrThrow(logger ...Logger) T {
	if !r.ok {
		for _, l := range logger {
			if l != nil {
				l.Error(r.message)
			}
		}
		panic(&FailureError{Message: r.message})
	}
	return r.value
}

// Unwrap converts r into the conventional (value, error) pair. The error of a
// failure is a *FailureError.
func (r Result[T]) Unwrap() (T, error) {
	if !r.ok {
		var zero T
		return zero, &FailureError{Message: r.message}
	}
	return r.value, nil
}

// OrDefault returns the value of a success, otherwise def[0] or the zero
// value of T when no default is given.
func (r Result[T]) OrDefault(def ...T) T {
	if r.ok {
		return r.value
	}
	if len(def) > 0 {
		return def[0]
	}
	var zero T
	return zero
}

// OnSuccess applies f to the value of a success. A failure is returned
// unchanged and f is not called.
func (r Result[T]) OnSuccess(f func(T) Result[T]) Result[T] {
	if !r.ok {
		return r
	}
	return f(r.value)
}

// OnFailure applies f to the message of a failure. A success is returned
// unchanged.
func (r Result[T]) OnFailure(f func(string) Result[T]) Result[T] {
	if r.ok {
		return r
	}
	return f(r.message)
}

// AggregateError appends the message of a failure to errs and returns r.
func (r Result[T]) AggregateError(errs *[]string) Result[T] {
	if !r.ok && errs != nil {
		*errs = append(*errs, r.message)
	}
	return r
}

// String renders r for diagnostics.
func (r Result[T]) String() string {
	if r.ok {
		return fmt.Sprintf("success(%v)", r.value)
	}
	return fmt.Sprintf("failure(%s)", r.message)
}

// Then chains a type-changing step: f receives the value of a success, a
// failure is re-typed without calling f.
func Then[T, U any](r Result[T], f func(T) Result[U]) Result[U] {
	if !r.ok {
		return Fail[U](r.message)
	}
	return f(r.value)
}

// Capture runs f and turns a panic into a failure whose message is the
// panic's error message (or its string form).
func Capture[T any](f func() T) (r Result[T]) {
	defer func() {
		if p := recover(); p != nil {
			r = Fail[T](panicMessage(p))
		}
	}()
	return Succeed(f())
}

// CaptureErr runs f and turns both a returned error and a panic into a
// failure.
func CaptureErr[T any](f func() (T, error)) (r Result[T]) {
	defer func() {
		if p := recover(); p != nil {
			r = Fail[T](panicMessage(p))
		}
	}()
	v, err := f()
	if err != nil {
		return Fail[T](err.Error())
	}
	return Succeed(v)
}
