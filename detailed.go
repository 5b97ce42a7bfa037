package goconv

import "fmt"

// DetailedResult is a Result whose failure carries a structured detail next
// to the message, and whose success may carry one when explicitly supplied.
type DetailedResult[T, TD any] struct {
	value     T
	message   string
	detail    TD
	hasDetail bool
	ok        bool
}

// SucceedWithDetail returns a success carrying v and, when given, detail[0].
func SucceedWithDetail[T, TD any](v T, detail ...TD) DetailedResult[T, TD] {
	r := DetailedResult[T, TD]{value: v, ok: true}
	if len(detail) > 0 {
		r.detail, r.hasDetail = detail[0], true
	}
	return r
}

// FailWithDetail returns a failure carrying message and detail.
func FailWithDetail[T, TD any](message string, detail TD) DetailedResult[T, TD] {
	return DetailedResult[T, TD]{message: message, detail: detail, hasDetail: true}
}

// WithDetail lifts r into a DetailedResult. A failure receives failureDetail;
// a success receives successDetail[0] only when it is given.
func WithDetail[T, TD any](r Result[T], failureDetail TD, successDetail ...TD) DetailedResult[T, TD] {
	if r.ok {
		return SucceedWithDetail(r.value, successDetail...)
	}
	return FailWithDetail[T](r.message, failureDetail)
}

// WithFailureDetail lifts r into a DetailedResult whose failure carries
// detail. A success carries no detail.
func WithFailureDetail[T, TD any](r Result[T], detail TD) DetailedResult[T, TD] {
	if r.ok {
		return SucceedWithDetail[T, TD](r.value)
	}
	return FailWithDetail[T](r.message, detail)
}

func (r DetailedResult[T, TD]) IsSuccess() bool { return r.ok }
func (r DetailedResult[T, TD]) IsFailure() bool { return !r.ok }

// Value returns the value of a success and panics on a failure.
func (r DetailedResult[T, TD]) Value() T {
	if !r.ok {
		panic(&AccessError{Op: "value of a failed result", Message: r.message})
	}
	return r.value
}

// Message returns the message of a failure and panics on a success.
func (r DetailedResult[T, TD]) Message() string {
	if r.ok {
		panic(&AccessError{Op: "message of a successful result"})
	}
	return r.message
}

// Detail returns the detail and whether one is present. Failures always
// report a detail.
func (r DetailedResult[T, TD]) Detail() (TD, bool) { return r.detail, r.hasDetail }

// WithDetail rebinds the detail while preserving the success/failure kind.
func (r DetailedResult[T, TD]) WithDetail(failureDetail TD, successDetail ...TD) DetailedResult[T, TD] {
	return WithDetail(r.Result(), failureDetail, successDetail...)
}

// WithFailureDetail rebinds the failure detail; a success loses its detail.
func (r DetailedResult[T, TD]) WithFailureDetail(detail TD) DetailedResult[T, TD] {
	return WithFailureDetail(r.Result(), detail)
}

// OnSuccess applies f to the value and detail of a success.
func (r DetailedResult[T, TD]) OnSuccess(f func(T, TD) DetailedResult[T, TD]) DetailedResult[T, TD] {
	if !r.ok {
		return r
	}
	return f(r.value, r.detail)
}

// OnFailure applies f to the message and detail of a failure.
func (r DetailedResult[T, TD]) OnFailure(f func(string, TD) DetailedResult[T, TD]) DetailedResult[T, TD] {
	if r.ok {
		return r
	}
	return f(r.message, r.detail)
}

// OrThrow returns the value of a success; a failure is logged and raised as a
// panic carrying a *FailureError with the detail attached.
func (r DetailedResult[T, TD]) OrThrow(logger ...Logger) T {
	if !r.ok {
		for _, l := range logger {
			if l != nil {
				l.Error(r.message)
			}
		}
		panic(&FailureError{Message: r.message, Detail: r.detail})
	}
	return r.value
}

// OrDefault returns the value of a success, otherwise def[0] or the zero value.
func (r DetailedResult[T, TD]) OrDefault(def ...T) T { return r.Result().OrDefault(def...) }

// Unwrap converts r into a (value, error) pair.
func (r DetailedResult[T, TD]) Unwrap() (T, error) {
	if !r.ok {
		var zero T
		return zero, &FailureError{Message: r.message, Detail: r.detail}
	}
	return r.value, nil
}

// Result drops the detail.
func (r DetailedResult[T, TD]) Result() Result[T] {
	return Result[T]{value: r.value, message: r.message, ok: r.ok}
}

func (r DetailedResult[T, TD]) String() string {
	if r.ok {
		return fmt.Sprintf("success(%v)", r.value)
	}
	return fmt.Sprintf("failure(%s; detail=%v)", r.message, r.detail)
}

// ThenDetailed chains a type-changing step over a DetailedResult.
func ThenDetailed[T, U, TD any](r DetailedResult[T, TD], f func(T) DetailedResult[U, TD]) DetailedResult[U, TD] {
	if !r.ok {
		return FailWithDetail[U](r.message, r.detail)
	}
	return f(r.value)
}
