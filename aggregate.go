package goconv

import "slices"

// MapResults succeeds with every value iff every result succeeded. Otherwise
// it fails with all failure messages joined in their original order.
func MapResults[T any](results []Result[T]) Result[[]T] {
	values := make([]T, 0, len(results))
	var errs []string
	for _, r := range results {
		if r.ok {
			values = append(values, r.value)
			continue
		}
		errs = append(errs, r.message)
	}
	if len(errs) > 0 {
		return Fail[[]T](JoinMessages(errs))
	}
	return Succeed(values)
}

// MapSuccess succeeds with the successful values when at least one result
// succeeded (or there are no results). It fails with the aggregated messages
// only when every result failed.
func MapSuccess[T any](results []Result[T]) Result[[]T] {
	values := make([]T, 0, len(results))
	var errs []string
	for _, r := range results {
		if r.ok {
			values = append(values, r.value)
			continue
		}
		errs = append(errs, r.message)
	}
	if len(values) == 0 && len(errs) > 0 {
		return Fail[[]T](JoinMessages(errs))
	}
	return Succeed(values)
}

// MapFailures returns the failure messages, dropping successes.
func MapFailures[T any](results []Result[T]) []string {
	var errs []string
	for _, r := range results {
		if !r.ok {
			errs = append(errs, r.message)
		}
	}
	return errs
}

// MapDetailedResults behaves like MapResults, except that a failure whose
// detail is listed in ignore is dropped instead of failing the aggregate.
func MapDetailedResults[T any, TD comparable](results []DetailedResult[T, TD], ignore ...TD) Result[[]T] {
	values := make([]T, 0, len(results))
	var errs []string
	for _, r := range results {
		if r.ok {
			values = append(values, r.value)
			continue
		}
		if slices.Contains(ignore, r.detail) {
			continue
		}
		errs = append(errs, r.message)
	}
	if len(errs) > 0 {
		return Fail[[]T](JoinMessages(errs))
	}
	return Succeed(values)
}

// AllSucceed succeeds with successValue iff every result succeeded.
func AllSucceed[T, U any](results []Result[T], successValue U) Result[U] {
	if errs := MapFailures(results); len(errs) > 0 {
		return Fail[U](JoinMessages(errs))
	}
	return Succeed(successValue)
}

// FirstSuccess returns the first successful result, or a failure aggregating
// every message when none succeeded.
func FirstSuccess[T any](results []Result[T]) Result[T] {
	var errs []string
	for _, r := range results {
		if r.ok {
			return r
		}
		errs = append(errs, r.message)
	}
	if len(errs) == 0 {
		return Fail[T]("no results")
	}
	return Fail[T](JoinMessages(errs))
}
