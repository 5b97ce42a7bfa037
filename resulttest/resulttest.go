// Package resulttest provides testify-based assertions for goconv results.
//
//	v := resulttest.RequireSuccess(t, conv.Convert(in))
//	resulttest.AssertFailureMatches(t, conv.Convert(bad), `(?i)not a number`)
package resulttest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/goconv"
)

// RequireSuccess stops the test unless r is a success and returns its value.
func RequireSuccess[T any](t testing.TB, r goconv.Result[T]) T {
	t.Helper()
	require.True(t, r.IsSuccess(), "expected success, got %s", r.String())
	return r.Value()
}

// RequireFailure stops the test unless r is a failure and returns its
// message.
func RequireFailure[T any](t testing.TB, r goconv.Result[T]) string {
	t.Helper()
	require.True(t, r.IsFailure(), "expected failure, got %s", r.String())
	return r.Message()
}

// AssertSuccessWith asserts that r is a success whose value equals want.
func AssertSuccessWith[T any](t testing.TB, r goconv.Result[T], want T) bool {
	t.Helper()
	if !assert.True(t, r.IsSuccess(), "expected success, got %s", r.String()) {
		return false
	}
	return assert.Equal(t, want, r.Value())
}

// AssertFailureContains asserts that r is a failure whose message contains
// substr.
func AssertFailureContains[T any](t testing.TB, r goconv.Result[T], substr string) bool {
	t.Helper()
	if !assert.True(t, r.IsFailure(), "expected failure, got %s", r.String()) {
		return false
	}
	return assert.Contains(t, r.Message(), substr)
}

// AssertFailureMatches asserts that r is a failure whose message matches the
// regular expression pattern.
func AssertFailureMatches[T any](t testing.TB, r goconv.Result[T], pattern string) bool {
	t.Helper()
	if !assert.True(t, r.IsFailure(), "expected failure, got %s", r.String()) {
		return false
	}
	return assert.Regexp(t, pattern, r.Message())
}

// AssertDetailedSuccess asserts that r is a success whose value equals want.
func AssertDetailedSuccess[T, TD any](t testing.TB, r goconv.DetailedResult[T, TD], want T) bool {
	t.Helper()
	return AssertSuccessWith(t, r.Result(), want)
}

// AssertDetailedFailure asserts that r is a failure carrying detail.
func AssertDetailedFailure[T, TD any](t testing.TB, r goconv.DetailedResult[T, TD], detail TD) bool {
	t.Helper()
	if !assert.True(t, r.IsFailure(), "expected failure, got %s", r.String()) {
		return false
	}
	got, ok := r.Detail()
	if !assert.True(t, ok, "failure carries no detail") {
		return false
	}
	return assert.Equal(t, detail, got)
}
