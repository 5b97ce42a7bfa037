package resulttest_test

import (
	"testing"

	"github.com/reoring/goconv"
	"github.com/reoring/goconv/resulttest"
)

func TestHelpers_Pass(t *testing.T) {
	ok := goconv.Succeed(5)
	bad := goconv.Fail[int]("not a number: \"x\"")

	if v := resulttest.RequireSuccess(t, ok); v != 5 {
		t.Fatalf("value = %d", v)
	}
	if m := resulttest.RequireFailure(t, bad); m != "not a number: \"x\"" {
		t.Fatalf("message = %q", m)
	}
	resulttest.AssertSuccessWith(t, ok, 5)
	resulttest.AssertFailureContains(t, bad, "not a number")
	resulttest.AssertFailureMatches(t, bad, `(?i)NOT A NUMBER`)

	d := goconv.WithFailureDetail(bad, "oops")
	resulttest.AssertDetailedFailure(t, d, "oops")
	resulttest.AssertDetailedSuccess(t, goconv.SucceedWithDetail[int, string](3), 3)
}

// recorder captures assertion failures instead of failing the test.
type recorder struct {
	testing.TB
	errors int
}

func (r *recorder) Helper()               {}
func (r *recorder) Errorf(string, ...any) { r.errors++ }
func (r *recorder) Name() string          { return "recorder" }

func TestHelpers_ReportMismatch(t *testing.T) {
	rec := &recorder{}
	if resulttest.AssertSuccessWith(rec, goconv.Fail[int]("boom"), 1) {
		t.Fatal("expected mismatch on failure")
	}
	if resulttest.AssertFailureContains(rec, goconv.Succeed(1), "x") {
		t.Fatal("expected mismatch on success")
	}
	if resulttest.AssertDetailedFailure(rec, goconv.FailWithDetail[int]("boom", "a"), "b") {
		t.Fatal("expected detail mismatch")
	}
	if rec.errors != 3 {
		t.Fatalf("recorded %d errors, want 3", rec.errors)
	}
}
