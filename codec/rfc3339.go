package codec

import (
	"time"

	"github.com/reoring/goconv"
)

// TimeRFC3339 returns a Codec that converts between RFC3339 strings and
// time.Time. Decoding accepts everything ParseTime accepts; encoding is
// canonical UTC RFC3339Nano.
func TimeRFC3339() Codec[string, time.Time] { return rfc3339Codec{} }

type rfc3339Codec struct{}

func (rfc3339Codec) Decode(a string) goconv.Result[time.Time] {
	t, err := ParseTime(a)
	if err != nil {
		return goconv.FailCode[time.Time](goconv.CodeInvalidDate, map[string]string{"value": goconv.Stringify(a)})
	}
	return goconv.Succeed(t)
}

func (rfc3339Codec) Encode(b time.Time) goconv.Result[string] {
	if b.IsZero() {
		return goconv.FailCode[string](goconv.CodeInvalidDate, map[string]string{"value": "zero time"})
	}
	return goconv.Succeed(FormatTime(b))
}

var layouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	time.DateOnly,
}

// ParseTime parses an ISO-8601 timestamp: full RFC3339, a local date-time
// without offset (read as UTC) or a bare date.
func ParseTime(s string) (time.Time, error) {
	var firstErr error
	for _, layout := range layouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, firstErr
}

// FormatTime renders t in UTC using RFC3339Nano (trailing zeros trimmed).
func FormatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
