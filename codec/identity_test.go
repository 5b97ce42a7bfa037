package codec_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/goconv"
	"github.com/reoring/goconv/codec"
	"github.com/reoring/goconv/converters"
)

func TestIdentity_String_Decode_Encode(t *testing.T) {
	id := codec.Identity(converters.String())

	dv := id.Decode("asdf")
	require.True(t, dv.IsSuccess())
	assert.Equal(t, "asdf", dv.Value())

	ev := id.Encode(dv.Value())
	require.True(t, ev.IsSuccess())
	assert.Equal(t, "asdf", ev.Value())
}

func TestIdentity_RunsConstraint(t *testing.T) {
	nonEmpty := converters.String().WithConstraint(func(s string) bool { return s != "" }, goconv.ConstraintOptions{Description: "must not be empty"})
	id := codec.Identity(nonEmpty)

	r := id.Encode("")
	require.True(t, r.IsFailure())
	assert.Contains(t, r.Message(), "must not be empty")
}

func TestConverter_DecodesWireValue(t *testing.T) {
	c := codec.Converter(converters.String(), codec.TimeRFC3339())

	r := c.Convert("2025-01-01T00:00:00Z")
	require.True(t, r.IsSuccess(), r.String())
	assert.True(t, r.Value().Equal(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)))

	assert.True(t, c.Convert(42).IsFailure())
	assert.True(t, c.Convert("nope").IsFailure())
}

func TestFunc(t *testing.T) {
	upper := codec.Func(
		func(s string) goconv.Result[int] { return goconv.Succeed(len(s)) },
		func(n int) goconv.Result[string] { return goconv.Failf[string]("cannot encode %d", n) },
	)
	assert.Equal(t, 3, upper.Decode("abc").Value())
	assert.Equal(t, "cannot encode 3", upper.Encode(3).Message())
}
