package goconv_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/reoring/goconv"
)

func TestEqual_Numbers(t *testing.T) {
	assert.True(t, goconv.Equal(json.Number("1"), 1.0))
	assert.True(t, goconv.Equal(1, uint8(1)))
	assert.True(t, goconv.Equal(float32(0.5), json.Number("0.5")))
	assert.False(t, goconv.Equal(json.Number("1"), 2))
	assert.False(t, goconv.Equal("1", 1))
	assert.False(t, goconv.Equal(1, "1"))
	assert.False(t, goconv.Equal(true, 1))
	assert.False(t, goconv.Equal(math.NaN(), math.NaN()))
}

func TestEqual_NonComparableDynamicValues(t *testing.T) {
	type box struct{ X any }
	a, b := box{X: []any{1}}, box{X: []any{1}}

	assert.NotPanics(t, func() { goconv.Equal(a, b) })
	assert.True(t, goconv.Equal(a, b))
	assert.False(t, goconv.Equal(a, box{X: []any{2}}))
	assert.True(t, goconv.Equal(map[string]any{"k": []any{"v"}}, map[string]any{"k": []any{"v"}}))
	assert.True(t, goconv.Equal(box{X: "s"}, box{X: "s"}))
	assert.True(t, goconv.Equal(nil, nil))
	assert.False(t, goconv.Equal(nil, 0))
}

func TestAsNumber(t *testing.T) {
	i, ok := goconv.AsNumber[int](json.Number("42"))
	assert.True(t, ok)
	assert.Equal(t, 42, i)

	f, ok := goconv.AsNumber[float64](7)
	assert.True(t, ok)
	assert.Equal(t, 7.0, f)

	_, ok = goconv.AsNumber[int](1.5)
	assert.False(t, ok, "fractions do not fit integers")
	_, ok = goconv.AsNumber[uint](-1)
	assert.False(t, ok)
	_, ok = goconv.AsNumber[int8](300)
	assert.False(t, ok)
	_, ok = goconv.AsNumber[int64](1e19)
	assert.False(t, ok)
	_, ok = goconv.AsNumber[float32](1e300)
	assert.False(t, ok)
	_, ok = goconv.AsNumber[string](1)
	assert.False(t, ok)
	_, ok = goconv.AsNumber[int]("1")
	assert.False(t, ok, "strings are not numbers")
}

func TestNumericValue(t *testing.T) {
	f, ok := goconv.NumericValue(json.Number("2.5"))
	assert.True(t, ok)
	assert.Equal(t, 2.5, f)

	_, ok = goconv.NumericValue(json.Number("abc"))
	assert.False(t, ok)
	_, ok = goconv.NumericValue(nil)
	assert.False(t, ok)
}
