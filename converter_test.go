package goconv_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/goconv"
	"github.com/reoring/goconv/converters"
	"github.com/reoring/goconv/resulttest"
)

func TestResolveContext(t *testing.T) {
	def := "default"
	assert.Equal(t, "x", goconv.ResolveContext([]string{"x"}, &def))
	assert.Equal(t, "y", goconv.ResolveContext([]string{"x", "y"}, &def))
	assert.Equal(t, "default", goconv.ResolveContext(nil, &def))
	assert.Equal(t, "", goconv.ResolveContext[string](nil, nil))
}

func TestConverter_ContextDefaulting(t *testing.T) {
	greet := goconv.FromFunc(func(from any, lang string) goconv.Result[string] {
		name, _ := from.(string)
		if lang == "ja" {
			return goconv.Succeed("こんにちは " + name)
		}
		return goconv.Succeed("hello " + name)
	}, goconv.WithDefaultContext("ja"))

	resulttest.AssertSuccessWith(t, greet.Convert("a"), "こんにちは a")
	resulttest.AssertSuccessWith(t, greet.Convert("a", "en"), "hello a")

	en := greet.WithContext("en")
	resulttest.AssertSuccessWith(t, en.Convert("a"), "hello a")
	ctx, ok := greet.DefaultContext()
	assert.True(t, ok)
	assert.Equal(t, "ja", ctx, "WithContext must not touch the original")
}

func TestConverter_SelfRecursion(t *testing.T) {
	type tree = []any
	var depth goconv.Converter[int, any]
	depth = goconv.NewConverter(func(from any, self goconv.Converter[int, any], _ any) goconv.Result[int] {
		items, ok := from.(tree)
		if !ok {
			return goconv.Succeed(0)
		}
		best := 0
		for _, it := range items {
			r := self.Convert(it)
			if r.IsFailure() {
				return r
			}
			best = max(best, r.Value())
		}
		return goconv.Succeed(best + 1)
	})
	resulttest.AssertSuccessWith(t, depth.Convert(tree{1, tree{2, tree{}}}), 3)
}

func TestConvertOptional_IgnoresErrorsByDefault(t *testing.T) {
	n := converters.Number()

	assert.Nil(t, resulttest.RequireSuccess(t, n.ConvertOptional("abc")))
	assert.Nil(t, resulttest.RequireSuccess(t, n.ConvertOptional(nil)))
	got := resulttest.RequireSuccess(t, n.ConvertOptional("2"))
	require.NotNil(t, got)
	assert.Equal(t, 2.0, *got)

	resulttest.AssertFailureContains(t, n.ConvertOptionalWith("abc", goconv.FailOnError), "not a number")
	assert.Nil(t, resulttest.RequireSuccess(t, n.ConvertOptionalWith(nil, goconv.FailOnError)))
}

func TestOptional_FailsOnErrorByDefault(t *testing.T) {
	opt := goconv.Optional(converters.Number())

	assert.True(t, opt.IsOptional())
	assert.False(t, converters.Number().IsOptional())
	assert.Nil(t, resulttest.RequireSuccess(t, opt.Convert(nil)))
	resulttest.AssertFailureContains(t, opt.Convert("abc"), "not a number")

	lenient := goconv.Optional(converters.Number(), goconv.IgnoreErrors)
	assert.Nil(t, resulttest.RequireSuccess(t, lenient.Convert("abc")))
}

func TestOptional_ConvertAnyDereferences(t *testing.T) {
	opt := goconv.Optional(converters.String())
	resulttest.AssertSuccessWith(t, opt.ConvertAny("x"), any("x"))
	resulttest.AssertSuccessWith(t, opt.ConvertAny(nil), any(nil))
}

func TestWithConstraint(t *testing.T) {
	base := converters.Number()
	positive := base.WithConstraint(func(f float64) bool { return f > 0 })
	small := positive.WithConstraint(func(f float64) bool { return f < 10 }, goconv.ConstraintOptions{Description: "must be < 10"})

	resulttest.AssertSuccessWith(t, small.Convert(5), 5.0)
	resulttest.AssertFailureContains(t, small.Convert(-1), "-1: does not meet constraint")
	resulttest.AssertFailureContains(t, small.Convert(11), "11: must be < 10")
	resulttest.AssertFailureContains(t, small.Convert("x"), "not a number")

	// the receivers are unchanged
	resulttest.AssertSuccessWith(t, base.Convert(-1), -1.0)
	resulttest.AssertSuccessWith(t, positive.Convert(11), 11.0)
}

func TestWithResultConstraint(t *testing.T) {
	even := converters.Number().WithResultConstraint(func(f float64) goconv.Result[float64] {
		if int(f)%2 != 0 {
			return goconv.Failf[float64]("%v is odd", f)
		}
		return goconv.Succeed(f)
	})
	resulttest.AssertSuccessWith(t, even.Convert(4), 4.0)
	resulttest.AssertFailureContains(t, even.Convert(3), "3 is odd")
}

func TestWithDefaultAndFormattedError(t *testing.T) {
	resulttest.AssertSuccessWith(t, converters.Number().WithDefault(-1).Convert("x"), -1.0)

	c := converters.Number().WithFormattedError(func(from any, msg string, _ any) string {
		return "age: " + strings.ToUpper(msg)
	})
	resulttest.AssertFailureContains(t, c.Convert("x"), `age: NOT A NUMBER: "X"`)
}

func TestWithBrand(t *testing.T) {
	c := converters.String().WithBrand("X")
	assert.Equal(t, "X", c.Brand())
	assert.Equal(t, "", converters.String().Brand())

	assert.PanicsWithError(t, `cannot replace existing brand "X" with "Y"`, func() { c.WithBrand("Y") })

	defer func() {
		err, ok := recover().(*goconv.BrandConflictError)
		require.True(t, ok)
		assert.Contains(t, err.Error(), "cannot replace existing brand")
	}()
	converters.String().WithBrand("X").WithBrand("Y")
}

type userID struct{}

func (userID) BrandName() string { return "UserID" }

type orderID struct{}

func (orderID) BrandName() string { return "OrderID" }

func TestBrand_Phantom(t *testing.T) {
	users := goconv.Brand[userID](converters.String())
	orders := goconv.Brand[orderID](converters.String())

	u := resulttest.RequireSuccess(t, users.Convert("u-1"))
	o := resulttest.RequireSuccess(t, orders.Convert("o-1"))
	assert.Equal(t, "u-1", u.Unbrand())
	assert.Equal(t, "o-1", o.Unbrand())
	assert.Equal(t, "UserID", users.Brand())
	assert.IsType(t, goconv.Branded[string, userID]{}, u)

	assert.Panics(t, func() { goconv.Brand[orderID](converters.String().WithBrand("Other")) })
}

func TestMap(t *testing.T) {
	calls := 0
	length := goconv.Map(converters.String(), func(s string) goconv.Result[int] {
		calls++
		return goconv.Succeed(len(s))
	})
	resulttest.AssertSuccessWith(t, length.Convert("four"), 4)
	resulttest.AssertFailureContains(t, length.Convert(4), "not a string")
	assert.Equal(t, 1, calls)

	via := goconv.MapConvert(converters.String(), converters.Number())
	resulttest.AssertSuccessWith(t, via.Convert("1.5"), 1.5)
}

func TestMapItems(t *testing.T) {
	raw := converters.Generic(func(from any, _ any) goconv.Result[any] { return goconv.Succeed(from) })

	doubled := goconv.MapItems(raw, func(item any) goconv.Result[float64] {
		return goconv.Then(converters.Number().Convert(item), func(f float64) goconv.Result[float64] { return goconv.Succeed(f * 2) })
	})
	resulttest.AssertSuccessWith(t, doubled.Convert([]any{1, "2"}), []float64{2, 4})
	resulttest.AssertFailureContains(t, doubled.Convert("nope"), `not an array: "nope"`)

	msg := resulttest.RequireFailure(t, goconv.MapConvertItems(raw, converters.Number()).Convert([]any{"a", "b"}))
	assert.Contains(t, msg, `not a number: "a"`)
	assert.Contains(t, msg, `not a number: "b"`)
}

func TestWithTypeGuard(t *testing.T) {
	raw := converters.Generic(func(from any, _ any) goconv.Result[any] { return goconv.Succeed(from) })

	short := goconv.WithTypeGuard[string](raw, func(v any) bool {
		s, ok := v.(string)
		return ok && len(s) < 3
	}, "not a short string")
	resulttest.AssertSuccessWith(t, short.Convert("ab"), "ab")
	resulttest.AssertFailureContains(t, short.Convert("abcd"), `not a short string: "abcd"`)

	anyInt := goconv.WithTypeGuard[int](raw, func(any) bool { return true })
	resulttest.AssertFailureContains(t, anyInt.Convert("x"), `invalid type: "x"`)

	ints := goconv.WithItemTypeGuard[int](raw, func(v any) bool { _, ok := v.(int); return ok })
	resulttest.AssertSuccessWith(t, ints.Convert([]any{1, 2}), []int{1, 2})
	resulttest.AssertFailureContains(t, ints.Convert([]any{1, "2"}), `invalid type: "2"`)
}

func TestConverter_ConcurrentUse(t *testing.T) {
	c := converters.Object(converters.Fields{
		"id":   converters.String(),
		"tags": converters.ArrayOf(converters.String()),
	})
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				r := c.Convert(map[string]any{"id": "x", "tags": []any{"a"}})
				if r.IsFailure() {
					t.Error(r.Message())
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestConverter_IsZero(t *testing.T) {
	var c goconv.Converter[int, any]
	assert.True(t, c.IsZero())
	assert.False(t, converters.Number().IsZero())
}
