package validators_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/goconv"
	"github.com/reoring/goconv/resulttest"
	"github.com/reoring/goconv/validators"
)

func TestPrimitives(t *testing.T) {
	resulttest.AssertSuccessWith(t, validators.String().Validate("s"), "s")
	resulttest.AssertFailureContains(t, validators.String().Validate(1), "not a string: 1")

	resulttest.AssertSuccessWith(t, validators.Number().Validate(json.Number("1.5")), any(json.Number("1.5")))
	resulttest.AssertSuccessWith(t, validators.Number().Validate(3), any(3))
	resulttest.AssertFailureContains(t, validators.Number().Validate("3"), "not a number")

	resulttest.AssertSuccessWith(t, validators.Boolean().Validate(false), false)
	resulttest.AssertFailureContains(t, validators.Boolean().Validate("true"), "not a boolean")

	resulttest.AssertSuccessWith(t, validators.Literal(2).Validate(2), 2)
	resulttest.AssertFailureContains(t, validators.Literal(2).Validate(3), "does not match literal 2")
}

func TestEnumeratedValue(t *testing.T) {
	v := validators.EnumeratedValue([]string{"a", "b"})
	assert.True(t, v.Guard("a"))
	assert.False(t, v.Guard("c"))
	assert.True(t, v.Guard("c", []string{"c"}))
	resulttest.AssertFailureContains(t, v.Validate("c"), "invalid enumerated value")
}

func TestIsAAndGeneric(t *testing.T) {
	even := validators.IsA("even number", func(n int) bool { return n%2 == 0 })
	assert.True(t, even.Guard(4))
	resulttest.AssertFailureContains(t, even.Validate(3), "not a valid even number: 3")

	g := validators.Generic[string](func(from any, ctx any) error {
		if from == ctx {
			return nil
		}
		return assert.AnError
	})
	assert.True(t, g.Guard("x", "x"))
	assert.False(t, g.Guard("x", "y"))
}

func TestArrayOf_ReturnsOriginalSlice(t *testing.T) {
	in := []any{"a", "b"}
	out := resulttest.RequireSuccess(t, validators.ArrayOf(validators.String()).Validate(in))
	require.Len(t, out, 2)
	assert.Same(t, &in[0], &out[0])

	msg := resulttest.RequireFailure(t, validators.ArrayOf(validators.String()).Validate([]any{"a", 1, true}))
	assert.Contains(t, msg, "1: not a string: 1")
	assert.Contains(t, msg, "2: not a string: true")
	resulttest.AssertFailureContains(t, validators.ArrayOf(validators.String()).Validate("x"), "not an array")
}

func TestRecordOf(t *testing.T) {
	in := map[string]any{"a": true, "b": false}
	out := resulttest.RequireSuccess(t, validators.RecordOf(validators.Boolean()).Validate(in))
	out["c"] = true
	assert.Contains(t, in, "c", "validated map must be the input map itself")

	resulttest.AssertFailureContains(t, validators.RecordOf(validators.Boolean()).Validate(map[string]any{"x": 1}), "x: not a boolean")
	resulttest.AssertFailureContains(t, validators.RecordOf(validators.Boolean()).Validate([]any{}), "not a string-keyed object")
}

func TestObject(t *testing.T) {
	v := validators.Object(validators.Fields{
		"name": validators.String(),
		"age":  validators.Number(),
		"nick": validators.String().Optional(),
	}, validators.ObjectOptions{OptionalFields: []string{"age"}})

	in := map[string]any{"name": "n", "nick": nil}
	out := resulttest.RequireSuccess(t, v.Validate(in))
	out["touched"] = 1
	assert.Equal(t, 1, in["touched"])

	resulttest.AssertFailureContains(t, v.Validate(map[string]any{}), "field name not found")
	resulttest.AssertFailureContains(t, v.Validate(map[string]any{"name": "n", "age": "x"}), "age: not a number")
	resulttest.AssertFailureContains(t, v.Validate(map[string]any{"name": "n", "nick": 3}), "nick: not a string")
	resulttest.AssertFailureContains(t, v.Validate("obj"), "not an object")
}

func TestObject_Strict(t *testing.T) {
	v := validators.Object(validators.Fields{"a": validators.String(), "skip": nil}, validators.ObjectOptions{Strict: true})
	assert.True(t, v.Guard(map[string]any{"a": "x", "skip": 1}))
	resulttest.AssertFailureContains(t, v.Validate(map[string]any{"a": "x", "b": 1}), "b: unexpected property in source object")
}

func TestOneOf(t *testing.T) {
	v := validators.OneOf([]goconv.AnyValidator[any]{validators.String(), validators.Boolean()})
	assert.True(t, v.Guard("x"))
	assert.True(t, v.Guard(true))
	resulttest.AssertFailureContains(t, v.Validate(1), "no matching converter for 1")
}

func TestDiscriminatedObject(t *testing.T) {
	v := validators.DiscriminatedObject("kind", map[string]goconv.AnyValidator[any]{
		"circle": validators.Object(validators.Fields{"kind": validators.String(), "r": validators.Number()}),
		"square": validators.Object(validators.Fields{"kind": validators.String(), "side": validators.Number()}),
	})
	assert.True(t, v.Guard(map[string]any{"kind": "circle", "r": 1}))
	resulttest.AssertFailureContains(t, v.Validate(map[string]any{"kind": "square", "r": 1}), "field side not found")
	resulttest.AssertFailureMatches(t, v.Validate(map[string]any{"kind": "hexagon"}), `(?i)no converter for discriminator`)
	resulttest.AssertFailureContains(t, v.Validate(map[string]any{}), "discriminator property kind not present")
	resulttest.AssertFailureContains(t, v.Validate(1), "not a discriminated object")
}

func TestValidator_ConstraintsAreVisible(t *testing.T) {
	v := validators.String().
		WithConstraint(func(s string) bool { return len(s) > 0 }, goconv.ConstraintOptions{Description: "non-empty"}).
		WithConstraint(func(s string) bool { return len(s) < 5 })

	traits := v.Traits()
	require.Len(t, traits.Constraints, 2)
	assert.Equal(t, goconv.ConstraintTrait{Kind: goconv.ConstraintKindFunction, Tag: "non-empty"}, traits.Constraints[0])
	assert.Equal(t, "does not meet constraint", traits.Constraints[1].Tag)

	resulttest.AssertFailureContains(t, v.Validate(""), `"": non-empty`)
	resulttest.AssertFailureContains(t, v.Validate("toolong"), "does not meet constraint")
	assert.Empty(t, validators.String().Traits().Constraints)
}

func TestNumericMembership_DecodedInput(t *testing.T) {
	one := validators.Literal(1.0)
	resulttest.AssertSuccessWith(t, goconv.ValidateJSON(one, []byte(`1`)), 1.0)
	resulttest.AssertSuccessWith(t, one.Validate(1), 1.0)
	resulttest.AssertFailureContains(t, goconv.ValidateJSON(one, []byte(`2`)), "2: does not match literal 1")

	ports := validators.EnumeratedValue([]int{80, 443})
	resulttest.AssertSuccessWith(t, goconv.ValidateJSON(ports, []byte(`443`)), 443)
	assert.True(t, ports.Guard(json.Number("80")))
	assert.True(t, ports.Guard(80.0))
	assert.False(t, ports.Guard(80.5))
	assert.False(t, ports.Guard("80"))

	// ValidateAny hands back the decoded value itself
	resulttest.AssertSuccessWith(t, ports.ValidateAny(json.Number("80")), any(json.Number("80")))
}
