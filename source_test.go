package goconv_test

import (
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/goconv"
	"github.com/reoring/goconv/converters"
	"github.com/reoring/goconv/resulttest"
	stdjson "github.com/reoring/goconv/source/json"
	"github.com/reoring/goconv/validators"
)

func TestJSONBytes_DefaultDriver(t *testing.T) {
	assert.Equal(t, "go-json", goconv.CurrentJSONDriver().Name())

	v := resulttest.RequireSuccess(t, goconv.JSONBytes([]byte(`{"n": 12345678901234567890, "s": "x"}`)))
	obj, ok := v.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, json.Number("12345678901234567890"), obj["n"])

	resulttest.AssertFailureContains(t, goconv.JSONBytes([]byte(`{"a":`)), "parse error")
	resulttest.AssertFailureContains(t, goconv.JSONBytes([]byte(`{} {}`)), "parse error")
}

func TestConvertJSON(t *testing.T) {
	user := converters.Object(converters.Fields{
		"id":   converters.String(),
		"age":  converters.Number(),
		"tags": converters.StringArray(),
	}, converters.ObjectOptions{OptionalFields: []string{"tags"}})

	got := resulttest.RequireSuccess(t, goconv.ConvertJSON(user.Converter, []byte(`{"id":"u1","age":"41"}`)))
	assert.Equal(t, map[string]any{"id": "u1", "age": 41.0}, got)

	resulttest.AssertFailureContains(t, goconv.ConvertJSON(user.Converter, []byte(`{"age":1}`)), "field id not found")
	resulttest.AssertFailureContains(t, goconv.ConvertJSON(user.Converter, []byte(`not json`)), "parse error")

	r := goconv.ConvertJSONReader(converters.NumberArray(), strings.NewReader(`[1, 2.5]`))
	resulttest.AssertSuccessWith(t, r, []float64{1, 2.5})
}

func TestValidateJSON(t *testing.T) {
	v := validators.Object(validators.Fields{"ok": validators.Boolean()})
	resulttest.AssertSuccessWith(t, goconv.ValidateJSON(v, []byte(`{"ok":true}`)), map[string]any{"ok": true})
	resulttest.AssertFailureContains(t, goconv.ValidateJSON(v, []byte(`{"ok":"yes"}`)), "ok: not a boolean")
}

type upperDriver struct{}

func (upperDriver) Decode(r io.Reader) (any, error) {
	b, err := io.ReadAll(r)
	return strings.ToUpper(string(b)), err
}

func (upperDriver) Name() string { return "upper" }

func TestSetJSONDriver(t *testing.T) {
	t.Cleanup(goconv.UseDefaultJSONDriver)

	goconv.SetJSONDriver(upperDriver{})
	assert.Equal(t, "upper", goconv.CurrentJSONDriver().Name())
	resulttest.AssertSuccessWith(t, goconv.JSONBytes([]byte("abc")), any("ABC"))

	goconv.SetJSONDriver(nil)
	assert.Equal(t, "upper", goconv.CurrentJSONDriver().Name(), "nil drivers are ignored")

	goconv.SetJSONDriver(stdjson.Driver())
	assert.Equal(t, "encoding/json", goconv.CurrentJSONDriver().Name())
	resulttest.AssertSuccessWith(t, goconv.ConvertJSON(converters.Number(), []byte(`7`)), 7.0)

	goconv.UseDefaultJSONDriver()
	assert.Equal(t, "go-json", goconv.CurrentJSONDriver().Name())
}

func TestStrictJSONBytes(t *testing.T) {
	resulttest.AssertSuccessWith(t, goconv.StrictJSONBytes([]byte(`{"a":1}`)), any(map[string]any{"a": json.Number("1")}))

	msg := resulttest.RequireFailure(t, goconv.StrictJSONBytes([]byte(`{"a":1,"a":2,"o":{"b":0,"b":1}}`)))
	assert.Equal(t, "duplicate key a in /\nduplicate key b in /o", msg)

	// the lenient decoder keeps the last occurrence
	v := resulttest.RequireSuccess(t, goconv.JSONBytes([]byte(`{"a":1,"a":2}`)))
	assert.Equal(t, json.Number("2"), v.(map[string]any)["a"])

	resulttest.AssertFailureContains(t, goconv.StrictJSONBytes([]byte(`{"a":`)), "parse error")
}

func TestConvertStrictJSON(t *testing.T) {
	c := converters.Object(converters.Fields{"n": converters.Number()})
	resulttest.AssertSuccessWith(t, goconv.ConvertStrictJSON(c.Converter, []byte(`{"n":"3"}`)), map[string]any{"n": 3.0})
	resulttest.AssertFailureContains(t, goconv.ConvertStrictJSON(c.Converter, []byte(`{"n":1,"n":2}`)), "duplicate key n")
}
