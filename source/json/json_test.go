package json_test

import (
	stdjson "encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/goconv/source/json"
)

func TestDriver_Decode(t *testing.T) {
	d := json.Driver()
	assert.Equal(t, "encoding/json", d.Name())

	v, err := d.Decode(strings.NewReader(`{"a":[1,"x",null,true]}`))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": []any{stdjson.Number("1"), "x", nil, true}}, v)
}

func TestDriver_Errors(t *testing.T) {
	d := json.Driver()
	_, err := d.Decode(strings.NewReader(`{"a":`))
	assert.Error(t, err)

	_, err = d.Decode(strings.NewReader(`1 2`))
	assert.EqualError(t, err, "unexpected data after top-level value")

	_, err = d.Decode(strings.NewReader(`{"a":1} ]`))
	assert.Error(t, err)
}
