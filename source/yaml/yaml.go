// Package yaml decodes YAML documents into the untyped value model consumed
// by goconv converters and validators.
package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/reoring/goconv"
	"gopkg.in/yaml.v3"
)

// Decode decodes a single YAML document. Mappings become map[string]any with
// non-string keys rendered via fmt.Sprint.
func Decode(data []byte) goconv.Result[any] {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return parseFailure[any](err)
	}
	return goconv.Succeed(normalize(v))
}

// DecodeAll decodes every document of a multi-document stream.
func DecodeAll(data []byte) goconv.Result[[]any] {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var out []any
	for {
		var v any
		err := dec.Decode(&v)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return parseFailure[[]any](err)
		}
		out = append(out, normalize(v))
	}
	return goconv.Succeed(out)
}

// Convert decodes a single YAML document and converts it with c.
func Convert[T, C any](c goconv.Converter[T, C], data []byte, ctx ...C) goconv.Result[T] {
	return goconv.Then(Decode(data), func(v any) goconv.Result[T] { return c.Convert(v, ctx...) })
}

// Validate decodes a single YAML document and validates it with v.
func Validate[T, C any](v goconv.Validator[T, C], data []byte, ctx ...C) goconv.Result[T] {
	return goconv.Then(Decode(data), func(x any) goconv.Result[T] { return v.Validate(x, ctx...) })
}

func parseFailure[T any](err error) goconv.Result[T] {
	return goconv.FailCode[T](goconv.CodeParseError, map[string]string{"value": err.Error()})
}

func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = normalize(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			ks, ok := k.(string)
			if !ok {
				ks = fmt.Sprint(k)
			}
			out[ks] = normalize(vv)
		}
		return out
	case []any:
		arr := make([]any, len(t))
		for i := range t {
			arr[i] = normalize(t[i])
		}
		return arr
	default:
		return v
	}
}
