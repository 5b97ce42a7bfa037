package goconv

import (
	"bytes"
	"errors"
	"io"
	"sync"

	json "github.com/goccy/go-json"

	"github.com/reoring/goconv/internal/dupkey"
)

// JSONDriver decodes JSON input into the untyped value model consumed by
// converters: map[string]any, []any, string, json.Number, bool and nil.
// The default implementation is based on goccy/go-json and may be swapped
// with SetJSONDriver.
type JSONDriver interface {
	Decode(r io.Reader) (any, error)
	Name() string
}

var (
	jsonDriverMu      sync.RWMutex
	currentJSONDriver JSONDriver = goJSONDriver{}
)

// SetJSONDriver replaces the global JSON driver; nil values are ignored.
func SetJSONDriver(d JSONDriver) {
	if d == nil {
		return
	}
	jsonDriverMu.Lock()
	currentJSONDriver = d
	jsonDriverMu.Unlock()
}

// UseDefaultJSONDriver restores the default go-json driver.
func UseDefaultJSONDriver() {
	jsonDriverMu.Lock()
	currentJSONDriver = goJSONDriver{}
	jsonDriverMu.Unlock()
}

// CurrentJSONDriver returns the driver in use.
func CurrentJSONDriver() JSONDriver {
	jsonDriverMu.RLock()
	d := currentJSONDriver
	jsonDriverMu.RUnlock()
	return d
}

type goJSONDriver struct{}

func (goJSONDriver) Decode(r io.Reader) (any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	// a second value (or garbage) after the document is an error
	var extra any
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errors.New("unexpected data after top-level value")
		}
		return nil, err
	}
	return v, nil
}

func (goJSONDriver) Name() string { return "go-json" }

// JSONReader decodes one JSON document from r.
func JSONReader(r io.Reader) Result[any] {
	v, err := CurrentJSONDriver().Decode(r)
	if err != nil {
		return FailCode[any](CodeParseError, map[string]string{"value": err.Error()})
	}
	return Succeed(v)
}

// JSONBytes decodes one JSON document from b.
func JSONBytes(b []byte) Result[any] { return JSONReader(bytes.NewReader(b)) }

// ConvertJSON decodes b and converts the decoded value with c.
func ConvertJSON[T, C any](c Converter[T, C], b []byte, ctx ...C) Result[T] {
	return Then(JSONBytes(b), func(v any) Result[T] { return c.Convert(v, ctx...) })
}

// ConvertJSONReader decodes r and converts the decoded value with c.
func ConvertJSONReader[T, C any](c Converter[T, C], r io.Reader, ctx ...C) Result[T] {
	return Then(JSONReader(r), func(v any) Result[T] { return c.Convert(v, ctx...) })
}

// ValidateJSON decodes b and validates the decoded value with v.
func ValidateJSON[T, C any](v Validator[T, C], b []byte, ctx ...C) Result[T] {
	return Then(JSONBytes(b), func(x any) Result[T] { return v.Validate(x, ctx...) })
}

// StrictJSONBytes is JSONBytes that also fails when an object repeats a key.
// Every repeated key is reported.
func StrictJSONBytes(b []byte) Result[any] {
	dups, err := dupkey.Find(bytes.NewReader(b), 0)
	if err != nil {
		return FailCode[any](CodeParseError, map[string]string{"value": err.Error()})
	}
	if len(dups) > 0 {
		msgs := make([]string, len(dups))
		for i, d := range dups {
			msgs[i] = Text(CodeDuplicateKey, map[string]string{"field": d.Key, "path": d.Path})
		}
		return Fail[any](JoinMessages(msgs))
	}
	return JSONBytes(b)
}

// ConvertStrictJSON is ConvertJSON on top of StrictJSONBytes.
func ConvertStrictJSON[T, C any](c Converter[T, C], b []byte, ctx ...C) Result[T] {
	return Then(StrictJSONBytes(b), func(v any) Result[T] { return c.Convert(v, ctx...) })
}
