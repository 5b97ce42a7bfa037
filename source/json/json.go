// Package json provides a goconv.JSONDriver backed by encoding/json.
//
//	goconv.SetJSONDriver(json.Driver())
package json

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/reoring/goconv"
)

// Driver returns a goconv.JSONDriver backed by encoding/json. Numbers are
// decoded as json.Number to preserve precision.
func Driver() goconv.JSONDriver { return driver{} }

type driver struct{}

func (driver) Decode(r io.Reader) (any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errors.New("unexpected data after top-level value")
		}
		return nil, err
	}
	return v, nil
}

func (driver) Name() string { return "encoding/json" }
