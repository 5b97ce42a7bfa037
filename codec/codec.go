// Package codec pairs a decode direction (wire -> domain) with an encode
// direction (domain -> wire). Both directions report data errors as
// goconv.Result failures.
package codec

import "github.com/reoring/goconv"

// Codec converts between a wire representation W and a domain type D.
type Codec[W, D any] interface {
	Decode(w W) goconv.Result[D]
	Encode(d D) goconv.Result[W]
}

// Converter returns a converter that runs wire and then decodes its value
// with c.
func Converter[W, D, C any](wire goconv.Converter[W, C], c Codec[W, D]) goconv.Converter[D, C] {
	return goconv.Map(wire, c.Decode)
}

// Func builds a Codec from a pair of functions.
func Func[W, D any](decode func(W) goconv.Result[D], encode func(D) goconv.Result[W]) Codec[W, D] {
	return funcCodec[W, D]{decode: decode, encode: encode}
}

type funcCodec[W, D any] struct {
	decode func(W) goconv.Result[D]
	encode func(D) goconv.Result[W]
}

func (c funcCodec[W, D]) Decode(w W) goconv.Result[D] { return c.decode(w) }
func (c funcCodec[W, D]) Encode(d D) goconv.Result[W] { return c.encode(d) }
