package codec

import "github.com/reoring/goconv"

// Identity returns a Codec[T,T] that performs no transformation. Both
// directions run the value through check, which confirms domain-side
// constraints.
func Identity[T, C any](check goconv.Converter[T, C]) Codec[T, T] {
	return &identityCodec[T, C]{check: check}
}

type identityCodec[T, C any] struct {
	check goconv.Converter[T, C]
}

func (c *identityCodec[T, C]) Decode(a T) goconv.Result[T] { return c.check.Convert(a) }
func (c *identityCodec[T, C]) Encode(b T) goconv.Result[T] { return c.check.Convert(b) }
