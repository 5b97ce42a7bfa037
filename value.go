package goconv

import (
	"fmt"
	"math"
	"reflect"

	json "github.com/goccy/go-json"
)

// IsUndefined reports whether v stands for an absent value: a nil interface
// or a nil pointer. JSON null decodes to a nil interface and is therefore
// undefined as well.
func IsUndefined(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// AsObject views v as a string-keyed object. It accepts map[string]any and
// any other non-nil map whose key kind is string.
func AsObject(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, m != nil
	case nil:
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String || rv.IsNil() {
		return nil, false
	}
	out := make(map[string]any, rv.Len())
	it := rv.MapRange()
	for it.Next() {
		out[it.Key().String()] = it.Value().Interface()
	}
	return out, true
}

// Items views v as a sequence. It accepts []any and any other slice or array.
// Byte slices are treated as sequences as well.
func Items(v any) ([]any, bool) {
	switch s := v.(type) {
	case []any:
		return s, true
	case nil:
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// Stringify renders v as JSON for failure messages, falling back to %v for
// values JSON cannot represent.
func Stringify(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}

// NumericValue reports v as a float64 when v holds a Go integer or float of
// any kind or a json.Number. Strings are not numbers here.
func NumericValue(v any) (float64, bool) {
	if n, ok := v.(json.Number); ok {
		f, err := n.Float64()
		return f, err == nil
	}
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

// AsNumber converts the number held by v to the numeric type T. It fails
// when v is not a number, T is not numeric, or T cannot represent the value
// exactly (fractions into integers, out of range values).
func AsNumber[T any](v any) (T, bool) {
	var zero T
	f, ok := NumericValue(v)
	if !ok || math.IsNaN(f) {
		return zero, false
	}
	out := reflect.New(reflect.TypeFor[T]()).Elem()
	switch out.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 || out.OverflowInt(int64(f)) {
			return zero, false
		}
		out.SetInt(int64(f))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if f != math.Trunc(f) || f < 0 || f >= math.MaxUint64 || out.OverflowUint(uint64(f)) {
			return zero, false
		}
		out.SetUint(uint64(f))
	case reflect.Float32, reflect.Float64:
		if out.OverflowFloat(f) {
			return zero, false
		}
		out.SetFloat(f)
	default:
		return zero, false
	}
	return out.Interface().(T), true
}

// Equal compares two dynamic values. Numbers compare by value whatever
// their kind, so json.Number("1"), int(1) and 1.0 are equal. Other values
// use == when both are comparable at run time and reflect.DeepEqual
// otherwise.
func Equal(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if fa, ok := NumericValue(a); ok {
		fb, ok := NumericValue(b)
		return ok && fa == fb
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	if va.Comparable() && vb.Comparable() {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}
