// Package dupkey finds object keys that occur more than once in a JSON
// document. Decoding into map[string]any keeps only the last occurrence, so
// repeated keys have to be detected on the token stream.
package dupkey

import (
	"encoding/json"
	"errors"
	"io"
	"strconv"
	"strings"
)

// Duplicate is a repeated key. Path is the JSON Pointer of the object that
// holds the key; the root object is "/".
type Duplicate struct {
	Path string
	Key  string
}

type frame struct {
	object  bool
	keys    map[string]struct{}
	wantKey bool
	key     string
	index   int
}

// Find scans r and returns the duplicated keys in document order. Scanning
// stops after limit duplicates when limit > 0. Malformed input is reported
// as an error together with the duplicates found before it.
func Find(r io.Reader, limit int) ([]Duplicate, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var (
		out   []Duplicate
		stack []frame
	)
	// done advances the enclosing container past a complete value.
	done := func() {
		if len(stack) == 0 {
			return
		}
		top := &stack[len(stack)-1]
		if top.object {
			top.wantKey = true
		} else {
			top.index++
		}
	}

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			if len(stack) > 0 {
				return out, io.ErrUnexpectedEOF
			}
			return out, nil
		}
		if err != nil {
			return out, err
		}
		switch v := tok.(type) {
		case json.Delim:
			switch v {
			case '{':
				stack = append(stack, frame{object: true, keys: map[string]struct{}{}, wantKey: true})
			case '[':
				stack = append(stack, frame{})
			case '}', ']':
				stack = stack[:len(stack)-1]
				done()
			}
		case string:
			n := len(stack)
			if n > 0 && stack[n-1].object && stack[n-1].wantKey {
				top := &stack[n-1]
				if _, seen := top.keys[v]; seen {
					out = append(out, Duplicate{Path: pointer(stack[:n-1]), Key: v})
					if limit > 0 && len(out) >= limit {
						return out, nil
					}
				}
				top.keys[v] = struct{}{}
				top.key = v
				top.wantKey = false
				continue
			}
			done()
		default:
			done()
		}
	}
}

// pointer renders the location reached through the given ancestor frames.
func pointer(ancestors []frame) string {
	if len(ancestors) == 0 {
		return "/"
	}
	var b strings.Builder
	for _, f := range ancestors {
		b.WriteByte('/')
		if f.object {
			b.WriteString(escape(f.key))
		} else {
			b.WriteString(strconv.Itoa(f.index))
		}
	}
	return b.String()
}

var escaper = strings.NewReplacer("~", "~0", "/", "~1")

func escape(s string) string { return escaper.Replace(s) }
