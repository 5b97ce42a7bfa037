// Package middleware converts HTTP request bodies with goconv converters.
// The package itself targets net/http; the gin and echo submodules adapt it
// to those frameworks.
package middleware

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/reoring/goconv"
)

// DefaultMaxBodyBytes bounds request bodies when Options.MaxBodyBytes is unset.
const DefaultMaxBodyBytes int64 = 1 << 20

// ctxKeyValue is a typed context key; the type parameter keeps keys for
// different T apart.
type ctxKeyValue[T any] struct{}

// ContextWithValue attaches a converted value to the context.
func ContextWithValue[T any](ctx context.Context, v T) context.Context {
	return context.WithValue(ctx, ctxKeyValue[T]{}, v)
}

// ValueFromContext retrieves the value stored by ContextWithValue.
func ValueFromContext[T any](ctx context.Context) (T, bool) {
	v, ok := ctx.Value(ctxKeyValue[T]{}).(T)
	return v, ok
}

// Options configures body conversion. The zero value rejects repeated
// object keys and limits bodies to DefaultMaxBodyBytes.
type Options struct {
	AllowDuplicateKeys bool
	MaxBodyBytes       int64
	// Logger receives one record per rejected request; nil uses slog.Default().
	Logger *slog.Logger
	// Metrics, when set, counts conversions by outcome.
	Metrics *Metrics
}

func (o Options) limit() int64 {
	if o.MaxBodyBytes <= 0 {
		return DefaultMaxBodyBytes
	}
	return o.MaxBodyBytes
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.Default()
	}
	return o.Logger
}

// Decode reads a JSON body and converts it with c.
func Decode[T any](body io.Reader, c goconv.Converter[T, any], opt Options) goconv.Result[T] {
	limit := opt.limit()
	b, err := io.ReadAll(io.LimitReader(body, limit+1))
	if err != nil {
		return goconv.FailCode[T](goconv.CodeParseError, map[string]string{"value": err.Error()})
	}
	if int64(len(b)) > limit {
		return goconv.Failf[T]("request body exceeds %d bytes", limit)
	}
	if opt.AllowDuplicateKeys {
		return goconv.ConvertJSON(c, b)
	}
	return goconv.ConvertStrictJSON(c, b)
}

// ErrorPayload shapes a failure message for JSON responses, one entry per
// aggregated message line.
func ErrorPayload(message string) map[string]any {
	return map[string]any{"errors": strings.Split(message, "\n")}
}

// WriteJSON writes v as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// ConvertJSON returns middleware that converts the request body with c and
// stores the result in the request context. A failed conversion is answered
// with 400 and ErrorPayload; the next handler is not called.
func ConvertJSON[T any](c goconv.Converter[T, any], opt Options) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			res := Decode(r.Body, c, opt)
			opt.Metrics.observe(res.IsSuccess())
			if res.IsFailure() {
				opt.logger().Info("request body rejected",
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("reason", res.Message()))
				WriteJSON(w, http.StatusBadRequest, ErrorPayload(res.Message()))
				return
			}
			next.ServeHTTP(w, r.WithContext(ContextWithValue(r.Context(), res.Value())))
		})
	}
}
