package echomw

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/reoring/goconv"
	"github.com/reoring/goconv/middleware"
)

// ConvertJSON converts the request body with c, stores the result in the
// request context, or returns 400 with middleware.ErrorPayload.
func ConvertJSON[T any](c goconv.Converter[T, any], opt middleware.Options) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ec echo.Context) error {
			res := middleware.Decode(ec.Request().Body, c, opt)
			if res.IsFailure() {
				return ec.JSON(http.StatusBadRequest, middleware.ErrorPayload(res.Message()))
			}
			ctx := middleware.ContextWithValue(ec.Request().Context(), res.Value())
			ec.SetRequest(ec.Request().WithContext(ctx))
			return next(ec)
		}
	}
}

// Value fetches the converted body from echo.Context.
func Value[T any](c echo.Context) (T, bool) {
	return middleware.ValueFromContext[T](c.Request().Context())
}
