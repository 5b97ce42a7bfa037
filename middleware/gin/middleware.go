package ginmw

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/reoring/goconv"
	"github.com/reoring/goconv/middleware"
)

// ConvertJSON converts the request body with c and stores the result in the
// request context. On failure it aborts with 400 and middleware.ErrorPayload.
func ConvertJSON[T any](c goconv.Converter[T, any], opt middleware.Options) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		res := middleware.Decode(ctx.Request.Body, c, opt)
		if res.IsFailure() {
			ctx.AbortWithStatusJSON(http.StatusBadRequest, middleware.ErrorPayload(res.Message()))
			return
		}
		ctx.Request = ctx.Request.WithContext(middleware.ContextWithValue(ctx.Request.Context(), res.Value()))
		ctx.Next()
	}
}

// Value fetches the converted body from gin.Context.
func Value[T any](c *gin.Context) (T, bool) {
	return middleware.ValueFromContext[T](c.Request.Context())
}
