package api

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	RequestIDHeader = "X-Request-Id"

	requestIDKey = "request_id"
)

// requestIDMiddleware tags every request with an id for log correlation.
// A client-provided id is kept, otherwise a fresh one is generated.
func requestIDMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id := ctx.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		ctx.Set(requestIDKey, id)
		ctx.Header(RequestIDHeader, id)

		ctx.Next()
	}
}
