package response

import (
	"errors"

	"github.com/gin-gonic/gin"
)

// Success writes data as JSON with the given status.
func Success(ctx *gin.Context, status int, data any) {
	ctx.JSON(status, data)
}

// Error writes message as a plain-text body and stops the handler chain.
// The message is also attached to the context so the access log can report it.
func Error(ctx *gin.Context, status int, message string) {
	_ = ctx.Error(errors.New(message))
	ctx.String(status, message)
	ctx.Abort()
}
