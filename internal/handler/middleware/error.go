package middleware

import (
	"log/slog"
	"net/http"

	"shareit/internal/handler/httperr"
	"shareit/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders errors left on the context by handlers that did not write a body.
// Public errors carry their response in Meta; anything else is classified by kind.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() || len(c.Errors) == 0 {
			return
		}
		last := c.Errors.Last()
		if last.IsType(gin.ErrorTypePublic) {
			if resp, ok := last.Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}

		status := httperr.StatusOf(last.Err)
		if status == http.StatusInternalServerError {
			slog.Error("unhandled request error",
				"error", last.Err,
				"path", c.FullPath(),
				"stack", errs.ExtractStackLines(last.Err, 8))
			c.JSON(status, httperr.Internal())
			return
		}
		resp := httperr.Response{Status: status}
		resp.Error.Message = last.Err.Error()
		c.JSON(status, resp)
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("recovered from panic", "error", err, "method", c.Request.Method, "path", c.Request.URL.Path)
				c.AbortWithStatusJSON(http.StatusInternalServerError, httperr.Internal())
			}
		}()
		c.Next()
	}
}
