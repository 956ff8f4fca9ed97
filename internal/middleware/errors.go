package middleware

import (
	"fmt"
	"time"

	"tvshow_admin/internal/apperror"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ErrorHandler is the terminal error handler. Handlers report failures with
// c.Error; after the chain returns, the last error is logged in full to
// sink and rendered to the client as message plus request ID only.
func ErrorHandler(sink logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		appErr := apperror.From(c.Errors.Last().Err)
		requestID := GetRequestID(c)

		sink.WithFields(logrus.Fields{
			"stack":     appErr.Stack(),
			"status":    appErr.Status,
			"method":    c.Request.Method,
			"url":       c.Request.URL.String(),
			"requestId": requestID,
			"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
		}).Error(appErr.Error())

		if c.Writer.Written() {
			return
		}
		c.AbortWithStatusJSON(appErr.Status, gin.H{
			"error": gin.H{
				"message":   appErr.Message,
				"requestId": requestID,
			},
		})
	}
}

// Recovery turns a panic into an internal error for ErrorHandler.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		_ = c.Error(apperror.Internal("Internal Server Error", fmt.Errorf("panic: %v", recovered)))
		c.Abort()
	})
}
