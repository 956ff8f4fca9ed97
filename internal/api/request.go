// Package api holds the HTTP handlers for the admin API. Handlers report
// failures through c.Error and leave rendering to the error middleware.
package api

import (
	"errors"
	"io"
	"net/http"

	"tvshow_admin/internal/apperror"
	"tvshow_admin/internal/store"
	"tvshow_admin/internal/validate"

	"github.com/gin-gonic/gin"
)

// bindJSON decodes the request body into dst. An empty body decodes as {}.
func bindJSON(c *gin.Context, dst any) bool {
	err := c.ShouldBindJSON(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		_ = c.Error(apperror.New(http.StatusRequestEntityTooLarge, "Request body too large", err))
		return false
	}
	_ = c.Error(apperror.BadRequest("Invalid request body", err))
	return false
}

// bindAndValidate decodes the body and checks its validate tags
func bindAndValidate(c *gin.Context, dst any) bool {
	if !bindJSON(c, dst) {
		return false
	}
	if fields := validate.Fields(dst); len(fields) > 0 {
		_ = c.Error(apperror.Validation(fields))
		return false
	}
	return true
}

// storeFailure maps a store error to a not-found or a generic internal error
func storeFailure(c *gin.Context, err error, notFound, failed string) {
	if errors.Is(err, store.ErrNotFound) {
		_ = c.Error(apperror.NotFound(notFound))
		return
	}
	_ = c.Error(apperror.Internal(failed, err))
}

// setIf copies a present optional field into an update set
func setIf[T any](fields map[string]any, column string, v *T) {
	if v != nil {
		fields[column] = *v
	}
}
