package middleware

import (
	"errors"

	"tvshow_admin/internal/apperror"
	"tvshow_admin/internal/auth"
	"tvshow_admin/internal/domain"

	"github.com/gin-gonic/gin"
)

// UserKey is the context key holding the authenticated *domain.User
const UserKey = "user"

// AdminOnlyMiddleware resolves the caller and checks the role from the
// database on each request. No identity is a 401; an unknown user or a
// non-admin role is a 403.
func AdminOnlyMiddleware(authn auth.Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := authn.Authenticate(c.Request.Context(), c.Request)
		switch {
		case errors.Is(err, auth.ErrNoIdentity):
			_ = c.Error(apperror.Unauthorized())
			c.Abort()
			return
		case errors.Is(err, auth.ErrUnknownUser):
			_ = c.Error(apperror.Forbidden())
			c.Abort()
			return
		case err != nil:
			_ = c.Error(apperror.Internal("Internal Server Error", err))
			c.Abort()
			return
		}
		if !user.IsAdmin() {
			_ = c.Error(apperror.Forbidden())
			c.Abort()
			return
		}
		c.Set(UserKey, user)
		c.Next()
	}
}

// CurrentUser returns the user stored by AdminOnlyMiddleware, if any
func CurrentUser(c *gin.Context) (*domain.User, bool) {
	v, ok := c.Get(UserKey)
	if !ok {
		return nil, false
	}
	u, ok := v.(*domain.User)
	return u, ok
}
