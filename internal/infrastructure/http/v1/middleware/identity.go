package middleware

import (
	"github.com/gin-gonic/gin"

	"stockyard/internal/core/appctx"
)

const (
	HeaderUserID   = "X-User-ID"
	HeaderUserName = "X-User-Name"
)

// Identity extracts the acting user from request headers and adds it to
// the request context. Authentication itself happens at the front proxy;
// the identity here only feeds created_by/updated_by stamps and the
// audit trail.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader(HeaderUserID)
		if userID != "" {
			user := &appctx.UserContext{
				UserID: userID,
				Name:   c.GetHeader(HeaderUserName),
			}
			ctx := appctx.WithUser(c.Request.Context(), user)
			c.Request = c.Request.WithContext(ctx)
		}
		c.Next()
	}
}
