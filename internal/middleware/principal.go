package middleware

import (
	"context"
	"net/http"

	"github.com/rifatalam240/Employee-Management-System-Server/internal/shared/contextutil"
	"github.com/rifatalam240/Employee-Management-System-Server/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// PrincipalSource resolves the stored role for an authenticated email.
// Any package with a matching method fits; in practice the employee
// service provides it.
type PrincipalSource interface {
	FindRoleByEmail(ctx context.Context, email string) (string, error)
}

// LoadPrincipal turns the verified email from Authenticate into a full
// Principal by looking up the roster record. Operations downstream read
// the principal from the request context, never from ambient state.
func LoadPrincipal(src PrincipalSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString("email")
		if email == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication is required", nil)
			c.Abort()
			return
		}

		role, err := src.FindRoleByEmail(c.Request.Context(), email)
		if err != nil {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found", nil)
			c.Abort()
			return
		}

		c.Set("role", role)

		principal := contextutil.Principal{Email: email, Role: role}
		ctx := contextutil.WithPrincipal(c.Request.Context(), principal)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
