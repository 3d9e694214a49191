package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/store-ratings/internal/auth"
	"github.com/BruksfildServices01/store-ratings/internal/httperr"
)

const (
	ContextUserID    = "userID"
	ContextUserRoles = "userRoles"
)

// AuthMiddleware validates the bearer token and stores the caller's identity
// from its claims. Storage is not consulted.
func AuthMiddleware(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Unauthorized(c, "missing_authorization_header", "Unauthenticated")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			httperr.Unauthorized(c, "invalid_authorization_header", "Unauthenticated")
			return
		}

		claims, err := tokens.Parse(strings.TrimSpace(parts[1]))
		if err != nil {
			httperr.Unauthorized(c, "invalid_token", "Unauthenticated")
			return
		}

		c.Set(ContextUserID, claims.Subject)
		c.Set(ContextUserRoles, claims.Roles)

		c.Next()
	}
}

// RequireRole passes callers holding at least one of the allowed roles.
func RequireRole(allowed ...string) gin.HandlerFunc {
	set := make(map[string]struct{}, len(allowed))
	for _, r := range allowed {
		set[r] = struct{}{}
	}

	return func(c *gin.Context) {
		if _, ok := UserID(c); !ok {
			httperr.Unauthorized(c, "unauthenticated", "Unauthenticated")
			return
		}

		for _, r := range UserRoles(c) {
			if _, ok := set[r]; ok {
				c.Next()
				return
			}
		}

		httperr.Forbidden(c, "forbidden", "Forbidden")
	}
}

func UserID(c *gin.Context) (string, bool) {
	id := c.GetString(ContextUserID)
	return id, id != ""
}

func UserRoles(c *gin.Context) []string {
	return c.GetStringSlice(ContextUserRoles)
}
