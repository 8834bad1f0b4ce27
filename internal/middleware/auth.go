package middleware

import (
	"net/http"
	"strings"

	"github.com/stpnv0/ParkSpot/internal/domain"
	"github.com/wb-go/wbf/ginext"
)

const (
	userIDKey = "user_id"
	roleKey   = "user_role"
)

type TokenValidator interface {
	ValidateToken(token string) (*domain.Claims, error)
}

// Auth requires a valid Bearer token and stores its identity on the context.
func Auth(v TokenValidator) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "missing bearer token"})
			return
		}

		claims, err := v.ValidateToken(strings.TrimSpace(token))
		if err != nil {
			c.Set("error", err.Error())
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": domain.ErrTokenInvalid.Error()})
			return
		}

		SetClaims(c, claims)
		c.Next()
	}
}

// RequireRole must run after Auth.
func RequireRole(role domain.Role) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		if Role(c) != role {
			c.AbortWithStatusJSON(http.StatusForbidden, ginext.H{"error": "access denied"})
			return
		}
		c.Next()
	}
}

func SetClaims(c *ginext.Context, claims *domain.Claims) {
	c.Set(userIDKey, claims.UserID)
	c.Set(roleKey, string(claims.Role))
}

func UserID(c *ginext.Context) string {
	return c.GetString(userIDKey)
}

func Role(c *ginext.Context) domain.Role {
	return domain.Role(c.GetString(roleKey))
}
