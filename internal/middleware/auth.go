package middleware

import (
	"strings"

	"furnimarket_backend/internal/appErrors"
	"furnimarket_backend/internal/auth"
	"furnimarket_backend/internal/models"

	"github.com/gin-gonic/gin"
)

const (
	ContextUserIDKey   = "userID"
	ContextUsernameKey = "username"
	ContextRoleKey     = "role"
)

// AuthMiddleware validates the bearer token and stores the caller's
// identity in the request context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			appErrors.HandleError(c, appErrors.ErrInvalidToken)
			c.Abort()
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			appErrors.HandleError(c, appErrors.ErrInvalidToken)
			c.Abort()
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextUsernameKey, claims.Username)
		c.Set(ContextRoleKey, models.UserRole(claims.Role))
		c.Next()
	}
}

// OptionalAuthMiddleware populates the caller's identity when a valid
// bearer token is present and lets the request through either way. Search
// endpoints use it so the owner-only filter can work for logged-in users
// without locking out anonymous ones.
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			if claims, err := auth.ParseToken(strings.TrimPrefix(authHeader, "Bearer ")); err == nil {
				c.Set(ContextUserIDKey, claims.UserID)
				c.Set(ContextUsernameKey, claims.Username)
				c.Set(ContextRoleKey, models.UserRole(claims.Role))
			}
		}
		c.Next()
	}
}

// RequireRoles rejects callers whose role is not in the allowed set.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	roleSet := make(map[models.UserRole]bool, len(roles))
	for _, r := range roles {
		roleSet[r] = true
	}

	return func(c *gin.Context) {
		role, ok := CurrentRole(c)
		if !ok || !roleSet[role] {
			appErrors.HandleError(c, appErrors.ErrForbidden)
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUserID returns the authenticated caller's id, or 0 when the
// request is anonymous.
func CurrentUserID(c *gin.Context) uint {
	val, exists := c.Get(ContextUserIDKey)
	if !exists {
		return 0
	}
	id, ok := val.(uint)
	if !ok {
		return 0
	}
	return id
}

// CurrentRole returns the authenticated caller's role.
func CurrentRole(c *gin.Context) (models.UserRole, bool) {
	val, exists := c.Get(ContextRoleKey)
	if !exists {
		return "", false
	}
	role, ok := val.(models.UserRole)
	return role, ok
}
