package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jingjie2002/GM-Tools-Admin/internal/domain"
	"github.com/jingjie2002/GM-Tools-Admin/internal/infrastructure/auth"
)

// JWTMiddleware creates JWT authentication middleware. Tokens that were
// revoked through the session store are refused even while their
// signature is still valid.
func JWTMiddleware(jwtService auth.JWTService, sessions domain.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, domain.NewAppError(domain.ErrCodeTokenMissing, "Authorization header required", http.StatusUnauthorized, nil))
			c.Abort()
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, domain.NewAppError(domain.ErrCodeTokenInvalid, "Invalid authorization header format", http.StatusUnauthorized, nil))
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := jwtService.ValidateToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, domain.NewAppError(domain.ErrCodeTokenInvalid, "Invalid token", http.StatusUnauthorized, err))
			c.Abort()
			return
		}

		if sessions != nil {
			revoked, err := sessions.IsTokenBlacklisted(c.Request.Context(), tokenString)
			if err != nil {
				// Fail closed: an unreachable store must not open the door.
				c.JSON(http.StatusServiceUnavailable, domain.NewAppError(domain.ErrCodeStoreUnavailable, "Session store unavailable", http.StatusServiceUnavailable, err))
				c.Abort()
				return
			}
			if revoked {
				c.JSON(http.StatusUnauthorized, domain.NewAppError(domain.ErrCodeTokenRevoked, "Token has been revoked", http.StatusUnauthorized, nil))
				c.Abort()
				return
			}
		}

		c.Set("admin_id", claims.AdminID)
		c.Set("username", claims.Username)
		c.Set("role", claims.Role)
		c.Set("token", tokenString)
		c.Next()
	}
}

// RequireRole restricts a route group to a single role
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		current, exists := c.Get("role")
		if !exists || current.(string) != role {
			c.JSON(http.StatusForbidden, domain.NewForbiddenError("Insufficient role for this operation"))
			c.Abort()
			return
		}
		c.Next()
	}
}
