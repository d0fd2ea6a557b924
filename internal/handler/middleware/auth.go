package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"flavor-reservation/internal/pkg/config"
	"flavor-reservation/internal/pkg/jwt"
	"flavor-reservation/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

// TokenValidator checks a bearer token issued by the identity provider.
type TokenValidator interface {
	ValidateToken(token string) (*jwt.Claims, error)
}

type AuthMiddleware struct {
	tokenValidator TokenValidator
	adminRole      string
}

const ctxIdentityKey = "identity"

func NewAuthMiddleware(tokenValidator TokenValidator, cfg config.Config) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
		adminRole:      cfg.JWT.AdminRole,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}

		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"message": "Access token required"},
			})
			return
		}

		claims, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"message": "Invalid or expired token"},
			})
			return
		}

		SetIdentity(c, shared.NewIdentity(claims.UserID, claims.ProjectID, claims.Roles, m.adminRole))
		c.Next()
	}
}

// RequireAdmin must run after RequireAuth.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := GetIdentity(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error": gin.H{"message": "Internal server error"},
			})
			return
		}

		if !identity.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": gin.H{"message": "Insufficient permissions"},
			})
			return
		}

		c.Next()
	}
}

func SetIdentity(c *gin.Context, identity shared.Identity) {
	c.Set(ctxIdentityKey, identity)
}

func GetIdentity(c *gin.Context) (shared.Identity, bool) {
	v, exists := c.Get(ctxIdentityKey)
	if !exists {
		return shared.Identity{}, false
	}

	identity, ok := v.(shared.Identity)
	return identity, ok
}
