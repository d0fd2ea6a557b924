//go:build unit

package api_test

import (
	"net/http"
	"strings"

	"flavor-reservation/internal/handler/middleware"
	"flavor-reservation/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

const (
	memberToken = "member-token"
	adminToken  = "admin-token"
)

var (
	member = shared.Identity{UserID: "user-1", ProjectID: "project-1", Roles: []string{"member"}}
	admin  = shared.Identity{UserID: "admin-1", ProjectID: "admin-project", Roles: []string{"admin"}, Admin: true}
)

// stubAuth stands in for token validation: the bearer token names the identity.
func stubAuth(c *gin.Context) {
	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	switch token {
	case memberToken:
		middleware.SetIdentity(c, member)
	case adminToken:
		middleware.SetIdentity(c, admin)
	default:
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
		return
	}
	c.Next()
}
