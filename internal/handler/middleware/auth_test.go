//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"flavor-reservation/internal/handler/middleware"
	"flavor-reservation/internal/pkg/config"
	"flavor-reservation/internal/pkg/jwt"
	"flavor-reservation/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthRouter(t *testing.T, svc *jwt.Service) (*gin.Engine, *shared.Identity) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Config{JWT: config.JWTConfig{AdminRole: "admin"}}
	auth := middleware.NewAuthMiddleware(svc, cfg)

	var seen shared.Identity
	r := gin.New()
	r.GET("/me", auth.RequireAuth(), func(c *gin.Context) {
		seen, _ = middleware.GetIdentity(c)
		c.Status(http.StatusOK)
	})
	r.GET("/admin", auth.RequireAuth(), auth.RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r, &seen
}

func doGet(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestRequireAuth(t *testing.T) {
	svc := jwt.NewService("secret", "identity")

	memberToken, err := svc.GenerateToken("user-1", "project-1", []string{"member"}, time.Hour)
	require.NoError(t, err)
	expiredToken, err := svc.GenerateToken("user-1", "project-1", nil, -time.Minute)
	require.NoError(t, err)
	foreignToken, err := jwt.NewService("other-secret", "identity").GenerateToken("user-1", "project-1", nil, time.Hour)
	require.NoError(t, err)
	unscopedToken, err := svc.GenerateToken("user-1", "", nil, time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name       string
		token      string
		expectCode int
	}{
		{name: "success: valid token", token: memberToken, expectCode: http.StatusOK},
		{name: "error: missing token", token: "", expectCode: http.StatusUnauthorized},
		{name: "error: expired token", token: expiredToken, expectCode: http.StatusUnauthorized},
		{name: "error: wrong signing key", token: foreignToken, expectCode: http.StatusUnauthorized},
		{name: "error: token without project scope", token: unscopedToken, expectCode: http.StatusUnauthorized},
		{name: "error: garbage", token: "not.a.jwt", expectCode: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, seen := newAuthRouter(t, svc)
			rec := doGet(r, "/me", tt.token)
			assert.Equal(t, tt.expectCode, rec.Code)
			if tt.expectCode == http.StatusOK {
				assert.Equal(t, "user-1", seen.UserID)
				assert.Equal(t, "project-1", seen.ProjectID)
				assert.False(t, seen.IsAdmin())
			}
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	svc := jwt.NewService("secret", "")
	r, _ := newAuthRouter(t, svc)

	adminToken, err := svc.GenerateToken("admin-1", "admin-project", []string{"member", "admin"}, time.Hour)
	require.NoError(t, err)
	memberToken, err := svc.GenerateToken("user-1", "project-1", []string{"member"}, time.Hour)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, doGet(r, "/admin", adminToken).Code)

	rec := doGet(r, "/admin", memberToken)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "Insufficient permissions")
}
