//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"flavor-reservation/internal/pkg/config"
	"flavor-reservation/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

const tokenTTL = time.Hour

// JWTHelper mints bearer tokens the way the identity provider would.
type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID, projectID string, roles ...string) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret, h.cfg.Issuer).GenerateToken(userID, projectID, roles, tokenTTL)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) GenerateAdminToken(t *testing.T, userID, projectID string) string {
	t.Helper()
	return h.GenerateToken(t, userID, projectID, "member", h.cfg.AdminRole)
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID, projectID string) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret, h.cfg.Issuer).GenerateToken(userID, projectID, nil, -time.Minute)
	require.NoError(t, err)
	return token
}
