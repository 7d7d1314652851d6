//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"tiffintime-api/internal/domain/account"
	"tiffintime-api/internal/pkg/config"
	"tiffintime-api/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, subjectID uuid.UUID, role account.Role) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	token, err := jwt.NewService(h.cfg.Secret, duration).GenerateToken(subjectID, role)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, subjectID uuid.UUID, role account.Role) string {
	t.Helper()
	// expiry is second-granular, so issue it already a minute past
	token, err := jwt.NewService(h.cfg.Secret, -time.Minute).GenerateToken(subjectID, role)
	require.NoError(t, err)
	return token
}
