//go:build unit

package api_test

import (
	"testing"
	"time"

	"tiffintime-api/internal/handler/middleware"
	"tiffintime-api/internal/pkg/config"
	"tiffintime-api/internal/pkg/jwt"
	"tiffintime-api/internal/usecase"
	"tiffintime-api/tests/common/authtest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// testAuth wires the real bearer middleware against the test secret.
type testAuth struct {
	mw     *middleware.AuthMiddleware
	tokens *authtest.JWTHelper
	apiKey string
}

func newTestAuth(t *testing.T) testAuth {
	t.Helper()
	cfg := config.NewTestConfig()
	duration, err := time.ParseDuration(cfg.JWT.Duration)
	require.NoError(t, err)

	validator := usecase.NewTokenValidator(jwt.NewService(cfg.JWT.Secret, duration), cfg)
	return testAuth{
		mw:     middleware.NewAuthMiddleware(validator),
		tokens: authtest.NewJWTHelper(cfg.JWT),
		apiKey: cfg.Auth.APIKey,
	}
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.ErrorHandler())
	return router
}
