//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tiffintime-api/internal/domain/account"
	"tiffintime-api/internal/handler/middleware"
	"tiffintime-api/internal/pkg/config"
	"tiffintime-api/internal/pkg/jwt"
	"tiffintime-api/internal/usecase"
	commontest "tiffintime-api/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	return r
}

func TestRateLimiter_RejectsAfterBurst(t *testing.T) {
	limiter := middleware.NewRateLimiter(config.RateLimitConfig{AuthRPS: 0.001, AuthBurst: 2})
	r := newRouter()
	r.POST("/auth/login", limiter.Middleware(), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	hit := func(ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
		req.RemoteAddr = ip + ":51000"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusNoContent, hit("10.0.0.1").Code)
	assert.Equal(t, http.StatusNoContent, hit("10.0.0.1").Code)

	w := hit("10.0.0.1")
	commontest.AssertErrorResponse(t, w, http.StatusTooManyRequests, "Too many requests")
	commontest.AssertHeaders(t, w, map[string]string{"Retry-After": "1"})

	assert.Equal(t, http.StatusNoContent, hit("10.0.0.2").Code, "buckets are per client")
}

func TestAuthMiddleware(t *testing.T) {
	cfg := config.NewTestConfig()
	svc := jwt.NewService(cfg.JWT.Secret, time.Hour)
	mw := middleware.NewAuthMiddleware(usecase.NewTokenValidator(svc, cfg))

	r := newRouter()
	r.GET("/vendor-only", mw.RequireAuth(), mw.RequireRole(account.RoleVendor, account.RoleAdmin), func(c *gin.Context) {
		s, ok := middleware.GetSubject(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"role": s.Role.String()})
	})

	token := func(role account.Role) string {
		tok, err := svc.GenerateToken(uuid.New(), role)
		require.NoError(t, err)
		return "Bearer " + tok
	}

	testCases := []struct {
		name           string
		header         string
		expectedStatus int
		expectedMsg    string
	}{
		{name: "vendor token", header: token(account.RoleVendor), expectedStatus: http.StatusOK},
		{name: "api key is admin", header: "Bearer " + cfg.Auth.APIKey, expectedStatus: http.StatusOK},
		{name: "lower-case scheme", header: "bearer " + cfg.Auth.APIKey, expectedStatus: http.StatusOK},
		{name: "student token", header: token(account.RoleStudent), expectedStatus: http.StatusForbidden, expectedMsg: "Insufficient permissions"},
		{name: "missing header", header: "", expectedStatus: http.StatusUnauthorized, expectedMsg: "Access token required"},
		{name: "not a bearer", header: "Basic dXNlcjpwYXNz", expectedStatus: http.StatusUnauthorized, expectedMsg: "Access token required"},
		{name: "garbage token", header: "Bearer not.a.jwt", expectedStatus: http.StatusUnauthorized, expectedMsg: "Invalid or expired token"},
		{name: "foreign secret", header: "Bearer " + mustToken(t, "other-secret"), expectedStatus: http.StatusUnauthorized, expectedMsg: "Invalid or expired token"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/vendor-only", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if tc.expectedStatus == http.StatusOK {
				assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
				return
			}
			commontest.AssertErrorResponse(t, w, tc.expectedStatus, tc.expectedMsg)
		})
	}
}

func TestCustomRecovery(t *testing.T) {
	r := newRouter()
	r.Use(middleware.CustomRecovery())
	r.GET("/boom", func(c *gin.Context) { panic("kaboom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	commontest.AssertErrorResponse(t, w, http.StatusInternalServerError, "Internal server error")
}

func mustToken(t *testing.T, secret string) string {
	t.Helper()
	tok, err := jwt.NewService(secret, time.Hour).GenerateToken(uuid.New(), account.RoleVendor)
	require.NoError(t, err)
	return tok
}
