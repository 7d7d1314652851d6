package middleware

import (
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"tiffintime-api/internal/domain/account"
	"tiffintime-api/internal/handler/httperr"
	"tiffintime-api/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxSubjectKey = "subject"
	ctxClaimsKey  = "jwt_claims"
)

var errMissingCredentials = httpError("access token required")

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireAuth accepts a JWT issued at login or the static API key.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errMissingCredentials, "Access token required", nil)
			return
		}

		subject, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		c.Set(ctxSubjectKey, subject)
		c.Set(ctxClaimsKey, map[string]any{
			"subject_id": subjectIDString(subject),
			"role":       subject.Role.String(),
		})
		c.Next()
	}
}

// RequireRole must run after RequireAuth.
func (m *AuthMiddleware) RequireRole(roles ...account.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		subject, ok := GetSubject(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusUnauthorized, errMissingCredentials, "Access token required", nil)
			return
		}
		if !slices.Contains(roles, subject.Role) {
			httperr.AbortWithError(c, http.StatusForbidden, httpError("role not permitted"), "Insufficient permissions", nil)
			return
		}
		c.Next()
	}
}

func GetSubject(c *gin.Context) (account.Subject, bool) {
	v, exists := c.Get(ctxSubjectKey)
	if !exists {
		return account.Subject{}, false
	}
	subject, ok := v.(account.Subject)
	return subject, ok
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if len(authHeader) > len("Bearer ") && strings.EqualFold(authHeader[:len("Bearer ")], "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func subjectIDString(s account.Subject) string {
	if s.IsAdmin() {
		return ""
	}
	return s.ID.String()
}

type httpError string

func (e httpError) Error() string { return string(e) }
