//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"tiffintime-api/internal/domain/account"
	resdto "tiffintime-api/internal/handler/dto/response"
	"tiffintime-api/internal/usecase/queries"
	"tiffintime-api/tests/common/authtest"
	"tiffintime-api/tests/common/builder"
	"tiffintime-api/tests/common/dbtest"
	"tiffintime-api/tests/common/httptest"
	"tiffintime-api/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

const (
	registerURL = "/api/auth/register"
	loginURL    = "/api/auth/login"
	meURL       = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
	tokens *authtest.JWTHelper
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.tokens = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *authSuite) TestRegister() {
	s.Run("student registers and can log in", func() {
		reqBody := builder.NewRegisterBuilder().BuildDTO()

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, registerURL, reqBody, "")

		var created resdto.AccountResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &created)
		s.Equal("student", created.Role)
		s.Equal("farhan@campus.edu", created.Email)

		token := authtest.Login(s.T(), s.Router, "student", "Farhan@Campus.edu", "password123")
		s.NotEmpty(token)
	})

	s.Run("vendor registers with a description", func() {
		desc := "Biryani and kebabs"
		reqBody := builder.NewRegisterBuilder().With(func(b *builder.RegisterBuilder) {
			b.Role = "vendor"
			b.Name = "Kacchi Corner"
			b.Email = "kacchi@vendors.bd"
			b.Description = &desc
		}).BuildDTO()

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, registerURL, reqBody, "")

		var created resdto.AccountResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &created)
		s.Equal("vendor", created.Role)
	})

	s.Run("duplicate email is a conflict", func() {
		dbtest.CreateTestStudent(s.T(), s.DB, "farhan@campus.edu")
		reqBody := builder.NewRegisterBuilder().BuildDTO()

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, registerURL, reqBody, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "already exists")
	})

	s.Run("mismatched confirmation is rejected", func() {
		reqBody := builder.NewRegisterBuilder().With(func(b *builder.RegisterBuilder) {
			b.Confirm = "password124"
		}).BuildDTO()

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, registerURL, reqBody, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "do not match")
	})

	s.Run("admin cannot self-register", func() {
		reqBody := builder.NewRegisterBuilder().With(func(b *builder.RegisterBuilder) {
			b.Role = "admin"
		}).BuildDTO()

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, registerURL, reqBody, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "")
	})
}

func (s *authSuite) TestLogin() {
	testCases := []struct {
		name           string
		role           string
		email          string
		password       string
		expectedStatus int
	}{
		{name: "valid credentials", role: "student", email: "nadia@campus.edu", password: dbtest.DefaultPassword, expectedStatus: http.StatusOK},
		{name: "wrong password", role: "student", email: "nadia@campus.edu", password: "password999", expectedStatus: http.StatusUnauthorized},
		{name: "unknown account", role: "student", email: "ghost@campus.edu", password: dbtest.DefaultPassword, expectedStatus: http.StatusNotFound},
		{name: "wrong role table", role: "vendor", email: "nadia@campus.edu", password: dbtest.DefaultPassword, expectedStatus: http.StatusNotFound},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			dbtest.CreateTestStudent(s.T(), s.DB, "nadia@campus.edu")

			w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL,
				(&builder.LoginBuilder{Role: tc.role, Email: tc.email, Password: tc.password}).BuildDTO(), "")

			if tc.expectedStatus == http.StatusOK {
				var res resdto.LoginResponse
				httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
				s.Equal("bearer", res.TokenType)
				s.Positive(res.ExpiresIn)
				return
			}
			httptest.AssertErrorResponse(s.T(), w, tc.expectedStatus, "")
		})
	}
}

func (s *authSuite) TestMe() {
	s.Run("token subject resolves to the stored account", func() {
		id, token := authtest.CreateStudentAndLogin(s.T(), s.DB, s.Router, "rafi@campus.edu")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, token)

		var view queries.AccountView
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &view)
		s.Equal(id, view.ID)
		s.Equal("rafi@campus.edu", view.Email)
	})

	s.Run("token for a deleted account is not found", func() {
		token := s.tokens.GenerateToken(s.T(), uuid.New(), account.RoleVendor)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, token)

		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "")
	})

	s.Run("expired token is rejected", func() {
		token := s.tokens.CreateExpiredToken(s.T(), uuid.New(), account.RoleStudent)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, token)

		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Invalid or expired token")
	})
}
