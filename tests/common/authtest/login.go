//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"tiffintime-api/internal/handler/dto/request"
	resdto "tiffintime-api/internal/handler/dto/response"
	"tiffintime-api/tests/common/dbtest"
	"tiffintime-api/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func Login(t *testing.T, router *gin.Engine, role, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Role: role, Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res resdto.LoginResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
	require.NotEmpty(t, res.AccessToken, "access token missing from login response")

	return res.AccessToken
}

func CreateStudentAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, email string) (uuid.UUID, string) {
	t.Helper()
	id := dbtest.CreateTestStudent(t, db, email)
	return id, Login(t, router, "student", email, dbtest.DefaultPassword)
}

func CreateVendorAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, name, email string) (uuid.UUID, string) {
	t.Helper()
	id := dbtest.CreateTestVendor(t, db, name, email)
	return id, Login(t, router, "vendor", email, dbtest.DefaultPassword)
}
