package api

import (
	"net/http"

	reqdto "tiffintime-api/internal/handler/dto/request"
	resdto "tiffintime-api/internal/handler/dto/response"
	"tiffintime-api/internal/handler/httperr"
	"tiffintime-api/internal/usecase/commands"
	"tiffintime-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	cmds commands.AuthCommands
	q    queries.AccountQueries
}

func NewAuthHandler(cmds commands.AuthCommands, q queries.AccountQueries) *AuthHandler {
	return &AuthHandler{cmds: cmds, q: q}
}

// @Summary Register
// @Description Create a student or vendor account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Registration"
// @Success 201 {object} resdto.AccountResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.cmds.Register(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.Abort(c, err, "Registration failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromAccountResult(result))
}

// @Summary Login
// @Description Exchange credentials for a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Credentials"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.cmds.Login(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.Abort(c, err, "Login failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromLoginResult(result))
}

// @Summary Current subject
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} queries.AccountView
// @Failure 401 {object} httperr.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	s, ok := subject(c)
	if !ok {
		return
	}
	view, err := h.q.Me(c.Request.Context(), s)
	if err != nil {
		httperr.Abort(c, err, "Failed to load profile")
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Student details
// @Description Profile plus active subscriptions with remaining days
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} queries.UserDetailsView
// @Router /users/me [get]
func (h *AuthHandler) UserDetails(c *gin.Context) {
	s, ok := subject(c)
	if !ok {
		return
	}
	view, err := h.q.UserDetails(c.Request.Context(), s.ID)
	if err != nil {
		httperr.Abort(c, err, "Failed to load user details")
		return
	}
	c.JSON(http.StatusOK, view)
}
