package api

import (
	"net/http"

	"tiffintime-api/internal/domain/account"
	"tiffintime-api/internal/handler/httperr"
	"tiffintime-api/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type requestError string

func (e requestError) Error() string { return string(e) }

const errNoSubject = requestError("no authenticated subject")

// subject is only called behind RequireAuth; a miss means the route was
// registered without it.
func subject(c *gin.Context) (account.Subject, bool) {
	s, ok := middleware.GetSubject(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoSubject, "Unauthorized", nil)
	}
	return s, ok
}

func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+name, nil)
		return uuid.Nil, false
	}
	return id, true
}

func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return false
	}
	return true
}
