package httperr

import (
	"errors"
	"net/http"

	"tiffintime-api/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		err = errors.New(msg)
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

var classStatus = []struct {
	class  error
	status int
}{
	{errs.ErrValidation, http.StatusBadRequest},
	{errs.ErrUnauthenticated, http.StatusUnauthorized},
	{errs.ErrForbidden, http.StatusForbidden},
	{errs.ErrNotFound, http.StatusNotFound},
	{errs.ErrConflict, http.StatusConflict},
	{errs.ErrUnsupportedMedia, http.StatusUnsupportedMediaType},
	{errs.ErrUnavailable, http.StatusServiceUnavailable},
	{errs.ErrUpstream, http.StatusBadGateway},
}

// StatusOf maps an error class onto a status code; unclassified errors are 500.
func StatusOf(err error) int {
	for _, cs := range classStatus {
		if errors.Is(err, cs.class) {
			return cs.status
		}
	}
	return http.StatusInternalServerError
}

// Abort responds with the status of err's class. Client-facing text is the
// classified sentinel's message, or fallback when err carries none.
func Abort(c *gin.Context, err error, fallback string) {
	status := StatusOf(err)
	msg := fallback
	if status != http.StatusInternalServerError {
		if public, ok := errs.PublicMessage(err); ok {
			msg = public
		}
	}
	AbortWithError(c, status, err, msg, nil)
}
