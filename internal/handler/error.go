package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ausawards/admin-api/internal/apperr"
)

// errorResponse is the single error payload shape every failure kind
// shares at the boundary.
type errorResponse struct {
	Code string `json:"code"`
}

// ErrorHandler maps errors escaping handlers and middleware onto the
// fixed status/code pairs of the API. It is registered as the Echo
// HTTPErrorHandler. Internal failures are logged where they are
// detected; here they only become an opaque 500 so no underlying cause
// leaks to the caller.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status, code := classify(err)
	if status == http.StatusInternalServerError {
		log.Printf("http: internal error on %s %s: %v", c.Request().Method, c.Path(), err)
	}
	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(status)
		return
	}
	_ = c.JSON(status, errorResponse{Code: code})
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, apperr.ErrUnauthenticated):
		return http.StatusUnauthorized, apperr.CodeUnauthenticated
	case errors.Is(err, apperr.ErrUnauthorized):
		return http.StatusForbidden, apperr.CodeUnauthorized
	case errors.Is(err, apperr.ErrNotFound):
		return http.StatusNotFound, apperr.CodeNotFound
	case errors.Is(err, apperr.ErrInvalidParameters):
		return http.StatusBadRequest, apperr.CodeInvalidParameters
	}

	// Echo's own errors: route misses, method mismatches and bind
	// failures arrive as *echo.HTTPError.
	var he *echo.HTTPError
	if errors.As(err, &he) {
		switch he.Code {
		case http.StatusBadRequest:
			return http.StatusBadRequest, apperr.CodeInvalidParameters
		case http.StatusUnauthorized:
			return http.StatusUnauthorized, apperr.CodeUnauthenticated
		case http.StatusForbidden:
			return http.StatusForbidden, apperr.CodeUnauthorized
		case http.StatusNotFound, http.StatusMethodNotAllowed:
			return http.StatusNotFound, apperr.CodeNotFound
		}
	}
	return http.StatusInternalServerError, apperr.CodeUnknown
}
