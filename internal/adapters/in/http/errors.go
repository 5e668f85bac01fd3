package http

import (
	"errors"
	"net/http"
	"strings"

	"waterflow/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// writeError renders an application error as the matching HTTP status
// with an ErrorResponse body. Unclassified errors become a generic 500
// so internal details never leak to callers.
func writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrUnauthorized):
		return c.JSON(http.StatusUnauthorized, errorBody(err))
	case errors.Is(err, errs.ErrObjectNotFound):
		return c.JSON(http.StatusNotFound, errorBody(err))
	case errors.Is(err, errs.ErrConflict):
		return c.JSON(http.StatusConflict, errorBody(err))
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return c.JSON(http.StatusBadRequest, errorBody(err))
	default:
		c.Logger().Error(err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: "internal server error",
		})
	}
}

// errorBody flattens a (possibly joined) validation error into the
// response shape. Joined errors render one message per line.
func errorBody(err error) ErrorResponse {
	lines := strings.Split(err.Error(), "\n")
	if len(lines) == 1 {
		return ErrorResponse{Message: lines[0]}
	}
	return ErrorResponse{Message: "validation failed", Errors: lines}
}

func writeBadRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{Message: message})
}
