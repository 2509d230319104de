package http

import (
	"errors"
	"net/http"

	"inatpos/internal/core/application/usecases/commands"
	"inatpos/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the JSON body of every non-2xx answer.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func errorJSON(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, ErrorResponse{Code: code, Message: message})
}

// writeError maps application errors to HTTP status codes: validation
// failures are the client's fault, not-found and conflict carry their own
// statuses, and anything else is a server error with the detail kept out
// of the response.
func writeError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, commands.ErrInvalidCredentials):
		return errorJSON(ctx, http.StatusUnauthorized, err.Error())

	case errors.Is(err, errs.ErrObjectNotFound):
		return errorJSON(ctx, http.StatusNotFound, err.Error())

	case errors.Is(err, errs.ErrConflict), errors.Is(err, errs.ErrVersionConflict):
		return errorJSON(ctx, http.StatusConflict, err.Error())

	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return errorJSON(ctx, http.StatusBadRequest, err.Error())

	default:
		return errorJSON(ctx, http.StatusInternalServerError, "Internal server error")
	}
}
