package http

import (
	"errors"
	"net/http"

	"comanda/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the JSON error payload returned by every endpoint.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// respondError maps domain errors to HTTP status codes:
//
//	validation errors              400
//	unknown object                 404
//	missing payment on hand-over   402
//	conflicts with current state   409
//
// Anything else is reported as a 500 with a generic message so internal
// details never leak to clients.
func respondError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrPaymentRequired):
		return ctx.JSON(http.StatusPaymentRequired, ErrorResponse{
			Code:    http.StatusPaymentRequired,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrAlreadyPaid),
		errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrItemUnavailable):
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired):
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "internal server error",
		})
	}
}

// respondBadRequest reports a malformed request payload or parameter.
func respondBadRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// respondForbidden reports an actor whose role lacks the capability.
func respondForbidden(ctx echo.Context) error {
	return ctx.JSON(http.StatusForbidden, ErrorResponse{
		Code:    http.StatusForbidden,
		Message: "role does not allow this operation",
	})
}
