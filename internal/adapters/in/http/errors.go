package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"foodorder/internal/pkg/errs"
)

// errorResponse is the JSON body returned for every failed request.
type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// writeError translates core errors into HTTP responses. The core error
// taxonomy is the contract here: handlers never pick status codes
// themselves.
func writeError(ctx echo.Context, err error) error {
	status := statusFor(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		// Internal details stay in the logs.
		message = "internal server error"
		ctx.Logger().Error(err)
	}

	return ctx.JSON(status, errorResponse{
		Code:    status,
		Message: message,
	})
}

func statusFor(err error) int {
	var (
		notFound   *errs.ObjectNotFoundError
		invalid    *errs.ValueIsInvalidError
		required   *errs.ValueIsRequiredError
		outOfRange *errs.ValueIsOutOfRangeError
		transition *errs.InvalidTransitionError
		invalidOp  *errs.InvalidOperationError
		denied     *errs.PermissionDeniedError
		conflict   *errs.ConflictError
		exhausted  *errs.ResourceExhaustedError
		dependency *errs.DependencyFailureError
	)

	switch {
	case errors.As(err, &invalid), errors.As(err, &required), errors.As(err, &outOfRange):
		return http.StatusBadRequest
	case errors.As(err, &denied):
		return http.StatusForbidden
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &conflict), errors.As(err, &transition):
		return http.StatusConflict
	case errors.As(err, &invalidOp):
		return http.StatusUnprocessableEntity
	case errors.As(err, &exhausted):
		return http.StatusServiceUnavailable
	case errors.As(err, &dependency):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// badRequest reports a malformed request body or parameter.
func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, errorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
