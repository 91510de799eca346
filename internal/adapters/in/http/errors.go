package http

import (
	"errors"
	"net/http"

	"checkout/internal/core/domain/model/checkout"
	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/generated/servers"
	"checkout/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusFor maps use case errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, checkout.ErrValidationFailed):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrVersionIsInvalid),
		errors.Is(err, checkout.ErrNotOnSummaryStep),
		errors.Is(err, checkout.ErrAlreadyFinalized):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func (s *Server) writeError(ctx echo.Context, err error) error {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	status := statusFor(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "Request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err,
		)
		message = http.StatusText(http.StatusInternalServerError)
	}

	return ctx.JSON(status, servers.Error{
		Code:    int32(status),
		Message: message,
	})
}

// writeErrorWithCheckout answers a failed step transition. Field errors are
// part of the session state, so a validation failure returns the session
// with them rather than an Error body.
func (s *Server) writeErrorWithCheckout(ctx echo.Context, id kernel.UUID, err error) error {
	var validationErr *checkout.ValidationError
	if !errors.As(err, &validationErr) {
		return s.writeError(ctx, err)
	}

	view, viewErr := s.view(ctx, id)
	if viewErr != nil {
		return s.writeError(ctx, viewErr)
	}

	return ctx.JSON(http.StatusUnprocessableEntity, view)
}
