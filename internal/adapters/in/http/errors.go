package http

import (
	"errors"
	"log/slog"
	"net/http"

	"school/internal/generated/servers"
	"school/internal/pkg/command"
	"school/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusOf maps a use case error to an HTTP status.
func statusOf(err error) int {
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &httpErr):
		return httpErr.Code
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrBusinessRuleViolated), errors.Is(err, errs.ErrObjectAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, command.ErrInputIsRequired),
		errors.Is(err, command.ErrInputTypeMismatch):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// NewErrorHandler renders every error as servers.Error. Messages of
// internal errors are not exposed.
func NewErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := statusOf(err)
		message := err.Error()
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			if m, ok := httpErr.Message.(string); ok {
				message = m
			}
		}
		if status == http.StatusInternalServerError {
			logger.ErrorContext(c.Request().Context(), "Request failed",
				"method", c.Request().Method, "path", c.Path(), "error", err)
			message = http.StatusText(status)
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(status)
		} else {
			writeErr = c.JSON(status, servers.Error{Code: status, Message: message})
		}
		if writeErr != nil {
			logger.WarnContext(c.Request().Context(), "Failed to write error response", "error", writeErr)
		}
	}
}
