package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// StatusCode maps an error returned by a use case to an HTTP status.
func StatusCode(err error) int {
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &httpErr):
		return httpErr.Code
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrTransitionIsInvalid),
		errors.Is(err, services.ErrOrderIsAlreadyRegistered):
		return http.StatusConflict
	case errors.Is(err, errs.ErrPersistence):
		return http.StatusServiceUnavailable
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, order.ErrInvalidQuantity),
		errors.Is(err, order.ErrInvalidTableNumber),
		errors.Is(err, order.ErrEmptyOrder):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// ErrorHandler renders errors as Error bodies. Server-side failures are
// logged and their details are not sent to the client.
func ErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	logger = logger.With("component", "http")

	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := StatusCode(err)
		message := err.Error()

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			message = fmt.Sprint(httpErr.Message)
		}

		switch code {
		case http.StatusInternalServerError:
			logger.ErrorContext(c.Request().Context(), "request failed", "error", err)
			message = http.StatusText(code)
		case http.StatusServiceUnavailable:
			logger.ErrorContext(c.Request().Context(), "storage failed", "error", err)
			message = "Storage is unavailable"
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(code)
		} else {
			writeErr = c.JSON(code, Error{Code: code, Message: message})
		}
		if writeErr != nil {
			logger.ErrorContext(c.Request().Context(), "write error response", "error", writeErr)
		}
	}
}
