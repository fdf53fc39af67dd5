package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sumire/portfolio-cms/internal/domain"
)

// errorBody is the JSON error shape returned by every failing endpoint.
type errorBody struct {
	Error string `json:"error"`
}

// HTTPErrorHandler is the global error handler: every error a handler or
// middleware returns is mapped to an HTTP status and a JSON error message
// here, so nothing writes statuses ad hoc.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status, msg := mapError(err)
	if jsonErr := c.JSON(status, errorBody{Error: msg}); jsonErr != nil {
		slog.Error("failed to send error response", "error", jsonErr)
	}
}

func mapError(err error) (int, string) {
	// echo's own HTTP errors (404 route misses, 413 from the body limit, ...)
	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		msg, _ := echoErr.Message.(string)
		if msg == "" {
			msg = http.StatusText(echoErr.Code)
		}
		return echoErr.Code, msg
	}

	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid credentials"
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, "Unauthorized: No token provided"
	case errors.Is(err, domain.ErrInvalidToken):
		return http.StatusForbidden, "Forbidden: Invalid token"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "Not found"
	case errors.Is(err, domain.ErrNoFile):
		return http.StatusBadRequest, "No file uploaded"
	case errors.Is(err, domain.ErrUnsupportedFileType):
		return http.StatusBadRequest, "Only images (JPEG, PNG, GIF) and PDF files are allowed"
	case errors.Is(err, domain.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge, "File exceeds the 10MB limit"
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, "Invalid request body"
	case errors.Is(err, domain.ErrCorruptStore), errors.Is(err, domain.ErrPersistence):
		slog.Error("store failure", "error", err)
		return http.StatusInternalServerError, "Failed to access content store"
	default:
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			return http.StatusBadRequest, validationErr.Error()
		}

		slog.Error("unhandled error", "error", err)
		return http.StatusInternalServerError, "An unexpected error occurred"
	}
}
