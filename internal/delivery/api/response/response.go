// Package response renders the JSON envelopes returned by every endpoint.
package response

import (
	"net/http"
	"strconv"

	deliverycontext "holocron/internal/delivery/context"
	domainerrors "holocron/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	resultOK    = "OK"
	resultError = "ERROR"
)

// Envelope is the header shared by all successful responses.
// Status is the HTTP status rendered as a string, which existing clients expect.
type Envelope struct {
	Response string `json:"response"`
	Status   string `json:"status"`
}

// DataResponse wraps a single payload.
type DataResponse struct {
	Envelope
	Data any `json:"data"`
}

// DescriptionResponse acknowledges a mutation.
type DescriptionResponse struct {
	Envelope
	Description string `json:"description"`
}

// FavoritesResponse lists a user's favorites at the top level of the envelope.
type FavoritesResponse struct {
	Envelope
	FavoriteCharacters any `json:"favorite_characters"`
	FavoritePlanets    any `json:"favorite_planets"`
}

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Response  string `json:"response"`
	Status    int    `json:"status"`
	Message   string `json:"message"`           // User-friendly error message
	Code      string `json:"code"`              // Machine-readable error code, e.g., "VALIDATION_FAILED"
	Details   any    `json:"details,omitempty"` // Additional error context (only for 4xx errors)
	RequestID string `json:"request_id"`        // Request tracking ID
}

func envelope(statusCode int) Envelope {
	return Envelope{
		Response: resultOK,
		Status:   strconv.Itoa(statusCode),
	}
}

// Success returns a successful response carrying data
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, DataResponse{
		Envelope: envelope(statusCode),
		Data:     data,
	})
}

// Description returns a successful response carrying a human-readable description
func Description(c echo.Context, statusCode int, description string) error {
	return c.JSON(statusCode, DescriptionResponse{
		Envelope:    envelope(statusCode),
		Description: description,
	})
}

// Favorites returns the favorite characters and planets of a user
func Favorites(c echo.Context, statusCode int, characters, planets any) error {
	return c.JSON(statusCode, FavoritesResponse{
		Envelope:           envelope(statusCode),
		FavoriteCharacters: characters,
		FavoritePlanets:    planets,
	})
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	// Details should not be included for 5xx errors or authentication/authorization errors
	if statusCode >= 500 || statusCode == 401 || statusCode == 403 {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Response:  resultError,
		Status:    statusCode,
		Message:   message,
		Code:      errorCode,
		Details:   details,
		RequestID: deliverycontext.GetRequestID(c),
	})
}

// BadRequest returns a 400 error
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// BadRequestWithDetails returns a 400 error with details
func BadRequestWithDetails(c echo.Context, errorCode string, message string, details any) error {
	return Error(c, http.StatusBadRequest, errorCode, message, details)
}

// Unauthorized returns a 401 error
func Unauthorized(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, nil)
}

// NotFound returns a 404 error
func NotFound(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusNotFound, errorCode, message, nil)
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}

// HandleAppError renders an AppError directly. Other errors are passed on to the
// echo HTTPErrorHandler, which logs them and hides their details.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && appErr.HTTPCode() < http.StatusInternalServerError {
		return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), nil)
	}

	return errors.WithStack(err)
}
