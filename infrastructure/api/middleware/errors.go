package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/helixml/catalog/domain/attribute"
	"github.com/helixml/catalog/infrastructure/api/jsonapi"
	"github.com/helixml/catalog/internal/database"
)

// Error sentinels for the HTTP layer.
var (
	ErrAuthentication = errors.New("authentication failed")
	ErrBadRequest     = errors.New("bad request")
)

// APIError carries an explicit HTTP status.
type APIError struct {
	code    int
	message string
	cause   error
}

// NewAPIError creates an APIError.
func NewAPIError(code int, message string, cause error) *APIError {
	return &APIError{code: code, message: message, cause: cause}
}

// Code returns the HTTP status code.
func (e *APIError) Code() int { return e.code }

// Message returns the client-facing message.
func (e *APIError) Message() string { return e.message }

func (e *APIError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("api error %d: %s: %v", e.code, e.message, e.cause)
	}
	return fmt.Sprintf("api error %d: %s", e.code, e.message)
}

// Unwrap returns the underlying cause.
func (e *APIError) Unwrap() error { return e.cause }

// BadRequest wraps err as a 400 response.
func BadRequest(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrBadRequest, fmt.Sprintf(format, args...))
}

// StatusFor maps an error to its HTTP status code.
func StatusFor(err error) int {
	var apiErr *APIError
	switch {
	case errors.As(err, &apiErr):
		return apiErr.Code()
	case errors.Is(err, ErrAuthentication):
		return http.StatusUnauthorized
	case errors.Is(err, ErrBadRequest), errors.Is(err, attribute.ErrUnsupportedEntity):
		return http.StatusBadRequest
	case errors.Is(err, attribute.ErrValueOwnership):
		return http.StatusUnprocessableEntity
	case errors.Is(err, attribute.ErrLinkNotFound), errors.Is(err, database.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// WriteError writes err as a JSON:API error document. Server errors are
// logged and their detail is withheld from the client.
func WriteError(w http.ResponseWriter, r *http.Request, err error, logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	status := StatusFor(err)

	detail := err.Error()
	if status >= http.StatusInternalServerError {
		logger.ErrorContext(r.Context(), "request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
		detail = "internal server error"
	}

	doc := jsonapi.NewErrorResponse(jsonapi.NewError(strconv.Itoa(status), http.StatusText(status), detail))
	WriteJSON(w, status, doc)
}

// WriteJSON writes v as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", jsonapi.MediaType)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
