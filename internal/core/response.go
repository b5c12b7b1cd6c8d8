// AngelaMos | 2026
// response.go

package core

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
)

type ErrorResponse struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	//nolint:errcheck // best-effort response write
	_ = json.NewEncoder(w).Encode(data)
}

func OK(w http.ResponseWriter, data any) {
	JSON(w, http.StatusOK, data)
}

func Created(w http.ResponseWriter, data any) {
	JSON(w, http.StatusCreated, data)
}

func Message(w http.ResponseWriter, status int, message string) {
	JSON(w, status, ErrorResponse{Message: message})
}

func JSONError(w http.ResponseWriter, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		JSON(w, appErr.StatusCode, ErrorResponse{
			Message: appErr.Message,
			Errors:  appErr.Errors,
		})
		return
	}

	Message(w, http.StatusInternalServerError, "Internal server error")
}

func BadRequest(w http.ResponseWriter, message string) {
	JSONError(w, BadRequestError(message))
}

// ValidationFailed writes a 400 whose errors list names every field that
// failed validation.
func ValidationFailed(w http.ResponseWriter, message string, err error) {
	appErr := BadRequestError(message)
	appErr.Errors = FieldErrors(err)
	JSONError(w, appErr)
}

func Unauthorized(w http.ResponseWriter, message string) {
	JSONError(w, UnauthorizedError(message))
}

func NotFound(w http.ResponseWriter, resource string) {
	JSONError(w, NotFoundError(resource))
}

func InternalServerError(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()
	SetSpanError(ctx, err)
	slog.ErrorContext(ctx, "request failed",
		"method", r.Method,
		"path", r.URL.Path,
		"request_id", RequestIDFromContext(ctx),
		"error", err,
	)
	Message(w, http.StatusInternalServerError, "Internal server error")
}
