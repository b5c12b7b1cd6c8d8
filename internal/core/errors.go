// AngelaMos | 2026
// errors.go

package core

import (
	"errors"
	"net/http"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

var (
	ErrNotFound     = errors.New("resource not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrDuplicateKey = errors.New("duplicate key")
	ErrConstraint   = errors.New("constraint violation")
	ErrInvalidInput = errors.New("invalid input")
)

// AppError carries the HTTP status and client-facing message for an error.
type AppError struct {
	Err        error
	Message    string
	StatusCode int
	Errors     []FieldError
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(err error, message string, statusCode int) *AppError {
	return &AppError{
		Err:        err,
		Message:    message,
		StatusCode: statusCode,
	}
}

func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

func UnauthorizedError(message string) *AppError {
	if message == "" {
		message = "Unauthorized"
	}
	return NewAppError(ErrUnauthorized, message, http.StatusUnauthorized)
}

func NotFoundError(resource string) *AppError {
	return NewAppError(ErrNotFound, resource+" not found", http.StatusNotFound)
}

func BadRequestError(message string) *AppError {
	return NewAppError(ErrInvalidInput, message, http.StatusBadRequest)
}

// ClassifyDBError maps driver-specific constraint failures from either
// PostgreSQL or SQLite onto ErrDuplicateKey and ErrConstraint.
func ClassifyDBError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return ErrDuplicateKey
		case "23503", "23502", "23514":
			return ErrConstraint
		}
		return err
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		switch liteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return ErrDuplicateKey
		case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY,
			sqlite3.SQLITE_CONSTRAINT_NOTNULL,
			sqlite3.SQLITE_CONSTRAINT_CHECK:
			return ErrConstraint
		}
		if liteErr.Code()&0xff == sqlite3.SQLITE_CONSTRAINT {
			if strings.Contains(liteErr.Error(), "UNIQUE constraint failed") {
				return ErrDuplicateKey
			}
			return ErrConstraint
		}
	}

	return err
}

func IsConstraintError(err error) bool {
	return errors.Is(err, ErrDuplicateKey) || errors.Is(err, ErrConstraint)
}
