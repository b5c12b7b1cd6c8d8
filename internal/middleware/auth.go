// AngelaMos | 2026
// auth.go

package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/carterperez-dev/travel-marketplace/internal/core"
)

type contextKey string

const (
	UserIDKey   contextKey = "user_id"
	UserRoleKey contextKey = "user_role"
)

// SessionResolver maps a request to the user id its session is bound to.
type SessionResolver interface {
	Resolve(r *http.Request) (int64, error)
}

// RoleLoader reads a user's current role. It is consulted on every
// request so a role change takes effect without a new login.
type RoleLoader interface {
	RoleOf(ctx context.Context, userID int64) (string, error)
}

// Authenticator attaches the caller's id and role to the context when the
// request carries a valid session. Requests without one pass through
// unauthenticated; route groups decide whether that is acceptable.
func Authenticator(
	sessions SessionResolver,
	roles RoleLoader,
) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, err := sessions.Resolve(r)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			role, err := roles.RoleOf(r.Context(), userID)
			if errors.Is(err, core.ErrNotFound) {
				next.ServeHTTP(w, r)
				return
			}
			if err != nil {
				slog.ErrorContext(r.Context(), "load session user",
					"user_id", userID,
					"error", err,
				)
				core.InternalServerError(w, r, err)
				return
			}

			trace.SpanFromContext(r.Context()).SetAttributes(
				attribute.Int64("user.id", userID),
				attribute.String("user.role", role),
			)

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), userID, role)))
		})
	}
}

func RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !IsAuthenticated(r.Context()) {
			core.Unauthorized(w, "")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireRole answers 401 both for anonymous callers and for callers whose
// role is not listed.
func RequireRole(roles ...string) func(http.Handler) http.Handler {
	roleSet := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		roleSet[role] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := roleSet[GetUserRole(r.Context())]; !ok {
				core.Unauthorized(w, "")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func GetUserID(ctx context.Context) int64 {
	if id, ok := ctx.Value(UserIDKey).(int64); ok {
		return id
	}
	return 0
}

func GetUserRole(ctx context.Context) string {
	if role, ok := ctx.Value(UserRoleKey).(string); ok {
		return role
	}
	return ""
}

func IsAuthenticated(ctx context.Context) bool {
	return GetUserID(ctx) != 0
}

func WithUser(ctx context.Context, userID int64, role string) context.Context {
	ctx = context.WithValue(ctx, UserIDKey, userID)
	return context.WithValue(ctx, UserRoleKey, role)
}
