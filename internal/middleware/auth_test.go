// AngelaMos | 2026
// auth_test.go

package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/carterperez-dev/travel-marketplace/internal/core"
)

type fakeSessions struct {
	userID int64
	err    error
}

func (f fakeSessions) Resolve(*http.Request) (int64, error) {
	return f.userID, f.err
}

type fakeRoles map[int64]string

func (f fakeRoles) RoleOf(_ context.Context, id int64) (string, error) {
	role, ok := f[id]
	if !ok {
		return "", core.ErrNotFound
	}
	return role, nil
}

func echoCaller(w http.ResponseWriter, r *http.Request) {
	core.OK(w, map[string]any{
		"id":   GetUserID(r.Context()),
		"role": GetUserRole(r.Context()),
	})
}

func serve(h http.Handler) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	return rec
}

func TestAuthenticatorAttachesCaller(t *testing.T) {
	h := Authenticator(fakeSessions{userID: 3}, fakeRoles{3: "agency"})(
		http.HandlerFunc(echoCaller),
	)

	rec := serve(h)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":3,"role":"agency"}`, rec.Body.String())
}

func TestAuthenticatorWithoutSessionPassesThrough(t *testing.T) {
	h := Authenticator(fakeSessions{err: errors.New("none")}, fakeRoles{})(
		http.HandlerFunc(echoCaller),
	)

	rec := serve(h)
	assert.JSONEq(t, `{"id":0,"role":""}`, rec.Body.String())
}

func TestAuthenticatorUnknownUserIsAnonymous(t *testing.T) {
	h := Authenticator(fakeSessions{userID: 99}, fakeRoles{})(
		http.HandlerFunc(echoCaller),
	)

	rec := serve(h)
	assert.JSONEq(t, `{"id":0,"role":""}`, rec.Body.String())
}

func TestRequireSession(t *testing.T) {
	h := RequireSession(http.HandlerFunc(echoCaller))

	rec := serve(h)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"message":"Unauthorized"}`, rec.Body.String())
}

func TestRequireRoleAnswers401ForWrongRole(t *testing.T) {
	gate := RequireRole("agency")(http.HandlerFunc(echoCaller))

	tests := []struct {
		name   string
		ctx    context.Context
		status int
	}{
		{"anonymous", context.Background(), http.StatusUnauthorized},
		{"traveler", WithUser(context.Background(), 1, "traveler"), http.StatusUnauthorized},
		{"agency", WithUser(context.Background(), 2, "agency"), http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(tt.ctx)
			gate.ServeHTTP(rec, req)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
