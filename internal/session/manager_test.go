// AngelaMos | 2026
// manager_test.go

package session

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/travel-marketplace/internal/config"
)

func newTestManager() (*Manager, *MemoryStore) {
	store := NewMemoryStore(time.Hour)
	return NewManager(store, config.SessionConfig{
		CookieName: "travel.sid",
		Secret:     "test-secret",
		TTL:        7 * 24 * time.Hour,
	}), store
}

func startSession(t *testing.T, m *Manager, userID int64) *http.Cookie {
	t.Helper()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/login", nil)
	require.NoError(t, m.Start(rec, req, userID))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	return cookies[0]
}

func TestManagerStartAndResolve(t *testing.T) {
	m, _ := newTestManager()
	cookie := startSession(t, m, 42)

	assert.Equal(t, "travel.sid", cookie.Name)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.Equal(t, int((7 * 24 * time.Hour).Seconds()), cookie.MaxAge)

	req := httptest.NewRequest(http.MethodGet, "/api/user", nil)
	req.AddCookie(cookie)

	userID, err := m.Resolve(req)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestManagerRejectsTamperedCookie(t *testing.T) {
	m, _ := newTestManager()
	cookie := startSession(t, m, 42)

	parts := strings.Split(cookie.Value, ".")
	require.Len(t, parts, 3)
	parts[1] = "Zm9yZ2Vk"
	cookie.Value = strings.Join(parts, ".")

	req := httptest.NewRequest(http.MethodGet, "/api/user", nil)
	req.AddCookie(cookie)

	_, err := m.Resolve(req)
	assert.True(t, IsNoSession(err))
}

func TestManagerRejectsOtherSecret(t *testing.T) {
	m, _ := newTestManager()
	cookie := startSession(t, m, 42)

	other := NewManager(NewMemoryStore(time.Hour), config.SessionConfig{
		CookieName: "travel.sid",
		Secret:     "different",
		TTL:        time.Hour,
	})

	req := httptest.NewRequest(http.MethodGet, "/api/user", nil)
	req.AddCookie(cookie)

	_, err := other.Resolve(req)
	assert.True(t, IsNoSession(err))
}

func TestManagerResolveWithoutCookie(t *testing.T) {
	m, _ := newTestManager()
	req := httptest.NewRequest(http.MethodGet, "/api/user", nil)

	_, err := m.Resolve(req)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestManagerEnd(t *testing.T) {
	m, store := newTestManager()
	cookie := startSession(t, m, 7)
	require.Equal(t, 1, store.Len())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/logout", nil)
	req.AddCookie(cookie)
	require.NoError(t, m.End(rec, req))

	assert.Zero(t, store.Len())
	cleared := rec.Result().Cookies()
	require.Len(t, cleared, 1)
	assert.Equal(t, -1, cleared[0].MaxAge)

	req = httptest.NewRequest(http.MethodGet, "/api/user", nil)
	req.AddCookie(cookie)
	_, err := m.Resolve(req)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestManagerStartReplacesExistingSession(t *testing.T) {
	m, store := newTestManager()
	first := startSession(t, m, 1)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/login", nil)
	req.AddCookie(first)
	require.NoError(t, m.Start(rec, req, 2))

	assert.Equal(t, 1, store.Len())
}
