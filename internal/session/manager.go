// AngelaMos | 2026
// manager.go

package session

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/lestrrat-go/jwx/v3/jwa"
	"github.com/lestrrat-go/jwx/v3/jws"

	"github.com/carterperez-dev/travel-marketplace/internal/config"
	"github.com/carterperez-dev/travel-marketplace/internal/core"
)

// Manager binds browsers to sessions. The cookie carries the session id
// wrapped in an HS256 JWS, so a forged or altered cookie fails
// verification before the store is consulted.
type Manager struct {
	store      Store
	secret     []byte
	cookieName string
	ttl        time.Duration
	secure     bool
	now        func() time.Time
}

func NewManager(store Store, cfg config.SessionConfig) *Manager {
	return &Manager{
		store:      store,
		secret:     []byte(cfg.Secret),
		cookieName: cfg.CookieName,
		ttl:        cfg.TTL,
		secure:     cfg.CookieSecure,
		now:        time.Now,
	}
}

// Start issues a fresh session for userID and sets the cookie. Any session
// the request already carried is destroyed first.
func (m *Manager) Start(
	w http.ResponseWriter,
	r *http.Request,
	userID int64,
) error {
	ctx := r.Context()

	if id, err := m.sessionID(r); err == nil {
		//nolint:errcheck // stale session removal is best-effort
		_ = m.store.Destroy(ctx, id)
	}

	id, err := core.NewSessionID()
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}

	now := m.now()
	data := Data{
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(m.ttl),
	}

	if err := m.store.Save(ctx, id, data); err != nil {
		return fmt.Errorf("start session: %w", err)
	}

	signed, err := m.sign(id)
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    signed,
		Path:     "/",
		Expires:  data.ExpiresAt,
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}

// Resolve returns the user bound to the request's session, or ErrNoSession.
func (m *Manager) Resolve(r *http.Request) (int64, error) {
	id, err := m.sessionID(r)
	if err != nil {
		return 0, err
	}

	data, err := m.store.Get(r.Context(), id)
	if err != nil {
		return 0, err
	}

	return data.UserID, nil
}

// End destroys the request's session, if any, and expires the cookie.
func (m *Manager) End(w http.ResponseWriter, r *http.Request) error {
	var destroyErr error
	if id, err := m.sessionID(r); err == nil {
		destroyErr = m.store.Destroy(r.Context(), id)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})

	if destroyErr != nil {
		return fmt.Errorf("end session: %w", destroyErr)
	}
	return nil
}

func (m *Manager) sessionID(r *http.Request) (string, error) {
	cookie, err := r.Cookie(m.cookieName)
	if err != nil || cookie.Value == "" {
		return "", ErrNoSession
	}
	return m.verify(cookie.Value)
}

func (m *Manager) sign(id string) (string, error) {
	signed, err := jws.Sign([]byte(id), jws.WithKey(jwa.HS256(), m.secret))
	if err != nil {
		return "", fmt.Errorf("sign session id: %w", err)
	}
	return string(signed), nil
}

func (m *Manager) verify(value string) (string, error) {
	payload, err := jws.Verify([]byte(value), jws.WithKey(jwa.HS256(), m.secret))
	if err != nil {
		return "", errors.Join(ErrNoSession, err)
	}
	return string(payload), nil
}

// IsNoSession reports whether err means the request is unauthenticated.
func IsNoSession(err error) bool {
	return errors.Is(err, ErrNoSession)
}
