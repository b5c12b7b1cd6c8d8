// AngelaMos | 2026
// store.go

package session

import (
	"context"
	"errors"
	"time"
)

var ErrNoSession = errors.New("no session")

// Data is what the server remembers about a logged-in browser.
type Data struct {
	UserID    int64     `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func (d *Data) Expired(now time.Time) bool {
	return !now.Before(d.ExpiresAt)
}

// Store keeps session data keyed by session id. Get returns ErrNoSession
// for unknown or expired ids.
type Store interface {
	Get(ctx context.Context, id string) (*Data, error)
	Save(ctx context.Context, id string, data Data) error
	Destroy(ctx context.Context, id string) error
}
