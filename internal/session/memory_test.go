// AngelaMos | 2026
// memory_test.go

package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreGetSaveDestroy(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(time.Hour)
	now := time.Now()

	require.NoError(t, s.Save(ctx, "abc", Data{UserID: 4, ExpiresAt: now.Add(time.Hour)}))

	got, err := s.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, int64(4), got.UserID)

	require.NoError(t, s.Destroy(ctx, "abc"))
	_, err = s.Get(ctx, "abc")
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestMemoryStoreExpiredOnGet(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(time.Hour)
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return base }

	require.NoError(t, s.Save(ctx, "old", Data{UserID: 1, ExpiresAt: base.Add(time.Minute)}))

	s.now = func() time.Time { return base.Add(2 * time.Minute) }
	_, err := s.Get(ctx, "old")
	assert.ErrorIs(t, err, ErrNoSession)
	assert.Zero(t, s.Len())
}

func TestMemoryStoreSweep(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(time.Hour)
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return base }

	require.NoError(t, s.Save(ctx, "a", Data{UserID: 1, ExpiresAt: base.Add(time.Hour)}))
	require.NoError(t, s.Save(ctx, "b", Data{UserID: 2, ExpiresAt: base.Add(48 * time.Hour)}))
	require.NoError(t, s.Save(ctx, "c", Data{UserID: 3, ExpiresAt: base.Add(-time.Second)}))

	assert.Equal(t, 1, s.Sweep())
	assert.Equal(t, 2, s.Len())

	s.now = func() time.Time { return base.Add(25 * time.Hour) }
	assert.Equal(t, 1, s.Sweep())
	assert.Equal(t, 1, s.Len())
}

func TestMemoryStoreRunStopsOnCancel(t *testing.T) {
	s := NewMemoryStore(time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
