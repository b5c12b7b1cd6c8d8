// AngelaMos | 2026
// service_test.go

package auth

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/travel-marketplace/internal/core"
)

type memoryUsers struct {
	byID   map[int64]*UserInfo
	nextID int64
}

func newMemoryUsers() *memoryUsers {
	return &memoryUsers{byID: map[int64]*UserInfo{}}
}

func (m *memoryUsers) GetByID(_ context.Context, id int64) (*UserInfo, error) {
	if u, ok := m.byID[id]; ok {
		return u, nil
	}
	return nil, core.ErrNotFound
}

func (m *memoryUsers) GetByLogin(_ context.Context, login string) (*UserInfo, error) {
	for _, u := range m.byID {
		if u.Username == login || u.Email == strings.ToLower(login) {
			return u, nil
		}
	}
	return nil, core.ErrNotFound
}

func (m *memoryUsers) UsernameExists(_ context.Context, username string) (bool, error) {
	for _, u := range m.byID {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (m *memoryUsers) EmailExists(_ context.Context, email string) (bool, error) {
	for _, u := range m.byID {
		if u.Email == strings.ToLower(email) {
			return true, nil
		}
	}
	return false, nil
}

func (m *memoryUsers) Create(_ context.Context, nu NewUser) (*UserInfo, error) {
	m.nextID++
	u := &UserInfo{
		ID:           m.nextID,
		Username:     nu.Username,
		Email:        strings.ToLower(nu.Email),
		FullName:     nu.FullName,
		Role:         nu.Role,
		PasswordHash: nu.PasswordHash,
		CreatedAt:    time.Now(),
	}
	m.byID[u.ID] = u
	return u, nil
}

func (m *memoryUsers) UpdatePassword(_ context.Context, id int64, hash string) error {
	u, ok := m.byID[id]
	if !ok {
		return core.ErrNotFound
	}
	u.PasswordHash = hash
	return nil
}

func register(t *testing.T, svc *Service, username, email string) *UserInfo {
	t.Helper()
	u, err := svc.Register(context.Background(), RegisterRequest{
		Username: username,
		Password: "hunter22",
		Email:    email,
		FullName: "Test User",
	})
	require.NoError(t, err)
	return u
}

func TestRegisterHashesPassword(t *testing.T) {
	svc := NewService(newMemoryUsers())

	u := register(t, svc, "meera", "meera@example.com")

	assert.NotEqual(t, "hunter22", u.PasswordHash)
	assert.True(t, strings.HasPrefix(u.PasswordHash, "$argon2id$"))
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	svc := NewService(newMemoryUsers())
	register(t, svc, "meera", "meera@example.com")

	tests := []struct {
		name     string
		username string
		email    string
	}{
		{"same username", "meera", "other@example.com"},
		{"same email", "other", "MEERA@example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), RegisterRequest{
				Username: tt.username,
				Password: "hunter22",
				Email:    tt.email,
				FullName: "Dup",
			})
			assert.ErrorIs(t, err, ErrDuplicateUser)
		})
	}
}

func TestLogin(t *testing.T) {
	svc := NewService(newMemoryUsers())
	created := register(t, svc, "meera", "meera@example.com")
	ctx := context.Background()

	u, err := svc.Login(ctx, LoginRequest{Username: "meera", Password: "hunter22"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, u.ID)

	u, err = svc.Login(ctx, LoginRequest{Username: "meera@example.com", Password: "hunter22"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, u.ID)

	_, err = svc.Login(ctx, LoginRequest{Username: "meera", Password: "wrong-pass"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, LoginRequest{Username: "ghost", Password: "hunter22"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestCurrentRequiresUser(t *testing.T) {
	svc := NewService(newMemoryUsers())

	_, err := svc.Current(context.Background(), 0)
	assert.ErrorIs(t, err, core.ErrUnauthorized)
}
