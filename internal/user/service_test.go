// AngelaMos | 2026
// service_test.go

package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/travel-marketplace/internal/auth"
	"github.com/carterperez-dev/travel-marketplace/internal/core"
	"github.com/carterperez-dev/travel-marketplace/internal/core/coretest"
)

func newService(t *testing.T) *Service {
	t.Helper()
	return NewService(NewRepository(coretest.NewDatabase(t).DB))
}

func TestCreateDefaultsToTraveler(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	u, err := svc.Create(ctx, auth.NewUser{
		Username:     "asha",
		Email:        "Asha@Example.com",
		FullName:     "Asha Rao",
		PasswordHash: "hash",
	})
	require.NoError(t, err)

	assert.NotZero(t, u.ID)
	assert.Equal(t, RoleTraveler, u.Role)
	assert.Equal(t, "asha@example.com", u.Email)
	assert.False(t, u.CreatedAt.IsZero())
}

func TestCreateDuplicateUsername(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	nu := auth.NewUser{Username: "asha", Email: "a@example.com", FullName: "A", PasswordHash: "h"}
	_, err := svc.Create(ctx, nu)
	require.NoError(t, err)

	nu.Email = "b@example.com"
	_, err = svc.Create(ctx, nu)
	assert.ErrorIs(t, err, core.ErrDuplicateKey)
}

func TestGetByLoginAcceptsUsernameOrEmail(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	created, err := svc.Create(ctx, auth.NewUser{
		Username: "ravi", Email: "ravi@example.com", FullName: "Ravi", PasswordHash: "h",
	})
	require.NoError(t, err)

	byName, err := svc.GetByLogin(ctx, "ravi")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byName.ID)

	byEmail, err := svc.GetByLogin(ctx, "RAVI@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)

	_, err = svc.GetByLogin(ctx, "nobody")
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestPromoteToAgency(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	u, err := svc.Create(ctx, auth.NewUser{
		Username: "tours", Email: "tours@example.com", FullName: "Tours", PasswordHash: "h",
	})
	require.NoError(t, err)

	require.NoError(t, svc.PromoteToAgency(ctx, u.ID))

	role, err := svc.RoleOf(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, RoleAgency, role)

	assert.ErrorIs(t, svc.PromoteToAgency(ctx, 999), core.ErrNotFound)
}

func TestSummaryOmitsPassword(t *testing.T) {
	out := ToSummaryList([]User{{ID: 1, Username: "a", Email: "a@x.io", PasswordHash: "secret"}})

	require.Len(t, out, 1)
	assert.Equal(t, Summary{ID: 1, Username: "a", Email: "a@x.io"}, out[0])
	assert.Empty(t, ToSummaryList(nil))
	assert.NotNil(t, ToSummaryList(nil))
}
