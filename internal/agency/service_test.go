// AngelaMos | 2026
// service_test.go

package agency

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/travel-marketplace/internal/core"
	"github.com/carterperez-dev/travel-marketplace/internal/core/coretest"
	"github.com/carterperez-dev/travel-marketplace/internal/user"
)

type fixture struct {
	svc   *Service
	repo  Repository
	users *user.Service
	db    *core.Database
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	db := coretest.NewDatabase(t)
	users := user.NewService(user.NewRepository(db.DB))
	repo := NewRepository(db.DB)
	return fixture{svc: NewService(repo, users), repo: repo, users: users, db: db}
}

func (f fixture) newUser(t *testing.T, name string) int64 {
	t.Helper()
	u := &user.User{
		Username:     name,
		PasswordHash: "h",
		Email:        name + "@example.com",
		FullName:     name,
		Role:         user.RoleTraveler,
	}
	require.NoError(t, user.NewRepository(f.db.DB).Create(context.Background(), u))
	return u.ID
}

func ptr[T any](v T) *T { return &v }

func TestRegisterPromotesUser(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	uid := f.newUser(t, "ghumakkad")

	a, err := f.svc.Register(ctx, uid, CreateAgencyRequest{CompanyName: "Ghumakkad Tours"})
	require.NoError(t, err)

	assert.Equal(t, uid, a.UserID)
	assert.False(t, a.Verified)
	require.NotNil(t, a.Description)
	assert.Empty(t, *a.Description)

	role, err := f.users.RoleOf(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, user.RoleAgency, role)
}

func TestRegisterTwiceFails(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	uid := f.newUser(t, "ghumakkad")

	_, err := f.svc.Register(ctx, uid, CreateAgencyRequest{CompanyName: "One"})
	require.NoError(t, err)

	_, err = f.svc.Register(ctx, uid, CreateAgencyRequest{CompanyName: "Two"})
	assert.ErrorIs(t, err, ErrAgencyExists)
}

type failingPromoter struct{}

func (failingPromoter) PromoteToAgency(context.Context, int64) error {
	return errors.New("users table locked")
}

func TestRegisterKeepsProfileWhenPromotionFails(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	uid := f.newUser(t, "ghumakkad")
	svc := NewService(f.repo, failingPromoter{})

	_, err := svc.Register(ctx, uid, CreateAgencyRequest{CompanyName: "Half Done"})
	require.Error(t, err)

	a, err := f.repo.GetByUserID(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, "Half Done", a.CompanyName)

	role, err := f.users.RoleOf(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, user.RoleTraveler, role)
}

func TestUpsertMine(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	uid := f.newUser(t, "yatra")

	_, err := f.svc.UpsertMine(ctx, uid, UpdateAgencyRequest{Description: ptr("no name")})
	assert.ErrorIs(t, err, ErrCompanyNameMissing)

	created, err := f.svc.UpsertMine(ctx, uid, UpdateAgencyRequest{CompanyName: ptr("Yatra")})
	require.NoError(t, err)
	assert.Equal(t, "Yatra", created.CompanyName)

	updated, err := f.svc.UpsertMine(ctx, uid, UpdateAgencyRequest{PhoneNumber: ptr("+91 98000 00000")})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Yatra", updated.CompanyName)
	require.NotNil(t, updated.PhoneNumber)
	assert.Equal(t, "+91 98000 00000", *updated.PhoneNumber)
}

func TestGetByUserMissing(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.GetByUser(context.Background(), f.newUser(t, "nobody"))
	assert.ErrorIs(t, err, core.ErrNotFound)

	list, err := f.svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.NotNil(t, list)
}
