// AngelaMos | 2026
// service_test.go

package travelpackage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/travel-marketplace/internal/agency"
	"github.com/carterperez-dev/travel-marketplace/internal/core"
	"github.com/carterperez-dev/travel-marketplace/internal/core/coretest"
	"github.com/carterperez-dev/travel-marketplace/internal/preference"
	"github.com/carterperez-dev/travel-marketplace/internal/user"
)

type fixture struct {
	svc         *Service
	agencies    *agency.Service
	preferences *preference.Service
	userRepo    user.Repository
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	db := coretest.NewDatabase(t)
	userRepo := user.NewRepository(db.DB)
	users := user.NewService(userRepo)
	agencies := agency.NewService(agency.NewRepository(db.DB), users)
	preferences := preference.NewService(preference.NewRepository(db.DB))

	return fixture{
		svc:         NewService(NewRepository(db.DB), agencies, preferences),
		agencies:    agencies,
		preferences: preferences,
		userRepo:    userRepo,
	}
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
	require.NoError(t, f.userRepo.Create(context.Background(), u))
	return u.ID
}

func (f fixture) newAgency(t *testing.T, name string) (userID, agencyID int64) {
	t.Helper()
	userID = f.newUser(t, name)
	a, err := f.agencies.Register(context.Background(), userID, agency.CreateAgencyRequest{
		CompanyName: name + " Travels",
	})
	require.NoError(t, err)
	return userID, a.ID
}

func ptr[T any](v T) *T { return &v }

func TestCreateUsesCallerAgency(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	_, otherAgency := f.newAgency(t, "other")
	uid, mine := f.newAgency(t, "mine")

	p, err := f.svc.Create(ctx, uid, CreatePackageRequest{
		AgencyID: ptr(otherAgency),
		Title:    "Goa Getaway",
		Price:    ptr[int64](42000),
	})
	require.NoError(t, err)

	assert.Equal(t, mine, p.AgencyID)
	assert.True(t, p.PricePerPerson)
	assert.Equal(t, TypeStandard, p.PackageType)
	assert.Equal(t, int64(42000), p.Price)
}

func TestCreateWithoutAgencyProfile(t *testing.T) {
	f := newFixture(t)
	uid := f.newUser(t, "loner")

	_, err := f.svc.Create(context.Background(), uid, CreatePackageRequest{
		Title: "Nothing",
		Price: ptr[int64](1),
	})
	assert.ErrorIs(t, err, ErrNoAgency)

	_, err = f.svc.ListMine(context.Background(), uid)
	assert.ErrorIs(t, err, ErrNoAgency)
}

func TestCreateWithDanglingPreference(t *testing.T) {
	f := newFixture(t)
	uid, _ := f.newAgency(t, "mine")

	_, err := f.svc.Create(context.Background(), uid, CreatePackageRequest{
		PreferenceID: ptr[int64](404),
		Title:        "Orphan",
		Price:        ptr[int64](1),
	})
	assert.True(t, core.IsConstraintError(err), "got %v", err)
}

func TestListForPreferenceOwnerOnly(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	traveler := f.newUser(t, "traveler")
	stranger := f.newUser(t, "stranger")
	agentUser, agencyID := f.newAgency(t, "agent")

	pref, err := f.preferences.Create(ctx, traveler, preference.CreatePreferenceRequest{})
	require.NoError(t, err)

	_, err = f.svc.Create(ctx, agentUser, CreatePackageRequest{
		PreferenceID: ptr(pref.ID),
		Title:        "Offer",
		Price:        ptr[int64](1000),
	})
	require.NoError(t, err)

	got, err := f.svc.ListForPreference(ctx, pref.ID, traveler)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, agencyID, got[0].AgencyID)

	_, err = f.svc.ListForPreference(ctx, pref.ID, stranger)
	assert.ErrorIs(t, err, core.ErrNotFound)

	_, err = f.svc.ListForPreference(ctx, pref.ID, agentUser)
	assert.ErrorIs(t, err, core.ErrNotFound)

	mine, err := f.svc.ListMine(ctx, agentUser)
	require.NoError(t, err)
	assert.Len(t, mine, 1)
}

func TestUpdateMine(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	owner, _ := f.newAgency(t, "owner")
	rival, _ := f.newAgency(t, "rival")

	p, err := f.svc.Create(ctx, owner, CreatePackageRequest{Title: "Base", Price: ptr[int64](500)})
	require.NoError(t, err)

	_, err = f.svc.UpdateMine(ctx, p.ID, rival, UpdatePackageRequest{Price: ptr[int64](1)})
	assert.ErrorIs(t, err, core.ErrNotFound)

	updated, err := f.svc.UpdateMine(ctx, p.ID, owner, UpdatePackageRequest{
		Price:       ptr[int64](750),
		PackageType: ptr(TypePremium),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(750), updated.Price)
	assert.Equal(t, TypePremium, updated.PackageType)
	assert.Equal(t, "Base", updated.Title)
}
