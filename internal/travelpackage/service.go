// AngelaMos | 2026
// service.go

package travelpackage

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/carterperez-dev/travel-marketplace/internal/agency"
	"github.com/carterperez-dev/travel-marketplace/internal/core"
	"github.com/carterperez-dev/travel-marketplace/internal/preference"
)

var ErrNoAgency = errors.New("caller has no agency profile")

type AgencyLookup interface {
	GetByUser(ctx context.Context, userID int64) (*agency.Agency, error)
}

type PreferenceLookup interface {
	GetOwned(ctx context.Context, id, userID int64) (*preference.TravelPreference, error)
}

type Service struct {
	repo        Repository
	agencies    AgencyLookup
	preferences PreferenceLookup
}

func NewService(
	repo Repository,
	agencies AgencyLookup,
	preferences PreferenceLookup,
) *Service {
	return &Service{
		repo:        repo,
		agencies:    agencies,
		preferences: preferences,
	}
}

func (s *Service) agencyFor(ctx context.Context, userID int64) (*agency.Agency, error) {
	a, err := s.agencies.GetByUser(ctx, userID)
	if errors.Is(err, core.ErrNotFound) {
		return nil, ErrNoAgency
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

// Create stores an offer under the caller's agency. Any agencyId in the
// request is ignored.
func (s *Service) Create(
	ctx context.Context,
	userID int64,
	req CreatePackageRequest,
) (*Package, error) {
	a, err := s.agencyFor(ctx, userID)
	if err != nil {
		return nil, err
	}

	p := &Package{
		AgencyID:       a.ID,
		PreferenceID:   req.PreferenceID,
		Title:          req.Title,
		Description:    req.Description,
		PricePerPerson: true,
		Accommodation:  req.Accommodation,
		Transportation: req.Transportation,
		Meals:          req.Meals,
		Activities:     req.Activities,
		AdditionalInfo: req.AdditionalInfo,
		PackageType:    TypeStandard,
	}
	if req.Price != nil {
		p.Price = *req.Price
	}
	if req.PricePerPerson != nil {
		p.PricePerPerson = *req.PricePerPerson
	}
	if req.PackageType != nil {
		p.PackageType = *req.PackageType
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	attrs := []attribute.KeyValue{
		attribute.Int64("travel_package.id", p.ID),
		attribute.Int64("agency.id", a.ID),
	}
	if p.PreferenceID != nil {
		attrs = append(attrs, attribute.Int64("travel_preference.id", *p.PreferenceID))
	}
	core.AddSpanEvent(ctx, "travel_package.created", attrs...)

	return p, nil
}

func (s *Service) ListMine(ctx context.Context, userID int64) ([]Package, error) {
	a, err := s.agencyFor(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByAgencyID(ctx, a.ID)
}

// ListForPreference returns the offers made against a preference, but only
// to the traveler who owns it.
func (s *Service) ListForPreference(
	ctx context.Context,
	preferenceID, userID int64,
) ([]Package, error) {
	if _, err := s.preferences.GetOwned(ctx, preferenceID, userID); err != nil {
		return nil, err
	}
	return s.repo.ListByPreferenceID(ctx, preferenceID)
}

// UpdateMine edits a package owned by the caller's agency.
func (s *Service) UpdateMine(
	ctx context.Context,
	id, userID int64,
	req UpdatePackageRequest,
) (*Package, error) {
	a, err := s.agencyFor(ctx, userID)
	if err != nil {
		return nil, err
	}

	p, err := s.repo.GetByID(ctx, id)
	if _, err := core.OwnedOrNotFound(p, err, agencyOf, a.ID); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, id, req.changes())
	if err != nil {
		return nil, fmt.Errorf("update travel package %d: %w", id, err)
	}

	core.AddSpanEvent(ctx, "travel_package.updated",
		attribute.Int64("travel_package.id", id),
	)

	return updated, nil
}
