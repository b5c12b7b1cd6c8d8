// AngelaMos | 2026
// service.go

package preference

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/carterperez-dev/travel-marketplace/internal/core"
	"github.com/carterperez-dev/travel-marketplace/internal/user"
)

const defaultTravelers = 1

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ListVisible returns every preference to agencies, who browse them to
// make offers, and only the caller's own to everyone else.
func (s *Service) ListVisible(
	ctx context.Context,
	userID int64,
	role string,
) ([]TravelPreference, error) {
	if role == user.RoleAgency {
		return s.repo.List(ctx)
	}
	return s.repo.ListByUserID(ctx, userID)
}

func (s *Service) GetVisible(
	ctx context.Context,
	id, userID int64,
	role string,
) (*TravelPreference, error) {
	p, err := s.repo.GetByID(ctx, id)
	if role == user.RoleAgency {
		return p, err
	}
	return core.OwnedOrNotFound(p, err, ownerOf, userID)
}

// GetOwned returns the preference only if userID created it.
func (s *Service) GetOwned(
	ctx context.Context,
	id, userID int64,
) (*TravelPreference, error) {
	p, err := s.repo.GetByID(ctx, id)
	return core.OwnedOrNotFound(p, err, ownerOf, userID)
}

func (s *Service) Create(
	ctx context.Context,
	userID int64,
	req CreatePreferenceRequest,
) (*TravelPreference, error) {
	start, err := parseOptionalDate("startDate", req.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseOptionalDate("endDate", req.EndDate)
	if err != nil {
		return nil, err
	}
	if err := checkRange(start, end); err != nil {
		return nil, err
	}

	travelers := defaultTravelers
	if req.Travelers != nil {
		travelers = *req.Travelers
	}

	p := &TravelPreference{
		UserID:                userID,
		DestinationID:         req.DestinationID,
		AdditionalDestination: req.AdditionalDestination,
		StartDate:             start,
		EndDate:               end,
		Travelers:             travelers,
		Budget:                req.Budget,
		SpecialRequests:       req.SpecialRequests,
		Preferences:           req.Preferences,
		Status:                StatusPending,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	core.AddSpanEvent(ctx, "travel_preference.created",
		attribute.Int64("travel_preference.id", p.ID),
		attribute.Int64("user.id", userID),
	)

	return p, nil
}

// UpdateOwned applies a partial update to one of the caller's preferences.
func (s *Service) UpdateOwned(
	ctx context.Context,
	id, userID int64,
	req UpdatePreferenceRequest,
) (*TravelPreference, error) {
	existing, err := s.GetOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	start, err := parseOptionalDate("startDate", req.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseOptionalDate("endDate", req.EndDate)
	if err != nil {
		return nil, err
	}
	if err := checkRange(merge(start, existing.StartDate), merge(end, existing.EndDate)); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, id, Changes{
		DestinationID:         req.DestinationID,
		AdditionalDestination: req.AdditionalDestination,
		StartDate:             start,
		EndDate:               end,
		Travelers:             req.Travelers,
		Budget:                req.Budget,
		SpecialRequests:       req.SpecialRequests,
		Preferences:           req.Preferences,
		Status:                req.Status,
	})
	if err != nil {
		return nil, fmt.Errorf("update travel preference %d: %w", id, err)
	}

	core.AddSpanEvent(ctx, "travel_preference.updated",
		attribute.Int64("travel_preference.id", id),
		attribute.String("travel_preference.status", updated.Status),
	)

	return updated, nil
}

func merge[T any](next, current *T) *T {
	if next != nil {
		return next
	}
	return current
}
