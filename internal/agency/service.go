// AngelaMos | 2026
// service.go

package agency

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"

	"github.com/carterperez-dev/travel-marketplace/internal/core"
)

var (
	ErrAgencyExists       = errors.New("user already has an agency profile")
	ErrCompanyNameMissing = errors.New("company name is required to create a profile")
)

// RolePromoter flips a user to the agency role once they own a profile.
type RolePromoter interface {
	PromoteToAgency(ctx context.Context, userID int64) error
}

type Service struct {
	repo  Repository
	roles RolePromoter
}

func NewService(repo Repository, roles RolePromoter) *Service {
	return &Service{repo: repo, roles: roles}
}

func (s *Service) Get(ctx context.Context, id int64) (*Agency, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Agency, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByUser(ctx context.Context, userID int64) (*Agency, error) {
	return s.repo.GetByUserID(ctx, userID)
}

// Register creates the caller's profile and then promotes them to the
// agency role. The two writes commit independently: if the promotion
// fails the profile stays and the role is left unchanged.
func (s *Service) Register(
	ctx context.Context,
	userID int64,
	req CreateAgencyRequest,
) (*Agency, error) {
	_, err := s.repo.GetByUserID(ctx, userID)
	if err == nil {
		return nil, ErrAgencyExists
	}
	if !errors.Is(err, core.ErrNotFound) {
		return nil, err
	}

	a, err := s.create(ctx, userID, req)
	if err != nil {
		return nil, err
	}

	if err := s.roles.PromoteToAgency(ctx, userID); err != nil {
		slog.ErrorContext(ctx, "agency created but role update failed",
			"agency_id", a.ID,
			"user_id", userID,
			"error", err,
		)
		return nil, fmt.Errorf("register agency %d: %w", a.ID, err)
	}

	return a, nil
}

// UpsertMine updates the caller's profile, creating it when absent.
func (s *Service) UpsertMine(
	ctx context.Context,
	userID int64,
	req UpdateAgencyRequest,
) (*Agency, error) {
	existing, err := s.repo.GetByUserID(ctx, userID)
	if errors.Is(err, core.ErrNotFound) {
		create, ok := req.asCreate()
		if !ok {
			return nil, ErrCompanyNameMissing
		}
		return s.create(ctx, userID, create)
	}
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, existing.ID, req.changes())
	if err != nil {
		return nil, err
	}

	core.AddSpanEvent(ctx, "agency.updated", attribute.Int64("agency.id", updated.ID))
	return updated, nil
}

func (s *Service) create(
	ctx context.Context,
	userID int64,
	req CreateAgencyRequest,
) (*Agency, error) {
	a := &Agency{
		UserID:      userID,
		CompanyName: req.CompanyName,
		Description: orEmpty(req.Description),
		WebsiteURL:  orEmpty(req.WebsiteURL),
		PhoneNumber: orEmpty(req.PhoneNumber),
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}

	core.AddSpanEvent(ctx, "agency.created",
		attribute.Int64("agency.id", a.ID),
		attribute.Int64("user.id", userID),
	)

	return a, nil
}

func orEmpty(s *string) *string {
	if s != nil {
		return s
	}
	empty := ""
	return &empty
}
