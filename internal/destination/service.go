// AngelaMos | 2026
// service.go

package destination

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/carterperez-dev/travel-marketplace/internal/core"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Get(ctx context.Context, id int64) (*Destination, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Destination, error) {
	return s.repo.List(ctx)
}

// Seed is safe to call on every start; it only writes into an empty table.
func (s *Service) Seed(ctx context.Context) (int, error) {
	n, err := s.repo.Seed(ctx)
	if err != nil {
		return 0, err
	}

	core.AddSpanEvent(ctx, "destinations.seeded",
		attribute.Int("destinations.inserted", n),
	)

	return n, nil
}
