// AngelaMos | 2026
// repository.go

package preference

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/carterperez-dev/travel-marketplace/internal/core"
)

type Repository interface {
	GetByID(ctx context.Context, id int64) (*TravelPreference, error)
	ListByUserID(ctx context.Context, userID int64) ([]TravelPreference, error)
	List(ctx context.Context) ([]TravelPreference, error)
	Create(ctx context.Context, p *TravelPreference) error
	Update(ctx context.Context, id int64, changes Changes) (*TravelPreference, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const preferenceColumns = `id, user_id, destination_id, additional_destination,
	start_date, end_date, travelers, budget, special_requests, preferences,
	status, created_at`

func (r *repository) GetByID(
	ctx context.Context,
	id int64,
) (*TravelPreference, error) {
	query := r.db.Rebind(
		"SELECT " + preferenceColumns + " FROM travel_preferences WHERE id = ?",
	)

	var p TravelPreference
	err := r.db.GetContext(ctx, &p, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get travel preference: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get travel preference: %w", err)
	}

	return &p, nil
}

func (r *repository) ListByUserID(
	ctx context.Context,
	userID int64,
) ([]TravelPreference, error) {
	query := r.db.Rebind(
		"SELECT " + preferenceColumns + ` FROM travel_preferences
		WHERE user_id = ? ORDER BY created_at, id`,
	)

	prefs := []TravelPreference{}
	if err := r.db.SelectContext(ctx, &prefs, query, userID); err != nil {
		return nil, fmt.Errorf("list travel preferences by user: %w", err)
	}

	return prefs, nil
}

func (r *repository) List(ctx context.Context) ([]TravelPreference, error) {
	query := "SELECT " + preferenceColumns +
		" FROM travel_preferences ORDER BY created_at, id"

	prefs := []TravelPreference{}
	if err := r.db.SelectContext(ctx, &prefs, query); err != nil {
		return nil, fmt.Errorf("list travel preferences: %w", err)
	}

	return prefs, nil
}

func (r *repository) Create(ctx context.Context, p *TravelPreference) error {
	query := r.db.Rebind(`
		INSERT INTO travel_preferences (user_id, destination_id,
			additional_destination, start_date, end_date, travelers, budget,
			special_requests, preferences, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id`)

	var id int64
	err := r.db.GetContext(ctx, &id, query,
		p.UserID,
		p.DestinationID,
		p.AdditionalDestination,
		p.StartDate,
		p.EndDate,
		p.Travelers,
		p.Budget,
		p.SpecialRequests,
		p.Preferences,
		p.Status,
	)
	if err != nil {
		return fmt.Errorf("create travel preference: %w", core.ClassifyDBError(err))
	}

	created, err := r.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("create travel preference: %w", err)
	}
	*p = *created

	return nil
}

func (r *repository) Update(
	ctx context.Context,
	id int64,
	changes Changes,
) (*TravelPreference, error) {
	var set core.Assignments
	core.Set(&set, "destination_id", changes.DestinationID)
	core.Set(&set, "additional_destination", changes.AdditionalDestination)
	core.Set(&set, "start_date", changes.StartDate)
	core.Set(&set, "end_date", changes.EndDate)
	core.Set(&set, "travelers", changes.Travelers)
	core.Set(&set, "budget", changes.Budget)
	core.Set(&set, "special_requests", changes.SpecialRequests)
	core.Set(&set, "preferences", changes.Preferences)
	core.Set(&set, "status", changes.Status)

	if err := core.UpdateByID(ctx, r.db, "travel_preferences", id, &set); err != nil {
		return nil, err
	}

	return r.GetByID(ctx, id)
}
