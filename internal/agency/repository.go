// AngelaMos | 2026
// repository.go

package agency

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/carterperez-dev/travel-marketplace/internal/core"
)

type Repository interface {
	GetByID(ctx context.Context, id int64) (*Agency, error)
	GetByUserID(ctx context.Context, userID int64) (*Agency, error)
	List(ctx context.Context) ([]Agency, error)
	Create(ctx context.Context, a *Agency) error
	Update(ctx context.Context, id int64, changes Changes) (*Agency, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const agencyColumns = `id, user_id, company_name, description, website_url,
	phone_number, verified, created_at`

func (r *repository) getOne(
	ctx context.Context,
	op, column string,
	value int64,
) (*Agency, error) {
	query := r.db.Rebind(
		"SELECT " + agencyColumns + " FROM agencies WHERE " + column +
			" = ? ORDER BY id LIMIT 1",
	)

	var a Agency
	err := r.db.GetContext(ctx, &a, query, value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &a, nil
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Agency, error) {
	return r.getOne(ctx, "get agency", "id", id)
}

func (r *repository) GetByUserID(
	ctx context.Context,
	userID int64,
) (*Agency, error) {
	return r.getOne(ctx, "get agency by user", "user_id", userID)
}

func (r *repository) List(ctx context.Context) ([]Agency, error) {
	query := "SELECT " + agencyColumns + " FROM agencies ORDER BY id"

	agencies := []Agency{}
	if err := r.db.SelectContext(ctx, &agencies, query); err != nil {
		return nil, fmt.Errorf("list agencies: %w", err)
	}

	return agencies, nil
}

func (r *repository) Create(ctx context.Context, a *Agency) error {
	query := r.db.Rebind(`
		INSERT INTO agencies (user_id, company_name, description,
			website_url, phone_number, verified)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id`)

	var id int64
	err := r.db.GetContext(ctx, &id, query,
		a.UserID,
		a.CompanyName,
		a.Description,
		a.WebsiteURL,
		a.PhoneNumber,
		a.Verified,
	)
	if err != nil {
		return fmt.Errorf("create agency: %w", core.ClassifyDBError(err))
	}

	created, err := r.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("create agency: %w", err)
	}
	*a = *created

	return nil
}

func (r *repository) Update(
	ctx context.Context,
	id int64,
	changes Changes,
) (*Agency, error) {
	var set core.Assignments
	core.Set(&set, "company_name", changes.CompanyName)
	core.Set(&set, "description", changes.Description)
	core.Set(&set, "website_url", changes.WebsiteURL)
	core.Set(&set, "phone_number", changes.PhoneNumber)
	core.Set(&set, "verified", changes.Verified)

	if err := core.UpdateByID(ctx, r.db, "agencies", id, &set); err != nil {
		return nil, err
	}

	return r.GetByID(ctx, id)
}
