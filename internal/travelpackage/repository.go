// AngelaMos | 2026
// repository.go

package travelpackage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/carterperez-dev/travel-marketplace/internal/core"
)

type Repository interface {
	GetByID(ctx context.Context, id int64) (*Package, error)
	ListByAgencyID(ctx context.Context, agencyID int64) ([]Package, error)
	ListByPreferenceID(ctx context.Context, preferenceID int64) ([]Package, error)
	Create(ctx context.Context, p *Package) error
	Update(ctx context.Context, id int64, changes Changes) (*Package, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const packageColumns = `id, agency_id, preference_id, title, description,
	price, price_per_person, accommodation, transportation, meals,
	activities, additional_info, package_type, created_at`

func (r *repository) GetByID(ctx context.Context, id int64) (*Package, error) {
	query := r.db.Rebind(
		"SELECT " + packageColumns + " FROM travel_packages WHERE id = ?",
	)

	var p Package
	err := r.db.GetContext(ctx, &p, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get travel package: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get travel package: %w", err)
	}

	return &p, nil
}

func (r *repository) listWhere(
	ctx context.Context,
	op, column string,
	value int64,
) ([]Package, error) {
	query := r.db.Rebind(
		"SELECT " + packageColumns + " FROM travel_packages WHERE " + column +
			" = ? ORDER BY created_at, id",
	)

	packages := []Package{}
	if err := r.db.SelectContext(ctx, &packages, query, value); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return packages, nil
}

func (r *repository) ListByAgencyID(
	ctx context.Context,
	agencyID int64,
) ([]Package, error) {
	return r.listWhere(ctx, "list travel packages by agency", "agency_id", agencyID)
}

func (r *repository) ListByPreferenceID(
	ctx context.Context,
	preferenceID int64,
) ([]Package, error) {
	return r.listWhere(ctx, "list travel packages by preference", "preference_id", preferenceID)
}

func (r *repository) Create(ctx context.Context, p *Package) error {
	query := r.db.Rebind(`
		INSERT INTO travel_packages (agency_id, preference_id, title,
			description, price, price_per_person, accommodation,
			transportation, meals, activities, additional_info, package_type)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id`)

	var id int64
	err := r.db.GetContext(ctx, &id, query,
		p.AgencyID,
		p.PreferenceID,
		p.Title,
		p.Description,
		p.Price,
		p.PricePerPerson,
		p.Accommodation,
		p.Transportation,
		p.Meals,
		p.Activities,
		p.AdditionalInfo,
		p.PackageType,
	)
	if err != nil {
		return fmt.Errorf("create travel package: %w", core.ClassifyDBError(err))
	}

	created, err := r.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("create travel package: %w", err)
	}
	*p = *created

	return nil
}

func (r *repository) Update(
	ctx context.Context,
	id int64,
	changes Changes,
) (*Package, error) {
	var set core.Assignments
	core.Set(&set, "title", changes.Title)
	core.Set(&set, "description", changes.Description)
	core.Set(&set, "price", changes.Price)
	core.Set(&set, "price_per_person", changes.PricePerPerson)
	core.Set(&set, "accommodation", changes.Accommodation)
	core.Set(&set, "transportation", changes.Transportation)
	core.Set(&set, "meals", changes.Meals)
	core.Set(&set, "activities", changes.Activities)
	core.Set(&set, "additional_info", changes.AdditionalInfo)
	core.Set(&set, "package_type", changes.PackageType)

	if err := core.UpdateByID(ctx, r.db, "travel_packages", id, &set); err != nil {
		return nil, err
	}

	return r.GetByID(ctx, id)
}
