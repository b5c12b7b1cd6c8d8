// AngelaMos | 2026
// repository.go

package destination

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/carterperez-dev/travel-marketplace/internal/core"
)

type Repository interface {
	GetByID(ctx context.Context, id int64) (*Destination, error)
	List(ctx context.Context) ([]Destination, error)
	Create(ctx context.Context, d *Destination) error
	Update(ctx context.Context, id int64, changes Changes) (*Destination, error)
	Count(ctx context.Context) (int, error)
	Seed(ctx context.Context) (int, error)
}

// repository keeps the *sqlx.DB rather than a DBTX because Seed needs to
// open its own transaction.
type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const destinationColumns = `id, name, country, description, image_url,
	best_time_to_visit, avg_temperature, beach_season, rainy_season, created_at`

func (r *repository) GetByID(
	ctx context.Context,
	id int64,
) (*Destination, error) {
	return getByID(ctx, r.db, id)
}

func getByID(ctx context.Context, db core.DBTX, id int64) (*Destination, error) {
	query := db.Rebind(
		"SELECT " + destinationColumns + " FROM destinations WHERE id = ?",
	)

	var d Destination
	err := db.GetContext(ctx, &d, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get destination: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get destination: %w", err)
	}

	return &d, nil
}

func (r *repository) List(ctx context.Context) ([]Destination, error) {
	query := "SELECT " + destinationColumns + " FROM destinations ORDER BY id"

	destinations := []Destination{}
	if err := r.db.SelectContext(ctx, &destinations, query); err != nil {
		return nil, fmt.Errorf("list destinations: %w", err)
	}

	return destinations, nil
}

func (r *repository) Create(ctx context.Context, d *Destination) error {
	id, err := insert(ctx, r.db, d)
	if err != nil {
		return err
	}

	created, err := r.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("create destination: %w", err)
	}
	*d = *created

	return nil
}

func insert(ctx context.Context, db core.DBTX, d *Destination) (int64, error) {
	query := db.Rebind(`
		INSERT INTO destinations (name, country, description, image_url,
			best_time_to_visit, avg_temperature, beach_season, rainy_season)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id`)

	var id int64
	err := db.GetContext(ctx, &id, query,
		d.Name,
		d.Country,
		d.Description,
		d.ImageURL,
		d.BestTimeToVisit,
		d.AvgTemperature,
		d.BeachSeason,
		d.RainySeason,
	)
	if err != nil {
		return 0, fmt.Errorf("create destination: %w", core.ClassifyDBError(err))
	}

	return id, nil
}

func (r *repository) Update(
	ctx context.Context,
	id int64,
	changes Changes,
) (*Destination, error) {
	var set core.Assignments
	core.Set(&set, "name", changes.Name)
	core.Set(&set, "country", changes.Country)
	core.Set(&set, "description", changes.Description)
	core.Set(&set, "image_url", changes.ImageURL)
	core.Set(&set, "best_time_to_visit", changes.BestTimeToVisit)
	core.Set(&set, "avg_temperature", changes.AvgTemperature)
	core.Set(&set, "beach_season", changes.BeachSeason)
	core.Set(&set, "rainy_season", changes.RainySeason)

	if err := core.UpdateByID(ctx, r.db, "destinations", id, &set); err != nil {
		return nil, err
	}

	return r.GetByID(ctx, id)
}

func (r *repository) Count(ctx context.Context) (int, error) {
	return count(ctx, r.db)
}

func count(ctx context.Context, db core.DBTX) (int, error) {
	var n int
	if err := db.GetContext(ctx, &n, "SELECT COUNT(*) FROM destinations"); err != nil {
		return 0, fmt.Errorf("count destinations: %w", err)
	}
	return n, nil
}

// Seed inserts the fixed catalogue when the table is empty and reports how
// many rows it wrote. A non-empty table is left untouched.
func (r *repository) Seed(ctx context.Context) (int, error) {
	inserted := 0

	err := core.InTx(ctx, r.db, func(tx *sqlx.Tx) error {
		n, err := count(ctx, tx)
		if err != nil {
			return err
		}
		if n > 0 {
			return nil
		}

		for _, row := range seedRows {
			d := row.destination()
			if _, err := insert(ctx, tx, &d); err != nil {
				return fmt.Errorf("seed %s: %w", row.name, err)
			}
			inserted++
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("seed destinations: %w", err)
	}

	return inserted, nil
}

func (s seedRow) destination() Destination {
	return Destination{
		Name:            s.name,
		Country:         s.country,
		Description:     &s.description,
		ImageURL:        &s.imageURL,
		BestTimeToVisit: &s.bestTimeToVisit,
		AvgTemperature:  &s.avgTemperature,
		BeachSeason:     &s.beachSeason,
		RainySeason:     &s.rainySeason,
	}
}
