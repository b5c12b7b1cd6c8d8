// AngelaMos | 2026
// repository.go

package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/carterperez-dev/travel-marketplace/internal/core"
)

type Repository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	List(ctx context.Context) ([]User, error)
	Update(ctx context.Context, id int64, changes Changes) (*User, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const userColumns = `id, username, password, email, full_name, role, created_at`

func (r *repository) Create(ctx context.Context, user *User) error {
	query := r.db.Rebind(`
		INSERT INTO users (username, password, email, full_name, role)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id`)

	var id int64
	err := r.db.GetContext(ctx, &id, query,
		user.Username,
		user.PasswordHash,
		user.Email,
		user.FullName,
		user.Role,
	)
	if err != nil {
		return fmt.Errorf("create user: %w", core.ClassifyDBError(err))
	}

	created, err := r.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	*user = *created

	return nil
}

func (r *repository) getOne(
	ctx context.Context,
	op, where string,
	arg any,
) (*User, error) {
	query := r.db.Rebind(
		"SELECT " + userColumns + " FROM users WHERE " + where + " = ?",
	)

	var user User
	err := r.db.GetContext(ctx, &user, query, arg)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &user, nil
}

func (r *repository) GetByID(ctx context.Context, id int64) (*User, error) {
	return r.getOne(ctx, "get user", "id", id)
}

func (r *repository) GetByUsername(
	ctx context.Context,
	username string,
) (*User, error) {
	return r.getOne(ctx, "get user by username", "username", username)
}

func (r *repository) GetByEmail(
	ctx context.Context,
	email string,
) (*User, error) {
	return r.getOne(ctx, "get user by email", "email", email)
}

func (r *repository) exists(
	ctx context.Context,
	op, column string,
	value string,
) (bool, error) {
	query := r.db.Rebind(
		"SELECT EXISTS(SELECT 1 FROM users WHERE " + column + " = ?)",
	)

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, value); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return exists, nil
}

func (r *repository) ExistsByUsername(
	ctx context.Context,
	username string,
) (bool, error) {
	return r.exists(ctx, "check username exists", "username", username)
}

func (r *repository) ExistsByEmail(
	ctx context.Context,
	email string,
) (bool, error) {
	return r.exists(ctx, "check email exists", "email", email)
}

func (r *repository) List(ctx context.Context) ([]User, error) {
	query := "SELECT " + userColumns + " FROM users ORDER BY id"

	users := []User{}
	if err := r.db.SelectContext(ctx, &users, query); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	return users, nil
}

func (r *repository) Update(
	ctx context.Context,
	id int64,
	changes Changes,
) (*User, error) {
	var set core.Assignments
	core.Set(&set, "email", changes.Email)
	core.Set(&set, "full_name", changes.FullName)
	core.Set(&set, "role", changes.Role)
	core.Set(&set, "password", changes.PasswordHash)

	if err := core.UpdateByID(ctx, r.db, "users", id, &set); err != nil {
		return nil, err
	}

	return r.GetByID(ctx, id)
}
