// AngelaMos | 2026
// service.go

package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/carterperez-dev/travel-marketplace/internal/auth"
	"github.com/carterperez-dev/travel-marketplace/internal/core"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetByID(
	ctx context.Context,
	id int64,
) (*auth.UserInfo, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return toUserInfo(user), nil
}

// GetByLogin accepts either a username or an email address.
func (s *Service) GetByLogin(
	ctx context.Context,
	login string,
) (*auth.UserInfo, error) {
	user, err := s.repo.GetByUsername(ctx, login)
	if errors.Is(err, core.ErrNotFound) && strings.Contains(login, "@") {
		user, err = s.repo.GetByEmail(ctx, strings.ToLower(login))
	}
	if err != nil {
		return nil, err
	}

	return toUserInfo(user), nil
}

func (s *Service) UsernameExists(
	ctx context.Context,
	username string,
) (bool, error) {
	return s.repo.ExistsByUsername(ctx, username)
}

func (s *Service) EmailExists(
	ctx context.Context,
	email string,
) (bool, error) {
	return s.repo.ExistsByEmail(ctx, strings.ToLower(email))
}

func (s *Service) Create(
	ctx context.Context,
	nu auth.NewUser,
) (*auth.UserInfo, error) {
	role := nu.Role
	if role == "" {
		role = RoleTraveler
	}

	user := &User{
		Username:     nu.Username,
		PasswordHash: nu.PasswordHash,
		Email:        strings.ToLower(nu.Email),
		FullName:     nu.FullName,
		Role:         role,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	core.AddSpanEvent(ctx, "user.created",
		attribute.Int64("user.id", user.ID),
		attribute.String("user.role", user.Role),
	)

	return toUserInfo(user), nil
}

func (s *Service) UpdatePassword(
	ctx context.Context,
	userID int64,
	passwordHash string,
) error {
	_, err := s.repo.Update(ctx, userID, Changes{PasswordHash: &passwordHash})
	return err
}

// RoleOf satisfies middleware.RoleLoader.
func (s *Service) RoleOf(ctx context.Context, userID int64) (string, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}
	return user.Role, nil
}

func (s *Service) PromoteToAgency(ctx context.Context, userID int64) error {
	role := RoleAgency
	if _, err := s.repo.Update(ctx, userID, Changes{Role: &role}); err != nil {
		return fmt.Errorf("promote to agency: %w", err)
	}
	return nil
}

func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

func toUserInfo(u *User) *auth.UserInfo {
	return &auth.UserInfo{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		FullName:     u.FullName,
		Role:         u.Role,
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt,
	}
}

var _ auth.UserProvider = (*Service)(nil)
