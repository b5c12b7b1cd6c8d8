// AngelaMos | 2026
// service.go

package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/carterperez-dev/travel-marketplace/internal/core"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateUser      = errors.New("username or email already exists")
)

type UserInfo struct {
	ID           int64
	Username     string
	Email        string
	FullName     string
	Role         string
	PasswordHash string
	CreatedAt    time.Time
}

type NewUser struct {
	Username     string
	Email        string
	FullName     string
	Role         string
	PasswordHash string
}

type UserProvider interface {
	GetByID(ctx context.Context, id int64) (*UserInfo, error)
	GetByLogin(ctx context.Context, login string) (*UserInfo, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, nu NewUser) (*UserInfo, error)
	UpdatePassword(ctx context.Context, userID int64, passwordHash string) error
}

type Service struct {
	users UserProvider
}

func NewService(users UserProvider) *Service {
	return &Service{users: users}
}

func (s *Service) Login(
	ctx context.Context,
	req LoginRequest,
) (*UserInfo, error) {
	user, err := s.users.GetByLogin(ctx, req.Username)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			//nolint:errcheck // timing attack prevention - always verify to prevent enumeration
			_, _, _ = core.VerifyPasswordTimingSafe(req.Password, nil)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	valid, newHash, err := core.VerifyPasswordTimingSafe(
		req.Password,
		&user.PasswordHash,
	)
	if err != nil {
		return nil, fmt.Errorf("verify password: %w", err)
	}

	if !valid {
		return nil, ErrInvalidCredentials
	}

	if newHash != "" {
		if err := s.users.UpdatePassword(ctx, user.ID, newHash); err != nil {
			slog.WarnContext(ctx, "password rehash failed",
				"user_id", user.ID,
				"error", err,
			)
		}
	}

	return user, nil
}

// Register checks username and email up front so both collisions are
// reported as ErrDuplicateUser; the unique indexes still catch a race.
func (s *Service) Register(
	ctx context.Context,
	req RegisterRequest,
) (*UserInfo, error) {
	taken, err := s.users.UsernameExists(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("check username: %w", err)
	}
	if !taken {
		taken, err = s.users.EmailExists(ctx, req.Email)
		if err != nil {
			return nil, fmt.Errorf("check email: %w", err)
		}
	}
	if taken {
		return nil, ErrDuplicateUser
	}

	passwordHash, err := core.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.Create(ctx, NewUser{
		Username:     req.Username,
		Email:        req.Email,
		FullName:     req.FullName,
		Role:         req.Role,
		PasswordHash: passwordHash,
	})
	if err != nil {
		if errors.Is(err, core.ErrDuplicateKey) {
			return nil, ErrDuplicateUser
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

func (s *Service) Current(ctx context.Context, userID int64) (*UserInfo, error) {
	if userID == 0 {
		return nil, fmt.Errorf("current user: %w", core.ErrUnauthorized)
	}
	return s.users.GetByID(ctx, userID)
}
