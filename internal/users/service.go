package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/voltmart/voltmart/internal/platform/httpx"
	"github.com/voltmart/voltmart/internal/shared"
)

// Service wraps account management rules for the admin panel and the
// self-service profile endpoint.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Get(ctx context.Context, id int64) (*User, error) {
	user, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, httpx.NotFoundf("User not found")
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

// RoleOf resolves the role for authorization middleware.
func (s *Service) RoleOf(ctx context.Context, userID int64) (string, error) {
	user, err := s.repo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", httpx.ErrUnauthorized
		}
		return "", fmt.Errorf("resolve role: %w", err)
	}
	return user.Role, nil
}

func (s *Service) List(ctx context.Context, req ListUsersRequest) ([]User, int, error) {
	return s.repo.List(ctx, req)
}

// UpdateRole applies an admin role change. Self-demotion and no-op changes
// are rejected so an admin cannot silently lock themselves out or spam audit
// trails with empty updates.
func (s *Service) UpdateRole(ctx context.Context, actorID int64, req UpdateRoleRequest) (*User, error) {
	target, err := s.repo.Get(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, httpx.NotFoundf("User not found")
		}
		return nil, fmt.Errorf("get target user: %w", err)
	}

	if actorID == req.UserID && req.NewRole == shared.RoleUser {
		return nil, httpx.Validationf("Cannot demote yourself from admin role")
	}
	if target.Role == req.NewRole {
		return nil, httpx.Validationf("User already has the role: %s", req.NewRole)
	}

	updated, err := s.repo.UpdateRole(ctx, req.UserID, req.NewRole)
	if err != nil {
		return nil, fmt.Errorf("update role: %w", err)
	}
	return updated, nil
}

// UpdateProfile applies a partial profile update for the calling user.
func (s *Service) UpdateProfile(ctx context.Context, userID int64, req UpdateProfileRequest) (*User, error) {
	current, err := s.repo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, httpx.NotFoundf("User not found")
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	if req.Email != nil && *req.Email != current.Email {
		taken, err := s.repo.EmailTaken(ctx, *req.Email, userID)
		if err != nil {
			return nil, fmt.Errorf("check email: %w", err)
		}
		if taken {
			return nil, httpx.Validationf("Email is already taken by another user")
		}
	}

	updates := make(map[string]interface{})
	if req.DisplayName != nil {
		updates["display_name"] = *req.DisplayName
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.AvatarURL != nil {
		updates["avatar_url"] = *req.AvatarURL
	}

	updated, err := s.repo.UpdateProfile(ctx, userID, updates)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, httpx.NotFoundf("User not found")
		}
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return updated, nil
}
