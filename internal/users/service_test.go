package users

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voltmart/voltmart/internal/platform/httpx"
	"github.com/voltmart/voltmart/internal/shared"
)

type mockRepository struct {
	users map[int64]*User
}

func newMockRepository() *mockRepository {
	return &mockRepository{users: make(map[int64]*User)}
}

func (m *mockRepository) add(u User) {
	m.users[u.ID] = &u
}

func (m *mockRepository) Get(_ context.Context, id int64) (*User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *mockRepository) GetByEmail(_ context.Context, email string) (*User, error) {
	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (m *mockRepository) List(_ context.Context, _ ListUsersRequest) ([]User, int, error) {
	var out []User
	for _, u := range m.users {
		out = append(out, *u)
	}
	return out, len(out), nil
}

func (m *mockRepository) EmailTaken(_ context.Context, email string, excludeID int64) (bool, error) {
	for _, u := range m.users {
		if u.Email == email && u.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockRepository) UpdateRole(_ context.Context, id int64, role string) (*User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	u.Role = role
	u.UpdatedAt = time.Now()
	cp := *u
	return &cp, nil
}

func (m *mockRepository) UpdateProfile(_ context.Context, id int64, updates map[string]interface{}) (*User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	for column, value := range updates {
		switch column {
		case "display_name":
			u.DisplayName = value.(string)
		case "email":
			u.Email = value.(string)
		case "avatar_url":
			v := value.(string)
			u.AvatarURL = &v
		}
	}
	u.UpdatedAt = time.Now()
	cp := *u
	return &cp, nil
}

func newUsersService() (*Service, *mockRepository) {
	repo := newMockRepository()
	repo.add(User{ID: 1, Email: "admin@voltmart.local", DisplayName: "Store Admin", Role: shared.RoleAdmin})
	repo.add(User{ID: 2, Email: "ravi@example.com", DisplayName: "Ravi Kumar", Role: shared.RoleUser})
	return NewService(repo), repo
}

func TestUpdateRolePromotes(t *testing.T) {
	svc, _ := newUsersService()

	updated, err := svc.UpdateRole(context.Background(), 1, UpdateRoleRequest{UserID: 2, NewRole: shared.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, shared.RoleAdmin, updated.Role)
}

func TestUpdateRoleRejectsSelfDemotion(t *testing.T) {
	svc, _ := newUsersService()

	_, err := svc.UpdateRole(context.Background(), 1, UpdateRoleRequest{UserID: 1, NewRole: shared.RoleUser})
	require.Error(t, err)
	assert.ErrorIs(t, err, httpx.ErrValidation)
	assert.Equal(t, "Cannot demote yourself from admin role", err.Error())
}

func TestUpdateRoleRejectsNoop(t *testing.T) {
	svc, _ := newUsersService()

	_, err := svc.UpdateRole(context.Background(), 1, UpdateRoleRequest{UserID: 2, NewRole: shared.RoleUser})
	require.Error(t, err)
	assert.ErrorIs(t, err, httpx.ErrValidation)
	assert.Equal(t, "User already has the role: user", err.Error())
}

func TestUpdateRoleMissingUser(t *testing.T) {
	svc, _ := newUsersService()

	_, err := svc.UpdateRole(context.Background(), 1, UpdateRoleRequest{UserID: 42, NewRole: shared.RoleAdmin})
	require.Error(t, err)
	assert.ErrorIs(t, err, httpx.ErrNotFound)
	assert.Equal(t, "User not found", err.Error())
}

func TestUpdateProfileRejectsTakenEmail(t *testing.T) {
	svc, _ := newUsersService()

	email := "admin@voltmart.local"
	_, err := svc.UpdateProfile(context.Background(), 2, UpdateProfileRequest{Email: &email})
	require.Error(t, err)
	assert.ErrorIs(t, err, httpx.ErrValidation)
	assert.Equal(t, "Email is already taken by another user", err.Error())
}

func TestUpdateProfileKeepsOwnEmail(t *testing.T) {
	svc, _ := newUsersService()

	email := "ravi@example.com"
	name := "Ravi K"
	updated, err := svc.UpdateProfile(context.Background(), 2, UpdateProfileRequest{Email: &email, DisplayName: &name})
	require.NoError(t, err)
	assert.Equal(t, "Ravi K", updated.DisplayName)
	assert.Equal(t, "ravi@example.com", updated.Email)
}

func TestRoleOf(t *testing.T) {
	svc, _ := newUsersService()

	role, err := svc.RoleOf(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, shared.RoleAdmin, role)

	_, err = svc.RoleOf(context.Background(), 42)
	require.Error(t, err)
	assert.ErrorIs(t, err, httpx.ErrUnauthorized)
}
