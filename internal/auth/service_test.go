package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/voltmart/voltmart/internal/shared"
)

type mockRepository struct {
	users    map[string]User
	sessions map[string]int64
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		users:    make(map[string]User),
		sessions: make(map[string]int64),
	}
}

func (m *mockRepository) FindByEmail(_ context.Context, email string) (*User, error) {
	u, ok := m.users[email]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return &u, nil
}

func (m *mockRepository) FindByID(_ context.Context, id int64) (*User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (m *mockRepository) CreateSession(_ context.Context, id string, userID int64, _ time.Time, _, _ string) error {
	m.sessions[id] = userID
	return nil
}

func (m *mockRepository) DeleteSession(_ context.Context, id string) error {
	delete(m.sessions, id)
	return nil
}

func seedUser(t *testing.T, repo *mockRepository, email, password string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	repo.users[email] = User{
		ID:           int64(len(repo.users) + 1),
		Email:        email,
		DisplayName:  "Ravi Kumar",
		Role:         "user",
		PasswordHash: string(hash),
	}
}

func TestAuthenticateSuccess(t *testing.T) {
	repo := newMockRepository()
	seedUser(t, repo, "ravi@example.com", "sunshine42")
	svc := NewService(repo)

	user, err := svc.Authenticate(context.Background(), "ravi@example.com", "sunshine42")
	require.NoError(t, err)
	assert.Equal(t, "ravi@example.com", user.Email)
	assert.Equal(t, "user", user.Role)
}

func TestAuthenticateWrongPassword(t *testing.T) {
	repo := newMockRepository()
	seedUser(t, repo, "ravi@example.com", "sunshine42")
	svc := NewService(repo)

	_, err := svc.Authenticate(context.Background(), "ravi@example.com", "moonlight")
	assert.ErrorIs(t, err, shared.ErrInvalidCredentials)
}

func TestAuthenticateUnknownEmail(t *testing.T) {
	svc := NewService(newMockRepository())

	// Unknown accounts produce the same error as a wrong password.
	_, err := svc.Authenticate(context.Background(), "nobody@example.com", "whatever")
	assert.ErrorIs(t, err, shared.ErrInvalidCredentials)
}

func TestSessionLifecycle(t *testing.T) {
	repo := newMockRepository()
	seedUser(t, repo, "ravi@example.com", "sunshine42")
	svc := NewService(repo)
	ctx := context.Background()

	require.NoError(t, svc.RegisterSession(ctx, "sess-1", 1, time.Now().Add(time.Hour), "203.0.113.7", "curl/8"))
	assert.Equal(t, int64(1), repo.sessions["sess-1"])

	require.NoError(t, svc.RemoveSession(ctx, "sess-1"))
	assert.NotContains(t, repo.sessions, "sess-1")
}
