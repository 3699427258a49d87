package service

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/bistro-service/internal/domain"
	apperrors "github.com/spec-kit/bistro-service/pkg/util"
)

type mockUserRepo struct {
	byEmail    map[string]*domain.User
	created    []*domain.User
	promotedID string
	deletedID  string
	promoteErr error
	getErr     error
	createErr  error
}

func (m *mockUserRepo) Create(_ context.Context, user *domain.User) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.created = append(m.created, user)
	return nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	user, ok := m.byEmail[email]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return user, nil
}

func (m *mockUserRepo) List(_ context.Context) ([]domain.User, error) {
	var out []domain.User
	for _, user := range m.byEmail {
		out = append(out, *user)
	}
	return out, nil
}

func (m *mockUserRepo) PromoteToAdmin(_ context.Context, id string) error {
	if m.promoteErr != nil {
		return m.promoteErr
	}
	m.promotedID = id
	return nil
}

func (m *mockUserRepo) Delete(_ context.Context, id string) error {
	m.deletedID = id
	return nil
}

func (m *mockUserRepo) EstimatedCount(_ context.Context) (int64, error) {
	return int64(len(m.byEmail)), nil
}

func TestUserService_Register(t *testing.T) {
	t.Run("creates guest on first registration", func(t *testing.T) {
		repo := &mockUserRepo{byEmail: map[string]*domain.User{}}
		svc := NewUserService(repo, nil)

		user, created, err := svc.Register(context.Background(), "Alice", "alice@x.com")
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, domain.RoleGuest, user.Role)
		assert.NotEmpty(t, user.ID)
		require.Len(t, repo.created, 1)
	})

	t.Run("is a no-op when the email exists", func(t *testing.T) {
		existing := &domain.User{ID: "u1", Email: "alice@x.com", Role: domain.RoleAdmin}
		repo := &mockUserRepo{byEmail: map[string]*domain.User{"alice@x.com": existing}}
		svc := NewUserService(repo, nil)

		user, created, err := svc.Register(context.Background(), "Alice", "alice@x.com")
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, existing, user)
		assert.Empty(t, repo.created)
	})

	t.Run("rejects empty email", func(t *testing.T) {
		svc := NewUserService(&mockUserRepo{byEmail: map[string]*domain.User{}}, nil)

		_, _, err := svc.Register(context.Background(), "Alice", "")
		require.Error(t, err)
		assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)
	})
}

func TestUserService_IsAdmin(t *testing.T) {
	admin := &domain.User{ID: "u1", Email: "admin@x.com", Role: domain.RoleAdmin}
	guest := &domain.User{ID: "u2", Email: "guest@x.com", Role: domain.RoleGuest}
	repo := &mockUserRepo{byEmail: map[string]*domain.User{
		"admin@x.com": admin,
		"guest@x.com": guest,
	}}
	svc := NewUserService(repo, nil)

	t.Run("rejects a query for another user's role", func(t *testing.T) {
		identity := &domain.Identity{Subject: "guest@x.com"}

		_, err := svc.IsAdmin(context.Background(), identity, "admin@x.com")
		require.Error(t, err)
		assert.Equal(t, "FORBIDDEN", apperrors.ToDomainError(err).Code)
	})

	t.Run("answers true for an admin's own query", func(t *testing.T) {
		identity := &domain.Identity{Subject: "admin@x.com"}

		isAdmin, err := svc.IsAdmin(context.Background(), identity, "admin@x.com")
		require.NoError(t, err)
		assert.True(t, isAdmin)
	})

	t.Run("answers false for a guest's own query", func(t *testing.T) {
		identity := &domain.Identity{Subject: "guest@x.com"}

		isAdmin, err := svc.IsAdmin(context.Background(), identity, "guest@x.com")
		require.NoError(t, err)
		assert.False(t, isAdmin)
	})

	t.Run("answers false when the subject has no directory entry", func(t *testing.T) {
		identity := &domain.Identity{Subject: "ghost@x.com"}

		isAdmin, err := svc.IsAdmin(context.Background(), identity, "ghost@x.com")
		require.NoError(t, err)
		assert.False(t, isAdmin)
	})
}

func TestUserService_Promote(t *testing.T) {
	t.Run("promotes an existing user", func(t *testing.T) {
		repo := &mockUserRepo{byEmail: map[string]*domain.User{}}
		svc := NewUserService(repo, nil)

		require.NoError(t, svc.Promote(context.Background(), "u1"))
		assert.Equal(t, "u1", repo.promotedID)
	})

	t.Run("maps an absent user to NOT_FOUND", func(t *testing.T) {
		repo := &mockUserRepo{byEmail: map[string]*domain.User{}, promoteErr: pgx.ErrNoRows}
		svc := NewUserService(repo, nil)

		err := svc.Promote(context.Background(), "missing")
		require.Error(t, err)
		assert.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)
	})
}
