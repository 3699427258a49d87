package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/bistro-service/internal/domain"
	"github.com/spec-kit/bistro-service/internal/events"
	"github.com/spec-kit/bistro-service/internal/repository"
	apperrors "github.com/spec-kit/bistro-service/pkg/util"
)

// UserService coordinates directory operations.
type UserService struct {
	users      repository.UserRepository
	dispatcher events.Dispatcher
}

// NewUserService builds the service.
func NewUserService(users repository.UserRepository, dispatcher events.Dispatcher) *UserService {
	return &UserService{users: users, dispatcher: dispatcher}
}

// Register creates a directory entry with the guest role. Registration is
// idempotent on email: an existing user is returned unchanged.
func (s *UserService) Register(ctx context.Context, name, email string) (*domain.User, bool, error) {
	if email == "" {
		return nil, false, apperrors.NewValidationError("email required", nil)
	}

	existing, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, apperrors.NewDatabaseError(err)
	}

	user := &domain.User{
		ID:    uuid.NewString(),
		Name:  name,
		Email: email,
		Role:  domain.RoleGuest,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, false, apperrors.NewDatabaseError(err)
	}

	s.publish(ctx, events.EventUserRegistered, user.Email, events.UserRegisteredPayload{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	})
	return user, true, nil
}

// List returns every directory entry.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return users, nil
}

// IsAdmin is the self-check: a caller may only query their own admin status.
// A mismatched query is rejected outright rather than answered with false,
// so one user's role is never disclosed to another.
func (s *UserService) IsAdmin(ctx context.Context, identity *domain.Identity, email string) (bool, error) {
	if identity == nil || identity.Subject != email {
		return false, apperrors.NewForbidden("cannot query another user's role")
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, apperrors.NewDatabaseError(err)
	}
	return user.Role == domain.RoleAdmin, nil
}

// Promote raises a user to the admin role.
func (s *UserService) Promote(ctx context.Context, id string) error {
	if err := s.users.PromoteToAdmin(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("user", map[string]any{"id": id})
		}
		return apperrors.NewDatabaseError(err)
	}

	s.publish(ctx, events.EventUserPromoted, id, events.UserPromotedPayload{UserID: id})
	return nil
}

// Delete removes a directory entry.
func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.users.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("user", map[string]any{"id": id})
		}
		return apperrors.NewDatabaseError(err)
	}
	return nil
}

func (s *UserService) publish(ctx context.Context, eventType events.EventType, subject string, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Subject:   subject,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}
