package service

import (
	"context"
	"time"

	"github.com/spec-kit/bistro-service/internal/auth"
	apperrors "github.com/spec-kit/bistro-service/pkg/util"
)

// SessionService issues credentials for the login flow.
//
// The caller-supplied email is signed verbatim; there is no directory check
// and no proof of ownership here. This mirrors the front-channel login the
// system was built for, where the upstream identity provider has already
// authenticated the user. It is a trust boundary to keep documented, not one
// to strengthen in place.
type SessionService struct {
	tokens *auth.TokenManager
}

// NewSessionService builds the service.
func NewSessionService(tokens *auth.TokenManager) *SessionService {
	return &SessionService{tokens: tokens}
}

// IssueToken signs a credential for the given subject email.
func (s *SessionService) IssueToken(_ context.Context, email string) (string, time.Time, error) {
	if email == "" {
		return "", time.Time{}, apperrors.NewValidationError("email required", nil)
	}
	return s.tokens.Issue(email)
}
