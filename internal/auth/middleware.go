package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/bistro-service/internal/domain"
	"github.com/spec-kit/bistro-service/internal/repository"
	apperrors "github.com/spec-kit/bistro-service/pkg/util"
)

const identityKey = "auth_identity"

// AuthMiddleware validates bearer credentials and enforces directory roles.
type AuthMiddleware struct {
	tokens *TokenManager
	users  repository.UserRepository
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens *TokenManager, users repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, users: users}
}

// Handle authenticates the request and stores the identity for downstream
// handlers. It performs no directory lookup; role checks happen in
// RequireAdmin, strictly after this succeeds.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewUnauthenticated("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthenticated("invalid authorization header")
	}

	identity, err := m.tokens.Validate(parts[1])
	if err != nil {
		return err
	}

	c.Locals(identityKey, identity)
	return c.Next()
}

// RequireAdmin resolves the caller's role from the user directory and
// rejects non-admins. The directory is consulted on every call: roles can
// change after a credential is issued, so a role claim cached in the token
// would not be trustworthy.
func (m *AuthMiddleware) RequireAdmin(c *fiber.Ctx) error {
	identity, ok := IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("missing identity")
	}

	user, err := m.users.GetByEmail(c.UserContext(), identity.Subject)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewForbidden("forbidden")
		}
		return apperrors.NewDatabaseError(err)
	}
	if user.Role != domain.RoleAdmin {
		return apperrors.NewForbidden("forbidden")
	}
	return c.Next()
}

// IdentityFromContext retrieves the authenticated identity.
func IdentityFromContext(c *fiber.Ctx) (*domain.Identity, bool) {
	val := c.Locals(identityKey)
	if val == nil {
		return nil, false
	}
	identity, ok := val.(*domain.Identity)
	return identity, ok
}
