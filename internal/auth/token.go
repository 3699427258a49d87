package auth

import (
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/spec-kit/bistro-service/internal/domain"
	apperrors "github.com/spec-kit/bistro-service/pkg/util"
)

// TokenManager handles issuing and validating signed credentials.
//
// Issuance trusts the caller-supplied subject verbatim; there is no password
// or directory check at this point. That is the documented trust boundary of
// the login flow, not an omission. Roles are never embedded in the
// credential: privileged calls re-resolve them from the user directory.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager builds a new manager.
func NewTokenManager(secret string, ttlMinutes int) *TokenManager {
	if ttlMinutes <= 0 {
		ttlMinutes = 60
	}
	return &TokenManager{secret: []byte(secret), ttl: time.Duration(ttlMinutes) * time.Minute}
}

// Claims describes the credential payload.
type Claims struct {
	jwt.RegisteredClaims
}

// Issue builds and signs a credential for the subject email.
func (tm *TokenManager) Issue(subject string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(tm.ttl)
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(tm.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// Validate verifies signature and expiry and extracts the identity claim.
// Every failure surfaces as UNAUTHENTICATED, regardless of cause.
func (tm *TokenManager) Validate(tokenStr string) (*domain.Identity, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, apperrors.NewUnauthenticated("unexpected signing method")
		}
		return tm.secret, nil
	})
	if err != nil {
		return nil, apperrors.NewUnauthenticated("invalid or expired credential")
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid || claims.Subject == "" {
		return nil, apperrors.NewUnauthenticated("invalid credential claims")
	}

	identity := &domain.Identity{Subject: claims.Subject}
	if claims.IssuedAt != nil {
		identity.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		identity.ExpiresAt = claims.ExpiresAt.Time
	}
	return identity, nil
}
