package auth

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/spec-kit/bistro-service/pkg/util"
)

func signWithClaims(t *testing.T, secret []byte, method jwt.SigningMethod, claims *Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(secret)
	require.NoError(t, err)
	return token
}

func TestTokenManager_RoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", 60)

	token, exp, err := tm.Issue("a@x.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	identity, err := tm.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", identity.Subject)
	assert.WithinDuration(t, exp, identity.ExpiresAt, time.Second)
	assert.False(t, identity.IssuedAt.IsZero())
}

func TestTokenManager_Validate(t *testing.T) {
	tm := NewTokenManager("test-secret", 60)
	otherSecret := []byte("other-secret")

	expiredClaims := &Claims{RegisteredClaims: jwt.RegisteredClaims{
		Subject:   "a@x.com",
		IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	}}
	validClaims := &Claims{RegisteredClaims: jwt.RegisteredClaims{
		Subject:   "a@x.com",
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}}
	noSubjectClaims := &Claims{RegisteredClaims: jwt.RegisteredClaims{
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}}

	tests := []struct {
		name  string
		token string
	}{
		{
			// Expiry wins even with a valid signature.
			name:  "expired credential",
			token: signWithClaims(t, tm.secret, jwt.SigningMethodHS256, expiredClaims),
		},
		{
			name:  "wrong signing key",
			token: signWithClaims(t, otherSecret, jwt.SigningMethodHS256, validClaims),
		},
		{
			name:  "wrong signing method",
			token: signWithClaims(t, tm.secret, jwt.SigningMethodHS512, validClaims),
		},
		{
			name:  "missing subject",
			token: signWithClaims(t, tm.secret, jwt.SigningMethodHS256, noSubjectClaims),
		},
		{
			name:  "malformed token",
			token: "not.a.token",
		},
		{
			name:  "empty token",
			token: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			identity, err := tm.Validate(tt.token)
			require.Error(t, err)
			assert.Nil(t, identity)
			assert.Equal(t, "UNAUTHENTICATED", apperrors.ToDomainError(err).Code)
		})
	}
}
