package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/authorization"
)

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService("secret", time.Hour)

	token, err := svc.Generate(42, "alice", authorization.RoleAdmin)
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, authorization.RoleAdmin, claims.Role)
	assert.Equal(t, "42", claims.Subject)
}

func TestJWTService_RejectsBadTokens(t *testing.T) {
	svc := NewJWTService("secret", time.Hour)
	valid, err := svc.Generate(1, "bob", authorization.RoleUser)
	require.NoError(t, err)

	expiredSvc := NewJWTService("secret", time.Hour)
	expiredSvc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expired, err := expiredSvc.Generate(1, "bob", authorization.RoleUser)
	require.NoError(t, err)

	otherSecret, err := NewJWTService("other", time.Hour).Generate(1, "bob", authorization.RoleUser)
	require.NoError(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: 1, Role: authorization.RoleAdmin}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	noIdentity, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{Role: authorization.RoleUser}).
		SignedString([]byte("secret"))
	require.NoError(t, err)

	tests := map[string]string{
		"garbage":      "not-a-token",
		"tampered":     valid + "x",
		"expired":      expired,
		"wrong secret": otherSecret,
		"alg none":     none,
		"no identity":  noIdentity,
	}

	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Verify(token)
			assert.Error(t, err)
		})
	}
}

func TestBcryptPasswordHasher(t *testing.T) {
	h := NewBcryptPasswordHasher(bcrypt.MinCost)

	hash, err := h.Hash("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)

	assert.NoError(t, h.Verify("s3cret", hash))
	assert.ErrorIs(t, h.Verify("wrong", hash), ErrPasswordMismatch)
	assert.ErrorIs(t, h.Verify("s3cret", "not-a-hash"), ErrPasswordMismatch)

	_, err = h.Hash("")
	assert.Error(t, err)
}

func TestNewBcryptPasswordHasher_ClampsCost(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptPasswordHasher(0).cost)
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptPasswordHasher(99).cost)
	assert.Equal(t, 12, NewBcryptPasswordHasher(12).cost)
}
