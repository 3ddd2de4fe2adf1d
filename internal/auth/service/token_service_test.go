package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenledger/auth-service/internal/auth/domain"
	"github.com/greenledger/auth-service/internal/auth/password"
	autherror "github.com/greenledger/auth-service/internal/errors"
)

func testUser() *domain.User {
	return &domain.User{
		ID:    "user-123",
		Email: "alice@example.com",
		Memberships: []domain.SpaceMembership{
			{SpaceID: "space-1", Role: "owner"},
			{SpaceID: "space-2", Role: "member"},
		},
	}
}

func TestTokenService_Issue(t *testing.T) {
	ts := NewTokenService("signing-key", password.NewHasher())

	issued, err := ts.Issue(testUser())
	require.NoError(t, err)

	assert.NotEmpty(t, issued.AccessToken)
	assert.NotEmpty(t, issued.RefreshToken)
	assert.NotEqual(t, issued.AccessToken, issued.RefreshToken)
	assert.Equal(t, 900, issued.ExpiresIn)
	assert.NotEmpty(t, issued.Family)
	assert.WithinDuration(t, time.Now().Add(30*24*time.Hour), issued.RefreshExpiresAt, time.Minute)

	// The stored hash must redeem the raw refresh token and nothing else.
	hasher := password.NewHasher()
	assert.True(t, hasher.Verify(issued.RefreshTokenHash, issued.RefreshToken))
	assert.False(t, hasher.Verify(issued.RefreshTokenHash, issued.AccessToken))
}

func TestTokenService_AccessClaimsRoundtrip(t *testing.T) {
	ts := NewTokenService("signing-key", password.NewHasher())
	user := testUser()

	issued, err := ts.Issue(user)
	require.NoError(t, err)

	claims, err := ts.DecodeAccessToken(issued.AccessToken)
	require.NoError(t, err)

	assert.Equal(t, user.ID, claims.Subject)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, user.Memberships, claims.Memberships)
	assert.NotEmpty(t, claims.ID)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), claims.ExpiresAt.Time, time.Minute)
}

func TestTokenService_RefreshClaimsRoundtrip(t *testing.T) {
	ts := NewTokenService("signing-key", password.NewHasher())
	user := testUser()

	issued, err := ts.Issue(user)
	require.NoError(t, err)

	claims, err := ts.DecodeRefreshToken(issued.RefreshToken)
	require.NoError(t, err)

	assert.Equal(t, user.ID, claims.Subject)
	assert.Equal(t, issued.Family, claims.Family)
	assert.NotEmpty(t, claims.ID)
}

func TestTokenService_DecodeRejectsWrongKey(t *testing.T) {
	ts := NewTokenService("signing-key", password.NewHasher())
	other := NewTokenService("different-key", password.NewHasher())

	issued, err := ts.Issue(testUser())
	require.NoError(t, err)

	_, err = other.DecodeAccessToken(issued.AccessToken)
	assert.ErrorIs(t, err, autherror.ErrTokenInvalid)

	_, err = other.DecodeRefreshToken(issued.RefreshToken)
	assert.ErrorIs(t, err, autherror.ErrTokenInvalid)
}

func TestTokenService_DecodeRejectsGarbage(t *testing.T) {
	ts := NewTokenService("signing-key", password.NewHasher())

	_, err := ts.DecodeAccessToken("not-a-token")
	assert.ErrorIs(t, err, autherror.ErrTokenInvalid)

	_, err = ts.DecodeRefreshToken("")
	assert.ErrorIs(t, err, autherror.ErrTokenInvalid)
}

func TestTokenService_DecodeRejectsExpired(t *testing.T) {
	ts := NewTokenService("signing-key", password.NewHasher())

	claims := RefreshClaims{
		Family: "family-1",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-123",
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			ID:        "jti-1",
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(ts.signingKey)
	require.NoError(t, err)

	_, err = ts.DecodeRefreshToken(expired)
	assert.ErrorIs(t, err, autherror.ErrTokenExpired)
}

func TestTokenService_RefreshDecodeRequiresFamily(t *testing.T) {
	ts := NewTokenService("signing-key", password.NewHasher())

	// An access token carries no family claim and must not pass as a
	// refresh token.
	issued, err := ts.Issue(testUser())
	require.NoError(t, err)

	_, err = ts.DecodeRefreshToken(issued.AccessToken)
	assert.ErrorIs(t, err, autherror.ErrTokenInvalid)
}

func TestTokenService_AccessDecodeRejectsRefreshToken(t *testing.T) {
	ts := NewTokenService("signing-key", password.NewHasher())

	// Both tokens share a signing key. A refresh token must not grant
	// bearer access for its full 30-day lifetime.
	issued, err := ts.Issue(testUser())
	require.NoError(t, err)

	_, err = ts.DecodeAccessToken(issued.RefreshToken)
	assert.ErrorIs(t, err, autherror.ErrTokenInvalid)
}

func TestTokenService_AccessDecodeRejectsMissingType(t *testing.T) {
	ts := NewTokenService("signing-key", password.NewHasher())

	claims := jwt.RegisteredClaims{
		Subject:   "user-123",
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		ID:        "jti-1",
	}
	untyped, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(ts.signingKey)
	require.NoError(t, err)

	_, err = ts.DecodeAccessToken(untyped)
	assert.ErrorIs(t, err, autherror.ErrTokenInvalid)
}
