package service

//go:generate mockgen -destination=../../mocks/mock_token_generator.go -package=mocks github.com/greenledger/auth-service/internal/auth/service TokenGenerator

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/greenledger/auth-service/internal/auth/domain"
	"github.com/greenledger/auth-service/internal/auth/password"
	autherror "github.com/greenledger/auth-service/internal/errors"
	"github.com/greenledger/auth-service/pkg/constant"
)

type TokenGenerator interface {
	Issue(user *domain.User) (*IssuedTokens, error)
	DecodeAccessToken(tokenString string) (*AccessClaims, error)
	DecodeRefreshToken(tokenString string) (*RefreshClaims, error)
}

// Both token types are signed with the same key, so the typ claim is what
// keeps a refresh token from passing as a bearer access token.
const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

type AccessClaims struct {
	jwt.RegisteredClaims
	TokenType   string                   `json:"typ"`
	Email       string                   `json:"email"`
	Memberships []domain.SpaceMembership `json:"memberships"`
}

type RefreshClaims struct {
	jwt.RegisteredClaims
	TokenType string `json:"typ"`
	Family    string `json:"family"`
}

// IssuedTokens carries the raw token pair plus everything needed to persist
// the matching session row. The raw refresh token itself is never stored.
type IssuedTokens struct {
	AccessToken      string
	RefreshToken     string
	ExpiresIn        int
	Family           string
	RefreshTokenHash string
	RefreshExpiresAt time.Time
}

type TokenService struct {
	signingKey []byte
	hasher     *password.Hasher
}

func NewTokenService(signingKey string, hasher *password.Hasher) *TokenService {
	return &TokenService{
		signingKey: []byte(signingKey),
		hasher:     hasher,
	}
}

// Issue mints an access/refresh pair for user under a fresh random token
// family. A signing failure is a configuration error, not a retryable
// runtime condition.
func (ts *TokenService) Issue(user *domain.User) (*IssuedTokens, error) {
	now := time.Now()
	family := uuid.NewString()

	accessClaims := AccessClaims{
		TokenType:   tokenTypeAccess,
		Email:       user.Email,
		Memberships: user.Memberships,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(constant.AccessTokenTTL)),
			ID:        uuid.NewString(),
		},
	}

	refreshClaims := RefreshClaims{
		TokenType: tokenTypeRefresh,
		Family:    family,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(constant.RefreshTokenTTL)),
			ID:        uuid.NewString(),
		},
	}

	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims).SignedString(ts.signingKey)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	refreshToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims).SignedString(ts.signingKey)
	if err != nil {
		return nil, fmt.Errorf("failed to sign refresh token: %w", err)
	}

	refreshTokenHash, err := ts.hasher.Hash(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("failed to hash refresh token: %w", err)
	}

	return &IssuedTokens{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		ExpiresIn:        int(constant.AccessTokenTTL.Seconds()),
		Family:           family,
		RefreshTokenHash: refreshTokenHash,
		RefreshExpiresAt: now.Add(constant.RefreshTokenTTL),
	}, nil
}

// DecodeAccessToken checks signature and expiry only. The revocation cache
// is the caller's concern.
func (ts *TokenService) DecodeAccessToken(tokenString string) (*AccessClaims, error) {
	claims := &AccessClaims{}
	if err := ts.parse(tokenString, claims); err != nil {
		return nil, err
	}

	if claims.TokenType != tokenTypeAccess {
		return nil, autherror.ErrTokenInvalid
	}

	return claims, nil
}

// DecodeRefreshToken checks signature and expiry; the session-store lookup
// is the caller's concern.
func (ts *TokenService) DecodeRefreshToken(tokenString string) (*RefreshClaims, error) {
	claims := &RefreshClaims{}
	if err := ts.parse(tokenString, claims); err != nil {
		return nil, err
	}

	if claims.TokenType != tokenTypeRefresh || claims.Family == "" {
		return nil, autherror.ErrTokenInvalid
	}

	return claims, nil
}

func (ts *TokenService) parse(tokenString string, claims jwt.Claims) error {
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return ts.signingKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return autherror.ErrTokenExpired
		}
		return autherror.ErrTokenInvalid
	}

	if !token.Valid {
		return autherror.ErrTokenInvalid
	}

	return nil
}
