package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/greenledger/auth-service/internal/auth/domain"
	"github.com/greenledger/auth-service/internal/auth/dto"
	"github.com/greenledger/auth-service/internal/auth/password"
	"github.com/greenledger/auth-service/internal/auth/totp"
	autherror "github.com/greenledger/auth-service/internal/errors"
	"github.com/greenledger/auth-service/pkg/constant"
)

// AuthService orchestrates credential verification, token issuance,
// refresh rotation and the TOTP lifecycle. It holds no mutable state
// between calls; correctness under concurrency rests on the backing
// stores.
type AuthService struct {
	users    domain.UserRepository
	sessions domain.SessionStore
	cache    domain.EphemeralCache
	audit    domain.AuditRecorder
	tokens   TokenGenerator
	hasher   *password.Hasher
	totp     *totp.Engine
	logger   *slog.Logger
}

func NewAuthService(
	users domain.UserRepository,
	sessions domain.SessionStore,
	cache domain.EphemeralCache,
	audit domain.AuditRecorder,
	tokens TokenGenerator,
	hasher *password.Hasher,
	totpEngine *totp.Engine,
	logger *slog.Logger,
) *AuthService {
	return &AuthService{
		users:    users,
		sessions: sessions,
		cache:    cache,
		audit:    audit,
		tokens:   tokens,
		hasher:   hasher,
		totp:     totpEngine,
		logger:   logger,
	}
}

func (s *AuthService) Register(ctx context.Context, input dto.RegisterInput) (*dto.AuthOutput, error) {
	existing, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, autherror.ErrDuplicateEmail
	}

	passwordHash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        input.Email,
		PasswordHash: passwordHash,
		Name:         input.Name,
		Locale:       defaultString(input.Locale, "en"),
		Timezone:     defaultString(input.Timezone, "UTC"),
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	issued, err := s.issueSession(ctx, user)
	if err != nil {
		return nil, err
	}

	s.emitAudit(ctx, user.ID, domain.AuditUserRegistered, input.IPAddress, input.UserAgent)

	return authOutput(user, issued), nil
}

func (s *AuthService) Login(ctx context.Context, input dto.LoginInput) (*dto.AuthOutput, error) {
	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	// Absent user, inactive user and wrong password all collapse into the
	// same answer so callers cannot tell which field failed.
	if user == nil || !user.IsActive {
		return nil, autherror.ErrInvalidCredentials
	}

	if !s.hasher.Verify(user.PasswordHash, input.Password) {
		s.countFailedLogin(ctx, input.Email)
		return nil, autherror.ErrInvalidCredentials
	}

	if user.TotpEnabled {
		if input.TotpCode == "" {
			return nil, autherror.ErrTwoFactorRequired
		}
		if !s.totp.Verify(user.TotpSecret, input.TotpCode) {
			return nil, autherror.ErrInvalidTwoFactorCode
		}
	}

	issued, err := s.issueSession(ctx, user)
	if err != nil {
		return nil, err
	}

	s.emitAudit(ctx, user.ID, domain.AuditUserLogin, input.IPAddress, input.UserAgent)

	return authOutput(user, issued), nil
}

// Refresh rotates a refresh token: the presented token's session row is
// deleted and a fresh pair under a new random family replaces it. Exactly
// one of two concurrent calls with the same token can win the rotation.
func (s *AuthService) Refresh(ctx context.Context, input dto.RefreshInput) (*dto.AuthOutput, error) {
	claims, err := s.tokens.DecodeRefreshToken(input.RefreshToken)
	if err != nil {
		return nil, err
	}

	session, err := s.sessions.FindSessionByFamily(ctx, claims.Family)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, autherror.ErrTokenInvalid
	}

	if !s.hasher.Verify(session.RefreshTokenHash, input.RefreshToken) {
		// A signed token naming a live family whose hash does not match is
		// either a race artifact or tampering. Destroy the lineage and fail
		// closed with the same answer an expired token gets.
		if _, err := s.sessions.DeleteSessionByFamily(ctx, claims.Family); err != nil {
			s.logger.Error("failed to delete suspicious session", "family", claims.Family, "error", err)
		}
		s.emitAudit(ctx, session.UserID, domain.AuditSuspiciousRefresh, input.IPAddress, input.UserAgent)

		return nil, autherror.ErrTokenInvalid
	}

	if session.ExpiresAt.Before(time.Now()) {
		return nil, autherror.ErrTokenExpired
	}

	user, err := s.users.GetByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, autherror.ErrTokenInvalid
	}

	issued, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}

	rotated, err := s.sessions.RotateSession(ctx, claims.Family, newSession(user.ID, issued))
	if err != nil {
		return nil, err
	}
	if !rotated {
		// A concurrent refresh consumed the old session first.
		return nil, autherror.ErrTokenInvalid
	}

	return authOutput(user, issued), nil
}

// Logout is best-effort: the caller's intent is to terminate the session,
// so every failure is logged and swallowed.
func (s *AuthService) Logout(ctx context.Context, input dto.RefreshInput) {
	claims, err := s.tokens.DecodeRefreshToken(input.RefreshToken)
	if err != nil {
		s.logger.Warn("logout with undecodable refresh token", "error", err)
		return
	}

	// The revocation cache is keyed by access-token jtis only, so there is
	// no entry to clear for a refresh token; deleting the session row is the
	// whole of logout.
	if _, err := s.sessions.DeleteSessionByFamily(ctx, claims.Family); err != nil {
		s.logger.Warn("logout failed to delete session", "family", claims.Family, "error", err)
	}
}

func (s *AuthService) SetupTwoFactor(ctx context.Context, userID string) (*dto.TwoFactorSetupOutput, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, autherror.ErrInvalidCredentials
	}
	if user.TotpEnabled {
		return nil, autherror.ErrTwoFactorAlreadyEnabled
	}

	secret, err := s.totp.GenerateSecret(user.Email)
	if err != nil {
		return nil, err
	}

	// The secret only becomes authoritative on the user after a correct
	// code is presented; until then it lives in the cache.
	if err := s.cache.Set(ctx, constant.TwoFactorStagePrefix+userID, secret.Secret, constant.TwoFactorStageTTL); err != nil {
		return nil, err
	}

	return &dto.TwoFactorSetupOutput{
		Secret:          secret.Secret,
		ProvisioningURI: secret.ProvisioningURI,
	}, nil
}

func (s *AuthService) VerifyAndEnableTwoFactor(ctx context.Context, userID string, input dto.TwoFactorVerifyInput) error {
	key := constant.TwoFactorStagePrefix + userID

	staged, err := s.cache.Get(ctx, key)
	if err != nil {
		return err
	}
	if staged == "" {
		return autherror.ErrTwoFactorSetupExpired
	}

	if !s.totp.Verify(staged, input.Code) {
		return autherror.ErrInvalidTwoFactorCode
	}

	// Atomic consume: a second concurrent enable sees the key gone and
	// fails as expired.
	consumed, err := s.cache.GetDel(ctx, key)
	if err != nil {
		return err
	}
	if consumed == "" {
		return autherror.ErrTwoFactorSetupExpired
	}

	if err := s.users.EnableTwoFactor(ctx, userID, consumed); err != nil {
		return err
	}

	s.emitAudit(ctx, userID, domain.AuditTwoFactorEnabled, input.IPAddress, input.UserAgent)

	return nil
}

func (s *AuthService) DisableTwoFactor(ctx context.Context, userID string, input dto.TwoFactorDisableInput) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil || !s.hasher.Verify(user.PasswordHash, input.Password) {
		return autherror.ErrInvalidCredentials
	}

	if err := s.users.DisableTwoFactor(ctx, userID); err != nil {
		return err
	}

	s.emitAudit(ctx, userID, domain.AuditTwoFactorDisabled, input.IPAddress, input.UserAgent)

	return nil
}

func (s *AuthService) ChangePassword(ctx context.Context, userID string, input dto.ChangePasswordInput) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil || !s.hasher.Verify(user.PasswordHash, input.CurrentPassword) {
		return autherror.ErrInvalidCredentials
	}

	newHash, err := s.hasher.Hash(input.NewPassword)
	if err != nil {
		return err
	}

	if err := s.users.UpdatePassword(ctx, userID, newHash); err != nil {
		return err
	}

	// Every outstanding refresh lineage dies with the old password.
	if err := s.sessions.DeleteAllSessionsForUser(ctx, userID); err != nil {
		return err
	}

	s.emitAudit(ctx, userID, domain.AuditPasswordChanged, input.IPAddress, input.UserAgent)

	return nil
}

// RevokeAccessToken blacklists a jti for the token's remaining lifetime.
func (s *AuthService) RevokeAccessToken(ctx context.Context, input dto.RevokeTokenInput) error {
	ttl := time.Until(input.ExpiresAt)
	if ttl <= 0 {
		return nil
	}

	if err := s.cache.Set(ctx, constant.RevocationKeyPrefix+input.JTI, "1", ttl); err != nil {
		return err
	}

	s.emitAudit(ctx, input.UserID, domain.AuditAccessTokenRevoked, input.IPAddress, input.UserAgent)

	return nil
}

// VerifyAccessToken checks signature, expiry and the revocation cache. The
// revocation lookup fails closed: if the cache cannot answer, the token is
// rejected.
func (s *AuthService) VerifyAccessToken(ctx context.Context, tokenString string) (*AccessClaims, error) {
	claims, err := s.tokens.DecodeAccessToken(tokenString)
	if err != nil {
		return nil, err
	}

	revoked, err := s.cache.Get(ctx, constant.RevocationKeyPrefix+claims.ID)
	if err != nil {
		s.logger.Error("revocation cache unavailable, rejecting token", "jti", claims.ID, "error", err)
		return nil, autherror.ErrTokenInvalid
	}
	if revoked != "" {
		return nil, autherror.ErrTokenInvalid
	}

	return claims, nil
}

func (s *AuthService) issueSession(ctx context.Context, user *domain.User) (*IssuedTokens, error) {
	issued, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}

	if err := s.sessions.CreateSession(ctx, newSession(user.ID, issued)); err != nil {
		return nil, err
	}

	return issued, nil
}

// countFailedLogin fails open: throttling detection is a soft mitigation,
// so a cache outage must not block logins.
func (s *AuthService) countFailedLogin(ctx context.Context, email string) {
	count, err := s.cache.Increment(ctx, constant.FailedLoginPrefix+email, constant.FailedLoginTTL)
	if err != nil {
		s.logger.Warn("failed-login counter unavailable", "error", err)
		return
	}

	if count >= constant.FailedLoginWarnThreshold {
		s.logger.Warn("repeated failed logins", "email", email, "count", count)
	}
}

func (s *AuthService) emitAudit(ctx context.Context, userID, action, ip, userAgent string) {
	event := &domain.AuditEvent{
		UserID:    userID,
		Action:    action,
		IPAddress: ip,
		UserAgent: userAgent,
		CreatedAt: time.Now(),
	}
	if err := s.audit.Record(ctx, event); err != nil {
		s.logger.Warn("failed to record audit event", "action", action, "error", err)
	}
}

func newSession(userID string, issued *IssuedTokens) *domain.Session {
	return &domain.Session{
		ID:               uuid.NewString(),
		UserID:           userID,
		TokenFamily:      issued.Family,
		RefreshTokenHash: issued.RefreshTokenHash,
		ExpiresAt:        issued.RefreshExpiresAt,
		CreatedAt:        time.Now(),
	}
}

func authOutput(user *domain.User, issued *IssuedTokens) *dto.AuthOutput {
	return &dto.AuthOutput{
		User: dto.NewUserOutput(user),
		Tokens: &dto.TokenResponse{
			AccessToken:  issued.AccessToken,
			RefreshToken: issued.RefreshToken,
			ExpiresIn:    issued.ExpiresIn,
		},
	}
}

func defaultString(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
