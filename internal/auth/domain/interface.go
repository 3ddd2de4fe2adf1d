package domain

//go:generate mockgen -destination=../../mocks/mock_user_repository.go -package=mocks github.com/greenledger/auth-service/internal/auth/domain UserRepository
//go:generate mockgen -destination=../../mocks/mock_session_store.go -package=mocks github.com/greenledger/auth-service/internal/auth/domain SessionStore
//go:generate mockgen -destination=../../mocks/mock_ephemeral_cache.go -package=mocks github.com/greenledger/auth-service/internal/auth/domain EphemeralCache
//go:generate mockgen -destination=../../mocks/mock_audit_recorder.go -package=mocks github.com/greenledger/auth-service/internal/auth/domain AuditRecorder

import (
	"context"
	"time"
)

type UserRepository interface {
	// GetByEmail matches case-insensitively and returns (nil, nil) when no
	// user exists.
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	// Create reports a duplicate-email error when the unique index on
	// email rejects the insert.
	Create(ctx context.Context, user *User) error
	UpdatePassword(ctx context.Context, userID, passwordHash string) error
	EnableTwoFactor(ctx context.Context, userID, totpSecret string) error
	DisableTwoFactor(ctx context.Context, userID string) error
}

// SessionStore persists one row per token family. Possession of a matching
// row is what makes a refresh token redeemable.
type SessionStore interface {
	CreateSession(ctx context.Context, session *Session) error
	// FindSessionByFamily returns (nil, nil) when the family has no live
	// session.
	FindSessionByFamily(ctx context.Context, family string) (*Session, error)
	// DeleteSessionByFamily reports whether a row was actually deleted, so
	// callers can use it as a compare-and-delete precondition.
	DeleteSessionByFamily(ctx context.Context, family string) (bool, error)
	// RotateSession atomically deletes the session for oldFamily and inserts
	// next. When oldFamily no longer has a row (a concurrent rotation won),
	// it returns false and persists nothing.
	RotateSession(ctx context.Context, oldFamily string, next *Session) (bool, error)
	DeleteAllSessionsForUser(ctx context.Context, userID string) error
}

// EphemeralCache is the TTL key-value port used for 2FA setup staging,
// failed-login counters and access-token revocation entries.
type EphemeralCache interface {
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	// Get returns ("", nil) on a missing or expired key.
	Get(ctx context.Context, key string) (string, error)
	// GetDel atomically reads and removes a key; ("", nil) when absent.
	GetDel(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
	// Increment adds one to a counter, setting ttl only when the key is
	// created by this call, and returns the new value.
	Increment(ctx context.Context, key string, ttl time.Duration) (int64, error)
}

type AuditRecorder interface {
	Record(ctx context.Context, event *AuditEvent) error
}
