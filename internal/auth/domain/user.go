package domain

import "time"

type User struct {
	ID            string
	Email         string
	PasswordHash  string
	Name          string
	Locale        string
	Timezone      string
	TotpSecret    string
	TotpEnabled   bool
	EmailVerified bool
	IsActive      bool
	Memberships   []SpaceMembership
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// SpaceMembership is carried as a claim in the access token; authorization
// itself happens outside this service.
type SpaceMembership struct {
	SpaceID string `json:"space_id"`
	Role    string `json:"role"`
}

// Session is one row per live refresh-token lineage. The raw refresh token
// is never stored; RefreshTokenHash is an Argon2id digest of it, so a leaked
// session table does not leak redeemable tokens.
type Session struct {
	ID               string
	UserID           string
	TokenFamily      string
	RefreshTokenHash string
	ExpiresAt        time.Time
	CreatedAt        time.Time
}

// AuditEvent is append-only and written fire-and-forget.
type AuditEvent struct {
	UserID    string
	Action    string
	IPAddress string
	UserAgent string
	CreatedAt time.Time
}

// Audit action names.
const (
	AuditUserRegistered     = "user.registered"
	AuditUserLogin          = "user.login"
	AuditSuspiciousRefresh  = "security.suspicious_refresh"
	AuditTwoFactorEnabled   = "security.2fa_enabled"
	AuditTwoFactorDisabled  = "security.2fa_disabled"
	AuditPasswordChanged    = "security.password_changed"
	AuditAccessTokenRevoked = "security.access_token_revoked"
)
