package constant

import "time"

// Token lifetimes.
const (
	AccessTokenTTL  = 15 * time.Minute
	RefreshTokenTTL = 30 * 24 * time.Hour
)

// Ephemeral-cache key prefixes and TTLs.
const (
	RevocationKeyPrefix  = "blacklist:"
	TwoFactorStagePrefix = "2fa:setup:"
	FailedLoginPrefix    = "failed:login:"

	TwoFactorStageTTL = 5 * time.Minute
	FailedLoginTTL    = 15 * time.Minute
)

// FailedLoginWarnThreshold is the number of failed attempts within the
// counter window that triggers a warning log. Detection only, no lockout.
const FailedLoginWarnThreshold = 5
