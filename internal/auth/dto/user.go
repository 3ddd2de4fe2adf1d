package dto

import (
	"time"

	"github.com/greenledger/auth-service/internal/auth/domain"
)

// UserOutput is the sanitized user shape returned to callers. It never
// carries the password hash or the TOTP secret.
type UserOutput struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	Locale        string    `json:"locale"`
	Timezone      string    `json:"timezone"`
	TotpEnabled   bool      `json:"totp_enabled"`
	EmailVerified bool      `json:"email_verified"`
	CreatedAt     time.Time `json:"created_at"`
}

func NewUserOutput(u *domain.User) *UserOutput {
	return &UserOutput{
		ID:            u.ID,
		Email:         u.Email,
		Name:          u.Name,
		Locale:        u.Locale,
		Timezone:      u.Timezone,
		TotpEnabled:   u.TotpEnabled,
		EmailVerified: u.EmailVerified,
		CreatedAt:     u.CreatedAt,
	}
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
}

type AuthOutput struct {
	User   *UserOutput    `json:"user"`
	Tokens *TokenResponse `json:"tokens"`
}

type ChangePasswordInput struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`

	IPAddress string `json:"-"`
	UserAgent string `json:"-"`
}
