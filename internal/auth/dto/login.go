package dto

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	TotpCode string `json:"totp_code,omitempty"`

	IPAddress string `json:"-"`
	UserAgent string `json:"-"`
}
