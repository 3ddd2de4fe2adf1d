package dto

type TwoFactorSetupOutput struct {
	Secret          string `json:"secret"`
	ProvisioningURI string `json:"provisioning_uri"`
}

type TwoFactorVerifyInput struct {
	Code string `json:"code"`

	IPAddress string `json:"-"`
	UserAgent string `json:"-"`
}

type TwoFactorDisableInput struct {
	Password string `json:"password"`

	IPAddress string `json:"-"`
	UserAgent string `json:"-"`
}
