package errors

import (
	"errors"
)

var (
	ErrInvalidCredentials      = errors.New("invalid credentials")
	ErrTwoFactorRequired       = errors.New("two-factor code required")
	ErrInvalidTwoFactorCode    = errors.New("invalid two-factor code")
	ErrTokenInvalid            = errors.New("token invalid")
	ErrTokenExpired            = errors.New("token expired")
	ErrDuplicateEmail          = errors.New("email already in use")
	ErrTwoFactorAlreadyEnabled = errors.New("two-factor already enabled")
	ErrTwoFactorSetupExpired   = errors.New("two-factor setup expired")
)
