// Package totp implements an RFC 6238 time-based one-time-password engine:
// secret generation, 30-second time-step codes over HMAC-SHA1, and
// drift-tolerant verification.
package totp

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha1"
	"crypto/subtle"
	"encoding/binary"
	"fmt"
	"time"
)

const (
	secretBytes = 20 // 160 bits, 32 base32 characters
	stepSeconds = 30
	codeDigits  = 6
	// driftSteps time steps are accepted on either side of now (±60s).
	driftSteps = 2
)

type Engine struct {
	issuer string
	now    func() time.Time
}

func NewEngine(issuer string) *Engine {
	return &Engine{issuer: issuer, now: time.Now}
}

type Secret struct {
	Secret          string
	ProvisioningURI string
}

// GenerateSecret mints a fresh shared secret and the otpauth URI that
// standard authenticator apps scan. The URI layout is a compatibility
// contract; field order and casing must not change.
func (e *Engine) GenerateSecret(identityLabel string) (*Secret, error) {
	raw := make([]byte, secretBytes)
	if _, err := rand.Read(raw); err != nil {
		return nil, fmt.Errorf("generating totp secret: %w", err)
	}

	secret := EncodeBase32(raw)

	return &Secret{
		Secret: secret,
		ProvisioningURI: fmt.Sprintf("otpauth://totp/%s:%s?secret=%s&issuer=%s",
			e.issuer, identityLabel, secret, e.issuer),
	}, nil
}

// ComputeCode derives the 6-digit code for one time step
// (timeStep = floor(unixSeconds/30)).
func (e *Engine) ComputeCode(secret string, timeStep int64) string {
	key := DecodeBase32(secret)

	var counter [8]byte
	binary.BigEndian.PutUint64(counter[:], uint64(timeStep))

	mac := hmac.New(sha1.New, key)
	mac.Write(counter[:])
	digest := mac.Sum(nil)

	// Dynamic truncation per RFC 4226 §5.3.
	offset := digest[len(digest)-1] & 0x0F
	value := uint32(digest[offset]&0x7F)<<24 |
		uint32(digest[offset+1])<<16 |
		uint32(digest[offset+2])<<8 |
		uint32(digest[offset+3])

	return fmt.Sprintf("%0*d", codeDigits, value%1_000_000)
}

// Verify accepts presentedCode if it matches any step within the drift
// window. Comparison is constant time per candidate. Verify mutates no
// state; replay protection within a step is out of scope.
func (e *Engine) Verify(secret, presentedCode string) bool {
	if len(presentedCode) != codeDigits {
		return false
	}

	step := e.now().Unix() / stepSeconds
	for delta := int64(-driftSteps); delta <= driftSteps; delta++ {
		candidate := e.ComputeCode(secret, step+delta)
		if subtle.ConstantTimeCompare([]byte(candidate), []byte(presentedCode)) == 1 {
			return true
		}
	}

	return false
}
