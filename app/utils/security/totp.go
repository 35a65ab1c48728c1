package security

import (
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

// TOTPVerifier validates RFC 6238 time-based one-time codes. It
// satisfies port.TOTPVerifier.
type TOTPVerifier struct {
	skew uint
}

// NewTOTPVerifier creates a verifier allowing skew steps of clock
// drift in either direction (one step = 30 seconds).
func NewTOTPVerifier(skew uint) *TOTPVerifier {
	return &TOTPVerifier{skew: skew}
}

// Verify reports whether code matches the base32 secret at the
// current time.
func (v *TOTPVerifier) Verify(secret, code string) bool {
	valid, err := totp.ValidateCustom(code, secret, time.Now(), totp.ValidateOpts{
		Period:    30,
		Skew:      v.skew,
		Digits:    otp.DigitsSix,
		Algorithm: otp.AlgorithmSHA1,
	})
	return err == nil && valid
}

// defaultIssuer is the issuer label baked into enrollment secrets.
const defaultIssuer = "identity-service"

// GenerateSecret mints a fresh secret for the username under the
// service issuer.
func (v *TOTPVerifier) GenerateSecret(username string) (string, error) {
	return GenerateSecret(defaultIssuer, username)
}

// GenerateSecret creates a fresh base32 TOTP secret for enrollment.
func GenerateSecret(issuer, username string) (string, error) {
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      issuer,
		AccountName: username,
	})
	if err != nil {
		return "", err
	}
	return key.Secret(), nil
}
