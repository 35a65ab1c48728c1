package token

import (
	"crypto/rsa"
	"fmt"
	"os"

	"github.com/golang-jwt/jwt/v5"
)

// Key material is read from disk on every operation so a rotated key
// pair takes effect without a restart.

func loadPrivateKey(keyFile string) (*rsa.PrivateKey, error) {
	pemBytes, err := os.ReadFile(keyFile + ".private")
	if err != nil {
		return nil, fmt.Errorf("failed to read private key: %w", err)
	}

	key, err := jwt.ParseRSAPrivateKeyFromPEM(pemBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}
	return key, nil
}

func loadPublicKey(keyFile string) (*rsa.PublicKey, error) {
	pemBytes, err := os.ReadFile(keyFile + ".public")
	if err != nil {
		return nil, fmt.Errorf("failed to read public key: %w", err)
	}

	key, err := jwt.ParseRSAPublicKeyFromPEM(pemBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse public key: %w", err)
	}
	return key, nil
}
