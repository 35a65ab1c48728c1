package security

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// BcryptHasher computes and verifies bcrypt password hashes at a
// configured cost. It satisfies port.PasswordHasher.
type BcryptHasher struct {
	cost  int
	dummy string
}

// NewBcryptHasher creates a hasher at the given cost. The dummy hash
// used for absent usernames is computed once, at the same cost as
// real hashes, so comparing against it costs the same as comparing
// against a stored hash.
func NewBcryptHasher(cost int) (*BcryptHasher, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("bcrypt cost %d out of range [%d, %d]", cost, bcrypt.MinCost, bcrypt.MaxCost)
	}

	dummy, err := bcrypt.GenerateFromPassword([]byte("decoy-credential"), cost)
	if err != nil {
		return nil, fmt.Errorf("failed to precompute dummy hash: %w", err)
	}

	return &BcryptHasher{cost: cost, dummy: string(dummy)}, nil
}

// Hash computes a bcrypt hash of password at the current cost.
func (h *BcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Compare reports whether password matches hash.
func (h *BcryptHasher) Compare(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// Cost extracts the cost parameter hash was generated with.
func (h *BcryptHasher) Cost(hash string) (int, error) {
	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		return 0, fmt.Errorf("failed to read hash cost: %w", err)
	}
	return cost, nil
}

// CurrentCost returns the configured cost for new hashes.
func (h *BcryptHasher) CurrentCost() int {
	return h.cost
}

// DummyHash returns the precomputed decoy hash. Callers compare the
// supplied password against it when the username does not exist, so
// the absent-user branch performs the same bcrypt work as the
// wrong-password branch.
func (h *BcryptHasher) DummyHash() string {
	return h.dummy
}
