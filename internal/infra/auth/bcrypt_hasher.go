package auth

import (
	"crypto/sha256"
	"encoding/hex"

	"todoez/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

// bcrypt only reads the first 72 bytes of its input.
const bcryptMaxInput = 72

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a hasher with the given cost, falling back to bcrypt.DefaultCost when out of range.
func NewBcryptHasher(cost int) service.PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &bcryptHasher{cost: cost}
}

// Hash generates a salted hash. Secrets longer than 72 bytes, such as
// refresh tokens, are reduced with SHA-256 first so no byte is ignored.
func (h *bcryptHasher) Hash(secret string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword(prepare(secret), h.cost)
	if err != nil {
		return "", errors.Wrap(err, "bcrypt hash failed")
	}

	return string(digest), nil
}

// Check compares a plaintext secret with a bcrypt hash.
func (h *bcryptHasher) Check(secret, digest string) bool {
	if digest == "" {
		return false
	}

	return bcrypt.CompareHashAndPassword([]byte(digest), prepare(secret)) == nil
}

func prepare(secret string) []byte {
	if len(secret) <= bcryptMaxInput {
		return []byte(secret)
	}

	sum := sha256.Sum256([]byte(secret))

	return []byte(hex.EncodeToString(sum[:]))
}
