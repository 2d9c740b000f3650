package credentials

import (
	"golang.org/x/crypto/bcrypt"
)

// hashCost matches bcrypt's default work factor of 10.
const hashCost = 10

// HashPassword hashes a plaintext password using bcrypt with a per-call
// random salt.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword(
		[]byte(password),
		hashCost,
	)
	if err != nil {
		return "", err
	}

	return string(bytes), nil
}

// VerifyPassword compares plaintext password with stored hash.
func VerifyPassword(hash string, password string) error {
	return bcrypt.CompareHashAndPassword(
		[]byte(hash),
		[]byte(password),
	)
}
