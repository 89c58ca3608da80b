package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// hashCost matches the cost factor used for every stored digest.
const hashCost = 12

// HashPassword produces a salted bcrypt digest. A fresh salt is drawn
// per call, so hashing the same plaintext twice yields different digests.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword checks plaintext against a stored digest. It fails
// closed: a malformed digest is a mismatch, never an error to the caller.
func VerifyPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
