// Package auth provides password hashing and signed bearer tokens.
package auth

import "golang.org/x/crypto/bcrypt"

// bcryptCost trades CPU time for brute-force resistance. Raising it only
// affects newly created hashes; existing ones verify at their stored cost.
const bcryptCost = 10

// HashPassword generates a salted bcrypt hash of the plain-text password.
// Two calls with the same input produce different digests.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	return string(bytes), err
}

// CheckPassword reports whether password matches the stored bcrypt hash.
// A corrupt or unrecognized hash counts as a mismatch, never an error.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
