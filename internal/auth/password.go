// Package auth provides password hashing and bearer-token signing for
// the recipe API.
package auth

import "golang.org/x/crypto/bcrypt"

// bcryptCost matches the 12 salt rounds the API has always used;
// existing stored hashes depend on it staying fixed.
const bcryptCost = 12

// HashPassword returns a salted bcrypt hash of pw.
func HashPassword(pw string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(pw), bcryptCost)
	return string(b), err
}

// CheckPassword reports whether pw matches the stored hash.
func CheckPassword(hash, pw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pw)) == nil
}
