package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword returns a bcrypt hash of the password. Each call salts
// independently, so two hashes of the same password differ.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether password matches the stored hash. A
// malformed hash and a mismatch both return false; callers never learn which.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
