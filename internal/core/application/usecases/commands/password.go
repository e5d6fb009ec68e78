package commands

import "golang.org/x/crypto/bcrypt"

// hashPassword produces an irreversible bcrypt hash of the plaintext
// password. Verification must go through verifyPassword; the plaintext is
// never stored or compared directly.
func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// verifyPassword reports whether the plaintext password matches the stored
// bcrypt hash.
func verifyPassword(passwordHash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password)) == nil
}
