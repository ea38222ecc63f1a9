package auth

import "golang.org/x/crypto/bcrypt"

const bcryptCost = 12

// HashPassword derives the stored form of a password.
func HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword compares a submitted password against the stored hash.
// bcrypt's comparison takes effectively constant effort, so mismatches are
// indistinguishable from one another from the outside.
func CheckPassword(hashed, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}
