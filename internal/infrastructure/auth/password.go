package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword gera o hash bcrypt da senha para armazenamento
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}

// CheckPassword compara o hash armazenado com a senha informada.
// Retorna nil quando a senha confere.
func CheckPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
