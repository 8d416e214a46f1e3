package pass

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPassword - хэширует пароль bcrypt с cost по умолчанию
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword - сравнивает пароль с хэшем, сравнение за постоянное время внутри bcrypt
func VerifyPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
