package token

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"
)

const bearerPrefix = "Bearer "

// Equal - сравнение двух токенов за постоянное время
func Equal(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

// Fingerprint - короткий отпечаток токена для логов, сам токен не пишем
func Fingerprint(token string) string {
	if token == "" {
		return ""
	}
	h := sha256.Sum256([]byte(token))
	return hex.EncodeToString(h[:])[:12]
}

// FromHeader - достаёт токен из заголовка "Authorization: Bearer <token>".
// ok == false, если заголовок пуст или без префикса Bearer
func FromHeader(header string) (string, bool) {
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", false
	}
	return strings.TrimPrefix(header, bearerPrefix), true
}

// Header - значение заголовка Authorization для ответа
func Header(token string) string {
	return bearerPrefix + token
}
