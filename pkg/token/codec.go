package token

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims - полезная нагрузка токена, в Subject лежит ID пользователя
type Claims struct {
	jwt.RegisteredClaims
}

// Codec подписывает и проверяет access и refresh токены (HS256).
// Оба вида токенов отличаются только временем жизни.
type Codec struct {
	secretKey []byte
	now       func() time.Time
}

type Option func(*Codec)

// WithClock подменяет источник текущего времени
func WithClock(now func() time.Time) Option {
	return func(c *Codec) {
		c.now = now
	}
}

func NewCodec(secretKey []byte, opts ...Option) *Codec {
	c := &Codec{
		secretKey: secretKey,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Issue - выпускает подписанный токен для userID со сроком жизни ttl
func (c *Codec) Issue(userID string, ttl time.Duration) (string, error) {
	now := c.now()

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secretKey)
}

// Verify - проверяет подпись и срок действия токена.
// Возвращает ID пользователя из Subject
func (c *Codec) Verify(tokenStr string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{},
		func(*jwt.Token) (interface{}, error) {
			return c.secretKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(c.now),
		jwt.WithExpirationRequired(),
		jwt.WithStrictDecoding(),
	)
	if err != nil {
		return "", classify(tokenStr, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return "", ErrUnspecified
	}

	return claims.Subject, nil
}

// classify сводит ошибки jwt к четырём видам
func classify(raw string, err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return fmt.Errorf("%w: %v", ErrSignatureInvalid, err)
	case errors.Is(err, jwt.ErrTokenExpired):
		return fmt.Errorf("%w: %v", ErrExpired, err)
	case errors.Is(err, jwt.ErrTokenMalformed):
		if brokenSignatureSegment(raw) {
			return fmt.Errorf("%w: %v", ErrSignatureInvalid, err)
		}
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	default:
		return fmt.Errorf("%w: %v", ErrUnspecified, err)
	}
}

// brokenSignatureSegment - заголовок и claims декодируются, а подпись нет.
// Такой токен считаем поддельной подписью, а не битой структурой.
// Лишние точки попадают в третью часть и ломают только подпись.
func brokenSignatureSegment(raw string) bool {
	parts := strings.SplitN(raw, ".", 3)
	if len(parts) != 3 {
		return false
	}

	enc := base64.RawURLEncoding.Strict()
	if _, err := enc.DecodeString(parts[0]); err != nil {
		return false
	}
	if _, err := enc.DecodeString(parts[1]); err != nil {
		return false
	}
	_, err := enc.DecodeString(parts[2])
	return err != nil
}
