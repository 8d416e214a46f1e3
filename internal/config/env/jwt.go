package env

import (
	"bookshelf_backend/internal/config"
	"fmt"
	"time"
)

const (
	accessTokenKeyEnvName       = "JWT_SECRET"
	accessTokenDurationEnvName  = "ACCESS_TOKEN_DURATION"
	refreshTokenDurationEnvName = "REFRESH_TOKEN_DURATION"
)

type jwtConfig struct {
	accessTokenSecretKey string
	accessTokenDuration  time.Duration
	refreshTokenDuration time.Duration
}

func NewJWTConfig() (config.JWTConfig, error) {
	v := newViper()

	secret := v.GetString(accessTokenKeyEnvName)
	if len(secret) == 0 {
		return nil, fmt.Errorf("jwt secret key not found")
	}

	accessTokenDuration, err := parsePositiveDuration(v.GetString(accessTokenDurationEnvName))
	if err != nil {
		return nil, fmt.Errorf("invalid access token duration: %w", err)
	}

	refreshTokenDuration, err := parsePositiveDuration(v.GetString(refreshTokenDurationEnvName))
	if err != nil {
		return nil, fmt.Errorf("invalid refresh token duration: %w", err)
	}

	return &jwtConfig{
		accessTokenSecretKey: secret,
		accessTokenDuration:  accessTokenDuration,
		refreshTokenDuration: refreshTokenDuration,
	}, nil
}

func parsePositiveDuration(s string) (time.Duration, error) {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("duration must be positive, got %s", d)
	}
	return d, nil
}

func (j *jwtConfig) AccessTokenSecretKey() []byte {
	return []byte(j.accessTokenSecretKey)
}

func (j *jwtConfig) AccessTokenDuration() time.Duration {
	return j.accessTokenDuration
}

func (j *jwtConfig) RefreshTokenDuration() time.Duration {
	return j.refreshTokenDuration
}
