package env

import (
	"bookshelf_backend/internal/config"
	"errors"
)

const (
	httpAddrEnvName     = "HTTP_ADDR"
	logLevelEnvName     = "LOG_LEVEL"
	cookieSecureEnvName = "COOKIE_SECURE"
	configFileEnvName   = "CONFIG_FILE"
)

type httpConfig struct {
	address string
}

func NewHTTPConfig() (config.HTTPConfig, error) {
	addr := newViper().GetString(httpAddrEnvName)
	if len(addr) == 0 {
		return nil, errors.New("http address not found")
	}
	return &httpConfig{address: addr}, nil
}

func (cfg *httpConfig) Address() string {
	return cfg.address
}

type logConfig struct {
	level string
}

func NewLogConfig() config.LogConfig {
	return &logConfig{level: newViper().GetString(logLevelEnvName)}
}

func (cfg *logConfig) Level() string {
	return cfg.level
}

type cookieConfig struct {
	secure bool
}

func NewCookieConfig() config.CookieConfig {
	return &cookieConfig{secure: newViper().GetBool(cookieSecureEnvName)}
}

func (cfg *cookieConfig) Secure() bool {
	return cfg.secure
}
