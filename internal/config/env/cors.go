package env

import (
	"bookshelf_backend/internal/config"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

type corsFile struct {
	CORS struct {
		AllowedOrigins   []string `yaml:"allowed_origins"`
		AllowedMethods   []string `yaml:"allowed_methods"`
		AllowedHeaders   []string `yaml:"allowed_headers"`
		ExposedHeaders   []string `yaml:"exposed_headers"`
		AllowCredentials *bool    `yaml:"allow_credentials"`
		MaxAge           int      `yaml:"max_age"`
	} `yaml:"cors"`
}

type corsConfig struct {
	allowedOrigins   []string
	allowedMethods   []string
	allowedHeaders   []string
	exposedHeaders   []string
	allowCredentials bool
	maxAge           int
}

func defaultCORS() *corsConfig {
	return &corsConfig{
		allowedOrigins:   []string{"http://localhost:3000"},
		allowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		allowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "API-KEY"},
		exposedHeaders:   []string{"Authorization", "Set-Cookie", "API-KEY"},
		allowCredentials: true,
		maxAge:           60 * 15,
	}
}

// NewCORSConfigFromYAML - читает секцию cors из YAML.
// Нет файла - политика по умолчанию, незаданные поля тоже берутся по умолчанию
func NewCORSConfigFromYAML(path string) (config.CORSConfig, error) {
	cfg := defaultCORS()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}

	var f corsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if len(f.CORS.AllowedOrigins) > 0 {
		cfg.allowedOrigins = f.CORS.AllowedOrigins
	}
	if len(f.CORS.AllowedMethods) > 0 {
		cfg.allowedMethods = f.CORS.AllowedMethods
	}
	if len(f.CORS.AllowedHeaders) > 0 {
		cfg.allowedHeaders = f.CORS.AllowedHeaders
	}
	if len(f.CORS.ExposedHeaders) > 0 {
		cfg.exposedHeaders = f.CORS.ExposedHeaders
	}
	if f.CORS.AllowCredentials != nil {
		cfg.allowCredentials = *f.CORS.AllowCredentials
	}
	if f.CORS.MaxAge > 0 {
		cfg.maxAge = f.CORS.MaxAge
	}

	return cfg, nil
}

func (c *corsConfig) AllowedOrigins() []string { return c.allowedOrigins }
func (c *corsConfig) AllowedMethods() []string { return c.allowedMethods }
func (c *corsConfig) AllowedHeaders() []string { return c.allowedHeaders }
func (c *corsConfig) ExposedHeaders() []string { return c.exposedHeaders }
func (c *corsConfig) AllowCredentials() bool   { return c.allowCredentials }
func (c *corsConfig) MaxAge() int              { return c.maxAge }
