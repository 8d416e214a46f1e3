package config

import (
	"time"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type HTTPConfig interface {
	Address() string
}

type LogConfig interface {
	Level() string
}

type PGConfig interface {
	DSN() string
}

type RedisConfig interface {
	Address() string
	Password() string
	DB() int
}

type MongoConfig interface {
	URI() string
	Database() string
}

// Хранилища refresh-записей
const (
	StoragePostgres = "postgres"
	StorageRedis    = "redis"
	StorageMongo    = "mongo"
	StorageMemory   = "memory"
)

type StorageConfig interface {
	// Sessions - где лежат refresh-записи
	Sessions() string
	// Users - где лежат учётные записи: postgres или memory
	Users() string
}

type JWTConfig interface {
	AccessTokenSecretKey() []byte
	AccessTokenDuration() time.Duration
	RefreshTokenDuration() time.Duration
}

type CookieConfig interface {
	Secure() bool
}

type CORSConfig interface {
	AllowedOrigins() []string
	AllowedMethods() []string
	AllowedHeaders() []string
	ExposedHeaders() []string
	AllowCredentials() bool
	MaxAge() int
}
