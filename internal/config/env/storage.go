package env

import (
	"bookshelf_backend/internal/config"
	"fmt"
	"strings"
)

const (
	sessionStoreEnvName  = "SESSION_STORE"
	redisAddrEnvName     = "REDIS_ADDR"
	redisPasswordEnvName = "REDIS_PASSWORD"
	redisDBEnvName       = "REDIS_DB"
	mongoURIEnvName      = "MONGO_URI"
	mongoDatabaseEnvName = "MONGO_DATABASE"
)

type storageConfig struct {
	sessions string
	users    string
}

// NewStorageConfig - без PG_DSN всё хранится в памяти.
// Refresh-записи можно вынести в redis или mongo через SESSION_STORE.
func NewStorageConfig() (config.StorageConfig, error) {
	v := newViper()

	users := config.StorageMemory
	if v.GetString(dsnName) != "" {
		users = config.StoragePostgres
	}

	sessions := strings.ToLower(strings.TrimSpace(v.GetString(sessionStoreEnvName)))
	if sessions == "" {
		sessions = users
	}

	switch sessions {
	case config.StorageMemory, config.StorageRedis, config.StorageMongo:
	case config.StoragePostgres:
		if users != config.StoragePostgres {
			return nil, fmt.Errorf("%s=postgres requires %s", sessionStoreEnvName, dsnName)
		}
	default:
		return nil, fmt.Errorf("unknown %s %q", sessionStoreEnvName, sessions)
	}

	return &storageConfig{sessions: sessions, users: users}, nil
}

func (cfg *storageConfig) Sessions() string {
	return cfg.sessions
}

func (cfg *storageConfig) Users() string {
	return cfg.users
}

type redisConfig struct {
	address  string
	password string
	db       int
}

func NewRedisConfig() config.RedisConfig {
	v := newViper()
	return &redisConfig{
		address:  v.GetString(redisAddrEnvName),
		password: v.GetString(redisPasswordEnvName),
		db:       v.GetInt(redisDBEnvName),
	}
}

func (cfg *redisConfig) Address() string {
	return cfg.address
}

func (cfg *redisConfig) Password() string {
	return cfg.password
}

func (cfg *redisConfig) DB() int {
	return cfg.db
}

type mongoConfig struct {
	uri      string
	database string
}

func NewMongoConfig() (config.MongoConfig, error) {
	v := newViper()

	uri := v.GetString(mongoURIEnvName)
	if len(uri) == 0 {
		return nil, fmt.Errorf("mongo uri not found")
	}

	return &mongoConfig{
		uri:      uri,
		database: v.GetString(mongoDatabaseEnvName),
	}, nil
}

func (cfg *mongoConfig) URI() string {
	return cfg.uri
}

func (cfg *mongoConfig) Database() string {
	return cfg.database
}
