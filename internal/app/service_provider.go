package app

import (
	authAPI "bookshelf_backend/internal/api/auth"
	"bookshelf_backend/internal/api/middleware"
	"bookshelf_backend/internal/config"
	"bookshelf_backend/internal/config/env"
	"bookshelf_backend/internal/logger"
	"bookshelf_backend/internal/metrics"
	"bookshelf_backend/internal/migrations"
	"bookshelf_backend/internal/repository"
	"bookshelf_backend/internal/repository/memory_repo"
	"bookshelf_backend/internal/repository/session_mongo_repo"
	"bookshelf_backend/internal/repository/session_redis_repo"
	"bookshelf_backend/internal/repository/session_repo"
	"bookshelf_backend/internal/repository/user_repo"
	"bookshelf_backend/internal/service"
	authService "bookshelf_backend/internal/service/auth"
	"bookshelf_backend/pkg/resp"
	"bookshelf_backend/pkg/token"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const connectTimeout = 10 * time.Second

// ServiceProvider - ленивые геттеры зависимостей.
// Ошибки инициализации - паника, App.Run превращает её в ошибку запуска
type ServiceProvider struct {
	log *slog.Logger

	// TXManager
	txManager trm.Manager

	// Configs
	httpCfg    config.HTTPConfig
	logCfg     config.LogConfig
	jwtCfg     config.JWTConfig
	cookieCfg  config.CookieConfig
	storageCfg config.StorageConfig
	corsCfg    config.CORSConfig
	mongoCfg   config.MongoConfig

	// Database
	pgConfig    config.PGConfig
	dbClient    *pgxpool.Pool
	redisClient *redis.Client
	mongoClient *mongo.Client

	// Auth bits
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	codec       *token.Codec
	authServ    service.AuthService
	authHand    *authAPI.Handler

	// Metrics
	registry *prometheus.Registry

	router chi.Router

	// закрываются в обратном порядке при остановке
	closers []func(ctx context.Context) error
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) LogCfg() config.LogConfig {
	if sp.logCfg == nil {
		sp.logCfg = env.NewLogConfig()
	}
	return sp.logCfg
}

func (sp *ServiceProvider) Logger() *slog.Logger {
	if sp.log == nil {
		sp.log = logger.New(sp.LogCfg().Level(), os.Stdout)
	}
	return sp.log
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}
	return sp.httpCfg
}

func (sp *ServiceProvider) JWTCfg() config.JWTConfig {
	if sp.jwtCfg == nil {
		cfg, err := env.NewJWTConfig()
		if err != nil {
			panic("failed to get jwt config: " + err.Error())
		}
		sp.jwtCfg = cfg
	}
	return sp.jwtCfg
}

func (sp *ServiceProvider) CookieCfg() config.CookieConfig {
	if sp.cookieCfg == nil {
		sp.cookieCfg = env.NewCookieConfig()
	}
	return sp.cookieCfg
}

func (sp *ServiceProvider) StorageCfg() config.StorageConfig {
	if sp.storageCfg == nil {
		cfg, err := env.NewStorageConfig()
		if err != nil {
			panic("failed to get storage config: " + err.Error())
		}
		sp.storageCfg = cfg
	}
	return sp.storageCfg
}

func (sp *ServiceProvider) CORSCfg() config.CORSConfig {
	if sp.corsCfg == nil {
		cfg, err := env.NewCORSConfigFromYAML(env.ConfigFile())
		if err != nil {
			panic("failed to get cors config: " + err.Error())
		}
		sp.corsCfg = cfg
	}
	return sp.corsCfg
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

// DBClient - пул Postgres, при первом обращении накатывает миграции
func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			dbc.Close()
			panic("failed to ping db: " + err.Error())
		}
		err = migrations.Up(ctx, dbc)
		if err != nil {
			dbc.Close()
			panic("failed to apply migrations: " + err.Error())
		}

		sp.dbClient = dbc
		sp.onClose(func(context.Context) error {
			dbc.Close()
			return nil
		})
		sp.Logger().Info("storage.postgres.ready")
	}
	return sp.dbClient
}

func (sp *ServiceProvider) RedisClient(ctx context.Context) *redis.Client {
	if sp.redisClient == nil {
		cfg := env.NewRedisConfig()
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Address(),
			Password: cfg.Password(),
			DB:       cfg.DB(),
		})

		pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			_ = client.Close()
			panic("failed to ping redis: " + err.Error())
		}

		sp.redisClient = client
		sp.onClose(func(context.Context) error {
			return client.Close()
		})
		sp.Logger().Info("storage.redis.ready", "addr", cfg.Address())
	}
	return sp.redisClient
}

func (sp *ServiceProvider) MongoCfg() config.MongoConfig {
	if sp.mongoCfg == nil {
		cfg, err := env.NewMongoConfig()
		if err != nil {
			panic("failed to get mongo config: " + err.Error())
		}
		sp.mongoCfg = cfg
	}
	return sp.mongoCfg
}

func (sp *ServiceProvider) MongoClient(ctx context.Context) *mongo.Client {
	if sp.mongoClient == nil {
		cfg := sp.MongoCfg()

		connCtx, cancel := context.WithTimeout(ctx, connectTimeout)
		defer cancel()

		client, err := mongo.Connect(connCtx, options.Client().ApplyURI(cfg.URI()))
		if err != nil {
			panic("failed to connect to mongo: " + err.Error())
		}
		if err = client.Ping(connCtx, nil); err != nil {
			_ = client.Disconnect(connCtx)
			panic("failed to ping mongo: " + err.Error())
		}

		sp.mongoClient = client
		sp.onClose(client.Disconnect)
		sp.Logger().Info("storage.mongo.ready", "database", cfg.Database())
	}
	return sp.mongoClient
}

func (sp *ServiceProvider) UserRepo(ctx context.Context) repository.UserRepository {
	if sp.userRepo == nil {
		switch sp.StorageCfg().Users() {
		case config.StoragePostgres:
			sp.userRepo = user_repo.NewUserRepository(sp.DBClient(ctx))
		default:
			sp.userRepo = memory_repo.NewUserRepository()
		}
	}
	return sp.userRepo
}

func (sp *ServiceProvider) SessionRepo(ctx context.Context) repository.SessionRepository {
	if sp.sessionRepo == nil {
		switch sp.StorageCfg().Sessions() {
		case config.StoragePostgres:
			sp.sessionRepo = session_repo.NewSessionRepository(sp.DBClient(ctx))
		case config.StorageRedis:
			sp.sessionRepo = session_redis_repo.NewSessionRepository(sp.RedisClient(ctx), "")
		case config.StorageMongo:
			db := sp.MongoClient(ctx).Database(sp.MongoCfg().Database())
			sp.sessionRepo = session_mongo_repo.NewSessionRepository(db.Collection(session_mongo_repo.Collection))
		default:
			sp.sessionRepo = memory_repo.NewSessionRepository()
		}
		sp.Logger().Info("storage.sessions", "store", sp.StorageCfg().Sessions())
	}
	return sp.sessionRepo
}

// TXManager - транзакции pgx для Postgres, для памяти - простой вызов функции
func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		if sp.StorageCfg().Users() != config.StoragePostgres {
			sp.txManager = memory_repo.TxManager{}
			return sp.txManager
		}

		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}
		sp.txManager = m
	}
	return sp.txManager
}

// sessionsInTx - refresh-записи и пользователи в одном Postgres, под одним TxManager
func (sp *ServiceProvider) sessionsInTx() bool {
	cfg := sp.StorageCfg()
	return cfg.Users() == config.StoragePostgres && cfg.Sessions() == config.StoragePostgres
}

func (sp *ServiceProvider) Codec() *token.Codec {
	if sp.codec == nil {
		sp.codec = token.NewCodec(sp.JWTCfg().AccessTokenSecretKey())
	}
	return sp.codec
}

func (sp *ServiceProvider) AuthService(ctx context.Context) service.AuthService {
	if sp.authServ == nil {
		sp.authServ = authService.NewService(authService.Deps{
			TxManager:   sp.TXManager(ctx),
			UserRepo:    sp.UserRepo(ctx),
			SessionRepo: sp.SessionRepo(ctx),
			Codec:       sp.Codec(),
			JWTConfig:   sp.JWTCfg(),
			Log:         sp.Logger(),

			SessionsInTx: sp.sessionsInTx(),
		})
	}
	return sp.authServ
}

func (sp *ServiceProvider) AuthHandler(ctx context.Context) *authAPI.Handler {
	if sp.authHand == nil {
		sp.authHand = authAPI.NewHandler(authAPI.HandlerDeps{
			Serv:      sp.AuthService(ctx),
			JWTConfig: sp.JWTCfg(),
			CookieCfg: sp.CookieCfg(),
			Log:       sp.Logger(),
		})
	}
	return sp.authHand
}

// Registry - свой реестр, чтобы повторная сборка роутера не падала на MustRegister
func (sp *ServiceProvider) Registry() *prometheus.Registry {
	if sp.registry == nil {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector())
		metrics.RegisterCollectors(reg)
		sp.registry = reg
	}
	return sp.registry
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		r.Use(chimw.RequestID)
		r.Use(chimw.RealIP)
		r.Use(middleware.RequestLogging(sp.Logger()))
		r.Use(chimw.Recoverer)

		corsCfg := sp.CORSCfg()
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   corsCfg.AllowedOrigins(),
			AllowedMethods:   corsCfg.AllowedMethods(),
			AllowedHeaders:   corsCfg.AllowedHeaders(),
			ExposedHeaders:   corsCfg.ExposedHeaders(),
			AllowCredentials: corsCfg.AllowCredentials(),
			MaxAge:           corsCfg.MaxAge(),
		}))

		r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
			resp.Success(w, "ok", nil)
		})
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(sp.Registry(), promhttp.HandlerOpts{}))

		// Auth endpoints
		authHandler := sp.AuthHandler(ctx)
		r.Route("/api/auth", func(rr chi.Router) {
			rr.Use(middleware.AuthGate(sp.Codec(), sp.Logger()))
			authHandler.Routes(rr)
		})

		sp.router = r
	}
	return sp.router
}

func (sp *ServiceProvider) onClose(fn func(ctx context.Context) error) {
	sp.closers = append(sp.closers, fn)
}

// Close освобождает клиентов хранилищ
func (sp *ServiceProvider) Close(ctx context.Context) error {
	var firstErr error
	for i := len(sp.closers) - 1; i >= 0; i-- {
		if err := sp.closers[i](ctx); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("close: %w", err)
		}
	}
	sp.closers = nil
	return firstErr
}
