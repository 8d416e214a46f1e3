package auth

import (
	"bookshelf_backend/internal/config"
	"bookshelf_backend/internal/metrics"
	"bookshelf_backend/internal/repository"
	"bookshelf_backend/internal/service"
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

// SessionWindow - срок жизни refresh-записи в хранилище.
// Считается от момента логина и не зависит от TTL самого refresh токена.
const SessionWindow = 14 * 24 * time.Hour

// TokenCodec - выпуск и проверка подписанных токенов
type TokenCodec interface {
	Issue(userID string, ttl time.Duration) (string, error)
	Verify(token string) (userID string, err error)
}

type Deps struct {
	TxManager   trm.Manager
	UserRepo    repository.UserRepository
	SessionRepo repository.SessionRepository
	Codec       TokenCodec
	JWTConfig   config.JWTConfig
	Log         *slog.Logger
	// SessionsInTx - refresh-записи лежат в той же БД, что и пользователи,
	// и откатываются вместе с транзакцией TxManager
	SessionsInTx bool
	// Now - источник времени, по умолчанию time.Now
	Now func() time.Time
}

type serv struct {
	txManager   trm.Manager
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	codec       TokenCodec
	jwtConfig   config.JWTConfig
	log         *slog.Logger
	now         func() time.Time

	sessionsInTx bool
}

func NewService(deps Deps) service.AuthService {
	s := &serv{
		txManager:   deps.TxManager,
		userRepo:    deps.UserRepo,
		sessionRepo: deps.SessionRepo,
		codec:       deps.Codec,
		jwtConfig:   deps.JWTConfig,
		log:         deps.Log,
		now:         deps.Now,

		sessionsInTx: deps.SessionsInTx,
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.log == nil {
		s.log = slog.Default()
	}
	return s
}

// observe - счётчик операции по исходу
func (s *serv) observe(operation string, err *error) {
	metrics.ObserveAuth(operation, service.KindName(*err))
}

// internal - логирует причину и возвращает ошибку без подробностей для клиента
func (s *serv) internal(ctx context.Context, event string, err error) error {
	s.log.ErrorContext(ctx, event, "err", err)
	return service.NewError(service.ErrInternal, "internal server error", err)
}

// subject - ID пользователя из access токена, любая ошибка кодека -> Unauthorized
func (s *serv) subject(accessToken string) (string, error) {
	if isBlank(accessToken) {
		return "", errMissingToken
	}
	userID, err := s.codec.Verify(accessToken)
	if err != nil {
		return "", service.NewError(service.ErrUnauthorized, "invalid token", err)
	}
	if isBlank(userID) {
		return "", errInvalidToken
	}
	return userID, nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
