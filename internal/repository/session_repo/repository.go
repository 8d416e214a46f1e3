package session_repo

import (
	"bookshelf_backend/internal/model"
	"bookshelf_backend/internal/repository"
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table       = "refresh_tokens"
	colUserID   = "user_id"
	colToken    = "token"
	colExpiry   = "expiry"
	upsertClash = "ON CONFLICT (" + colUserID + ") DO UPDATE SET " +
		colToken + " = EXCLUDED." + colToken + ", " +
		colExpiry + " = EXCLUDED." + colExpiry
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewSessionRepository(dbc *pgxpool.Pool) repository.SessionRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// GetSession - refresh-запись пользователя или repository.ErrSessionNotFound
func (r *repo) GetSession(ctx context.Context, userID string) (*model.Session, error) {
	sqlStr, args, err := psql.Select(colUserID, colToken, colExpiry).
		From(table).
		Where(sq.Eq{colUserID: userID}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var s model.Session
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).
		QueryRow(ctx, sqlStr, args...).
		Scan(&s.UserID, &s.RefreshToken, &s.ExpiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrSessionNotFound
		}
		return nil, err
	}

	return &s, nil
}

// UpsertSession - один запрос INSERT ... ON CONFLICT, уникальность user_id держит БД
func (r *repo) UpsertSession(ctx context.Context, session *model.Session) error {
	sqlStr, args, err := upsertQuery(session).ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	return err
}

// DeleteSession - удаляет запись, отсутствие записи не ошибка
func (r *repo) DeleteSession(ctx context.Context, userID string) error {
	sqlStr, args, err := psql.Delete(table).
		Where(sq.Eq{colUserID: userID}).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	return err
}

func upsertQuery(session *model.Session) sq.InsertBuilder {
	return psql.Insert(table).
		Columns(colUserID, colToken, colExpiry).
		Values(session.UserID, session.RefreshToken, session.ExpiresAt).
		Suffix(upsertClash)
}
