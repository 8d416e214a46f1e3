package user_repo

import (
	"bookshelf_backend/internal/model"
	"bookshelf_backend/internal/repository"
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table           = "users"
	colID           = "id"
	colName         = "name"
	colPasswordHash = "password_hash"
	colAPIKey       = "api_key"

	uniqueViolation = "23505"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewUserRepository(dbc *pgxpool.Pool) repository.UserRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// CreateUser - создает пользователя в БД.
// Если такой ID уже есть, возвращает repository.ErrUserExists
func (r *repo) CreateUser(ctx context.Context, user *model.User) error {
	sqlStr, args, err := insertQuery(user).ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return repository.ErrUserExists
		}
		return err
	}

	return nil
}

// GetUser - возвращает пользователя по ID
func (r *repo) GetUser(ctx context.Context, id string) (*model.User, error) {
	sqlStr, args, err := selectQuery(id).ToSql()
	if err != nil {
		return nil, err
	}

	var user model.User
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).
		QueryRow(ctx, sqlStr, args...).
		Scan(&user.ID, &user.Name, &user.PasswordHash, &user.APIKey)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}

// UpdateUser - перезаписывает имя, хэш пароля и API ключ
func (r *repo) UpdateUser(ctx context.Context, user *model.User) error {
	sqlStr, args, err := updateQuery(user).ToSql()
	if err != nil {
		return err
	}

	tag, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// DeleteUser - удаляет пользователя
func (r *repo) DeleteUser(ctx context.Context, id string) error {
	sqlStr, args, err := psql.Delete(table).
		Where(sq.Eq{colID: id}).
		ToSql()
	if err != nil {
		return err
	}

	tag, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

func insertQuery(user *model.User) sq.InsertBuilder {
	return psql.Insert(table).
		Columns(colID, colName, colPasswordHash, colAPIKey).
		Values(user.ID, user.Name, user.PasswordHash, user.APIKey)
}

func selectQuery(id string) sq.SelectBuilder {
	return psql.Select(colID, colName, colPasswordHash, colAPIKey).
		From(table).
		Where(sq.Eq{colID: id})
}

func updateQuery(user *model.User) sq.UpdateBuilder {
	return psql.Update(table).
		Set(colName, user.Name).
		Set(colPasswordHash, user.PasswordHash).
		Set(colAPIKey, user.APIKey).
		Where(sq.Eq{colID: user.ID})
}
