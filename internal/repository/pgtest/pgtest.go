// Package pgtest поднимает пул к тестовой БД из TEST_PG_DSN.
// Без переменной окружения интеграционные тесты пропускаются.
package pgtest

import (
	"bookshelf_backend/internal/migrations"
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

const dsnEnv = "TEST_PG_DSN"

func NewPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv(dsnEnv)
	if dsn == "" {
		t.Skip(dsnEnv + " is not set")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, migrations.Up(ctx, pool))

	_, err = pool.Exec(ctx, "TRUNCATE refresh_tokens, users")
	require.NoError(t, err)

	return pool
}
