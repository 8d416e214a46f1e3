package memory_repo

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

// TxManager выполняет функцию без транзакции: у хранилищ в памяти нет отката
type TxManager struct{}

func (TxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (TxManager) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
