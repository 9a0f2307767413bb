package mocks

import (
	"context"
	"hotelops/infras/postgres"

	"github.com/jmoiron/sqlx"
)

type txRunnerImpl struct {
}

// WithTx implements postgres.TxRunner. The callback receives a nil
// transaction; repository mocks ignore it.
func (t *txRunnerImpl) WithTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	return fn(nil)
}

func NewTxRunner() postgres.TxRunner {
	return &txRunnerImpl{}
}
