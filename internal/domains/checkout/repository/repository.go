package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"hotelops/infras/otel"
	"hotelops/infras/postgres"
	"hotelops/internal/domains/checkout/model"
	gDto "hotelops/shared/dto"
	gRepo "hotelops/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Settlement interface {
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Settlement) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Settlement, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
}

type settlementImpl struct {
	gRepo.Repository[model.Settlement]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Settlement {
	return &settlementImpl{
		Repository: gRepo.NewRepository[model.Settlement](model.SettlementEntityName, model.SettlementTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
