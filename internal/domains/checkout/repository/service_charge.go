package repository

//go:generate go run go.uber.org/mock/mockgen -source=./service_charge.go -destination=../mocks/service_charge_mock.go -package=mocks

import (
	"context"
	"hotelops/infras/otel"
	"hotelops/infras/postgres"
	"hotelops/internal/domains/checkout/model"
	gDto "hotelops/shared/dto"
	gRepo "hotelops/shared/repository"
)

type ServiceCharge interface {
	Insert(ctx context.Context, model model.ServiceCharge) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.ServiceCharge, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type serviceChargeImpl struct {
	gRepo.Repository[model.ServiceCharge]
	db   *postgres.Connection
	otel otel.Otel
}

func NewServiceCharge(db *postgres.Connection, otel otel.Otel) ServiceCharge {
	return &serviceChargeImpl{
		Repository: gRepo.NewRepository[model.ServiceCharge](model.ServiceChargeEntityName, model.ServiceChargeTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
