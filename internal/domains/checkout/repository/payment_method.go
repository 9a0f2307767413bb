package repository

//go:generate go run go.uber.org/mock/mockgen -source=./payment_method.go -destination=../mocks/payment_method_mock.go -package=mocks

import (
	"context"
	"hotelops/infras/otel"
	"hotelops/infras/postgres"
	"hotelops/internal/domains/checkout/model"
	gDto "hotelops/shared/dto"
	gRepo "hotelops/shared/repository"
)

type PaymentMethod interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.PaymentMethod, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.PaymentMethod, error)
}

type paymentMethodImpl struct {
	gRepo.Repository[model.PaymentMethod]
	db   *postgres.Connection
	otel otel.Otel
}

func NewPaymentMethod(db *postgres.Connection, otel otel.Otel) PaymentMethod {
	return &paymentMethodImpl{
		Repository: gRepo.NewRepository[model.PaymentMethod](model.PaymentMethodEntityName, model.PaymentMethodTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
