package repository

//go:generate go run go.uber.org/mock/mockgen -source=./booking_room.go -destination=../mocks/booking_room_mock.go -package=mocks

import (
	"context"
	"hotelops/infras/otel"
	"hotelops/infras/postgres"
	"hotelops/internal/domains/booking/model"
	gDto "hotelops/shared/dto"
	gRepo "hotelops/shared/repository"

	"github.com/jmoiron/sqlx"
)

type BookingRoom interface {
	InsertBulkTx(ctx context.Context, sqltx *sqlx.Tx, models []model.BookingRoom) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.BookingRoom, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type bookingRoomImpl struct {
	gRepo.Repository[model.BookingRoom]
	db   *postgres.Connection
	otel otel.Otel
}

func NewBookingRoom(db *postgres.Connection, otel otel.Otel) BookingRoom {
	return &bookingRoomImpl{
		Repository: gRepo.NewRepository[model.BookingRoom](model.BookingRoomEntityName, model.BookingRoomTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
