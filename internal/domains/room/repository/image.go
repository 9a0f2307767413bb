package repository

//go:generate go run go.uber.org/mock/mockgen -source=./image.go -destination=../mocks/image_mock.go -package=mocks

import (
	"context"
	"hotelops/infras/otel"
	"hotelops/infras/postgres"
	"hotelops/internal/domains/room/model"
	gDto "hotelops/shared/dto"
	gRepo "hotelops/shared/repository"
)

type RoomImage interface {
	Insert(ctx context.Context, model model.RoomImage) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.RoomImage, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.RoomImage, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type roomImageImpl struct {
	gRepo.Repository[model.RoomImage]
	db   *postgres.Connection
	otel otel.Otel
}

func NewRoomImage(db *postgres.Connection, otel otel.Otel) RoomImage {
	return &roomImageImpl{
		Repository: gRepo.NewRepository[model.RoomImage](model.ImageEntityName, model.ImageTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
