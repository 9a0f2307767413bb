package model

import (
	"hotelops/shared/model"
)

const (
	ImageTableName  = "room_images"
	ImageEntityName = "room_image"

	FieldImageRoomID = "room_id"
	FieldImageURL    = "url"
)

type RoomImage struct {
	ID     string `db:"id"`
	RoomID string `db:"room_id"`
	URL    string `db:"url"`
	model.Metadata
}
