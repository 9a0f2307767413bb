package model

import (
	"hotelops/shared/model"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID          = "id"
	FieldRoomNumber  = "room_number"
	FieldFloorNumber = "floor_number"
	FieldRoomTypeID  = "room_type_id"
	FieldStatus      = "status"
	FieldNotes       = "notes"
)

type Room struct {
	ID          string `db:"id"`
	RoomNumber  string `db:"room_number"`
	FloorNumber int    `db:"floor_number"`
	RoomTypeID  string `db:"room_type_id"`
	Status      Status `db:"status"`
	Notes       string `db:"notes"`
	model.Metadata
}
