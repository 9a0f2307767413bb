package model

import (
	"hotelops/shared/model"
)

const (
	RoomTypeTableName  = "room_types"
	RoomTypeEntityName = "room_type"

	FieldRoomTypeName  = "name"
	FieldPricePerNight = "price_per_night"
	FieldMaxOccupancy  = "max_occupancy"
	FieldAmenities     = "amenities"
	FieldDescription   = "description"
)

// RoomType carries the pricing and occupancy metadata shared by every room
// of the same category. Prices are integer VND per night.
type RoomType struct {
	ID            string `db:"id"`
	Name          string `db:"name"`
	PricePerNight int64  `db:"price_per_night"`
	MaxOccupancy  int    `db:"max_occupancy"`
	Amenities     string `db:"amenities"`
	Description   string `db:"description"`
	model.Metadata
}
