package model

import (
	"hotelops/shared/model"
)

const (
	BookingRoomTableName  = "booking_rooms"
	BookingRoomEntityName = "booking_room"

	FieldBookingID     = "booking_id"
	FieldRoomID        = "room_id"
	FieldRoomName      = "room_name"
	FieldPricePerNight = "price_per_night"
)

// BookingRoom snapshots the assignment of one physical room to a booking,
// including the nightly rate at booking time so later price changes do not
// rewrite history.
type BookingRoom struct {
	ID            string `db:"id"`
	BookingID     string `db:"booking_id"`
	RoomID        string `db:"room_id"`
	RoomName      string `db:"room_name"`
	PricePerNight int64  `db:"price_per_night"`
	model.Metadata
}
