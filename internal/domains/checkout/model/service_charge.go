package model

import (
	"hotelops/shared/model"
)

const (
	ServiceChargeTableName  = "booking_services"
	ServiceChargeEntityName = "booking_service"

	FieldName      = "name"
	FieldUnitPrice = "unit_price"
	FieldQuantity  = "quantity"
	FieldAmount    = "amount"
)

// ServiceCharge is an extra item consumed during the stay, priced in VND.
type ServiceCharge struct {
	ID        string `db:"id"`
	BookingID string `db:"booking_id"`
	Name      string `db:"name"`
	UnitPrice int64  `db:"unit_price"`
	Quantity  int    `db:"quantity"`
	Amount    int64  `db:"amount"`
	model.Metadata
}
