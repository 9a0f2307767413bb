package model

import (
	"time"

	"hotelops/shared/model"
)

const (
	SettlementTableName  = "checkout_settlements"
	SettlementEntityName = "checkout_settlement"

	FieldID                   = "id"
	FieldBookingID            = "booking_id"
	FieldPaymentMethodID      = "payment_method_id"
	FieldRoomCharges          = "room_charges"
	FieldServiceCharges       = "service_charges"
	FieldSubTotal             = "sub_total"
	FieldDepositPaid          = "deposit_paid"
	FieldAmountDue            = "amount_due"
	FieldNights               = "nights"
	FieldActualCheckOut       = "actual_check_out_date"
	FieldNote                 = "note"
	FieldTransactionReference = "transaction_reference"
	FieldSettledAt            = "settled_at"
)

// Settlement is the immutable record of one checkout: every amount is
// snapshotted at processing time so later price or charge edits cannot
// rewrite what the guest actually paid.
type Settlement struct {
	ID                   string    `db:"id"`
	BookingID            string    `db:"booking_id"`
	PaymentMethodID      string    `db:"payment_method_id"`
	RoomCharges          int64     `db:"room_charges"`
	ServiceCharges       int64     `db:"service_charges"`
	SubTotal             int64     `db:"sub_total"`
	DepositPaid          int64     `db:"deposit_paid"`
	AmountDue            int64     `db:"amount_due"`
	Nights               int       `db:"nights"`
	ActualCheckOut       time.Time `db:"actual_check_out_date"`
	Note                 string    `db:"note"`
	TransactionReference string    `db:"transaction_reference"`
	SettledAt            time.Time `db:"settled_at"`
	model.Metadata
}
