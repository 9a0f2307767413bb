package model

import (
	"time"

	"hotelops/shared/model"
)

const (
	TableName  = "payment_holds"
	EntityName = "payment_hold"

	FieldID          = "id"
	FieldBookingID   = "booking_id"
	FieldAmount      = "amount"
	FieldAccountNo   = "account_no"
	FieldAccountName = "account_name"
	FieldBankName    = "bank_name"
	FieldDescription = "description"
	FieldStatus      = "status"
	FieldDeadline    = "deadline"
)

// HoldStatus tracks a bank-transfer hold from creation to a terminal
// state. The deadline is authoritative here; client countdowns are
// advisory only.
type HoldStatus string

const (
	HoldPending              HoldStatus = "Pending"
	HoldAwaitingVerification HoldStatus = "AwaitingVerification"
	HoldConfirmed            HoldStatus = "Confirmed"
	HoldCancelled            HoldStatus = "Cancelled"
	HoldExpired              HoldStatus = "Expired"
)

// Open reports whether the hold still awaits an outcome.
func (s HoldStatus) Open() bool {
	return s == HoldPending || s == HoldAwaitingVerification
}

type PaymentHold struct {
	ID          string     `db:"id"`
	BookingID   string     `db:"booking_id"`
	Amount      int64      `db:"amount"`
	AccountNo   string     `db:"account_no"`
	AccountName string     `db:"account_name"`
	BankName    string     `db:"bank_name"`
	Description string     `db:"description"`
	Status      HoldStatus `db:"status"`
	Deadline    time.Time  `db:"deadline"`
	model.Metadata
}
