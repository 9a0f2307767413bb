package model

import (
	"time"

	"hotelops/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID              = "id"
	FieldCode            = "code"
	FieldCustomerName    = "customer_name"
	FieldEmail           = "email"
	FieldPhoneNumber     = "phone_number"
	FieldIdentityCard    = "identity_card"
	FieldAddress         = "address"
	FieldCheckInDate     = "check_in_date"
	FieldCheckOutDate    = "check_out_date"
	FieldSpecialRequests = "special_requests"
	FieldBookingType     = "booking_type"
	FieldTotalAmount     = "total_amount"
	FieldDepositAmount   = "deposit_amount"
	FieldStatus          = "status"
	FieldPaymentStatus   = "payment_status"
	FieldDepositStatus   = "deposit_status"
	FieldCancelReason    = "cancel_reason"
)

// Booking is never hard-deleted; it only moves through statuses. Amounts
// are integer VND.
type Booking struct {
	ID              string        `db:"id"`
	Code            string        `db:"code"`
	CustomerName    string        `db:"customer_name"`
	Email           string        `db:"email"`
	PhoneNumber     string        `db:"phone_number"`
	IdentityCard    string        `db:"identity_card"`
	Address         string        `db:"address"`
	CheckInDate     time.Time     `db:"check_in_date"`
	CheckOutDate    time.Time     `db:"check_out_date"`
	SpecialRequests string        `db:"special_requests"`
	BookingType     BookingType   `db:"booking_type"`
	TotalAmount     int64         `db:"total_amount"`
	DepositAmount   int64         `db:"deposit_amount"`
	Status          Status        `db:"status"`
	PaymentStatus   PaymentStatus `db:"payment_status"`
	DepositStatus   DepositStatus `db:"deposit_status"`
	CancelReason    string        `db:"cancel_reason"`
	model.Metadata
}
