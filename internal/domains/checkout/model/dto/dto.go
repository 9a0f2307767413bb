package dto

import (
	"time"

	"hotelops/internal/domains/checkout/model"
	"hotelops/shared/constant"
	"hotelops/shared/failure"
	"hotelops/shared/timezone"
)

type AddServiceChargeRequest struct {
	Name      string `json:"name"       validate:"required,max=100"`
	UnitPrice int64  `json:"unit_price" validate:"required,min=0"`
	Quantity  int    `json:"quantity"   validate:"required,min=1"`
}

func (r *AddServiceChargeRequest) Amount() int64 {
	return r.UnitPrice * int64(r.Quantity)
}

// PreviewCheckoutRequest carries the candidate checkout time the bill is
// priced against. Nights depend on it, so a new date means a new preview.
type PreviewCheckoutRequest struct {
	ActualCheckOutDate string `json:"actual_check_out_date" validate:"required"`
}

func (r *PreviewCheckoutRequest) ActualCheckOut() (time.Time, error) {
	return parseActualCheckOut(r.ActualCheckOutDate)
}

type ProcessCheckoutRequest struct {
	ActualCheckOutDate   string `json:"actual_check_out_date" validate:"required"`
	PaymentMethodID      string `json:"payment_method_id"     validate:"required,uuid4"`
	Note                 string `json:"note"                  validate:"omitempty,max=500"`
	TransactionReference string `json:"transaction_reference" validate:"omitempty,max=100"`
}

func (r *ProcessCheckoutRequest) ActualCheckOut() (time.Time, error) {
	return parseActualCheckOut(r.ActualCheckOutDate)
}

func parseActualCheckOut(value string) (time.Time, error) {
	if t, err := timezone.Parse(constant.DateFormat, value); err == nil {
		return t, nil
	}

	t, err := timezone.Parse(constant.DateOnlyFormat, value)
	if err != nil {
		return t, failure.BadRequestFromString("actual_check_out_date must be formatted as RFC3339 or YYYY-MM-DD") // nolint:wrapcheck
	}

	return t, nil
}

type RoomChargeLine struct {
	RoomID        string `json:"room_id"`
	RoomName      string `json:"room_name"`
	PricePerNight int64  `json:"price_per_night"`
	Nights        int    `json:"nights"`
	Amount        int64  `json:"amount"`
}

type ServiceChargeLine struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unit_price"`
	Quantity  int    `json:"quantity"`
	Amount    int64  `json:"amount"`
}

// PreviewResponse is the reconciliation bill shown before checkout. It is
// recomputed on every call; the numbers become binding only once a
// settlement is processed from them.
type PreviewResponse struct {
	BookingID          string              `json:"booking_id"`
	BookingCode        string              `json:"booking_code"`
	CustomerName       string              `json:"customer_name"`
	ActualCheckOutDate string              `json:"actual_check_out_date"`
	Nights             int                 `json:"nights"`
	Rooms              []RoomChargeLine    `json:"rooms"`
	Services           []ServiceChargeLine `json:"services"`
	RoomCharges        int64               `json:"room_charges"`
	ServiceCharges     int64               `json:"service_charges"`
	SubTotal           int64               `json:"sub_total"`
	DepositPaid        int64               `json:"deposit_paid"`
	AmountDue          int64               `json:"amount_due"`
}

type SettlementResponse struct {
	ID                   string `json:"id"`
	BookingID            string `json:"booking_id"`
	PaymentMethodID      string `json:"payment_method_id"`
	RoomCharges          int64  `json:"room_charges"`
	ServiceCharges       int64  `json:"service_charges"`
	SubTotal             int64  `json:"sub_total"`
	DepositPaid          int64  `json:"deposit_paid"`
	AmountDue            int64  `json:"amount_due"`
	Nights               int    `json:"nights"`
	ActualCheckOutDate   string `json:"actual_check_out_date"`
	Note                 string `json:"note,omitempty"`
	TransactionReference string `json:"transaction_reference,omitempty"`
	SettledAt            string `json:"settled_at"`
}

func (r *SettlementResponse) FromModel(mod model.Settlement) {
	r.ID = mod.ID
	r.BookingID = mod.BookingID
	r.PaymentMethodID = mod.PaymentMethodID
	r.RoomCharges = mod.RoomCharges
	r.ServiceCharges = mod.ServiceCharges
	r.SubTotal = mod.SubTotal
	r.DepositPaid = mod.DepositPaid
	r.AmountDue = mod.AmountDue
	r.Nights = mod.Nights
	r.ActualCheckOutDate = timezone.Format(mod.ActualCheckOut, constant.DateFormat)
	r.Note = mod.Note
	r.TransactionReference = mod.TransactionReference
	r.SettledAt = timezone.Format(mod.SettledAt, constant.DateFormat)
}

type PaymentMethodResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

type GetPaymentMethodsResponse struct {
	PaymentMethods []PaymentMethodResponse `json:"payment_methods"`
}

func (r *GetPaymentMethodsResponse) FromModels(models []model.PaymentMethod) {
	r.PaymentMethods = make([]PaymentMethodResponse, len(models))
	for i, mod := range models {
		r.PaymentMethods[i] = PaymentMethodResponse{ID: mod.ID, Name: mod.Name, Code: mod.Code}
	}
}
