package dto

import (
	"hotelops/internal/domains/payment/model"
	"hotelops/shared/constant"
	"hotelops/shared/timezone"
)

// HoldResponse feeds the guest payment screen: transfer details, the
// absolute deadline and the seconds remaining at response time. The
// countdown rendered from RemainingSeconds is advisory; expiry is decided
// server-side.
type HoldResponse struct {
	BookingID        string `json:"booking_id"`
	Amount           int64  `json:"amount"`
	AccountNo        string `json:"account_no"`
	AccountName      string `json:"account_name"`
	BankName         string `json:"bank_name"`
	Description      string `json:"description"`
	Status           string `json:"status"`
	Deadline         string `json:"deadline"`
	RemainingSeconds int64  `json:"remaining_seconds"`
}

func (r *HoldResponse) FromModel(mod model.PaymentHold) {
	r.BookingID = mod.BookingID
	r.Amount = mod.Amount
	r.AccountNo = mod.AccountNo
	r.AccountName = mod.AccountName
	r.BankName = mod.BankName
	r.Description = mod.Description
	r.Status = string(mod.Status)
	r.Deadline = timezone.Format(mod.Deadline, constant.DateFormat)

	remaining := int64(mod.Deadline.Sub(timezone.Now()).Seconds())
	if remaining < 0 || !mod.Status.Open() {
		remaining = 0
	}

	r.RemainingSeconds = remaining
}
