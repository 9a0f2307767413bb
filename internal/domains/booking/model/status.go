package model

// Status is the booking lifecycle state. The graph is strictly forward:
// Pending -> Confirmed -> CheckedIn -> CheckedOut, with Cancelled reachable
// from Pending or Confirmed only.
type Status string

const (
	StatusPending    Status = "Pending"
	StatusConfirmed  Status = "Confirmed"
	StatusCheckedIn  Status = "CheckedIn"
	StatusCheckedOut Status = "CheckedOut"
	StatusCancelled  Status = "Cancelled"
)

// PaymentStatus evolves independently of Status but gates its transitions:
// an unpaid booking cannot check in, and a cancelled payment permanently
// bars CheckedIn/CheckedOut.
type PaymentStatus string

const (
	PaymentPending              PaymentStatus = "Pending"
	PaymentAwaitingVerification PaymentStatus = "AwaitingVerification"
	PaymentPaid                 PaymentStatus = "Paid"
	PaymentCancelled            PaymentStatus = "Cancelled"
	PaymentFailed               PaymentStatus = "Failed"
	PaymentRefunded             PaymentStatus = "Refunded"
)

type DepositStatus string

const (
	DepositPending DepositStatus = "Pending"
	DepositPaid    DepositStatus = "Paid"
)

// BookingType distinguishes the sales channel. The Vietnamese strings are
// the canonical stored values, kept from the operating convention of the
// deployment.
type BookingType string

const (
	BookingTypeOnline   BookingType = "Đặt trực tuyến"
	BookingTypeInPerson BookingType = "Đặt trực tiếp"
)

var statusTransitions = map[Status][]Status{
	StatusPending:    {StatusConfirmed, StatusCancelled},
	StatusConfirmed:  {StatusCheckedIn, StatusCancelled},
	StatusCheckedIn:  {StatusCheckedOut},
	StatusCheckedOut: {},
	StatusCancelled:  {},
}

var statusLabels = map[Status]string{
	StatusPending:    "Chờ xác nhận",
	StatusConfirmed:  "Đã xác nhận",
	StatusCheckedIn:  "Đã nhận phòng",
	StatusCheckedOut: "Đã trả phòng",
	StatusCancelled:  "Đã hủy",
}

var paymentStatusLabels = map[PaymentStatus]string{
	PaymentPending:              "Chờ thanh toán",
	PaymentAwaitingVerification: "Chờ xác minh chuyển khoản",
	PaymentPaid:                 "Đã thanh toán",
	PaymentCancelled:            "Đã hủy",
	PaymentFailed:               "Thanh toán thất bại",
	PaymentRefunded:             "Đã hoàn tiền",
}

func (s Status) Valid() bool {
	_, ok := statusTransitions[s]

	return ok
}

func (s Status) Label() string {
	return statusLabels[s]
}

// CanTransition reports whether the lifecycle graph permits moving from s
// to target. Payment gating is checked separately.
func (s Status) CanTransition(target Status) bool {
	for _, next := range statusTransitions[s] {
		if next == target {
			return true
		}
	}

	return false
}

func (p PaymentStatus) Label() string {
	return paymentStatusLabels[p]
}

// Terminal reports whether the payment state permanently blocks the
// booking from progressing to CheckedIn/CheckedOut.
func (p PaymentStatus) Terminal() bool {
	return p == PaymentCancelled || p == PaymentRefunded
}
