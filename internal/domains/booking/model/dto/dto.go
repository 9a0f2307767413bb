package dto

import (
	"time"

	"hotelops/internal/domains/booking/model"
	"hotelops/shared"
	"hotelops/shared/constant"
	gDto "hotelops/shared/dto"
	"hotelops/shared/failure"
	"hotelops/shared/timezone"
)

// RoomTypeSelection asks for a quantity of rooms of one type; concrete
// rooms are assigned server-side at creation.
type RoomTypeSelection struct {
	RoomTypeID string `json:"room_type_id" validate:"required,uuid4"`
	Quantity   int    `json:"quantity"     validate:"required,min=1"`
}

type CreateBookingRequest struct {
	FullName        string              `json:"full_name"        validate:"required,max=100"`
	Email           string              `json:"email"            validate:"required,email,max=100"`
	PhoneNumber     string              `json:"phone_number"     validate:"required,max=20"`
	IdentityCard    string              `json:"identity_card"    validate:"required,max=20"`
	Address         string              `json:"address"          validate:"required,max=200"`
	RoomTypes       []RoomTypeSelection `json:"room_types"       validate:"required,min=1,dive"`
	CheckInDate     string              `json:"check_in_date"    validate:"required"`
	CheckOutDate    string              `json:"check_out_date"   validate:"required"`
	SpecialRequests string              `json:"special_requests" validate:"omitempty,max=500"`
	BookingType     string              `json:"booking_type"     validate:"omitempty,oneof='Đặt trực tuyến' 'Đặt trực tiếp'"`
}

// StayDates parses and checks the stay window. Both dates are calendar
// days in the hotel timezone; checkout must be strictly after check-in.
func (c *CreateBookingRequest) StayDates() (checkIn, checkOut time.Time, err error) {
	checkIn, err = timezone.Parse(constant.DateOnlyFormat, c.CheckInDate)
	if err != nil {
		return checkIn, checkOut, failure.BadRequestFromString("check_in_date must be formatted as YYYY-MM-DD") // nolint:wrapcheck
	}

	checkOut, err = timezone.Parse(constant.DateOnlyFormat, c.CheckOutDate)
	if err != nil {
		return checkIn, checkOut, failure.BadRequestFromString("check_out_date must be formatted as YYYY-MM-DD") // nolint:wrapcheck
	}

	if !checkOut.After(checkIn) {
		return checkIn, checkOut, failure.BadRequestFromString("check_out_date must be after check_in_date") // nolint:wrapcheck
	}

	return checkIn, checkOut, nil
}

type GuestConfirmPaymentRequest struct {
	IsCancel *bool `json:"is_cancel" validate:"required"`
}

type CancelBookingRequest struct {
	Reason string `json:"reason" validate:"required,max=500"`
}

// UpdateStatusRequest moves a booking forward by staff action. CheckedOut
// is accepted only for a booking whose settlement has already been
// processed, so charges are always reconciled first.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Confirmed CheckedIn CheckedOut"`
	Note   string `json:"note"   validate:"omitempty,max=500"`
}

type BookedRoomResponse struct {
	RoomID        string `json:"room_id"`
	RoomName      string `json:"room_name"`
	PricePerNight int64  `json:"price_per_night"`
}

type BookingResponse struct {
	ID                 string               `json:"id"`
	Code               string               `json:"code"`
	CustomerName       string               `json:"customer_name"`
	Email              string               `json:"email"`
	PhoneNumber        string               `json:"phone_number"`
	CheckInDate        string               `json:"check_in_date"`
	CheckOutDate       string               `json:"check_out_date"`
	SpecialRequests    string               `json:"special_requests"`
	BookingType        string               `json:"booking_type"`
	TotalAmount        int64                `json:"total_amount"`
	DepositAmount      int64                `json:"deposit_amount"`
	Status             string               `json:"status"`
	StatusLabel        string               `json:"status_label"`
	PaymentStatus      string               `json:"payment_status"`
	PaymentStatusLabel string               `json:"payment_status_label"`
	DepositStatus      string               `json:"deposit_status"`
	CancelReason       string               `json:"cancel_reason,omitempty"`
	Rooms              []BookedRoomResponse `json:"rooms"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(mod model.Booking, rooms []model.BookingRoom) {
	r.ID = mod.ID
	r.Code = mod.Code
	r.CustomerName = mod.CustomerName
	r.Email = mod.Email
	r.PhoneNumber = mod.PhoneNumber
	r.CheckInDate = timezone.Format(mod.CheckInDate, constant.DateOnlyFormat)
	r.CheckOutDate = timezone.Format(mod.CheckOutDate, constant.DateOnlyFormat)
	r.SpecialRequests = mod.SpecialRequests
	r.BookingType = string(mod.BookingType)
	r.TotalAmount = mod.TotalAmount
	r.DepositAmount = mod.DepositAmount
	r.Status = string(mod.Status)
	r.StatusLabel = mod.Status.Label()
	r.PaymentStatus = string(mod.PaymentStatus)
	r.PaymentStatusLabel = mod.PaymentStatus.Label()
	r.DepositStatus = string(mod.DepositStatus)
	r.CancelReason = mod.CancelReason
	r.Metadata.FromModel(mod.Metadata)

	r.Rooms = make([]BookedRoomResponse, len(rooms))
	for i, room := range rooms {
		r.Rooms[i] = BookedRoomResponse{
			RoomID:        room.RoomID,
			RoomName:      room.RoomName,
			PricePerNight: room.PricePerNight,
		}
	}
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod, nil)
	}
}

// CreateBookingResponse returns everything the guest needs to pay the
// deposit: identity, verification code, amounts and the hold deadline.
type CreateBookingResponse struct {
	BookingID      string `json:"booking_id"`
	BookingCode    string `json:"booking_code"`
	TotalAmount    int64  `json:"total_amount"`
	DepositAmount  int64  `json:"deposit_amount"`
	DepositPercent int    `json:"deposit_percent"`
	AccountNo      string `json:"account_no"`
	AccountName    string `json:"account_name"`
	BankName       string `json:"bank_name"`
	TransferNote   string `json:"transfer_note"`
	HoldDeadline   string `json:"hold_deadline"`
}
