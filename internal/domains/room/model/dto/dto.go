package dto

import (
	"mime/multipart"
	"time"

	"hotelops/internal/domains/room/model"
	"hotelops/shared"
	"hotelops/shared/constant"
	gDto "hotelops/shared/dto"
	"hotelops/shared/failure"
	gModel "hotelops/shared/model"
	"hotelops/shared/timezone"

	"github.com/google/uuid"
)

type CreateRoomRequest struct {
	RoomNumber  string `json:"room_number"   validate:"required,max=20"`
	FloorNumber int    `json:"floor_number"  validate:"required,min=1"`
	RoomTypeID  string `json:"room_type_id"  validate:"required,uuid4"`
	Notes       string `json:"notes"         validate:"omitempty,max=500"`
}

func (c *CreateRoomRequest) ToModel(user string) model.Room {
	return model.Room{
		ID:          uuid.NewString(),
		RoomNumber:  c.RoomNumber,
		FloorNumber: c.FloorNumber,
		RoomTypeID:  c.RoomTypeID,
		Status:      model.StatusAvailable,
		Notes:       c.Notes,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomRequest struct {
	RoomNumber  string `db:"room_number"  json:"room_number"  validate:"omitempty,max=20"`
	FloorNumber *int   `db:"floor_number" json:"floor_number" validate:"omitempty,min=1"`
	RoomTypeID  string `db:"room_type_id" json:"room_type_id" validate:"omitempty,uuid4"`
	Notes       string `db:"notes"        json:"notes"        validate:"omitempty,max=500"`
}

// SearchRoomsRequest collects the room search filters. The stay window is
// optional but must come as a pair; rooms with an active booking
// overlapping it are excluded from the results.
type SearchRoomsRequest struct {
	RoomNumber   string `validate:"omitempty,max=20"`
	RoomTypeID   string `validate:"omitempty,uuid4"`
	Status       string `validate:"omitempty,max=32"`
	FloorNumber  int    `validate:"omitempty,min=1"`
	Guests       int    `validate:"omitempty,min=1"`
	CheckInDate  string `validate:"omitempty"`
	CheckOutDate string `validate:"omitempty"`
}

func (r *SearchRoomsRequest) StayWindow() (from, to time.Time, ok bool, err error) {
	if r.CheckInDate == "" && r.CheckOutDate == "" {
		return from, to, false, nil
	}

	if r.CheckInDate == "" || r.CheckOutDate == "" {
		return from, to, false, failure.BadRequestFromString("check_in_date and check_out_date must be provided together") // nolint:wrapcheck
	}

	from, err = timezone.Parse(constant.DateOnlyFormat, r.CheckInDate)
	if err != nil {
		return from, to, false, failure.BadRequestFromString("check_in_date must be formatted as YYYY-MM-DD") // nolint:wrapcheck
	}

	to, err = timezone.Parse(constant.DateOnlyFormat, r.CheckOutDate)
	if err != nil {
		return from, to, false, failure.BadRequestFromString("check_out_date must be formatted as YYYY-MM-DD") // nolint:wrapcheck
	}

	if !to.After(from) {
		return from, to, false, failure.BadRequestFromString("check_out_date must be after check_in_date") // nolint:wrapcheck
	}

	return from, to, true, nil
}

// ChangeStatusRequest applies one of the transitions previously fetched
// from the available-transitions endpoint. Anything else is rejected.
type ChangeStatusRequest struct {
	NewStatus string `json:"new_status" validate:"required"`
}

type UploadImageRequest struct {
	RoomID    string                `json:"-"`
	Image     *multipart.FileHeader `json:"image" validate:"required,mimetypes=image/png image/jpg image/jpeg,maxfilesize=5"`
	ImageFile multipart.File        `json:"-"`
}

type RoomImageResponse struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

type RoomTypeResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	PricePerNight int64  `json:"price_per_night"`
	MaxOccupancy  int    `json:"max_occupancy"`
	Amenities     string `json:"amenities"`
	Description   string `json:"description"`
}

func (r *RoomTypeResponse) FromModel(mod model.RoomType) {
	r.ID = mod.ID
	r.Name = mod.Name
	r.PricePerNight = mod.PricePerNight
	r.MaxOccupancy = mod.MaxOccupancy
	r.Amenities = mod.Amenities
	r.Description = mod.Description
}

type RoomResponse struct {
	ID          string `json:"id"`
	RoomNumber  string `json:"room_number"`
	FloorNumber int    `json:"floor_number"`
	RoomTypeID  string `json:"room_type_id"`
	Status      string `json:"status"`
	StatusLabel string `json:"status_label"`
	Notes       string `json:"notes"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(mod model.Room) {
	r.ID = mod.ID
	r.RoomNumber = mod.RoomNumber
	r.FloorNumber = mod.FloorNumber
	r.RoomTypeID = mod.RoomTypeID
	r.Status = string(mod.Status)
	r.StatusLabel = mod.Status.Label()
	r.Notes = mod.Notes
	r.Metadata.FromModel(mod.Metadata)
}

// RoomDetailResponse is the full detail view: room, its type and images.
type RoomDetailResponse struct {
	RoomResponse
	RoomType RoomTypeResponse    `json:"room_type"`
	Images   []RoomImageResponse `json:"images"`
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}

type TransitionResponse struct {
	ToStatus    string `json:"to_status"`
	Description string `json:"description"`
}

type GetTransitionsResponse struct {
	CurrentStatus string               `json:"current_status"`
	Transitions   []TransitionResponse `json:"transitions"`
}

func (r *GetTransitionsResponse) FromModel(current model.Status, transitions []model.Transition) {
	r.CurrentStatus = string(current)

	r.Transitions = make([]TransitionResponse, len(transitions))
	for i, transition := range transitions {
		r.Transitions[i] = TransitionResponse{
			ToStatus:    string(transition.ToStatus),
			Description: transition.Description,
		}
	}
}

type UploadImageResponse struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}
