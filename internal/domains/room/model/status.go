package model

// Status is the operational state of a physical room. Booked and Occupied
// are booking-driven: they are entered and left only through the booking
// lifecycle, never through a manual status change.
type Status string

const (
	StatusAvailable         Status = "Available"
	StatusBooked            Status = "Booked"
	StatusOccupied          Status = "Occupied"
	StatusCleaning          Status = "Cleaning"
	StatusMaintenance       Status = "Maintenance"
	StatusPendingInspection Status = "PendingInspection"
	StatusOutOfService      Status = "OutOfService"
)

// Transition describes one legal manual move offered to staff.
type Transition struct {
	ToStatus    Status `json:"to_status"`
	Description string `json:"description"`
}

var statusLabels = map[Status]string{
	StatusAvailable:         "Phòng trống",
	StatusBooked:            "Đã đặt",
	StatusOccupied:          "Đang sử dụng",
	StatusCleaning:          "Đang dọn dẹp",
	StatusMaintenance:       "Đang bảo trì",
	StatusPendingInspection: "Chờ kiểm tra",
	StatusOutOfService:      "Ngừng phục vụ",
}

// manualTransitions is the housekeeping/maintenance graph. Rooms in a
// booking-driven state expose no manual moves; releasing them goes through
// cancellation, check-in or checkout.
var manualTransitions = map[Status][]Transition{
	StatusAvailable: {
		{ToStatus: StatusCleaning, Description: "Send for cleaning"},
		{ToStatus: StatusMaintenance, Description: "Send for maintenance"},
		{ToStatus: StatusOutOfService, Description: "Take out of service"},
	},
	StatusCleaning: {
		{ToStatus: StatusPendingInspection, Description: "Cleaning done, awaiting inspection"},
		{ToStatus: StatusAvailable, Description: "Cleaning done, release without inspection"},
	},
	StatusPendingInspection: {
		{ToStatus: StatusAvailable, Description: "Inspection passed"},
		{ToStatus: StatusCleaning, Description: "Inspection failed, clean again"},
	},
	StatusMaintenance: {
		{ToStatus: StatusPendingInspection, Description: "Maintenance done, awaiting inspection"},
		{ToStatus: StatusOutOfService, Description: "Cannot be repaired, take out of service"},
	},
	StatusOutOfService: {
		{ToStatus: StatusMaintenance, Description: "Back for maintenance"},
	},
	StatusBooked:   {},
	StatusOccupied: {},
}

func (s Status) Valid() bool {
	_, ok := statusLabels[s]

	return ok
}

// Label returns the display label for the status. Clients compare codes,
// never labels.
func (s Status) Label() string {
	return statusLabels[s]
}

// ManualTransitions lists the moves staff may apply to a room in this
// status right now.
func (s Status) ManualTransitions() []Transition {
	return manualTransitions[s]
}

// CanManualTransition reports whether a manual move to the target status is
// legal from this status.
func (s Status) CanManualTransition(to Status) bool {
	for _, transition := range manualTransitions[s] {
		if transition.ToStatus == to {
			return true
		}
	}

	return false
}
