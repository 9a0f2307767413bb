package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotelops/config"
	kafkaMocks "hotelops/infras/kafka/mocks"
	"hotelops/infras/otel/mocks"
	s3Mocks "hotelops/infras/s3/mocks"
	bookingMocks "hotelops/internal/domains/booking/mocks"
	bookingModel "hotelops/internal/domains/booking/model"
	roomMocks "hotelops/internal/domains/room/mocks"
	"hotelops/internal/domains/room/model"
	"hotelops/internal/domains/room/model/dto"
	"hotelops/internal/domains/room/service"
	cacheMocks "hotelops/shared/cache/mocks"
	"hotelops/shared/constant"
	gDto "hotelops/shared/dto"
)

type roomServiceMocks struct {
	repo     *roomMocks.MockRoom
	types    *roomMocks.MockRoomType
	images   *roomMocks.MockRoomImage
	bookings *bookingMocks.MockBooking
	assigned *bookingMocks.MockBookingRoom
	cache    *cacheMocks.MockRedisCache
	s3       *s3Mocks.MockS3
}

func newRoomService(t *testing.T) (service.Room, roomServiceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := roomServiceMocks{
		repo:     roomMocks.NewMockRoom(ctrl),
		types:    roomMocks.NewMockRoomType(ctrl),
		images:   roomMocks.NewMockRoomImage(ctrl),
		bookings: bookingMocks.NewMockBooking(ctrl),
		assigned: bookingMocks.NewMockBookingRoom(ctrl),
		cache:    cacheMocks.NewMockRedisCache(ctrl),
		s3:       s3Mocks.NewMockS3(ctrl),
	}

	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockKafka.EXPECT().
		SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Kafka.TopicRoom = "hotelops.room"

	svc := service.New(m.repo, m.types, m.images, m.bookings, m.assigned, cfg, m.cache, mocks.NewOtel(), m.s3, mockKafka)

	return svc, m
}

func availableRoom() model.Room {
	return model.Room{
		ID:         "room-1",
		RoomNumber: "101",
		RoomTypeID: "room-type-1",
		Status:     model.StatusAvailable,
	}
}

func TestRoomService_Create(t *testing.T) {
	svc, m := newRoomService(t)

	req := dto.CreateRoomRequest{
		RoomNumber:  "101",
		FloorNumber: 1,
		RoomTypeID:  "room-type-1",
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful creation",
			setupMock: func() {
				m.types.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				m.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "room type does not exist",
			setupMock: func() {
				m.types.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
		{
			name: "room number already taken",
			setupMock: func() {
				m.types.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr: true,
		},
		{
			name: "insert error",
			setupMock: func() {
				m.types.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				m.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-id")
			err := svc.Create(ctx, req)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRoomService_Search(t *testing.T) {
	svc, m := newRoomService(t)

	cacheMiss := func() {
		m.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss")).
			Times(2)
	}

	tests := []struct {
		name      string
		search    dto.SearchRoomsRequest
		setupMock func()
		wantErr   bool
		wantLen   int
	}{
		{
			name:   "floor filter narrows the query",
			search: dto.SearchRoomsRequest{FloorNumber: 2},
			setupMock: func() {
				cacheMiss()

				m.repo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(1, nil)

				m.repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Room, error) {
						where, args := filter.GetWhereClause()
						assert.Contains(t, where, "rooms.floor_number = :floor_number")
						assert.Equal(t, 2, args["floor_number"])

						return []model.Room{availableRoom()}, nil
					})
			},
			wantErr: false,
			wantLen: 1,
		},
		{
			name:   "guest count narrows to room types with enough capacity",
			search: dto.SearchRoomsRequest{Guests: 3},
			setupMock: func() {
				m.types.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.RoomType{{ID: "room-type-1", MaxOccupancy: 4}}, nil)

				cacheMiss()

				m.repo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(1, nil)

				m.repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Room, error) {
						where, _ := filter.GetWhereClause()
						assert.Contains(t, where, "rooms.room_type_id IN")

						return []model.Room{availableRoom()}, nil
					})
			},
			wantErr: false,
			wantLen: 1,
		},
		{
			name:      "no room type fits the guest count",
			search:    dto.SearchRoomsRequest{Guests: 10},
			setupMock: func() {
				m.types.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, nil)
			},
			wantErr: false,
			wantLen: 0,
		},
		{
			name:   "stay window excludes rooms of overlapping bookings",
			search: dto.SearchRoomsRequest{CheckInDate: "2026-03-10", CheckOutDate: "2026-03-12"},
			setupMock: func() {
				m.bookings.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]bookingModel.Booking{{ID: "booking-1"}}, nil)

				m.assigned.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]bookingModel.BookingRoom{{BookingID: "booking-1", RoomID: "room-2"}}, nil)

				cacheMiss()

				m.repo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(1, nil)

				m.repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Room, error) {
						where, args := filter.GetWhereClause()
						assert.Contains(t, where, "rooms.id NOT IN")
						assert.Equal(t, "room-2", args["occupied_room_id_0"])

						return []model.Room{availableRoom()}, nil
					})
			},
			wantErr: false,
			wantLen: 1,
		},
		{
			name:   "free window adds no exclusion",
			search: dto.SearchRoomsRequest{CheckInDate: "2026-03-10", CheckOutDate: "2026-03-12"},
			setupMock: func() {
				m.bookings.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, nil)

				cacheMiss()

				m.repo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(1, nil)

				m.repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Room, error) {
						where, _ := filter.GetWhereClause()
						assert.NotContains(t, where, "NOT IN")

						return []model.Room{availableRoom()}, nil
					})
			},
			wantErr: false,
			wantLen: 1,
		},
		{
			name:      "half-open stay window is rejected",
			search:    dto.SearchRoomsRequest{CheckInDate: "2026-03-10"},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name:      "backwards stay window is rejected",
			search:    dto.SearchRoomsRequest{CheckInDate: "2026-03-12", CheckOutDate: "2026-03-10"},
			setupMock: func() {},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Search(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, tt.search)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Len(t, res.Rooms, tt.wantLen)
		})
	}
}

func TestRoomService_AvailableTransitions(t *testing.T) {
	svc, m := newRoomService(t)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantLen   int
	}{
		{
			name: "available room offers housekeeping moves",
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(availableRoom(), nil)
			},
			wantErr: false,
			wantLen: 3,
		},
		{
			name: "occupied room offers none",
			setupMock: func() {
				room := availableRoom()
				room.Status = model.StatusOccupied

				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(room, nil)
			},
			wantErr: false,
			wantLen: 0,
		},
		{
			name: "room not found",
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Room{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.AvailableTransitions(context.Background(), "room-1")

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Len(t, res.Transitions, tt.wantLen)
		})
	}
}

func TestRoomService_ChangeStatus(t *testing.T) {
	svc, m := newRoomService(t)

	tests := []struct {
		name      string
		req       dto.ChangeStatusRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "send available room for cleaning",
			req:  dto.ChangeStatusRequest{NewStatus: string(model.StatusCleaning)},
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(availableRoom(), nil)

				m.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name:      "unknown status",
			req:       dto.ChangeStatusRequest{NewStatus: "Broken"},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "booked room cannot be released manually",
			req:  dto.ChangeStatusRequest{NewStatus: string(model.StatusAvailable)},
			setupMock: func() {
				room := availableRoom()
				room.Status = model.StatusBooked

				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(room, nil)
			},
			wantErr: true,
		},
		{
			name: "maintenance cannot skip inspection",
			req:  dto.ChangeStatusRequest{NewStatus: string(model.StatusAvailable)},
			setupMock: func() {
				room := availableRoom()
				room.Status = model.StatusMaintenance

				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(room, nil)
			},
			wantErr: true,
		},
		{
			name: "room not found",
			req:  dto.ChangeStatusRequest{NewStatus: string(model.StatusCleaning)},
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Room{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "staff-id")
			err := svc.ChangeStatus(ctx, "room-1", tt.req)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRoomService_Get(t *testing.T) {
	svc, m := newRoomService(t)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "cache hit",
			setupMock: func() {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "cache miss, room found with type and images",
			setupMock: func() {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(availableRoom(), nil)

				m.types.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.RoomType{ID: "room-type-1", Name: "Deluxe", PricePerNight: 500_000}, nil)

				m.images.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.RoomImage{{ID: "image-1", RoomID: "room-1", URL: "https://cdn.example.com/rooms/1.jpg"}}, nil)
			},
			wantErr: false,
		},
		{
			name: "room not found",
			setupMock: func() {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Room{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			_, err := svc.Get(context.Background(), "room-1")

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRoomService_DeleteImage(t *testing.T) {
	svc, m := newRoomService(t)

	image := model.RoomImage{
		ID:     "image-1",
		RoomID: "room-1",
		URL:    "https://cdn.example.com/rooms/1.jpg",
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "deletes from storage and database",
			setupMock: func() {
				m.images.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(image, nil)

				m.s3.EXPECT().
					GetObjectNameFromURL(gomock.Any(), image.URL).
					Return("1.jpg")

				m.s3.EXPECT().
					DeleteFile(gomock.Any(), gomock.Any(), gomock.Any(), "1.jpg").
					Return(nil)

				m.images.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "image belongs to another room",
			setupMock: func() {
				m.images.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(image, nil)
			},
			wantErr: true,
		},
		{
			name: "image not found",
			setupMock: func() {
				m.images.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.RoomImage{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			roomID := "room-1"
			if tt.name == "image belongs to another room" {
				roomID = "room-2"
			}

			err := svc.DeleteImage(context.Background(), roomID, image.ID)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
