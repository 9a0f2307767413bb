package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotelops/config"
	kafkaMocks "hotelops/infras/kafka/mocks"
	"hotelops/infras/otel/mocks"
	postgresMocks "hotelops/infras/postgres/mocks"
	bookingMocks "hotelops/internal/domains/booking/mocks"
	bookingModel "hotelops/internal/domains/booking/model"
	checkoutMocks "hotelops/internal/domains/checkout/mocks"
	"hotelops/internal/domains/checkout/model"
	"hotelops/internal/domains/checkout/model/dto"
	"hotelops/internal/domains/checkout/service"
	roomMocks "hotelops/internal/domains/room/mocks"
	roomModel "hotelops/internal/domains/room/model"
	cacheMocks "hotelops/shared/cache/mocks"
	"hotelops/shared/constant"
	gDto "hotelops/shared/dto"
	"hotelops/shared/timezone"
)

type checkoutServiceMocks struct {
	settlements *checkoutMocks.MockSettlement
	charges     *checkoutMocks.MockServiceCharge
	methods     *checkoutMocks.MockPaymentMethod
	bookings    *bookingMocks.MockBooking
	assigned    *bookingMocks.MockBookingRoom
	rooms       *roomMocks.MockRoom
	cache       *cacheMocks.MockRedisCache
}

func newCheckoutService(t *testing.T) (service.Checkout, checkoutServiceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := checkoutServiceMocks{
		settlements: checkoutMocks.NewMockSettlement(ctrl),
		charges:     checkoutMocks.NewMockServiceCharge(ctrl),
		methods:     checkoutMocks.NewMockPaymentMethod(ctrl),
		bookings:    bookingMocks.NewMockBooking(ctrl),
		assigned:    bookingMocks.NewMockBookingRoom(ctrl),
		rooms:       roomMocks.NewMockRoom(ctrl),
		cache:       cacheMocks.NewMockRedisCache(ctrl),
	}

	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockKafka.EXPECT().
		SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Kafka.TopicBooking = "hotelops.booking"

	svc := service.New(
		m.settlements,
		m.charges,
		m.methods,
		m.bookings,
		m.assigned,
		m.rooms,
		postgresMocks.NewTxRunner(),
		cfg,
		m.cache,
		mocks.NewOtel(),
		mockKafka,
	)

	return svc, m
}

var checkInAt = time.Date(2026, time.March, 10, 14, 0, 0, 0, time.UTC)

func checkedInBooking() bookingModel.Booking {
	return bookingModel.Booking{
		ID:            "booking-id-1",
		Code:          "BK-ABCDEF1234",
		CustomerName:  "Nguyen Van A",
		CheckInDate:   checkInAt,
		CheckOutDate:  checkInAt.Add(48 * time.Hour),
		TotalAmount:   2_000_000,
		DepositAmount: 600_000,
		Status:        bookingModel.StatusCheckedIn,
		PaymentStatus: bookingModel.PaymentPaid,
		DepositStatus: bookingModel.DepositPaid,
	}
}

// checkOutArg formats a checkout time the given number of hours after
// check-in, the way a client would send it.
func checkOutArg(hours int) string {
	return timezone.Format(checkInAt.Add(time.Duration(hours)*time.Hour), constant.DateFormat)
}

func assignedRooms() []bookingModel.BookingRoom {
	return []bookingModel.BookingRoom{
		{RoomID: "room-1", RoomName: "101", PricePerNight: 500_000},
		{RoomID: "room-2", RoomName: "102", PricePerNight: 500_000},
	}
}

func serviceCharges() []model.ServiceCharge {
	return []model.ServiceCharge{
		{ID: "charge-1", BookingID: "booking-id-1", Name: "Minibar", UnitPrice: 75_000, Quantity: 2, Amount: 150_000},
	}
}

func TestCheckoutService_Preview(t *testing.T) {
	svc, m := newCheckoutService(t)

	tests := []struct {
		name      string
		req       dto.PreviewCheckoutRequest
		setupMock func()
		wantErr   bool
		check     func(t *testing.T, res dto.PreviewResponse)
	}{
		{
			name: "recomputes the bill for a checked-in booking",
			req:  dto.PreviewCheckoutRequest{ActualCheckOutDate: checkOutArg(48)},
			setupMock: func() {
				m.bookings.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(checkedInBooking(), nil)

				m.assigned.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(assignedRooms(), nil)

				m.charges.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(serviceCharges(), nil)
			},
			wantErr: false,
			check: func(t *testing.T, res dto.PreviewResponse) {
				assert.Equal(t, 2, res.Nights)
				assert.Equal(t, int64(2_000_000), res.RoomCharges)
				assert.Equal(t, int64(150_000), res.ServiceCharges)
				assert.Equal(t, int64(2_150_000), res.SubTotal)
				assert.Equal(t, int64(600_000), res.DepositPaid)
				assert.Equal(t, int64(1_550_000), res.AmountDue)
				assert.Len(t, res.Rooms, 2)
				assert.Len(t, res.Services, 1)
			},
		},
		{
			name: "bills the planned stay even right after check-in",
			req:  dto.PreviewCheckoutRequest{ActualCheckOutDate: checkOutArg(48)},
			setupMock: func() {
				m.bookings.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(checkedInBooking(), nil)

				m.assigned.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(assignedRooms(), nil)

				m.charges.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, nil)
			},
			wantErr: false,
			check: func(t *testing.T, res dto.PreviewResponse) {
				assert.Equal(t, 2, res.Nights)
				assert.Equal(t, int64(2_000_000), res.SubTotal)
				assert.Equal(t, int64(600_000), res.DepositPaid)
				assert.Equal(t, int64(1_400_000), res.AmountDue)
			},
		},
		{
			name: "a later checkout date adds nights proportionally",
			req:  dto.PreviewCheckoutRequest{ActualCheckOutDate: checkOutArg(72)},
			setupMock: func() {
				m.bookings.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(checkedInBooking(), nil)

				m.assigned.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(assignedRooms(), nil)

				m.charges.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, nil)
			},
			wantErr: false,
			check: func(t *testing.T, res dto.PreviewResponse) {
				assert.Equal(t, 3, res.Nights)
				assert.Equal(t, int64(3_000_000), res.SubTotal)
				assert.Equal(t, int64(600_000), res.DepositPaid)
				assert.Equal(t, int64(2_400_000), res.AmountDue)
			},
		},
		{
			name: "a partial extra day rounds up to a full night",
			req:  dto.PreviewCheckoutRequest{ActualCheckOutDate: checkOutArg(50)},
			setupMock: func() {
				m.bookings.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(checkedInBooking(), nil)

				m.assigned.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(assignedRooms(), nil)

				m.charges.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, nil)
			},
			wantErr: false,
			check: func(t *testing.T, res dto.PreviewResponse) {
				assert.Equal(t, 3, res.Nights)
			},
		},
		{
			name: "unpaid deposit is not deducted",
			req:  dto.PreviewCheckoutRequest{ActualCheckOutDate: checkOutArg(48)},
			setupMock: func() {
				booking := checkedInBooking()
				booking.DepositStatus = bookingModel.DepositPending

				m.bookings.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)

				m.assigned.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(assignedRooms(), nil)

				m.charges.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, nil)
			},
			wantErr: false,
			check: func(t *testing.T, res dto.PreviewResponse) {
				assert.Equal(t, int64(0), res.DepositPaid)
				assert.Equal(t, res.SubTotal, res.AmountDue)
			},
		},
		{
			name: "checkout before check-in is rejected",
			req:  dto.PreviewCheckoutRequest{ActualCheckOutDate: checkOutArg(-1)},
			setupMock: func() {
				m.bookings.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(checkedInBooking(), nil)
			},
			wantErr: true,
		},
		{
			name:      "malformed checkout date is rejected",
			req:       dto.PreviewCheckoutRequest{ActualCheckOutDate: "not-a-date"},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "only checked-in bookings can be previewed",
			req:  dto.PreviewCheckoutRequest{ActualCheckOutDate: checkOutArg(48)},
			setupMock: func() {
				booking := checkedInBooking()
				booking.Status = bookingModel.StatusConfirmed

				m.bookings.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)
			},
			wantErr: true,
		},
		{
			name: "booking not found",
			req:  dto.PreviewCheckoutRequest{ActualCheckOutDate: checkOutArg(48)},
			setupMock: func() {
				m.bookings.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(bookingModel.Booking{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Preview(context.Background(), "booking-id-1", tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)

			if tt.check != nil {
				tt.check(t, res)
			}
		})
	}
}

func TestCheckoutService_Process(t *testing.T) {
	svc, m := newCheckoutService(t)

	activeMethod := model.PaymentMethod{
		ID:     "method-1",
		Name:   "Tiền mặt",
		Code:   "cash",
		Active: true,
	}

	req := dto.ProcessCheckoutRequest{
		ActualCheckOutDate:   checkOutArg(48),
		PaymentMethodID:      activeMethod.ID,
		TransactionReference: "FT20260312001",
	}

	previewMocks := func() {
		m.bookings.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(checkedInBooking(), nil)

		m.assigned.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(assignedRooms(), nil)

		m.charges.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(serviceCharges(), nil)
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		check     func(t *testing.T, res dto.SettlementResponse)
	}{
		{
			name: "settles, completes the booking and sends rooms to cleaning",
			setupMock: func() {
				previewMocks()

				m.methods.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeMethod, nil)

				m.settlements.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				m.settlements.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, settlement model.Settlement) error {
						assert.Equal(t, int64(1_550_000), settlement.AmountDue)
						assert.Equal(t, int64(600_000), settlement.DepositPaid)
						assert.Equal(t, 2, settlement.Nights)
						assert.True(t, settlement.ActualCheckOut.Equal(checkInAt.Add(48*time.Hour)))
						assert.Equal(t, "FT20260312001", settlement.TransactionReference)
						assert.False(t, settlement.SettledAt.IsZero())

						return nil
					})

				m.bookings.EXPECT().
					UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, bookingModel.StatusCheckedOut, fields[bookingModel.FieldStatus])

						return nil
					})

				m.rooms.EXPECT().
					UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, roomModel.StatusCleaning, fields[roomModel.FieldStatus])

						return nil
					})
			},
			wantErr: false,
			check: func(t *testing.T, res dto.SettlementResponse) {
				assert.Equal(t, int64(1_550_000), res.AmountDue)
				assert.NotEmpty(t, res.ActualCheckOutDate)
				assert.Equal(t, "FT20260312001", res.TransactionReference)
				assert.NotEmpty(t, res.SettledAt)
			},
		},
		{
			name: "inactive payment method is refused",
			setupMock: func() {
				previewMocks()

				inactive := activeMethod
				inactive.Active = false

				m.methods.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(inactive, nil)
			},
			wantErr: true,
		},
		{
			name: "double settlement is refused",
			setupMock: func() {
				previewMocks()

				m.methods.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeMethod, nil)

				m.settlements.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr: true,
		},
		{
			name: "booking not checked in",
			setupMock: func() {
				booking := checkedInBooking()
				booking.Status = bookingModel.StatusCheckedOut

				m.bookings.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "staff-id")
			res, err := svc.Process(ctx, "booking-id-1", req)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)

			if tt.check != nil {
				tt.check(t, res)
			}
		})
	}
}

func TestCheckoutService_AddServiceCharge(t *testing.T) {
	svc, m := newCheckoutService(t)

	req := dto.AddServiceChargeRequest{
		Name:      "Giặt ủi",
		UnitPrice: 50_000,
		Quantity:  3,
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "adds a charge while checked in",
			setupMock: func() {
				m.bookings.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(checkedInBooking(), nil)

				m.charges.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, charge model.ServiceCharge) error {
						assert.Equal(t, int64(150_000), charge.Amount)
						assert.Equal(t, "booking-id-1", charge.BookingID)

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "charges only apply to checked-in stays",
			setupMock: func() {
				booking := checkedInBooking()
				booking.Status = bookingModel.StatusConfirmed

				m.bookings.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)
			},
			wantErr: true,
		},
		{
			name: "insert error",
			setupMock: func() {
				m.bookings.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(checkedInBooking(), nil)

				m.charges.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "staff-id")
			err := svc.AddServiceCharge(ctx, "booking-id-1", req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCheckoutService_RemoveServiceCharge(t *testing.T) {
	svc, m := newCheckoutService(t)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "removes a charge while checked in",
			setupMock: func() {
				m.bookings.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(checkedInBooking(), nil)

				m.charges.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "settled stay cannot lose charges",
			setupMock: func() {
				booking := checkedInBooking()
				booking.Status = bookingModel.StatusCheckedOut

				m.bookings.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.RemoveServiceCharge(context.Background(), "booking-id-1", "charge-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCheckoutService_GetSettlement(t *testing.T) {
	svc, m := newCheckoutService(t)

	settlement := model.Settlement{
		ID:        "settlement-1",
		BookingID: "booking-id-1",
		AmountDue: 1_550_000,
		SettledAt: timezone.Now(),
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "settlement found",
			setupMock: func() {
				m.settlements.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(settlement, nil)
			},
			wantErr: false,
		},
		{
			name: "settlement not found",
			setupMock: func() {
				m.settlements.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Settlement{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.GetSettlement(context.Background(), "booking-id-1")

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, settlement.AmountDue, res.AmountDue)
			assert.NotEmpty(t, res.SettledAt)
		})
	}
}

func TestCheckoutService_GetPaymentMethods(t *testing.T) {
	svc, m := newCheckoutService(t)

	methods := []model.PaymentMethod{
		{ID: "method-1", Name: "Tiền mặt", Code: "cash", Active: true},
		{ID: "method-2", Name: "Chuyển khoản", Code: "bank_transfer", Active: true},
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantLen   int
	}{
		{
			name: "cache hit",
			setupMock: func() {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
			wantLen: 0,
		},
		{
			name: "cache miss, loads active methods",
			setupMock: func() {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				m.methods.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(methods, nil)
			},
			wantErr: false,
			wantLen: 2,
		},
		{
			name: "repository error",
			setupMock: func() {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				m.methods.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.GetPaymentMethods(context.Background())

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Len(t, res.PaymentMethods, tt.wantLen)
		})
	}
}
