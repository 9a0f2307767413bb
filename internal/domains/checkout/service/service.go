package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"hotelops/config"
	"hotelops/infras/kafka"
	"hotelops/infras/otel"
	"hotelops/infras/postgres"
	bookingModel "hotelops/internal/domains/booking/model"
	bookingRepo "hotelops/internal/domains/booking/repository"
	"hotelops/internal/domains/checkout/model"
	"hotelops/internal/domains/checkout/model/dto"
	"hotelops/internal/domains/checkout/repository"
	roomModel "hotelops/internal/domains/room/model"
	roomRepo "hotelops/internal/domains/room/repository"
	"hotelops/shared"
	"hotelops/shared/cache"
	"hotelops/shared/constant"
	gDto "hotelops/shared/dto"
	"hotelops/shared/failure"
	gModel "hotelops/shared/model"
	"hotelops/shared/timezone"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cachePaymentMethods = "checkout:payment_methods"

	cacheBookingPrefix = "booking"
	cacheRoomPrefix    = "room"
)

const eventCheckoutSettled = "checkout.settled"

type checkoutEvent struct {
	Event       string `json:"event"`
	BookingID   string `json:"booking_id"`
	BookingCode string `json:"booking_code"`
	AmountDue   int64  `json:"amount_due"`
	ActorID     string `json:"actor_id,omitempty"`
}

type Checkout interface {
	Preview(ctx context.Context, bookingID string, req dto.PreviewCheckoutRequest) (dto.PreviewResponse, error)
	Process(ctx context.Context, bookingID string, req dto.ProcessCheckoutRequest) (dto.SettlementResponse, error)
	AddServiceCharge(ctx context.Context, bookingID string, req dto.AddServiceChargeRequest) error
	RemoveServiceCharge(ctx context.Context, bookingID, chargeID string) error
	GetSettlement(ctx context.Context, bookingID string) (dto.SettlementResponse, error)
	GetPaymentMethods(ctx context.Context) (dto.GetPaymentMethodsResponse, error)
}

type serviceImpl struct {
	settlements repository.Settlement
	charges     repository.ServiceCharge
	methods     repository.PaymentMethod
	bookings    bookingRepo.Booking
	assigned    bookingRepo.BookingRoom
	rooms       roomRepo.Room
	tx          postgres.TxRunner
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
	kafka       kafka.Client
}

func New(
	settlements repository.Settlement,
	charges repository.ServiceCharge,
	methods repository.PaymentMethod,
	bookings bookingRepo.Booking,
	assigned bookingRepo.BookingRoom,
	rooms roomRepo.Room,
	tx postgres.TxRunner,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	kafkaClient kafka.Client,
) Checkout {
	return &serviceImpl{
		settlements: settlements,
		charges:     charges,
		methods:     methods,
		bookings:    bookings,
		assigned:    assigned,
		rooms:       rooms,
		tx:          tx,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
		kafka:       kafkaClient,
	}
}

// Preview recomputes the bill from the database on every call and is never
// cached: service charges can be added right up to the moment of
// settlement, and a stale bill at the desk means a wrong charge.
func (s *serviceImpl) Preview(ctx context.Context, bookingID string, req dto.PreviewCheckoutRequest) (res dto.PreviewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Preview")
	defer scope.End()
	defer scope.TraceIfError(err)

	actualOut, err := req.ActualCheckOut()
	if err != nil {
		return res, err
	}

	res, _, _, err = s.buildPreview(ctx, bookingID, actualOut)

	return res, err
}

// Process settles the bill and completes the checkout: it re-derives the
// amounts rather than trusting any previously shown preview, writes the
// settlement, moves the booking to CheckedOut and sends the rooms to
// Cleaning, all in one transaction.
func (s *serviceImpl) Process(ctx context.Context, bookingID string, req dto.ProcessCheckoutRequest) (res dto.SettlementResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Process")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	actualOut, err := req.ActualCheckOut()
	if err != nil {
		return res, err
	}

	preview, booking, roomIDs, err := s.buildPreview(ctx, bookingID, actualOut)
	if err != nil {
		return res, err
	}

	method, err := s.methods.Get(ctx, shared.FilterByID(req.PaymentMethodID, model.FieldID, model.PaymentMethodTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get payment method")

		return res, fmt.Errorf("failed to get payment method: %w", err)
	}

	if method.ID == constant.Empty || !method.Active {
		return res, failure.BadRequestFromString("payment method is not available") // nolint:wrapcheck
	}

	settled, err := s.settlements.Exist(ctx, shared.FilterByID(bookingID, model.FieldBookingID, model.SettlementTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check existing settlement")

		return res, fmt.Errorf("failed to check existing settlement: %w", err)
	}

	if settled {
		return res, failure.Conflict("booking has already been settled") // nolint:wrapcheck
	}

	now := timezone.Now()
	settlement := model.Settlement{
		ID:                   uuid.NewString(),
		BookingID:            bookingID,
		PaymentMethodID:      method.ID,
		RoomCharges:          preview.RoomCharges,
		ServiceCharges:       preview.ServiceCharges,
		SubTotal:             preview.SubTotal,
		DepositPaid:          preview.DepositPaid,
		AmountDue:            preview.AmountDue,
		Nights:               preview.Nights,
		ActualCheckOut:       actualOut,
		Note:                 req.Note,
		TransactionReference: req.TransactionReference,
		SettledAt:            now,
		Metadata:             gModel.Metadata{CreatedAt: now, ModifiedAt: now, CreatedBy: user, ModifiedBy: user},
	}

	err = s.tx.WithTx(ctx, func(tx *sqlx.Tx) error {
		if err := s.settlements.InsertTx(ctx, tx, settlement); err != nil {
			return fmt.Errorf("failed to insert settlement: %w", err)
		}

		if err := s.bookings.UpdateTx(ctx, tx, map[string]any{
			bookingModel.FieldStatus:        bookingModel.StatusCheckedOut,
			bookingModel.FieldPaymentStatus: bookingModel.PaymentPaid,
			constant.FieldModifiedAt:        now,
			constant.FieldModifiedBy:        user,
		}, shared.FilterByID(bookingID, bookingModel.FieldID, bookingModel.TableName)); err != nil {
			return fmt.Errorf("failed to complete booking: %w", err)
		}

		if len(roomIDs) > 0 {
			if err := s.rooms.UpdateTx(ctx, tx, map[string]any{
				roomModel.FieldStatus:    roomModel.StatusCleaning,
				constant.FieldModifiedAt: now,
				constant.FieldModifiedBy: user,
			}, gDto.FilterGroup{
				Filters: []any{
					gDto.Filter{
						Field:    roomModel.FieldID,
						Operator: gDto.FilterOperatorIn,
						Value:    roomIDs,
						Table:    roomModel.TableName,
					},
				},
			}); err != nil {
				return fmt.Errorf("failed to send rooms to cleaning: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to process checkout")

		return res, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheBookingPrefix)
		shared.InvalidateCaches(c, s.cache, cacheRoomPrefix)
	}()

	s.publishSettled(ctx, booking, settlement, user)

	res.FromModel(settlement)

	return res, nil
}

func (s *serviceImpl) AddServiceCharge(ctx context.Context, bookingID string, req dto.AddServiceChargeRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AddServiceCharge")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return err
	}

	if booking.Status != bookingModel.StatusCheckedIn {
		return failure.Conflict("service charges can only be added while the guest is checked in") // nolint:wrapcheck
	}

	now := timezone.Now()
	charge := model.ServiceCharge{
		ID:        uuid.NewString(),
		BookingID: bookingID,
		Name:      req.Name,
		UnitPrice: req.UnitPrice,
		Quantity:  req.Quantity,
		Amount:    req.Amount(),
		Metadata:  gModel.Metadata{CreatedAt: now, ModifiedAt: now, CreatedBy: user, ModifiedBy: user},
	}

	if err = s.charges.Insert(ctx, charge); err != nil {
		log.Error().Err(err).Msg("failed to add service charge")

		return fmt.Errorf("failed to add service charge: %w", err)
	}

	return nil
}

func (s *serviceImpl) RemoveServiceCharge(ctx context.Context, bookingID, chargeID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RemoveServiceCharge")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return err
	}

	if booking.Status != bookingModel.StatusCheckedIn {
		return failure.Conflict("service charges can only be removed while the guest is checked in") // nolint:wrapcheck
	}

	err = s.charges.Delete(ctx, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldID,
				Operator: gDto.FilterOperatorEq,
				Value:    chargeID,
				Table:    model.ServiceChargeTableName,
			},
			gDto.Filter{
				Field:    model.FieldBookingID,
				Operator: gDto.FilterOperatorEq,
				Value:    bookingID,
				Table:    model.ServiceChargeTableName,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to remove service charge")

		return fmt.Errorf("failed to remove service charge: %w", err)
	}

	return nil
}

func (s *serviceImpl) GetSettlement(ctx context.Context, bookingID string) (res dto.SettlementResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetSettlement")
	defer scope.End()
	defer scope.TraceIfError(err)

	settlement, err := s.settlements.Get(ctx, shared.FilterByID(bookingID, model.FieldBookingID, model.SettlementTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get settlement")

		return res, fmt.Errorf("failed to get settlement: %w", err)
	}

	if settlement.ID == constant.Empty {
		return res, failure.NotFound("settlement not found") // nolint:wrapcheck
	}

	res.FromModel(settlement)

	return res, nil
}

func (s *serviceImpl) GetPaymentMethods(ctx context.Context) (res dto.GetPaymentMethodsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetPaymentMethods")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cachePaymentMethods, &res)
	if err == nil {
		return res, nil
	}

	methods, err := s.methods.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldActive,
				Operator: gDto.FilterOperatorEq,
				Value:    true,
				Table:    model.PaymentMethodTableName,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to get payment methods")

		return res, fmt.Errorf("failed to get payment methods: %w", err)
	}

	res.FromModels(methods)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cachePaymentMethods, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save payment methods to cache")
		}
	}()

	return res, nil
}

// buildPreview derives the bill for a checked-in booking. Nights are
// billed from the booked check-in date to the requested actual checkout
// time, rounded up, never less than one night.
func (s *serviceImpl) buildPreview(ctx context.Context, bookingID string, actualOut time.Time) (res dto.PreviewResponse, booking bookingModel.Booking, roomIDs []string, err error) {
	booking, err = s.getBooking(ctx, bookingID)
	if err != nil {
		return res, booking, nil, err
	}

	if booking.Status != bookingModel.StatusCheckedIn {
		return res, booking, nil, failure.Conflict(fmt.Sprintf("booking in status %s cannot be checked out", booking.Status)) // nolint:wrapcheck
	}

	if !actualOut.After(booking.CheckInDate) {
		return res, booking, nil, failure.BadRequestFromString("actual_check_out_date must be after the check-in date") // nolint:wrapcheck
	}

	rooms, err := s.assigned.GetAll(ctx, gDto.QueryParams{}, shared.FilterByID(bookingID, bookingModel.FieldBookingID, bookingModel.BookingRoomTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking rooms")

		return res, booking, nil, fmt.Errorf("failed to get booking rooms: %w", err)
	}

	charges, err := s.charges.GetAll(ctx, gDto.QueryParams{}, shared.FilterByID(bookingID, model.FieldBookingID, model.ServiceChargeTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get service charges")

		return res, booking, nil, fmt.Errorf("failed to get service charges: %w", err)
	}

	nights := int(math.Ceil(actualOut.Sub(booking.CheckInDate).Hours() / 24))
	if nights < 1 {
		nights = 1
	}

	var roomCharges, serviceCharges int64

	res.Rooms = make([]dto.RoomChargeLine, len(rooms))
	roomIDs = make([]string, len(rooms))

	for i, room := range rooms {
		amount := room.PricePerNight * int64(nights)
		roomCharges += amount
		roomIDs[i] = room.RoomID

		res.Rooms[i] = dto.RoomChargeLine{
			RoomID:        room.RoomID,
			RoomName:      room.RoomName,
			PricePerNight: room.PricePerNight,
			Nights:        nights,
			Amount:        amount,
		}
	}

	res.Services = make([]dto.ServiceChargeLine, len(charges))
	for i, charge := range charges {
		serviceCharges += charge.Amount

		res.Services[i] = dto.ServiceChargeLine{
			ID:        charge.ID,
			Name:      charge.Name,
			UnitPrice: charge.UnitPrice,
			Quantity:  charge.Quantity,
			Amount:    charge.Amount,
		}
	}

	var depositPaid int64
	if booking.DepositStatus == bookingModel.DepositPaid {
		depositPaid = booking.DepositAmount
	}

	res.BookingID = booking.ID
	res.BookingCode = booking.Code
	res.CustomerName = booking.CustomerName
	res.ActualCheckOutDate = timezone.Format(actualOut, constant.DateFormat)
	res.Nights = nights
	res.RoomCharges = roomCharges
	res.ServiceCharges = serviceCharges
	res.SubTotal = roomCharges + serviceCharges
	res.DepositPaid = depositPaid
	res.AmountDue = res.SubTotal - depositPaid

	return res, booking, roomIDs, nil
}

func (s *serviceImpl) getBooking(ctx context.Context, bookingID string) (bookingModel.Booking, error) {
	booking, err := s.bookings.Get(ctx, shared.FilterByID(bookingID, bookingModel.FieldID, bookingModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	return booking, nil
}

func (s *serviceImpl) publishSettled(ctx context.Context, booking bookingModel.Booking, settlement model.Settlement, user string) {
	go func() {
		c := context.WithoutCancel(ctx)

		err := s.kafka.SendMessages(c, s.cfg.Kafka.TopicBooking, kafka.Message{
			Key: booking.ID,
			Value: checkoutEvent{
				Event:       eventCheckoutSettled,
				BookingID:   booking.ID,
				BookingCode: booking.Code,
				AmountDue:   settlement.AmountDue,
				ActorID:     user,
			},
		})
		if err != nil {
			log.Error().Err(err).Str("booking_id", booking.ID).Msg("failed to publish checkout event")
		}
	}()
}
