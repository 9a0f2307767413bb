package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hotelops/config"
	"hotelops/infras/kafka"
	"hotelops/infras/otel"
	"hotelops/infras/postgres"
	"hotelops/internal/domains/booking/model"
	"hotelops/internal/domains/booking/model/dto"
	"hotelops/internal/domains/booking/repository"
	checkoutModel "hotelops/internal/domains/checkout/model"
	checkoutRepo "hotelops/internal/domains/checkout/repository"
	paymentModel "hotelops/internal/domains/payment/model"
	paymentRepo "hotelops/internal/domains/payment/repository"
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
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"

	cacheRoomPrefix = "room"
)

const (
	eventBookingCreated       = "booking.created"
	eventBookingConfirmed     = "booking.confirmed"
	eventBookingCancelled     = "booking.cancelled"
	eventBookingExpired       = "booking.expired"
	eventBookingStatusChanged = "booking.status_changed"
)

type bookingEvent struct {
	Event         string `json:"event"`
	BookingID     string `json:"booking_id"`
	BookingCode   string `json:"booking_code"`
	Status        string `json:"status"`
	PaymentStatus string `json:"payment_status"`
	ActorID       string `json:"actor_id,omitempty"`
}

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.CreateBookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	GetByCode(ctx context.Context, code string) (dto.BookingResponse, error)
	GuestConfirmTransfer(ctx context.Context, id string, req dto.GuestConfirmPaymentRequest) error
	ConfirmPayment(ctx context.Context, id string) error
	Cancel(ctx context.Context, id string, req dto.CancelBookingRequest) error
	UpdateStatus(ctx context.Context, id string, req dto.UpdateStatusRequest) error
	ExpireOverdue(ctx context.Context) (int, error)
}

type serviceImpl struct {
	repo        repository.Booking
	roomRepo    roomRepo.Room
	typeRepo    roomRepo.RoomType
	assigned    repository.BookingRoom
	holdRepo    paymentRepo.PaymentHold
	settlements checkoutRepo.Settlement
	tx          postgres.TxRunner
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
	kafka       kafka.Client
}

func New(
	repo repository.Booking,
	rooms roomRepo.Room,
	roomTypes roomRepo.RoomType,
	assigned repository.BookingRoom,
	holds paymentRepo.PaymentHold,
	settlements checkoutRepo.Settlement,
	tx postgres.TxRunner,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	kafkaClient kafka.Client,
) Booking {
	return &serviceImpl{
		repo:        repo,
		roomRepo:    rooms,
		typeRepo:    roomTypes,
		assigned:    assigned,
		holdRepo:    holds,
		settlements: settlements,
		tx:          tx,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
		kafka:       kafkaClient,
	}
}

// Create assigns concrete available rooms to the requested types, prices
// the stay, and opens a payment hold, all inside one transaction. Assigned
// rooms move to Booked so no other booking can take them while the hold is
// open.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.CreateBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	checkIn, checkOut, err := req.StayDates()
	if err != nil {
		return res, err
	}

	nights := int64(checkOut.Sub(checkIn).Hours() / 24)

	bookingID := uuid.NewString()
	now := timezone.Now()
	meta := gModel.Metadata{CreatedAt: now, ModifiedAt: now, CreatedBy: user, ModifiedBy: user}

	var (
		total       int64
		assignments []model.BookingRoom
		roomIDs     []string
	)

	for _, sel := range req.RoomTypes {
		roomType, err := s.typeRepo.Get(ctx, shared.FilterByID(sel.RoomTypeID, roomModel.FieldID, roomModel.RoomTypeTableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to get room type")

			return res, fmt.Errorf("failed to get room type: %w", err)
		}

		if roomType.ID == constant.Empty {
			return res, failure.BadRequestFromString("room type does not exist") // nolint:wrapcheck
		}

		available, err := s.roomRepo.GetAll(ctx, gDto.QueryParams{Page: 1, Limit: sel.Quantity}, gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorAnd,
			Filters: []any{
				gDto.Filter{
					Field:    roomModel.FieldRoomTypeID,
					Operator: gDto.FilterOperatorEq,
					Value:    sel.RoomTypeID,
					Table:    roomModel.TableName,
				},
				gDto.Filter{
					Field:    roomModel.FieldStatus,
					Operator: gDto.FilterOperatorEq,
					Value:    roomModel.StatusAvailable,
					Table:    roomModel.TableName,
					ArgName:  "room_status",
				},
			},
		})
		if err != nil {
			log.Error().Err(err).Msg("failed to get available rooms")

			return res, fmt.Errorf("failed to get available rooms: %w", err)
		}

		if len(available) < sel.Quantity {
			return res, failure.Conflict(fmt.Sprintf("not enough available rooms of type %s, requested %d but only %d left", roomType.Name, sel.Quantity, len(available))) // nolint:wrapcheck
		}

		for _, room := range available {
			assignments = append(assignments, model.BookingRoom{
				ID:            uuid.NewString(),
				BookingID:     bookingID,
				RoomID:        room.ID,
				RoomName:      room.RoomNumber,
				PricePerNight: roomType.PricePerNight,
				Metadata:      meta,
			})
			roomIDs = append(roomIDs, room.ID)
		}

		total += roomType.PricePerNight * nights * int64(sel.Quantity)
	}

	deposit := total * int64(s.cfg.Booking.DepositPercent) / 100
	deadline := now.Add(time.Duration(s.cfg.Booking.HoldMinutes) * time.Minute)
	code := newBookingCode()

	bookingType := model.BookingType(req.BookingType)
	if bookingType == constant.Empty {
		bookingType = model.BookingTypeOnline
	}

	booking := model.Booking{
		ID:              bookingID,
		Code:            code,
		CustomerName:    req.FullName,
		Email:           req.Email,
		PhoneNumber:     req.PhoneNumber,
		IdentityCard:    req.IdentityCard,
		Address:         req.Address,
		CheckInDate:     checkIn,
		CheckOutDate:    checkOut,
		SpecialRequests: req.SpecialRequests,
		BookingType:     bookingType,
		TotalAmount:     total,
		DepositAmount:   deposit,
		Status:          model.StatusPending,
		PaymentStatus:   model.PaymentPending,
		DepositStatus:   model.DepositPending,
		Metadata:        meta,
	}

	hold := paymentModel.PaymentHold{
		ID:          uuid.NewString(),
		BookingID:   bookingID,
		Amount:      deposit,
		AccountNo:   s.cfg.BankTransfer.AccountNo,
		AccountName: s.cfg.BankTransfer.AccountName,
		BankName:    s.cfg.BankTransfer.BankName,
		Description: code,
		Status:      paymentModel.HoldPending,
		Deadline:    deadline,
		Metadata:    meta,
	}

	err = s.tx.WithTx(ctx, func(tx *sqlx.Tx) error {
		if err := s.repo.InsertTx(ctx, tx, booking); err != nil {
			return fmt.Errorf("failed to insert booking: %w", err)
		}

		if err := s.assigned.InsertBulkTx(ctx, tx, assignments); err != nil {
			return fmt.Errorf("failed to insert booking rooms: %w", err)
		}

		if err := s.holdRepo.InsertTx(ctx, tx, hold); err != nil {
			return fmt.Errorf("failed to insert payment hold: %w", err)
		}

		if err := s.markRoomsTx(ctx, tx, roomIDs, roomModel.StatusBooked, user); err != nil {
			return err
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, err
	}

	s.invalidateBooking(ctx, booking)
	s.publishEvent(ctx, eventBookingCreated, booking, user)

	return dto.CreateBookingResponse{
		BookingID:      bookingID,
		BookingCode:    code,
		TotalAmount:    total,
		DepositAmount:  deposit,
		DepositPercent: s.cfg.Booking.DepositPercent,
		AccountNo:      hold.AccountNo,
		AccountName:    hold.AccountName,
		BankName:       hold.BankName,
		TransferNote:   code,
		HoldDeadline:   timezone.Format(deadline, constant.DateFormat),
	}, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.getDetail(ctx, shared.BuildCacheKey(cacheGetBooking, id), shared.FilterByID(id, model.FieldID, model.TableName))
}

func (s *serviceImpl) GetByCode(ctx context.Context, code string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByCode")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.getDetail(ctx, shared.BuildCacheKey(cacheGetBooking, code), shared.FilterByID(code, model.FieldCode, model.TableName))
}

// getDetail serves from cache when possible. Every mutation in this
// service drops both the id and code keys, so cached entries never outlive
// a status change.
func (s *serviceImpl) getDetail(ctx context.Context, cacheKey string, filter gDto.FilterGroup) (res dto.BookingResponse, err error) {
	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	rooms, err := s.assigned.GetAll(ctx, gDto.QueryParams{}, shared.FilterByID(booking.ID, model.FieldBookingID, model.BookingRoomTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking rooms")

		return res, fmt.Errorf("failed to get booking rooms: %w", err)
	}

	res.FromModel(booking, rooms)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

// GuestConfirmTransfer is the guest's answer on the payment screen: either
// "I have transferred" or "cancel my booking". Only a Pending booking with
// an open hold can answer.
func (s *serviceImpl) GuestConfirmTransfer(ctx context.Context, id string, req dto.GuestConfirmPaymentRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GuestConfirmTransfer")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if booking.Status != model.StatusPending || booking.PaymentStatus != model.PaymentPending {
		return failure.Conflict("booking is no longer awaiting payment") // nolint:wrapcheck
	}

	if req.IsCancel != nil && *req.IsCancel {
		return s.cancel(ctx, booking, "guest cancelled at payment", constant.Empty)
	}

	now := timezone.Now()

	err = s.tx.WithTx(ctx, func(tx *sqlx.Tx) error {
		if err := s.repo.UpdateTx(ctx, tx, map[string]any{
			model.FieldPaymentStatus: model.PaymentAwaitingVerification,
			constant.FieldModifiedAt: now,
		}, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
			return fmt.Errorf("failed to update booking payment status: %w", err)
		}

		if err := s.holdRepo.UpdateTx(ctx, tx, map[string]any{
			paymentModel.FieldStatus: paymentModel.HoldAwaitingVerification,
			constant.FieldModifiedAt: now,
		}, shared.FilterByID(id, paymentModel.FieldBookingID, paymentModel.TableName)); err != nil {
			return fmt.Errorf("failed to update payment hold: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to confirm transfer")

		return err
	}

	s.invalidateBooking(ctx, booking)

	return nil
}

// ConfirmPayment is the staff side of deposit verification. Confirming an
// already paid booking is a no-op so double-clicks and retried requests
// stay harmless.
func (s *serviceImpl) ConfirmPayment(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ConfirmPayment")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if booking.PaymentStatus == model.PaymentPaid {
		return nil
	}

	if booking.PaymentStatus.Terminal() || booking.Status == model.StatusCancelled {
		return failure.Conflict("booking payment can no longer be confirmed") // nolint:wrapcheck
	}

	now := timezone.Now()
	bookingFields := map[string]any{
		model.FieldPaymentStatus: model.PaymentPaid,
		model.FieldDepositStatus: model.DepositPaid,
		constant.FieldModifiedAt: now,
		constant.FieldModifiedBy: user,
	}

	if booking.Status == model.StatusPending {
		bookingFields[model.FieldStatus] = model.StatusConfirmed
	}

	err = s.tx.WithTx(ctx, func(tx *sqlx.Tx) error {
		if err := s.repo.UpdateTx(ctx, tx, bookingFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
			return fmt.Errorf("failed to update booking: %w", err)
		}

		if err := s.holdRepo.UpdateTx(ctx, tx, map[string]any{
			paymentModel.FieldStatus: paymentModel.HoldConfirmed,
			constant.FieldModifiedAt: now,
			constant.FieldModifiedBy: user,
		}, shared.FilterByID(id, paymentModel.FieldBookingID, paymentModel.TableName)); err != nil {
			return fmt.Errorf("failed to update payment hold: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to confirm payment")

		return err
	}

	booking.Status = model.StatusConfirmed
	booking.PaymentStatus = model.PaymentPaid

	s.invalidateBooking(ctx, booking)
	s.publishEvent(ctx, eventBookingConfirmed, booking, user)

	return nil
}

func (s *serviceImpl) Cancel(ctx context.Context, id string, req dto.CancelBookingRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if !booking.Status.CanTransition(model.StatusCancelled) {
		return failure.Conflict(fmt.Sprintf("booking in status %s cannot be cancelled", booking.Status)) // nolint:wrapcheck
	}

	return s.cancel(ctx, booking, req.Reason, user)
}

// cancel moves the booking to Cancelled, closes the hold and releases the
// assigned rooms back to Available in one transaction. A paid deposit is
// marked Refunded rather than Cancelled so the ledger keeps the money
// trail.
func (s *serviceImpl) cancel(ctx context.Context, booking model.Booking, reason, user string) error {
	paymentStatus := model.PaymentCancelled
	if booking.PaymentStatus == model.PaymentPaid {
		paymentStatus = model.PaymentRefunded
	}

	roomIDs, err := s.assignedRoomIDs(ctx, booking.ID)
	if err != nil {
		return err
	}

	now := timezone.Now()

	err = s.tx.WithTx(ctx, func(tx *sqlx.Tx) error {
		if err := s.repo.UpdateTx(ctx, tx, map[string]any{
			model.FieldStatus:        model.StatusCancelled,
			model.FieldPaymentStatus: paymentStatus,
			model.FieldCancelReason:  reason,
			constant.FieldModifiedAt: now,
			constant.FieldModifiedBy: user,
		}, shared.FilterByID(booking.ID, model.FieldID, model.TableName)); err != nil {
			return fmt.Errorf("failed to cancel booking: %w", err)
		}

		if err := s.holdRepo.UpdateTx(ctx, tx, map[string]any{
			paymentModel.FieldStatus: paymentModel.HoldCancelled,
			constant.FieldModifiedAt: now,
			constant.FieldModifiedBy: user,
		}, gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorAnd,
			Filters: []any{
				gDto.Filter{
					Field:    paymentModel.FieldBookingID,
					Operator: gDto.FilterOperatorEq,
					Value:    booking.ID,
					Table:    paymentModel.TableName,
				},
				gDto.Filter{
					Field:    paymentModel.FieldStatus,
					Operator: gDto.FilterOperatorIn,
					Value:    []string{string(paymentModel.HoldPending), string(paymentModel.HoldAwaitingVerification)},
					Table:    paymentModel.TableName,
					ArgName:  "hold_status",
				},
			},
		}); err != nil {
			return fmt.Errorf("failed to cancel payment hold: %w", err)
		}

		if err := s.markRoomsTx(ctx, tx, roomIDs, roomModel.StatusAvailable, user); err != nil {
			return err
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to cancel booking")

		return err
	}

	booking.Status = model.StatusCancelled
	booking.PaymentStatus = paymentStatus

	s.invalidateBooking(ctx, booking)
	s.publishEvent(ctx, eventBookingCancelled, booking, user)

	return nil
}

// UpdateStatus advances the lifecycle by staff action. The state graph
// alone is not enough: check-in additionally requires a verified deposit,
// and check-out requires a processed settlement.
func (s *serviceImpl) UpdateStatus(ctx context.Context, id string, req dto.UpdateStatusRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	target := model.Status(req.Status)

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if !booking.Status.CanTransition(target) {
		return failure.Conflict(fmt.Sprintf("booking cannot move from %s to %s", booking.Status, target)) // nolint:wrapcheck
	}

	if target == model.StatusCheckedIn {
		if booking.PaymentStatus.Terminal() {
			return failure.Conflict("booking payment was cancelled, check-in is not possible") // nolint:wrapcheck
		}

		if booking.PaymentStatus != model.PaymentPaid {
			return failure.Conflict("deposit must be verified before check-in") // nolint:wrapcheck
		}
	}

	if target == model.StatusCheckedOut {
		settled, err := s.settlements.Exist(ctx, shared.FilterByID(id, checkoutModel.FieldBookingID, checkoutModel.SettlementTableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to check booking settlement")

			return fmt.Errorf("failed to check booking settlement: %w", err)
		}

		if !settled {
			return failure.Conflict("booking has no settlement, process the checkout first") // nolint:wrapcheck
		}
	}

	roomIDs, err := s.assignedRoomIDs(ctx, booking.ID)
	if err != nil {
		return err
	}

	now := timezone.Now()

	err = s.tx.WithTx(ctx, func(tx *sqlx.Tx) error {
		if err := s.repo.UpdateTx(ctx, tx, map[string]any{
			model.FieldStatus:        target,
			constant.FieldModifiedAt: now,
			constant.FieldModifiedBy: user,
		}, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
			return fmt.Errorf("failed to update booking status: %w", err)
		}

		if target == model.StatusCheckedIn {
			if err := s.markRoomsTx(ctx, tx, roomIDs, roomModel.StatusOccupied, user); err != nil {
				return err
			}
		}

		if target == model.StatusCheckedOut {
			if err := s.markRoomsTx(ctx, tx, roomIDs, roomModel.StatusCleaning, user); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to update booking status")

		return err
	}

	booking.Status = target

	s.invalidateBooking(ctx, booking)
	s.publishEvent(ctx, eventBookingStatusChanged, booking, user)

	return nil
}

// ExpireOverdue cancels Pending bookings whose payment hold deadline has
// passed without the guest claiming a transfer. This sweep is the sole
// authority on expiry; client countdowns only mirror it. Holds already in
// AwaitingVerification are left for staff to resolve.
func (s *serviceImpl) ExpireOverdue(ctx context.Context) (expired int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ExpireOverdue")
	defer scope.End()
	defer scope.TraceIfError(err)

	now := timezone.Now()

	overdue, err := s.holdRepo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    paymentModel.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    paymentModel.HoldPending,
				Table:    paymentModel.TableName,
			},
			gDto.Filter{
				Field:    paymentModel.FieldDeadline,
				Operator: gDto.FilterOperatorLessEq,
				Value:    now,
				Table:    paymentModel.TableName,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to get overdue payment holds")

		return 0, fmt.Errorf("failed to get overdue payment holds: %w", err)
	}

	for _, hold := range overdue {
		done, err := s.expireHold(ctx, hold)
		if err != nil {
			log.Error().Err(err).Str("booking_id", hold.BookingID).Msg("failed to expire payment hold")

			continue
		}

		if done {
			expired++
		}
	}

	return expired, nil
}

func (s *serviceImpl) expireHold(ctx context.Context, hold paymentModel.PaymentHold) (bool, error) {
	booking, err := s.repo.Get(ctx, shared.FilterByID(hold.BookingID, model.FieldID, model.TableName))
	if err != nil {
		return false, fmt.Errorf("failed to get booking: %w", err)
	}

	// the booking may have been confirmed or cancelled since the sweep query
	if booking.ID == constant.Empty || booking.Status != model.StatusPending {
		return false, nil
	}

	roomIDs, err := s.assignedRoomIDs(ctx, booking.ID)
	if err != nil {
		return false, err
	}

	now := timezone.Now()

	err = s.tx.WithTx(ctx, func(tx *sqlx.Tx) error {
		if err := s.holdRepo.UpdateTx(ctx, tx, map[string]any{
			paymentModel.FieldStatus: paymentModel.HoldExpired,
			constant.FieldModifiedAt: now,
		}, shared.FilterByID(hold.ID, paymentModel.FieldID, paymentModel.TableName)); err != nil {
			return fmt.Errorf("failed to expire payment hold: %w", err)
		}

		if err := s.repo.UpdateTx(ctx, tx, map[string]any{
			model.FieldStatus:        model.StatusCancelled,
			model.FieldPaymentStatus: model.PaymentFailed,
			model.FieldCancelReason:  "payment hold expired",
			constant.FieldModifiedAt: now,
		}, shared.FilterByID(booking.ID, model.FieldID, model.TableName)); err != nil {
			return fmt.Errorf("failed to cancel expired booking: %w", err)
		}

		if err := s.markRoomsTx(ctx, tx, roomIDs, roomModel.StatusAvailable, constant.Empty); err != nil {
			return err
		}

		return nil
	})
	if err != nil {
		return false, err
	}

	booking.Status = model.StatusCancelled
	booking.PaymentStatus = model.PaymentFailed

	s.invalidateBooking(ctx, booking)
	s.publishEvent(ctx, eventBookingExpired, booking, constant.Empty)

	return true, nil
}

func (s *serviceImpl) assignedRoomIDs(ctx context.Context, bookingID string) ([]string, error) {
	rooms, err := s.assigned.GetAll(ctx, gDto.QueryParams{}, shared.FilterByID(bookingID, model.FieldBookingID, model.BookingRoomTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking rooms")

		return nil, fmt.Errorf("failed to get booking rooms: %w", err)
	}

	ids := make([]string, len(rooms))
	for i, room := range rooms {
		ids[i] = room.RoomID
	}

	return ids, nil
}

func (s *serviceImpl) markRoomsTx(ctx context.Context, tx *sqlx.Tx, roomIDs []string, status roomModel.Status, user string) error {
	if len(roomIDs) == 0 {
		return nil
	}

	err := s.roomRepo.UpdateTx(ctx, tx, map[string]any{
		roomModel.FieldStatus:    status,
		constant.FieldModifiedAt: timezone.Now(),
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
	})
	if err != nil {
		return fmt.Errorf("failed to update room status: %w", err)
	}

	return nil
}

func (s *serviceImpl) invalidateBooking(ctx context.Context, booking model.Booking) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, booking.ID)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, booking.Code)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)

		// room statuses move together with the booking lifecycle
		shared.InvalidateCaches(c, s.cache, cacheRoomPrefix)
	}()
}

func (s *serviceImpl) publishEvent(ctx context.Context, event string, booking model.Booking, user string) {
	go func() {
		c := context.WithoutCancel(ctx)

		err := s.kafka.SendMessages(c, s.cfg.Kafka.TopicBooking, kafka.Message{
			Key: booking.ID,
			Value: bookingEvent{
				Event:         event,
				BookingID:     booking.ID,
				BookingCode:   booking.Code,
				Status:        string(booking.Status),
				PaymentStatus: string(booking.PaymentStatus),
				ActorID:       user,
			},
		})
		if err != nil {
			log.Error().Err(err).Str("booking_id", booking.ID).Msg("failed to publish booking event")
		}
	}()
}

func newBookingCode() string {
	return "BK-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:10])
}
