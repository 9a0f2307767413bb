package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hotelops/config"
	"hotelops/infras/kafka"
	"hotelops/infras/otel"
	"hotelops/infras/s3"
	bookingModel "hotelops/internal/domains/booking/model"
	bookingRepo "hotelops/internal/domains/booking/repository"
	"hotelops/internal/domains/room/model"
	"hotelops/internal/domains/room/model/dto"
	"hotelops/internal/domains/room/repository"
	"hotelops/shared"
	"hotelops/shared/cache"
	"hotelops/shared/constant"
	gDto "hotelops/shared/dto"
	"hotelops/shared/failure"
	gModel "hotelops/shared/model"
	"hotelops/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetRoom    = "room:get"
	cacheGetAllRoom = "room:gets"
	cacheCountRoom  = "room:count"
)

const eventRoomStatusChanged = "room.status_changed"

type roomStatusEvent struct {
	Event      string `json:"event"`
	RoomID     string `json:"room_id"`
	RoomNumber string `json:"room_number"`
	FromStatus string `json:"from_status"`
	ToStatus   string `json:"to_status"`
	ChangedBy  string `json:"changed_by"`
}

type Room interface {
	Create(ctx context.Context, req dto.CreateRoomRequest) error
	Search(ctx context.Context, req gDto.QueryParams, search dto.SearchRoomsRequest) (dto.GetRoomsResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetRoomsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.RoomDetailResponse, error)
	Update(ctx context.Context, req dto.UpdateRoomRequest, id string) error
	AvailableTransitions(ctx context.Context, id string) (dto.GetTransitionsResponse, error)
	ChangeStatus(ctx context.Context, id string, req dto.ChangeStatusRequest) error
	UploadImage(ctx context.Context, req dto.UploadImageRequest) (dto.UploadImageResponse, error)
	DeleteImage(ctx context.Context, roomID, imageID string) error
}

type serviceImpl struct {
	repo      repository.Room
	typeRepo  repository.RoomType
	imageRepo repository.RoomImage
	bookings  bookingRepo.Booking
	assigned  bookingRepo.BookingRoom
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
	s3        s3.S3
	kafka     kafka.Client
}

func New(
	repo repository.Room,
	typeRepo repository.RoomType,
	imageRepo repository.RoomImage,
	bookings bookingRepo.Booking,
	assigned bookingRepo.BookingRoom,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	s3 s3.S3,
	kafkaClient kafka.Client,
) Room {
	return &serviceImpl{
		repo:      repo,
		typeRepo:  typeRepo,
		imageRepo: imageRepo,
		bookings:  bookings,
		assigned:  assigned,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
		s3:        s3,
		kafka:     kafkaClient,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRoomRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	typeExists, err := s.typeRepo.Exist(ctx, shared.FilterByID(req.RoomTypeID, model.FieldID, model.RoomTypeTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room type exists")

		return fmt.Errorf("failed to check if room type exists: %w", err)
	}

	if !typeExists {
		return failure.BadRequestFromString("room type does not exist") // nolint:wrapcheck
	}

	numberTaken, err := s.repo.Exist(ctx, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRoomNumber,
				Operator: gDto.FilterOperatorEq,
				Value:    req.RoomNumber,
				Table:    model.TableName,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room number is taken")

		return fmt.Errorf("failed to check if room number is taken: %w", err)
	}

	if numberTaken {
		return failure.Conflict("room number already exists") // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create room")

		return fmt.Errorf("failed to create room: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllRoom)
		shared.InvalidateCaches(c, s.cache, cacheCountRoom)
	}()

	return nil
}

// Search translates the search filters into repository queries. Guest
// capacity and the stay window cannot be expressed as plain column
// filters on rooms, so both resolve to id sets first.
func (s *serviceImpl) Search(ctx context.Context, req gDto.QueryParams, search dto.SearchRoomsRequest) (res dto.GetRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Search")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if search.RoomNumber != "" {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldRoomNumber,
			Operator: gDto.FilterOperatorLike,
			Value:    search.RoomNumber,
			Table:    model.TableName,
		})
	}

	if search.RoomTypeID != "" {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldRoomTypeID,
			Operator: gDto.FilterOperatorEq,
			Value:    search.RoomTypeID,
			Table:    model.TableName,
		})
	}

	if search.Status != "" {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    search.Status,
			Table:    model.TableName,
		})
	}

	if search.FloorNumber > 0 {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldFloorNumber,
			Operator: gDto.FilterOperatorEq,
			Value:    search.FloorNumber,
			Table:    model.TableName,
		})
	}

	if search.Guests > 0 {
		types, err := s.typeRepo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{
			Filters: []any{
				gDto.Filter{
					Field:    model.FieldMaxOccupancy,
					Operator: gDto.FilterOperatorGreaterEq,
					Value:    search.Guests,
					Table:    model.RoomTypeTableName,
				},
			},
		})
		if err != nil {
			log.Error().Err(err).Msg("failed to get room types by occupancy")

			return res, fmt.Errorf("failed to get room types by occupancy: %w", err)
		}

		if len(types) == 0 {
			res.Rooms = []dto.RoomResponse{}

			return res, nil
		}

		typeIDs := make([]string, len(types))
		for i, roomType := range types {
			typeIDs[i] = roomType.ID
		}

		filter.Filters = append(filter.Filters, gDto.Filter{
			ArgName:  "capacity_room_type_id",
			Field:    model.FieldRoomTypeID,
			Operator: gDto.FilterOperatorIn,
			Value:    typeIDs,
			Table:    model.TableName,
		})
	}

	from, to, hasWindow, err := search.StayWindow()
	if err != nil {
		return res, err
	}

	if hasWindow {
		occupied, err := s.occupiedRoomIDs(ctx, from, to)
		if err != nil {
			return res, err
		}

		if len(occupied) > 0 {
			filter.Filters = append(filter.Filters, gDto.Filter{
				ArgName:  "occupied_room_id",
				Field:    model.FieldID,
				Operator: gDto.FilterOperatorNotIn,
				Value:    occupied,
				Table:    model.TableName,
			})
		}
	}

	return s.GetAll(ctx, req, filter)
}

// occupiedRoomIDs lists rooms assigned to a live booking whose stay
// overlaps the [from, to) window.
func (s *serviceImpl) occupiedRoomIDs(ctx context.Context, from, to time.Time) ([]string, error) {
	bookings, err := s.bookings.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    bookingModel.FieldCheckInDate,
				Operator: gDto.FilterOperatorLess,
				Value:    to,
				Table:    bookingModel.TableName,
			},
			gDto.Filter{
				Field:    bookingModel.FieldCheckOutDate,
				Operator: gDto.FilterOperatorGreater,
				Value:    from,
				Table:    bookingModel.TableName,
			},
			gDto.Filter{
				Field:    bookingModel.FieldStatus,
				Operator: gDto.FilterOperatorIn,
				Value: []string{
					string(bookingModel.StatusPending),
					string(bookingModel.StatusConfirmed),
					string(bookingModel.StatusCheckedIn),
				},
				Table: bookingModel.TableName,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to get overlapping bookings")

		return nil, fmt.Errorf("failed to get overlapping bookings: %w", err)
	}

	if len(bookings) == 0 {
		return nil, nil
	}

	bookingIDs := make([]string, len(bookings))
	for i, booking := range bookings {
		bookingIDs[i] = booking.ID
	}

	assigned, err := s.assigned.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    bookingModel.FieldBookingID,
				Operator: gDto.FilterOperatorIn,
				Value:    bookingIDs,
				Table:    bookingModel.BookingRoomTableName,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms of overlapping bookings")

		return nil, fmt.Errorf("failed to get rooms of overlapping bookings: %w", err)
	}

	roomIDs := make([]string, len(assigned))
	for i, assignment := range assigned {
		roomIDs[i] = assignment.RoomID
	}

	return roomIDs, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllRoom, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for rooms")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count rooms")

		return res, fmt.Errorf("failed to count rooms: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save rooms to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountRoom, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count rooms")

		return res, fmt.Errorf("failed to count rooms: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.RoomDetailResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetRoom, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for room")

		return res, nil
	}

	room, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return res, failure.NotFound("room not found") // nolint:wrapcheck
	}

	roomType, err := s.typeRepo.Get(ctx, shared.FilterByID(room.RoomTypeID, model.FieldID, model.RoomTypeTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room type")

		return res, fmt.Errorf("failed to get room type: %w", err)
	}

	images, err := s.imageRepo.GetAll(ctx, gDto.QueryParams{}, shared.FilterByID(id, model.FieldImageRoomID, model.ImageTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room images")

		return res, fmt.Errorf("failed to get room images: %w", err)
	}

	res.RoomResponse.FromModel(room)
	res.RoomType.FromModel(roomType)

	res.Images = make([]dto.RoomImageResponse, len(images))
	for i, image := range images {
		res.Images[i] = dto.RoomImageResponse{ID: image.ID, URL: image.URL}
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateRoomRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateRoomRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room exists")

		return fmt.Errorf("failed to check if room exists: %w", err)
	}

	if !exist {
		return failure.NotFound("room not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update room")

		return fmt.Errorf("failed to update room: %w", err)
	}

	s.invalidateRoom(ctx, id)

	return nil
}

// AvailableTransitions is always computed from a fresh read, never from
// cache. Legality depends on the room's current state, which changes
// underneath open dialogs.
func (s *serviceImpl) AvailableTransitions(ctx context.Context, id string) (res dto.GetTransitionsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AvailableTransitions")
	defer scope.End()
	defer scope.TraceIfError(err)

	room, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return res, failure.NotFound("room not found") // nolint:wrapcheck
	}

	res.FromModel(room.Status, room.Status.ManualTransitions())

	return res, nil
}

func (s *serviceImpl) ChangeStatus(ctx context.Context, id string, req dto.ChangeStatusRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ChangeStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	target := model.Status(req.NewStatus)
	if !target.Valid() {
		return failure.BadRequestFromString(fmt.Sprintf("unknown room status %q", req.NewStatus)) // nolint:wrapcheck
	}

	room, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return failure.NotFound("room not found") // nolint:wrapcheck
	}

	if !room.Status.CanManualTransition(target) {
		return failure.Conflict(fmt.Sprintf("room %s cannot move from %s to %s, refetch available transitions", room.RoomNumber, room.Status, target)) // nolint:wrapcheck
	}

	if err = s.repo.Update(ctx, map[string]any{
		model.FieldStatus:        target,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to change room status")

		return fmt.Errorf("failed to change room status: %w", err)
	}

	s.invalidateRoom(ctx, id)
	s.publishStatusChange(ctx, room, target, user)

	return nil
}

func (s *serviceImpl) UploadImage(ctx context.Context, req dto.UploadImageRequest) (res dto.UploadImageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadImage")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(req.RoomID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room exists")

		return res, fmt.Errorf("failed to check if room exists: %w", err)
	}

	if !exist {
		return res, failure.NotFound("room not found") // nolint:wrapcheck
	}

	fileName := uuid.NewString()

	parts := strings.Split(req.Image.Filename, ".")
	if len(parts) > 1 {
		fileName = fmt.Sprintf("%s.%s", fileName, parts[len(parts)-1])
	}

	url, err := s.s3.UploadFile(ctx, s.cfg.S3.Bucket, s.cfg.S3.Directory, req.ImageFile, req.Image, fileName)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload room image to S3")

		return res, fmt.Errorf("failed to upload room image: %w", err)
	}

	image := model.RoomImage{
		ID:     uuid.NewString(),
		RoomID: req.RoomID,
		URL:    url,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	if err = s.imageRepo.Insert(ctx, image); err != nil {
		_ = s.s3.DeleteFile(ctx, s.cfg.S3.Bucket, s.cfg.S3.Directory, fileName)

		log.Error().Err(err).Msg("failed to save room image")

		return res, fmt.Errorf("failed to save room image: %w", err)
	}

	s.invalidateRoom(ctx, req.RoomID)

	return dto.UploadImageResponse{ID: image.ID, URL: image.URL}, nil
}

func (s *serviceImpl) DeleteImage(ctx context.Context, roomID, imageID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteImage")
	defer scope.End()
	defer scope.TraceIfError(err)

	image, err := s.imageRepo.Get(ctx, shared.FilterByID(imageID, model.FieldID, model.ImageTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room image")

		return fmt.Errorf("failed to get room image: %w", err)
	}

	if image.ID == constant.Empty || image.RoomID != roomID {
		return failure.NotFound("room image not found") // nolint:wrapcheck
	}

	objectName := s.s3.GetObjectNameFromURL(s.cfg.S3.Bucket, image.URL)
	if err = s.s3.DeleteFile(ctx, s.cfg.S3.Bucket, s.cfg.S3.Directory, objectName); err != nil {
		log.Error().Err(err).Msg("failed to delete room image from S3")

		return fmt.Errorf("failed to delete room image from S3: %w", err)
	}

	if err = s.imageRepo.Delete(ctx, shared.FilterByID(imageID, model.FieldID, model.ImageTableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete room image")

		return fmt.Errorf("failed to delete room image: %w", err)
	}

	s.invalidateRoom(ctx, roomID)

	return nil
}

func (s *serviceImpl) invalidateRoom(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetRoom, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete room from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllRoom)
		shared.InvalidateCaches(c, s.cache, cacheCountRoom)
	}()
}

func (s *serviceImpl) publishStatusChange(ctx context.Context, room model.Room, target model.Status, user string) {
	go func() {
		c := context.WithoutCancel(ctx)

		err := s.kafka.SendMessages(c, s.cfg.Kafka.TopicRoom, kafka.Message{
			Key: room.ID,
			Value: roomStatusEvent{
				Event:      eventRoomStatusChanged,
				RoomID:     room.ID,
				RoomNumber: room.RoomNumber,
				FromStatus: string(room.Status),
				ToStatus:   string(target),
				ChangedBy:  user,
			},
		})
		if err != nil {
			log.Error().Err(err).Str("room_id", room.ID).Msg("failed to publish room status event")
		}
	}()
}
