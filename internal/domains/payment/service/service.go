package service

import (
	"context"
	"fmt"

	"hotelops/config"
	"hotelops/infras/otel"
	"hotelops/internal/domains/payment/model"
	"hotelops/internal/domains/payment/model/dto"
	"hotelops/internal/domains/payment/repository"
	"hotelops/shared"
	"hotelops/shared/constant"
	"hotelops/shared/failure"

	"github.com/rs/zerolog/log"
)

type Payment interface {
	GetHold(ctx context.Context, bookingID string) (dto.HoldResponse, error)
}

type serviceImpl struct {
	repo repository.PaymentHold
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.PaymentHold, cfg *config.Config, otel otel.Otel) Payment {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

// GetHold reads the hold straight from the database on every call so the
// remaining time reflects the server clock, not a cached snapshot.
func (s *serviceImpl) GetHold(ctx context.Context, bookingID string) (res dto.HoldResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetHold")
	defer scope.End()
	defer scope.TraceIfError(err)

	hold, err := s.repo.Get(ctx, shared.FilterByID(bookingID, model.FieldBookingID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get payment hold")

		return res, fmt.Errorf("failed to get payment hold: %w", err)
	}

	if hold.ID == constant.Empty {
		return res, failure.NotFound("payment hold not found") // nolint:wrapcheck
	}

	res.FromModel(hold)

	return res, nil
}
