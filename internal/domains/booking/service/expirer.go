package service

import (
	"context"
	"time"

	"hotelops/config"

	"github.com/rs/zerolog/log"
)

// Expirer periodically sweeps payment holds whose deadline has passed and
// cancels the bookings behind them. It is the single source of truth for
// hold expiry.
type Expirer struct {
	service  Booking
	interval time.Duration
}

func NewExpirer(service Booking, cfg *config.Config) *Expirer {
	return &Expirer{
		service:  service,
		interval: time.Duration(cfg.Booking.ExpirerIntervalSecond) * time.Second,
	}
}

// Run blocks until ctx is cancelled, sweeping once per interval. Sweep
// failures are logged and retried on the next tick.
func (e *Expirer) Run(ctx context.Context) {
	log.Info().Dur("interval", e.interval).Msg("booking hold expirer started")

	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("booking hold expirer stopped")

			return
		case <-ticker.C:
			expired, err := e.service.ExpireOverdue(ctx)
			if err != nil {
				log.Error().Err(err).Msg("booking hold sweep failed")

				continue
			}

			if expired > 0 {
				log.Info().Int("expired", expired).Msg("expired overdue booking holds")
			}
		}
	}
}
