package service_test

import (
	"context"
	"testing"
	"time"

	"hotelops/config"
	"hotelops/internal/domains/booking/service"
)

// sweepStub records sweep invocations; the embedded interface covers the
// operations the expirer never calls.
type sweepStub struct {
	service.Booking
	swept chan struct{}
}

func (s *sweepStub) ExpireOverdue(_ context.Context) (int, error) {
	select {
	case s.swept <- struct{}{}:
	default:
	}

	return 1, nil
}

func TestExpirer_Run(t *testing.T) {
	cfg := &config.Config{}
	cfg.Booking.ExpirerIntervalSecond = 1

	stub := &sweepStub{swept: make(chan struct{}, 1)}
	expirer := service.NewExpirer(stub, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})

	go func() {
		expirer.Run(ctx)
		close(done)
	}()

	select {
	case <-stub.swept:
	case <-time.After(3 * time.Second):
		t.Fatal("expected a sweep within the interval")
	}

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("expirer did not stop on context cancel")
	}
}
