package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotelops/config"
	"hotelops/infras/otel/mocks"
	paymentMocks "hotelops/internal/domains/payment/mocks"
	"hotelops/internal/domains/payment/model"
	"hotelops/internal/domains/payment/service"
	"hotelops/shared/timezone"
)

func TestPaymentService_GetHold(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := paymentMocks.NewMockPaymentHold(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, cfg, mockOtel)

	hold := model.PaymentHold{
		ID:          "hold-1",
		BookingID:   "booking-id-1",
		Amount:      600_000,
		AccountNo:   "0011223344",
		AccountName: "HOTEL OPS JSC",
		BankName:    "Vietcombank",
		Description: "BK-ABCDEF1234",
		Status:      model.HoldPending,
		Deadline:    timezone.Now().Add(10 * time.Minute),
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "open hold with remaining time",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(hold, nil)
			},
			wantErr: false,
		},
		{
			name: "hold not found",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.PaymentHold{}, nil)
			},
			wantErr: true,
		},
		{
			name: "repository error",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.PaymentHold{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.GetHold(context.Background(), "booking-id-1")

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, hold.Amount, res.Amount)
			assert.Equal(t, hold.Description, res.Description)
			assert.Greater(t, res.RemainingSeconds, int64(0))
		})
	}
}
