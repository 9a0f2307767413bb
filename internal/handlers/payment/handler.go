package payment

import (
	"net/http"
	"hotelops/infras/otel"
	"hotelops/internal/domains/payment/service"
	"hotelops/shared/constant"
	"hotelops/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Payment
	otel    otel.Otel
}

func New(service service.Payment, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/payments", func(routerGroup chi.Router) {
		routerGroup.Get("/holds/{bookingID}", handler.GetPaymentHold)
	})
}

// GetPaymentHold returns the payment hold for a booking.
// @Summary Get the payment hold for a booking
// @Description Retrieve the transfer details, deadline and remaining seconds for a booking's deposit hold. The countdown is advisory; expiry is decided server-side.
// @Tags Payment
// @Accept json
// @Produce json
// @Param bookingID path string true "Booking ID"
// @Success 200 {object} response.Data[dto.HoldResponse] "Payment hold"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/payments/holds/{bookingID} [get]
func (handler *Handler) GetPaymentHold(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPaymentHold")
	defer scope.End()

	bookingID := chi.URLParam(r, "bookingID")

	hold, err := handler.service.GetHold(ctx, bookingID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get payment hold")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Payment hold retrieved successfully")

	response.WithJSON(w, http.StatusOK, hold)
}
