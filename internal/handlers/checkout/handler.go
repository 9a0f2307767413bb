package checkout

import (
	"net/http"
	"hotelops/infras/otel"
	"hotelops/internal/domains/checkout/model/dto"
	"hotelops/internal/domains/checkout/service"
	"hotelops/shared/constant"
	"hotelops/shared/validator"
	"hotelops/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Checkout
	otel    otel.Otel
}

func New(service service.Checkout, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/checkout", func(routerGroup chi.Router) {
		routerGroup.Get("/payment-methods", handler.GetPaymentMethods)
		routerGroup.Get("/{bookingID}/preview", handler.PreviewCheckout)
		routerGroup.Post("/{bookingID}/process", handler.ProcessCheckout)
		routerGroup.Get("/{bookingID}/settlement", handler.GetSettlement)
		routerGroup.Post("/{bookingID}/services", handler.AddServiceCharge)
		routerGroup.Delete("/{bookingID}/services/{chargeID}", handler.RemoveServiceCharge)
	})
}

// PreviewCheckout shows the reconciliation bill for a checked-in booking.
// @Summary Preview the checkout bill
// @Description Compute room charges, service charges, deposit credit and the amount due. Always derived from fresh data.
// @Tags Checkout
// @Accept json
// @Produce json
// @Param bookingID path string true "Booking ID"
// @Param actual_check_out_date query string true "Candidate checkout time (RFC3339 or YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.PreviewResponse] "Checkout preview"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/checkout/{bookingID}/preview [get]
// @Security BearerAuth
func (handler *Handler) PreviewCheckout(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".PreviewCheckout")
	defer scope.End()

	bookingID := chi.URLParam(r, "bookingID")
	req := dto.PreviewCheckoutRequest{
		ActualCheckOutDate: r.URL.Query().Get("actual_check_out_date"),
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate query parameters")

		response.WithError(w, err)

		return
	}

	preview, err := handler.service.Preview(ctx, bookingID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to preview checkout")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Checkout preview computed successfully")

	response.WithJSON(w, http.StatusOK, preview)
}

// ProcessCheckout settles the bill and completes the checkout.
// @Summary Process the checkout
// @Description Settle the booking with the chosen payment method. Amounts are recomputed server-side; the booking moves to CheckedOut and its rooms to Cleaning.
// @Tags Checkout
// @Accept json
// @Produce json
// @Param bookingID path string true "Booking ID"
// @Param request body dto.ProcessCheckoutRequest true "Process Checkout Request"
// @Success 200 {object} response.Data[dto.SettlementResponse] "Settlement record"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/checkout/{bookingID}/process [post]
// @Security BearerAuth
func (handler *Handler) ProcessCheckout(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ProcessCheckout")
	defer scope.End()

	bookingID := chi.URLParam(r, "bookingID")
	req := dto.ProcessCheckoutRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	settlement, err := handler.service.Process(ctx, bookingID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to process checkout")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Checkout processed successfully by user " + user)

	response.WithJSON(w, http.StatusOK, settlement)
}

// GetSettlement returns the settlement record of a checked-out booking.
// @Summary Get a booking settlement
// @Description Retrieve the settlement written when the booking was checked out.
// @Tags Checkout
// @Accept json
// @Produce json
// @Param bookingID path string true "Booking ID"
// @Success 200 {object} response.Data[dto.SettlementResponse] "Settlement record"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/checkout/{bookingID}/settlement [get]
// @Security BearerAuth
func (handler *Handler) GetSettlement(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSettlement")
	defer scope.End()

	bookingID := chi.URLParam(r, "bookingID")

	settlement, err := handler.service.GetSettlement(ctx, bookingID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get settlement")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Settlement retrieved successfully")

	response.WithJSON(w, http.StatusOK, settlement)
}

// AddServiceCharge adds an extra charge to a checked-in booking.
// @Summary Add a service charge
// @Description Add a service item consumed during the stay. Only allowed while the guest is checked in.
// @Tags Checkout
// @Accept json
// @Produce json
// @Param bookingID path string true "Booking ID"
// @Param request body dto.AddServiceChargeRequest true "Add Service Charge Request"
// @Success 201 {object} response.Message "Service charge added successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/checkout/{bookingID}/services [post]
// @Security BearerAuth
func (handler *Handler) AddServiceCharge(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddServiceCharge")
	defer scope.End()

	bookingID := chi.URLParam(r, "bookingID")
	req := dto.AddServiceChargeRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.AddServiceCharge(ctx, bookingID, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to add service charge")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Service charge added successfully by user " + user)

	response.WithMessage(w, http.StatusCreated, "Service charge added successfully")
}

// RemoveServiceCharge removes a service charge from a checked-in booking.
// @Summary Remove a service charge
// @Description Remove a service item before settlement. Only allowed while the guest is checked in.
// @Tags Checkout
// @Accept json
// @Produce json
// @Param bookingID path string true "Booking ID"
// @Param chargeID path string true "Service charge ID"
// @Success 200 {object} response.Message "Service charge removed successfully"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/checkout/{bookingID}/services/{chargeID} [delete]
// @Security BearerAuth
func (handler *Handler) RemoveServiceCharge(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RemoveServiceCharge")
	defer scope.End()

	bookingID := chi.URLParam(r, "bookingID")
	chargeID := chi.URLParam(r, "chargeID")

	if err := handler.service.RemoveServiceCharge(ctx, bookingID, chargeID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to remove service charge")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Service charge removed successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Service charge removed successfully")
}

// GetPaymentMethods lists the active settlement channels.
// @Summary Get payment methods
// @Description Retrieve the active payment methods available at checkout.
// @Tags Checkout
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.GetPaymentMethodsResponse] "Payment methods"
// @Failure 500 {object} response.Error
// @Router /v1/checkout/payment-methods [get]
// @Security BearerAuth
func (handler *Handler) GetPaymentMethods(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPaymentMethods")
	defer scope.End()

	methods, err := handler.service.GetPaymentMethods(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get payment methods")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Payment methods retrieved successfully")

	response.WithJSON(w, http.StatusOK, methods)
}
