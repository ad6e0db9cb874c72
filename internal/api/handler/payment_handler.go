package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/RoyceAzure/lab/megano/internal/api/dto"
	"github.com/RoyceAzure/lab/megano/internal/pkg/api"
	"github.com/RoyceAzure/lab/megano/internal/service"
	"github.com/rs/zerolog"
)

type PaymentHandler struct {
	paymentService service.IPaymentService
	logger         *zerolog.Logger
}

func NewPaymentHandler(paymentService service.IPaymentService, logger *zerolog.Logger) *PaymentHandler {
	if paymentService == nil {
		panic("paymentService cannot be nil")
	}
	return &PaymentHandler{
		paymentService: paymentService,
		logger:         nopIfNil(logger),
	}
}

// @Summary pay online
// @Description simulated card payment, a number ending in 0 fails and marks the order as error
// @Tags payment
// @Accept json
// @Produce json
// @Param id path int true "order id"
// @Param card body dto.PaymentDTO true "card"
// @Success 200 {object} api.ResponseMessage "Awaiting payment confirmation from the payment system"
// @Failure 400 {object} api.ResponseError "Invalid card number | Payment already exists for this order | Payment error"
// @Failure 401 {object} api.ResponseError "Authentication credentials were not provided"
// @Failure 404 {object} api.ResponseError "Order not found"
// @Router /payment/{id} [post]
func (p *PaymentHandler) Pay(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		invalidID(w, "id")
		return
	}
	var in dto.PaymentDTO
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, r, p.logger, err)
		return
	}

	if _, err := p.paymentService.PayOnline(r.Context(), currentSession(r).ProfileID, id, in.ToCard()); err != nil {
		writeError(w, r, p.logger, err)
		return
	}
	api.MessageJSON(w, http.StatusOK, "Awaiting payment confirmation from the payment system")
}

// @Summary pay by someone
// @Description generate a random account number and confirm the order
// @Tags payment
// @Accept json
// @Produce json
// @Param order body dto.PaySomeoneRequestDTO false "order id"
// @Param id query int false "order id when the body is empty"
// @Success 200 {object} dto.PaySomeoneDTO "success"
// @Failure 400 {object} api.ResponseError "Invalid request"
// @Failure 401 {object} api.ResponseError "Authentication credentials were not provided"
// @Failure 404 {object} api.ResponseError "Order not found"
// @Router /payment-someone [post]
func (p *PaymentHandler) PaySomeone(w http.ResponseWriter, r *http.Request) {
	var in dto.PaySomeoneRequestDTO
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, r, p.logger, err)
		return
	}
	if in.OrderID == 0 {
		if raw := r.URL.Query().Get("id"); raw != "" {
			if id, err := strconv.ParseUint(raw, 10, 64); err == nil {
				in.OrderID = uint(id)
			}
		}
	}
	if in.OrderID == 0 {
		badRequest(w, map[string]string{"orderId": "This field is required."})
		return
	}

	res, err := p.paymentService.PaySomeone(r.Context(), currentSession(r).ProfileID, in.OrderID)
	if err != nil {
		writeError(w, r, p.logger, err)
		return
	}
	api.SuccessJSON(w, http.StatusOK, dto.PaySomeoneDTO{
		RandomAccountNumber: res.AccountNumber,
		Order:               dto.NewOrderDTO(res.Order),
	})
}

// @Summary payment progress
// @Description latest payment attempt of the order
// @Tags payment
// @Produce json
// @Param id path int true "order id"
// @Success 200 {object} dto.PaymentStatusDTO "success"
// @Failure 401 {object} api.ResponseError "Authentication credentials were not provided"
// @Failure 404 {object} dto.PaymentStatusDTO "No payment found"
// @Router /progress-payment/{id} [get]
func (p *PaymentHandler) Progress(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		invalidID(w, "id")
		return
	}
	payment, err := p.paymentService.Progress(r.Context(), currentSession(r).ProfileID, id)
	if err != nil {
		if errors.Is(err, service.ErrNoPayment) {
			api.SuccessJSON(w, http.StatusNotFound, map[string]string{"status": service.ErrNoPayment.Message})
			return
		}
		writeError(w, r, p.logger, err)
		return
	}
	api.SuccessJSON(w, http.StatusOK, dto.NewPaymentStatusDTO(payment))
}
