package handler

import (
	"net/http"

	"github.com/RoyceAzure/lab/megano/internal/api/dto"
	"github.com/RoyceAzure/lab/megano/internal/pkg/api"
	"github.com/RoyceAzure/lab/megano/internal/service"
	"github.com/rs/zerolog"
)

type OrderHandler struct {
	orderService service.IOrderService
	logger       *zerolog.Logger
}

func NewOrderHandler(orderService service.IOrderService, logger *zerolog.Logger) *OrderHandler {
	if orderService == nil {
		panic("orderService cannot be nil")
	}
	return &OrderHandler{
		orderService: orderService,
		logger:       nopIfNil(logger),
	}
}

// @Summary orders
// @Description orders of the current profile, newest first
// @Tags order
// @Produce json
// @Success 200 {array} dto.OrderDTO "success"
// @Failure 401 {object} api.ResponseError "Authentication credentials were not provided"
// @Router /orders [get]
func (o *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := o.orderService.List(r.Context(), currentSession(r).ProfileID)
	if err != nil {
		writeError(w, r, o.logger, err)
		return
	}
	api.SuccessJSON(w, http.StatusOK, dto.NewOrderDTOs(orders))
}

// @Summary create order
// @Description snapshot the basket into a new order and clear the basket
// @Tags order
// @Produce json
// @Success 201 {object} dto.OrderCreatedDTO "success"
// @Failure 400 {object} api.ResponseError "Basket is empty"
// @Failure 401 {object} api.ResponseError "Authentication credentials were not provided"
// @Router /orders [post]
func (o *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	session := currentSession(r)
	order, err := o.orderService.CreateFromCart(r.Context(), session.ProfileID, session.ID)
	if err != nil {
		writeError(w, r, o.logger, err)
		return
	}
	api.SuccessJSON(w, http.StatusCreated, dto.OrderCreatedDTO{OrderID: order.ID})
}

// @Summary order detail
// @Tags order
// @Produce json
// @Param id path int true "order id"
// @Success 200 {object} dto.OrderDTO "success"
// @Failure 401 {object} api.ResponseError "Authentication credentials were not provided"
// @Failure 404 {object} api.ResponseError "Order not found"
// @Router /order/{id} [get]
func (o *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		invalidID(w, "id")
		return
	}
	order, err := o.orderService.Get(r.Context(), currentSession(r).ProfileID, id)
	if err != nil {
		writeError(w, r, o.logger, err)
		return
	}
	api.SuccessJSON(w, http.StatusOK, dto.NewOrderDTO(order))
}

// @Summary confirm order
// @Description merge delivery/payment fields and recompute the total, paymentType someone redirects to payment-someone
// @Tags order
// @Accept json
// @Produce json
// @Param id path int true "order id"
// @Param order body dto.UpdateOrderDTO true "checkout fields"
// @Success 200 {object} dto.OrderUpdatedDTO "paymentType someone"
// @Success 201 {object} dto.OrderUpdatedDTO "success"
// @Failure 400 {object} api.ResponseError "Invalid request"
// @Failure 401 {object} api.ResponseError "Authentication credentials were not provided"
// @Failure 404 {object} api.ResponseError "Order not found"
// @Router /order/{id} [post]
func (o *OrderHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		invalidID(w, "id")
		return
	}
	var in dto.UpdateOrderDTO
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, r, o.logger, err)
		return
	}

	result, err := o.orderService.Update(r.Context(), currentSession(r).ProfileID, id, in.ToPatch())
	if err != nil {
		writeError(w, r, o.logger, err)
		return
	}

	res := dto.OrderUpdatedDTO{OrderID: result.Order.ID, RedirectURL: result.Redirect}
	if result.Redirect != "" {
		api.SuccessJSON(w, http.StatusOK, res)
		return
	}
	api.SuccessJSON(w, http.StatusCreated, res)
}

// @Summary order history
// @Tags order
// @Produce json
// @Success 200 {array} dto.OrderDTO "success"
// @Failure 401 {object} api.ResponseError "Authentication credentials were not provided"
// @Router /history-order [get]
func (o *OrderHandler) History(w http.ResponseWriter, r *http.Request) {
	orders, err := o.orderService.History(r.Context(), currentSession(r).ProfileID)
	if err != nil {
		writeError(w, r, o.logger, err)
		return
	}
	api.SuccessJSON(w, http.StatusOK, dto.NewOrderDTOs(orders))
}
