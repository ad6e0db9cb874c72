package handler

import (
	"net/http"

	"github.com/RoyceAzure/lab/megano/internal/api/dto"
	"github.com/RoyceAzure/lab/megano/internal/pkg/api"
	"github.com/RoyceAzure/lab/megano/internal/service"
	"github.com/rs/zerolog"
)

// BasketHandler 購物車跟著 session 走, 不需要登入
type BasketHandler struct {
	cartService service.ICartService
	logger      *zerolog.Logger
}

func NewBasketHandler(cartService service.ICartService, logger *zerolog.Logger) *BasketHandler {
	if cartService == nil {
		panic("cartService cannot be nil")
	}
	return &BasketHandler{
		cartService: cartService,
		logger:      nopIfNil(logger),
	}
}

// @Summary basket
// @Tags basket
// @Produce json
// @Success 200 {array} dto.ProductDTO "product cards, count is the basket quantity"
// @Router /basket [get]
func (b *BasketHandler) Get(w http.ResponseWriter, r *http.Request) {
	view, err := b.cartService.Items(r.Context(), currentSession(r).ID)
	if err != nil {
		writeError(w, r, b.logger, err)
		return
	}
	api.SuccessJSON(w, http.StatusOK, dto.NewBasketDTO(view))
}

// @Summary add to basket
// @Description increments the count when the product is already in the basket
// @Tags basket
// @Accept json
// @Produce json
// @Param item body dto.BasketItemDTO true "product id and count"
// @Success 200 {array} dto.ProductDTO "basket after the change"
// @Failure 400 {object} api.ResponseError "Invalid request"
// @Failure 404 {object} api.ResponseMessage "Product not found"
// @Router /basket [post]
func (b *BasketHandler) Add(w http.ResponseWriter, r *http.Request) {
	var in dto.BasketItemDTO
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, r, b.logger, err)
		return
	}
	if err := validateDTO(in); err != nil {
		writeError(w, r, b.logger, err)
		return
	}

	view, err := b.cartService.Add(r.Context(), currentSession(r).ID, in.ID, in.Count)
	if err != nil {
		if notFoundMessage(w, err, service.ErrProductNotFound) {
			return
		}
		writeError(w, r, b.logger, err)
		return
	}
	api.SuccessJSON(w, http.StatusOK, dto.NewBasketDTO(view))
}

// @Summary remove from basket
// @Tags basket
// @Accept json
// @Produce json
// @Param item body dto.BasketRemoveDTO true "product id"
// @Success 200 {array} dto.ProductDTO "basket after the change"
// @Failure 400 {object} api.ResponseError "Invalid request"
// @Failure 404 {object} api.ResponseMessage "Product not found"
// @Router /basket [delete]
func (b *BasketHandler) Remove(w http.ResponseWriter, r *http.Request) {
	var in dto.BasketRemoveDTO
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, r, b.logger, err)
		return
	}
	if err := validateDTO(in); err != nil {
		writeError(w, r, b.logger, err)
		return
	}

	view, err := b.cartService.Remove(r.Context(), currentSession(r).ID, in.ID)
	if err != nil {
		if notFoundMessage(w, err, service.ErrProductNotFound) {
			return
		}
		writeError(w, r, b.logger, err)
		return
	}
	api.SuccessJSON(w, http.StatusOK, dto.NewBasketDTO(view))
}
