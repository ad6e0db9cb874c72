package dto

import "github.com/RoyceAzure/lab/megano/internal/service"

type BasketItemDTO struct {
	ID    uint `json:"id" validate:"required"`
	Count int  `json:"count" validate:"required,min=1"`
}

type BasketRemoveDTO struct {
	ID uint `json:"id" validate:"required"`
}

// NewBasketDTO 商品卡片的 count 換成購物車內的數量
func NewBasketDTO(view *service.CartView) []ProductDTO {
	res := make([]ProductDTO, 0, len(view.Items))
	for _, line := range view.Items {
		p := NewProductDTO(line.Product)
		p.Count = line.Count
		res = append(res, p)
	}
	return res
}
