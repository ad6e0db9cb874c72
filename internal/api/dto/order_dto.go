package dto

import (
	"time"

	"github.com/RoyceAzure/lab/megano/internal/domain/model"
	"github.com/RoyceAzure/lab/megano/internal/service"
)

type OrderDTO struct {
	ID           uint         `json:"id"`
	CreatedAt    time.Time    `json:"createdAt"`
	FullName     string       `json:"fullName"`
	Email        *string      `json:"email"`
	Phone        *string      `json:"phone"`
	DeliveryType string       `json:"deliveryType"`
	PaymentType  string       `json:"paymentType"`
	TotalCost    string       `json:"totalCost"`
	Status       string       `json:"status"`
	City         string       `json:"city"`
	Address      string       `json:"address"`
	Products     []ProductDTO `json:"products"`
}

// UpdateOrderDTO fullName/email/phone 為唯讀欄位, 送來也不處理
type UpdateOrderDTO struct {
	FullName     *string `json:"fullName"`
	Email        *string `json:"email"`
	Phone        *string `json:"phone"`
	DeliveryType *string `json:"deliveryType"`
	PaymentType  *string `json:"paymentType"`
	City         *string `json:"city"`
	Address      *string `json:"address"`
}

type OrderCreatedDTO struct {
	OrderID uint `json:"orderId"`
}

type OrderUpdatedDTO struct {
	OrderID     uint   `json:"orderId"`
	RedirectURL string `json:"redirect_url,omitempty"`
}

func (d UpdateOrderDTO) ToPatch() service.OrderPatch {
	return service.OrderPatch{
		DeliveryType: d.DeliveryType,
		PaymentType:  d.PaymentType,
		City:         d.City,
		Address:      d.Address,
	}
}

// NewOrderDTO 明細使用下單當下的價格與數量
func NewOrderDTO(o *model.Order) OrderDTO {
	res := OrderDTO{
		ID:           o.ID,
		CreatedAt:    o.CreatedAt,
		DeliveryType: string(o.DeliveryType),
		PaymentType:  string(o.PaymentType),
		TotalCost:    money(o.CalculateTotalCost()),
		Status:       string(o.Status),
		City:         o.City,
		Address:      o.Address,
		Products:     make([]ProductDTO, 0, len(o.Items)),
	}
	if o.Profile != nil {
		res.FullName = o.Profile.FullName
		res.Email = o.Profile.Email
		res.Phone = o.Profile.Phone
	}
	for _, item := range o.Items {
		var p ProductDTO
		if item.Product != nil {
			p = NewProductDTO(*item.Product)
		} else {
			p = ProductDTO{ID: item.ProductID, Images: []ImageDTO{}, Tags: []TagDTO{}, Reviews: []ReviewDTO{}, Specifications: []SpecificationDTO{}}
		}
		p.Price = money(item.Price)
		p.Count = item.Count
		res.Products = append(res.Products, p)
	}
	return res
}

func NewOrderDTOs(orders []model.Order) []OrderDTO {
	res := make([]OrderDTO, 0, len(orders))
	for i := range orders {
		res = append(res, NewOrderDTO(&orders[i]))
	}
	return res
}
