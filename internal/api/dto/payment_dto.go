package dto

import (
	"github.com/RoyceAzure/lab/megano/internal/domain/model"
	"github.com/RoyceAzure/lab/megano/internal/service"
)

// PaymentDTO 欄位檢查在 service, 訂單不存在時要先回 404
type PaymentDTO struct {
	Number string `json:"number"`
	Name   string `json:"name"`
	Month  string `json:"month"`
	Year   string `json:"year"`
	Code   string `json:"code"`
}

func (d PaymentDTO) ToCard() service.CardInput {
	return service.CardInput{
		Number: d.Number,
		Name:   d.Name,
		Month:  d.Month,
		Year:   d.Year,
		Code:   d.Code,
	}
}

type PaySomeoneRequestDTO struct {
	OrderID uint `json:"orderId"`
}

type PaySomeoneDTO struct {
	RandomAccountNumber string   `json:"random_account_number"`
	Order               OrderDTO `json:"order"`
}

type PaymentStatusDTO struct {
	OrderID      uint    `json:"order_id"`
	Status       string  `json:"status"`
	ErrorMessage *string `json:"error_message"`
}

func NewPaymentStatusDTO(p *model.Payment) PaymentStatusDTO {
	return PaymentStatusDTO{
		OrderID:      p.OrderID,
		Status:       string(p.Status),
		ErrorMessage: p.ErrorMessage,
	}
}
