package model

import (
	"github.com/shopspring/decimal"
)

type DeliveryType string

const (
	DeliveryOrdinary DeliveryType = "ordinary"
	DeliveryExpress  DeliveryType = "express"
)

func (d DeliveryType) IsValid() bool {
	return d == DeliveryOrdinary || d == DeliveryExpress
}

type PaymentType string

const (
	PaymentOnline  PaymentType = "online"
	PaymentSomeone PaymentType = "someone"
)

func (p PaymentType) IsValid() bool {
	return p == PaymentOnline || p == PaymentSomeone
}

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusAccepted  OrderStatus = "accepted"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusError     OrderStatus = "error"
)

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusAccepted, OrderStatusConfirmed, OrderStatusError:
		return true
	}
	return false
}

var (
	FreeDeliveryThreshold = decimal.NewFromInt(2000)
	OrdinaryDeliveryFee   = decimal.NewFromInt(200)
	ExpressDeliveryFee    = decimal.NewFromInt(500)
)

type Order struct {
	ID           uint            `gorm:"primaryKey"`
	ProfileID    uint            `gorm:"not null;index"`
	Profile      *Profile        `gorm:"constraint:OnDelete:RESTRICT"`
	DeliveryType DeliveryType    `gorm:"type:varchar(10);not null;default:'ordinary'"`
	PaymentType  PaymentType     `gorm:"type:varchar(10);not null;default:'online'"`
	Status       OrderStatus     `gorm:"type:varchar(10);not null;default:'pending'"`
	City         string          `gorm:"type:varchar(100)"`
	Address      string          `gorm:"type:varchar(255)"`
	TotalCost    decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	Items        []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Payment      *Payment        `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	BaseModel
}

// OrderItem 下單當下的價格快照, 之後不再回讀 Product.Price
type OrderItem struct {
	ID        uint            `gorm:"primaryKey"`
	OrderID   uint            `gorm:"not null;index"`
	ProductID uint            `gorm:"not null;index"`
	Product   *Product        `gorm:"constraint:OnDelete:CASCADE"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Count     int             `gorm:"not null"`
}

func (i OrderItem) Amount() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Count)))
}

// Subtotal 不含運費
func (o *Order) Subtotal() decimal.Decimal {
	amount := decimal.Zero
	for _, item := range o.Items {
		amount = amount.Add(item.Amount())
	}
	return amount
}

// DeliveryCost ordinary 只有在小計超過門檻時免運, express 固定收費
func DeliveryCost(deliveryType DeliveryType, subtotal decimal.Decimal) decimal.Decimal {
	switch deliveryType {
	case DeliveryOrdinary:
		if subtotal.GreaterThan(FreeDeliveryThreshold) {
			return decimal.Zero
		}
		return OrdinaryDeliveryFee
	case DeliveryExpress:
		return ExpressDeliveryFee
	}
	return decimal.Zero
}

func (o *Order) CalculateTotalCost() decimal.Decimal {
	subtotal := o.Subtotal()
	return subtotal.Add(DeliveryCost(o.DeliveryType, subtotal))
}
