package model

import "time"

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusConfirmed PaymentStatus = "confirmed"
	PaymentStatusError     PaymentStatus = "error"
)

// Payment 每張訂單至多一筆
type Payment struct {
	ID           uint          `gorm:"primaryKey"`
	OrderID      uint          `gorm:"not null;uniqueIndex"`
	Number       string        `gorm:"type:varchar(16);not null"`
	Name         string        `gorm:"type:varchar(255);not null"`
	Month        string        `gorm:"type:varchar(2);not null"`
	Year         string        `gorm:"type:varchar(4);not null"`
	Code         string        `gorm:"type:varchar(3);not null"`
	Status       PaymentStatus `gorm:"type:varchar(20);not null;default:'pending'"`
	ErrorMessage *string       `gorm:"type:text"`
	CreatedAt    time.Time     `gorm:"not null"`
}
