package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// User 登入身份, 與 Profile 一對一
type User struct {
	ID           uint       `gorm:"primaryKey"`
	Username     string     `gorm:"type:varchar(150);uniqueIndex;not null"`
	PasswordHash string     `gorm:"type:varchar(255);not null"`
	IsActive     bool       `gorm:"not null"`
	LastLogin    *time.Time `gorm:"null"`
	Profile      *Profile   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	BaseModel
}

type Avatar struct {
	ID  uint   `gorm:"primaryKey"`
	Src string `gorm:"type:varchar(255);not null"`
	Alt string `gorm:"type:varchar(128)"`
}

// Email 與 Phone 允許 NULL, 非 NULL 值全域唯一
type Profile struct {
	ID       uint            `gorm:"primaryKey"`
	UserID   uint            `gorm:"uniqueIndex;not null"`
	FullName string          `gorm:"type:varchar(100);not null"`
	Email    *string         `gorm:"type:varchar(254);uniqueIndex"`
	Phone    *string         `gorm:"type:varchar(15);uniqueIndex"`
	Balance  decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	AvatarID *uint           `gorm:"null"`
	Avatar   *Avatar         `gorm:"constraint:OnDelete:SET NULL"`
	BaseModel
}
