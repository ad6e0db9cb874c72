package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type ImageCategory struct {
	ID  uint   `gorm:"primaryKey"`
	Src string `gorm:"type:varchar(255)"`
	Alt string `gorm:"type:varchar(128)"`
}

type SubCategory struct {
	ID      uint           `gorm:"primaryKey"`
	Title   string         `gorm:"type:varchar(255);not null"`
	ImageID *uint          `gorm:"null"`
	Image   *ImageCategory `gorm:"constraint:OnDelete:SET NULL"`
}

type Category struct {
	ID            uint           `gorm:"primaryKey"`
	Title         string         `gorm:"type:varchar(255);not null"`
	ImageID       *uint          `gorm:"null"`
	Image         *ImageCategory `gorm:"constraint:OnDelete:SET NULL"`
	SubCategories []SubCategory  `gorm:"many2many:category_subcategories"`
}

type Product struct {
	ID              uint            `gorm:"primaryKey"`
	CategoryID      uint            `gorm:"not null;index"`
	Category        *Category       `gorm:"constraint:OnDelete:CASCADE"`
	Price           decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Count           int             `gorm:"not null"`
	Date            time.Time       `gorm:"not null"`
	Title           string          `gorm:"type:varchar(255);not null;index"`
	Description     string          `gorm:"type:text"`
	FullDescription string          `gorm:"type:text"`
	FreeDelivery    bool            `gorm:"not null"`
	Rating          decimal.Decimal `gorm:"type:decimal(3,1);not null;default:0"`
	Available       bool            `gorm:"not null"`
	LimitedEdition  bool            `gorm:"not null;index"`
	SortIndex       int             `gorm:"not null"`
	SalesCount      int             `gorm:"not null"`
	Images          []Image         `gorm:"constraint:OnDelete:CASCADE"`
	Tags            []Tag           `gorm:"many2many:product_tags;joinForeignKey:ProductID;joinReferences:TagID"`
	Reviews         []Review        `gorm:"constraint:OnDelete:CASCADE"`
	Specifications  []Specification `gorm:"constraint:OnDelete:CASCADE"`
	BaseModel
}

type Image struct {
	ID        uint   `gorm:"primaryKey"`
	ProductID uint   `gorm:"not null;index"`
	Src       string `gorm:"type:varchar(255)"`
	Alt       string `gorm:"type:varchar(128)"`
}

type Tag struct {
	TagID uint   `gorm:"primaryKey;column:tag_id"`
	Name  string `gorm:"type:varchar(50)"`
}

type Review struct {
	ID        uint          `gorm:"primaryKey"`
	ProductID uint          `gorm:"not null;index"`
	Author    string        `gorm:"type:varchar(255)"`
	Email     string        `gorm:"type:varchar(254)"`
	Text      string        `gorm:"type:text"`
	Rate      int           `gorm:"not null"`
	Date      time.Time     `gorm:"not null"`
	Images    []ReviewImage `gorm:"constraint:OnDelete:CASCADE"`
}

type ReviewImage struct {
	ID       uint   `gorm:"primaryKey"`
	ReviewID uint   `gorm:"not null;index"`
	Src      string `gorm:"type:varchar(255)"`
	Alt      string `gorm:"type:varchar(128)"`
}

type Specification struct {
	ID        uint   `gorm:"primaryKey"`
	ProductID uint   `gorm:"not null;index"`
	Name      string `gorm:"type:varchar(100);not null"`
	Value     string `gorm:"type:varchar(255);not null"`
}

// Sale 期間 [DateFrom, DateTo] 皆包含
type Sale struct {
	ID        uint            `gorm:"primaryKey"`
	ProductID uint            `gorm:"not null;index"`
	Product   *Product        `gorm:"constraint:OnDelete:CASCADE"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	SalePrice decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	DateFrom  time.Time       `gorm:"type:date;not null"`
	DateTo    time.Time       `gorm:"type:date;not null"`
}

func (s *Sale) IsActive(at time.Time) bool {
	day := time.Date(at.Year(), at.Month(), at.Day(), 0, 0, 0, 0, time.UTC)
	return !day.Before(truncateDay(s.DateFrom)) && !day.After(truncateDay(s.DateTo))
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

type Banner struct {
	ID        uint     `gorm:"primaryKey"`
	ProductID uint     `gorm:"not null;index"`
	Product   *Product `gorm:"constraint:OnDelete:CASCADE"`
}
