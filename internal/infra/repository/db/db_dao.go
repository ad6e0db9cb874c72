package db

import (
	"github.com/RoyceAzure/lab/megano/internal/domain/model"
	"gorm.io/gorm"
)

type DbDao struct {
	*gorm.DB
}

func NewDbDao(conn *gorm.DB) *DbDao {
	return &DbDao{
		DB: conn,
	}
}

// 初始化db schema
// 冪等性, 測試與無 migration 檔的環境使用
func (d *DbDao) InitMigrate() error {
	return d.AutoMigrate(
		&model.User{},
		&model.Avatar{},
		&model.Profile{},
		&model.ImageCategory{},
		&model.SubCategory{},
		&model.Category{},
		&model.Tag{},
		&model.Product{},
		&model.Image{},
		&model.Review{},
		&model.ReviewImage{},
		&model.Specification{},
		&model.Sale{},
		&model.Banner{},
		&model.Order{},
		&model.OrderItem{},
		&model.Payment{},
	)
}
