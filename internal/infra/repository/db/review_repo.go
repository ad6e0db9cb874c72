package db

import (
	"context"

	"github.com/RoyceAzure/lab/megano/internal/domain/model"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ReviewRepo struct {
	db *DbDao
}

func NewReviewRepo(db *DbDao) *ReviewRepo {
	return &ReviewRepo{db: db}
}

// CreateReview 新增評論並重算商品平均評分
func (r *ReviewRepo) CreateReview(ctx context.Context, review *model.Review) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(review).Error; err != nil {
			return err
		}
		var avg float64
		err := tx.Model(&model.Review{}).
			Where("product_id = ?", review.ProductID).
			Select("COALESCE(AVG(rate), 0)").
			Scan(&avg).Error
		if err != nil {
			return err
		}
		return tx.Model(&model.Product{}).Where("id = ?", review.ProductID).
			UpdateColumn("rating", decimal.NewFromFloat(avg).Round(1)).Error
	})
}
