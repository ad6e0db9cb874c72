package db

import (
	"context"
	"time"

	"github.com/RoyceAzure/lab/megano/internal/domain/model"
	"gorm.io/gorm"
)

// CatalogRepo 分類, 標籤, 特價, 橫幅等唯讀資料
type CatalogRepo struct {
	db *DbDao
}

func NewCatalogRepo(db *DbDao) *CatalogRepo {
	return &CatalogRepo{db: db}
}

func (r *CatalogRepo) ListTags(ctx context.Context) ([]model.Tag, error) {
	var tags []model.Tag
	err := r.db.WithContext(ctx).Order("tag_id").Find(&tags).Error
	return tags, err
}

func (r *CatalogRepo) GetTagByID(ctx context.Context, id uint) (*model.Tag, error) {
	var tag model.Tag
	err := r.db.WithContext(ctx).Where("tag_id = ?", id).First(&tag).Error
	if err != nil {
		return nil, translateErr(err, "get tag %d", id)
	}
	return &tag, nil
}

func (r *CatalogRepo) ListCategories(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	err := r.db.WithContext(ctx).
		Preload("Image").
		Preload("SubCategories", func(db *gorm.DB) *gorm.DB { return db.Order("sub_categories.id") }).
		Preload("SubCategories.Image").
		Order("id").
		Find(&categories).Error
	return categories, err
}

// ListActiveSales day 需為 UTC 零點
func (r *CatalogRepo) ListActiveSales(ctx context.Context, day time.Time, offset, limit int) ([]model.Sale, int64, error) {
	active := func(db *gorm.DB) *gorm.DB {
		return db.Where("date_from <= ? AND date_to >= ?", day, day)
	}

	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Sale{}).Scopes(active).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sales := []model.Sale{}
	if total == 0 {
		return sales, 0, nil
	}
	err := r.db.WithContext(ctx).Scopes(active).
		Preload("Product").
		Preload("Product.Images", func(db *gorm.DB) *gorm.DB { return db.Order("images.id") }).
		Order("date_to ASC, id ASC").
		Offset(offset).
		Limit(limit).
		Find(&sales).Error
	return sales, total, err
}

func (r *CatalogRepo) ListBanners(ctx context.Context) ([]model.Banner, error) {
	var banners []model.Banner
	err := r.db.WithContext(ctx).
		Preload("Product").
		Preload("Product.Images", func(db *gorm.DB) *gorm.DB { return db.Order("images.id") }).
		Preload("Product.Tags", func(db *gorm.DB) *gorm.DB { return db.Order("tags.tag_id") }).
		Order("id").
		Find(&banners).Error
	if err != nil {
		return nil, err
	}
	// 已刪除的商品不顯示橫幅
	visible := banners[:0]
	for _, b := range banners {
		if b.Product != nil {
			visible = append(visible, b)
		}
	}
	return visible, nil
}

func (r *CatalogRepo) CountReviewsByProductIDs(ctx context.Context, ids []uint) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(ids))
	if len(ids) == 0 {
		return counts, nil
	}
	var rows []struct {
		ProductID uint
		Total     int64
	}
	err := r.db.WithContext(ctx).Model(&model.Review{}).
		Select("product_id, COUNT(*) AS total").
		Where("product_id IN ?", ids).
		Group("product_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts[row.ProductID] = row.Total
	}
	return counts, nil
}
