package db

import (
	"context"
	"strings"

	"github.com/RoyceAzure/lab/megano/internal/domain/model"
	"gorm.io/gorm"
)

const reviewCountExpr = "(SELECT COUNT(*) FROM reviews WHERE reviews.product_id = products.id)"

type ProductRepo struct {
	db *DbDao
}

func NewProductRepo(db *DbDao) *ProductRepo {
	return &ProductRepo{db: db}
}

// preloadProductCard 商品卡片需要的關聯
func preloadProductCard(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("images.id") }).
		Preload("Tags", func(db *gorm.DB) *gorm.DB { return db.Order("tags.tag_id") }).
		Preload("Reviews", func(db *gorm.DB) *gorm.DB { return db.Order("reviews.date DESC, reviews.id DESC") }).
		Preload("Reviews.Images").
		Preload("Specifications", func(db *gorm.DB) *gorm.DB { return db.Order("specifications.id") })
}

func (r *ProductRepo) GetProductByID(ctx context.Context, id uint) (*model.Product, error) {
	var product model.Product
	err := r.db.WithContext(ctx).Scopes(preloadProductCard).First(&product, id).Error
	if err != nil {
		return nil, translateErr(err, "get product %d", id)
	}
	return &product, nil
}

// GetProductsByIDs 不存在 (或已刪除) 的 id 直接略過
func (r *ProductRepo) GetProductsByIDs(ctx context.Context, ids []uint) ([]model.Product, error) {
	if len(ids) == 0 {
		return []model.Product{}, nil
	}
	var products []model.Product
	err := r.db.WithContext(ctx).Scopes(preloadProductCard).
		Where("id IN ?", ids).
		Order("id").
		Find(&products).Error
	return products, err
}

func (r *ProductRepo) ExistsProduct(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Product{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern 使用者輸入的 % _ 當作一般字元
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(s)) + "%"
}

func productFilterScope(f model.ProductFilter) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if f.Name != "" {
			db = db.Where(`LOWER(products.title) LIKE ? ESCAPE '\'`, containsPattern(f.Name))
		}
		if f.MinPrice != nil {
			db = db.Where("products.price >= ?", *f.MinPrice)
		}
		if f.MaxPrice != nil {
			db = db.Where("products.price <= ?", *f.MaxPrice)
		}
		if f.FreeDelivery {
			db = db.Where("products.free_delivery = ?", true)
		}
		if f.Available {
			db = db.Where("products.available = ?", true)
		}
		if f.SubCategoryID != nil {
			sub := db.Session(&gorm.Session{NewDB: true}).
				Table("category_subcategories").
				Select("category_id").
				Where("sub_category_id = ?", *f.SubCategoryID)
			db = db.Where("products.category_id IN (?)", sub)
		} else if f.CategoryID != nil {
			db = db.Where("products.category_id = ?", *f.CategoryID)
		}
		return db
	}
}

func productOrder(f model.ProductFilter) string {
	var col string
	switch f.Sort {
	case model.SortByPrice:
		col = "products.price"
	case model.SortByRating:
		col = "products.rating"
	case model.SortByDate:
		col = "products.date"
	case model.SortByTitle:
		col = "products.title"
	case model.SortByReviews:
		col = reviewCountExpr
	default:
		return "products.id"
	}
	if f.SortDesc {
		return col + " DESC, products.id"
	}
	return col + " ASC, products.id"
}

// ListProducts 回傳當頁商品與總筆數, filter 需先經過 Validate
func (r *ProductRepo) ListProducts(ctx context.Context, filter model.ProductFilter) ([]model.Product, int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Product{}).
		Scopes(productFilterScope(filter)).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	products := []model.Product{}
	if total == 0 {
		return products, 0, nil
	}
	err = r.db.WithContext(ctx).Model(&model.Product{}).
		Scopes(productFilterScope(filter), preloadProductCard).
		Order(productOrder(filter)).
		Offset(filter.Offset()).
		Limit(filter.Limit).
		Find(&products).Error
	return products, total, err
}

func (r *ProductRepo) ListPopularProducts(ctx context.Context, limit int) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).Scopes(preloadProductCard).
		Order("sort_index ASC, sales_count DESC, id ASC").
		Limit(limit).
		Find(&products).Error
	return products, err
}

func (r *ProductRepo) ListLimitedProducts(ctx context.Context, limit int) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).Scopes(preloadProductCard).
		Where("limited_edition = ?", true).
		Order("id").
		Limit(limit).
		Find(&products).Error
	return products, err
}

// IncrementSalesCount 下單後累加銷量, 供熱門商品排序
func (r *ProductRepo) IncrementSalesCount(ctx context.Context, counts map[uint]int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for id, n := range counts {
			err := tx.Model(&model.Product{}).Where("id = ?", id).
				UpdateColumn("sales_count", gorm.Expr("sales_count + ?", n)).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}
