package db

import (
	"context"

	"github.com/RoyceAzure/lab/megano/internal/domain/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OrderRepo struct {
	db *DbDao
}

func NewOrderRepo(db *DbDao) *OrderRepo {
	return &OrderRepo{db: db}
}

func preloadOrder(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Profile").
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("order_items.id") }).
		Preload("Items.Product", func(db *gorm.DB) *gorm.DB { return db.Unscoped() }).
		Preload("Items.Product.Images", func(db *gorm.DB) *gorm.DB { return db.Order("images.id") }).
		Preload("Items.Product.Tags").
		Preload("Items.Product.Reviews").
		Preload("Items.Product.Specifications")
}

// CreateOrder 訂單與明細一起寫入, 明細的 Product 需為 nil
func (r *OrderRepo) CreateOrder(ctx context.Context, order *model.Order) error {
	return r.db.WithContext(ctx).Omit("Profile", "Payment").Create(order).Error
}

// GetOrderByID profileID 不符時視為不存在
func (r *OrderRepo) GetOrderByID(ctx context.Context, id uint, profileID uint) (*model.Order, error) {
	var order model.Order
	err := r.db.WithContext(ctx).Scopes(preloadOrder).
		Where("id = ? AND profile_id = ?", id, profileID).
		First(&order).Error
	if err != nil {
		return nil, translateErr(err, "get order %d", id)
	}
	return &order, nil
}

func (r *OrderRepo) ListOrdersByProfileID(ctx context.Context, profileID uint) ([]model.Order, error) {
	orders := []model.Order{}
	err := r.db.WithContext(ctx).Scopes(preloadOrder).
		Where("profile_id = ?", profileID).
		Order("created_at DESC, id DESC").
		Find(&orders).Error
	return orders, err
}

// UpdateOrder 只更新訂單本身欄位, 明細不動
func (r *OrderRepo) UpdateOrder(ctx context.Context, order *model.Order) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(order).Error
}

func (r *OrderRepo) UpdateOrderStatus(ctx context.Context, id uint, status model.OrderStatus) error {
	res := r.db.WithContext(ctx).Model(&model.Order{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return translateErr(gorm.ErrRecordNotFound, "update status of order %d", id)
	}
	return nil
}
