package db

import (
	"context"

	"github.com/RoyceAzure/lab/megano/internal/domain/model"
	"gorm.io/gorm"
)

type PaymentRepo struct {
	db *DbDao
}

func NewPaymentRepo(db *DbDao) *PaymentRepo {
	return &PaymentRepo{db: db}
}

func (r *PaymentRepo) ExistsPaymentForOrder(ctx context.Context, orderID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Payment{}).Where("order_id = ?", orderID).Count(&count).Error
	return count > 0, err
}

func (r *PaymentRepo) GetLatestPaymentByOrderID(ctx context.Context, orderID uint) (*model.Payment, error) {
	var payment model.Payment
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at DESC, id DESC").
		First(&payment).Error
	if err != nil {
		return nil, translateErr(err, "get payment of order %d", orderID)
	}
	return &payment, nil
}

// RecordPayment 付款與訂單狀態同一交易, orderStatus 為空字串時不更新訂單
func (r *PaymentRepo) RecordPayment(ctx context.Context, payment *model.Payment, orderStatus model.OrderStatus) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(payment).Error; err != nil {
			return err
		}
		if orderStatus == "" {
			return nil
		}
		return tx.Model(&model.Order{}).Where("id = ?", payment.OrderID).Update("status", orderStatus).Error
	})
}
