package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/RoyceAzure/lab/megano/internal/domain/model"
	"github.com/RoyceAzure/lab/megano/internal/infra/producer"
	"github.com/RoyceAzure/lab/megano/internal/infra/repository/db"
	"github.com/rs/zerolog"
)

// RedirectPaymentSomeone 代付訂單確認後前端要導向的頁面
const RedirectPaymentSomeone = "payment-someone"

// OrderPatch 結帳時送出的欄位, nil 代表沿用原值
type OrderPatch struct {
	DeliveryType *string
	PaymentType  *string
	City         *string
	Address      *string
}

type OrderUpdateResult struct {
	Order    *model.Order
	Redirect string
}

type IOrderService interface {
	CreateFromCart(ctx context.Context, profileID uint, sessionID string) (*model.Order, error)
	Update(ctx context.Context, profileID, orderID uint, patch OrderPatch) (*OrderUpdateResult, error)
	Get(ctx context.Context, profileID, orderID uint) (*model.Order, error)
	List(ctx context.Context, profileID uint) ([]model.Order, error)
	History(ctx context.Context, profileID uint) ([]model.Order, error)
}

type OrderService struct {
	orderRepo   db.IOrderRepository
	productRepo db.IProductRepository
	cartService ICartService
	events      producer.EventPublisher
	logger      *zerolog.Logger
}

func NewOrderService(
	orderRepo db.IOrderRepository,
	productRepo db.IProductRepository,
	cartService ICartService,
	events producer.EventPublisher,
	logger *zerolog.Logger,
) *OrderService {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	if events == nil {
		events = producer.NoopEventPublisher{}
	}
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		cartService: cartService,
		events:      events,
		logger:      logger,
	}
}

func (o *OrderService) publish(ctx context.Context, eventType producer.EventType, order *model.Order) {
	if err := o.events.PublishOrderEvent(ctx, eventType, order, nil); err != nil {
		o.logger.Error().Err(err).Uint("order_id", order.ID).Str("event", string(eventType)).Msg("failed to publish order event")
	}
}

// CreateFromCart 以當下商品價格建立訂單明細, 成功後清空購物車
//
// 錯誤:
//   - 400: 購物車為空
func (o *OrderService) CreateFromCart(ctx context.Context, profileID uint, sessionID string) (*model.Order, error) {
	cart, err := o.cartService.Items(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, ErrBasketEmpty
	}

	order := &model.Order{
		ProfileID:    profileID,
		DeliveryType: model.DeliveryOrdinary,
		PaymentType:  model.PaymentOnline,
		Status:       model.OrderStatusPending,
		Items:        make([]model.OrderItem, 0, len(cart.Items)),
	}
	sold := make(map[uint]int, len(cart.Items))
	for _, line := range cart.Items {
		order.Items = append(order.Items, model.OrderItem{
			ProductID: line.Product.ID,
			Price:     line.Product.Price,
			Count:     line.Count,
		})
		sold[line.Product.ID] += line.Count
	}
	order.TotalCost = order.CalculateTotalCost()

	if err := o.orderRepo.CreateOrder(ctx, order); err != nil {
		return nil, internal(err)
	}
	o.logger.Info().Uint("order_id", order.ID).Uint("profile_id", profileID).Str("total", order.TotalCost.String()).Msg("order created")

	if err := o.productRepo.IncrementSalesCount(ctx, sold); err != nil {
		o.logger.Warn().Err(err).Uint("order_id", order.ID).Msg("failed to update sales count")
	}
	if err := o.cartService.Clear(ctx, sessionID); err != nil {
		o.logger.Warn().Err(err).Uint("order_id", order.ID).Msg("failed to clear basket")
	}
	o.publish(ctx, producer.OrderCreatedEvent, order)
	return order, nil
}

func applyOrderPatch(order *model.Order, patch OrderPatch) map[string]string {
	problems := map[string]string{}
	if patch.DeliveryType != nil {
		dt := model.DeliveryType(strings.TrimSpace(*patch.DeliveryType))
		if dt.IsValid() {
			order.DeliveryType = dt
		} else {
			problems["deliveryType"] = fmt.Sprintf("%q is not a valid choice.", *patch.DeliveryType)
		}
	}
	if patch.PaymentType != nil {
		pt := model.PaymentType(strings.TrimSpace(*patch.PaymentType))
		if pt.IsValid() {
			order.PaymentType = pt
		} else {
			problems["paymentType"] = fmt.Sprintf("%q is not a valid choice.", *patch.PaymentType)
		}
	}
	if patch.City != nil {
		if len([]rune(*patch.City)) > 100 {
			problems["city"] = "Ensure this field has no more than 100 characters."
		} else {
			order.City = strings.TrimSpace(*patch.City)
		}
	}
	if patch.Address != nil {
		if len([]rune(*patch.Address)) > 255 {
			problems["address"] = "Ensure this field has no more than 255 characters."
		} else {
			order.Address = strings.TrimSpace(*patch.Address)
		}
	}
	return problems
}

// Update 結帳: 合併欄位後重算總價, 狀態改為 accepted; 代付直接 confirmed 並回傳導向頁面
func (o *OrderService) Update(ctx context.Context, profileID, orderID uint, patch OrderPatch) (*OrderUpdateResult, error) {
	order, err := o.Get(ctx, profileID, orderID)
	if err != nil {
		return nil, err
	}
	if problems := applyOrderPatch(order, patch); len(problems) > 0 {
		return nil, invalid(problems)
	}

	order.TotalCost = order.CalculateTotalCost()
	order.Status = model.OrderStatusAccepted
	result := &OrderUpdateResult{Order: order}
	if order.PaymentType == model.PaymentSomeone {
		order.Status = model.OrderStatusConfirmed
		result.Redirect = RedirectPaymentSomeone
	}

	if err := o.orderRepo.UpdateOrder(ctx, order); err != nil {
		return nil, internal(err)
	}
	o.logger.Info().Uint("order_id", order.ID).Str("status", string(order.Status)).Str("total", order.TotalCost.String()).Msg("order updated")
	o.publish(ctx, producer.OrderUpdatedEvent, order)
	return result, nil
}

func (o *OrderService) Get(ctx context.Context, profileID, orderID uint) (*model.Order, error) {
	order, err := o.orderRepo.GetOrderByID(ctx, orderID, profileID)
	if err != nil {
		return nil, notFoundOr(err, ErrOrderNotFound)
	}
	return order, nil
}

// List 新的在前
func (o *OrderService) List(ctx context.Context, profileID uint) ([]model.Order, error) {
	orders, err := o.orderRepo.ListOrdersByProfileID(ctx, profileID)
	if err != nil {
		return nil, internal(err)
	}
	return orders, nil
}

func (o *OrderService) History(ctx context.Context, profileID uint) ([]model.Order, error) {
	return o.List(ctx, profileID)
}

var _ IOrderService = (*OrderService)(nil)
