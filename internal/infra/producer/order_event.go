package producer

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/RoyceAzure/lab/megano/internal/domain/model"
	"github.com/shopspring/decimal"
)

type EventType string

const (
	OrderCreatedEvent    EventType = "order_created"
	OrderUpdatedEvent    EventType = "order_updated"
	PaymentRecordedEvent EventType = "payment_recorded"

	EventTypeHeader = "event_type"
)

type OrderEventItem struct {
	ProductID uint            `json:"product_id"`
	Price     decimal.Decimal `json:"price"`
	Count     int             `json:"count"`
}

type OrderEvent struct {
	OrderID       uint                `json:"order_id"`
	ProfileID     uint                `json:"profile_id"`
	Status        model.OrderStatus   `json:"status"`
	DeliveryType  model.DeliveryType  `json:"delivery_type"`
	PaymentType   model.PaymentType   `json:"payment_type"`
	TotalCost     decimal.Decimal     `json:"total_cost"`
	Items         []OrderEventItem    `json:"items,omitempty"`
	PaymentStatus model.PaymentStatus `json:"payment_status,omitempty"`
	OccurredAt    time.Time           `json:"occurred_at"`
}

// EventPublisher 訂單相關事件, service 只依賴這個介面
type EventPublisher interface {
	PublishOrderEvent(ctx context.Context, eventType EventType, order *model.Order, payment *model.Payment) error
}

type OrderEventProducer struct {
	producer Producer
	now      func() time.Time
}

func NewOrderEventProducer(p Producer) *OrderEventProducer {
	return &OrderEventProducer{producer: p, now: time.Now}
}

func NewOrderEvent(order *model.Order, payment *model.Payment, at time.Time) OrderEvent {
	event := OrderEvent{
		OrderID:      order.ID,
		ProfileID:    order.ProfileID,
		Status:       order.Status,
		DeliveryType: order.DeliveryType,
		PaymentType:  order.PaymentType,
		TotalCost:    order.TotalCost,
		OccurredAt:   at.UTC(),
	}
	for _, item := range order.Items {
		event.Items = append(event.Items, OrderEventItem{
			ProductID: item.ProductID,
			Price:     item.Price,
			Count:     item.Count,
		})
	}
	if payment != nil {
		event.PaymentStatus = payment.Status
	}
	return event
}

func (p *OrderEventProducer) PublishOrderEvent(ctx context.Context, eventType EventType, order *model.Order, payment *model.Payment) error {
	at := p.now()
	value, err := json.Marshal(NewOrderEvent(order, payment, at))
	if err != nil {
		return err
	}
	return p.producer.Produce(ctx, []Message{
		{
			Key:   []byte(strconv.FormatUint(uint64(order.ID), 10)),
			Value: value,
			Headers: []Header{
				{Key: EventTypeHeader, Value: []byte(eventType)},
			},
			Time: at,
		},
	})
}

func (p *OrderEventProducer) Close() error {
	return p.producer.Close()
}

// NoopEventPublisher 未設定 kafka broker 時使用
type NoopEventPublisher struct{}

func (NoopEventPublisher) PublishOrderEvent(context.Context, EventType, *model.Order, *model.Payment) error {
	return nil
}

var (
	_ EventPublisher = (*OrderEventProducer)(nil)
	_ EventPublisher = NoopEventPublisher{}
)
