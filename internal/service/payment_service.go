package service

import (
	"context"
	"crypto/rand"
	"errors"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/RoyceAzure/lab/megano/internal/domain/model"
	"github.com/RoyceAzure/lab/megano/internal/infra/producer"
	"github.com/RoyceAzure/lab/megano/internal/infra/repository/db"
	"github.com/rs/zerolog"
)

const (
	maxCardNumberLen  = 8
	accountNumberLen  = 8
	paymentErrMessage = "Payment error"
)

type CardInput struct {
	Number string
	Name   string
	Month  string
	Year   string
	Code   string
}

// Validate 欄位格式檢查, 卡號規則另外判斷
func (c CardInput) Validate() map[string]string {
	problems := map[string]string{}
	checks := []struct {
		field string
		value string
		max   int
	}{
		{"number", c.Number, maxCardNumberLen},
		{"name", c.Name, 255},
		{"month", c.Month, 2},
		{"year", c.Year, 4},
		{"code", c.Code, 3},
	}
	for _, ch := range checks {
		switch {
		case strings.TrimSpace(ch.value) == "":
			problems[ch.field] = "This field may not be blank."
		case len([]rune(ch.value)) > ch.max:
			problems[ch.field] = "Ensure this field has no more than " + strconv.Itoa(ch.max) + " characters."
		}
	}
	return problems
}

// ValidCardNumber 只接受數字, 不超過 8 碼且為偶數
func ValidCardNumber(number string) bool {
	if number == "" || len(number) > maxCardNumberLen {
		return false
	}
	for _, r := range number {
		if r < '0' || r > '9' {
			return false
		}
	}
	last := number[len(number)-1] - '0'
	return last%2 == 0
}

// simulatedFailure 尾數為 0 的卡號視為付款失敗
func simulatedFailure(number string) bool {
	return number[len(number)-1] == '0'
}

type SomeonePayment struct {
	AccountNumber string
	Order         *model.Order
}

type IPaymentService interface {
	PayOnline(ctx context.Context, profileID, orderID uint, card CardInput) (*model.Payment, error)
	PaySomeone(ctx context.Context, profileID, orderID uint) (*SomeonePayment, error)
	Progress(ctx context.Context, profileID, orderID uint) (*model.Payment, error)
}

type PaymentService struct {
	orderRepo   db.IOrderRepository
	paymentRepo db.IPaymentRepository
	events      producer.EventPublisher
	logger      *zerolog.Logger
	randDigits  func(n int) (string, error)
	now         func() time.Time
}

func NewPaymentService(orderRepo db.IOrderRepository, paymentRepo db.IPaymentRepository, events producer.EventPublisher, logger *zerolog.Logger) *PaymentService {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	if events == nil {
		events = producer.NoopEventPublisher{}
	}
	return &PaymentService{
		orderRepo:   orderRepo,
		paymentRepo: paymentRepo,
		events:      events,
		logger:      logger,
		randDigits:  randomDigits,
		now:         time.Now,
	}
}

func randomDigits(n int) (string, error) {
	var sb strings.Builder
	ten := big.NewInt(10)
	for i := 0; i < n; i++ {
		d, err := rand.Int(rand.Reader, ten)
		if err != nil {
			return "", err
		}
		sb.WriteByte(byte('0' + d.Int64()))
	}
	return sb.String(), nil
}

func (p *PaymentService) getOrder(ctx context.Context, profileID, orderID uint) (*model.Order, error) {
	order, err := p.orderRepo.GetOrderByID(ctx, orderID, profileID)
	if err != nil {
		return nil, notFoundOr(err, ErrOrderNotFound)
	}
	return order, nil
}

// PayOnline 模擬線上刷卡, 失敗也會留下付款紀錄並將訂單標為 error
//
// 錯誤:
//   - 404: 訂單不存在
//   - 400: 欄位錯誤, 非線上付款, 已付款, 卡號不合法, 模擬付款失敗
func (p *PaymentService) PayOnline(ctx context.Context, profileID, orderID uint, card CardInput) (*model.Payment, error) {
	order, err := p.getOrder(ctx, profileID, orderID)
	if err != nil {
		return nil, err
	}
	if problems := card.Validate(); len(problems) > 0 {
		return nil, invalid(problems)
	}
	if order.PaymentType != model.PaymentOnline {
		return nil, ErrNotOnlinePayment
	}

	exists, err := p.paymentRepo.ExistsPaymentForOrder(ctx, order.ID)
	if err != nil {
		return nil, internal(err)
	}
	if exists {
		return nil, ErrPaymentExists
	}
	if !ValidCardNumber(card.Number) {
		return nil, ErrInvalidCardNumber
	}

	payment := &model.Payment{
		OrderID:   order.ID,
		Number:    card.Number,
		Name:      card.Name,
		Month:     card.Month,
		Year:      card.Year,
		Code:      card.Code,
		Status:    model.PaymentStatusConfirmed,
		CreatedAt: p.now().UTC(),
	}
	var orderStatus model.OrderStatus
	failed := simulatedFailure(card.Number)
	if failed {
		msg := paymentErrMessage
		payment.Status = model.PaymentStatusError
		payment.ErrorMessage = &msg
		orderStatus = model.OrderStatusError
	}

	if err := p.paymentRepo.RecordPayment(ctx, payment, orderStatus); err != nil {
		// 同時送出的請求可能剛好寫入, 以唯一索引的結果為準
		if exists, xerr := p.paymentRepo.ExistsPaymentForOrder(ctx, order.ID); xerr == nil && exists {
			return nil, ErrPaymentExists
		}
		return nil, internal(err)
	}
	if failed {
		order.Status = orderStatus
	}
	p.logger.Info().Uint("order_id", order.ID).Str("status", string(payment.Status)).Msg("payment recorded")
	if err := p.events.PublishOrderEvent(ctx, producer.PaymentRecordedEvent, order, payment); err != nil {
		p.logger.Error().Err(err).Uint("order_id", order.ID).Msg("failed to publish payment event")
	}

	if failed {
		return payment, ErrPaymentFailed
	}
	return payment, nil
}

// PaySomeone 代付不驗證卡號, 產生隨機帳號並直接確認訂單
func (p *PaymentService) PaySomeone(ctx context.Context, profileID, orderID uint) (*SomeonePayment, error) {
	order, err := p.getOrder(ctx, profileID, orderID)
	if err != nil {
		return nil, err
	}
	account, err := p.randDigits(accountNumberLen)
	if err != nil {
		return nil, internal(err)
	}
	if err := p.orderRepo.UpdateOrderStatus(ctx, order.ID, model.OrderStatusConfirmed); err != nil {
		return nil, notFoundOr(err, ErrOrderNotFound)
	}
	order.Status = model.OrderStatusConfirmed

	p.logger.Info().Uint("order_id", order.ID).Msg("order confirmed by someone payment")
	if err := p.events.PublishOrderEvent(ctx, producer.OrderUpdatedEvent, order, nil); err != nil {
		p.logger.Error().Err(err).Uint("order_id", order.ID).Msg("failed to publish order event")
	}
	return &SomeonePayment{AccountNumber: account, Order: order}, nil
}

func (p *PaymentService) Progress(ctx context.Context, profileID, orderID uint) (*model.Payment, error) {
	order, err := p.getOrder(ctx, profileID, orderID)
	if err != nil {
		return nil, err
	}
	payment, err := p.paymentRepo.GetLatestPaymentByOrderID(ctx, order.ID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			return nil, ErrNoPayment
		}
		return nil, internal(err)
	}
	return payment, nil
}

var _ IPaymentService = (*PaymentService)(nil)
