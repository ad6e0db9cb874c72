package service

import (
	"context"
	"testing"

	"github.com/RoyceAzure/lab/megano/internal/domain/model"
	"github.com/RoyceAzure/lab/megano/internal/infra/producer"
	er "github.com/RoyceAzure/lab/megano/internal/pkg/rj_error"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestValidCardNumber(t *testing.T) {
	tests := []struct {
		number string
		valid  bool
	}{
		{"12345678", true},
		{"2", true},
		{"10", true},
		{"1234567", false},
		{"123456789", false},
		{"12a4", false},
		{"-2", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.number, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidCardNumber(tt.number))
		})
	}
}

type PaymentServiceTestSuite struct {
	suite.Suite
	store  *fakeStore
	events *fakeEvents
	svc    *PaymentService
}

func (s *PaymentServiceTestSuite) SetupTest() {
	s.store = newFakeStore()
	s.events = &fakeEvents{}
	s.svc = NewPaymentService(s.store, s.store, s.events, nil)
	s.svc.randDigits = func(n int) (string, error) { return "12345678"[:n], nil }
}

func TestPaymentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}

func (s *PaymentServiceTestSuite) addOrder(paymentType model.PaymentType) *model.Order {
	order := &model.Order{
		ProfileID:    testProfileID,
		DeliveryType: model.DeliveryOrdinary,
		PaymentType:  paymentType,
		Status:       model.OrderStatusAccepted,
		TotalCost:    decimal.NewFromInt(2000),
	}
	s.Require().NoError(s.store.CreateOrder(context.Background(), order))
	return order
}

func card(number string) CardInput {
	return CardInput{Number: number, Name: "Ivan Ivanov", Month: "02", Year: "2030", Code: "123"}
}

func (s *PaymentServiceTestSuite) TestPayOnlineConfirmed() {
	order := s.addOrder(model.PaymentOnline)

	payment, err := s.svc.PayOnline(context.Background(), testProfileID, order.ID, card("12345678"))
	s.Require().NoError(err)
	s.Equal(model.PaymentStatusConfirmed, payment.Status)
	s.Nil(payment.ErrorMessage)
	s.Equal("Ivan Ivanov", s.store.payments[order.ID].Name)
	s.Equal(model.OrderStatusAccepted, s.store.orders[order.ID].Status)

	s.Require().Len(s.events.events, 1)
	s.Equal(producer.PaymentRecordedEvent, s.events.events[0].Type)
	s.NotNil(s.events.events[0].Payment)
}

func (s *PaymentServiceTestSuite) TestPayOnlineSimulatedFailure() {
	order := s.addOrder(model.PaymentOnline)

	payment, err := s.svc.PayOnline(context.Background(), testProfileID, order.ID, card("20"))
	s.Require().ErrorIs(err, ErrPaymentFailed)
	s.Require().NotNil(payment)
	s.Equal(model.PaymentStatusError, payment.Status)
	s.Require().NotNil(payment.ErrorMessage)
	s.Equal("Payment error", *payment.ErrorMessage)
	s.Equal(model.OrderStatusError, s.store.orders[order.ID].Status)
	s.Equal(model.PaymentStatusError, s.store.payments[order.ID].Status)
}

func (s *PaymentServiceTestSuite) TestPayOnlineInvalidCard() {
	order := s.addOrder(model.PaymentOnline)

	for _, number := range []string{"1234567", "12ab", "123456789"} {
		_, err := s.svc.PayOnline(context.Background(), testProfileID, order.ID, card(number))
		ae, ok := er.As(err)
		s.Require().True(ok, number)
		s.Equal(er.BadRequestCode, ae.Code, number)
	}
	s.Empty(s.store.payments)
}

func (s *PaymentServiceTestSuite) TestPayOnlineDuplicateRejectedRegardlessOfCard() {
	order := s.addOrder(model.PaymentOnline)
	_, err := s.svc.PayOnline(context.Background(), testProfileID, order.ID, card("2"))
	s.Require().NoError(err)

	for _, number := range []string{"4", "3", "30"} {
		_, err = s.svc.PayOnline(context.Background(), testProfileID, order.ID, card(number))
		s.ErrorIs(err, ErrPaymentExists, number)
	}
}

func (s *PaymentServiceTestSuite) TestPayOnlineRaceMapsToDuplicate() {
	order := s.addOrder(model.PaymentOnline)
	// 另一個請求先寫入, 但 exists 檢查已經通過
	s.store.recordErr = errFakeDown
	s.store.payments[order.ID] = &model.Payment{OrderID: order.ID}

	svc := NewPaymentService(s.store, racingPayments{s.store}, s.events, nil)
	_, err := svc.PayOnline(context.Background(), testProfileID, order.ID, card("2"))
	s.ErrorIs(err, ErrPaymentExists)
}

func (s *PaymentServiceTestSuite) TestPayOnlineRejectedOrders() {
	someone := s.addOrder(model.PaymentSomeone)

	_, err := s.svc.PayOnline(context.Background(), testProfileID, someone.ID, card("2"))
	s.ErrorIs(err, ErrNotOnlinePayment)

	_, err = s.svc.PayOnline(context.Background(), testProfileID+1, someone.ID, card("2"))
	s.ErrorIs(err, ErrOrderNotFound)

	online := s.addOrder(model.PaymentOnline)
	_, err = s.svc.PayOnline(context.Background(), testProfileID, online.ID, CardInput{Number: "2"})
	ae, ok := er.As(err)
	s.Require().True(ok)
	s.Contains(ae.Details, "name")
	s.Contains(ae.Details, "code")
}

func (s *PaymentServiceTestSuite) TestPaySomeone() {
	order := s.addOrder(model.PaymentSomeone)

	res, err := s.svc.PaySomeone(context.Background(), testProfileID, order.ID)
	s.Require().NoError(err)
	s.Equal("12345678", res.AccountNumber)
	s.Equal(model.OrderStatusConfirmed, res.Order.Status)
	s.Equal(model.OrderStatusConfirmed, s.store.orders[order.ID].Status)

	_, err = s.svc.PaySomeone(context.Background(), testProfileID+1, order.ID)
	s.ErrorIs(err, ErrOrderNotFound)
}

func (s *PaymentServiceTestSuite) TestProgress() {
	order := s.addOrder(model.PaymentOnline)

	_, err := s.svc.Progress(context.Background(), testProfileID, order.ID)
	s.Require().ErrorIs(err, ErrNoPayment)

	_, err = s.svc.PayOnline(context.Background(), testProfileID, order.ID, card("40"))
	s.Require().ErrorIs(err, ErrPaymentFailed)

	payment, err := s.svc.Progress(context.Background(), testProfileID, order.ID)
	s.Require().NoError(err)
	s.Equal(model.PaymentStatusError, payment.Status)
}

func TestRandomDigits(t *testing.T) {
	got, err := randomDigits(8)
	require.NoError(t, err)
	require.Len(t, got, 8)
	for _, r := range got {
		assert.True(t, r >= '0' && r <= '9')
	}
}

// racingPayments exists 第一次回報尚未付款, 模擬兩個請求同時通過檢查
type racingPayments struct {
	*fakeStore
}

func (r racingPayments) ExistsPaymentForOrder(ctx context.Context, orderID uint) (bool, error) {
	if r.recordErr != nil {
		r.recordErr = nil
		return false, nil
	}
	return r.fakeStore.ExistsPaymentForOrder(ctx, orderID)
}
