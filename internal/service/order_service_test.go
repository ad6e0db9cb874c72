package service

import (
	"context"
	"testing"

	"github.com/RoyceAzure/lab/megano/internal/domain/model"
	"github.com/RoyceAzure/lab/megano/internal/infra/producer"
	er "github.com/RoyceAzure/lab/megano/internal/pkg/rj_error"
	"github.com/stretchr/testify/suite"
)

type OrderServiceTestSuite struct {
	suite.Suite
	store  *fakeStore
	carts  *fakeCartRepo
	events *fakeEvents
	svc    *OrderService
}

const (
	testProfileID uint = 9
	testSessionID      = "session-1"
)

func (s *OrderServiceTestSuite) SetupTest() {
	s.store = newFakeStore()
	s.store.addProduct(1, "500", false)
	s.store.addProduct(2, "800", false)
	s.carts = newFakeCartRepo()
	s.events = &fakeEvents{}
	s.svc = NewOrderService(s.store, s.store, NewCartService(s.carts, s.store), s.events, nil)
}

func TestOrderServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OrderServiceTestSuite))
}

// createOrder 購物車: 商品1 500 x 2, 商品2 800 x 1
func (s *OrderServiceTestSuite) createOrder() *model.Order {
	ctx := context.Background()
	_, err := s.carts.Add(ctx, testSessionID, 1, 2)
	s.Require().NoError(err)
	_, err = s.carts.Add(ctx, testSessionID, 2, 1)
	s.Require().NoError(err)

	order, err := s.svc.CreateFromCart(ctx, testProfileID, testSessionID)
	s.Require().NoError(err)
	return order
}

func (s *OrderServiceTestSuite) TestCreateFromCart() {
	order := s.createOrder()

	s.Equal(model.OrderStatusPending, order.Status)
	s.Equal(model.DeliveryOrdinary, order.DeliveryType)
	s.Equal(model.PaymentOnline, order.PaymentType)
	s.Require().Len(order.Items, 2)
	s.Equal("500", order.Items[0].Price.String())
	s.Equal(2, order.Items[0].Count)
	s.Equal("2000", order.TotalCost.String())

	s.NotContains(s.carts.carts, testSessionID, "basket is cleared")
	s.Equal(map[uint]int{1: 2, 2: 1}, s.store.sold)
	s.Require().Len(s.events.events, 1)
	s.Equal(producer.OrderCreatedEvent, s.events.events[0].Type)
}

func (s *OrderServiceTestSuite) TestCreateFromEmptyCart() {
	_, err := s.svc.CreateFromCart(context.Background(), testProfileID, testSessionID)
	s.Require().ErrorIs(err, ErrBasketEmpty)
	s.Empty(s.store.orders)
}

func (s *OrderServiceTestSuite) TestPriceSnapshot() {
	order := s.createOrder()
	p := s.store.products[1]
	p.Price = p.Price.Mul(p.Price)
	s.store.products[1] = p

	got, err := s.svc.Get(context.Background(), testProfileID, order.ID)
	s.Require().NoError(err)
	s.Equal("500", got.Items[0].Price.String())
}

func (s *OrderServiceTestSuite) TestUpdateDelivery() {
	tests := []struct {
		name     string
		delivery string
		total    string
	}{
		{"ordinary under threshold", "ordinary", "2000"},
		{"express", "express", "2300"},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			order := s.createOrder()
			res, err := s.svc.Update(context.Background(), testProfileID, order.ID, OrderPatch{
				DeliveryType: strPtr(tt.delivery),
				PaymentType:  strPtr("online"),
				City:         strPtr("Moscow"),
				Address:      strPtr("Red square 1"),
			})
			s.Require().NoError(err)
			s.Empty(res.Redirect)
			s.Equal(model.OrderStatusAccepted, res.Order.Status)
			s.Equal(tt.total, res.Order.TotalCost.String())

			stored := s.store.orders[order.ID]
			s.Equal(tt.total, stored.TotalCost.String())
			s.Equal("Moscow", stored.City)
		})
	}
}

func (s *OrderServiceTestSuite) TestUpdateSomeoneRedirects() {
	order := s.createOrder()
	res, err := s.svc.Update(context.Background(), testProfileID, order.ID, OrderPatch{PaymentType: strPtr("someone")})
	s.Require().NoError(err)
	s.Equal(RedirectPaymentSomeone, res.Redirect)
	s.Equal(model.OrderStatusConfirmed, s.store.orders[order.ID].Status)

	last := s.events.events[len(s.events.events)-1]
	s.Equal(producer.OrderUpdatedEvent, last.Type)
	s.Equal(model.OrderStatusConfirmed, last.Status)
}

func (s *OrderServiceTestSuite) TestUpdateRejected() {
	order := s.createOrder()

	_, err := s.svc.Update(context.Background(), testProfileID, order.ID, OrderPatch{
		DeliveryType: strPtr("drone"),
		PaymentType:  strPtr("cash"),
	})
	ae, ok := er.As(err)
	s.Require().True(ok)
	s.Equal(er.BadRequestCode, ae.Code)
	s.Contains(ae.Details, "deliveryType")
	s.Contains(ae.Details, "paymentType")
	s.Equal(model.OrderStatusPending, s.store.orders[order.ID].Status)

	_, err = s.svc.Update(context.Background(), testProfileID+1, order.ID, OrderPatch{})
	s.ErrorIs(err, ErrOrderNotFound)
}

func (s *OrderServiceTestSuite) TestListAndHistory() {
	first := s.createOrder()
	second := s.createOrder()

	orders, err := s.svc.List(context.Background(), testProfileID)
	s.Require().NoError(err)
	s.Require().Len(orders, 2)
	s.Equal(second.ID, orders[0].ID)
	s.Equal(first.ID, orders[1].ID)

	history, err := s.svc.History(context.Background(), testProfileID)
	s.Require().NoError(err)
	s.Equal(orders, history)

	others, err := s.svc.List(context.Background(), testProfileID+1)
	s.Require().NoError(err)
	s.Empty(others)
}

func (s *OrderServiceTestSuite) TestPublishFailureDoesNotFailOrder() {
	s.events.err = errFakeDown
	order := s.createOrder()
	s.NotZero(order.ID)
}
