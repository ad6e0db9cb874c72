package producer

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/RoyceAzure/lab/megano/internal/domain/model"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	mu     sync.Mutex
	msgs   []kafka.Message
	errs   []error
	calls  int
	closed bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.calls++
	if len(w.errs) > 0 {
		err := w.errs[0]
		w.errs = w.errs[1:]
		if err != nil {
			return err
		}
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func TestConfigValidate(t *testing.T) {
	_, err := New(DefaultConfig(nil, "orders"), nil)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = New(DefaultConfig([]string{"localhost:9092"}, ""), nil)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	p, err := New(DefaultConfig([]string{"localhost:9092"}, "orders"), nil)
	require.NoError(t, err)
	require.NoError(t, p.Close())
}

func TestProduce_RetriesTemporary(t *testing.T) {
	w := &fakeWriter{errs: []error{kafka.LeaderNotAvailable, nil}}
	p := NewWithWriter(w, DefaultConfig([]string{"b"}, "t"))

	err := p.Produce(context.Background(), []Message{{Key: []byte("1"), Value: []byte("v")}})
	require.NoError(t, err)
	assert.Equal(t, 2, w.calls)
	assert.Len(t, w.msgs, 1)
}

func TestProduce_StopsOnPermanentError(t *testing.T) {
	boom := errors.New("boom")
	w := &fakeWriter{errs: []error{boom}}
	p := NewWithWriter(w, DefaultConfig([]string{"b"}, "t"))

	err := p.Produce(context.Background(), []Message{{Value: []byte("v")}})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 1, w.calls)
}

func TestProduce_Closed(t *testing.T) {
	w := &fakeWriter{}
	p := NewWithWriter(w, DefaultConfig([]string{"b"}, "t"))
	require.NoError(t, p.Close())
	require.NoError(t, p.Close())
	assert.True(t, w.closed)

	err := p.Produce(context.Background(), []Message{{Value: []byte("v")}})
	assert.ErrorIs(t, err, ErrProducerClosed)
}

func TestOrderEventProducer(t *testing.T) {
	w := &fakeWriter{}
	p := NewOrderEventProducer(NewWithWriter(w, DefaultConfig([]string{"b"}, "t")))
	p.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }

	order := &model.Order{
		ID:           42,
		ProfileID:    7,
		Status:       model.OrderStatusError,
		DeliveryType: model.DeliveryExpress,
		PaymentType:  model.PaymentOnline,
		TotalCost:    decimal.NewFromInt(2300),
		Items:        []model.OrderItem{{ProductID: 1, Price: decimal.NewFromInt(500), Count: 2}},
	}
	payment := &model.Payment{Status: model.PaymentStatusError}

	require.NoError(t, p.PublishOrderEvent(context.Background(), PaymentRecordedEvent, order, payment))
	require.Len(t, w.msgs, 1)

	msg := w.msgs[0]
	assert.Equal(t, "42", string(msg.Key))
	require.Len(t, msg.Headers, 1)
	assert.Equal(t, EventTypeHeader, msg.Headers[0].Key)
	assert.Equal(t, string(PaymentRecordedEvent), string(msg.Headers[0].Value))

	var event OrderEvent
	require.NoError(t, json.Unmarshal(msg.Value, &event))
	assert.Equal(t, uint(42), event.OrderID)
	assert.Equal(t, model.PaymentStatusError, event.PaymentStatus)
	assert.True(t, decimal.NewFromInt(2300).Equal(event.TotalCost))
	assert.Len(t, event.Items, 1)
}
