package producer

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"
)

var (
	ErrProducerClosed = errors.New("producer is closed")
	ErrInvalidConfig  = errors.New("invalid producer config")
)

// Producer 同步寫入, 會 block 到訊息都寫入或 ctx 結束
type Producer interface {
	Produce(ctx context.Context, msgs []Message) error
	Close() error
}

// Writer kafka.Writer 的最小介面, 測試時替換
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Config struct {
	Brokers       []string
	Topic         string
	BatchSize     int
	BatchTimeout  time.Duration
	RequiredAcks  int
	RetryAttempts int
	Async         bool
}

func DefaultConfig(brokers []string, topic string) *Config {
	return &Config{
		Brokers:       brokers,
		Topic:         topic,
		BatchSize:     100,
		BatchTimeout:  50 * time.Millisecond,
		RequiredAcks:  -1, // 等待所有副本確認
		RetryAttempts: 3,
	}
}

func (c *Config) Validate() error {
	if len(c.Brokers) == 0 {
		return fmt.Errorf("%w: brokers is empty", ErrInvalidConfig)
	}
	if c.Topic == "" {
		return fmt.Errorf("%w: topic is empty", ErrInvalidConfig)
	}
	return nil
}

type kafkaProducer struct {
	writer Writer
	cfg    *Config
	closed atomic.Bool
}

func New(cfg *Config, logger *zerolog.Logger) (Producer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	writer := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafka.Hash{},
		BatchSize:              cfg.BatchSize,
		BatchTimeout:           cfg.BatchTimeout,
		RequiredAcks:           kafka.RequiredAcks(cfg.RequiredAcks),
		Async:                  cfg.Async,
		MaxAttempts:            cfg.RetryAttempts,
		AllowAutoTopicCreation: true,
		Transport: &kafka.Transport{
			Dial: (&net.Dialer{
				Timeout:   10 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
		},
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...interface{}) {
			if logger != nil {
				logger.Error().Str("topic", cfg.Topic).Msgf("kafka producer error: "+msg, args...)
			}
		}),
		Compression: kafka.Snappy,
	}

	return NewWithWriter(writer, cfg), nil
}

func NewWithWriter(writer Writer, cfg *Config) Producer {
	return &kafkaProducer{
		writer: writer,
		cfg:    cfg,
	}
}

func isTemporary(err error) bool {
	var t interface{ Temporary() bool }
	return errors.As(err, &t) && t.Temporary()
}

func (p *kafkaProducer) Produce(ctx context.Context, msgs []Message) error {
	if p.closed.Load() {
		return ErrProducerClosed
	}
	if len(msgs) == 0 {
		return nil
	}

	kafkaMsgs := make([]kafka.Message, len(msgs))
	for i, msg := range msgs {
		kafkaMsgs[i] = msg.ToKafkaMessage()
	}

	var err error
	for attempt := 0; attempt <= p.cfg.RetryAttempts; attempt++ {
		if ctx.Err() != nil {
			return fmt.Errorf("produce to %s: %w", p.cfg.Topic, ctx.Err())
		}
		err = p.writer.WriteMessages(ctx, kafkaMsgs...)
		if err == nil {
			return nil
		}
		if !isTemporary(err) {
			break
		}
	}
	return fmt.Errorf("produce to %s: %w", p.cfg.Topic, err)
}

func (p *kafkaProducer) Close() error {
	if !p.closed.CompareAndSwap(false, true) {
		return nil
	}
	return p.writer.Close()
}
