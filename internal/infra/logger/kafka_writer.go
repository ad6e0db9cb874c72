package logger

import (
	"context"
	"encoding/binary"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/RoyceAzure/lab/megano/internal/infra/producer"
)

// KafkaWriter 讓 zerolog 直接寫進 kafka topic
type KafkaWriter struct {
	p       producer.Producer
	module  []byte
	logId   atomic.Uint64
	timeout time.Duration
}

func NewKafkaWriter(p producer.Producer, module string) *KafkaWriter {
	return &KafkaWriter{
		p:       p,
		module:  []byte(module),
		timeout: 5 * time.Second,
	}
}

func (kw *KafkaWriter) Write(p []byte) (n int, err error) {
	if kw == nil || kw.p == nil {
		return 0, fmt.Errorf("kafka writer is not init")
	}

	// key 用遞增序號, 讓 log 平均分散到各分區
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, kw.logId.Add(1))

	// zerolog 會重用 buffer, 需複製
	value := make([]byte, len(p))
	copy(value, p)

	ctx, cancel := context.WithTimeout(context.Background(), kw.timeout)
	defer cancel()
	err = kw.p.Produce(ctx, []producer.Message{
		{
			Key:     key,
			Value:   value,
			Headers: []producer.Header{{Key: "module", Value: kw.module}},
			Time:    time.Now(),
		},
	})
	if err != nil {
		return 0, err
	}
	return len(p), nil
}

func (kw *KafkaWriter) Close() error {
	return kw.p.Close()
}
