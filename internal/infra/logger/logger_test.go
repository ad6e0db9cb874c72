package logger

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/RoyceAzure/lab/megano/internal/infra/producer"
	"github.com/stretchr/testify/require"
)

type fakeProducer struct {
	mu   sync.Mutex
	msgs []producer.Message
}

func (f *fakeProducer) Produce(_ context.Context, msgs []producer.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.msgs = append(f.msgs, msgs...)
	return nil
}

func (f *fakeProducer) Close() error { return nil }

func TestKafkaWriter_WithZerolog(t *testing.T) {
	p := &fakeProducer{}
	kw := NewKafkaWriter(p, "megano")
	logger := NewLogger("megano", false, kw)

	logger.Info().Str("k", "v").Msg("first")
	logger.Info().Msg("second")

	require.Len(t, p.msgs, 2)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(p.msgs[0].Value, &entry))
	require.Equal(t, "first", entry["message"])
	require.Equal(t, "v", entry["k"])
	require.Equal(t, "megano", entry["module"])
	require.NotEqual(t, p.msgs[0].Key, p.msgs[1].Key)
	require.Equal(t, "megano", string(p.msgs[0].Headers[0].Value))
}

func TestKafkaWriter_NotInit(t *testing.T) {
	var kw *KafkaWriter
	_, err := kw.Write([]byte("x"))
	require.Error(t, err)
}
