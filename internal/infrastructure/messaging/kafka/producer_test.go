package kafka

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/AyurChem-Intelligence/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/AyurChem-Intelligence/pkg/errors"
)

type mockKafkaWriter struct {
	writeFunc func(ctx context.Context, msgs ...kafka.Message) error
	closeFunc func() error
	written   []kafka.Message
	closes    int
}

func (m *mockKafkaWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	m.written = append(m.written, msgs...)
	if m.writeFunc != nil {
		return m.writeFunc(ctx, msgs...)
	}
	return nil
}

func (m *mockKafkaWriter) Close() error {
	m.closes++
	if m.closeFunc != nil {
		return m.closeFunc()
	}
	return nil
}

func newTestProducer(w WriterInterface) *Producer {
	return &Producer{
		writer: w,
		config: ProducerConfig{Brokers: []string{"localhost:9092"}, MaxMessageBytes: 64},
		logger: logging.NewNopLogger(),
	}
}

func TestValidateProducerConfig(t *testing.T) {
	assert.Error(t, ValidateProducerConfig(ProducerConfig{}))
	assert.Error(t, ValidateProducerConfig(ProducerConfig{Brokers: []string{"b:9092"}, MaxRetries: -1}))
	assert.NoError(t, ValidateProducerConfig(ProducerConfig{Brokers: []string{"b:9092"}}))
}

func TestNewProducer_AppliesDefaults(t *testing.T) {
	p, err := NewProducer(ProducerConfig{Brokers: []string{"localhost:9092"}}, nil)
	require.NoError(t, err)
	assert.Equal(t, 10*time.Millisecond, p.config.BatchTimeout)
	assert.Equal(t, 10*time.Second, p.config.WriteTimeout)
	assert.Equal(t, 1<<20, p.config.MaxMessageBytes)
	assert.Equal(t, 3, p.config.MaxRetries)
	require.NoError(t, p.Close())
}

func TestPublish_WritesOneMessage(t *testing.T) {
	w := &mockKafkaWriter{}
	p := newTestProducer(w)

	err := p.Publish(context.Background(), TopicAnalysisCompleted, []byte("k"), []byte(`{"a":1}`))
	require.NoError(t, err)

	require.Len(t, w.written, 1)
	assert.Equal(t, TopicAnalysisCompleted, w.written[0].Topic)
	assert.Equal(t, []byte("k"), w.written[0].Key)
	assert.Equal(t, int64(1), p.Sent())
}

func TestPublish_Validation(t *testing.T) {
	p := newTestProducer(&mockKafkaWriter{})
	ctx := context.Background()

	assert.True(t, errors.IsCode(p.Publish(ctx, "", nil, []byte("x")), errors.CodeInvalidParam))
	assert.True(t, errors.IsCode(p.Publish(ctx, "t", nil, nil), errors.CodeInvalidParam))
	big := make([]byte, 65)
	assert.True(t, errors.IsCode(p.Publish(ctx, "t", nil, big), errors.CodeInvalidParam))
}

func TestPublish_WriterError(t *testing.T) {
	w := &mockKafkaWriter{writeFunc: func(context.Context, ...kafka.Message) error {
		return stderrors.New("broker down")
	}}
	p := newTestProducer(w)

	err := p.Publish(context.Background(), "t", nil, []byte("x"))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeEventPublish))
	assert.Equal(t, int64(1), p.Failed())
}

func TestClose_Idempotent(t *testing.T) {
	w := &mockKafkaWriter{}
	p := newTestProducer(w)

	require.NoError(t, p.Close())
	require.NoError(t, p.Close())
	assert.Equal(t, 1, w.closes)

	err := p.Publish(context.Background(), "t", nil, []byte("x"))
	assert.ErrorIs(t, err, ErrProducerClosed)
}

func TestPublishEnvelope(t *testing.T) {
	w := &mockKafkaWriter{}
	p := newTestProducer(w)
	p.config.MaxMessageBytes = 1 << 20

	env, err := NewEventEnvelope(EventTypeAnalysisCompleted, "test", AnalysisCompletedPayload{
		AnalysisID: "a-1", Herbs: []string{"Turmeric"}, CompoundCount: 2,
	})
	require.NoError(t, err)

	require.NoError(t, PublishEnvelope(context.Background(), p, TopicAnalysisCompleted, "a-1", env))
	require.Len(t, w.written, 1)

	decoded, err := DecodeEnvelope(w.written[0].Value)
	require.NoError(t, err)
	assert.Equal(t, env.EventID, decoded.EventID)

	var payload AnalysisCompletedPayload
	require.NoError(t, decoded.DecodePayload(&payload))
	assert.Equal(t, []string{"Turmeric"}, payload.Herbs)
	assert.Equal(t, 2, payload.CompoundCount)
}

func TestNopPublisher(t *testing.T) {
	var pub Publisher = NopPublisher{}
	assert.NoError(t, pub.Publish(context.Background(), "t", nil, []byte("x")))
	assert.NoError(t, pub.Close())
}

//Personal.AI order the ending
