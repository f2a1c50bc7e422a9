// Package kafka publishes analysis events and reads them back for the CLI.
package kafka

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/turtacn/AyurChem-Intelligence/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/AyurChem-Intelligence/pkg/errors"
)

var ErrProducerClosed = errors.New(errors.CodeEventPublish, "producer closed")

// Publisher is the write side used by the analysis service.
type Publisher interface {
	Publish(ctx context.Context, topic string, key, value []byte) error
	Close() error
}

// ProducerConfig holds the writer settings.
type ProducerConfig struct {
	Brokers         []string
	BatchTimeout    time.Duration
	WriteTimeout    time.Duration
	MaxMessageBytes int
	MaxRetries      int
}

// WriterInterface abstracts kafka.Writer for testing.
type WriterInterface interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Producer writes one message per Publish call.
type Producer struct {
	writer WriterInterface
	config ProducerConfig
	logger logging.Logger
	closed atomic.Bool
	sent   atomic.Int64
	failed atomic.Int64
}

func NewProducer(cfg ProducerConfig, logger logging.Logger) (*Producer, error) {
	if err := ValidateProducerConfig(cfg); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	if cfg.BatchTimeout == 0 {
		cfg.BatchTimeout = 10 * time.Millisecond
	}
	if cfg.WriteTimeout == 0 {
		cfg.WriteTimeout = 10 * time.Second
	}
	if cfg.MaxMessageBytes == 0 {
		cfg.MaxMessageBytes = 1 << 20
	}
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = 3
	}

	writer := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Balancer:               &kafka.Hash{},
		MaxAttempts:            cfg.MaxRetries + 1,
		BatchTimeout:           cfg.BatchTimeout,
		WriteTimeout:           cfg.WriteTimeout,
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}
	return &Producer{writer: writer, config: cfg, logger: logger}, nil
}

func ValidateProducerConfig(cfg ProducerConfig) error {
	if len(cfg.Brokers) == 0 {
		return errors.InvalidParam("kafka: at least one broker is required")
	}
	if cfg.MaxRetries < 0 {
		return errors.InvalidParam("kafka: max retries must be >= 0")
	}
	return nil
}

func (p *Producer) Publish(ctx context.Context, topic string, key, value []byte) error {
	if p.closed.Load() {
		return ErrProducerClosed
	}
	if topic == "" {
		return errors.InvalidParam("kafka: topic is required")
	}
	if len(value) == 0 {
		return errors.InvalidParam("kafka: message value is required")
	}
	if len(value) > p.config.MaxMessageBytes {
		return errors.InvalidParam("kafka: message too large")
	}

	start := time.Now()
	err := p.writer.WriteMessages(ctx, kafka.Message{Topic: topic, Key: key, Value: value, Time: start})
	if err != nil {
		p.failed.Add(1)
		return errors.Wrap(err, errors.CodeEventPublish, "kafka: publish failed")
	}
	p.sent.Add(1)
	p.logger.Debug("event published",
		logging.String("topic", topic),
		logging.Duration("latency", time.Since(start)))
	return nil
}

// Sent and Failed are lifetime counters.
func (p *Producer) Sent() int64   { return p.sent.Load() }
func (p *Producer) Failed() int64 { return p.failed.Load() }

func (p *Producer) Close() error {
	if !p.closed.CompareAndSwap(false, true) {
		return nil
	}
	err := p.writer.Close()
	p.logger.Info("kafka producer closed", logging.Int64("sent", p.sent.Load()))
	return err
}

// PublishEnvelope encodes env and publishes it keyed by key.
func PublishEnvelope(ctx context.Context, pub Publisher, topic, key string, env *EventEnvelope) error {
	value, err := env.Encode()
	if err != nil {
		return err
	}
	return pub.Publish(ctx, topic, []byte(key), value)
}

// NopPublisher drops every message.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, []byte, []byte) error { return nil }
func (NopPublisher) Close() error                                          { return nil }

//Personal.AI order the ending
