package kafka

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/turtacn/AyurChem-Intelligence/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/AyurChem-Intelligence/pkg/errors"
)

// ConsumerConfig holds the reader settings.  An empty GroupID reads the
// topic from the latest offset without committing.
type ConsumerConfig struct {
	Brokers   []string
	Topic     string
	GroupID   string
	FromStart bool
	MaxWait   time.Duration
}

// ReaderInterface abstracts kafka.Reader for testing.
type ReaderInterface interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// EventHandler receives every decoded envelope.  Returning an error stops
// consumption.
type EventHandler func(ctx context.Context, env *EventEnvelope) error

// Consumer reads analysis events.
type Consumer struct {
	reader ReaderInterface
	commit bool
	logger logging.Logger
}

func NewConsumer(cfg ConsumerConfig, logger logging.Logger) (*Consumer, error) {
	if len(cfg.Brokers) == 0 {
		return nil, errors.InvalidParam("kafka: at least one broker is required")
	}
	if cfg.Topic == "" {
		return nil, errors.InvalidParam("kafka: topic is required")
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	if cfg.MaxWait == 0 {
		cfg.MaxWait = time.Second
	}

	rc := kafka.ReaderConfig{
		Brokers:     cfg.Brokers,
		Topic:       cfg.Topic,
		GroupID:     cfg.GroupID,
		MaxWait:     cfg.MaxWait,
		StartOffset: kafka.LastOffset,
	}
	if cfg.FromStart {
		rc.StartOffset = kafka.FirstOffset
	}
	return &Consumer{reader: kafka.NewReader(rc), commit: cfg.GroupID != "", logger: logger}, nil
}

// Consume blocks until ctx ends or handle fails.  Messages that do not decode
// are logged and skipped.  Cancellation returns nil.
func (c *Consumer) Consume(ctx context.Context, handle EventHandler) error {
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || stderrors.Is(err, context.Canceled) {
				return nil
			}
			return errors.Wrap(err, errors.CodeServiceUnavailable, "kafka: fetch failed")
		}

		env, err := DecodeEnvelope(msg.Value)
		if err != nil {
			c.logger.Warn("skipping undecodable event",
				logging.String("topic", msg.Topic), logging.Int64("offset", msg.Offset), logging.Err(err))
		} else if err := handle(ctx, env); err != nil {
			return err
		}

		if c.commit {
			if err := c.reader.CommitMessages(ctx, msg); err != nil {
				c.logger.Warn("offset commit failed", logging.Int64("offset", msg.Offset), logging.Err(err))
			}
		}
	}
}

func (c *Consumer) Close() error {
	return c.reader.Close()
}

//Personal.AI order the ending
