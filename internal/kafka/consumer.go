package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Domenick1991/airroute/internal/domain"
	"github.com/segmentio/kafka-go"
)

// ErrBadQuery marks a message that does not decode into a route query.
var ErrBadQuery = errors.New("kafka: malformed route query")

type Consumer struct {
	reader *kafka.Reader
}

func NewConsumer(brokers []string, groupID, topic string) *Consumer {
	return &Consumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:           brokers,
			GroupID:           groupID,
			Topic:             topic,
			HeartbeatInterval: 3 * time.Second,
			SessionTimeout:    30 * time.Second,
		}),
	}
}

func (c *Consumer) Close() error {
	if c == nil || c.reader == nil {
		return nil
	}
	return c.reader.Close()
}

func (c *Consumer) Consume(ctx context.Context, handler func(context.Context, kafka.Message) error) error {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			return err
		}

		if err := handler(ctx, msg); err != nil {
			return err
		}
	}
}

// DecodeQuery parses a route query message and checks its criterion.
func DecodeQuery(msg kafka.Message) (domain.RouteQuery, error) {
	var q domain.RouteQuery
	if err := json.Unmarshal(msg.Value, &q); err != nil {
		return q, fmt.Errorf("%w: %w", ErrBadQuery, err)
	}
	if _, err := domain.ParseCriterion(string(q.Criterion)); err != nil {
		return q, fmt.Errorf("%w: %w", ErrBadQuery, err)
	}
	return q, nil
}
