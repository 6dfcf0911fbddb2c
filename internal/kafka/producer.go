package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/Domenick1991/airroute/internal/domain"
	"github.com/segmentio/kafka-go"
)

// RouteEvent is published once per computed route.
type RouteEvent struct {
	Type       string           `json:"type"`
	QueryID    string           `json:"query_id"`
	Criterion  domain.Criterion `json:"criterion"`
	StartCity  int              `json:"start_city"`
	EndCity    int              `json:"end_city"`
	T1         int              `json:"t1"`
	T2         int              `json:"t2"`
	Found      bool             `json:"found"`
	FlightNos  []int            `json:"flight_nos"`
	TotalFare  float64          `json:"total_fare"`
	Arrival    int              `json:"arrival"`
	ComputedAt time.Time        `json:"computed_at"`
}

func NewRouteEvent(eventType string, r *domain.RouteResult) RouteEvent {
	return RouteEvent{
		Type:       eventType,
		QueryID:    r.QueryID,
		Criterion:  r.Query.Criterion,
		StartCity:  r.Query.StartCity,
		EndCity:    r.Query.EndCity,
		T1:         r.Query.T1,
		T2:         r.Query.T2,
		Found:      r.Found,
		FlightNos:  r.Flights.FlightNumbers(),
		TotalFare:  r.TotalFare,
		Arrival:    r.Arrival,
		ComputedAt: r.ComputedAt,
	}
}

type Producer struct {
	brokers []string
	writer  *kafka.Writer
}

func NewProducer(brokers []string) *Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 50 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
		Async:        false,
	}

	return &Producer{
		brokers: brokers,
		writer:  writer,
	}
}

func (p *Producer) Publish(ctx context.Context, topic, key string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	message := kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: data,
		Time:  time.Now(),
	}

	if err := p.writer.WriteMessages(ctx, message); err != nil {
		return fmt.Errorf("failed to write message to Kafka: %w", err)
	}

	log.Printf("published to Kafka - topic: %s, key: %s", topic, key)
	return nil
}

func (p *Producer) PublishWithRetry(ctx context.Context, topic, key string, payload interface{}, maxRetries int) error {
	var lastErr error

	for i := 0; i < maxRetries; i++ {
		err := p.Publish(ctx, topic, key, payload)
		if err == nil {
			return nil
		}

		lastErr = err
		log.Printf("publish attempt %d failed: %v", i+1, err)

		if i < maxRetries-1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(time.Duration(i+1) * 500 * time.Millisecond):
			}
		}
	}

	return fmt.Errorf("failed after %d retries: %w", maxRetries, lastErr)
}

func (p *Producer) Close() error {
	if p.writer != nil {
		return p.writer.Close()
	}
	return nil
}
