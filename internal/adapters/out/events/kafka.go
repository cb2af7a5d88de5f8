package events

import (
	"context"
	"fmt"

	"restaurant/internal/core/domain/model/order"

	"github.com/segmentio/kafka-go"
)

// MessageWriter is the part of *kafka.Writer the publisher uses.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// KafkaPublisher writes every event to one topic, keyed by order id.
type KafkaPublisher struct {
	writer MessageWriter
}

func NewKafkaPublisher(writer MessageWriter) *KafkaPublisher {
	return &KafkaPublisher{writer: writer}
}

// NewKafkaWriter returns a writer for topic on the given brokers.
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
	}
}

func (p *KafkaPublisher) Publish(ctx context.Context, events ...order.Event) error {
	if len(events) == 0 {
		return nil
	}

	msgs := make([]kafka.Message, 0, len(events))
	for _, e := range events {
		payload, err := encode(e)
		if err != nil {
			return fmt.Errorf("encode %s event: %w", e.Kind, err)
		}

		msgs = append(msgs, kafka.Message{
			Key:   []byte(orderKey(e)),
			Value: payload,
			Headers: []kafka.Header{
				{Key: "kind", Value: []byte(e.Kind)},
			},
			Time: e.OccurredAt,
		})
	}

	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("write order events to kafka: %w", err)
	}
	return nil
}
