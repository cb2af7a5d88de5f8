package events

import (
	"context"
	"fmt"

	"restaurant/internal/core/domain/model/order"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Channel is the part of *amqp.Channel the publisher uses.
type Channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// RabbitMQPublisher publishes to a durable topic exchange. The routing key is
// the event kind, e.g. "order.placed".
type RabbitMQPublisher struct {
	channel  Channel
	exchange string
}

// NewRabbitMQPublisher declares the exchange and returns a publisher bound to it.
func NewRabbitMQPublisher(channel Channel, exchange string) (*RabbitMQPublisher, error) {
	if err := channel.ExchangeDeclare(exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("declare exchange %s: %w", exchange, err)
	}
	return &RabbitMQPublisher{channel: channel, exchange: exchange}, nil
}

func (p *RabbitMQPublisher) Publish(ctx context.Context, events ...order.Event) error {
	for _, e := range events {
		body, err := encode(e)
		if err != nil {
			return fmt.Errorf("encode %s event: %w", e.Kind, err)
		}

		err = p.channel.PublishWithContext(ctx, p.exchange, string(e.Kind), false, false, amqp.Publishing{
			DeliveryMode:  amqp.Persistent,
			ContentType:   "application/json",
			MessageId:     e.ID.String(),
			CorrelationId: orderKey(e),
			Timestamp:     e.OccurredAt.UTC(),
			Body:          body,
			Headers: amqp.Table{
				"x-source": "restaurant",
			},
		})
		if err != nil {
			return fmt.Errorf("publish %s event for order %d: %w", e.Kind, e.OrderID, err)
		}
	}
	return nil
}

// RabbitMQConnection owns the connection and channel behind a publisher.
type RabbitMQConnection struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

// DialRabbitMQ connects to url and opens one channel.
func DialRabbitMQ(url string) (*RabbitMQConnection, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open rabbitmq channel: %w", err)
	}

	return &RabbitMQConnection{conn: conn, channel: ch}, nil
}

func (c *RabbitMQConnection) Channel() *amqp.Channel {
	return c.channel
}

func (c *RabbitMQConnection) Close() error {
	if c.channel != nil {
		_ = c.channel.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}
