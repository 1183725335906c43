package publishers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/rabbitmq/amqp091-go"
	"github.com/sbilibin2017/gw-evault/internal/models"
)

//go:generate mockgen -source=amqp.go -destination=amqp_mock.go -package=publishers

// publishTimeout bounds a single broker publish.
const publishTimeout = 5 * time.Second

// AMQPChannel is the part of an AMQP channel used for publishing.
type AMQPChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
	Close() error
}

// AMQPPublisher publishes lifecycle events to a durable direct exchange.
type AMQPPublisher struct {
	conn     io.Closer
	channel  AMQPChannel
	exchange string
	queue    string
}

// DialAMQP connects to url and declares the exchange, the queue and their binding.
func DialAMQP(url, exchange, queue string) (*AMQPPublisher, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err := declare(channel, exchange, queue); err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("setup exchange and queue: %w", err)
	}

	return NewAMQPPublisher(conn, channel, exchange, queue), nil
}

func declare(channel *amqp091.Channel, exchange, queue string) error {
	if err := channel.ExchangeDeclare(exchange, "direct", true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}
	if _, err := channel.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}
	// routing key is the queue name
	if err := channel.QueueBind(queue, queue, exchange, false, nil); err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}
	return nil
}

// NewAMQPPublisher creates an AMQPPublisher over an open channel. conn may be nil.
func NewAMQPPublisher(conn io.Closer, channel AMQPChannel, exchange, queue string) *AMQPPublisher {
	return &AMQPPublisher{
		conn:     conn,
		channel:  channel,
		exchange: exchange,
		queue:    queue,
	}
}

// Publish sends the event as a persistent JSON message.
func (p *AMQPPublisher) Publish(ctx context.Context, event models.LifecycleEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = p.channel.PublishWithContext(ctx, p.exchange, p.queue, false, false, amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		MessageId:    event.EventID,
		Type:         event.Kind,
		Timestamp:    time.Unix(event.Timestamp, 0),
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("publish event: %w", err)
	}
	return nil
}

// Close closes the channel and the connection.
func (p *AMQPPublisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
