package publishers

import (
	"context"
	"encoding/json"

	"github.com/sbilibin2017/gw-evault/internal/models"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=kafka.go -destination=kafka_mock.go -package=publishers

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// KafkaPublisher writes lifecycle events to a Kafka topic, keyed by record id.
type KafkaPublisher struct {
	writer KafkaWriter
}

// NewKafkaWriter creates a writer for topic on the given brokers.
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
}

// NewKafkaPublisher creates a KafkaPublisher over writer.
func NewKafkaPublisher(writer KafkaWriter) *KafkaPublisher {
	return &KafkaPublisher{writer: writer}
}

// Publish writes the event as JSON.
func (p *KafkaPublisher) Publish(ctx context.Context, event models.LifecycleEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.RecordID),
		Value: data,
		Headers: []kafka.Header{
			{Key: "kind", Value: []byte(event.Kind)},
		},
	})
}

// Close closes the underlying writer.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
