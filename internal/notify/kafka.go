package notify

import (
	"context"
	"fmt"

	"fast-delivery-orders/internal/domain"

	"github.com/IBM/sarama"
)

// KafkaPublisher writes events to a topic keyed by order id.
type KafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
}

var newSyncProducer = sarama.NewSyncProducer

// NewKafkaProducer creates a synchronous producer that waits for all in-sync replicas.
func NewKafkaProducer(brokers []string) (sarama.SyncProducer, error) {
	cfg := sarama.NewConfig()
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Return.Successes = true
	cfg.Producer.Retry.Max = 0

	p, err := newSyncProducer(brokers, cfg)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}
	return p, nil
}

// NewKafka creates a KafkaPublisher over producer.
func NewKafka(producer sarama.SyncProducer, topic string) *KafkaPublisher {
	return &KafkaPublisher{producer: producer, topic: topic}
}

// Publish implements Publisher.
func (p *KafkaPublisher) Publish(_ context.Context, ev domain.LifecycleEvent) error {
	msg, err := Encode(ev)
	if err != nil {
		return err
	}
	if _, _, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(ev.OrderID),
		Value: sarama.StringEncoder(msg),
	}); err != nil {
		return fmt.Errorf("kafka publish for order %s: %w", ev.OrderID, err)
	}
	return nil
}

// Close closes the underlying producer.
func (p *KafkaPublisher) Close() error {
	return p.producer.Close()
}
