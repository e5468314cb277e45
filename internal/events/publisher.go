// Package events publishes camera-list change events to Kafka so other
// consumers (dashboards, archives) can react to additions and removals
// without talking to the bot.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"velox/internal/models"

	"github.com/segmentio/kafka-go"
)

// KafkaWriter defines the subset of the kafka-go writer used by the
// publisher. This allows for easy mocking in unit tests.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// ChangeEvent is the JSON payload published for each run that found
// additions or removals.
type ChangeEvent struct {
	At      time.Time       `json:"at"`
	Added   []models.Camera `json:"added"`
	Removed []models.Camera `json:"removed"`
}

// Publisher writes change events to a Kafka topic. It is optional
// infrastructure: the watcher runs fine without one configured.
type Publisher struct {
	writer KafkaWriter
}

// NewPublisher creates a publisher writing to topic on broker.
func NewPublisher(broker, topic string) *Publisher {
	return &Publisher{writer: &kafka.Writer{
		Addr:         kafka.TCP(broker),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireOne,
	}}
}

// PublishChange emits one ChangeEvent for d.
func (p *Publisher) PublishChange(ctx context.Context, d models.Diff) error {
	value, err := json.Marshal(ChangeEvent{
		At:      time.Now().UTC(),
		Added:   d.Added,
		Removed: d.Removed,
	})
	if err != nil {
		return fmt.Errorf("marshal change event: %v", err)
	}
	if err := p.writer.WriteMessages(ctx, kafka.Message{Value: value}); err != nil {
		return fmt.Errorf("write change event: %v", err)
	}
	log.Printf("Published change event: %d added, %d removed", len(d.Added), len(d.Removed))
	return nil
}

// Close flushes and closes the underlying writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}
