package services

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-blog/internal/logger"
	"github.com/sbilibin2017/gw-blog/internal/models"
	"github.com/segmentio/kafka-go"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// Publisher announces lifecycle events of users, roles and posts.
type Publisher interface {
	Publish(ctx context.Context, eventType string, entityID, actorID int64)
}

// EventPublisher publishes events to Kafka. Publishing is best effort:
// failures are logged and never reach the caller.
type EventPublisher struct {
	writer KafkaWriter
}

// NewEventPublisher creates a publisher. A nil writer disables publishing.
func NewEventPublisher(writer KafkaWriter) *EventPublisher {
	return &EventPublisher{writer: writer}
}

// Publish sends one event keyed by the entity id.
func (p *EventPublisher) Publish(ctx context.Context, eventType string, entityID, actorID int64) {
	if p == nil || p.writer == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "type", eventType, "entity_id", entityID)
		return
	}

	event := models.Event{
		EventID:   uuid.NewString(),
		Type:      eventType,
		EntityID:  entityID,
		ActorID:   actorID,
		Timestamp: time.Now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(entityID, 10)),
		Value: data,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(eventType)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish event to Kafka", "event_id", event.EventID, "type", eventType, "error", err)
		return
	}
	logger.Log.Infow("Event published to Kafka", "event_id", event.EventID, "type", eventType, "entity_id", entityID)
}
