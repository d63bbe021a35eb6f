package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/skilltrack/internal/logger"
	"github.com/sbilibin2017/skilltrack/internal/models"
	"github.com/segmentio/kafka-go"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// EventService publishes notification/email fan-out events to Kafka.
// Publishing is best-effort: failures are logged and never propagated to the
// triggering mutation.
type EventService struct {
	writer KafkaWriter
}

// NewEventService creates a new EventService.
func NewEventService(writer KafkaWriter) *EventService {
	return &EventService{writer: writer}
}

// Publish sends an event to the events topic.
func (s *EventService) Publish(ctx context.Context, kind string, userID uuid.UUID, skillID *uuid.UUID, message string) {
	if s.writer == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "kind", kind)
		return
	}

	event := models.Event{
		EventID:   uuid.NewString(),
		Kind:      kind,
		Timestamp: time.Now().Unix(),
		UserID:    userID.String(),
		Message:   message,
	}
	if skillID != nil {
		event.SkillID = skillID.String()
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := s.writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish event to Kafka", "event_id", event.EventID, "kind", kind, "error", err)
	} else {
		logger.Log.Infow("Event published to Kafka", "event_id", event.EventID, "kind", kind)
	}
}
