package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/shestoi/GoBigTech/warehouse/internal/event"
	platformkafka "github.com/shestoi/GoBigTech/warehouse/platform/kafka"
)

// messageWriter часть kafka.Writer, которая нужна publisher-у
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaItemEventPublisher реализует service.ItemEventPublisher используя Kafka
type KafkaItemEventPublisher struct {
	logger *zap.Logger
	writer messageWriter
	topic  string
}

// NewKafkaItemEventPublisher создаёт новый Kafka publisher для событий позиций склада
func NewKafkaItemEventPublisher(logger *zap.Logger, cfg platformkafka.Config) *KafkaItemEventPublisher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &KafkaItemEventPublisher{
		logger: logger,
		writer: platformkafka.NewWriter(cfg),
		topic:  cfg.Topic,
	}
}

// Close закрывает Kafka writer
func (p *KafkaItemEventPublisher) Close() error {
	return p.writer.Close()
}

// PublishItemEvent публикует событие позиции, ключ сообщения - ID позиции
func (p *KafkaItemEventPublisher) PublishItemEvent(ctx context.Context, e event.ItemEvent) error {
	valueBytes, err := marshalItemEvent(e)
	if err != nil {
		p.logger.Error("failed to marshal item event",
			zap.Error(err),
			zap.String("item_id", e.ItemID),
		)
		return err
	}

	message := kafka.Message{
		Key:   []byte(e.ItemID),
		Value: valueBytes,
	}

	if err := p.writer.WriteMessages(ctx, message); err != nil {
		p.logger.Error("failed to publish item event",
			zap.Error(err),
			zap.String("topic", p.topic),
			zap.String("event_type", e.EventType),
			zap.String("item_id", e.ItemID),
		)
		return err
	}

	p.logger.Debug("item event published",
		zap.String("topic", p.topic),
		zap.String("event_type", e.EventType),
		zap.String("item_id", e.ItemID),
		zap.String("user_id", e.UserID),
	)

	return nil
}

// marshalItemEvent формирует JSON payload события
// event_id генерируется, если не задан; occurred_at по умолчанию - текущее время
func marshalItemEvent(e event.ItemEvent) ([]byte, error) {
	eventID := e.EventID
	if eventID == "" {
		eventID = uuid.New().String()
	}
	occurredAt := e.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = time.Now()
	}

	payload := map[string]interface{}{
		"event_id":      eventID,
		"event_type":    e.EventType,
		"event_version": event.Version,
		"occurred_at":   occurredAt.UTC().Format(time.RFC3339),
		"item_id":       e.ItemID,
		"user_id":       e.UserID,
		"quantity":      e.Quantity,
	}
	if e.Name != "" {
		payload["name"] = e.Name
	}
	if len(e.Tags) > 0 {
		payload["tags"] = e.Tags
	}

	return json.Marshal(payload)
}
