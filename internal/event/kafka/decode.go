package kafka

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shestoi/GoBigTech/warehouse/internal/event"
)

type itemEventPayload struct {
	EventID      string   `json:"event_id"`
	EventType    string   `json:"event_type"`
	EventVersion int      `json:"event_version"`
	OccurredAt   string   `json:"occurred_at"`
	ItemID       string   `json:"item_id"`
	UserID       string   `json:"user_id"`
	Name         string   `json:"name"`
	Quantity     int      `json:"quantity"`
	Tags         []string `json:"tags"`
}

// UnmarshalItemEvent разбирает payload, записанный KafkaItemEventPublisher
func UnmarshalItemEvent(data []byte) (event.ItemEvent, error) {
	var p itemEventPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return event.ItemEvent{}, fmt.Errorf("decode item event: %w", err)
	}
	if p.EventVersion != event.Version {
		return event.ItemEvent{}, fmt.Errorf("unsupported item event version %d", p.EventVersion)
	}

	occurredAt, err := time.Parse(time.RFC3339, p.OccurredAt)
	if err != nil {
		return event.ItemEvent{}, fmt.Errorf("decode item event occurred_at: %w", err)
	}

	return event.ItemEvent{
		EventID:    p.EventID,
		EventType:  p.EventType,
		OccurredAt: occurredAt,
		ItemID:     p.ItemID,
		UserID:     p.UserID,
		Name:       p.Name,
		Quantity:   p.Quantity,
		Tags:       p.Tags,
	}, nil
}
