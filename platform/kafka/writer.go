package kafka

import (
	"time"

	kafkago "github.com/segmentio/kafka-go"
)

// NewWriter создаёт kafkago.Writer для топика из cfg.
// Hash balancer кладёт сообщения с одинаковым ключом в одну партицию
func NewWriter(cfg Config) *kafkago.Writer {
	return &kafkago.Writer{
		Addr:                   kafkago.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafkago.Hash{},
		RequiredAcks:           kafkago.RequireOne,
		BatchTimeout:           10 * time.Millisecond,
		AllowAutoTopicCreation: true,
	}
}
