package kafka

import (
	"errors"
	"strings"
)

// Config подключение к Kafka для публикации событий
type Config struct {
	// Enabled выключенная Kafka означает noop publisher в сервисе
	Enabled bool `env:"KAFKA_ENABLED" envDefault:"false"`
	// Brokers список брокеров через запятую: localhost:19092 для go run, kafka:9092 в Docker
	Brokers []string `env:"KAFKA_BROKERS" envSeparator:","`
	// Topic топик событий позиций склада
	Topic string `env:"KAFKA_ITEM_EVENTS_TOPIC" envDefault:"warehouse.item.events"`
}

// Validate проверяет конфигурацию включённой Kafka
func (c Config) Validate() error {
	if !c.Enabled {
		return nil
	}
	if len(c.Brokers) == 0 {
		return errors.New("KAFKA_BROKERS is required when KAFKA_ENABLED=true")
	}
	for _, b := range c.Brokers {
		if strings.TrimSpace(b) == "" {
			return errors.New("KAFKA_BROKERS contains an empty broker")
		}
	}
	if c.Topic == "" {
		return errors.New("KAFKA_ITEM_EVENTS_TOPIC is required when KAFKA_ENABLED=true")
	}
	return nil
}
