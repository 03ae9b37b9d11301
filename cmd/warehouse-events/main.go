// Package main читает события позиций склада из Kafka и пишет их в лог.
//
// Утилита для локальной отладки публикации событий:
// KAFKA_BROKERS (по умолчанию localhost:19092), KAFKA_ITEM_EVENTS_TOPIC, KAFKA_GROUP_ID.
// Без KAFKA_GROUP_ID читает топик с начала без коммита offset-ов.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/caarlos0/env/v10"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	eventkafka "github.com/shestoi/GoBigTech/warehouse/internal/event/kafka"
	platformkafka "github.com/shestoi/GoBigTech/warehouse/platform/kafka"
	platformlogging "github.com/shestoi/GoBigTech/warehouse/platform/logging"
)

type config struct {
	Kafka   platformkafka.Config
	GroupID string `env:"KAFKA_GROUP_ID"`
}

func main() {
	logger, err := platformlogging.New(platformlogging.Config{
		ServiceName: "warehouse-events",
		Env:         "local",
		Format:      "console",
	})
	if err != nil {
		os.Stderr.WriteString("Failed to initialize logger: " + err.Error() + "\n")
		os.Exit(1)
	}

	if err := run(logger); err != nil {
		logger.Error("warehouse-events stopped", zap.Error(err))
		platformlogging.Sync(logger)
		os.Exit(1)
	}
	platformlogging.Sync(logger)
}

func run(logger *zap.Logger) error {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return fmt.Errorf("load kafka config: %w", err)
	}
	if len(cfg.Kafka.Brokers) == 0 {
		cfg.Kafka.Brokers = []string{"localhost:19092"}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	readerCfg := kafka.ReaderConfig{
		Brokers: cfg.Kafka.Brokers,
		Topic:   cfg.Kafka.Topic,
		GroupID: cfg.GroupID,
	}
	if cfg.GroupID == "" {
		readerCfg.StartOffset = kafka.FirstOffset
	}
	reader := kafka.NewReader(readerCfg)
	defer func() {
		if err := reader.Close(); err != nil {
			logger.Error("failed to close kafka reader", zap.Error(err))
		}
	}()

	logger.Info("reading item events",
		zap.Strings("brokers", cfg.Kafka.Brokers),
		zap.String("topic", cfg.Kafka.Topic),
		zap.String("group_id", cfg.GroupID),
	)

	for {
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return fmt.Errorf("read message: %w", err)
		}

		e, err := eventkafka.UnmarshalItemEvent(msg.Value)
		if err != nil {
			logger.Warn("skipping malformed event",
				zap.Error(err),
				zap.Int("partition", msg.Partition),
				zap.Int64("offset", msg.Offset),
			)
			continue
		}

		logger.Info("item event",
			zap.String("event_type", e.EventType),
			zap.String("event_id", e.EventID),
			zap.String("item_id", e.ItemID),
			zap.String("user_id", e.UserID),
			zap.Int("quantity", e.Quantity),
			zap.Time("occurred_at", e.OccurredAt),
			zap.Int64("offset", msg.Offset),
		)
	}
}
