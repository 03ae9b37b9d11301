package service

import (
	"context"

	"github.com/shestoi/GoBigTech/warehouse/internal/event"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=ItemEventPublisher --dir=. --output=./mocks --outpkg=mocks

// ItemEventPublisher публикует события жизненного цикла позиций
// Использует доменные типы вместо kafka.Message - это делает service независимым от брокера
type ItemEventPublisher interface {
	PublishItemEvent(ctx context.Context, e event.ItemEvent) error
}

type nopPublisher struct{}

func (nopPublisher) PublishItemEvent(context.Context, event.ItemEvent) error { return nil }
