package event

import "time"

// Типы событий жизненного цикла позиции
const (
	TypeItemCreated         = "warehouse.item.created"
	TypeItemQuantityUpdated = "warehouse.item.quantity_updated"
	TypeItemDeleted         = "warehouse.item.deleted"
)

// Version текущая версия схемы событий
const Version = 1

// ItemEvent доменное событие об изменении позиции
// Публикуется после успешной мутации в хранилище
type ItemEvent struct {
	EventID    string
	EventType  string
	OccurredAt time.Time
	ItemID     string
	UserID     string
	Name       string
	Quantity   int
	Tags       []string
}
