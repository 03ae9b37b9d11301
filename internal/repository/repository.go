package repository

import (
	"context"
	"errors"
	"iter"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Item представляет доменную модель складской позиции (SKU)
// Это бизнес-сущность, не привязанная к HTTP или БД
type Item struct {
	ID       string
	Name     string
	Quantity int
	Tags     []string
	Owners   []string
}

// ListFilter параметры выборки позиций для одного запроса
// IncludeEmpty == nil трактуется так же, как false: позиции с нулевым остатком скрыты
type ListFilter struct {
	Owner        string
	IncludeEmpty *bool
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=ItemRepository --dir=. --output=./mocks --outpkg=mocks

// ItemRepository определяет интерфейс для работы с хранилищем позиций
// Service слой зависит от этого интерфейса, а не от конкретной реализации
type ItemRepository interface {
	// FindByIDAndOwner получает позицию по ID, только если owner входит в её владельцев
	// Возвращает ErrNotFound, если такой позиции нет
	FindByIDAndOwner(ctx context.Context, id, owner string) (Item, error)

	// Scan лениво выдаёт позиции, подходящие под запрос
	// Каждый новый проход по последовательности заново выполняет запрос, порядок не гарантирован
	Scan(ctx context.Context, q Query) iter.Seq2[Item, error]

	// Insert сохраняет новую позицию и возвращает её с присвоенным ID
	Insert(ctx context.Context, item Item) (Item, error)

	// Remove безусловно удаляет позицию по ID
	Remove(ctx context.Context, item Item) error

	// UpdateQuantityIfOwner атомарно меняет quantity, если совпали и ID, и владелец
	// Возвращает количество совпавших документов (0 или 1)
	UpdateQuantityIfOwner(ctx context.Context, id, owner string, quantity int) (int64, error)
}

// ErrNotFound возвращается, когда позиция не найдена в хранилище
var ErrNotFound = errors.New("item not found")

// NewID генерирует новый идентификатор позиции в формате ObjectID
func NewID() string {
	return primitive.NewObjectID().Hex()
}

// IsValidID проверяет, что строка является корректным идентификатором позиции
func IsValidID(id string) bool {
	return primitive.IsValidObjectID(id)
}
