package memory

import (
	"context"
	"iter"
	"slices"
	"sync"

	"github.com/shestoi/GoBigTech/warehouse/internal/repository"
)

// MemoryRepository реализует ItemRepository используя in-memory хранилище
// Используется для разработки (WAREHOUSE_STORAGE=memory) и тестирования
type MemoryRepository struct {
	mu    sync.RWMutex
	items map[string]repository.Item
	order []string // порядок вставки, задаёт порядок Scan
}

// NewMemoryRepository создаёт новый in-memory репозиторий
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		items: make(map[string]repository.Item),
	}
}

// FindByIDAndOwner получает позицию по ID, если owner входит в её владельцев
// Защищён мьютексом для безопасного доступа из разных горутин
func (r *MemoryRepository) FindByIDAndOwner(ctx context.Context, id, owner string) (repository.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, exists := r.items[id]
	if !exists || !slices.Contains(item.Owners, owner) {
		return repository.Item{}, repository.ErrNotFound
	}

	return clone(item), nil
}

// Scan снимает снимок подходящих позиций под RLock и выдаёт их уже без блокировки,
// так что медленный потребитель не держит мьютекс
func (r *MemoryRepository) Scan(ctx context.Context, q repository.Query) iter.Seq2[repository.Item, error] {
	return func(yield func(repository.Item, error) bool) {
		r.mu.RLock()
		matched := make([]repository.Item, 0, len(r.order))
		for _, id := range r.order {
			if item := r.items[id]; q.Matches(item) {
				matched = append(matched, clone(item))
			}
		}
		r.mu.RUnlock()

		for _, item := range matched {
			if err := ctx.Err(); err != nil {
				yield(repository.Item{}, err)
				return
			}
			if !yield(item, nil) {
				return
			}
		}
	}
}

// Insert сохраняет позицию в памяти и присваивает ей ID
func (r *MemoryRepository) Insert(ctx context.Context, item repository.Item) (repository.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item = clone(item)
	item.ID = repository.NewID()
	if item.Tags == nil {
		item.Tags = []string{}
	}

	r.items[item.ID] = item
	r.order = append(r.order, item.ID)

	return clone(item), nil
}

// Remove удаляет позицию по ID, отсутствие позиции не считается ошибкой
func (r *MemoryRepository) Remove(ctx context.Context, item repository.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[item.ID]; !exists {
		return nil
	}
	delete(r.items, item.ID)
	r.order = slices.DeleteFunc(r.order, func(id string) bool { return id == item.ID })

	return nil
}

// UpdateQuantityIfOwner обновляет quantity под эксклюзивной блокировкой
// Возвращает 1, если позиция найдена у владельца (даже при том же значении), иначе 0
func (r *MemoryRepository) UpdateQuantityIfOwner(ctx context.Context, id, owner string, quantity int) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, exists := r.items[id]
	if !exists || !slices.Contains(item.Owners, owner) {
		return 0, nil
	}

	item.Quantity = quantity
	r.items[id] = item

	return 1, nil
}

// clone копирует срезы, чтобы вызывающий код не мог изменить состояние хранилища
func clone(item repository.Item) repository.Item {
	item.Tags = slices.Clone(item.Tags)
	item.Owners = slices.Clone(item.Owners)
	return item
}
