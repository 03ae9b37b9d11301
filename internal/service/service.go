package service

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/shestoi/GoBigTech/warehouse/internal/event"
	"github.com/shestoi/GoBigTech/warehouse/internal/repository"
	"github.com/shestoi/GoBigTech/warehouse/platform/observability"
)

// InventoryService содержит бизнес-логику работы со складскими позициями
// Владелец передаётся явным параметром в каждый вызов и не читается из контекста
type InventoryService struct {
	repo      repository.ItemRepository
	publisher ItemEventPublisher
	logger    *zap.Logger
	now       func() time.Time
}

// NewInventoryService создаёт новый экземпляр InventoryService
// publisher и logger могут быть nil: события тогда не публикуются, логи не пишутся
func NewInventoryService(repo repository.ItemRepository, publisher ItemEventPublisher, logger *zap.Logger) *InventoryService {
	if publisher == nil {
		publisher = nopPublisher{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InventoryService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

// AddItemInput содержит входные данные для создания позиции
type AddItemInput struct {
	Name     string
	Quantity int
	Tags     []string
}

// Add создаёт новую позицию, создатель становится её первым владельцем
func (s *InventoryService) Add(ctx context.Context, input AddItemInput, userID string) (repository.Item, error) {
	if strings.TrimSpace(input.Name) == "" {
		return repository.Item{}, fmt.Errorf("%w: name must not be empty", ErrInvalidInput)
	}
	if input.Quantity < 0 {
		return repository.Item{}, fmt.Errorf("%w: quantity must be >= 0, got %d", ErrInvalidInput, input.Quantity)
	}
	if err := validateUser(userID); err != nil {
		return repository.Item{}, err
	}

	created, err := s.repo.Insert(ctx, repository.Item{
		Name:     input.Name,
		Quantity: input.Quantity,
		Tags:     uniqueTags(input.Tags),
		Owners:   []string{userID},
	})
	if err != nil {
		return repository.Item{}, fmt.Errorf("failed to insert item: %w", err)
	}

	observability.L(ctx, s.logger).Info("item created",
		zap.String("item_id", created.ID),
		zap.String("user_id", userID),
		zap.Int("quantity", created.Quantity),
	)
	s.publish(ctx, event.TypeItemCreated, created, userID)

	return created, nil
}

// GetByIDForOwner возвращает позицию, если userID входит в её владельцев
func (s *InventoryService) GetByIDForOwner(ctx context.Context, id, userID string) (repository.Item, error) {
	if err := validateRef(id, userID); err != nil {
		return repository.Item{}, err
	}

	item, err := s.repo.FindByIDAndOwner(ctx, id, userID)
	if err != nil {
		return repository.Item{}, s.findError(id, err)
	}

	return item, nil
}

// List лениво выдаёт позиции владельца, отфильтрованные по остатку
// Пустая последовательность - корректный результат, не ошибка
func (s *InventoryService) List(ctx context.Context, filter repository.ListFilter) iter.Seq2[repository.Item, error] {
	if err := validateUser(filter.Owner); err != nil {
		return func(yield func(repository.Item, error) bool) {
			yield(repository.Item{}, err)
		}
	}

	return s.repo.Scan(ctx, repository.BuildQuery(filter))
}

// UpdateQuantity устанавливает остаток позиции
// Если условное обновление не совпало ни с одним документом, возвращается ErrNotFound:
// отсутствие позиции и чужая позиция неразличимы для вызывающего
func (s *InventoryService) UpdateQuantity(ctx context.Context, id string, quantity int, userID string) error {
	if err := validateRef(id, userID); err != nil {
		return err
	}
	if quantity < 0 {
		return fmt.Errorf("%w: quantity must be >= 0, got %d", ErrInvalidInput, quantity)
	}

	matched, err := s.repo.UpdateQuantityIfOwner(ctx, id, userID, quantity)
	if err != nil {
		return fmt.Errorf("failed to update quantity of item %s: %w", id, err)
	}
	if matched == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	observability.L(ctx, s.logger).Info("item quantity updated",
		zap.String("item_id", id),
		zap.String("user_id", userID),
		zap.Int("quantity", quantity),
	)
	s.publish(ctx, event.TypeItemQuantityUpdated, repository.Item{ID: id, Quantity: quantity}, userID)

	return nil
}

// DeleteByIDForOwner удаляет позицию с нулевым остатком
// Возвращает false без ошибки, если остаток положительный - позиция при этом не меняется.
// Чтение и удаление не атомарны: параллельное увеличение остатка между ними не отслеживается
func (s *InventoryService) DeleteByIDForOwner(ctx context.Context, id, userID string) (bool, error) {
	if err := validateRef(id, userID); err != nil {
		return false, err
	}

	item, err := s.repo.FindByIDAndOwner(ctx, id, userID)
	if err != nil {
		return false, s.findError(id, err)
	}

	if item.Quantity > 0 {
		observability.L(ctx, s.logger).Info("item delete blocked: quantity is positive",
			zap.String("item_id", id),
			zap.String("user_id", userID),
			zap.Int("quantity", item.Quantity),
		)
		return false, nil
	}

	if err := s.repo.Remove(ctx, item); err != nil {
		return false, fmt.Errorf("failed to remove item %s: %w", id, err)
	}

	observability.L(ctx, s.logger).Info("item deleted",
		zap.String("item_id", id),
		zap.String("user_id", userID),
	)
	s.publish(ctx, event.TypeItemDeleted, item, userID)

	return true, nil
}

// publish отправляет событие после успешной мутации
// Ошибка публикации логируется и не влияет на результат операции
func (s *InventoryService) publish(ctx context.Context, eventType string, item repository.Item, userID string) {
	e := event.ItemEvent{
		EventType:  eventType,
		OccurredAt: s.now().UTC(),
		ItemID:     item.ID,
		UserID:     userID,
		Name:       item.Name,
		Quantity:   item.Quantity,
		Tags:       item.Tags,
	}
	if err := s.publisher.PublishItemEvent(ctx, e); err != nil {
		observability.L(ctx, s.logger).Warn("failed to publish item event",
			zap.Error(err),
			zap.String("event_type", eventType),
			zap.String("item_id", item.ID),
		)
	}
}

func (s *InventoryService) findError(id string, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return fmt.Errorf("failed to find item %s: %w", id, err)
}

func validateUser(userID string) error {
	if userID == "" {
		return fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	return nil
}

func validateRef(id, userID string) error {
	if !repository.IsValidID(id) {
		return fmt.Errorf("%w: malformed item id %q", ErrInvalidInput, id)
	}
	return validateUser(userID)
}

// uniqueTags убирает дубликаты, сохраняя порядок первого вхождения
func uniqueTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}
