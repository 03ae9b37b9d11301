package service

import (
	"context"
	"iter"

	"github.com/shestoi/GoBigTech/warehouse/internal/repository"
)

// TagService выдаёт список различных тегов по позициям склада
type TagService struct {
	repo        repository.ItemRepository
	ownerScoped bool
}

// TagOption настраивает TagService
type TagOption func(*TagService)

// WithOwnerScope ограничивает сканирование позициями самого пользователя
// По умолчанию сканируются все позиции: список тегов носит справочный характер
func WithOwnerScope() TagOption {
	return func(s *TagService) {
		s.ownerScoped = true
	}
}

// NewTagService создаёт новый экземпляр TagService
func NewTagService(repo repository.ItemRepository, opts ...TagOption) *TagService {
	s := &TagService{repo: repo}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListTags лениво выдаёт каждый тег ровно один раз в порядке первого появления при сканировании
// Повторный проход по последовательности заново выполняет сканирование
func (s *TagService) ListTags(ctx context.Context, userID string) iter.Seq2[string, error] {
	q := repository.Query{}
	if s.ownerScoped {
		q = q.Where(repository.OwnedBy(userID))
	}
	return distinct(flattenTags(s.repo.Scan(ctx, q)))
}

func flattenTags(items iter.Seq2[repository.Item, error]) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for item, err := range items {
			if err != nil {
				yield("", err)
				return
			}
			for _, tag := range item.Tags {
				if !yield(tag, nil) {
					return
				}
			}
		}
	}
}

// distinct пропускает повторы; ошибка источника передаётся дальше и завершает последовательность
func distinct[T comparable](seq iter.Seq2[T, error]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		seen := make(map[T]struct{})
		for v, err := range seq {
			if err != nil {
				yield(v, err)
				return
			}
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			if !yield(v, nil) {
				return
			}
		}
	}
}
