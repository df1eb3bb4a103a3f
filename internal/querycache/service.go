// Package querycache serves filtered feed queries through a
// fingerprint-keyed persistent cache with a staleness heuristic.
package querycache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/iudanet/shelfsync/internal/cache"
	"github.com/iudanet/shelfsync/internal/models"
	"github.com/iudanet/shelfsync/internal/remote"
)

// Service handles filtered feed queries
type Service struct {
	store     remote.Store
	cache     cache.FilterStore
	newestKey func() time.Time // самый новый известный ключ сортировки (из реактивного хранилища)
	now       func() time.Time
	logger    *slog.Logger
}

// NewService creates a new filtered query cache service.
// newestKey supplies the newest known ordering key; entries older than
// it are considered stale.
func NewService(store remote.Store, filterCache cache.FilterStore, newestKey func() time.Time, logger *slog.Logger) *Service {
	return &Service{
		store:     store,
		cache:     filterCache,
		newestKey: newestKey,
		now:       time.Now,
		logger:    logger,
	}
}

// GetOrFetch возвращает результат фильтрованного запроса: из кеша,
// если снимок для отпечатка существует и не устарел, иначе свежей
// выборкой из удаленного хранилища с записью снимка целиком.
// Ошибка свежей выборки поднимается вызывающему; старый снимок при
// этом не подменяет результат.
func (s *Service) GetOrFetch(ctx context.Context, spec models.FilterSpec) ([]models.ContentItem, error) {
	fingerprint := Fingerprint(&spec)

	entry, err := s.cache.GetFilterSet(ctx, fingerprint)
	switch {
	case err == nil:
		if s.usable(entry) {
			s.logger.Info("filter cache hit", "fingerprint", fingerprint, "count", len(entry.Items))
			return entry.Items, nil
		}
		s.logger.Info("filter cache stale", "fingerprint", fingerprint, "fetched_at", entry.FetchedAt)
	case errors.Is(err, cache.ErrFilterSetNotFound):
		// Снимка нет - идем в удаленное хранилище
	default:
		// Кеш - оптимизация: его недоступность не блокирует живой путь
		s.logger.Warn("filter cache read failed", "fingerprint", fingerprint, "error", err)
	}

	items, err := s.fetch(ctx, &spec)
	if err != nil {
		return nil, err
	}

	fetchedAt := s.now()
	if err := s.cache.PutFilterSet(ctx, fingerprint, items, fetchedAt); err != nil {
		s.logger.Warn("filter cache write failed", "fingerprint", fingerprint, "error", err)
	}

	s.logger.Info("filter set fetched", "fingerprint", fingerprint, "count", len(items))
	return items, nil
}

// usable проверяет эвристику устаревания: снимок пригоден, только
// если с момента его выборки не появилось более нового поста.
func (s *Service) usable(entry *cache.FilterSet) bool {
	return !s.newestKey().After(entry.FetchedAt)
}

// fetch выполняет свежий фильтрованный запрос.
func (s *Service) fetch(ctx context.Context, spec *models.FilterSpec) ([]models.ContentItem, error) {
	items, err := s.store.FetchItems(ctx, BuildQuery(spec))
	if err != nil {
		return nil, fmt.Errorf("filtered fetch failed: %w", err)
	}

	for i := range items {
		items[i].Normalize()
	}

	return items, nil
}

// BuildQuery переводит спецификацию фильтра в запрос к удаленному
// хранилищу: отсутствующее поле не добавляет условия, поля-массивы
// используют contains, диапазон дат - включающие границы.
func BuildQuery(spec *models.FilterSpec) remote.Query {
	q := remote.Query{
		OrderBy: remote.FieldDisplayedAt,
		Desc:    true,
	}

	equals := []struct {
		field string
		value string
	}{
		{remote.FieldCompanyID, spec.CompanyID},
		{remote.FieldUserID, spec.UserID},
		{remote.FieldAccount, spec.Account},
		{remote.FieldAccountType, spec.AccountType},
		{remote.FieldChain, spec.Chain},
		{remote.FieldChainType, spec.ChainType},
		{remote.FieldCategory, spec.Category},
		{remote.FieldGoalID, spec.GoalID},
		{remote.FieldState, spec.State},
		{remote.FieldCity, spec.City},
	}
	for _, eq := range equals {
		if eq.value != "" {
			q = q.Where(eq.field, remote.OpEqual, eq.value)
		}
	}

	contains := []struct {
		field string
		value string
	}{
		{remote.FieldDisplayTags, spec.DisplayTag},
		{remote.FieldPhotoTags, spec.PhotoTag},
		{remote.FieldBrands, spec.Brand},
	}
	for _, c := range contains {
		if c.value != "" {
			q = q.Where(c.field, remote.OpArrayContains, c.value)
		}
	}

	if spec.MinLikes > 0 {
		q = q.Where(remote.FieldLikeCount, remote.OpGreaterOrEqual, spec.MinLikes)
	}

	if spec.Dates != nil {
		q = q.Where(remote.FieldDisplayedAt, remote.OpGreaterOrEqual, spec.Dates.Start)
		q = q.Where(remote.FieldDisplayedAt, remote.OpLessOrEqual, spec.Dates.End)
	}

	return q
}
