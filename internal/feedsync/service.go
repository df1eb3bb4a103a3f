// Package feedsync ties the feed pipeline together: schema check,
// cache-first startup, pagination, live updates and filtering.
package feedsync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/iudanet/shelfsync/internal/cache"
	"github.com/iudanet/shelfsync/internal/feed"
	"github.com/iudanet/shelfsync/internal/fetch"
	"github.com/iudanet/shelfsync/internal/identity"
	"github.com/iudanet/shelfsync/internal/listener"
	"github.com/iudanet/shelfsync/internal/migrate"
	"github.com/iudanet/shelfsync/internal/models"
	"github.com/iudanet/shelfsync/internal/querycache"
	"github.com/iudanet/shelfsync/internal/remote"
)

const defaultPageSize = 25

// ErrNotStarted возвращается операциями, требующими запущенного сервиса
var ErrNotStarted = errors.New("feed sync is not started")

// Service координирует полный цикл работы ленты
type Service struct {
	who      *identity.Identity
	storage  cache.Storage
	feed     *feed.Store
	remote   remote.Store
	fetcher  *fetch.Service
	filters  *querycache.Service
	listener *listener.Listener
	migrator *migrate.Coordinator
	logger   *slog.Logger

	mu       sync.Mutex
	scope    fetch.Scope
	cursor   string
	pageSize int
	started  bool
}

// NewService creates a fully wired feed sync service for the given identity.
func NewService(who *identity.Identity, remoteStore remote.Store, storage cache.Storage, logger *slog.Logger) *Service {
	feedStore := feed.New(who.UserID)
	fetcher := fetch.NewService(remoteStore, logger)
	lst := listener.New(remoteStore, storage, storage, feedStore, logger)

	return &Service{
		who:      who,
		storage:  storage,
		feed:     feedStore,
		remote:   remoteStore,
		fetcher:  fetcher,
		filters:  querycache.NewService(remoteStore, storage, feedStore.NewestKey, logger),
		listener: lst,
		migrator: migrate.NewCoordinator(remoteStore, storage, feedStore, fetcher, lst, logger),
		logger:   logger,
		pageSize: defaultPageSize,
		scope:    fetch.ScopeFor(who),
	}
}

// SetPageSize задает размер страницы пагинации. Неположительные
// значения игнорируются.
func (s *Service) SetPageSize(n int) {
	if n <= 0 {
		return
	}
	s.mu.Lock()
	s.pageSize = n
	s.mu.Unlock()
}

// Feed возвращает реактивное хранилище ленты
func (s *Service) Feed() *feed.Store {
	return s.feed
}

// Listener возвращает слушатель изменений (для наблюдения за состоянием)
func (s *Service) Listener() *listener.Listener {
	return s.listener
}

// Start brings the feed online:
// 1. Runs the schema check (migrating with a purge-and-resync when needed)
// 2. Loads cached items for instant display, falling back to a network fetch
// 3. Attaches the change listener scoped to the identity
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	result, err := s.migrator.Check(ctx, s.scope, s.who.CompanyID, s.pageSize)
	if err != nil {
		return fmt.Errorf("schema check failed: %w", err)
	}
	if result.Migrated {
		s.logger.Info("schema migrated",
			"local_version", result.LocalVersion,
			"remote_version", result.RemoteVersion)
		// Ресинк уже заполнил ленту первой страницей
		s.cursor = lastCursor(s.feed.Variant(feed.VariantPrimary))
	} else if err := s.loadInitial(ctx); err != nil {
		return err
	}

	if err := s.listener.Attach(ctx, s.scopeQueries()); err != nil {
		return fmt.Errorf("failed to attach change listener: %w", err)
	}

	s.started = true
	return nil
}

// loadInitial показывает кэш сразу, а при пустом кэше тянет первую страницу
func (s *Service) loadInitial(ctx context.Context) error {
	cached, err := s.storage.GetAllItems(ctx)
	if err != nil {
		s.logger.Warn("failed to read cached items, fetching fresh", "error", err)
	}
	if len(cached) > 0 {
		s.logger.Info("feed loaded from cache", "count", len(cached))
		s.feed.SetAll(cached)
		s.cursor = lastCursor(s.feed.Variant(feed.VariantPrimary))
		return nil
	}

	page, err := s.fetcher.FetchInitial(ctx, s.scope, s.who.CompanyID, s.pageSize)
	if err != nil {
		return fmt.Errorf("initial feed fetch failed: %w", err)
	}

	s.feed.SetAll(page.Items)
	s.cursor = page.Cursor

	if err := s.storage.PutItems(ctx, page.Items); err != nil {
		// Кэш вторичен: лента уже показана
		s.logger.Warn("failed to cache initial page", "error", err)
	}
	return nil
}

// LoadMore подтягивает следующую страницу ленты и вливает ее в хранилище
func (s *Service) LoadMore(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return ErrNotStarted
	}
	if s.cursor == "" {
		// Лента исчерпана
		return nil
	}

	page, err := s.fetcher.FetchNext(ctx, s.scope, s.who.CompanyID, s.cursor, s.pageSize)
	if err != nil {
		return fmt.Errorf("failed to fetch next page: %w", err)
	}

	s.feed.MergeIncoming(page.Items)
	s.cursor = page.Cursor

	if err := s.storage.PutItems(ctx, page.Items); err != nil {
		s.logger.Warn("failed to cache page", "error", err)
	}
	return nil
}

// ApplyFilter показывает отфильтрованный срез ленты поверх основной
func (s *Service) ApplyFilter(ctx context.Context, spec models.FilterSpec) error {
	if spec.IsEmpty() {
		s.ClearFilter()
		return nil
	}

	items, err := s.filters.GetOrFetch(ctx, spec)
	if err != nil {
		return fmt.Errorf("filtered query failed: %w", err)
	}

	s.feed.SetFiltered(items)
	return nil
}

// ClearFilter возвращает ленту к основному списку
func (s *Service) ClearFilter() {
	s.feed.ClearFiltered()
}

// ToggleLike flips the current user's like on an item locally. The
// authoritative state arrives later through the change feed and
// supersedes the optimistic patch.
func (s *Service) ToggleLike(ctx context.Context, itemID string) error {
	item, ok := s.feed.Get(itemID)
	if !ok {
		return fmt.Errorf("item %s is not in the feed", itemID)
	}

	if item.LikedBy(s.who.UserID) {
		item.Likes = slices.DeleteFunc(item.Likes, func(id string) bool {
			return id == s.who.UserID
		})
	} else {
		item.Likes = append(item.Likes, s.who.UserID)
	}

	s.feed.MergeIncoming([]models.ContentItem{*item})

	if err := s.storage.PutItems(ctx, []models.ContentItem{*item}); err != nil {
		s.logger.Warn("failed to cache liked item", "error", err)
	}
	return nil
}

// Stop отцепляет слушатель; кэш и лента остаются для следующего запуска
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.listener.Detach()
	s.started = false
}

// scopeQueries строит набор запросов подписки для текущей роли.
// Подписка повторяет форму запроса постраничной выборки: живой путь
// и пагинация видят один и тот же срез коллекции.
func (s *Service) scopeQueries() []remote.Query {
	return []remote.Query{fetch.ScopeQuery(s.scope, s.who.CompanyID)}
}

// lastCursor возвращает id последнего поста списка как курсор пагинации
func lastCursor(items []models.ContentItem) string {
	if len(items) == 0 {
		return ""
	}
	return items[len(items)-1].ID
}
