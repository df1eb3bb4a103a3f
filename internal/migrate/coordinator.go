// Package migrate compares the remote schema version against the
// locally persisted marker and rebuilds the local tiers on mismatch.
package migrate

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/iudanet/shelfsync/internal/cache"
	"github.com/iudanet/shelfsync/internal/feed"
	"github.com/iudanet/shelfsync/internal/fetch"
	"github.com/iudanet/shelfsync/internal/remote"
)

// Detacher останавливает активную подписку перед очисткой кеша.
type Detacher interface {
	Detach()
}

// Result итог проверки версии схемы.
type Result struct {
	LocalVersion  string
	RemoteVersion string
	Migrated      bool
}

// Coordinator выполняет проверку версии схемы и полную
// пересинхронизацию при несовпадении.
type Coordinator struct {
	remote   remote.Store
	cache    cache.Storage
	feed     *feed.Store
	fetcher  *fetch.Service
	listener Detacher // может быть nil, если подписка еще не создавалась
	logger   *slog.Logger
}

// NewCoordinator creates a new schema migration coordinator
func NewCoordinator(remoteStore remote.Store, storage cache.Storage, feedStore *feed.Store, fetcher *fetch.Service, listener Detacher, logger *slog.Logger) *Coordinator {
	return &Coordinator{
		remote:   remoteStore,
		cache:    storage,
		feed:     feedStore,
		fetcher:  fetcher,
		listener: listener,
		logger:   logger,
	}
}

// Check сравнивает удаленную версию схемы с локальной. При
// несовпадении (или отсутствии локальной) очищает все партиции кеша
// и реактивное хранилище, выполняет полную начальную выборку и только
// после успешной пересинхронизации сохраняет новый маркер версии.
// При ошибке маркер остается прежним, и следующая проверка повторит
// миграцию. Слушатель изменений отсоединяется до очистки; повторное
// подключение - обязанность вызывающего кода после возврата.
func (c *Coordinator) Check(ctx context.Context, scope fetch.Scope, companyID string, pageSize int) (*Result, error) {
	remoteVersion, err := c.remote.SchemaVersion(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get remote schema version: %w", err)
	}

	localVersion, err := c.cache.GetSchemaVersion(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get local schema version: %w", err)
	}

	result := &Result{LocalVersion: localVersion, RemoteVersion: remoteVersion}

	if localVersion == remoteVersion && localVersion != "" {
		c.logger.Info("schema version up to date", "version", localVersion)
		return result, nil
	}

	c.logger.Info("schema version mismatch, migrating",
		"local", localVersion, "remote", remoteVersion)

	// Подписка не должна писать в кеш во время очистки
	if c.listener != nil {
		c.listener.Detach()
	}

	// ClearAll стирает и курсор изменений: после миграции подписка
	// возобновится с эпохи
	if err := c.cache.ClearAll(ctx); err != nil {
		return nil, fmt.Errorf("failed to clear cache: %w", err)
	}
	c.feed.Clear()

	page, err := c.fetcher.FetchInitial(ctx, scope, companyID, pageSize)
	if err != nil {
		// Маркер версии не сохранен - следующая проверка повторит
		return nil, fmt.Errorf("resync fetch failed: %w", err)
	}

	c.feed.SetAll(page.Items)
	if err := c.cache.PutItems(ctx, page.Items); err != nil {
		return nil, fmt.Errorf("failed to cache resynced items: %w", err)
	}

	if err := c.cache.SetSchemaVersion(ctx, remoteVersion); err != nil {
		return nil, fmt.Errorf("failed to persist schema version: %w", err)
	}

	result.Migrated = true
	c.logger.Info("schema migration complete", "version", remoteVersion, "items", len(page.Items))
	return result, nil
}
