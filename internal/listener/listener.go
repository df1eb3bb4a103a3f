// Package listener maintains real-time change subscriptions to the
// remote document store and merges incoming deltas into both cache
// tiers.
package listener

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/iudanet/shelfsync/internal/cache"
	"github.com/iudanet/shelfsync/internal/feed"
	"github.com/iudanet/shelfsync/internal/models"
	"github.com/iudanet/shelfsync/internal/remote"
)

// State состояние подписки.
type State int32

const (
	StateDetached State = iota
	StateAttaching
	StateActive
	StateError
)

func (s State) String() string {
	switch s {
	case StateDetached:
		return "detached"
	case StateAttaching:
		return "attaching"
	case StateActive:
		return "active"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// ErrAlreadyAttached возвращается при повторном Attach без Detach.
var ErrAlreadyAttached = errors.New("listener is already attached")

// Listener funnels change batches from one or more subscriptions into
// the reactive store and the persistent cache. There is no automatic
// retry: after a subscription fault the listener detaches and the
// owner must re-attach to resume.
type Listener struct {
	store  remote.Store
	items  cache.ItemStore
	meta   cache.MetaStore
	feed   *feed.Store
	logger *slog.Logger

	mu        sync.Mutex
	state     State
	subs      []remote.Subscription
	highWater time.Time // монотонная отметка самого нового примененного изменения
	lastErr   error
}

// New creates a new change listener
func New(store remote.Store, items cache.ItemStore, meta cache.MetaStore, feedStore *feed.Store, logger *slog.Logger) *Listener {
	return &Listener{
		store:  store,
		items:  items,
		meta:   meta,
		feed:   feedStore,
		logger: logger,
	}
}

// Attach подписывается на изменения для каждого базового запроса,
// добавляя нижнюю границу по времени изменения из сохраненного
// курсора (эпоха, если курсора нет). Все подписки сливаются в один
// путь мержа.
func (l *Listener) Attach(ctx context.Context, queries []remote.Query) error {
	l.mu.Lock()
	if l.state != StateDetached {
		l.mu.Unlock()
		return ErrAlreadyAttached
	}
	l.state = StateAttaching
	l.lastErr = nil
	l.mu.Unlock()

	lastSeen, err := l.meta.GetLastSeen(ctx)
	if err != nil {
		// Без курсора подписываемся с эпохи: повторно полученные
		// изменения отсекет high-water mark
		l.logger.Warn("failed to load last seen cursor, subscribing from epoch", "error", err)
		lastSeen = time.Time{}
	}

	subs := make([]remote.Subscription, 0, len(queries))
	for _, query := range queries {
		scoped := query.Where(remote.FieldUpdatedAt, remote.OpGreaterThan, lastSeen)

		sub, err := l.store.Subscribe(ctx, scoped, l.handleBatch, l.handleError)
		if err != nil {
			for _, s := range subs {
				s.Unsubscribe()
			}
			l.mu.Lock()
			l.state = StateDetached
			l.mu.Unlock()
			return err
		}
		subs = append(subs, sub)
	}

	l.mu.Lock()
	l.subs = subs
	l.highWater = lastSeen
	l.state = StateActive
	l.mu.Unlock()

	l.logger.Info("change listener attached", "subscriptions", len(subs), "since", lastSeen)
	return nil
}

// Detach останавливает подписки. После возврата управления новые
// батчи не применяются; уже начатый мерж завершается до остановки.
func (l *Listener) Detach() {
	l.mu.Lock()
	if l.state == StateDetached {
		l.mu.Unlock()
		return
	}
	l.state = StateDetached
	subs := l.subs
	l.subs = nil
	l.mu.Unlock()

	// Unsubscribe дожидается завершения колбеков; мьютекс в этот
	// момент не удерживается, иначе мерж в полете заблокирует остановку
	for _, sub := range subs {
		sub.Unsubscribe()
	}

	l.logger.Info("change listener detached")
}

// State возвращает текущее состояние подписки.
func (l *Listener) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Err возвращает ошибку последнего сбоя подписки.
func (l *Listener) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lastErr
}

// handleBatch применяет один батч изменений к обоим уровням кеша.
// Мерж сериализуется мьютексом: батчи от нескольких подписок
// применяются по одному, а результат коммутативен, так как каждый
// пост проходит проверку по high-water mark.
func (l *Listener) handleBatch(deltas []models.Delta) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.state != StateActive && l.state != StateAttaching {
		return
	}

	ctx := context.Background()

	// Применяем по возрастанию времени изменения: бегущая отметка
	// становится детерминированной при любом порядке внутри батча
	sorted := make([]models.Delta, len(deltas))
	copy(sorted, deltas)
	sort.SliceStable(sorted, func(i, j int) bool {
		return changeTime(sorted[i]).Before(changeTime(sorted[j]))
	})

	mark := l.highWater
	applied := 0
	durable := true

	for _, delta := range sorted {
		switch delta.Type {
		case models.ChangeRemoved:
			l.feed.Remove(delta.ID)
			if err := l.items.DeleteItem(ctx, delta.ID); err != nil {
				l.logger.Warn("failed to delete item from cache", "id", delta.ID, "error", err)
				durable = false
			}
			applied++

		case models.ChangeAdded, models.ChangeModified:
			if delta.Item == nil {
				continue
			}
			ts := delta.Item.UpdatedAt
			// Уже примененные изменения (повтор после переподключения)
			// пропускаются
			if !ts.After(mark) {
				continue
			}

			item := *delta.Item
			item.Normalize()
			l.feed.MergeIncoming([]models.ContentItem{item})
			if err := l.items.PutItems(ctx, []models.ContentItem{item}); err != nil {
				// Лента уже показывает пост, но в персистентный кеш он
				// не попал: курсор остается позади, изменение придет
				// повторно и доложится в кеш при следующем Attach
				l.logger.Warn("failed to put item into cache", "id", item.ID, "error", err)
				durable = false
				continue
			}

			if durable {
				mark = ts
			}
			applied++
		}
	}

	// Курсор продвигается только после применения всего батча к
	// обоим уровням
	if durable && mark.After(l.highWater) {
		l.highWater = mark
		if err := l.meta.SetLastSeen(ctx, mark); err != nil {
			l.logger.Warn("failed to persist last seen cursor", "error", err)
		}
	}

	l.logger.Info("change batch applied", "received", len(deltas), "applied", applied, "high_water", mark)
}

// handleError обрабатывает невосстановимый сбой подписки:
// слушатель переходит в Error и отсоединяется.
func (l *Listener) handleError(err error) {
	l.mu.Lock()
	if l.state == StateDetached {
		l.mu.Unlock()
		return
	}
	l.state = StateError
	l.lastErr = err
	subs := l.subs
	l.subs = nil
	l.mu.Unlock()

	for _, sub := range subs {
		sub.Unsubscribe()
	}

	l.mu.Lock()
	if l.state == StateError {
		l.state = StateDetached
	}
	l.mu.Unlock()

	l.logger.Error("subscription fault, listener detached", "error", err)
}

// changeTime возвращает время изменения дельты; у removed его нет,
// поэтому удаления применяются первыми.
func changeTime(delta models.Delta) time.Time {
	if delta.Item != nil {
		return delta.Item.UpdatedAt
	}
	return time.Time{}
}

// HighWater возвращает текущую бегущую отметку (для наблюдаемости).
func (l *Listener) HighWater() time.Time {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.highWater
}
