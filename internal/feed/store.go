// Package feed holds the in-memory reactive store: the only structure
// the UI layer reads. It keeps every tracked list deduplicated by id
// and sorted descending by display timestamp.
package feed

import (
	"sort"
	"sync"
	"time"

	"github.com/iudanet/shelfsync/internal/models"
)

// Variant имя отслеживаемого списка постов.
type Variant string

const (
	VariantPrimary  Variant = "primary"  // основная лента
	VariantTag      Variant = "tag"      // выборка по тегу
	VariantStarred  Variant = "starred"  // избранные посты
	VariantAuthored Variant = "authored" // посты текущего пользователя
)

// derived перечисляет списки, пересчитываемые из основной ленты при
// каждой ее мутации; SetVariant для них не нужен.
func derived(variant Variant) bool {
	return variant == VariantStarred || variant == VariantAuthored
}

// Store представляет реактивное in-memory хранилище ленты.
// Все мутации вычисляют новый срез и подменяют его атомарно под
// блокировкой: потребитель никогда не видит частично слитое состояние.
type Store struct {
	lists    map[Variant][]models.ContentItem
	filtered []models.ContentItem // снимок фильтрованной выборки, nil если фильтр не активен
	watchers []func()
	owner    string
	mu       sync.RWMutex
}

// New создает пустое хранилище ленты. ownerID наполняет производный
// список authored; пустой ownerID оставляет его пустым.
func New(ownerID string) *Store {
	return &Store{
		lists: make(map[Variant][]models.ContentItem),
		owner: ownerID,
	}
}

// SetAll заменяет основную ленту целиком.
// Используется после полной выборки или попадания в кеш.
func (s *Store) SetAll(items []models.ContentItem) {
	merged := mergeByID(nil, items)
	sortItems(merged)

	s.mu.Lock()
	s.lists[VariantPrimary] = merged
	s.refreshDerivedLocked()
	s.mu.Unlock()

	s.notify()
}

// MergeIncoming объединяет входящие посты с основной лентой по id,
// предпочитая входящие при конфликте, и пересортировывает результат.
// Операция коммутативна и идемпотентна, поэтому безопасна при
// чередовании пагинации и real-time изменений.
func (s *Store) MergeIncoming(items []models.ContentItem) {
	s.mu.Lock()
	merged := mergeByID(s.lists[VariantPrimary], items)
	sortItems(merged)
	s.lists[VariantPrimary] = merged
	s.refreshDerivedLocked()
	s.mu.Unlock()

	s.notify()
}

// Remove удаляет пост из всех отслеживаемых списков, включая
// активный фильтрованный снимок.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	for variant, list := range s.lists {
		s.lists[variant] = withoutID(list, id)
	}
	if s.filtered != nil {
		s.filtered = withoutID(s.filtered, id)
	}
	s.mu.Unlock()

	s.notify()
}

// SetVariant заменяет дополнительный список целиком (например,
// выборку по тегу). Производные списки задаются только пересчетом
// из основной ленты, запись в них игнорируется.
func (s *Store) SetVariant(variant Variant, items []models.ContentItem) {
	if derived(variant) {
		return
	}

	merged := mergeByID(nil, items)
	sortItems(merged)

	s.mu.Lock()
	s.lists[variant] = merged
	s.mu.Unlock()

	s.notify()
}

// refreshDerivedLocked пересчитывает starred и authored из основной
// ленты; вызывается под блокировкой после каждой ее мутации.
// Основная лента уже отсортирована, производные наследуют порядок.
func (s *Store) refreshDerivedLocked() {
	var starred, authored []models.ContentItem
	for _, item := range s.lists[VariantPrimary] {
		if item.Starred {
			starred = append(starred, item)
		}
		if s.owner != "" && item.UserID == s.owner {
			authored = append(authored, item)
		}
	}
	s.lists[VariantStarred] = starred
	s.lists[VariantAuthored] = authored
}

// Variant возвращает копию списка по имени.
func (s *Store) Variant(variant Variant) []models.ContentItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneList(s.lists[variant])
}

// SetFiltered устанавливает фильтрованный снимок, который подменяет
// основную ленту в Items до вызова ClearFiltered.
func (s *Store) SetFiltered(items []models.ContentItem) {
	snapshot := cloneList(items)
	if snapshot == nil {
		snapshot = []models.ContentItem{}
	}

	s.mu.Lock()
	s.filtered = snapshot
	s.mu.Unlock()

	s.notify()
}

// ClearFiltered снимает фильтрованный снимок и возвращает Items к
// основной ленте.
func (s *Store) ClearFiltered() {
	s.mu.Lock()
	s.filtered = nil
	s.mu.Unlock()

	s.notify()
}

// FilterActive сообщает, активен ли фильтрованный снимок.
func (s *Store) FilterActive() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.filtered != nil
}

// Items возвращает копию списка, который должен видеть UI:
// фильтрованный снимок, если он активен, иначе основную ленту.
func (s *Store) Items() []models.ContentItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.filtered != nil {
		return cloneList(s.filtered)
	}
	return cloneList(s.lists[VariantPrimary])
}

// Len возвращает размер основной ленты.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.lists[VariantPrimary])
}

// NewestKey возвращает самый новый ключ сортировки основной ленты.
// Это единый источник сигнала "новейший известный пост" для проверки
// устаревания фильтрованного кеша. Возвращает нулевое время для
// пустой ленты.
func (s *Store) NewestKey() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	primary := s.lists[VariantPrimary]
	if len(primary) == 0 {
		return time.Time{}
	}
	// Лента отсортирована по убыванию - первый элемент новейший
	return primary[0].OrderingKey()
}

// Get возвращает пост основной ленты по id.
func (s *Store) Get(id string) (*models.ContentItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.lists[VariantPrimary] {
		if s.lists[VariantPrimary][i].ID == id {
			return s.lists[VariantPrimary][i].Clone(), true
		}
	}
	return nil, false
}

// Clear удаляет все списки и фильтрованный снимок.
// Используется координатором миграции перед полной пересинхронизацией.
func (s *Store) Clear() {
	s.mu.Lock()
	s.lists = make(map[Variant][]models.ContentItem)
	s.filtered = nil
	s.mu.Unlock()

	s.notify()
}

// OnChange регистрирует наблюдателя, вызываемого после каждой мутации.
// Наблюдатель вызывается вне блокировки хранилища.
func (s *Store) OnChange(fn func()) {
	s.mu.Lock()
	s.watchers = append(s.watchers, fn)
	s.mu.Unlock()
}

// notify уведомляет наблюдателей об изменении.
func (s *Store) notify() {
	s.mu.RLock()
	watchers := make([]func(), len(s.watchers))
	copy(watchers, s.watchers)
	s.mu.RUnlock()

	for _, fn := range watchers {
		fn()
	}
}

// mergeByID объединяет списки по id, предпочитая более поздние
// вхождения. Порядок первого вхождения каждого id сохраняется,
// что делает последующую стабильную сортировку детерминированной.
func mergeByID(existing, incoming []models.ContentItem) []models.ContentItem {
	out := make([]models.ContentItem, 0, len(existing)+len(incoming))
	index := make(map[string]int, len(existing)+len(incoming))

	for _, item := range existing {
		index[item.ID] = len(out)
		out = append(out, item)
	}
	for _, item := range incoming {
		if pos, ok := index[item.ID]; ok {
			out[pos] = item
			continue
		}
		index[item.ID] = len(out)
		out = append(out, item)
	}

	return out
}

// sortItems сортирует посты по убыванию ключа сортировки.
func sortItems(items []models.ContentItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].OrderingKey().After(items[j].OrderingKey())
	})
}

// withoutID возвращает новый список без поста с заданным id.
func withoutID(items []models.ContentItem, id string) []models.ContentItem {
	out := make([]models.ContentItem, 0, len(items))
	for _, item := range items {
		if item.ID != id {
			out = append(out, item)
		}
	}
	return out
}

// cloneList возвращает глубокую копию списка.
func cloneList(items []models.ContentItem) []models.ContentItem {
	if items == nil {
		return nil
	}
	out := make([]models.ContentItem, len(items))
	for i := range items {
		out[i] = *items[i].Clone()
	}
	return out
}
