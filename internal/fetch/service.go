// Package fetch implements scoped, cursor-paginated batch fetches
// against the remote document store.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/iudanet/shelfsync/internal/identity"
	"github.com/iudanet/shelfsync/internal/models"
	"github.com/iudanet/shelfsync/internal/remote"
)

// Scope определяет форму запроса ленты.
type Scope string

const (
	// ScopeAll все посты без фильтра по компании (привилегированный доступ)
	ScopeAll Scope = "all"
	// ScopeCompany посты своей компании с видимостью company/network
	ScopeCompany Scope = "company"
	// ScopePublic только публичные посты
	ScopePublic Scope = "public"
)

// ErrFetchInFlight возвращается, когда выборка этой ленты уже
// выполняется: пагинация строго последовательна.
var ErrFetchInFlight = errors.New("feed fetch is already in flight")

// FetchError типизированная ошибка выборки с человекочитаемой причиной.
type FetchError struct {
	Cause error
	Scope Scope
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("feed fetch failed (scope %s): %v", e.Scope, e.Cause)
}

func (e *FetchError) Unwrap() error {
	return e.Cause
}

// Page одна страница ленты. Cursor указывает на последний пост
// страницы; пустой курсор означает конец ленты.
type Page struct {
	Cursor string
	Items  []models.ContentItem
}

// Service выполняет постраничные выборки ленты.
type Service struct {
	store    remote.Store
	logger   *slog.Logger
	mu       sync.Mutex
	inFlight bool
}

// NewService creates a new batch fetch service
func NewService(store remote.Store, logger *slog.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// ScopeFor выбирает форму запроса по identity пользователя,
// а не по желанию вызывающего кода.
func ScopeFor(id *identity.Identity) Scope {
	switch {
	case id == nil:
		return ScopePublic
	case id.Role == identity.RoleAdmin:
		return ScopeAll
	case id.Role == identity.RoleMember && id.CompanyID != "":
		return ScopeCompany
	default:
		return ScopePublic
	}
}

// ScopeQuery строит базовый запрос ленты для заданной области.
// Используется также подпиской на изменения, чтобы обе стороны
// смотрели на одинаково ограниченный набор постов.
func ScopeQuery(scope Scope, companyID string) remote.Query {
	q := remote.Query{
		OrderBy: remote.FieldDisplayedAt,
		Desc:    true,
	}

	switch scope {
	case ScopeCompany:
		q = q.Where(remote.FieldCompanyID, remote.OpEqual, companyID)
		q = q.Where(remote.FieldVisibility, remote.OpIn, []string{
			string(models.VisibilityCompany),
			string(models.VisibilityNetwork),
		})
	case ScopePublic:
		q = q.Where(remote.FieldVisibility, remote.OpEqual, string(models.VisibilityPublic))
	case ScopeAll:
		// без ограничений
	}

	return q
}

// FetchInitial loads the first page of the feed
func (s *Service) FetchInitial(ctx context.Context, scope Scope, companyID string, pageSize int) (*Page, error) {
	return s.fetch(ctx, scope, companyID, "", pageSize)
}

// FetchNext loads the next page after the given cursor.
// The operation is read-only, so retrying with the same cursor is safe.
func (s *Service) FetchNext(ctx context.Context, scope Scope, companyID, cursor string, pageSize int) (*Page, error) {
	return s.fetch(ctx, scope, companyID, cursor, pageSize)
}

// fetch выполняет одну выборку; одновременно допускается только одна
func (s *Service) fetch(ctx context.Context, scope Scope, companyID, cursor string, pageSize int) (*Page, error) {
	if err := s.begin(); err != nil {
		return nil, err
	}
	defer s.end()

	query := ScopeQuery(scope, companyID)
	query.Limit = pageSize
	query.StartAfter = cursor

	items, err := s.store.FetchItems(ctx, query)
	if err != nil {
		s.logger.Error("feed fetch failed", "scope", scope, "cursor", cursor, "error", err)
		return nil, &FetchError{Scope: scope, Cause: err}
	}

	// Нормализуем каждую запись; нормализация идемпотентна
	for i := range items {
		items[i].Normalize()
	}

	page := &Page{Items: items}
	if len(items) > 0 {
		page.Cursor = items[len(items)-1].ID
	}

	s.logger.Info("feed page fetched", "scope", scope, "count", len(items), "cursor", page.Cursor)
	return page, nil
}

func (s *Service) begin() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.inFlight {
		return ErrFetchInFlight
	}
	s.inFlight = true
	return nil
}

func (s *Service) end() {
	s.mu.Lock()
	s.inFlight = false
	s.mu.Unlock()
}
