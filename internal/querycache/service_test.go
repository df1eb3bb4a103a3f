package querycache

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/shelfsync/internal/cache"
	"github.com/iudanet/shelfsync/internal/models"
	"github.com/iudanet/shelfsync/internal/remote"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}

func makeItem(id string, offsetMinutes int) models.ContentItem {
	displayed := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC).Add(time.Duration(offsetMinutes) * time.Minute)
	item := models.ContentItem{
		ID:          id,
		DisplayedAt: &displayed,
		CreatedAt:   displayed.Add(-time.Hour),
		UpdatedAt:   displayed,
	}
	item.Normalize()
	return item
}

func TestFingerprint_Deterministic(t *testing.T) {
	a := models.FilterSpec{DisplayTag: "#beer", State: "CA", CompanyID: "company-1"}
	b := models.FilterSpec{CompanyID: "company-1", State: "CA", DisplayTag: "#beer"}

	assert.Equal(t, Fingerprint(&a), Fingerprint(&b))
	assert.Len(t, Fingerprint(&a), 64)
}

func TestFingerprint_DistinctSpecs(t *testing.T) {
	a := models.FilterSpec{DisplayTag: "#beer"}
	b := models.FilterSpec{PhotoTag: "#beer"}

	assert.NotEqual(t, Fingerprint(&a), Fingerprint(&b))
}

func TestBuildQuery(t *testing.T) {
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC)

	spec := models.FilterSpec{
		CompanyID:  "company-1",
		DisplayTag: "#beer",
		MinLikes:   3,
		Dates:      &models.DateRange{Start: start, End: end},
	}

	q := BuildQuery(&spec)

	assert.Equal(t, remote.FieldDisplayedAt, q.OrderBy)
	assert.True(t, q.Desc)
	require.Len(t, q.Conditions, 5)
	assert.Contains(t, q.Conditions, remote.Condition{Field: remote.FieldCompanyID, Op: remote.OpEqual, Value: "company-1"})
	assert.Contains(t, q.Conditions, remote.Condition{Field: remote.FieldDisplayTags, Op: remote.OpArrayContains, Value: "#beer"})
	assert.Contains(t, q.Conditions, remote.Condition{Field: remote.FieldLikeCount, Op: remote.OpGreaterOrEqual, Value: 3})
	assert.Contains(t, q.Conditions, remote.Condition{Field: remote.FieldDisplayedAt, Op: remote.OpGreaterOrEqual, Value: start})
	assert.Contains(t, q.Conditions, remote.Condition{Field: remote.FieldDisplayedAt, Op: remote.OpLessOrEqual, Value: end})
}

func TestBuildQuery_EmptySpec(t *testing.T) {
	q := BuildQuery(&models.FilterSpec{})
	assert.Empty(t, q.Conditions)
}

// newTestService собирает сервис с подменой часов и bolt-независимым
// кешем на моках
func newTestService(store *remote.StoreMock, filterCache *cache.StorageMock, newest time.Time, now time.Time) *Service {
	svc := NewService(store, filterCache, func() time.Time { return newest }, testLogger())
	svc.now = func() time.Time { return now }
	return svc
}

func TestService_GetOrFetch_CacheMissThenHit(t *testing.T) {
	ctx := context.Background()
	items := []models.ContentItem{makeItem("1", 1), makeItem("2", 2)}
	fetchedAt := time.Date(2024, 5, 10, 13, 0, 0, 0, time.UTC)
	newest := time.Date(2024, 5, 10, 12, 2, 0, 0, time.UTC)

	sets := make(map[string]*cache.FilterSet)
	filterCache := &cache.StorageMock{
		GetFilterSetFunc: func(ctx context.Context, fingerprint string) (*cache.FilterSet, error) {
			if set, ok := sets[fingerprint]; ok {
				return set, nil
			}
			return nil, cache.ErrFilterSetNotFound
		},
		PutFilterSetFunc: func(ctx context.Context, fingerprint string, items []models.ContentItem, fetchedAt time.Time) error {
			sets[fingerprint] = &cache.FilterSet{Fingerprint: fingerprint, Items: items, FetchedAt: fetchedAt}
			return nil
		},
	}
	store := &remote.StoreMock{
		FetchItemsFunc: func(ctx context.Context, query remote.Query) ([]models.ContentItem, error) {
			return items, nil
		},
	}

	svc := newTestService(store, filterCache, newest, fetchedAt)
	spec := models.FilterSpec{DisplayTag: "#beer"}

	// Первый вызов идет в удаленное хранилище
	got, err := svc.GetOrFetch(ctx, spec)
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Len(t, store.FetchItemsCalls(), 1)

	// Новых постов не появилось - второй вызов обслуживается из кеша
	got, err = svc.GetOrFetch(ctx, spec)
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Len(t, store.FetchItemsCalls(), 1, "cache hit must not issue a remote query")
}

func TestService_GetOrFetch_StaleEntryRefetched(t *testing.T) {
	ctx := context.Background()
	fetchedAt := time.Date(2024, 5, 10, 13, 0, 0, 0, time.UTC)
	// Новый пост прибыл после построения кеша
	newest := fetchedAt.Add(time.Minute)

	filterCache := &cache.StorageMock{
		GetFilterSetFunc: func(ctx context.Context, fingerprint string) (*cache.FilterSet, error) {
			return &cache.FilterSet{
				Fingerprint: fingerprint,
				Items:       []models.ContentItem{makeItem("old", 1)},
				FetchedAt:   fetchedAt,
			}, nil
		},
		PutFilterSetFunc: func(ctx context.Context, fingerprint string, items []models.ContentItem, fetchedAt time.Time) error {
			return nil
		},
	}
	store := &remote.StoreMock{
		FetchItemsFunc: func(ctx context.Context, query remote.Query) ([]models.ContentItem, error) {
			return []models.ContentItem{makeItem("fresh", 2)}, nil
		},
	}

	svc := newTestService(store, filterCache, newest, newest.Add(time.Minute))

	got, err := svc.GetOrFetch(ctx, models.FilterSpec{DisplayTag: "#beer"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "fresh", got[0].ID)
	assert.Len(t, store.FetchItemsCalls(), 1)
}

func TestService_GetOrFetch_FetchErrorSurfaces(t *testing.T) {
	ctx := context.Background()
	cause := errors.New("store unavailable")

	filterCache := &cache.StorageMock{
		GetFilterSetFunc: func(ctx context.Context, fingerprint string) (*cache.FilterSet, error) {
			return nil, cache.ErrFilterSetNotFound
		},
	}
	store := &remote.StoreMock{
		FetchItemsFunc: func(ctx context.Context, query remote.Query) ([]models.ContentItem, error) {
			return nil, cause
		},
	}

	svc := newTestService(store, filterCache, time.Time{}, time.Now())

	_, err := svc.GetOrFetch(ctx, models.FilterSpec{DisplayTag: "#beer"})
	assert.ErrorIs(t, err, cause)
}

func TestService_GetOrFetch_CacheFailureDegrades(t *testing.T) {
	ctx := context.Background()

	filterCache := &cache.StorageMock{
		GetFilterSetFunc: func(ctx context.Context, fingerprint string) (*cache.FilterSet, error) {
			return nil, errors.New("cache corrupted")
		},
		PutFilterSetFunc: func(ctx context.Context, fingerprint string, items []models.ContentItem, fetchedAt time.Time) error {
			return errors.New("cache unavailable")
		},
	}
	store := &remote.StoreMock{
		FetchItemsFunc: func(ctx context.Context, query remote.Query) ([]models.ContentItem, error) {
			return []models.ContentItem{makeItem("1", 1)}, nil
		},
	}

	svc := newTestService(store, filterCache, time.Time{}, time.Now())

	// Недоступный кеш не блокирует живой путь
	got, err := svc.GetOrFetch(ctx, models.FilterSpec{DisplayTag: "#beer"})
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
