package httpstore

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/shelfsync/internal/models"
	"github.com/iudanet/shelfsync/internal/remote"
	"github.com/iudanet/shelfsync/pkg/api"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}

func TestClient_FetchItems(t *testing.T) {
	var gotReq api.QueryRequest
	var gotAuth string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/v1/feed/query", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		resp := api.QueryResponse{Items: []models.ContentItem{
			{ID: "item-1", Description: "endcap display"},
			{ID: "item-2", Description: "window display"},
		}}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-token", testLogger())

	query := remote.Query{OrderBy: remote.FieldDisplayedAt, Desc: true, Limit: 25}.
		Where(remote.FieldVisibility, remote.OpEqual, models.VisibilityPublic)

	items, err := client.FetchItems(context.Background(), query)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "item-1", items[0].ID)

	assert.Equal(t, "Bearer test-token", gotAuth)
	assert.Equal(t, remote.FieldDisplayedAt, gotReq.OrderBy)
	assert.True(t, gotReq.Desc)
	assert.Equal(t, 25, gotReq.Limit)
	require.Len(t, gotReq.Conditions, 1)
	assert.Equal(t, remote.FieldVisibility, gotReq.Conditions[0].Field)
	assert.Equal(t, "==", gotReq.Conditions[0].Op)
}

func TestClient_FetchItems_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_ = json.NewEncoder(w).Encode(api.ErrorResponse{Error: "access denied"})
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-token", testLogger())

	_, err := client.FetchItems(context.Background(), remote.Query{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "access denied")
	assert.Contains(t, err.Error(), "403")
}

func TestClient_SchemaVersion(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/api/v1/feed/schema", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(api.SchemaResponse{Version: "v3"})
	}))
	defer server.Close()

	client := NewClient(server.URL, "", testLogger())

	version, err := client.SchemaVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "v3", version)
}

func TestClient_Subscribe_DeliversBatches(t *testing.T) {
	asOf := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	var polls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/feed/changes", r.URL.Path)

		var req api.ChangesRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		resp := api.ChangesResponse{AsOf: asOf}
		// Первый опрос отдает изменение, дальше лента пустая; проверяем
		// что граница since сдвинулась на время первого батча
		if polls.Add(1) == 1 {
			resp.Changes = []api.Change{
				{Type: "modified", ID: "item-1", Item: &models.ContentItem{ID: "item-1"}},
			}
		} else {
			require.Equal(t, asOf.UnixMilli(), req.Since.UnixMilli())
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient(server.URL, "", testLogger())
	client.PollInterval = 10 * time.Millisecond

	batches := make(chan []models.Delta, 8)

	sub, err := client.Subscribe(context.Background(), remote.Query{},
		func(deltas []models.Delta) { batches <- deltas },
		func(err error) { t.Errorf("unexpected subscription error: %v", err) },
	)
	require.NoError(t, err)

	select {
	case deltas := <-batches:
		require.Len(t, deltas, 1)
		assert.Equal(t, models.ChangeModified, deltas[0].Type)
		assert.Equal(t, "item-1", deltas[0].ID)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for change batch")
	}

	// Дожидаемся хотя бы одного пустого опроса с продвинутой границей
	require.Eventually(t, func() bool { return polls.Load() >= 2 }, 2*time.Second, 10*time.Millisecond)

	sub.Unsubscribe()
	after := polls.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, after, polls.Load(), "polling must stop after Unsubscribe")
}

func TestClient_Subscribe_SinceFromQuery(t *testing.T) {
	lastSeen := time.Date(2025, 5, 20, 8, 0, 0, 0, time.UTC)
	got := make(chan api.ChangesRequest, 1)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req api.ChangesRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		select {
		case got <- req:
		default:
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(api.ChangesResponse{AsOf: time.Now()})
	}))
	defer server.Close()

	client := NewClient(server.URL, "", testLogger())
	client.PollInterval = 10 * time.Millisecond

	query := remote.Query{}.
		Where(remote.FieldVisibility, remote.OpEqual, models.VisibilityPublic).
		Where(remote.FieldUpdatedAt, remote.OpGreaterThan, lastSeen)

	sub, err := client.Subscribe(context.Background(), query, func([]models.Delta) {}, func(error) {})
	require.NoError(t, err)
	defer sub.Unsubscribe()

	select {
	case req := <-got:
		// Нижняя граница по updated_at уходит отдельным полем, не условием
		assert.Equal(t, lastSeen.UnixMilli(), req.Since.UnixMilli())
		require.Len(t, req.Conditions, 1)
		assert.Equal(t, remote.FieldVisibility, req.Conditions[0].Field)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for changes request")
	}
}

func TestClient_Subscribe_FatalAfterRepeatedFailures(t *testing.T) {
	var polls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		polls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, "", testLogger())
	client.PollInterval = 10 * time.Millisecond
	client.MaxPollFailures = 3

	errs := make(chan error, 1)

	sub, err := client.Subscribe(context.Background(), remote.Query{},
		func([]models.Delta) { t.Error("unexpected batch") },
		func(err error) { errs <- err },
	)
	require.NoError(t, err)

	select {
	case err := <-errs:
		require.Error(t, err)
		assert.Contains(t, err.Error(), "changes feed broken")
		// Обработчик ошибки может синхронно снять подписку
		sub.Unsubscribe()
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for fatal subscription error")
	}

	assert.EqualValues(t, 3, polls.Load())
}

func TestClient_Subscribe_UnsubscribeIdempotent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(api.ChangesResponse{AsOf: time.Now()})
	}))
	defer server.Close()

	client := NewClient(server.URL, "", testLogger())
	client.PollInterval = 10 * time.Millisecond

	sub, err := client.Subscribe(context.Background(), remote.Query{}, func([]models.Delta) {}, func(error) {})
	require.NoError(t, err)

	sub.Unsubscribe()
	sub.Unsubscribe()
}
