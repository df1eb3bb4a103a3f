// Package httpstore implements the remote document store contract
// over the feed service's HTTP JSON API.
package httpstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/shelfsync/internal/models"
	"github.com/iudanet/shelfsync/internal/remote"
	"github.com/iudanet/shelfsync/pkg/api"
)

const (
	defaultPollInterval    = 2 * time.Second
	defaultMaxPollFailures = 5
)

// Client представляет HTTP клиент удаленного хранилища постов
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	logger     *slog.Logger

	// PollInterval интервал опроса ленты изменений
	PollInterval time.Duration
	// MaxPollFailures число подряд неудачных опросов, после которого
	// подписка считается невосстановимо сломанной
	MaxPollFailures int
}

// NewClient создает новый клиент хранилища
func NewClient(baseURL, token string, logger *slog.Logger) *Client {
	return &Client{
		baseURL:         baseURL,
		token:           token,
		logger:          logger,
		PollInterval:    defaultPollInterval,
		MaxPollFailures: defaultMaxPollFailures,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			// Настройка обработки редиректов
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовки Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// FetchItems выполняет выборку постов по запросу
func (c *Client) FetchItems(ctx context.Context, query remote.Query) ([]models.ContentItem, error) {
	req := api.QueryRequest{
		Conditions: toAPIConditions(query.Conditions),
		OrderBy:    query.OrderBy,
		Desc:       query.Desc,
		Limit:      query.Limit,
		StartAfter: query.StartAfter,
	}

	var resp api.QueryResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/feed/query", req, &resp); err != nil {
		return nil, fmt.Errorf("feed query request failed: %w", err)
	}

	return resp.Items, nil
}

// SchemaVersion возвращает маркер версии схемы коллекции
func (c *Client) SchemaVersion(ctx context.Context) (string, error) {
	var resp api.SchemaResponse
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/feed/schema", nil, &resp); err != nil {
		return "", fmt.Errorf("schema version request failed: %w", err)
	}
	return resp.Version, nil
}

// Subscribe подписывается на изменения через long-poll ленты
// изменений. Отдельные неудачные опросы переживаются молча (с
// логированием); после MaxPollFailures подряд подписка сообщает о
// невосстановимом сбое через onError и останавливается.
func (c *Client) Subscribe(ctx context.Context, query remote.Query, onBatch func(deltas []models.Delta), onError func(err error)) (remote.Subscription, error) {
	since, conditions := splitSince(query.Conditions)

	sub := &subscription{
		id:   uuid.NewString(),
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}

	c.logger.Debug("subscribed to change feed", "subscription_id", sub.id, "since", since)
	go c.poll(ctx, sub, since, conditions, onBatch, onError)

	return sub, nil
}

// poll крутит цикл опроса до остановки подписки
func (c *Client) poll(ctx context.Context, sub *subscription, since time.Time, conditions []api.QueryCondition, onBatch func([]models.Delta), onError func(error)) {
	defer close(sub.done)

	ticker := time.NewTicker(c.PollInterval)
	defer ticker.Stop()

	failures := 0

	for {
		select {
		case <-sub.stop:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		req := api.ChangesRequest{Conditions: conditions, Since: since}

		var resp api.ChangesResponse
		if err := c.doRequest(ctx, http.MethodPost, "/api/v1/feed/changes", req, &resp); err != nil {
			failures++
			c.logger.Warn("changes poll failed",
				"subscription_id", sub.id, "failures", failures, "error", err)
			if failures >= c.MaxPollFailures {
				// Колбек об ошибке уходит из отдельной горутины:
				// обработчик может синхронно вызвать Unsubscribe
				go onError(fmt.Errorf("changes feed broken after %d attempts: %w", failures, err))
				return
			}
			continue
		}
		failures = 0

		if len(resp.Changes) > 0 {
			onBatch(toDeltas(resp.Changes))
		}
		if !resp.AsOf.IsZero() {
			since = resp.AsOf
		}
	}
}

// subscription активная long-poll подписка
type subscription struct {
	id   string
	stop chan struct{}
	done chan struct{}
}

// Unsubscribe останавливает опрос и дожидается выхода горутины:
// после возврата колбеки не вызываются.
func (s *subscription) Unsubscribe() {
	select {
	case <-s.stop:
		// уже остановлена
	default:
		close(s.stop)
	}
	<-s.done
}

// splitSince извлекает нижнюю границу по времени изменения из условий
// запроса; остальные условия передаются ленте изменений как есть.
func splitSince(conditions []remote.Condition) (time.Time, []api.QueryCondition) {
	var since time.Time
	rest := make([]api.QueryCondition, 0, len(conditions))

	for _, cond := range conditions {
		if cond.Field == remote.FieldUpdatedAt && cond.Op == remote.OpGreaterThan {
			if ts, ok := cond.Value.(time.Time); ok {
				since = ts
				continue
			}
		}
		rest = append(rest, api.QueryCondition{Field: cond.Field, Op: string(cond.Op), Value: cond.Value})
	}

	return since, rest
}

// toAPIConditions конвертирует условия запроса в wire формат
func toAPIConditions(conditions []remote.Condition) []api.QueryCondition {
	out := make([]api.QueryCondition, 0, len(conditions))
	for _, cond := range conditions {
		out = append(out, api.QueryCondition{Field: cond.Field, Op: string(cond.Op), Value: cond.Value})
	}
	return out
}

// toDeltas конвертирует wire изменения во внутренние дельты
func toDeltas(changes []api.Change) []models.Delta {
	deltas := make([]models.Delta, 0, len(changes))
	for _, change := range changes {
		deltas = append(deltas, models.Delta{
			Type: models.ChangeType(change.Type),
			ID:   change.ID,
			Item: change.Item,
		})
	}
	return deltas
}

// doRequest выполняет HTTP запрос
func (c *Client) doRequest(ctx context.Context, method, path string, body, result any) error {
	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error != "" {
			return fmt.Errorf("server error (%d): %s", resp.StatusCode, errResp.Error)
		}
		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	// Декодируем успешный ответ
	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to unmarshal response: %w", err)
		}
	}

	return nil
}
