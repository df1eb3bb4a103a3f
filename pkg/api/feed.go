package api

import (
	"time"

	"github.com/iudanet/shelfsync/internal/models"
)

// QueryCondition представляет одно условие запроса к коллекции постов
type QueryCondition struct {
	Value any    `json:"value"`
	Field string `json:"field"`
	Op    string `json:"op"` // "==", "in", "array-contains", ">=", "<=", ">"
}

// QueryRequest представляет запрос выборки постов
type QueryRequest struct {
	Conditions []QueryCondition `json:"conditions"`
	OrderBy    string           `json:"order_by"`
	Desc       bool             `json:"desc"`
	Limit      int              `json:"limit"`
	StartAfter string           `json:"start_after,omitempty"` // id последнего поста предыдущей страницы
}

// QueryResponse представляет страницу постов
type QueryResponse struct {
	Items []models.ContentItem `json:"items"`
}

// Change представляет одно изменение в ленте изменений
type Change struct {
	Item *models.ContentItem `json:"item,omitempty"` // полный пост для added/modified
	ID   string              `json:"id"`
	Type string              `json:"type"` // "added", "modified", "removed"
}

// ChangesRequest представляет запрос ленты изменений
type ChangesRequest struct {
	Conditions []QueryCondition `json:"conditions"`
	Since      time.Time        `json:"since"` // нижняя граница по времени изменения
}

// ChangesResponse представляет батч изменений
type ChangesResponse struct {
	Changes []Change  `json:"changes"`
	AsOf    time.Time `json:"as_of"` // серверное время формирования батча
}

// SchemaResponse представляет маркер версии схемы коллекции
type SchemaResponse struct {
	Version string `json:"version"`
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // описание ошибки
	Message string `json:"message,omitempty"` // дополнительное сообщение
}
