// Package remote defines the query and subscription contract of the
// remote document store. The store itself is an external collaborator;
// this package only describes what the sync core needs from it.
package remote

import (
	"context"
	"errors"

	"github.com/iudanet/shelfsync/internal/models"
)

//go:generate moq -out store_mock.go . Store

// Op оператор условия запроса.
type Op string

const (
	OpEqual          Op = "=="
	OpIn             Op = "in"
	OpArrayContains  Op = "array-contains"
	OpGreaterOrEqual Op = ">="
	OpLessOrEqual    Op = "<="
	OpGreaterThan    Op = ">"
)

// Condition одно условие запроса к удаленному хранилищу.
type Condition struct {
	Value any    `json:"value"`
	Field string `json:"field"`
	Op    Op     `json:"op"`
}

// Query описывает запрос к коллекции постов: набор условий,
// сортировка, ограничение размера страницы и курсор пагинации.
type Query struct {
	Conditions []Condition `json:"conditions"`
	OrderBy    string      `json:"order_by"`
	Desc       bool        `json:"desc"`
	Limit      int         `json:"limit"`
	StartAfter string      `json:"start_after"` // id последнего поста предыдущей страницы
}

// Where добавляет условие к запросу и возвращает копию.
func (q Query) Where(field string, op Op, value any) Query {
	conditions := make([]Condition, 0, len(q.Conditions)+1)
	conditions = append(conditions, q.Conditions...)
	conditions = append(conditions, Condition{Field: field, Op: op, Value: value})
	q.Conditions = conditions
	return q
}

// ErrSubscriptionClosed возвращается при попытке использовать
// отписанную подписку.
var ErrSubscriptionClosed = errors.New("subscription is closed")

// Subscription представляет активную подписку на изменения.
type Subscription interface {
	// Unsubscribe останавливает подписку. После возврата управления
	// callbacks больше не вызываются.
	Unsubscribe()
}

// Store defines the remote document store operations used by the core
type Store interface {
	// FetchItems executes a query and returns matching items
	FetchItems(ctx context.Context, query Query) ([]models.ContentItem, error)

	// SchemaVersion returns the remote schema version token
	SchemaVersion(ctx context.Context) (string, error)

	// Subscribe attaches a change subscription for items matching the
	// query. Each reported batch is a list of add/modify/remove deltas.
	// onError is called on an unrecoverable subscription fault, after
	// which no further batches are delivered.
	Subscribe(ctx context.Context, query Query, onBatch func(deltas []models.Delta), onError func(err error)) (Subscription, error)
}
