package models

import "time"

// Visibility определяет область видимости поста.
type Visibility string

const (
	VisibilityPublic  Visibility = "public"  // виден всем
	VisibilityCompany Visibility = "company" // виден только внутри компании
	VisibilityNetwork Visibility = "network" // виден внутри сети компаний
)

// ContentItem представляет один пост ленты (фото выкладки).
// Идентификатор назначается удаленным хранилищем и стабилен;
// по нему выполняется дедупликация во всех уровнях кеша.
type ContentItem struct {
	DisplayedAt  *time.Time `json:"displayed_at"`  // DisplayedAt ключ сортировки ленты (может отсутствовать)
	CreatedAt    time.Time  `json:"created_at"`    // CreatedAt время создания, запасной ключ сортировки
	UpdatedAt    time.Time  `json:"updated_at"`    // UpdatedAt время последнего изменения (change timestamp для подписки)
	ID           string     `json:"id"`            // ID уникальный идентификатор поста
	CompanyID    string     `json:"company_id"`    // CompanyID компания-владелец
	UserID       string     `json:"user_id"`       // UserID автор поста
	Visibility   Visibility `json:"visibility"`    // Visibility область видимости
	Description  string     `json:"description"`   // Description свободный текст
	PhotoURL     string     `json:"photo_url"`     // PhotoURL ссылка на изображение
	Account      string     `json:"account"`       // Account торговая точка
	AccountType  string     `json:"account_type"`  // AccountType тип точки
	Chain        string     `json:"chain"`         // Chain торговая сеть
	ChainType    string     `json:"chain_type"`    // ChainType тип сети
	Category     string     `json:"category"`      // Category категория продукта
	GoalID       string     `json:"goal_id"`       // GoalID ссылка на цель/задачу
	State        string     `json:"state"`         // State регион
	City         string     `json:"city"`          // City город
	DisplayTags  []string   `json:"display_tags"`  // DisplayTags теги выкладки
	PhotoTags    []string   `json:"photo_tags"`    // PhotoTags теги фото
	Brands       []string   `json:"brands"`        // Brands бренды на фото
	Likes        []string   `json:"likes"`         // Likes идентификаторы лайкнувших пользователей
	CommentCount int        `json:"comment_count"` // CommentCount количество комментариев
	Starred      bool       `json:"starred"`       // Starred локальная пометка "избранное"
}

// OrderingKey возвращает ключ сортировки ленты.
// Используется DisplayedAt, при его отсутствии - CreatedAt.
func (i *ContentItem) OrderingKey() time.Time {
	if i.DisplayedAt != nil {
		return *i.DisplayedAt
	}
	return i.CreatedAt
}

// NewerThan сравнивает два поста по времени изменения.
// Возвращает true, если текущая версия новее, чем other.
func (i *ContentItem) NewerThan(other *ContentItem) bool {
	return i.UpdatedAt.After(other.UpdatedAt)
}

// Normalize приводит пост к каноническому виду: nil-слайсы заменяются
// пустыми, видимость по умолчанию public, временные метки усекаются до
// миллисекунд (гранулярность удаленного хранилища).
// Операция идемпотентна: Normalize(Normalize(x)) == Normalize(x).
func (i *ContentItem) Normalize() {
	if i.Visibility == "" {
		i.Visibility = VisibilityPublic
	}
	if i.DisplayTags == nil {
		i.DisplayTags = []string{}
	}
	if i.PhotoTags == nil {
		i.PhotoTags = []string{}
	}
	if i.Brands == nil {
		i.Brands = []string{}
	}
	if i.Likes == nil {
		i.Likes = []string{}
	}
	if i.DisplayedAt != nil {
		t := i.DisplayedAt.Truncate(time.Millisecond)
		i.DisplayedAt = &t
	}
	i.CreatedAt = i.CreatedAt.Truncate(time.Millisecond)
	i.UpdatedAt = i.UpdatedAt.Truncate(time.Millisecond)
}

// Clone создает глубокую копию поста.
func (i *ContentItem) Clone() *ContentItem {
	c := *i
	if i.DisplayedAt != nil {
		t := *i.DisplayedAt
		c.DisplayedAt = &t
	}
	c.DisplayTags = append([]string(nil), i.DisplayTags...)
	c.PhotoTags = append([]string(nil), i.PhotoTags...)
	c.Brands = append([]string(nil), i.Brands...)
	c.Likes = append([]string(nil), i.Likes...)
	return &c
}

// LikedBy проверяет, лайкнул ли пользователь этот пост.
func (i *ContentItem) LikedBy(userID string) bool {
	for _, id := range i.Likes {
		if id == userID {
			return true
		}
	}
	return false
}
