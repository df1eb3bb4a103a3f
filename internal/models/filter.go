package models

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// DateRange задает включающий диапазон дат для фильтрации.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// FilterSpec описывает структурированный набор критериев фильтрации
// ленты. Нулевое значение поля означает отсутствие ограничения.
// Две спецификации с одинаковыми значениями полей обязаны давать
// одинаковую каноническую форму независимо от способа построения.
type FilterSpec struct {
	Dates       *DateRange `json:"dates,omitempty"`
	CompanyID   string     `json:"company_id,omitempty"`
	UserID      string     `json:"user_id,omitempty"`
	Account     string     `json:"account,omitempty"`
	AccountType string     `json:"account_type,omitempty"`
	Chain       string     `json:"chain,omitempty"`
	ChainType   string     `json:"chain_type,omitempty"`
	DisplayTag  string     `json:"display_tag,omitempty"`
	PhotoTag    string     `json:"photo_tag,omitempty"`
	Brand       string     `json:"brand,omitempty"`
	Category    string     `json:"category,omitempty"`
	GoalID      string     `json:"goal_id,omitempty"`
	State       string     `json:"state,omitempty"`
	City        string     `json:"city,omitempty"`
	MinLikes    int        `json:"min_likes,omitempty"`
}

// IsEmpty сообщает, что спецификация не накладывает ни одного условия.
func (f *FilterSpec) IsEmpty() bool {
	return len(f.pairs()) == 0
}

// Canonical возвращает каноническую сериализацию спецификации:
// непустые поля как отсортированные пары "ключ=значение", разделенные
// ";". Порядок задания полей на результат не влияет, поэтому
// каноническая форма пригодна как вход для фингерпринта.
func (f *FilterSpec) Canonical() string {
	pairs := f.pairs()
	sort.Strings(pairs)
	return strings.Join(pairs, ";")
}

// pairs собирает непустые поля в пары "ключ=значение".
func (f *FilterSpec) pairs() []string {
	var pairs []string
	add := func(key, value string) {
		if value != "" {
			pairs = append(pairs, key+"="+value)
		}
	}

	add("account", f.Account)
	add("account_type", f.AccountType)
	add("brand", f.Brand)
	add("category", f.Category)
	add("chain", f.Chain)
	add("chain_type", f.ChainType)
	add("city", f.City)
	add("company_id", f.CompanyID)
	add("display_tag", f.DisplayTag)
	add("goal_id", f.GoalID)
	add("photo_tag", f.PhotoTag)
	add("state", f.State)
	add("user_id", f.UserID)
	if f.MinLikes > 0 {
		add("min_likes", strconv.Itoa(f.MinLikes))
	}
	if f.Dates != nil {
		add("dates", fmt.Sprintf("%d-%d", f.Dates.Start.UnixMilli(), f.Dates.End.UnixMilli()))
	}

	return pairs
}
