package cli

import (
	"strings"
	"time"

	"github.com/iudanet/shelfsync/internal/models"
)

// printItems выводит посты ленты в человекочитаемом виде
func (c *Cli) printItems(items []models.ContentItem) {
	if len(items) == 0 {
		c.io.Println("The feed is empty.")
		return
	}

	for i, item := range items {
		c.io.Printf("%d. %s\n", i+1, itemTitle(&item))
		c.io.Printf("   ID:        %s\n", item.ID)
		c.io.Printf("   Displayed: %s\n", item.OrderingKey().Format("2006-01-02 15:04"))
		if item.Account != "" {
			c.io.Printf("   Account:   %s\n", item.Account)
		}
		if len(item.Brands) > 0 {
			c.io.Printf("   Brands:    %s\n", strings.Join(item.Brands, ", "))
		}
		c.io.Printf("   Likes:     %d", len(item.Likes))
		if item.LikedBy(c.who.UserID) {
			c.io.Printf(" (including yours)")
		}
		c.io.Println()
		c.io.Println()
	}
}

// itemTitle возвращает заголовок поста для списка
func itemTitle(item *models.ContentItem) string {
	if item.Description != "" {
		return item.Description
	}
	if item.Account != "" {
		return item.Account
	}
	return "(no description)"
}

// parseDate разбирает дату фильтра в формате YYYY-MM-DD
func parseDate(value string) (time.Time, error) {
	return time.Parse("2006-01-02", value)
}
