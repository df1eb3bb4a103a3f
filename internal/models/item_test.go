package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentItem_OrderingKey(t *testing.T) {
	displayed := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	created := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		displayedAt *time.Time
		want        time.Time
	}{
		{
			name:        "displayed timestamp present",
			displayedAt: &displayed,
			want:        displayed,
		},
		{
			name:        "fallback to created timestamp",
			displayedAt: nil,
			want:        created,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := &ContentItem{
				ID:          "item-1",
				DisplayedAt: tt.displayedAt,
				CreatedAt:   created,
			}
			assert.Equal(t, tt.want, item.OrderingKey())
		})
	}
}

func TestContentItem_NewerThan(t *testing.T) {
	older := &ContentItem{ID: "a", UpdatedAt: time.UnixMilli(1000)}
	newer := &ContentItem{ID: "a", UpdatedAt: time.UnixMilli(2000)}

	assert.True(t, newer.NewerThan(older))
	assert.False(t, older.NewerThan(newer))
	assert.False(t, older.NewerThan(older))
}

func TestContentItem_Normalize(t *testing.T) {
	displayed := time.Date(2024, 5, 10, 12, 0, 0, 123456789, time.UTC)

	item := &ContentItem{
		ID:          "item-1",
		DisplayedAt: &displayed,
		CreatedAt:   time.Date(2024, 5, 1, 8, 0, 0, 999999, time.UTC),
		UpdatedAt:   time.Date(2024, 5, 10, 12, 0, 0, 999999, time.UTC),
	}

	item.Normalize()

	// Умолчания заполнены
	assert.Equal(t, VisibilityPublic, item.Visibility)
	assert.NotNil(t, item.DisplayTags)
	assert.NotNil(t, item.PhotoTags)
	assert.NotNil(t, item.Brands)
	assert.NotNil(t, item.Likes)

	// Метки времени усечены до миллисекунд
	assert.Equal(t, int64(0), item.DisplayedAt.UnixNano()%int64(time.Millisecond))
	assert.Equal(t, int64(0), item.CreatedAt.UnixNano()%int64(time.Millisecond))
	assert.Equal(t, int64(0), item.UpdatedAt.UnixNano()%int64(time.Millisecond))
}

func TestContentItem_Normalize_Idempotent(t *testing.T) {
	displayed := time.Date(2024, 5, 10, 12, 0, 0, 123456789, time.UTC)

	item := &ContentItem{
		ID:          "item-1",
		Visibility:  VisibilityCompany,
		DisplayedAt: &displayed,
		DisplayTags: []string{"#endcap"},
		Likes:       []string{"user-1"},
	}

	item.Normalize()
	first := item.Clone()

	item.Normalize()
	assert.Equal(t, first, item)
}

func TestContentItem_Clone(t *testing.T) {
	displayed := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

	original := &ContentItem{
		ID:          "item-1",
		DisplayedAt: &displayed,
		DisplayTags: []string{"#endcap"},
		Likes:       []string{"user-1"},
	}

	clone := original.Clone()
	require.Equal(t, original, clone)

	// Изменение копии не затрагивает оригинал
	clone.DisplayTags[0] = "#cooler"
	clone.Likes = append(clone.Likes, "user-2")
	*clone.DisplayedAt = displayed.Add(time.Hour)

	assert.Equal(t, "#endcap", original.DisplayTags[0])
	assert.Len(t, original.Likes, 1)
	assert.Equal(t, displayed, *original.DisplayedAt)
}

func TestContentItem_LikedBy(t *testing.T) {
	item := &ContentItem{Likes: []string{"user-1", "user-2"}}

	assert.True(t, item.LikedBy("user-1"))
	assert.False(t, item.LikedBy("user-3"))
}
