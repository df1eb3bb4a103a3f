package models

// ChangeType тип изменения, сообщаемого подпиской удаленного хранилища.
type ChangeType string

const (
	ChangeAdded    ChangeType = "added"
	ChangeModified ChangeType = "modified"
	ChangeRemoved  ChangeType = "removed"
)

// Delta представляет одно изменение из real-time подписки.
// Для added/modified Item содержит полный нормализованный пост,
// для removed заполнен только ID.
type Delta struct {
	Item *ContentItem `json:"item,omitempty"`
	ID   string       `json:"id"`
	Type ChangeType   `json:"type"`
}
