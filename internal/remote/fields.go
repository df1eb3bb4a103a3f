package remote

// Имена полей коллекции постов в удаленном хранилище.
// Используются сервисом пагинации, фильтрованными запросами и
// подпиской на изменения.
const (
	FieldDisplayedAt = "displayed_at"
	FieldUpdatedAt   = "updated_at"
	FieldCompanyID   = "company_id"
	FieldUserID      = "user_id"
	FieldVisibility  = "visibility"
	FieldAccount     = "account"
	FieldAccountType = "account_type"
	FieldChain       = "chain"
	FieldChainType   = "chain_type"
	FieldDisplayTags = "display_tags"
	FieldPhotoTags   = "photo_tags"
	FieldBrands      = "brands"
	FieldCategory    = "category"
	FieldGoalID      = "goal_id"
	FieldState       = "state"
	FieldCity        = "city"
	FieldLikeCount   = "like_count"
)
