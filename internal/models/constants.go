package models

// PostCategory константы категорий постов
const (
	PostCategoryJobPosting    = "job_posting"
	PostCategoryProductUpdate = "product_update"
	PostCategoryCompanyEvent  = "company_event"
)

// ValidPostCategories список валидных категорий постов
var ValidPostCategories = map[string]struct{}{
	PostCategoryJobPosting:    {},
	PostCategoryProductUpdate: {},
	PostCategoryCompanyEvent:  {},
}

// Действия, которые сервер пишет сам. Остальные приходят от клиента как есть.
const (
	ActionSharePrefix    = "share_"
	ActionSentToWhatsApp = "sent_to_whatsapp"
)
