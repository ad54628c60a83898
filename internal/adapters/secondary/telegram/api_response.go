package telegram

// APIResponse базовая часть любого ответа Telegram Bot API
type APIResponse struct {
	OK          bool   `json:"ok"`
	ErrorCode   int    `json:"error_code,omitempty"`
	Description string `json:"description,omitempty"`
}

// ChatInfo чат в ответах API
type ChatInfo struct {
	ID int64 `json:"id"`
}

// truncateString обрезает строку для логов
func truncateString(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
