package domain

// SessionState шаг пошагового диалога с админом
type SessionState string

const (
	StateAwaitingProductName        SessionState = "awaiting_product_name"
	StateAwaitingProductDescription SessionState = "awaiting_product_description"
	StateAwaitingProductPrice       SessionState = "awaiting_product_price"
	StateAwaitingProductPhoto       SessionState = "awaiting_product_photo"
)

// Session состояние диалога добавления товара для одного чата
// Хранится в session store (Redis или in-memory) как JSON, живёт ограниченное время
type Session struct {
	State SessionState `json:"state"`
	Draft ProductDraft `json:"draft"`
}
