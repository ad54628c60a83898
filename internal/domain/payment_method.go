package domain

// PaymentMethodType тип способа оплаты (закрытый набор)
type PaymentMethodType string

const (
	PaymentMethodTypeCard PaymentMethodType = "card"
	PaymentMethodTypeQR   PaymentMethodType = "qr"
)

// IsValid проверяет, что тип входит в закрытый набор
func (t PaymentMethodType) IsValid() bool {
	switch t {
	case PaymentMethodTypeCard, PaymentMethodTypeQR:
		return true
	default:
		return false
	}
}

// PaymentMethodStatus статус способа оплаты
type PaymentMethodStatus string

const (
	PaymentMethodStatusActive  PaymentMethodStatus = "active"
	PaymentMethodStatusRetired PaymentMethodStatus = "retired"
)

// PaymentMethod способ оплаты с реквизитами
// Способы оплаты никогда не удаляются физически - заказы ссылаются на них по имени
type PaymentMethod struct {
	ID      int64               `json:"id" db:"id"`
	Name    string              `json:"name" db:"name"`
	Type    PaymentMethodType   `json:"type" db:"type"`
	Details string              `json:"details" db:"details"` // реквизиты для оплаты (свободный текст)
	Status  PaymentMethodStatus `json:"status" db:"status"`
}

// IsActive способ оплаты доступен для выбора
func (m *PaymentMethod) IsActive() bool {
	return m.Status == PaymentMethodStatusActive
}

// DefaultPaymentMethods стандартные способы оплаты, добавляются при первом запуске
func DefaultPaymentMethods() []PaymentMethod {
	return []PaymentMethod{
		{Name: "QR НСПК", Type: PaymentMethodTypeQR, Details: "Детали организации для QR кода", Status: PaymentMethodStatusActive},
		{Name: "Сбербанк", Type: PaymentMethodTypeCard, Details: "Номер карты: 0000 0000 0000 0000\nПолучатель: Иван Иванов", Status: PaymentMethodStatusActive},
		{Name: "Т-Банк", Type: PaymentMethodTypeCard, Details: "Номер карты: 1111 1111 1111 1111\nПолучатель: Петр Петров", Status: PaymentMethodStatusActive},
		{Name: "Альфа-Банк", Type: PaymentMethodTypeCard, Details: "Номер карты: 2222 2222 2222 2222\nПолучатель: Сергей Сергеев", Status: PaymentMethodStatusActive},
		{Name: "МТС Банк", Type: PaymentMethodTypeCard, Details: "Номер карты: 3333 3333 3333 3333\nПолучатель: Андрей Андреев", Status: PaymentMethodStatusActive},
		{Name: "Ozon Bank", Type: PaymentMethodTypeCard, Details: "Номер карты: 4444 4444 4444 4444\nПолучатель: Дмитрий Дмитриев", Status: PaymentMethodStatusActive},
	}
}
