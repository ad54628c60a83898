package domain

import (
	"time"
)

// OrderStatus статус заказа
type OrderStatus string

const (
	OrderStatusPending OrderStatus = "pending"
)

// Форматы даты и времени заказа (локальное время, как видит покупатель)
const (
	OrderDateLayout = "02.01.2006"
	OrderTimeLayout = "15:04"
)

// Order заказ
// product_name, amount и payment_details - денормализованные снапшоты на момент
// оформления: последующие правки товара или реквизитов не переписывают историю
type Order struct {
	ID             int64       `json:"id" db:"id"`
	UserID         int64       `json:"user_id" db:"user_id"`
	Username       string      `json:"username" db:"username"`
	ProductID      int64       `json:"product_id" db:"product_id"`
	ProductName    string      `json:"product_name" db:"product_name"`
	Amount         float64     `json:"amount" db:"amount"`
	OrderDate      string      `json:"order_date" db:"order_date"`
	OrderTime      string      `json:"order_time" db:"order_time"`
	PaymentMethod  string      `json:"payment_method" db:"payment_method"`
	PaymentDetails string      `json:"payment_details" db:"payment_details"`
	AdminContact   string      `json:"admin_contact" db:"admin_contact"`
	Status         OrderStatus `json:"status" db:"status"`
	CreatedAt      time.Time   `json:"created_at" db:"created_at"`
}

// OrderFilter фильтр для выборки заказов
// nil-поле означает "без ограничения"; границы дат включительные, по дате created_at
type OrderFilter struct {
	DateFrom      *time.Time
	DateTo        *time.Time
	PaymentMethod *string
}

// PaymentMethodStat агрегат заказов по способу оплаты
type PaymentMethodStat struct {
	PaymentMethod string  `json:"payment_method" db:"payment_method"`
	Count         int64   `json:"count" db:"count"`
	Total         float64 `json:"total" db:"total"`
}

// ReportPeriod период отчёта
type ReportPeriod string

const (
	ReportPeriodToday ReportPeriod = "today"
	ReportPeriodWeek  ReportPeriod = "week"
	ReportPeriodMonth ReportPeriod = "month"
	ReportPeriodAll   ReportPeriod = "all"
)

// IsValid проверяет, что период входит в закрытый набор
func (p ReportPeriod) IsValid() bool {
	switch p {
	case ReportPeriodToday, ReportPeriodWeek, ReportPeriodMonth, ReportPeriodAll:
		return true
	default:
		return false
	}
}

// DateFrom возвращает нижнюю границу периода относительно now (nil - без границы)
func (p ReportPeriod) DateFrom(now time.Time) *time.Time {
	var from time.Time
	switch p {
	case ReportPeriodToday:
		from = now
	case ReportPeriodWeek:
		from = now.AddDate(0, 0, -7)
	case ReportPeriodMonth:
		from = now.AddDate(0, 0, -30)
	default:
		return nil
	}
	from = time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())
	return &from
}
