package domain

import (
	"time"
)

// ProductStatus статус товара
// Вместо boolean-флага используем enum, чтобы было куда расти (например, "out_of_stock")
type ProductStatus string

const (
	ProductStatusActive  ProductStatus = "active"
	ProductStatusRetired ProductStatus = "retired" // снят с витрины, но остаётся для истории заказов
)

// Product товар (услуга) в каталоге магазина
type Product struct {
	ID          int64         `json:"id" db:"id"`
	Name        string        `json:"name" db:"name"`
	Description string        `json:"description" db:"description"`
	Price       float64       `json:"price" db:"price"`
	PhotoFileID string        `json:"photo_file_id,omitempty" db:"photo_file_id"` // telegram file_id, пустая строка если фото нет
	Status      ProductStatus `json:"status" db:"status"`
	CreatedAt   time.Time     `json:"created_at" db:"created_at"`
}

// IsActive товар показывается на витрине
func (p *Product) IsActive() bool {
	return p.Status == ProductStatusActive
}

// ProductDraft черновик товара, собираемый в пошаговом админском флоу
type ProductDraft struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	PhotoFileID string  `json:"photo_file_id,omitempty"`
}

// DefaultProducts демо-товары, добавляются при первом запуске в пустую таблицу
func DefaultProducts() []Product {
	return []Product{
		{Name: "Веб-разработка", Description: "Создание сайта под ключ", Price: 10000, Status: ProductStatusActive},
		{Name: "Дизайн интерфейса", Description: "UI/UX дизайн", Price: 5000, Status: ProductStatusActive},
		{Name: "Консультация", Description: "Техническая консультация 1 час", Price: 3000, Status: ProductStatusActive},
	}
}
