package repository

import (
	"context"

	"github.com/admin/tg-bots/shop-bot/internal/domain"
	"github.com/admin/tg-bots/shop-bot/internal/ports/persistence"
)

// IProductRepo интерфейс для работы с товарами в БД
type IProductRepo interface {
	Create(ctx context.Context, product *domain.Product) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	ListActive(ctx context.Context) ([]domain.Product, error)
	Retire(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)

	// Транзакционные методы
	GetByIDTx(ctx context.Context, tx persistence.Transaction, id int64) (*domain.Product, error)
}
