package repository

import (
	"context"

	"github.com/admin/tg-bots/shop-bot/internal/domain"
	"github.com/admin/tg-bots/shop-bot/internal/ports/persistence"
)

// IOrderRepo интерфейс для работы с заказами в БД
// Заказы создаются один раз и никогда не изменяются и не удаляются
type IOrderRepo interface {
	List(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error)
	Count(ctx context.Context, filter domain.OrderFilter) (int64, error)
	Stats(ctx context.Context, filter domain.OrderFilter) ([]domain.PaymentMethodStat, error)

	WithTransaction(ctx context.Context, fn func(context.Context, persistence.Transaction) error) error

	// Транзакционные методы
	CreateTx(ctx context.Context, tx persistence.Transaction, order *domain.Order) (int64, error)
}
