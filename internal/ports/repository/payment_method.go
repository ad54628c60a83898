package repository

import (
	"context"

	"github.com/admin/tg-bots/shop-bot/internal/domain"
	"github.com/admin/tg-bots/shop-bot/internal/ports/persistence"
)

// IPaymentMethodRepo интерфейс для работы со способами оплаты в БД
type IPaymentMethodRepo interface {
	Create(ctx context.Context, method *domain.PaymentMethod) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.PaymentMethod, error)
	ListActive(ctx context.Context) ([]domain.PaymentMethod, error)
	Count(ctx context.Context) (int64, error)

	// Транзакционные методы
	GetByIDTx(ctx context.Context, tx persistence.Transaction, id int64) (*domain.PaymentMethod, error)
}
