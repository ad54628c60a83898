package events

import (
	"context"

	"github.com/admin/tg-bots/shop-bot/internal/domain"
)

// IOrderEvents интерфейс для публикации событий о заказах во внешнюю шину
type IOrderEvents interface {
	OrderCreated(ctx context.Context, order *domain.Order) error
	Close() error
}
