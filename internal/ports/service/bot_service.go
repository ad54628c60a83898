package service

import (
	"context"

	"github.com/admin/tg-bots/shop-bot/internal/domain"
)

// IBotService интерфейс бизнес-логики бота
// Роутер обновлений (services/telegram) ничего не знает про экраны и меню -
// он только раскладывает Update по этим методам
type IBotService interface {
	HandleCommand(ctx context.Context, user *domain.TelegramUser, chatID int64, command string) error
	HandleText(ctx context.Context, user *domain.TelegramUser, chatID int64, text string) error
	HandlePhoto(ctx context.Context, user *domain.TelegramUser, chatID int64, photos []domain.PhotoSize) error
	HandleWebAppData(ctx context.Context, user *domain.TelegramUser, chatID int64, raw string) error
	HandleCallback(ctx context.Context, callback *domain.CallbackQuery) error
}
