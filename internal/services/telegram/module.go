package telegram

import (
	"log/slog"

	"github.com/admin/tg-bots/shop-bot/internal/ports/service"
)

// Service роутер обновлений Telegram: раскладывает Update по методам бизнес-логики
type Service struct {
	BotService service.IBotService
	Log        *slog.Logger
}

// New создаёт новый роутер обновлений
func New(botService service.IBotService, log *slog.Logger) *Service {
	return &Service{
		BotService: botService,
		Log:        log,
	}
}
