package shop

import (
	"context"

	"github.com/admin/tg-bots/shop-bot/internal/domain"
	"github.com/admin/tg-bots/shop-bot/internal/usecases/shop/texts"
)

// HandleCommand обрабатывает команду бота
func (s *Service) HandleCommand(ctx context.Context, user *domain.TelegramUser, chatID int64, command string) error {
	switch command {
	case "start":
		return s.HandleStart(ctx, user, chatID)
	default:
		return s.TelegramClient.SendMessage(ctx, chatID, texts.UnknownAction)
	}
}

// HandleStart обрабатывает команду /start: приветствие плюс главное меню
// Начатый диалог добавления товара при этом сбрасывается
func (s *Service) HandleStart(ctx context.Context, user *domain.TelegramUser, chatID int64) error {
	s.clearSession(ctx, chatID)

	s.Log.Info("user started bot",
		"user_id", user.ID,
		"chat_id", chatID,
	)

	return s.TelegramClient.SendMessageWithKeyboard(ctx, chatID,
		texts.FormatWelcome(user.FirstName),
		s.mainMenuKeyboard(user.ID),
	)
}
