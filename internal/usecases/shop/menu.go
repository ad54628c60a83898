package shop

import (
	"context"

	"github.com/admin/tg-bots/shop-bot/internal/domain"
	"github.com/admin/tg-bots/shop-bot/internal/usecases/shop/texts"
)

// ShowMainMenu рисует главное меню
func (s *Service) ShowMainMenu(ctx context.Context, userID int64, chatID int64, messageID int64) error {
	return s.render(ctx, chatID, messageID, texts.MainMenu, s.mainMenuKeyboard(userID))
}

// ShowContacts рисует экран контактов
func (s *Service) ShowContacts(ctx context.Context, chatID int64, messageID int64) error {
	keyboard := inlineKeyboard(backRow(domain.Callback{Action: domain.ActionMainMenu}))
	return s.render(ctx, chatID, messageID, texts.FormatContacts(s.AdminContact, s.SupportContact), keyboard)
}
