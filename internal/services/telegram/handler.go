package telegram

import (
	"context"
	"fmt"
	"strings"

	"github.com/admin/tg-bots/shop-bot/internal/domain"
)

// HandleUpdate Основной метод для обработки всех типов обновлений
func (s *Service) HandleUpdate(ctx context.Context, update *domain.Update) error {
	if update == nil {
		return fmt.Errorf("update is nil")
	}

	if update.CallbackQuery != nil {
		return s.HandleCallbackQuery(ctx, update.CallbackQuery, update.UpdateID)
	}

	if update.Message != nil {
		return s.HandleMessage(ctx, update.Message, update.UpdateID)
	}

	return nil
}

// HandleCallbackQuery обрабатывает нажатие inline-кнопки
func (s *Service) HandleCallbackQuery(ctx context.Context, callback *domain.CallbackQuery, updateID int64) error {
	if callback.From == nil || callback.From.IsBot {
		s.Log.Debug("ignoring callback from bot", "update_id", updateID)
		return nil
	}

	if err := s.BotService.HandleCallback(ctx, callback); err != nil {
		// Бизнес-ошибка уже залогирована и показана пользователю,
		// для поллера это штатная обработка
		if domain.IsBusinessError(err) {
			s.Log.Debug("callback handled with business error",
				"update_id", updateID,
				"error", err,
			)
			return nil
		}
		return err
	}

	return nil
}

// HandleMessage обрабатывает входящее сообщение - роутинг в usecase
func (s *Service) HandleMessage(ctx context.Context, message *domain.Message, updateID int64) error {
	if message == nil {
		return fmt.Errorf("message is nil")
	}

	if message.From == nil || message.From.IsBot {
		s.Log.Debug("ignoring message from bot", "update_id", updateID)
		return nil
	}

	if message.Chat == nil {
		return fmt.Errorf("message has no chat")
	}

	if message.Chat.Type != "private" {
		s.Log.Warn("ignoring message from group/chat",
			"update_id", updateID,
			"chat_type", message.Chat.Type,
			"chat_id", message.Chat.ID,
		)
		return nil
	}

	user := message.From
	chatID := message.Chat.ID

	// Порядок важен: web_app_data и фото приходят без текста,
	// а команда имеет приоритет над шагом диалога
	if message.WebAppData != nil {
		return s.BotService.HandleWebAppData(ctx, user, chatID, message.WebAppData.Data)
	}

	if len(message.Photo) > 0 {
		return s.BotService.HandlePhoto(ctx, user, chatID, message.Photo)
	}

	if message.Text != nil {
		if IsCommand(*message.Text) {
			return s.BotService.HandleCommand(ctx, user, chatID, ParseCommand(*message.Text))
		}
		return s.BotService.HandleText(ctx, user, chatID, *message.Text)
	}

	return nil
}

func ParseCommand(text string) string {
	text = strings.TrimPrefix(text, "/")

	if idx := strings.Index(text, "@"); idx != -1 {
		text = text[:idx]
	}

	if idx := strings.Index(text, " "); idx != -1 {
		text = text[:idx]
	}

	return text
}

func IsCommand(text string) bool {
	return len(text) > 0 && text[0] == '/'
}
