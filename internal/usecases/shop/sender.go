package shop

import (
	"context"
)

// render перерисовывает экран: правит существующее сообщение или шлёт новое
// messageID == 0 означает, что экран открывается не из callback и править нечего
func (s *Service) render(ctx context.Context, chatID int64, messageID int64, text string, keyboard map[string]interface{}) error {
	if messageID > 0 {
		err := s.TelegramClient.EditMessageText(ctx, chatID, messageID, text, keyboard)
		if err == nil {
			return nil
		}
		// Telegram отказывает в правке старых или уже изменённых сообщений,
		// тогда экран уходит новым сообщением
		s.Log.Warn("failed to edit message, sending new one",
			"error", err,
			"chat_id", chatID,
			"message_id", messageID,
		)
	}
	return s.TelegramClient.SendMessageWithKeyboard(ctx, chatID, text, keyboard)
}
