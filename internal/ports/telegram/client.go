package telegram

import (
	"context"
)

// IClient интерфейс для клиента Telegram API
type IClient interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
	SendMessageWithKeyboard(ctx context.Context, chatID int64, text string, keyboard map[string]interface{}) error
	EditMessageText(ctx context.Context, chatID int64, messageID int64, text string, keyboard map[string]interface{}) error
	DeleteMessage(ctx context.Context, chatID int64, messageID int64) error
	SendPhotoByFileID(ctx context.Context, chatID int64, fileID string, caption string, keyboard map[string]interface{}) error
	AnswerCallbackQuery(ctx context.Context, callbackID string, text string, showAlert bool) error
	DownloadFile(ctx context.Context, fileID string) ([]byte, error)
}
