package telegram

import (
	"context"
	"fmt"
)

// SendPhotoRequest запрос на отправку фото по file_id
type SendPhotoRequest struct {
	ChatID      int64                  `json:"chat_id"`
	Photo       string                 `json:"photo"` // file_id загруженного ранее фото
	Caption     string                 `json:"caption,omitempty"`
	ParseMode   string                 `json:"parse_mode,omitempty"`
	ReplyMarkup map[string]interface{} `json:"reply_markup,omitempty"`
}

// SendPhotoResult результат отправки фото
type SendPhotoResult struct {
	MessageID int64    `json:"message_id"`
	Chat      ChatInfo `json:"chat"`
}

// SendPhotoResponse ответ от Telegram API на sendPhoto
type SendPhotoResponse struct {
	APIResponse
	Result SendPhotoResult `json:"result"`
}

// SendPhotoByFileID отправляет фото по file_id с подписью и клавиатурой
// Telegram хранит загруженные файлы, поэтому повторная отправка
// не требует передачи самих байтов
func (c *Client) SendPhotoByFileID(ctx context.Context, chatID int64, fileID string, caption string, keyboard map[string]interface{}) error {
	req := SendPhotoRequest{
		ChatID:      chatID,
		Photo:       fileID,
		Caption:     caption,
		ParseMode:   parseModeMarkdown,
		ReplyMarkup: keyboard,
	}

	var apiResp SendPhotoResponse
	if err := c.postJSON(ctx, "/sendPhoto", req, &apiResp); err != nil {
		c.log.Error("failed to send photo",
			"error", err,
			"chat_id", chatID,
		)
		return err
	}

	if !apiResp.OK {
		c.log.Error("telegram API returned error",
			"error_code", apiResp.ErrorCode,
			"description", apiResp.Description,
			"chat_id", chatID,
		)
		return fmt.Errorf("telegram API error: %s (code: %d)", apiResp.Description, apiResp.ErrorCode)
	}

	c.log.Debug("photo sent successfully",
		"chat_id", chatID,
		"message_id", apiResp.Result.MessageID,
	)

	return nil
}
