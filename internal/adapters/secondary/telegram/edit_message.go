package telegram

import (
	"context"
	"fmt"
)

// EditMessageTextRequest запрос на редактирование текста сообщения
type EditMessageTextRequest struct {
	ChatID      int64                  `json:"chat_id"`
	MessageID   int64                  `json:"message_id"`
	Text        string                 `json:"text"`
	ParseMode   string                 `json:"parse_mode,omitempty"`
	ReplyMarkup map[string]interface{} `json:"reply_markup,omitempty"`
}

// EditMessageText редактирует текст и клавиатуру существующего сообщения
// Так перерисовываются экраны меню без новых сообщений в чате
func (c *Client) EditMessageText(ctx context.Context, chatID int64, messageID int64, text string, keyboard map[string]interface{}) error {
	req := EditMessageTextRequest{
		ChatID:      chatID,
		MessageID:   messageID,
		Text:        text,
		ParseMode:   parseModeMarkdown,
		ReplyMarkup: keyboard,
	}

	var apiResp SendMessageResponse
	if err := c.postJSON(ctx, "/editMessageText", req, &apiResp); err != nil {
		c.log.Error("failed to edit message",
			"error", err,
			"chat_id", chatID,
			"message_id", messageID,
		)
		return err
	}

	if !apiResp.OK {
		c.log.Error("telegram API returned error",
			"error_code", apiResp.ErrorCode,
			"description", apiResp.Description,
			"chat_id", chatID,
			"message_id", messageID,
		)
		return fmt.Errorf("telegram API error: %s (code: %d)", apiResp.Description, apiResp.ErrorCode)
	}

	c.log.Debug("message edited successfully",
		"chat_id", chatID,
		"message_id", messageID,
	)

	return nil
}

// DeleteMessageRequest запрос на удаление сообщения
type DeleteMessageRequest struct {
	ChatID    int64 `json:"chat_id"`
	MessageID int64 `json:"message_id"`
}

// DeleteMessage удаляет сообщение
// Нужен для карточки товара с фото: фото нельзя получить редактированием
// текстового сообщения, поэтому старое сообщение удаляется и шлётся sendPhoto
func (c *Client) DeleteMessage(ctx context.Context, chatID int64, messageID int64) error {
	req := DeleteMessageRequest{
		ChatID:    chatID,
		MessageID: messageID,
	}

	var apiResp APIResponse
	if err := c.postJSON(ctx, "/deleteMessage", req, &apiResp); err != nil {
		c.log.Error("failed to delete message",
			"error", err,
			"chat_id", chatID,
			"message_id", messageID,
		)
		return err
	}

	if !apiResp.OK {
		c.log.Warn("telegram API returned error on deleteMessage",
			"error_code", apiResp.ErrorCode,
			"description", apiResp.Description,
			"chat_id", chatID,
			"message_id", messageID,
		)
		return fmt.Errorf("telegram API error: %s (code: %d)", apiResp.Description, apiResp.ErrorCode)
	}

	return nil
}
