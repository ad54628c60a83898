package telegram

import (
	"context"
	"fmt"
)

// AnswerCallbackQueryRequest запрос для ответа на callback query
type AnswerCallbackQueryRequest struct {
	CallbackQueryID string `json:"callback_query_id"`
	Text            string `json:"text,omitempty"`
	ShowAlert       bool   `json:"show_alert,omitempty"`
}

// AnswerCallbackQuery отвечает на callback query, убирая "часики" с кнопки
// При showAlert текст показывается модальным окном, а не всплывашкой
func (c *Client) AnswerCallbackQuery(ctx context.Context, callbackQueryID string, text string, showAlert bool) error {
	req := AnswerCallbackQueryRequest{
		CallbackQueryID: callbackQueryID,
		Text:            text,
		ShowAlert:       showAlert,
	}

	var apiResp APIResponse
	if err := c.postJSON(ctx, "/answerCallbackQuery", req, &apiResp); err != nil {
		c.log.Error("failed to answer callback query",
			"error", err,
			"callback_query_id", callbackQueryID,
		)
		return err
	}

	if !apiResp.OK {
		c.log.Error("telegram API returned error on answerCallbackQuery",
			"error_code", apiResp.ErrorCode,
			"description", apiResp.Description,
			"callback_query_id", callbackQueryID,
		)
		return fmt.Errorf("telegram API error: %s (code: %d)", apiResp.Description, apiResp.ErrorCode)
	}

	return nil
}
