package telegram

import (
	"context"
	"fmt"
)

// SetWebhookRequest запрос на установку webhook
type SetWebhookRequest struct {
	URL         string `json:"url"`
	SecretToken string `json:"secret_token,omitempty"`
}

// SetWebhook регистрирует URL для приёма обновлений
// Секрет потом приходит в заголовке X-Telegram-Bot-Api-Secret-Token
func (c *Client) SetWebhook(ctx context.Context, url string, secret string) error {
	req := SetWebhookRequest{
		URL:         url,
		SecretToken: secret,
	}

	var apiResp APIResponse
	if err := c.postJSON(ctx, "/setWebhook", req, &apiResp); err != nil {
		return err
	}

	if !apiResp.OK {
		return fmt.Errorf("telegram API error: %s (code: %d)", apiResp.Description, apiResp.ErrorCode)
	}

	c.log.Info("webhook registered", "url", url)
	return nil
}

// DeleteWebhook снимает webhook, возвращая бота в режим polling
func (c *Client) DeleteWebhook(ctx context.Context) error {
	var apiResp APIResponse
	if err := c.postJSON(ctx, "/deleteWebhook", struct{}{}, &apiResp); err != nil {
		return err
	}

	if !apiResp.OK {
		return fmt.Errorf("telegram API error: %s (code: %d)", apiResp.Description, apiResp.ErrorCode)
	}

	return nil
}
