package telegram

import (
	"context"
	"fmt"
	"time"

	"log/slog"

	"github.com/admin/tg-bots/shop-bot/internal/domain"
)

// UpdateHandler обрабатывает одно обновление от Telegram
type UpdateHandler func(ctx context.Context, update *domain.Update) error

// Poller получает обновления через long polling getUpdates
type Poller struct {
	client  *Client
	handler UpdateHandler
	timeout int // таймаут long polling в секундах
	offset  int64
	log     *slog.Logger
}

// NewPoller создаёт poller для получения обновлений
func NewPoller(client *Client, handler UpdateHandler, timeoutSeconds int, log *slog.Logger) *Poller {
	return &Poller{
		client:  client,
		handler: handler,
		timeout: timeoutSeconds,
		log:     log,
	}
}

// getUpdatesResponse ответ от Telegram API на getUpdates
type getUpdatesResponse struct {
	APIResponse
	Result []domain.Update `json:"result"`
}

// Run запускает цикл long polling до отмены контекста
func (p *Poller) Run(ctx context.Context) error {
	// Снимаем webhook, иначе getUpdates вернёт ошибку 409
	if err := p.client.DeleteWebhook(ctx); err != nil {
		p.log.Warn("failed to delete webhook before polling", "error", err)
	}

	p.log.Info("telegram polling started", "timeout", p.timeout)

	for {
		select {
		case <-ctx.Done():
			p.log.Info("telegram polling stopped")
			return nil
		default:
		}

		updates, err := p.getUpdates(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			p.log.Error("failed to get updates", "error", err)

			// Пауза перед повтором, чтобы не молотить API при сбое
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(3 * time.Second):
			}
			continue
		}

		for i := range updates {
			update := &updates[i]
			p.offset = update.UpdateID + 1

			if err := p.handler(ctx, update); err != nil {
				p.log.Error("failed to handle update",
					"error", err,
					"update_id", update.UpdateID,
				)
			}
		}
	}
}

// getUpdates запрашивает очередную порцию обновлений
func (p *Poller) getUpdates(ctx context.Context) ([]domain.Update, error) {
	reqBody := struct {
		Offset  int64 `json:"offset"`
		Timeout int   `json:"timeout"`
	}{
		Offset:  p.offset,
		Timeout: p.timeout,
	}

	var apiResp getUpdatesResponse
	if err := p.client.postJSON(ctx, "/getUpdates", reqBody, &apiResp); err != nil {
		return nil, err
	}

	if !apiResp.OK {
		return nil, fmt.Errorf("telegram API error: %s (code: %d)", apiResp.Description, apiResp.ErrorCode)
	}

	return apiResp.Result, nil
}
