package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"log/slog"
)

const (
	telegramAPIBaseURL  = "https://api.telegram.org/bot"
	telegramFileBaseURL = "https://api.telegram.org/file/bot"
	apiTimeout          = 30 * time.Second

	parseModeMarkdown = "Markdown"
)

// Client клиент для работы с Telegram Bot API
type Client struct {
	httpClient  *http.Client
	baseURL     string
	fileBaseURL string
	token       string
	log         *slog.Logger
}

// NewClient создаёт новый клиент для Telegram Bot API
func NewClient(token string, log *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: apiTimeout,
		},
		baseURL:     telegramAPIBaseURL + token,
		fileBaseURL: telegramFileBaseURL + token,
		token:       token,
		log:         log,
	}
}

// SendMessageRequest запрос на отправку сообщения
type SendMessageRequest struct {
	ChatID      int64                  `json:"chat_id"`
	Text        string                 `json:"text"`
	ParseMode   string                 `json:"parse_mode,omitempty"` // "HTML", "Markdown", "MarkdownV2"
	ReplyMarkup map[string]interface{} `json:"reply_markup,omitempty"`
}

// SendMessageResult результат отправки сообщения
type SendMessageResult struct {
	MessageID int64    `json:"message_id"`
	Chat      ChatInfo `json:"chat"`
	Text      string   `json:"text"`
	Date      int64    `json:"date"`
}

// SendMessageResponse ответ от Telegram API
type SendMessageResponse struct {
	APIResponse
	Result SendMessageResult `json:"result"`
}

// SendMessage отправляет текстовое сообщение
func (c *Client) SendMessage(ctx context.Context, chatID int64, text string) error {
	req := SendMessageRequest{
		ChatID:    chatID,
		Text:      text,
		ParseMode: parseModeMarkdown,
	}

	return c.sendMessage(ctx, req)
}

// SendMessageWithKeyboard отправляет сообщение с inline-клавиатурой
func (c *Client) SendMessageWithKeyboard(ctx context.Context, chatID int64, text string, keyboard map[string]interface{}) error {
	req := SendMessageRequest{
		ChatID:      chatID,
		Text:        text,
		ParseMode:   parseModeMarkdown,
		ReplyMarkup: keyboard,
	}

	return c.sendMessage(ctx, req)
}

// sendMessage выполняет запрос к Telegram API для отправки сообщения
func (c *Client) sendMessage(ctx context.Context, req SendMessageRequest) error {
	var apiResp SendMessageResponse
	if err := c.postJSON(ctx, "/sendMessage", req, &apiResp); err != nil {
		c.log.Error("failed to send message",
			"error", err,
			"chat_id", req.ChatID,
		)
		return err
	}

	if !apiResp.OK {
		c.log.Error("telegram API returned error",
			"error_code", apiResp.ErrorCode,
			"description", apiResp.Description,
			"chat_id", req.ChatID,
		)
		return fmt.Errorf("telegram API error: %s (code: %d)", apiResp.Description, apiResp.ErrorCode)
	}

	c.log.Debug("message sent successfully",
		"chat_id", req.ChatID,
		"message_id", apiResp.Result.MessageID,
	)

	return nil
}

// postJSON выполняет POST к методу Bot API и декодирует ответ в out
func (c *Client) postJSON(ctx context.Context, method string, reqBody interface{}, out interface{}) error {
	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+method, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to send request to telegram: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if err := json.Unmarshal(body, out); err != nil {
		c.log.Error("failed to unmarshal response",
			"error", err,
			"method", method,
			"status_code", resp.StatusCode,
			"body_preview", truncateString(string(body), 200),
		)
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return nil
}

// BotCommand представляет команду бота
type BotCommand struct {
	Command     string `json:"command"`
	Description string `json:"description"`
}

// SetMyCommands регистрирует команды бота в меню
func (c *Client) SetMyCommands(ctx context.Context, commands []BotCommand) error {
	reqBody := struct {
		Commands []BotCommand `json:"commands"`
	}{
		Commands: commands,
	}

	var apiResp APIResponse
	if err := c.postJSON(ctx, "/setMyCommands", reqBody, &apiResp); err != nil {
		return err
	}

	if !apiResp.OK {
		c.log.Error("telegram API returned error",
			"error_code", apiResp.ErrorCode,
			"description", apiResp.Description,
		)
		return fmt.Errorf("telegram API error: %s (code: %d)", apiResp.Description, apiResp.ErrorCode)
	}

	c.log.Info("bot commands registered successfully", "commands_count", len(commands))
	return nil
}
