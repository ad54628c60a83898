package domain

// дока - https://core.telegram.org/bots/api

// Update - входящее обновление от Telegram Bot API
type Update struct {
	UpdateID      int64          `json:"update_id"`
	Message       *Message       `json:"message,omitempty"`
	CallbackQuery *CallbackQuery `json:"callback_query,omitempty"`
}

// CallbackQuery - callback query от Telegram Bot API
type CallbackQuery struct {
	ID      string        `json:"id"`
	From    *TelegramUser `json:"from,omitempty"`
	Message *Message      `json:"message,omitempty"`
	Data    *string       `json:"data,omitempty"` // данные callback кнопки
}

// Message - сообщение от Telegram Bot API
type Message struct {
	MessageID  int64         `json:"message_id"`
	From       *TelegramUser `json:"from,omitempty"`         // отправитель (Telegram User)
	Chat       *Chat         `json:"chat"`                   // чат
	Date       int64         `json:"date"`                   // Unix timestamp
	Text       *string       `json:"text,omitempty"`         // текст сообщения
	Photo      []PhotoSize   `json:"photo,omitempty"`        // размеры фото, если сообщение с фото
	WebAppData *WebAppData   `json:"web_app_data,omitempty"` // данные из Mini App
	Entities   []Entity      `json:"entities,omitempty"`     // сущности (команды, упоминания и т.д.)
}

// WebAppData - данные, отправленные Mini App в чат
type WebAppData struct {
	Data       string `json:"data"`
	ButtonText string `json:"button_text"`
}

// PhotoSize - один из размеров фото в сообщении
type PhotoSize struct {
	FileID       string `json:"file_id"`
	FileUniqueID string `json:"file_unique_id"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	FileSize     *int   `json:"file_size,omitempty"`
}

// TelegramUser - пользователь Telegram
type TelegramUser struct {
	ID           int64   `json:"id"`
	IsBot        bool    `json:"is_bot"`
	FirstName    string  `json:"first_name"`
	LastName     *string `json:"last_name,omitempty"`
	Username     *string `json:"username,omitempty"`
	LanguageCode *string `json:"language_code,omitempty"`
}

// DisplayName имя покупателя для заказа: username, если есть, иначе имя
func (u *TelegramUser) DisplayName() string {
	if u.Username != nil && *u.Username != "" {
		return *u.Username
	}
	return u.FirstName
}

// Chat - чат в Telegram
type Chat struct {
	ID        int64   `json:"id"`
	Type      string  `json:"type"` // "private", "group", "supergroup", "channel"
	Title     *string `json:"title,omitempty"`
	Username  *string `json:"username,omitempty"`
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
}

// Entity - сущность в сообщении (команда, упоминание и т.д.)
type Entity struct {
	Type   string `json:"type"`   // "bot_command", "mention", "url" и т.д.
	Offset int    `json:"offset"` // смещение в UTF-16 кодовых единицах
	Length int    `json:"length"` // длина в UTF-16 кодовых единицах
}
