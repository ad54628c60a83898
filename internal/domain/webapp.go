package domain

import (
	"encoding/json"
	"fmt"
)

// WebAppActionCreateOrder единственное распознаваемое действие из Mini App
const WebAppActionCreateOrder = "create_order"

// WebAppEvent структурированное событие из Mini App (web_app_data)
type WebAppEvent struct {
	Action    string `json:"action"`
	ProductID int64  `json:"product_id"`
}

// ParseWebAppEvent разбирает JSON-данные из Mini App
// Ошибка возвращается только на битом JSON; нераспознанные действия - забота вызывающего
func ParseWebAppEvent(raw string) (WebAppEvent, error) {
	var event WebAppEvent
	if err := json.Unmarshal([]byte(raw), &event); err != nil {
		return WebAppEvent{}, fmt.Errorf("failed to parse web app data: %w", err)
	}
	return event, nil
}
