package cache

import (
	"context"
	"time"
)

// Cache интерфейс для работы с кэшем (session store)
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// ErrNotFound возвращает реализация, если ключа нет
// Вынесено в отдельный тип, чтобы вызывающий мог отличить "нет сессии" от ошибки
type ErrNotFound struct {
	Key string
}

func (e *ErrNotFound) Error() string {
	return "key not found: " + e.Key
}
