package memory

import (
	"context"
	"sync"
	"time"

	"github.com/admin/tg-bots/shop-bot/internal/ports/cache"
)

// Cache in-memory реализация cache.Cache
// Используется как session store, когда Redis не настроен (локальная разработка)
type Cache struct {
	mu      sync.RWMutex
	entries map[string]entry
}

type entry struct {
	value     string
	expiresAt time.Time // нулевое время - без TTL
}

func New() *Cache {
	return &Cache{
		entries: make(map[string]entry),
	}
}

// Get получает значение по ключу, просроченные записи удаляются лениво
func (c *Cache) Get(ctx context.Context, key string) (string, error) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return "", &cache.ErrNotFound{Key: key}
	}

	if !e.expiresAt.IsZero() && time.Now().After(e.expiresAt) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return "", &cache.ErrNotFound{Key: key}
	}

	return e.value, nil
}

// Set устанавливает значение с TTL
func (c *Cache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	e := entry{value: value}
	if ttl > 0 {
		e.expiresAt = time.Now().Add(ttl)
	}

	c.mu.Lock()
	c.entries[key] = e
	c.mu.Unlock()
	return nil
}

// Delete удаляет значение по ключу
func (c *Cache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
	return nil
}

func (c *Cache) Close() error {
	return nil
}
