package memory

import (
	"context"
	"testing"
	"time"

	"github.com/admin/tg-bots/shop-bot/internal/ports/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_SetGet(t *testing.T) {
	c := New()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", "v", 0))

	val, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", val)
}

func TestCache_MissingKey(t *testing.T) {
	c := New()
	ctx := context.Background()

	_, err := c.Get(ctx, "nope")
	require.Error(t, err)

	var notFound *cache.ErrNotFound
	assert.ErrorAs(t, err, &notFound)
	assert.Equal(t, "nope", notFound.Key)
}

func TestCache_TTLExpiry(t *testing.T) {
	c := New()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", "v", 10*time.Millisecond))

	val, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", val)

	time.Sleep(20 * time.Millisecond)

	_, err = c.Get(ctx, "k")
	var notFound *cache.ErrNotFound
	assert.ErrorAs(t, err, &notFound)
}

func TestCache_Delete(t *testing.T) {
	c := New()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", "v", 0))
	require.NoError(t, c.Delete(ctx, "k"))

	_, err := c.Get(ctx, "k")
	assert.Error(t, err)

	// удаление несуществующего ключа не ошибка
	assert.NoError(t, c.Delete(ctx, "k"))
}
