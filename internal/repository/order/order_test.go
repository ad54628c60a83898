package orderRepo

import (
	"testing"
	"time"

	"log/slog"

	"github.com/admin/tg-bots/shop-bot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) *Repository {
	repo, ok := New(nil, slog.Default()).(*Repository)
	require.True(t, ok)
	return repo
}

func TestBuildWhere_EmptyFilter(t *testing.T) {
	repo := newTestRepo(t)

	where, args := repo.buildWhere(domain.OrderFilter{})
	assert.Empty(t, where, "пустой фильтр не должен порождать WHERE")
	assert.Empty(t, args)
}

func TestBuildWhere_DateBoundsInclusive(t *testing.T) {
	repo := newTestRepo(t)

	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 31, 23, 59, 59, 0, time.UTC)

	where, args := repo.buildWhere(domain.OrderFilter{DateFrom: &from, DateTo: &to})
	assert.Equal(t, " WHERE created_at >= $1 AND created_at <= $2", where)
	require.Len(t, args, 2)
	assert.Equal(t, from, args[0])
	assert.Equal(t, to, args[1])
}

func TestBuildWhere_AllFields(t *testing.T) {
	repo := newTestRepo(t)

	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
	method := "Сбербанк"

	where, args := repo.buildWhere(domain.OrderFilter{
		DateFrom:      &from,
		DateTo:        &to,
		PaymentMethod: &method,
	})
	assert.Equal(t, " WHERE created_at >= $1 AND created_at <= $2 AND payment_method = $3", where)
	require.Len(t, args, 3)
	assert.Equal(t, method, args[2])
}

func TestBuildWhere_PlaceholdersRenumber(t *testing.T) {
	repo := newTestRepo(t)

	method := "QR НСПК"
	where, args := repo.buildWhere(domain.OrderFilter{PaymentMethod: &method})
	assert.Equal(t, " WHERE payment_method = $1", where)
	require.Len(t, args, 1)
	assert.Equal(t, method, args[0])
}
