package shop

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/admin/tg-bots/shop-bot/internal/domain"
	"github.com/admin/tg-bots/shop-bot/internal/ports/cache"
)

// Диалог добавления товара живёт ограниченное время,
// брошенный на полпути черновик просто истекает
const sessionTTL = 30 * time.Minute

func sessionKey(chatID int64) string {
	return fmt.Sprintf("session:%d", chatID)
}

// getSession возвращает сессию диалога или nil, если её нет
func (s *Service) getSession(ctx context.Context, chatID int64) (*domain.Session, error) {
	raw, err := s.Sessions.Get(ctx, sessionKey(chatID))
	if err != nil {
		var notFound *cache.ErrNotFound
		if errors.As(err, &notFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var session domain.Session
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		// Битую сессию выбрасываем, диалог начнётся заново
		s.Log.Warn("corrupted session, dropping",
			"error", err,
			"chat_id", chatID,
		)
		s.clearSession(ctx, chatID)
		return nil, nil
	}

	return &session, nil
}

// saveSession сохраняет сессию диалога, продлевая её TTL
func (s *Service) saveSession(ctx context.Context, chatID int64, session *domain.Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := s.Sessions.Set(ctx, sessionKey(chatID), string(raw), sessionTTL); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// clearSession удаляет сессию диалога, ошибки только логируются
func (s *Service) clearSession(ctx context.Context, chatID int64) {
	if err := s.Sessions.Delete(ctx, sessionKey(chatID)); err != nil {
		s.Log.Warn("failed to clear session",
			"error", err,
			"chat_id", chatID,
		)
	}
}
