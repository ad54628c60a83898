package shop

import (
	"context"

	"github.com/admin/tg-bots/shop-bot/internal/domain"
	"github.com/admin/tg-bots/shop-bot/internal/usecases/shop/texts"
)

// HandleWebAppData обрабатывает данные, присланные Mini App в чат
// Mini App не оформляет заказ сам - он только выбирает товар,
// дальше покупатель проходит обычный выбор способа оплаты
func (s *Service) HandleWebAppData(ctx context.Context, user *domain.TelegramUser, chatID int64, raw string) error {
	event, err := domain.ParseWebAppEvent(raw)
	if err != nil {
		s.Log.Warn("failed to parse web app data",
			"error", err,
			"user_id", user.ID,
		)
		return s.TelegramClient.SendMessage(ctx, chatID, texts.OrderProcessingError)
	}

	s.Log.Info("web app event received",
		"action", event.Action,
		"product_id", event.ProductID,
		"user_id", user.ID,
	)

	// Незнакомое, но корректное событие молча пропускаем:
	// Mini App может присылать действия, которых бот ещё не знает
	if event.Action != domain.WebAppActionCreateOrder {
		s.Log.Info("ignoring unknown web app action",
			"action", event.Action,
			"user_id", user.ID,
		)
		return nil
	}

	product, err := s.ProductRepo.GetByID(ctx, event.ProductID)
	if err != nil || !product.IsActive() {
		return s.TelegramClient.SendMessage(ctx, chatID, texts.ProductUnavailable)
	}

	methods, err := s.PaymentMethodRepo.ListActive(ctx)
	if err != nil {
		s.Log.Error("failed to load payment methods for web app order",
			"error", err,
			"product_id", event.ProductID,
		)
		return s.TelegramClient.SendMessage(ctx, chatID, texts.OrderProcessingError)
	}

	return s.TelegramClient.SendMessageWithKeyboard(ctx, chatID,
		texts.FormatWebAppPaymentPrompt(product),
		s.paymentMethodsKeyboard(methods, product.ID),
	)
}
