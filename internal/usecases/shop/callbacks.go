package shop

import (
	"context"
	"fmt"

	"github.com/admin/tg-bots/shop-bot/internal/domain"
	"github.com/admin/tg-bots/shop-bot/internal/usecases/shop/texts"
)

// HandleCallback обрабатывает нажатие inline-кнопки
// Сначала снимаются "часики" с кнопки, потом разбирается токен и рисуется экран
func (s *Service) HandleCallback(ctx context.Context, callback *domain.CallbackQuery) error {
	if err := s.TelegramClient.AnswerCallbackQuery(ctx, callback.ID, "", false); err != nil {
		// Телеграм мог уже сам погасить query по таймауту, экран рисуем всё равно
		s.Log.Warn("failed to answer callback query",
			"error", err,
			"callback_id", callback.ID,
		)
	}

	if callback.From == nil || callback.Message == nil || callback.Message.Chat == nil || callback.Data == nil {
		return fmt.Errorf("callback query is missing required fields")
	}

	userID := callback.From.ID
	chatID := callback.Message.Chat.ID
	messageID := callback.Message.MessageID

	cb, err := domain.ParseCallback(*callback.Data)
	if err != nil {
		s.Log.Warn("unknown callback token",
			"data", *callback.Data,
			"user_id", userID,
		)
		return s.TelegramClient.SendMessage(ctx, chatID, texts.UnknownAction)
	}

	// Каждый админский экран проверяет доступ сам, а не полагается
	// на то, что кнопку не показали
	if cb.IsAdminAction() && !s.IsAdmin(userID) {
		s.Log.Warn("admin action denied",
			"user_id", userID,
			"action", cb.Action,
		)
		if err := s.TelegramClient.SendMessage(ctx, chatID, texts.AccessDenied); err != nil {
			return err
		}
		// Пользователю уже ответили и отказ залогирован,
		// выше по стеку это не ошибка обработки
		return domain.WrapBusinessError(domain.ErrAccessDenied)
	}

	switch cb.Action {
	case domain.ActionMainMenu:
		return s.ShowMainMenu(ctx, userID, chatID, messageID)
	case domain.ActionShop:
		return s.ShowShop(ctx, chatID, messageID)
	case domain.ActionContacts:
		return s.ShowContacts(ctx, chatID, messageID)
	case domain.ActionProduct:
		return s.ShowProduct(ctx, chatID, messageID, cb.ProductID)
	case domain.ActionBuy:
		return s.ShowPaymentMethods(ctx, chatID, messageID, cb.ProductID)
	case domain.ActionPay:
		return s.PlaceOrder(ctx, callback.From, chatID, cb.PaymentMethodID, cb.ProductID)
	case domain.ActionAdminPanel:
		return s.ShowAdminPanel(ctx, chatID, messageID)
	case domain.ActionAdminProducts:
		return s.ShowAdminProducts(ctx, chatID, messageID)
	case domain.ActionAdminOrders:
		return s.ShowAdminOrders(ctx, chatID, messageID)
	case domain.ActionAdminReports:
		return s.ShowReportsMenu(ctx, chatID, messageID)
	case domain.ActionAdminPayments:
		return s.ShowAdminPayments(ctx, chatID, messageID)
	case domain.ActionAddProduct:
		return s.StartAddProduct(ctx, chatID)
	case domain.ActionCancelAdd:
		return s.CancelAddProduct(ctx, chatID)
	case domain.ActionDeleteProduct:
		return s.DeleteProduct(ctx, chatID, messageID, cb.ProductID)
	case domain.ActionReport:
		return s.ShowReport(ctx, chatID, messageID, cb.Period)
	default:
		return s.TelegramClient.SendMessage(ctx, chatID, texts.UnknownAction)
	}
}
