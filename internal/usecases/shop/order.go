package shop

import (
	"context"
	"errors"
	"time"

	"github.com/admin/tg-bots/shop-bot/internal/domain"
	"github.com/admin/tg-bots/shop-bot/internal/ports/persistence"
	"github.com/admin/tg-bots/shop-bot/internal/usecases/shop/texts"
)

// ShowPaymentMethods рисует экран выбора способа оплаты для товара
func (s *Service) ShowPaymentMethods(ctx context.Context, chatID int64, messageID int64, productID int64) error {
	product, err := s.ProductRepo.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return s.render(ctx, chatID, messageID, texts.ProductUnavailable, s.shopKeyboard(nil))
		}
		s.Log.Error("failed to load product for order",
			"error", err,
			"product_id", productID,
		)
		return s.render(ctx, chatID, messageID, texts.OrderProcessingError, s.shopKeyboard(nil))
	}

	if !product.IsActive() {
		return s.render(ctx, chatID, messageID, texts.ProductUnavailable, s.shopKeyboard(nil))
	}

	methods, err := s.PaymentMethodRepo.ListActive(ctx)
	if err != nil {
		s.Log.Error("failed to load payment methods",
			"error", err,
			"product_id", productID,
		)
		return s.render(ctx, chatID, messageID, texts.OrderProcessingError, s.shopKeyboard(nil))
	}

	return s.render(ctx, chatID, messageID,
		texts.FormatPaymentMethodPrompt(product),
		s.paymentMethodsKeyboard(methods, productID),
	)
}

// CreateOrder оформляет заказ: проверка товара и способа оплаты, запись заказа
// и снапшот реквизитов делаются в одной транзакции. Если способ оплаты исчез
// или выключен между показом кнопок и нажатием, заказ не создаётся
func (s *Service) CreateOrder(ctx context.Context, userID int64, username string, productID int64, paymentMethodID int64) (*domain.Order, error) {
	now := time.Now()

	order := &domain.Order{
		UserID:       userID,
		Username:     username,
		ProductID:    productID,
		OrderDate:    now.Format(domain.OrderDateLayout),
		OrderTime:    now.Format(domain.OrderTimeLayout),
		AdminContact: s.AdminContact,
		Status:       domain.OrderStatusPending,
	}

	err := s.OrderRepo.WithTransaction(ctx, func(ctx context.Context, tx persistence.Transaction) error {
		product, err := s.ProductRepo.GetByIDTx(ctx, tx, productID)
		if err != nil {
			return err
		}
		if !product.IsActive() {
			return domain.ErrProductNotFound
		}

		method, err := s.PaymentMethodRepo.GetByIDTx(ctx, tx, paymentMethodID)
		if err != nil {
			return err
		}
		if !method.IsActive() {
			return domain.ErrPaymentMethodRetired
		}

		// Снапшот на момент оформления: дальнейшие правки товара
		// и реквизитов заказ не трогают
		order.ProductName = product.Name
		order.Amount = product.Price
		order.PaymentMethod = method.Name
		order.PaymentDetails = method.Details

		id, err := s.OrderRepo.CreateTx(ctx, tx, order)
		if err != nil {
			return err
		}
		order.ID = id
		return nil
	})

	if err != nil {
		return nil, err
	}

	s.Log.Info("order placed",
		"order_id", order.ID,
		"user_id", userID,
		"product_id", productID,
		"amount", order.Amount,
		"payment_method", order.PaymentMethod,
	)

	// Событие в шину не влияет на судьбу заказа
	if s.OrderEvents != nil {
		if err := s.OrderEvents.OrderCreated(ctx, order); err != nil {
			s.Log.Warn("failed to publish order event",
				"error", err,
				"order_id", order.ID,
			)
		}
	}

	return order, nil
}

// PlaceOrder оформляет заказ из чата и отвечает покупателю
func (s *Service) PlaceOrder(ctx context.Context, user *domain.TelegramUser, chatID int64, paymentMethodID int64, productID int64) error {
	order, err := s.CreateOrder(ctx, user.ID, user.DisplayName(), productID, paymentMethodID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrProductNotFound):
			return s.TelegramClient.SendMessage(ctx, chatID, texts.ProductUnavailable)
		case errors.Is(err, domain.ErrPaymentMethodNotFound), errors.Is(err, domain.ErrPaymentMethodRetired):
			s.Log.Warn("order rejected: payment method unavailable",
				"payment_method_id", paymentMethodID,
				"product_id", productID,
				"user_id", user.ID,
			)
			return s.TelegramClient.SendMessage(ctx, chatID, texts.PaymentMethodUnavailable)
		default:
			s.Log.Error("failed to place order",
				"error", err,
				"user_id", user.ID,
				"product_id", productID,
			)
			return s.TelegramClient.SendMessage(ctx, chatID, texts.OrderProcessingError)
		}
	}

	return s.TelegramClient.SendMessage(ctx, chatID, texts.FormatOrderConfirmation(order))
}
