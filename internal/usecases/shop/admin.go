package shop

import (
	"context"
	"errors"
	"time"

	"github.com/admin/tg-bots/shop-bot/internal/domain"
	"github.com/admin/tg-bots/shop-bot/internal/usecases/shop/texts"
)

const adminOrdersLimit = 10

// ShowAdminPanel рисует панель администратора со сводкой заказов
func (s *Service) ShowAdminPanel(ctx context.Context, chatID int64, messageID int64) error {
	total, err := s.OrderRepo.Count(ctx, domain.OrderFilter{})
	if err != nil {
		s.Log.Error("failed to count orders for admin panel", "error", err)
		return s.render(ctx, chatID, messageID, texts.OrderProcessingError, s.adminPanelKeyboard())
	}

	todayStart := domain.ReportPeriodToday.DateFrom(time.Now())
	today, err := s.OrderRepo.Count(ctx, domain.OrderFilter{DateFrom: todayStart})
	if err != nil {
		s.Log.Error("failed to count today orders for admin panel", "error", err)
		return s.render(ctx, chatID, messageID, texts.OrderProcessingError, s.adminPanelKeyboard())
	}

	return s.render(ctx, chatID, messageID, texts.FormatAdminPanel(total, today), s.adminPanelKeyboard())
}

// ShowAdminProducts рисует экран управления товарами
func (s *Service) ShowAdminProducts(ctx context.Context, chatID int64, messageID int64) error {
	products, err := s.ProductRepo.ListActive(ctx)
	if err != nil {
		s.Log.Error("failed to load products for admin", "error", err)
		return s.render(ctx, chatID, messageID, texts.OrderProcessingError, s.adminPanelKeyboard())
	}

	return s.render(ctx, chatID, messageID,
		texts.FormatAdminProducts(len(products)),
		s.adminProductsKeyboard(products),
	)
}

// DeleteProduct снимает товар с витрины и перерисовывает список
// История заказов на товар при этом сохраняется
func (s *Service) DeleteProduct(ctx context.Context, chatID int64, messageID int64, productID int64) error {
	err := s.ProductRepo.Retire(ctx, productID)
	if err != nil && !errors.Is(err, domain.ErrProductNotFound) {
		s.Log.Error("failed to retire product",
			"error", err,
			"product_id", productID,
		)
		return s.render(ctx, chatID, messageID, texts.OrderProcessingError, s.adminPanelKeyboard())
	}

	if err == nil {
		if err := s.TelegramClient.SendMessage(ctx, chatID, texts.ProductDeleted); err != nil {
			s.Log.Warn("failed to confirm product deletion", "error", err)
		}
	}

	return s.ShowAdminProducts(ctx, chatID, messageID)
}

// ShowAdminOrders рисует последние заказы
func (s *Service) ShowAdminOrders(ctx context.Context, chatID int64, messageID int64) error {
	orders, err := s.OrderRepo.List(ctx, domain.OrderFilter{})
	if err != nil {
		s.Log.Error("failed to load orders for admin", "error", err)
		return s.render(ctx, chatID, messageID, texts.OrderProcessingError, s.adminPanelKeyboard())
	}

	if len(orders) > adminOrdersLimit {
		orders = orders[:adminOrdersLimit]
	}

	keyboard := inlineKeyboard(backRow(domain.Callback{Action: domain.ActionAdminPanel}))
	return s.render(ctx, chatID, messageID, texts.FormatAdminOrders(orders), keyboard)
}

// ShowAdminPayments рисует список способов оплаты
func (s *Service) ShowAdminPayments(ctx context.Context, chatID int64, messageID int64) error {
	methods, err := s.PaymentMethodRepo.ListActive(ctx)
	if err != nil {
		s.Log.Error("failed to load payment methods for admin", "error", err)
		return s.render(ctx, chatID, messageID, texts.OrderProcessingError, s.adminPanelKeyboard())
	}

	keyboard := inlineKeyboard(backRow(domain.Callback{Action: domain.ActionAdminPanel}))
	return s.render(ctx, chatID, messageID, texts.FormatAdminPayments(methods), keyboard)
}
