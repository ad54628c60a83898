package shop

import (
	"context"
	"errors"

	"github.com/admin/tg-bots/shop-bot/internal/domain"
	"github.com/admin/tg-bots/shop-bot/internal/usecases/shop/texts"
)

// ShowShop рисует витрину с активными товарами
func (s *Service) ShowShop(ctx context.Context, chatID int64, messageID int64) error {
	products, err := s.ProductRepo.ListActive(ctx)
	if err != nil {
		s.Log.Error("failed to load shop products",
			"error", err,
			"chat_id", chatID,
		)
		return s.render(ctx, chatID, messageID, texts.OrderProcessingError, s.mainMenuKeyboard(0))
	}

	title := texts.ShopTitle
	if len(products) == 0 {
		title = texts.ShopEmpty
	}

	return s.render(ctx, chatID, messageID, title, s.shopKeyboard(products))
}

// ShowProduct рисует карточку товара
// Товар с фото не может получиться правкой текстового сообщения,
// поэтому старое сообщение удаляется и карточка уходит через sendPhoto
func (s *Service) ShowProduct(ctx context.Context, chatID int64, messageID int64, productID int64) error {
	product, err := s.ProductRepo.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return s.render(ctx, chatID, messageID, texts.ProductUnavailable, s.shopKeyboard(nil))
		}
		s.Log.Error("failed to load product",
			"error", err,
			"product_id", productID,
		)
		return s.render(ctx, chatID, messageID, texts.OrderProcessingError, s.shopKeyboard(nil))
	}

	if !product.IsActive() {
		return s.render(ctx, chatID, messageID, texts.ProductUnavailable, s.shopKeyboard(nil))
	}

	caption := texts.FormatProductCard(product)
	keyboard := s.productKeyboard(product.ID)

	if product.PhotoFileID == "" {
		return s.render(ctx, chatID, messageID, caption, keyboard)
	}

	if messageID > 0 {
		if err := s.TelegramClient.DeleteMessage(ctx, chatID, messageID); err != nil {
			s.Log.Warn("failed to delete message before photo card",
				"error", err,
				"chat_id", chatID,
				"message_id", messageID,
			)
		}
	}

	return s.TelegramClient.SendPhotoByFileID(ctx, chatID, product.PhotoFileID, caption, keyboard)
}
