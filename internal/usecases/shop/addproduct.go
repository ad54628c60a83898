package shop

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/admin/tg-bots/shop-bot/internal/domain"
	"github.com/admin/tg-bots/shop-bot/internal/usecases/shop/texts"
	"github.com/google/uuid"
)

// StartAddProduct начинает пошаговый диалог добавления товара
func (s *Service) StartAddProduct(ctx context.Context, chatID int64) error {
	session := &domain.Session{State: domain.StateAwaitingProductName}
	if err := s.saveSession(ctx, chatID, session); err != nil {
		s.Log.Error("failed to start add product session",
			"error", err,
			"chat_id", chatID,
		)
		return s.TelegramClient.SendMessage(ctx, chatID, texts.OrderProcessingError)
	}

	return s.TelegramClient.SendMessageWithKeyboard(ctx, chatID, texts.AddProductName, s.cancelAddKeyboard())
}

// CancelAddProduct отменяет диалог добавления товара
func (s *Service) CancelAddProduct(ctx context.Context, chatID int64) error {
	s.clearSession(ctx, chatID)

	if err := s.TelegramClient.SendMessage(ctx, chatID, texts.AddProductCancelled); err != nil {
		return err
	}
	return s.ShowAdminProducts(ctx, chatID, 0)
}

// HandleText обрабатывает свободный текст: он осмыслен только внутри
// диалога добавления товара
func (s *Service) HandleText(ctx context.Context, user *domain.TelegramUser, chatID int64, text string) error {
	session, err := s.getSession(ctx, chatID)
	if err != nil {
		s.Log.Error("failed to load session",
			"error", err,
			"chat_id", chatID,
		)
		return s.TelegramClient.SendMessage(ctx, chatID, texts.OrderProcessingError)
	}

	if session == nil {
		return s.TelegramClient.SendMessage(ctx, chatID, texts.AddProductNotExpected)
	}

	// Сессия создаётся только админом, но доступ перепроверяется на каждом шаге
	if !s.IsAdmin(user.ID) {
		s.clearSession(ctx, chatID)
		return s.TelegramClient.SendMessage(ctx, chatID, texts.AccessDenied)
	}

	text = strings.TrimSpace(text)

	switch session.State {
	case domain.StateAwaitingProductName:
		session.Draft.Name = text
		session.State = domain.StateAwaitingProductDescription
		if err := s.saveSession(ctx, chatID, session); err != nil {
			return err
		}
		return s.TelegramClient.SendMessageWithKeyboard(ctx, chatID, texts.AddProductDescription, s.cancelAddKeyboard())

	case domain.StateAwaitingProductDescription:
		session.Draft.Description = text
		session.State = domain.StateAwaitingProductPrice
		if err := s.saveSession(ctx, chatID, session); err != nil {
			return err
		}
		return s.TelegramClient.SendMessageWithKeyboard(ctx, chatID, texts.AddProductPrice, s.cancelAddKeyboard())

	case domain.StateAwaitingProductPrice:
		price, err := strconv.ParseFloat(strings.ReplaceAll(text, ",", "."), 64)
		if err != nil || price <= 0 {
			return s.TelegramClient.SendMessageWithKeyboard(ctx, chatID, texts.AddProductPriceError, s.cancelAddKeyboard())
		}
		session.Draft.Price = price
		session.State = domain.StateAwaitingProductPhoto
		if err := s.saveSession(ctx, chatID, session); err != nil {
			return err
		}
		return s.TelegramClient.SendMessageWithKeyboard(ctx, chatID, texts.AddProductPhoto, s.cancelAddKeyboard())

	case domain.StateAwaitingProductPhoto:
		if strings.EqualFold(text, texts.PhotoSkipWord) {
			return s.finishAddProduct(ctx, chatID, session)
		}
		return s.TelegramClient.SendMessageWithKeyboard(ctx, chatID, texts.AddProductPhoto, s.cancelAddKeyboard())

	default:
		s.Log.Warn("unknown session state, dropping",
			"state", session.State,
			"chat_id", chatID,
		)
		s.clearSession(ctx, chatID)
		return s.TelegramClient.SendMessage(ctx, chatID, texts.AddProductNotExpected)
	}
}

// HandlePhoto обрабатывает фото: оно осмысленно только на последнем шаге
// диалога добавления товара
func (s *Service) HandlePhoto(ctx context.Context, user *domain.TelegramUser, chatID int64, photos []domain.PhotoSize) error {
	session, err := s.getSession(ctx, chatID)
	if err != nil {
		s.Log.Error("failed to load session",
			"error", err,
			"chat_id", chatID,
		)
		return s.TelegramClient.SendMessage(ctx, chatID, texts.OrderProcessingError)
	}

	if session == nil || session.State != domain.StateAwaitingProductPhoto {
		s.Log.Debug("photo outside of add product flow, ignoring", "chat_id", chatID)
		return nil
	}

	if !s.IsAdmin(user.ID) {
		s.clearSession(ctx, chatID)
		return s.TelegramClient.SendMessage(ctx, chatID, texts.AccessDenied)
	}

	if len(photos) == 0 {
		return s.TelegramClient.SendMessageWithKeyboard(ctx, chatID, texts.AddProductPhoto, s.cancelAddKeyboard())
	}

	// Telegram присылает варианты от меньшего к большему, берём самый крупный
	session.Draft.PhotoFileID = photos[len(photos)-1].FileID

	return s.finishAddProduct(ctx, chatID, session)
}

// finishAddProduct создаёт товар из собранного черновика
func (s *Service) finishAddProduct(ctx context.Context, chatID int64, session *domain.Session) error {
	product := &domain.Product{
		Name:        session.Draft.Name,
		Description: session.Draft.Description,
		Price:       session.Draft.Price,
		PhotoFileID: session.Draft.PhotoFileID,
		Status:      domain.ProductStatusActive,
	}

	id, err := s.ProductRepo.Create(ctx, product)
	if err != nil {
		s.Log.Error("failed to create product from draft",
			"error", err,
			"chat_id", chatID,
		)
		return s.TelegramClient.SendMessage(ctx, chatID, texts.OrderProcessingError)
	}
	product.ID = id

	s.clearSession(ctx, chatID)

	s.Log.Info("product added",
		"product_id", id,
		"name", product.Name,
		"price", product.Price,
	)

	if product.PhotoFileID != "" {
		s.archiveProductPhoto(ctx, product)
	}

	if err := s.TelegramClient.SendMessage(ctx, chatID, texts.FormatProductAdded(product)); err != nil {
		return err
	}
	return s.ShowAdminProducts(ctx, chatID, 0)
}

// archiveProductPhoto складывает копию фото в S3
// Оригинал остаётся у Telegram, архив не влияет на создание товара
func (s *Service) archiveProductPhoto(ctx context.Context, product *domain.Product) {
	if s.PhotoArchive == nil {
		return
	}

	data, err := s.TelegramClient.DownloadFile(ctx, product.PhotoFileID)
	if err != nil {
		s.Log.Warn("failed to download product photo for archive",
			"error", err,
			"product_id", product.ID,
		)
		return
	}

	path := fmt.Sprintf("products/%d/%s.jpg", product.ID, uuid.New().String())
	if err := s.PhotoArchive.Put(ctx, path, data, "image/jpeg"); err != nil {
		s.Log.Warn("failed to archive product photo",
			"error", err,
			"product_id", product.ID,
			"path", path,
		)
		return
	}

	s.Log.Debug("product photo archived",
		"product_id", product.ID,
		"path", path,
	)
}
