package shop

import (
	"log/slog"

	"github.com/admin/tg-bots/shop-bot/internal/ports/cache"
	"github.com/admin/tg-bots/shop-bot/internal/ports/events"
	"github.com/admin/tg-bots/shop-bot/internal/ports/repository"
	"github.com/admin/tg-bots/shop-bot/internal/ports/storage"
	"github.com/admin/tg-bots/shop-bot/internal/ports/telegram"
)

// Service бизнес-логика магазина: витрина, заказы, админка
type Service struct {
	ProductRepo       repository.IProductRepo
	PaymentMethodRepo repository.IPaymentMethodRepo
	OrderRepo         repository.IOrderRepo
	TelegramClient    telegram.IClient
	Sessions          cache.Cache
	OrderEvents       events.IOrderEvents   // nil, если Kafka не настроена
	PhotoArchive      storage.IPhotoArchive // nil, если S3 не настроено

	AdminContact   string
	SupportContact string
	MiniAppURL     string

	admins map[int64]struct{}
	Log    *slog.Logger
}

// Deps зависимости сервиса магазина
type Deps struct {
	ProductRepo       repository.IProductRepo
	PaymentMethodRepo repository.IPaymentMethodRepo
	OrderRepo         repository.IOrderRepo
	TelegramClient    telegram.IClient
	Sessions          cache.Cache
	OrderEvents       events.IOrderEvents
	PhotoArchive      storage.IPhotoArchive

	AdminIDs       []int64
	AdminContact   string
	SupportContact string
	MiniAppURL     string

	Log *slog.Logger
}

// New создаёт новый сервис магазина
func New(deps Deps) *Service {
	admins := make(map[int64]struct{}, len(deps.AdminIDs))
	for _, id := range deps.AdminIDs {
		admins[id] = struct{}{}
	}

	return &Service{
		ProductRepo:       deps.ProductRepo,
		PaymentMethodRepo: deps.PaymentMethodRepo,
		OrderRepo:         deps.OrderRepo,
		TelegramClient:    deps.TelegramClient,
		Sessions:          deps.Sessions,
		OrderEvents:       deps.OrderEvents,
		PhotoArchive:      deps.PhotoArchive,
		AdminContact:      deps.AdminContact,
		SupportContact:    deps.SupportContact,
		MiniAppURL:        deps.MiniAppURL,
		admins:            admins,
		Log:               deps.Log,
	}
}

// IsAdmin пользователь входит в список администраторов
func (s *Service) IsAdmin(userID int64) bool {
	_, ok := s.admins[userID]
	return ok
}
