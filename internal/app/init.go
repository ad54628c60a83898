package app

import (
	"context"
	"fmt"
	"net/http"

	server "github.com/admin/tg-bots/shop-bot/internal/adapters/primary/http"
	healthcheckController "github.com/admin/tg-bots/shop-bot/internal/adapters/primary/http/controllers/healthcheck"
	miniappController "github.com/admin/tg-bots/shop-bot/internal/adapters/primary/http/controllers/miniapp"
	telegramController "github.com/admin/tg-bots/shop-bot/internal/adapters/primary/http/controllers/telegram"
	kafkaAdapter "github.com/admin/tg-bots/shop-bot/internal/adapters/secondary/kafka"
	"github.com/admin/tg-bots/shop-bot/internal/adapters/secondary/storage/memory"
	"github.com/admin/tg-bots/shop-bot/internal/adapters/secondary/storage/pg"
	redisAdapter "github.com/admin/tg-bots/shop-bot/internal/adapters/secondary/storage/redis"
	s3Adapter "github.com/admin/tg-bots/shop-bot/internal/adapters/secondary/storage/s3"
	tgAdapter "github.com/admin/tg-bots/shop-bot/internal/adapters/secondary/telegram"
	"github.com/admin/tg-bots/shop-bot/internal/ports/cache"
	"github.com/admin/tg-bots/shop-bot/internal/ports/events"
	"github.com/admin/tg-bots/shop-bot/internal/ports/storage"
	orderRepo "github.com/admin/tg-bots/shop-bot/internal/repository/order"
	paymentMethodRepo "github.com/admin/tg-bots/shop-bot/internal/repository/paymentmethod"
	productRepo "github.com/admin/tg-bots/shop-bot/internal/repository/product"
	telegramService "github.com/admin/tg-bots/shop-bot/internal/services/telegram"
	shopUsecase "github.com/admin/tg-bots/shop-bot/internal/usecases/shop"
	"github.com/jmoiron/sqlx"
)

type Dependencies struct {
	DB              *sqlx.DB
	HTTPServer      *http.Server
	TelegramClient  *tgAdapter.Client
	TelegramPoller  *tgAdapter.Poller
	TelegramService *telegramService.Service
	Shop            *shopUsecase.Service
	Cache           cache.Cache
	OrderEvents     events.IOrderEvents
}

// initDependencies инициализирует все зависимости приложения
func (a *App) initDependencies(ctx context.Context) (*Dependencies, error) {
	db, err := a.initPostgres()
	if err != nil {
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}

	persistenceLayer := pg.NewDB(db)
	products := productRepo.New(persistenceLayer, a.Log)
	paymentMethods := paymentMethodRepo.New(persistenceLayer, a.Log)
	orders := orderRepo.New(persistenceLayer, a.Log)

	sessions := a.initSessions()
	orderEvents := a.initOrderEvents()
	photoArchive := a.initPhotoArchive()

	tgClient := tgAdapter.NewClient(a.Cfg.Telegram.BotToken, a.Log)

	shopService := shopUsecase.New(shopUsecase.Deps{
		ProductRepo:       products,
		PaymentMethodRepo: paymentMethods,
		OrderRepo:         orders,
		TelegramClient:    tgClient,
		Sessions:          sessions,
		OrderEvents:       orderEvents,
		PhotoArchive:      photoArchive,
		AdminIDs:          a.Cfg.Shop.AdminIDs,
		AdminContact:      a.Cfg.Shop.AdminContact,
		SupportContact:    a.Cfg.Shop.SupportContact,
		MiniAppURL:        a.Cfg.Shop.MiniAppURL,
		Log:               a.Log,
	})

	if err := shopService.EnsureDefaults(ctx); err != nil {
		return nil, fmt.Errorf("failed to seed defaults: %w", err)
	}

	tgService := telegramService.New(shopService, a.Log)

	a.registerBotCommands(ctx, tgClient)

	deps := &Dependencies{
		DB:              db,
		TelegramClient:  tgClient,
		TelegramService: tgService,
		Shop:            shopService,
		Cache:           sessions,
		OrderEvents:     orderEvents,
	}

	if a.Cfg.Telegram.IsWebhookEnabled() {
		if err := tgClient.SetWebhook(ctx, a.Cfg.Telegram.WebhookURL, a.Cfg.Telegram.WebhookSecret); err != nil {
			return nil, fmt.Errorf("failed to set webhook: %w", err)
		}
	} else {
		deps.TelegramPoller = tgAdapter.NewPoller(tgClient, tgService.HandleUpdate, a.Cfg.Telegram.PollingTimeout, a.Log)
	}

	deps.HTTPServer = server.NewHTTPServer(a.Cfg.Server, a.Log,
		healthcheckController.New(db, a.Log),
		telegramController.New(tgService, a.Cfg.Telegram.WebhookSecret, a.Log),
		miniappController.New(shopService, a.Log),
	)

	return deps, nil
}

// initSessions возвращает хранилище сессий диалогов:
// Redis, если настроен, иначе in-memory
func (a *App) initSessions() cache.Cache {
	if !a.Cfg.Redis.Enabled() {
		a.Log.Info("redis is not configured, using in-memory session store")
		return memory.New()
	}

	client, err := a.Cfg.Redis.NewConnection()
	if err != nil {
		a.Log.Warn("failed to connect to redis, falling back to in-memory session store",
			"error", err,
		)
		return memory.New()
	}

	a.Log.Info("redis connected successfully")
	return redisAdapter.NewClient(client)
}

// initOrderEvents возвращает producer событий заказов или nil, если Kafka не настроена
func (a *App) initOrderEvents() events.IOrderEvents {
	if !a.Cfg.Kafka.Enabled() {
		a.Log.Info("kafka is not configured, order events disabled")
		return nil
	}

	producer, err := kafkaAdapter.NewProducer(a.Cfg.Kafka, a.Log)
	if err != nil {
		a.Log.Warn("failed to create kafka producer, order events disabled",
			"error", err,
		)
		return nil
	}

	return producer
}

// initPhotoArchive возвращает архив фото товаров или nil, если S3 не настроено
func (a *App) initPhotoArchive() storage.IPhotoArchive {
	if !a.Cfg.S3.Enabled() {
		a.Log.Info("s3 is not configured, photo archive disabled")
		return nil
	}

	client, err := a.Cfg.S3.NewConnection()
	if err != nil {
		a.Log.Warn("failed to create s3 client, photo archive disabled",
			"error", err,
		)
		return nil
	}

	return s3Adapter.NewClient(client, a.Cfg.S3.Bucket, a.Log)
}

// registerBotCommands регистрирует меню команд, ошибка не мешает запуску
func (a *App) registerBotCommands(ctx context.Context, client *tgAdapter.Client) {
	commands := []tgAdapter.BotCommand{
		{Command: "start", Description: "Открыть магазин"},
	}

	if err := client.SetMyCommands(ctx, commands); err != nil {
		a.Log.Warn("failed to register bot commands", "error", err)
	}
}
