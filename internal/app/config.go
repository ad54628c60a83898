package app

import (
	server "github.com/admin/tg-bots/shop-bot/internal/adapters/primary/http"
	kafkaAdapter "github.com/admin/tg-bots/shop-bot/internal/adapters/secondary/kafka"
	"github.com/admin/tg-bots/shop-bot/internal/adapters/secondary/storage/pg"
	redisAdapter "github.com/admin/tg-bots/shop-bot/internal/adapters/secondary/storage/redis"
	s3Adapter "github.com/admin/tg-bots/shop-bot/internal/adapters/secondary/storage/s3"
	"github.com/admin/tg-bots/shop-bot/internal/adapters/secondary/telegram"
	"github.com/admin/tg-bots/shop-bot/internal/pkg/logger"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Postgres *pg.Config           `envconfig:"POSTGRES"`
	Log      *logger.Config       `envconfig:"LOG"`
	Server   *server.Config       `envconfig:"APISERVER"`
	Telegram *telegram.Config     `envconfig:"TELEGRAM"`
	Redis    *redisAdapter.Config `envconfig:"REDIS"`
	Kafka    *kafkaAdapter.Config `envconfig:"KAFKA"`
	S3       *s3Adapter.Config    `envconfig:"S3"`
	Shop     *ShopConfig          `envconfig:"SHOP"`
}

// ShopConfig настройки магазина
type ShopConfig struct {
	AdminIDs       []int64 `envconfig:"ADMIN_IDS"`                            // telegram user_id админов через запятую
	AdminContact   string  `envconfig:"ADMIN_CONTACT" default:"the_boss_manger"` // юзернейм для связи по заказам
	SupportContact string  `envconfig:"SUPPORT_CONTACT" default:"Paymentprosu"`
	MiniAppURL     string  `envconfig:"MINI_APP_URL"` // пустая строка отключает кнопки Mini App
}

func NewEnvConfig(envPrefix string) (*Config, error) {
	cfg := &Config{}

	_ = godotenv.Load("deployments/local/.env")

	if err := envconfig.Process(envPrefix, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
