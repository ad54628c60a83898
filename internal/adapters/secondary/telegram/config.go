package telegram

type Config struct {
	BotToken       string `envconfig:"BOT_TOKEN" required:"true"`
	UseWebhook     bool   `envconfig:"USE_WEBHOOK" default:"false"`
	WebhookURL     string `envconfig:"WEBHOOK_URL"`
	WebhookSecret  string `envconfig:"WEBHOOK_SECRET"`
	PollingTimeout int    `envconfig:"POLLING_TIMEOUT" default:"30"` // секунды long polling
}

// IsWebhookEnabled бот принимает обновления через webhook, а не polling
func (c *Config) IsWebhookEnabled() bool {
	return c.UseWebhook && c.WebhookURL != ""
}
