package kafka

import (
	"strings"
)

type Config struct {
	Brokers          string `envconfig:"BROKERS"` // список через запятую
	Topic            string `envconfig:"TOPIC" default:"shop.orders"`
	SecurityProtocol string `envconfig:"SECURITY_PROTOCOL"`
	SASLMechanism    string `envconfig:"SASL_MECHANISM"`
	SASLUsername     string `envconfig:"SASL_USERNAME"`
	SASLPassword     string `envconfig:"SASL_PASSWORD"`
}

// Enabled Kafka настроена в окружении
func (c *Config) Enabled() bool {
	return c != nil && c.Brokers != ""
}

// GetBrokers возвращает список брокеров
func (c *Config) GetBrokers() []string {
	parts := strings.Split(c.Brokers, ",")
	brokers := make([]string, 0, len(parts))
	for _, p := range parts {
		if b := strings.TrimSpace(p); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}
