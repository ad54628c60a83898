package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"log/slog"

	"github.com/IBM/sarama"
	"github.com/admin/tg-bots/shop-bot/internal/domain"
	"github.com/google/uuid"
)

// Producer публикует события о заказах в Kafka
// Реализует events.IOrderEvents
type Producer struct {
	producer sarama.SyncProducer
	cfg      *Config
	log      *slog.Logger
}

// orderCreatedEvent формат события order.created
type orderCreatedEvent struct {
	EventID       string  `json:"event_id"`
	OrderID       int64   `json:"order_id"`
	UserID        int64   `json:"user_id"`
	Username      string  `json:"username"`
	ProductID     int64   `json:"product_id"`
	ProductName   string  `json:"product_name"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"payment_method"`
	CreatedAt     string  `json:"created_at"`
}

// NewProducer создаёт новый Kafka producer
func NewProducer(cfg *Config, log *slog.Logger) (*Producer, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5

	// Настройка безопасности (если указано)
	if cfg.SecurityProtocol == "SASL_SSL" || cfg.SecurityProtocol == "SASL_PLAINTEXT" {
		config.Net.SASL.Enable = true
		config.Net.SASL.Mechanism = sarama.SASLTypePlaintext
		if cfg.SASLMechanism == "SCRAM-SHA-256" {
			config.Net.SASL.Mechanism = sarama.SASLTypeSCRAMSHA256
		}
		config.Net.SASL.User = cfg.SASLUsername
		config.Net.SASL.Password = cfg.SASLPassword
		if cfg.SecurityProtocol == "SASL_SSL" {
			config.Net.TLS.Enable = true
		}
	}

	producer, err := sarama.NewSyncProducer(cfg.GetBrokers(), config)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}

	log.Info("kafka producer created",
		"brokers", cfg.Brokers,
		"topic", cfg.Topic,
	)

	return &Producer{
		producer: producer,
		cfg:      cfg,
		log:      log,
	}, nil
}

// OrderCreated публикует событие о созданном заказе
func (p *Producer) OrderCreated(ctx context.Context, order *domain.Order) error {
	eventID := uuid.New()

	event := orderCreatedEvent{
		EventID:       eventID.String(),
		OrderID:       order.ID,
		UserID:        order.UserID,
		Username:      order.Username,
		ProductID:     order.ProductID,
		ProductName:   order.ProductName,
		Amount:        order.Amount,
		PaymentMethod: order.PaymentMethod,
		CreatedAt:     order.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}

	valueBytes, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal order event: %w", err)
	}

	headers := []sarama.RecordHeader{
		{
			Key:   []byte("event_type"),
			Value: []byte("order.created"),
		},
		{
			Key:   []byte("order_id"),
			Value: []byte(fmt.Sprintf("%d", order.ID)),
		},
	}

	msg := &sarama.ProducerMessage{
		Topic:   p.cfg.Topic,
		Key:     sarama.StringEncoder(eventID.String()),
		Value:   sarama.ByteEncoder(valueBytes),
		Headers: headers,
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		p.log.Debug("kafka send failed",
			"error", err,
			"topic", p.cfg.Topic,
			"order_id", order.ID,
		)
		return fmt.Errorf("kafka send failed [topic=%s, order_id=%d]: %w",
			p.cfg.Topic, order.ID, err)
	}

	p.log.Debug("order event sent to kafka",
		"topic", p.cfg.Topic,
		"partition", partition,
		"offset", offset,
		"order_id", order.ID,
	)

	return nil
}

// Close закрывает producer
func (p *Producer) Close() error {
	return p.producer.Close()
}
