package paymentMethodRepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"log/slog"

	"github.com/admin/tg-bots/shop-bot/internal/domain"
	"github.com/admin/tg-bots/shop-bot/internal/ports/persistence"
	ports "github.com/admin/tg-bots/shop-bot/internal/ports/repository"
)

type paymentMethodColumns struct {
	TableName string
	ID        string
	Name      string
	Type      string
	Details   string
	Status    string
}

type Repository struct {
	db      persistence.Persistence
	Log     *slog.Logger
	columns paymentMethodColumns
}

// New создаёт новый репозиторий для работы со способами оплаты
func New(db persistence.Persistence, log *slog.Logger) ports.IPaymentMethodRepo {
	cols := paymentMethodColumns{
		TableName: "payment_methods",
		ID:        "id",
		Name:      "name",
		Type:      "type",
		Details:   "details",
		Status:    "status",
	}
	return &Repository{
		db:      db,
		Log:     log,
		columns: cols,
	}
}

// allColumns возвращает строку со всеми колонками (5 полей)
func (r *Repository) allColumns() string {
	return fmt.Sprintf("%s, %s, %s, %s, %s",
		r.columns.ID,
		r.columns.Name,
		r.columns.Type,
		r.columns.Details,
		r.columns.Status,
	)
}

// Create добавляет способ оплаты и возвращает его ID
func (r *Repository) Create(ctx context.Context, method *domain.PaymentMethod) (int64, error) {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s, %s) VALUES ($1, $2, $3, $4) RETURNING %s`,
		r.columns.TableName,
		r.columns.Name,
		r.columns.Type,
		r.columns.Details,
		r.columns.Status,
		r.columns.ID,
	)

	var id int64
	err := r.db.Get(ctx, &id, query,
		method.Name,
		string(method.Type),
		method.Details,
		string(method.Status),
	)
	if err != nil {
		r.Log.Error("failed to create payment method",
			"error", err,
			"name", method.Name,
		)
		return 0, fmt.Errorf("failed to create payment method: %w", err)
	}

	r.Log.Debug("payment method created successfully",
		"payment_method_id", id,
		"name", method.Name,
	)
	return id, nil
}

// GetByID получает способ оплаты по ID независимо от статуса
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.PaymentMethod, error) {
	var method domain.PaymentMethod

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		r.allColumns(),
		r.columns.TableName,
		r.columns.ID,
	)

	err := r.db.Get(ctx, &method, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.Log.Warn("payment method not found", "payment_method_id", id)
			return nil, domain.ErrPaymentMethodNotFound
		}
		r.Log.Error("failed to get payment method",
			"error", err,
			"payment_method_id", id,
		)
		return nil, fmt.Errorf("failed to get payment method: %w", err)
	}

	return &method, nil
}

// GetByIDTx получает способ оплаты по ID в рамках транзакции
func (r *Repository) GetByIDTx(ctx context.Context, tx persistence.Transaction, id int64) (*domain.PaymentMethod, error) {
	var method domain.PaymentMethod

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		r.allColumns(),
		r.columns.TableName,
		r.columns.ID,
	)

	err := tx.Get(ctx, &method, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPaymentMethodNotFound
		}
		return nil, fmt.Errorf("failed to get payment method: %w", err)
	}

	return &method, nil
}

// ListActive возвращает доступные способы оплаты в порядке добавления
func (r *Repository) ListActive(ctx context.Context) ([]domain.PaymentMethod, error) {
	methods := make([]domain.PaymentMethod, 0)

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY %s`,
		r.allColumns(),
		r.columns.TableName,
		r.columns.Status,
		r.columns.ID,
	)

	err := r.db.Select(ctx, &methods, query, string(domain.PaymentMethodStatusActive))
	if err != nil {
		r.Log.Error("failed to list active payment methods", "error", err)
		return nil, fmt.Errorf("failed to list active payment methods: %w", err)
	}

	return methods, nil
}

// Count возвращает количество способов оплаты в таблице (любого статуса)
func (r *Repository) Count(ctx context.Context) (int64, error) {
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s`, r.columns.TableName)

	var count int64
	err := r.db.Get(ctx, &count, query)
	if err != nil {
		r.Log.Error("failed to count payment methods", "error", err)
		return 0, fmt.Errorf("failed to count payment methods: %w", err)
	}

	return count, nil
}
