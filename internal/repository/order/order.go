package orderRepo

import (
	"context"
	"fmt"
	"strings"

	"log/slog"

	"github.com/admin/tg-bots/shop-bot/internal/domain"
	"github.com/admin/tg-bots/shop-bot/internal/ports/persistence"
	ports "github.com/admin/tg-bots/shop-bot/internal/ports/repository"
)

type orderColumns struct {
	TableName      string
	ID             string
	UserID         string
	Username       string
	ProductID      string
	ProductName    string
	Amount         string
	OrderDate      string
	OrderTime      string
	PaymentMethod  string
	PaymentDetails string
	AdminContact   string
	Status         string
	CreatedAt      string
}

type Repository struct {
	db      persistence.Persistence
	Log     *slog.Logger
	columns orderColumns
}

// New создаёт новый репозиторий для работы с заказами
func New(db persistence.Persistence, log *slog.Logger) ports.IOrderRepo {
	cols := orderColumns{
		TableName:      "orders",
		ID:             "id",
		UserID:         "user_id",
		Username:       "username",
		ProductID:      "product_id",
		ProductName:    "product_name",
		Amount:         "amount",
		OrderDate:      "order_date",
		OrderTime:      "order_time",
		PaymentMethod:  "payment_method",
		PaymentDetails: "payment_details",
		AdminContact:   "admin_contact",
		Status:         "status",
		CreatedAt:      "created_at",
	}
	return &Repository{
		db:      db,
		Log:     log,
		columns: cols,
	}
}

// allColumns возвращает строку со всеми колонками (13 полей)
func (r *Repository) allColumns() string {
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s",
		r.columns.ID,
		r.columns.UserID,
		r.columns.Username,
		r.columns.ProductID,
		r.columns.ProductName,
		r.columns.Amount,
		r.columns.OrderDate,
		r.columns.OrderTime,
		r.columns.PaymentMethod,
		r.columns.PaymentDetails,
		r.columns.AdminContact,
		r.columns.Status,
		r.columns.CreatedAt,
	)
}

// buildWhere собирает WHERE по фильтру, границы дат включительные
func (r *Repository) buildWhere(filter domain.OrderFilter) (string, []interface{}) {
	conditions := make([]string, 0, 3)
	args := make([]interface{}, 0, 3)

	if filter.DateFrom != nil {
		args = append(args, *filter.DateFrom)
		conditions = append(conditions, fmt.Sprintf("%s >= $%d", r.columns.CreatedAt, len(args)))
	}
	if filter.DateTo != nil {
		args = append(args, *filter.DateTo)
		conditions = append(conditions, fmt.Sprintf("%s <= $%d", r.columns.CreatedAt, len(args)))
	}
	if filter.PaymentMethod != nil {
		args = append(args, *filter.PaymentMethod)
		conditions = append(conditions, fmt.Sprintf("%s = $%d", r.columns.PaymentMethod, len(args)))
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

// WithTransaction выполняет fn в транзакции
func (r *Repository) WithTransaction(ctx context.Context, fn func(context.Context, persistence.Transaction) error) error {
	return r.db.WithTransaction(ctx, fn)
}

// CreateTx записывает заказ в рамках транзакции и возвращает его ID
func (r *Repository) CreateTx(ctx context.Context, tx persistence.Transaction, order *domain.Order) (int64, error) {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING %s`,
		r.columns.TableName,
		r.columns.UserID,
		r.columns.Username,
		r.columns.ProductID,
		r.columns.ProductName,
		r.columns.Amount,
		r.columns.OrderDate,
		r.columns.OrderTime,
		r.columns.PaymentMethod,
		r.columns.PaymentDetails,
		r.columns.AdminContact,
		r.columns.Status,
		r.columns.ID,
	)

	var id int64
	err := tx.Get(ctx, &id, query,
		order.UserID,
		order.Username,
		order.ProductID,
		order.ProductName,
		order.Amount,
		order.OrderDate,
		order.OrderTime,
		order.PaymentMethod,
		order.PaymentDetails,
		order.AdminContact,
		string(order.Status),
	)
	if err != nil {
		r.Log.Error("failed to create order",
			"error", err,
			"user_id", order.UserID,
			"product_id", order.ProductID,
		)
		return 0, fmt.Errorf("failed to create order: %w", err)
	}

	r.Log.Debug("order created successfully",
		"order_id", id,
		"user_id", order.UserID,
		"amount", order.Amount,
	)
	return id, nil
}

// List возвращает заказы по фильтру, новые первыми
func (r *Repository) List(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error) {
	orders := make([]domain.Order, 0)

	where, args := r.buildWhere(filter)
	query := fmt.Sprintf(`SELECT %s FROM %s%s ORDER BY %s DESC`,
		r.allColumns(),
		r.columns.TableName,
		where,
		r.columns.ID,
	)

	err := r.db.Select(ctx, &orders, query, args...)
	if err != nil {
		r.Log.Error("failed to list orders", "error", err)
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	return orders, nil
}

// Count возвращает количество заказов по фильтру
func (r *Repository) Count(ctx context.Context, filter domain.OrderFilter) (int64, error) {
	where, args := r.buildWhere(filter)
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s%s`, r.columns.TableName, where)

	var count int64
	err := r.db.Get(ctx, &count, query, args...)
	if err != nil {
		r.Log.Error("failed to count orders", "error", err)
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}

	return count, nil
}

// Stats возвращает агрегаты по способам оплаты, крупнейшая сумма первой
func (r *Repository) Stats(ctx context.Context, filter domain.OrderFilter) ([]domain.PaymentMethodStat, error) {
	stats := make([]domain.PaymentMethodStat, 0)

	where, args := r.buildWhere(filter)
	query := fmt.Sprintf(`SELECT %s, COUNT(*) AS count, COALESCE(SUM(%s), 0) AS total
		FROM %s%s GROUP BY %s ORDER BY total DESC`,
		r.columns.PaymentMethod,
		r.columns.Amount,
		r.columns.TableName,
		where,
		r.columns.PaymentMethod,
	)

	err := r.db.Select(ctx, &stats, query, args...)
	if err != nil {
		r.Log.Error("failed to get order stats", "error", err)
		return nil, fmt.Errorf("failed to get order stats: %w", err)
	}

	return stats, nil
}
