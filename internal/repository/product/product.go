package productRepo

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

type productColumns struct {
	TableName   string
	ID          string
	Name        string
	Description string
	Price       string
	PhotoFileID string
	Status      string
	CreatedAt   string
}

type Repository struct {
	db      persistence.Persistence
	Log     *slog.Logger
	columns productColumns
}

// New создаёт новый репозиторий для работы с товарами
func New(db persistence.Persistence, log *slog.Logger) ports.IProductRepo {
	cols := productColumns{
		TableName:   "products",
		ID:          "id",
		Name:        "name",
		Description: "description",
		Price:       "price",
		PhotoFileID: "photo_file_id",
		Status:      "status",
		CreatedAt:   "created_at",
	}
	return &Repository{
		db:      db,
		Log:     log,
		columns: cols,
	}
}

// allColumns возвращает строку со всеми колонками (7 полей)
func (r *Repository) allColumns() string {
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s",
		r.columns.ID,
		r.columns.Name,
		r.columns.Description,
		r.columns.Price,
		r.columns.PhotoFileID,
		r.columns.Status,
		r.columns.CreatedAt,
	)
}

// Create добавляет товар и возвращает его ID
func (r *Repository) Create(ctx context.Context, product *domain.Product) (int64, error) {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s, %s, %s) VALUES ($1, $2, $3, $4, $5) RETURNING %s`,
		r.columns.TableName,
		r.columns.Name,
		r.columns.Description,
		r.columns.Price,
		r.columns.PhotoFileID,
		r.columns.Status,
		r.columns.ID,
	)

	var id int64
	err := r.db.Get(ctx, &id, query,
		product.Name,
		product.Description,
		product.Price,
		product.PhotoFileID,
		string(product.Status),
	)
	if err != nil {
		r.Log.Error("failed to create product",
			"error", err,
			"name", product.Name,
		)
		return 0, fmt.Errorf("failed to create product: %w", err)
	}

	r.Log.Debug("product created successfully",
		"product_id", id,
		"name", product.Name,
		"price", product.Price,
	)
	return id, nil
}

// GetByID получает товар по ID независимо от статуса
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	var product domain.Product

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		r.allColumns(),
		r.columns.TableName,
		r.columns.ID,
	)

	err := r.db.Get(ctx, &product, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.Log.Warn("product not found", "product_id", id)
			return nil, domain.ErrProductNotFound
		}
		r.Log.Error("failed to get product",
			"error", err,
			"product_id", id,
		)
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return &product, nil
}

// GetByIDTx получает товар по ID в рамках транзакции
func (r *Repository) GetByIDTx(ctx context.Context, tx persistence.Transaction, id int64) (*domain.Product, error) {
	var product domain.Product

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		r.allColumns(),
		r.columns.TableName,
		r.columns.ID,
	)

	err := tx.Get(ctx, &product, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return &product, nil
}

// ListActive возвращает товары витрины в порядке добавления
func (r *Repository) ListActive(ctx context.Context) ([]domain.Product, error) {
	products := make([]domain.Product, 0)

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY %s`,
		r.allColumns(),
		r.columns.TableName,
		r.columns.Status,
		r.columns.ID,
	)

	err := r.db.Select(ctx, &products, query, string(domain.ProductStatusActive))
	if err != nil {
		r.Log.Error("failed to list active products", "error", err)
		return nil, fmt.Errorf("failed to list active products: %w", err)
	}

	return products, nil
}

// Retire снимает товар с витрины, история заказов на него не трогается
func (r *Repository) Retire(ctx context.Context, id int64) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $1 WHERE %s = $2 AND %s = $3`,
		r.columns.TableName,
		r.columns.Status,
		r.columns.ID,
		r.columns.Status,
	)

	rows, err := r.db.ExecWithResult(ctx, query,
		string(domain.ProductStatusRetired),
		id,
		string(domain.ProductStatusActive),
	)
	if err != nil {
		r.Log.Error("failed to retire product",
			"error", err,
			"product_id", id,
		)
		return fmt.Errorf("failed to retire product: %w", err)
	}

	if rows == 0 {
		r.Log.Warn("product not found or already retired", "product_id", id)
		return domain.ErrProductNotFound
	}

	r.Log.Info("product retired", "product_id", id)
	return nil
}

// Count возвращает количество товаров в таблице (любого статуса)
func (r *Repository) Count(ctx context.Context) (int64, error) {
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s`, r.columns.TableName)

	var count int64
	err := r.db.Get(ctx, &count, query)
	if err != nil {
		r.Log.Error("failed to count products", "error", err)
		return 0, fmt.Errorf("failed to count products: %w", err)
	}

	return count, nil
}
