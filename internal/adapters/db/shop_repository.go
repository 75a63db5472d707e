// internal/adapters/db/shop_repository.go
package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/akarpov/grocery-be/internal/core/domain"
	"github.com/akarpov/grocery-be/internal/core/ports"
)

// shopRepository implements ports.ShopRepository
type shopRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewShopRepository creates a new shop repository
func NewShopRepository(db *Database, logger *slog.Logger) ports.ShopRepository {
	return &shopRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "shop")),
	}
}

// Save inserts a new shop or updates an existing one
func (r *shopRepository) Save(ctx context.Context, shop *domain.Shop) error {
	if shop.ID == 0 {
		query := `INSERT INTO shops (name) VALUES ($1) RETURNING id`
		if err := r.db.QueryRow(ctx, query, shop.Name).Scan(&shop.ID); err != nil {
			return fmt.Errorf("failed to save shop: %w", err)
		}
	} else {
		query := `UPDATE shops SET name = $2 WHERE id = $1`
		tag, err := r.db.Exec(ctx, query, shop.ID, shop.Name)
		if err != nil {
			return fmt.Errorf("failed to update shop: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("shop not found: %d", shop.ID)
		}
	}

	r.logger.DebugContext(ctx, "shop saved",
		slog.Int64("id", shop.ID),
		slog.String("name", shop.Name))

	return nil
}

// FindByID retrieves a shop by id
func (r *shopRepository) FindByID(ctx context.Context, id int64) (*domain.Shop, error) {
	query := `SELECT id, name FROM shops WHERE id = $1`

	shop := &domain.Shop{}
	err := r.db.QueryRow(ctx, query, id).Scan(&shop.ID, &shop.Name)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find shop: %w", err)
	}

	return shop, nil
}

// FindByName retrieves a shop by its exact name
func (r *shopRepository) FindByName(ctx context.Context, name string) (*domain.Shop, error) {
	query := `SELECT id, name FROM shops WHERE name = $1`

	shop := &domain.Shop{}
	err := r.db.QueryRow(ctx, query, name).Scan(&shop.ID, &shop.Name)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find shop by name: %w", err)
	}

	return shop, nil
}

// FindAll retrieves all shops ordered by name
func (r *shopRepository) FindAll(ctx context.Context) ([]domain.Shop, error) {
	query := `SELECT id, name FROM shops ORDER BY name ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query shops: %w", err)
	}
	defer rows.Close()

	var shops []domain.Shop
	for rows.Next() {
		var shop domain.Shop
		if err := rows.Scan(&shop.ID, &shop.Name); err != nil {
			return nil, fmt.Errorf("failed to scan shop: %w", err)
		}
		shops = append(shops, shop)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return shops, nil
}

// FindPage retrieves one page of shops with the total row count
func (r *shopRepository) FindPage(ctx context.Context, req ports.PageRequest) ([]domain.Shop, int64, error) {
	req = req.Normalize()

	qb := squirrel.Select("id", "name", "COUNT(*) OVER()").
		From("shops").
		OrderBy("name ASC").
		Limit(uint64(req.Size)).
		Offset(uint64(req.Offset())).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := qb.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query shops: %w", err)
	}
	defer rows.Close()

	var shops []domain.Shop
	var total int64
	for rows.Next() {
		var shop domain.Shop
		if err := rows.Scan(&shop.ID, &shop.Name, &total); err != nil {
			return nil, 0, fmt.Errorf("failed to scan shop: %w", err)
		}
		shops = append(shops, shop)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating rows: %w", err)
	}

	return shops, total, nil
}

// Delete removes a shop. Shops referenced by visits are protected by a
// RESTRICT foreign key and cannot be deleted.
func (r *shopRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM shops WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete shop: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("shop not found: %d", id)
	}

	r.logger.InfoContext(ctx, "shop deleted", slog.Int64("id", id))

	return nil
}
