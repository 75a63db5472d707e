// internal/adapters/db/item_repository.go
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

// itemRepository implements ports.ItemRepository
type itemRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewItemRepository creates a new item repository
func NewItemRepository(db *Database, logger *slog.Logger) ports.ItemRepository {
	return &itemRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "item")),
	}
}

// Save inserts a new item or updates an existing one
func (r *itemRepository) Save(ctx context.Context, item *domain.Item) error {
	if item.ID == 0 {
		query := `INSERT INTO items (name) VALUES ($1) RETURNING id`
		if err := r.db.QueryRow(ctx, query, item.Name).Scan(&item.ID); err != nil {
			return fmt.Errorf("failed to save item: %w", err)
		}
	} else {
		query := `UPDATE items SET name = $2 WHERE id = $1`
		tag, err := r.db.Exec(ctx, query, item.ID, item.Name)
		if err != nil {
			return fmt.Errorf("failed to update item: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("item not found: %d", item.ID)
		}
	}

	r.logger.DebugContext(ctx, "item saved",
		slog.Int64("id", item.ID),
		slog.String("name", item.Name))

	return nil
}

// FindByID retrieves an item by id
func (r *itemRepository) FindByID(ctx context.Context, id int64) (*domain.Item, error) {
	query := `SELECT id, name FROM items WHERE id = $1`

	item := &domain.Item{}
	err := r.db.QueryRow(ctx, query, id).Scan(&item.ID, &item.Name)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find item: %w", err)
	}

	return item, nil
}

// FindByName retrieves an item by its exact name
func (r *itemRepository) FindByName(ctx context.Context, name string) (*domain.Item, error) {
	query := `SELECT id, name FROM items WHERE name = $1`

	item := &domain.Item{}
	err := r.db.QueryRow(ctx, query, name).Scan(&item.ID, &item.Name)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find item by name: %w", err)
	}

	return item, nil
}

// FindAll retrieves the whole item catalog ordered by name
func (r *itemRepository) FindAll(ctx context.Context) ([]domain.Item, error) {
	query := `SELECT id, name FROM items ORDER BY name ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query items: %w", err)
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		var item domain.Item
		if err := rows.Scan(&item.ID, &item.Name); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return items, nil
}

// FindPage retrieves one page of items with the total row count
func (r *itemRepository) FindPage(ctx context.Context, req ports.PageRequest) ([]domain.Item, int64, error) {
	req = req.Normalize()

	qb := squirrel.Select("id", "name", "COUNT(*) OVER()").
		From("items").
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
		return nil, 0, fmt.Errorf("failed to query items: %w", err)
	}
	defer rows.Close()

	var items []domain.Item
	var total int64
	for rows.Next() {
		var item domain.Item
		if err := rows.Scan(&item.ID, &item.Name, &total); err != nil {
			return nil, 0, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating rows: %w", err)
	}

	return items, total, nil
}

// Delete removes an item. Items referenced by purchases or shopping list
// lines are protected by RESTRICT foreign keys.
func (r *itemRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM items WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("item not found: %d", id)
	}

	r.logger.InfoContext(ctx, "item deleted", slog.Int64("id", id))

	return nil
}
