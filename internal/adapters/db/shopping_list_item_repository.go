// internal/adapters/db/shopping_list_item_repository.go
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

// shoppingListItemRepository implements ports.ShoppingListItemRepository
type shoppingListItemRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewShoppingListItemRepository creates a new shopping list line repository
func NewShoppingListItemRepository(db *Database, logger *slog.Logger) ports.ShoppingListItemRepository {
	return &shoppingListItemRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "shopping_list_item")),
	}
}

// Save inserts a new shopping list line or updates an existing one
func (r *shoppingListItemRepository) Save(ctx context.Context, line *domain.ShoppingListItem) error {
	if line.ID == 0 {
		query := `
			INSERT INTO shopping_list_items (shopping_list_id, item_id, quantity)
			VALUES ($1, $2, $3) RETURNING id`
		err := r.db.QueryRow(ctx, query,
			line.ShoppingListID, line.ItemID, line.Quantity,
		).Scan(&line.ID)
		if err != nil {
			return fmt.Errorf("failed to save shopping list item: %w", err)
		}
	} else {
		query := `
			UPDATE shopping_list_items
			SET shopping_list_id = $2, item_id = $3, quantity = $4
			WHERE id = $1`
		tag, err := r.db.Exec(ctx, query,
			line.ID, line.ShoppingListID, line.ItemID, line.Quantity,
		)
		if err != nil {
			return fmt.Errorf("failed to update shopping list item: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("shopping list item not found: %d", line.ID)
		}
	}

	r.logger.DebugContext(ctx, "shopping list item saved",
		slog.Int64("id", line.ID),
		slog.Int64("shopping_list_id", line.ShoppingListID),
		slog.Int64("item_id", line.ItemID))

	return nil
}

// FindByID retrieves a shopping list line by id
func (r *shoppingListItemRepository) FindByID(ctx context.Context, id int64) (*domain.ShoppingListItem, error) {
	query := `
		SELECT id, shopping_list_id, item_id, quantity
		FROM shopping_list_items WHERE id = $1`

	line := &domain.ShoppingListItem{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&line.ID, &line.ShoppingListID, &line.ItemID, &line.Quantity,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find shopping list item: %w", err)
	}

	return line, nil
}

// FindAllByList retrieves all lines of a shopping list ordered by item
func (r *shoppingListItemRepository) FindAllByList(ctx context.Context, listID int64) ([]domain.ShoppingListItem, error) {
	query := `
		SELECT id, shopping_list_id, item_id, quantity
		FROM shopping_list_items WHERE shopping_list_id = $1 ORDER BY item_id ASC`

	rows, err := r.db.Query(ctx, query, listID)
	if err != nil {
		return nil, fmt.Errorf("failed to query shopping list items: %w", err)
	}
	defer rows.Close()

	var lines []domain.ShoppingListItem
	for rows.Next() {
		var line domain.ShoppingListItem
		err := rows.Scan(&line.ID, &line.ShoppingListID, &line.ItemID, &line.Quantity)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shopping list item: %w", err)
		}
		lines = append(lines, line)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return lines, nil
}

// FindPageByList retrieves one page of a list's lines with the total row count
func (r *shoppingListItemRepository) FindPageByList(ctx context.Context, req ports.PageRequest, listID int64) ([]domain.ShoppingListItem, int64, error) {
	req = req.Normalize()

	qb := squirrel.Select("id", "shopping_list_id", "item_id", "quantity", "COUNT(*) OVER()").
		From("shopping_list_items").
		Where(squirrel.Eq{"shopping_list_id": listID}).
		OrderBy("item_id ASC").
		Limit(uint64(req.Size)).
		Offset(uint64(req.Offset())).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := qb.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query shopping list items: %w", err)
	}
	defer rows.Close()

	var lines []domain.ShoppingListItem
	var total int64
	for rows.Next() {
		var line domain.ShoppingListItem
		err := rows.Scan(&line.ID, &line.ShoppingListID, &line.ItemID, &line.Quantity, &total)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan shopping list item: %w", err)
		}
		lines = append(lines, line)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating rows: %w", err)
	}

	return lines, total, nil
}

// FindOneByListAndItem retrieves the line for a (list, item) pair, or nil
// when the item is not on the list
func (r *shoppingListItemRepository) FindOneByListAndItem(ctx context.Context, listID, itemID int64) (*domain.ShoppingListItem, error) {
	query := `
		SELECT id, shopping_list_id, item_id, quantity
		FROM shopping_list_items WHERE shopping_list_id = $1 AND item_id = $2`

	line := &domain.ShoppingListItem{}
	err := r.db.QueryRow(ctx, query, listID, itemID).Scan(
		&line.ID, &line.ShoppingListID, &line.ItemID, &line.Quantity,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find shopping list item: %w", err)
	}

	return line, nil
}

// Delete removes a single shopping list line
func (r *shoppingListItemRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM shopping_list_items WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete shopping list item: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("shopping list item not found: %d", id)
	}

	r.logger.InfoContext(ctx, "shopping list item deleted", slog.Int64("id", id))

	return nil
}
