// internal/adapters/db/shopping_list_repository.go
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

// shoppingListRepository implements ports.ShoppingListRepository
type shoppingListRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewShoppingListRepository creates a new shopping list repository
func NewShoppingListRepository(db *Database, logger *slog.Logger) ports.ShoppingListRepository {
	return &shoppingListRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "shopping_list")),
	}
}

// Save inserts a new shopping list or updates an existing one
func (r *shoppingListRepository) Save(ctx context.Context, list *domain.ShoppingList) error {
	if list.ID == 0 {
		query := `INSERT INTO shopping_lists (name) VALUES ($1) RETURNING id`
		if err := r.db.QueryRow(ctx, query, list.Name).Scan(&list.ID); err != nil {
			return fmt.Errorf("failed to save shopping list: %w", err)
		}
	} else {
		query := `UPDATE shopping_lists SET name = $2 WHERE id = $1`
		tag, err := r.db.Exec(ctx, query, list.ID, list.Name)
		if err != nil {
			return fmt.Errorf("failed to update shopping list: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("shopping list not found: %d", list.ID)
		}
	}

	r.logger.DebugContext(ctx, "shopping list saved",
		slog.Int64("id", list.ID),
		slog.String("name", list.Name))

	return nil
}

// FindByID retrieves a shopping list by id
func (r *shoppingListRepository) FindByID(ctx context.Context, id int64) (*domain.ShoppingList, error) {
	query := `SELECT id, name FROM shopping_lists WHERE id = $1`

	list := &domain.ShoppingList{}
	err := r.db.QueryRow(ctx, query, id).Scan(&list.ID, &list.Name)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find shopping list: %w", err)
	}

	return list, nil
}

// FindByName retrieves a shopping list by its exact name
func (r *shoppingListRepository) FindByName(ctx context.Context, name string) (*domain.ShoppingList, error) {
	query := `SELECT id, name FROM shopping_lists WHERE name = $1`

	list := &domain.ShoppingList{}
	err := r.db.QueryRow(ctx, query, name).Scan(&list.ID, &list.Name)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find shopping list by name: %w", err)
	}

	return list, nil
}

// FindAll retrieves all shopping lists ordered by name
func (r *shoppingListRepository) FindAll(ctx context.Context) ([]domain.ShoppingList, error) {
	query := `SELECT id, name FROM shopping_lists ORDER BY name ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query shopping lists: %w", err)
	}
	defer rows.Close()

	var lists []domain.ShoppingList
	for rows.Next() {
		var list domain.ShoppingList
		if err := rows.Scan(&list.ID, &list.Name); err != nil {
			return nil, fmt.Errorf("failed to scan shopping list: %w", err)
		}
		lists = append(lists, list)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return lists, nil
}

// FindPage retrieves one page of shopping lists with the total row count
func (r *shoppingListRepository) FindPage(ctx context.Context, req ports.PageRequest) ([]domain.ShoppingList, int64, error) {
	req = req.Normalize()

	qb := squirrel.Select("id", "name", "COUNT(*) OVER()").
		From("shopping_lists").
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
		return nil, 0, fmt.Errorf("failed to query shopping lists: %w", err)
	}
	defer rows.Close()

	var lists []domain.ShoppingList
	var total int64
	for rows.Next() {
		var list domain.ShoppingList
		if err := rows.Scan(&list.ID, &list.Name, &total); err != nil {
			return nil, 0, fmt.Errorf("failed to scan shopping list: %w", err)
		}
		lists = append(lists, list)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating rows: %w", err)
	}

	return lists, total, nil
}

// Delete removes a shopping list. Its lines are removed by the cascading
// foreign key; visits that referenced the list keep a NULL reference.
func (r *shoppingListRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM shopping_lists WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete shopping list: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("shopping list not found: %d", id)
	}

	r.logger.InfoContext(ctx, "shopping list deleted", slog.Int64("id", id))

	return nil
}
