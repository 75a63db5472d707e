// internal/adapters/db/visit_repository.go
package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/akarpov/grocery-be/internal/core/domain"
	"github.com/akarpov/grocery-be/internal/core/ports"
)

// visitRepository implements ports.VisitRepository
type visitRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewVisitRepository creates a new visit repository
func NewVisitRepository(db *Database, logger *slog.Logger) ports.VisitRepository {
	return &visitRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "visit")),
	}
}

// Save inserts a new visit or updates an existing one
func (r *visitRepository) Save(ctx context.Context, visit *domain.Visit) error {
	if visit.ID == 0 {
		query := `
			INSERT INTO visits (shop_id, started, completed, shopping_list_id)
			VALUES ($1, $2, $3, $4) RETURNING id`
		err := r.db.QueryRow(ctx, query,
			visit.ShopID, visit.Started, visit.Completed, visit.ShoppingListID,
		).Scan(&visit.ID)
		if err != nil {
			return fmt.Errorf("failed to save visit: %w", err)
		}
	} else {
		query := `
			UPDATE visits
			SET shop_id = $2, started = $3, completed = $4, shopping_list_id = $5
			WHERE id = $1`
		tag, err := r.db.Exec(ctx, query,
			visit.ID, visit.ShopID, visit.Started, visit.Completed, visit.ShoppingListID,
		)
		if err != nil {
			return fmt.Errorf("failed to update visit: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("visit not found: %d", visit.ID)
		}
	}

	r.logger.DebugContext(ctx, "visit saved",
		slog.Int64("id", visit.ID),
		slog.Int64("shop_id", visit.ShopID))

	return nil
}

// FindByID retrieves a visit by id
func (r *visitRepository) FindByID(ctx context.Context, id int64) (*domain.Visit, error) {
	query := `
		SELECT id, shop_id, started, completed, shopping_list_id
		FROM visits WHERE id = $1`

	visit := &domain.Visit{}
	var listID sql.NullInt64
	err := r.db.QueryRow(ctx, query, id).Scan(
		&visit.ID, &visit.ShopID, &visit.Started, &visit.Completed, &listID,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find visit: %w", err)
	}

	if listID.Valid {
		visit.ShoppingListID = &listID.Int64
	}

	return visit, nil
}

// FindAll retrieves all visits, newest first
func (r *visitRepository) FindAll(ctx context.Context) ([]domain.Visit, error) {
	query := `
		SELECT id, shop_id, started, completed, shopping_list_id
		FROM visits ORDER BY id DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query visits: %w", err)
	}
	defer rows.Close()

	return scanVisits(rows)
}

// FindPage retrieves one page of visits with the total row count
func (r *visitRepository) FindPage(ctx context.Context, req ports.PageRequest) ([]domain.Visit, int64, error) {
	req = req.Normalize()

	qb := squirrel.Select("id", "shop_id", "started", "completed", "shopping_list_id", "COUNT(*) OVER()").
		From("visits").
		OrderBy("id DESC").
		Limit(uint64(req.Size)).
		Offset(uint64(req.Offset())).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := qb.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query visits: %w", err)
	}
	defer rows.Close()

	var visits []domain.Visit
	var total int64
	for rows.Next() {
		var visit domain.Visit
		var listID sql.NullInt64
		err := rows.Scan(&visit.ID, &visit.ShopID, &visit.Started, &visit.Completed, &listID, &total)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan visit: %w", err)
		}
		if listID.Valid {
			visit.ShoppingListID = &listID.Int64
		}
		visits = append(visits, visit)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating rows: %w", err)
	}

	return visits, total, nil
}

// FindAllByShop retrieves all visits to one shop, newest first
func (r *visitRepository) FindAllByShop(ctx context.Context, shopID int64) ([]domain.Visit, error) {
	query := `
		SELECT id, shop_id, started, completed, shopping_list_id
		FROM visits WHERE shop_id = $1 ORDER BY id DESC`

	rows, err := r.db.Query(ctx, query, shopID)
	if err != nil {
		return nil, fmt.Errorf("failed to query visits: %w", err)
	}
	defer rows.Close()

	return scanVisits(rows)
}

// Delete removes a visit. Its purchases must be deleted first.
func (r *visitRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM visits WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete visit: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("visit not found: %d", id)
	}

	r.logger.InfoContext(ctx, "visit deleted", slog.Int64("id", id))

	return nil
}

func scanVisits(rows pgx.Rows) ([]domain.Visit, error) {
	var visits []domain.Visit
	for rows.Next() {
		var visit domain.Visit
		var listID sql.NullInt64
		err := rows.Scan(&visit.ID, &visit.ShopID, &visit.Started, &visit.Completed, &listID)
		if err != nil {
			return nil, fmt.Errorf("failed to scan visit: %w", err)
		}
		if listID.Valid {
			visit.ShoppingListID = &listID.Int64
		}
		visits = append(visits, visit)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return visits, nil
}
