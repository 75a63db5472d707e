// internal/adapters/db/purchase_repository.go
package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/akarpov/grocery-be/internal/core/domain"
	"github.com/akarpov/grocery-be/internal/core/ports"
)

// purchaseRepository implements ports.PurchaseRepository
type purchaseRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewPurchaseRepository creates a new purchase repository
func NewPurchaseRepository(db *Database, logger *slog.Logger) ports.PurchaseRepository {
	return &purchaseRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "purchase")),
	}
}

// Save inserts a new purchase or updates an existing one. A unique index
// on (visit_id, item_id) guarantees at most one row per pair.
func (r *purchaseRepository) Save(ctx context.Context, purchase *domain.Purchase) error {
	if purchase.ID == 0 {
		query := `
			INSERT INTO purchases (visit_id, item_id, quantity, price)
			VALUES ($1, $2, $3, $4) RETURNING id`
		err := r.db.QueryRow(ctx, query,
			purchase.VisitID, purchase.ItemID, purchase.Quantity, priceArg(purchase.Price),
		).Scan(&purchase.ID)
		if err != nil {
			return fmt.Errorf("failed to save purchase: %w", err)
		}
	} else {
		query := `
			UPDATE purchases
			SET visit_id = $2, item_id = $3, quantity = $4, price = $5
			WHERE id = $1`
		tag, err := r.db.Exec(ctx, query,
			purchase.ID, purchase.VisitID, purchase.ItemID, purchase.Quantity, priceArg(purchase.Price),
		)
		if err != nil {
			return fmt.Errorf("failed to update purchase: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("purchase not found: %d", purchase.ID)
		}
	}

	r.logger.DebugContext(ctx, "purchase saved",
		slog.Int64("id", purchase.ID),
		slog.Int64("visit_id", purchase.VisitID),
		slog.Int64("item_id", purchase.ItemID),
		slog.Int64("quantity", purchase.Quantity))

	return nil
}

// FindOneByVisitAndItem retrieves the single purchase row for a
// (visit, item) pair, or nil when the item was not purchased on the visit
func (r *purchaseRepository) FindOneByVisitAndItem(ctx context.Context, visitID, itemID int64) (*domain.Purchase, error) {
	query := `
		SELECT id, visit_id, item_id, quantity, price
		FROM purchases WHERE visit_id = $1 AND item_id = $2`

	purchase := &domain.Purchase{}
	var price decimal.NullDecimal
	err := r.db.QueryRow(ctx, query, visitID, itemID).Scan(
		&purchase.ID, &purchase.VisitID, &purchase.ItemID, &purchase.Quantity, &price,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find purchase: %w", err)
	}

	if price.Valid {
		purchase.Price = &price.Decimal
	}

	return purchase, nil
}

// FindAllByVisit retrieves all purchases of a visit ordered by item
func (r *purchaseRepository) FindAllByVisit(ctx context.Context, visitID int64) ([]domain.Purchase, error) {
	query := `
		SELECT id, visit_id, item_id, quantity, price
		FROM purchases WHERE visit_id = $1 ORDER BY item_id ASC`

	rows, err := r.db.Query(ctx, query, visitID)
	if err != nil {
		return nil, fmt.Errorf("failed to query purchases: %w", err)
	}
	defer rows.Close()

	var purchases []domain.Purchase
	for rows.Next() {
		var purchase domain.Purchase
		var price decimal.NullDecimal
		err := rows.Scan(&purchase.ID, &purchase.VisitID, &purchase.ItemID, &purchase.Quantity, &price)
		if err != nil {
			return nil, fmt.Errorf("failed to scan purchase: %w", err)
		}
		if price.Valid {
			purchase.Price = &price.Decimal
		}
		purchases = append(purchases, purchase)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return purchases, nil
}

// FindPageByVisit retrieves one page of a visit's purchases with the
// total row count
func (r *purchaseRepository) FindPageByVisit(ctx context.Context, req ports.PageRequest, visitID int64) ([]domain.Purchase, int64, error) {
	req = req.Normalize()

	qb := squirrel.Select("id", "visit_id", "item_id", "quantity", "price", "COUNT(*) OVER()").
		From("purchases").
		Where(squirrel.Eq{"visit_id": visitID}).
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
		return nil, 0, fmt.Errorf("failed to query purchases: %w", err)
	}
	defer rows.Close()

	var purchases []domain.Purchase
	var total int64
	for rows.Next() {
		var purchase domain.Purchase
		var price decimal.NullDecimal
		err := rows.Scan(&purchase.ID, &purchase.VisitID, &purchase.ItemID, &purchase.Quantity, &price, &total)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan purchase: %w", err)
		}
		if price.Valid {
			purchase.Price = &price.Decimal
		}
		purchases = append(purchases, purchase)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating rows: %w", err)
	}

	return purchases, total, nil
}

// Delete removes a single purchase row
func (r *purchaseRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM purchases WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete purchase: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("purchase not found: %d", id)
	}

	r.logger.InfoContext(ctx, "purchase deleted", slog.Int64("id", id))

	return nil
}

// DeleteAllByVisit removes every purchase of a visit
func (r *purchaseRepository) DeleteAllByVisit(ctx context.Context, visitID int64) error {
	query := `DELETE FROM purchases WHERE visit_id = $1`

	tag, err := r.db.Exec(ctx, query, visitID)
	if err != nil {
		return fmt.Errorf("failed to delete purchases: %w", err)
	}

	r.logger.InfoContext(ctx, "visit purchases deleted",
		slog.Int64("visit_id", visitID),
		slog.Int64("count", tag.RowsAffected()))

	return nil
}

// priceArg converts an optional price to a driver-level nullable value
func priceArg(price *decimal.Decimal) decimal.NullDecimal {
	if price == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *price, Valid: true}
}
