// internal/core/services/purchase.go
package services

import (
	"context"
	"fmt"
	"hash/fnv"
	"log/slog"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/akarpov/grocery-be/internal/core/domain"
	"github.com/akarpov/grocery-be/internal/core/ports"
)

const purchaseLockStripes = 64

// PurchaseService handles the purchase accounting for shop visits. Every
// mutation is a lookup followed by a single write, serialized per
// (visit, item) slot through a striped mutex so concurrent buys and
// returns of the same item never interleave between lookup and write.
// The composite unique index on purchases(visit_id, item_id) backstops
// races across processes.
type PurchaseService struct {
	purchases ports.PurchaseRepository
	visits    ports.VisitRepository
	items     ports.ItemRepository
	logger    *slog.Logger
	locks     [purchaseLockStripes]sync.Mutex
}

var _ ports.PurchaseService = (*PurchaseService)(nil)

// NewPurchaseService creates a new purchase service
func NewPurchaseService(
	purchases ports.PurchaseRepository,
	visits ports.VisitRepository,
	items ports.ItemRepository,
	logger *slog.Logger,
) *PurchaseService {
	return &PurchaseService{
		purchases: purchases,
		visits:    visits,
		items:     items,
		logger:    logger.With(slog.String("service", "purchase")),
	}
}

func (s *PurchaseService) lock(visitID, itemID int64) *sync.Mutex {
	h := fnv.New32a()
	fmt.Fprintf(h, "%d:%d", visitID, itemID)
	return &s.locks[h.Sum32()%purchaseLockStripes]
}

// BuyItem records quantity units of an item bought during a visit,
// creating the purchase record on first buy and blending the price as a
// quantity-weighted running average on subsequent priced buys.
func (s *PurchaseService) BuyItem(ctx context.Context, visitID, itemID, quantity int64, price *decimal.Decimal) (*domain.Purchase, error) {
	visit, item, err := s.resolveVisitAndItem(ctx, visitID, itemID)
	if err != nil {
		return nil, err
	}

	mu := s.lock(visitID, itemID)
	mu.Lock()
	defer mu.Unlock()

	purchase, err := s.purchases.FindOneByVisitAndItem(ctx, visitID, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to find purchase: %w", err)
	}
	if purchase == nil {
		purchase = &domain.Purchase{VisitID: visit.ID, ItemID: item.ID}
	}

	if err := purchase.Buy(quantity, price); err != nil {
		return nil, err
	}

	if err := s.purchases.Save(ctx, purchase); err != nil {
		return nil, fmt.Errorf("failed to save purchase: %w", err)
	}

	s.logger.InfoContext(ctx, "bought item",
		slog.Int64("visit_id", visitID),
		slog.Int64("item_id", itemID),
		slog.Int64("quantity", quantity))

	return purchase, nil
}

// ReturnItem gives back quantity units of a previously bought item. A
// return that empties the record deletes it and returns (nil, nil).
func (s *PurchaseService) ReturnItem(ctx context.Context, visitID, itemID, quantity int64) (*domain.Purchase, error) {
	if _, _, err := s.resolveVisitAndItem(ctx, visitID, itemID); err != nil {
		return nil, err
	}

	mu := s.lock(visitID, itemID)
	mu.Lock()
	defer mu.Unlock()

	purchase, err := s.findPurchase(ctx, visitID, itemID)
	if err != nil {
		return nil, err
	}

	if err := purchase.Return(quantity); err != nil {
		return nil, err
	}

	if purchase.Quantity == 0 {
		if err := s.purchases.Delete(ctx, purchase.ID); err != nil {
			return nil, fmt.Errorf("failed to delete purchase: %w", err)
		}

		s.logger.InfoContext(ctx, "returned all units, purchase removed",
			slog.Int64("visit_id", visitID),
			slog.Int64("item_id", itemID))

		return nil, nil
	}

	if err := s.purchases.Save(ctx, purchase); err != nil {
		return nil, fmt.Errorf("failed to save purchase: %w", err)
	}

	s.logger.InfoContext(ctx, "returned item",
		slog.Int64("visit_id", visitID),
		slog.Int64("item_id", itemID),
		slog.Int64("quantity", quantity))

	return purchase, nil
}

// UpdatePrice overwrites the stored price of an existing purchase
// without blending.
func (s *PurchaseService) UpdatePrice(ctx context.Context, visitID, itemID int64, price *decimal.Decimal) (*domain.Purchase, error) {
	if _, _, err := s.resolveVisitAndItem(ctx, visitID, itemID); err != nil {
		return nil, err
	}

	mu := s.lock(visitID, itemID)
	mu.Lock()
	defer mu.Unlock()

	purchase, err := s.findPurchase(ctx, visitID, itemID)
	if err != nil {
		return nil, err
	}

	if err := purchase.SetPrice(price); err != nil {
		return nil, err
	}

	if err := s.purchases.Save(ctx, purchase); err != nil {
		return nil, fmt.Errorf("failed to save purchase: %w", err)
	}

	s.logger.InfoContext(ctx, "updated purchase price",
		slog.Int64("visit_id", visitID),
		slog.Int64("item_id", itemID))

	return purchase, nil
}

// GetNotPurchasedItems lists every catalog item without a purchase row
// for the visit. Full catalog scan with a per-item lookup; fine while
// the catalog stays small.
func (s *PurchaseService) GetNotPurchasedItems(ctx context.Context, visitID int64) ([]domain.Item, error) {
	if _, err := s.getVisit(ctx, visitID); err != nil {
		return nil, err
	}

	items, err := s.items.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	notPurchased := make([]domain.Item, 0, len(items))
	for _, item := range items {
		purchase, err := s.purchases.FindOneByVisitAndItem(ctx, visitID, item.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to find purchase: %w", err)
		}
		if purchase == nil {
			notPurchased = append(notPurchased, item)
		}
	}
	return notPurchased, nil
}

// GetPurchases retrieves all purchases of a visit.
func (s *PurchaseService) GetPurchases(ctx context.Context, visitID int64) ([]domain.Purchase, error) {
	if _, err := s.getVisit(ctx, visitID); err != nil {
		return nil, err
	}

	purchases, err := s.purchases.FindAllByVisit(ctx, visitID)
	if err != nil {
		return nil, fmt.Errorf("failed to list purchases: %w", err)
	}
	return purchases, nil
}

// GetPurchasesPage retrieves one page of a visit's purchases.
func (s *PurchaseService) GetPurchasesPage(ctx context.Context, req ports.PageRequest, visitID int64) (*ports.Page[domain.Purchase], error) {
	if _, err := s.getVisit(ctx, visitID); err != nil {
		return nil, err
	}

	req = req.Normalize()

	purchases, total, err := s.purchases.FindPageByVisit(ctx, req, visitID)
	if err != nil {
		return nil, fmt.Errorf("failed to list purchases page: %w", err)
	}
	return ports.NewPage(purchases, req, total), nil
}

func (s *PurchaseService) getVisit(ctx context.Context, visitID int64) (*domain.Visit, error) {
	visit, err := s.visits.FindByID(ctx, visitID)
	if err != nil {
		return nil, fmt.Errorf("failed to get visit: %w", err)
	}
	if visit == nil {
		return nil, domain.NewNotFound("visit", visitID)
	}
	return visit, nil
}

func (s *PurchaseService) resolveVisitAndItem(ctx context.Context, visitID, itemID int64) (*domain.Visit, *domain.Item, error) {
	visit, err := s.getVisit(ctx, visitID)
	if err != nil {
		return nil, nil, err
	}

	item, err := s.items.FindByID(ctx, itemID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get item: %w", err)
	}
	if item == nil {
		return nil, nil, domain.NewNotFound("item", itemID)
	}
	return visit, item, nil
}

func (s *PurchaseService) findPurchase(ctx context.Context, visitID, itemID int64) (*domain.Purchase, error) {
	purchase, err := s.purchases.FindOneByVisitAndItem(ctx, visitID, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to find purchase: %w", err)
	}
	if purchase == nil {
		return nil, domain.NewNotFound("purchase for visit", visitID)
	}
	return purchase, nil
}
