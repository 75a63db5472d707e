// internal/core/services/visit.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/akarpov/grocery-be/internal/core/domain"
	"github.com/akarpov/grocery-be/internal/core/ports"
)

// VisitService handles the visit lifecycle
type VisitService struct {
	visits    ports.VisitRepository
	shops     ports.ShopRepository
	purchases ports.PurchaseRepository
	cache     ports.CacheRepository
	enqueuer  ports.TaskEnqueuer
	logger    *slog.Logger
	now       func() time.Time
}

var _ ports.VisitService = (*VisitService)(nil)

// NewVisitService creates a new visit service. The enqueuer and cache
// are optional; without them visit completion skips the summary
// precompute.
func NewVisitService(
	visits ports.VisitRepository,
	shops ports.ShopRepository,
	purchases ports.PurchaseRepository,
	cache ports.CacheRepository,
	enqueuer ports.TaskEnqueuer,
	logger *slog.Logger,
) *VisitService {
	return &VisitService{
		visits:    visits,
		shops:     shops,
		purchases: purchases,
		cache:     cache,
		enqueuer:  enqueuer,
		logger:    logger.With(slog.String("service", "visit")),
		now:       time.Now,
	}
}

// WithClock replaces the time source, for tests.
func (s *VisitService) WithClock(now func() time.Time) *VisitService {
	s.now = now
	return s
}

// GetVisits retrieves every visit.
func (s *VisitService) GetVisits(ctx context.Context) ([]domain.Visit, error) {
	visits, err := s.visits.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list visits: %w", err)
	}
	return visits, nil
}

// GetVisitsPage retrieves one page of visits.
func (s *VisitService) GetVisitsPage(ctx context.Context, req ports.PageRequest) (*ports.Page[domain.Visit], error) {
	req = req.Normalize()

	visits, total, err := s.visits.FindPage(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to list visits page: %w", err)
	}
	return ports.NewPage(visits, req, total), nil
}

// GetVisitByID retrieves a single visit.
func (s *VisitService) GetVisitByID(ctx context.Context, id int64) (*domain.Visit, error) {
	visit, err := s.visits.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get visit: %w", err)
	}
	if visit == nil {
		return nil, domain.NewNotFound("visit", id)
	}
	return visit, nil
}

// GetVisitsByShop retrieves all visits recorded for a shop.
func (s *VisitService) GetVisitsByShop(ctx context.Context, shopID int64) ([]domain.Visit, error) {
	if err := s.ensureShop(ctx, shopID); err != nil {
		return nil, err
	}

	visits, err := s.visits.FindAllByShop(ctx, shopID)
	if err != nil {
		return nil, fmt.Errorf("failed to list visits by shop: %w", err)
	}
	return visits, nil
}

// CreateVisit records a new, not yet started visit to a shop.
func (s *VisitService) CreateVisit(ctx context.Context, shopID int64) (*domain.Visit, error) {
	if err := s.ensureShop(ctx, shopID); err != nil {
		return nil, err
	}

	visit := &domain.Visit{ShopID: shopID}
	if err := s.visits.Save(ctx, visit); err != nil {
		return nil, fmt.Errorf("failed to save visit: %w", err)
	}

	s.logger.InfoContext(ctx, "created visit",
		slog.Int64("visit_id", visit.ID),
		slog.Int64("shop_id", shopID))

	return visit, nil
}

// StartVisit stamps the visit as started now.
func (s *VisitService) StartVisit(ctx context.Context, id int64) (*domain.Visit, error) {
	visit, err := s.GetVisitByID(ctx, id)
	if err != nil {
		return nil, err
	}

	visit.Start(s.now())

	if err := s.visits.Save(ctx, visit); err != nil {
		return nil, fmt.Errorf("failed to save visit: %w", err)
	}

	s.logger.InfoContext(ctx, "started visit", slog.Int64("visit_id", id))

	return visit, nil
}

// CompleteVisit stamps the visit as completed now, backfilling the start
// timestamp when the visit was never explicitly started, and queues the
// spend summary precompute.
func (s *VisitService) CompleteVisit(ctx context.Context, id int64) (*domain.Visit, error) {
	visit, err := s.GetVisitByID(ctx, id)
	if err != nil {
		return nil, err
	}

	visit.Complete(s.now())

	if err := s.visits.Save(ctx, visit); err != nil {
		return nil, fmt.Errorf("failed to save visit: %w", err)
	}

	s.logger.InfoContext(ctx, "completed visit", slog.Int64("visit_id", id))

	if s.enqueuer != nil {
		task, err := ports.NewVisitSummaryTask(id)
		if err == nil {
			_, err = s.enqueuer.EnqueueContext(ctx, task)
		}
		if err != nil {
			// summary precompute is best effort, the endpoint falls
			// back to computing from the database
			s.logger.ErrorContext(ctx, "failed to enqueue visit summary",
				slog.Int64("visit_id", id),
				slog.String("error", err.Error()))
		}
	}

	return visit, nil
}

// DeleteVisit removes a visit together with its purchases.
func (s *VisitService) DeleteVisit(ctx context.Context, id int64) error {
	if _, err := s.GetVisitByID(ctx, id); err != nil {
		return err
	}

	if err := s.purchases.DeleteAllByVisit(ctx, id); err != nil {
		return fmt.Errorf("failed to delete visit purchases: %w", err)
	}
	if err := s.visits.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete visit: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Delete(ctx, ports.VisitSummaryCacheKey(id)); err != nil {
			s.logger.DebugContext(ctx, "failed to drop cached summary",
				slog.Int64("visit_id", id))
		}
	}

	s.logger.InfoContext(ctx, "deleted visit", slog.Int64("visit_id", id))

	return nil
}

// GetVisitSummary returns the spend roll-up for a visit, served from the
// cache when the worker already computed it.
func (s *VisitService) GetVisitSummary(ctx context.Context, id int64) (*domain.VisitSummary, error) {
	visit, err := s.GetVisitByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		var cached domain.VisitSummary
		if err := s.cache.Get(ctx, ports.VisitSummaryCacheKey(id), &cached); err == nil {
			return &cached, nil
		}
	}

	purchases, err := s.purchases.FindAllByVisit(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list purchases: %w", err)
	}

	summary := domain.SummarizePurchases(id, purchases, s.now())
	summary.Completed = visit.Completed
	return &summary, nil
}

func (s *VisitService) ensureShop(ctx context.Context, shopID int64) error {
	shop, err := s.shops.FindByID(ctx, shopID)
	if err != nil {
		return fmt.Errorf("failed to get shop: %w", err)
	}
	if shop == nil {
		return domain.NewNotFound("shop", shopID)
	}
	return nil
}
