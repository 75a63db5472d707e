// internal/workers/summary_processor.go
package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"github.com/akarpov/grocery-be/internal/core/domain"
	"github.com/akarpov/grocery-be/internal/core/ports"
)

// summaryCacheTTL bounds staleness of precomputed visit summaries.
const summaryCacheTTL = 24 * time.Hour

// SummaryProcessor computes visit spend summaries in the background and
// caches them for the summary endpoint.
type SummaryProcessor struct {
	visits    ports.VisitRepository
	purchases ports.PurchaseRepository
	cache     ports.CacheRepository
	logger    *slog.Logger
	now       func() time.Time
}

// NewSummaryProcessor creates a new summary processor
func NewSummaryProcessor(
	visits ports.VisitRepository,
	purchases ports.PurchaseRepository,
	cache ports.CacheRepository,
	logger *slog.Logger,
) *SummaryProcessor {
	return &SummaryProcessor{
		visits:    visits,
		purchases: purchases,
		cache:     cache,
		logger:    logger.With(slog.String("processor", "visit_summary")),
		now:       time.Now,
	}
}

// ProcessVisitSummary handles a TypeVisitSummary task.
func (p *SummaryProcessor) ProcessVisitSummary(ctx context.Context, t *asynq.Task) error {
	var payload ports.VisitSummaryPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	p.logger.InfoContext(ctx, "computing visit summary",
		slog.Int64("visit_id", payload.VisitID))

	visit, err := p.visits.FindByID(ctx, payload.VisitID)
	if err != nil {
		return fmt.Errorf("failed to get visit: %w", err)
	}
	if visit == nil {
		// visit deleted between enqueue and processing, nothing to do
		p.logger.InfoContext(ctx, "visit gone, skipping summary",
			slog.Int64("visit_id", payload.VisitID))
		return nil
	}

	purchases, err := p.purchases.FindAllByVisit(ctx, payload.VisitID)
	if err != nil {
		return fmt.Errorf("failed to list purchases: %w", err)
	}

	summary := domain.SummarizePurchases(payload.VisitID, purchases, p.now())
	summary.Completed = visit.Completed

	key := ports.VisitSummaryCacheKey(payload.VisitID)
	if err := p.cache.SetWithTTL(ctx, key, summary, summaryCacheTTL); err != nil {
		return fmt.Errorf("failed to cache visit summary: %w", err)
	}

	p.logger.InfoContext(ctx, "visit summary computed",
		slog.Int64("visit_id", payload.VisitID),
		slog.Int64("purchases", summary.Purchases),
		slog.String("total", summary.Total.String()))

	return nil
}
