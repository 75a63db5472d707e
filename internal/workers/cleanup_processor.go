// internal/workers/cleanup_processor.go
package workers

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"

	"github.com/akarpov/grocery-be/internal/core/ports"
)

// CleanupProcessor handles periodic housekeeping tasks
type CleanupProcessor struct {
	db     ports.Database
	cache  ports.CacheRepository
	logger *slog.Logger
}

// NewCleanupProcessor creates a new cleanup processor
func NewCleanupProcessor(database ports.Database, cache ports.CacheRepository, logger *slog.Logger) *CleanupProcessor {
	return &CleanupProcessor{
		db:     database,
		cache:  cache,
		logger: logger.With(slog.String("processor", "cleanup")),
	}
}

// CleanupExportCache drops cached purchase exports
func (p *CleanupProcessor) CleanupExportCache(ctx context.Context, t *asynq.Task) error {
	p.logger.InfoContext(ctx, "purging export cache")

	if err := p.cache.DeletePattern(ctx, "export:purchases:*"); err != nil {
		return fmt.Errorf("failed to purge export cache: %w", err)
	}

	return nil
}

// CleanupAbandonedVisits removes visits that were created but never
// started and hold no purchases.
func (p *CleanupProcessor) CleanupAbandonedVisits(ctx context.Context, t *asynq.Task) error {
	p.logger.InfoContext(ctx, "cleaning up abandoned visits")

	query := `
		DELETE FROM visits v
		WHERE v.started IS NULL
		  AND NOT EXISTS (SELECT 1 FROM purchases p WHERE p.visit_id = v.id)`

	result, err := p.db.Exec(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to cleanup abandoned visits: %w", err)
	}

	p.logger.InfoContext(ctx, "abandoned visits cleaned up",
		slog.Int64("rows_deleted", result.RowsAffected()))

	return nil
}
