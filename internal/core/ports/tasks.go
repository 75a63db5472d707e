// internal/core/ports/tasks.go
package ports

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

// TaskEnqueuer abstracts the asynq client so services can enqueue
// background work without owning the client lifecycle. *asynq.Client
// satisfies it directly.
type TaskEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// Task type names registered with the asynq server. They live with the
// enqueuer port so services can build tasks without importing the
// worker implementations.
const (
	TypeVisitSummary           = "visit:summary"
	TypeCleanupExportCache     = "cleanup:export_cache"
	TypeCleanupAbandonedVisits = "cleanup:abandoned_visits"
)

// VisitSummaryPayload is the payload of a TypeVisitSummary task.
type VisitSummaryPayload struct {
	VisitID int64 `json:"visit_id"`
}

// NewVisitSummaryTask builds the task enqueued when a visit completes.
func NewVisitSummaryTask(visitID int64) (*asynq.Task, error) {
	payload, err := json.Marshal(VisitSummaryPayload{VisitID: visitID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal visit summary payload: %w", err)
	}
	return asynq.NewTask(TypeVisitSummary, payload, asynq.MaxRetry(3)), nil
}

// VisitSummaryCacheKey is the redis key the computed summary lives
// under.
func VisitSummaryCacheKey(visitID int64) string {
	return fmt.Sprintf("visit:summary:%d", visitID)
}
