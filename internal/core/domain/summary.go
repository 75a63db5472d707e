// internal/core/domain/summary.go
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// VisitSummary is the precomputed spend roll-up for one visit. Total
// only counts priced purchases; unpriced rows contribute units but no
// spend.
type VisitSummary struct {
	VisitID    int64           `json:"visit_id"`
	Purchases  int64           `json:"purchases"`
	Units      int64           `json:"units"`
	Total      decimal.Decimal `json:"total"`
	ComputedAt time.Time       `json:"computed_at"`
	Completed  *time.Time      `json:"completed,omitempty"`
}

// SummarizePurchases folds purchase rows into a VisitSummary.
func SummarizePurchases(visitID int64, purchases []Purchase, at time.Time) VisitSummary {
	s := VisitSummary{
		VisitID:    visitID,
		Total:      decimal.Zero,
		ComputedAt: at,
	}
	for i := range purchases {
		s.Purchases++
		s.Units += purchases[i].Quantity
		s.Total = s.Total.Add(purchases[i].Total())
	}
	return s
}
