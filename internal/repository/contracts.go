package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/shriank296/subtle/internal/model"
)

// Pinger represents a minimal readiness probe capability.
// I use it to decouple health checks from storage implementation details.
type Pinger interface {
	Ping(ctx context.Context) error
}

// AdjustmentFilter holds the two mandatory listing keys. Both must be set;
// validation happens in the service layer, the repository trusts its input.
type AdjustmentFilter struct {
	InsurableInterestSetID uuid.UUID
	PolicyTermOptionID     uuid.UUID
}

// TechnicalAdjustmentRepository declares read operations for technical
// adjustments. Rows come back already joined: model name and adjustment type
// code are resolved through the model-field relation, never stored copies.
// The total in the page result always reflects the full matching set, even
// when the requested window is past the end.
type TechnicalAdjustmentRepository interface {
	List(ctx context.Context, f AdjustmentFilter, p Page) (PageResult[model.TechnicalAdjustment], error)
}
