// Package ports defines the contracts between the application core and
// infrastructure adapters, enabling dependency inversion and testability.
package ports

import (
	"context"

	"inatpos/internal/core/domain/model/kernel"
	"inatpos/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate using a
	// compare-and-swap on the aggregate version: the write succeeds only
	// if the stored version still matches the version the aggregate was
	// loaded with. On success the stored version is incremented. When the
	// stored row changed underneath, Update returns errs.VersionConflictError
	// and the caller must re-load and retry.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllActive retrieves all orders that are not yet completed,
	// newest first.
	GetAllActive(ctx context.Context) ([]*order.Order, error)

	// GetAllCompleted retrieves completed orders, newest first.
	GetAllCompleted(ctx context.Context) ([]*order.Order, error)

	// DeleteCompleted removes all completed orders. Returns the number of
	// orders removed. Active orders are never touched.
	DeleteCompleted(ctx context.Context) (int64, error)
}
