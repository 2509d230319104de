package ports

import (
	"context"
)

// OrderNumberAllocator hands out customer-facing order numbers.
// Every call returns a value never returned before; two concurrent calls
// never observe the same number. Numbers are formatted with at least three
// digits ("001", "002", ... "999", "1000") and are never truncated.
type OrderNumberAllocator interface {
	Next(ctx context.Context) (string, error)
}
