package ports

import (
	"context"

	"inatpos/internal/core/domain/model/order"
)

// NotificationPublisher fans order lifecycle events out to the station
// screens and waitress terminals. Implementations decide which roles see
// which event. Publishing is best-effort: a failed delivery must be logged
// by the implementation and never fails the business operation, so callers
// may ignore the returned error once state is committed.
type NotificationPublisher interface {
	Publish(ctx context.Context, event order.Event) error
}
