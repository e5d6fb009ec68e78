package ports

import (
	"context"

	"orders/internal/core/domain/model/order"
)

// OrderNotifier receives post-commit lifecycle events for orders. Command
// handlers invoke it only after a successful commit, so a notification never
// refers to a rolled-back state. Implementations must not fail the request:
// delivery problems are theirs to log and swallow.
type OrderNotifier interface {
	// OrderCreated is called after a new order has been committed.
	OrderCreated(ctx context.Context, o *order.Order)

	// OrderCompleted is called after an order transitioned to completed,
	// whether through the complete operation or an explicit status update.
	OrderCompleted(ctx context.Context, o *order.Order)
}
