// Package notify contains OrderNotifier adapters. The default adapter writes
// structured log events; real delivery channels would slot in behind the
// same port.
package notify

import (
	"context"

	"orders/internal/core/domain/model/order"

	"github.com/rs/zerolog"
)

// LogNotifier emits a structured log line per order lifecycle event. It
// never fails the request.
type LogNotifier struct {
	log zerolog.Logger
}

// NewLogNotifier creates a notifier writing to the given logger.
func NewLogNotifier(log zerolog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

// OrderCreated logs a committed order creation.
func (n *LogNotifier) OrderCreated(ctx context.Context, o *order.Order) {
	n.log.Info().
		Ctx(ctx).
		Str("order_id", o.ID().String()).
		Str("user_id", o.UserID().String()).
		Str("total_amount", o.TotalAmount().StringFixed(2)).
		Msg("order created")
}

// OrderCompleted logs a committed order completion.
func (n *LogNotifier) OrderCompleted(ctx context.Context, o *order.Order) {
	n.log.Info().
		Ctx(ctx).
		Str("order_id", o.ID().String()).
		Str("user_id", o.UserID().String()).
		Str("total_amount", o.TotalAmount().StringFixed(2)).
		Msg("order completed")
}
