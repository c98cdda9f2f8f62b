package eventhandlers

import (
	"context"
	"log/slog"

	"github.com/rai/user-service-go/modules/shared/events"
)

// UserActivityHandler records user lifecycle events.
//
// This handler performs only logging side effects and runs synchronously
// via the in-memory event bus; a failure here never affects the request
// that produced the event.
type UserActivityHandler struct {
	logger *slog.Logger
}

func NewUserActivityHandler(logger *slog.Logger) *UserActivityHandler {
	return &UserActivityHandler{logger: logger}
}

// Handle processes a user lifecycle event.
func (h *UserActivityHandler) Handle(ctx context.Context, event events.Event) error {
	h.logger.Info("user activity",
		slog.String("event_type", event.EventType()),
		slog.String("user_id", event.AggregateID()),
		slog.Time("occurred_at", event.OccurredAt()),
	)
	return nil
}
